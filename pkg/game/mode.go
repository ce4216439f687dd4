package game

import "fmt"

// Mode 游戏模式（状态机的状态）
type Mode int

const (
	// ModeLoading 加载关卡
	ModeLoading Mode = iota
	// ModeAiming 瞄准：发射器跟随指针
	ModeAiming
	// ModeLaunching 发射：用发射器向量初始化投射物
	ModeLaunching
	// ModeSimulating 模拟飞行
	ModeSimulating
	// ModeHit 命中目标
	ModeHit
	// ModeMiss 投射物静止且未命中
	ModeMiss
	// ModeQuitting 退出
	ModeQuitting
)

var modeNames = map[Mode]string{
	ModeLoading:    "Loading",
	ModeAiming:     "Aiming",
	ModeLaunching:  "Launching",
	ModeSimulating: "Simulating",
	ModeHit:        "Hit",
	ModeMiss:       "Miss",
	ModeQuitting:   "Quitting",
}

// String 返回模式名称
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// transitions 合法的状态转换表
//
//	Loading    → Aiming | Quitting
//	Aiming     → Launching | Quitting
//	Launching  → Simulating | Quitting
//	Simulating → Hit | Miss | Loading（飞行中松开鼠标重新加载关卡） | Quitting
//	Hit        → Loading | Quitting
//	Miss       → Loading | Quitting
//
// 任何模式都可以进入 Quitting，Quitting 是终态。
var transitions = map[Mode][]Mode{
	ModeLoading:    {ModeAiming},
	ModeAiming:     {ModeLaunching},
	ModeLaunching:  {ModeSimulating},
	ModeSimulating: {ModeHit, ModeMiss, ModeLoading},
	ModeHit:        {ModeLoading},
	ModeMiss:       {ModeLoading},
}

// CanTransition 判断 from → to 是否合法
func CanTransition(from, to Mode) bool {
	if from == ModeQuitting {
		return false
	}
	if to == ModeQuitting {
		return true
	}
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

// ErrIllegalTransition 非法状态转换
type ErrIllegalTransition struct {
	From Mode
	To   Mode
}

func (e *ErrIllegalTransition) Error() string {
	return fmt.Sprintf("illegal mode transition %s -> %s", e.From, e.To)
}
