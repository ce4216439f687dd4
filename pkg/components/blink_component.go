package components

// BlinkSubject 闪烁的对象
type BlinkSubject int

const (
	// BlinkNone 无闪烁
	BlinkNone BlinkSubject = iota
	// BlinkTarget 命中时目标闪烁
	BlinkTarget
	// BlinkWalls 未命中时墙壁闪烁
	BlinkWalls
)

// BlinkComponent 闪烁反馈组件
// 命中或未命中后让目标/墙壁闪烁若干次，期间不接受输入
//
// 一次闪烁由"亮"和"灭"两个半周期组成，每个半周期持续 Period 秒。
type BlinkComponent struct {
	// Subject 闪烁对象
	Subject BlinkSubject

	// Count 闪烁次数
	Count int

	// Period 半周期时长（秒）
	Period float64

	// Elapsed 已经过的时间（秒）
	Elapsed float64

	// IsActive 是否正在闪烁
	IsActive bool
}

// Start 开始一次新的闪烁
func (b *BlinkComponent) Start(subject BlinkSubject, count int, period float64) {
	b.Subject = subject
	b.Count = count
	b.Period = period
	b.Elapsed = 0
	b.IsActive = count > 0 && period > 0
}

// Duration 整个闪烁过程的总时长
func (b *BlinkComponent) Duration() float64 {
	return float64(b.Count) * 2 * b.Period
}

// Visible 对象当前是否可见
// 未激活时总是可见；激活时每个周期先亮后灭
func (b *BlinkComponent) Visible() bool {
	if !b.IsActive {
		return true
	}
	half := int(b.Elapsed / b.Period)
	return half%2 == 0
}

// Hides 判断 subject 此刻是否应被隐藏
func (b *BlinkComponent) Hides(subject BlinkSubject) bool {
	return b.IsActive && b.Subject == subject && !b.Visible()
}
