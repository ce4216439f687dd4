package game

import (
	"fmt"
	"log"

	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/geometry"
	"github.com/decker502/bongallistix/pkg/systems"
)

// TickEvent 一次模拟 tick 中发生的事件，供音效和画面反馈使用
type TickEvent struct {
	Bounced   bool // 本 tick 撞墙
	WallIndex int  // 被撞墙壁下标，未撞墙时为 -1
	Hit       bool // 命中目标
	Missed    bool // 静止超时，未命中
}

// ProgressRecorder 记录关卡进度（由 SaveManager 实现）
type ProgressRecorder interface {
	RecordAttempt(level int)
	RecordHit(level int, flightTime float64)
}

// Session 一局游戏的状态
//
// 持有当前关卡、发射器、投射物以及模拟时间，按模式状态机推进：
// Loading → Aiming → Launching → Simulating → Hit/Miss → Loading ...
// 所有操作都在单个线程中调用，不需要加锁。
type Session struct {
	cfg      *config.GameConfig
	provider LevelProvider
	recorder ProgressRecorder

	mode       Mode
	levelIndex int
	level      *Level

	launcher   components.LauncherComponent
	projectile components.ProjectileComponent

	t          float64 // 本次发射后的模拟时间
	dt         float64 // 当前时间步长
	restChrono float64 // 连续静止的模拟时间
	attempts   int     // 当前关卡的发射次数

	err error // 导致退出的错误
}

// NewSession 创建新的游戏会话，从配置中的第一关开始
func NewSession(cfg *config.GameConfig, provider LevelProvider) *Session {
	return &Session{
		cfg:        cfg,
		provider:   provider,
		mode:       ModeLoading,
		levelIndex: cfg.Levels.First,
		dt:         cfg.Physics.TimeStep,
	}
}

// SetRecorder 设置进度记录器，可为 nil
func (s *Session) SetRecorder(r ProgressRecorder) {
	s.recorder = r
}

// SetLevelIndex 设置下一次加载的关卡编号，只能在 Loading 模式下调用
func (s *Session) SetLevelIndex(index int) error {
	if s.mode != ModeLoading {
		return fmt.Errorf("cannot change level in mode %s", s.mode)
	}
	if !s.cfg.Levels.Contains(index) {
		return fmt.Errorf("level %d out of range %d..%d", index, s.cfg.Levels.First, s.cfg.Levels.Last)
	}
	s.levelIndex = index
	return nil
}

// LoadCurrentLevel 加载当前编号的关卡并进入 Aiming
//
// 加载失败时会话进入 Quitting，返回的错误包装 ErrLevelUnavailable。
func (s *Session) LoadCurrentLevel() error {
	if s.mode != ModeLoading {
		return &ErrIllegalTransition{From: s.mode, To: ModeAiming}
	}

	level, err := s.provider.LoadLevel(s.levelIndex)
	if err != nil {
		s.err = err
		s.Quit()
		return err
	}
	if level.Walls.Len() > s.cfg.Levels.MaxSegments {
		s.err = fmt.Errorf("%w: level %d has %d walls, limit is %d",
			ErrLevelUnavailable, s.levelIndex, level.Walls.Len(), s.cfg.Levels.MaxSegments)
		s.Quit()
		return s.err
	}

	if s.level == nil || s.level.Index != level.Index {
		s.attempts = 0
	}
	s.level = level
	s.launcher = components.NewLauncher(level.Launcher, s.cfg.Physics.MaxInitialSpeed)
	s.projectile.Launch(level.Launcher, geometry.Point{})
	s.resetClock()

	return s.transition(ModeAiming)
}

// Aim 让发射器指向 pointer（世界坐标）
// 飞行中也会更新发射器，但不影响投射物
func (s *Session) Aim(pointer geometry.Point) {
	if s.level == nil {
		return
	}
	s.launcher.Aim(pointer)
}

// Fire 以发射器向量为初速度发射投射物
func (s *Session) Fire() error {
	if s.mode != ModeAiming {
		return &ErrIllegalTransition{From: s.mode, To: ModeLaunching}
	}
	if err := s.transition(ModeLaunching); err != nil {
		return err
	}

	s.projectile.Launch(s.launcher.Origin, s.launcher.InitialVelocity())
	s.resetClock()
	s.attempts++
	if s.recorder != nil {
		s.recorder.RecordAttempt(s.levelIndex)
	}
	log.Printf("[Session] 发射: 关卡 %d, 初速度 (%.2f, %.2f)", s.levelIndex,
		s.projectile.Current.Velocity.X, s.projectile.Current.Velocity.Y)

	return s.transition(ModeSimulating)
}

// Tick 推进一个模拟步：积分 → 碰撞解算 → 命中/静止判定
// 只在 Simulating 模式下生效
func (s *Session) Tick() TickEvent {
	event := TickEvent{WallIndex: -1}
	if s.mode != ModeSimulating {
		return event
	}

	params := s.cfg.Physics
	s.t = systems.StepBallistic(&s.projectile, params, s.t, s.dt)

	bounce := systems.ResolveBounce(s.level.Walls, &s.projectile, params, s.t, s.dt)
	s.t = bounce.T
	s.dt = bounce.Dt
	event.Bounced = bounce.Hit
	event.WallIndex = bounce.WallIndex

	switch {
	case systems.TargetHit(&s.projectile, s.level.Target):
		event.Hit = true
		if s.recorder != nil {
			s.recorder.RecordHit(s.levelIndex, s.t)
		}
		_ = s.transition(ModeHit)
	case systems.IsAtRest(&s.projectile, params.RestGranularity):
		s.restChrono += s.dt
		if s.restChrono >= params.MaxRestTime {
			s.restChrono = 0
			event.Missed = true
			_ = s.transition(ModeMiss)
		}
	default:
		s.restChrono = 0
	}

	s.dt = params.TimeStep
	return event
}

// Abort 飞行中放弃本次发射，重新加载当前关卡
func (s *Session) Abort() error {
	if s.mode != ModeSimulating {
		return &ErrIllegalTransition{From: s.mode, To: ModeLoading}
	}
	if err := s.transition(ModeLoading); err != nil {
		return err
	}
	return s.LoadCurrentLevel()
}

// Advance 命中后进入下一关，最后一关之后回到第一关
func (s *Session) Advance() error {
	if s.mode != ModeHit {
		return &ErrIllegalTransition{From: s.mode, To: ModeLoading}
	}
	if err := s.transition(ModeLoading); err != nil {
		return err
	}
	s.levelIndex = s.cfg.Levels.NextLevel(s.levelIndex)
	return s.LoadCurrentLevel()
}

// Retry 未命中后重新加载当前关卡
func (s *Session) Retry() error {
	if s.mode != ModeMiss {
		return &ErrIllegalTransition{From: s.mode, To: ModeLoading}
	}
	if err := s.transition(ModeLoading); err != nil {
		return err
	}
	return s.LoadCurrentLevel()
}

// Quit 结束会话
func (s *Session) Quit() {
	if s.mode == ModeQuitting {
		return
	}
	_ = s.transition(ModeQuitting)
}

// Title 窗口标题，飞行中附带模拟时间
func (s *Session) Title() string {
	if s.mode == ModeSimulating {
		return fmt.Sprintf("%s - Niveau %d - temps: %5.2f", config.GameWindowTitle, s.levelIndex, s.t)
	}
	return fmt.Sprintf("%s - Niveau %d", config.GameWindowTitle, s.levelIndex)
}

// Mode 当前模式
func (s *Session) Mode() Mode { return s.mode }

// Level 当前关卡，加载前为 nil
func (s *Session) Level() *Level { return s.level }

// LevelIndex 当前关卡编号
func (s *Session) LevelIndex() int { return s.levelIndex }

// Launcher 发射器状态
func (s *Session) Launcher() components.LauncherComponent { return s.launcher }

// Projectile 投射物状态
func (s *Session) Projectile() components.ProjectileComponent { return s.projectile }

// Time 本次发射后的模拟时间
func (s *Session) Time() float64 { return s.t }

// Attempts 当前关卡的发射次数
func (s *Session) Attempts() int { return s.attempts }

// Err 导致会话退出的错误；正常退出时为 nil
func (s *Session) Err() error { return s.err }

func (s *Session) resetClock() {
	s.t = 0
	s.dt = s.cfg.Physics.TimeStep
	s.restChrono = 0
}

func (s *Session) transition(to Mode) error {
	if !CanTransition(s.mode, to) {
		return &ErrIllegalTransition{From: s.mode, To: to}
	}
	log.Printf("[Session] Mode: %s -> %s", s.mode, to)
	s.mode = to
	return nil
}
