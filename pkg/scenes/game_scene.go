package scenes

import (
	"log"

	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/game"
	"github.com/decker502/bongallistix/pkg/geometry"
	"github.com/decker502/bongallistix/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD 布局
const (
	HUDMarginX     = 8
	HUDMarginY     = 6
	HUDLineSpacing = 16
)

// GameScene 游戏主场景
//
// 把鼠标输入转换为会话操作（瞄准、发射、中止），每帧推进一次模拟，
// 并在命中/未命中后播放闪烁反馈，结束后自动进入下一关或重试。
type GameScene struct {
	session   *game.Session
	gameState *game.GameState    // 可为 nil（无存档）
	audio     *game.AudioManager // 可为 nil（静音）

	blink       components.BlinkComponent
	blinkConfig config.BlinkConfig

	hudFace     text.Face
	windowTitle string // 上一次设置的窗口标题，避免每帧重复设置
}

// sceneInput 一帧的输入快照
// 与 ebiten 的输入轮询分离，便于在测试中直接驱动场景
type sceneInput struct {
	cursor      geometry.Point // 鼠标位置（世界坐标）
	released    bool           // 左键刚刚松开
	toggleSound bool
	toggleHUD   bool
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - session: 已加载当前关卡的会话
//   - gs: 全局状态（进度与设置），可为 nil
//   - am: 音频管理器，可为 nil
//   - blink: 闪烁反馈配置
func NewGameScene(session *game.Session, gs *game.GameState, am *game.AudioManager, blink config.BlinkConfig) *GameScene {
	return &GameScene{
		session:     session,
		gameState:   gs,
		audio:       am,
		blinkConfig: blink,
		hudFace:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// NewGameSceneFactory 返回 SceneManager 使用的场景工厂
// 工厂切换会话到指定关卡并加载；加载失败时场景通过 Terminated 报告错误
func NewGameSceneFactory(session *game.Session, gs *game.GameState, am *game.AudioManager, blink config.BlinkConfig) game.SceneFactory {
	return func(levelIndex int) game.Scene {
		if err := session.SetLevelIndex(levelIndex); err != nil {
			log.Printf("[GameScene] 无法切换到关卡 %d: %v", levelIndex, err)
		}
		if err := session.LoadCurrentLevel(); err != nil {
			log.Printf("[GameScene] 关卡 %d 加载失败: %v", levelIndex, err)
		}
		return NewGameScene(session, gs, am, blink)
	}
}

// Update 轮询输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	in := sceneInput{
		cursor:      geometry.Point{X: float64(x), Y: config.ScreenToWorldY(float64(y))},
		released:    inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		toggleSound: inpututil.IsKeyJustPressed(ebiten.KeyS),
		toggleHUD:   inpututil.IsKeyJustPressed(ebiten.KeyH),
	}
	s.step(in, deltaTime)

	if title := s.session.Title(); title != s.windowTitle {
		ebiten.SetWindowTitle(title)
		s.windowTitle = title
	}
}

// step 根据当前模式处理一帧输入
func (s *GameScene) step(in sceneInput, deltaTime float64) {
	if in.toggleSound && s.settings() != nil {
		enabled := s.settings().ToggleSound()
		log.Printf("[GameScene] Sound enabled: %v", enabled)
		s.saveSettings()
	}
	if in.toggleHUD && s.settings() != nil {
		s.settings().SetShowHUD(!s.settings().GetSettings().ShowHUD)
		s.saveSettings()
	}

	switch s.session.Mode() {
	case game.ModeAiming:
		s.session.Aim(in.cursor)
		if in.released {
			if err := s.session.Fire(); err != nil {
				log.Printf("[GameScene] Fire failed: %v", err)
				return
			}
			s.playSound(game.SoundFire)
		}

	case game.ModeSimulating:
		if in.released {
			if err := s.session.Abort(); err != nil {
				log.Printf("[GameScene] Abort failed: %v", err)
			}
			return
		}
		s.handleTick(s.session.Tick())

	case game.ModeHit, game.ModeMiss:
		if s.blink.IsActive && !systems.UpdateBlink(&s.blink, deltaTime) {
			return
		}
		s.finishShot()
	}
}

// handleTick 把模拟事件转换为音效与闪烁反馈
func (s *GameScene) handleTick(ev game.TickEvent) {
	if ev.Bounced {
		s.playSound(game.SoundBounce)
	}
	period := float64(s.blinkConfig.PeriodMs) / 1000
	switch {
	case ev.Hit:
		s.playSound(game.SoundHit)
		s.blink.Start(components.BlinkTarget, s.blinkConfig.Count, period)
	case ev.Missed:
		s.playSound(game.SoundMiss)
		s.blink.Start(components.BlinkWalls, s.blinkConfig.Count, period)
	}
}

// finishShot 闪烁结束后进入下一关（命中）或重试当前关（未命中）
func (s *GameScene) finishShot() {
	var err error
	if s.session.Mode() == game.ModeHit {
		err = s.session.Advance()
	} else {
		err = s.session.Retry()
	}
	if err != nil {
		log.Printf("[GameScene] 关卡加载失败: %v", err)
		return
	}

	if s.gameState != nil && s.gameState.Saves != nil {
		s.gameState.Saves.SetCurrentLevel(s.session.LevelIndex())
	}
}

// Terminated 会话进入退出模式时结束游戏循环
func (s *GameScene) Terminated() (bool, error) {
	if s.session.Mode() != game.ModeQuitting {
		return false, nil
	}
	return true, s.session.Err()
}

// SaveOnExit 保存当前关卡进度
func (s *GameScene) SaveOnExit() bool {
	s.session.Quit()
	if s.gameState == nil || s.gameState.Saves == nil {
		return true
	}
	s.gameState.Saves.SetCurrentLevel(s.session.LevelIndex())
	if err := s.gameState.Saves.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save progress: %v", err)
		return false
	}
	return true
}

func (s *GameScene) settings() *game.SettingsManager {
	if s.gameState == nil {
		return nil
	}
	return s.gameState.Settings
}

func (s *GameScene) saveSettings() {
	if err := s.settings().Save(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}
}

func (s *GameScene) playSound(id game.SoundID) {
	if s.audio != nil {
		s.audio.PlaySound(id)
	}
}
