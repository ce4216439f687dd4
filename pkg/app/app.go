// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、打开存档、
// 创建会话与场景，并实现 ebiten.Game 接口。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/game"
	"github.com/decker502/bongallistix/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelIndex 指定要加载的关卡编号，0 表示从存档继续
	LevelIndex int
	// GameConfig 已加载的游戏配置
	GameConfig *config.GameConfig
	// LevelFS 关卡所在的文件系统，关卡文件位于 GameConfig.Levels.Dir 下
	LevelFS fs.FS
	// AppName gdata 存储使用的应用名，为空时使用 game.AppName
	AppName string
	// DisableAudio 不创建音频上下文
	DisableAudio bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.GameConfig == nil {
		return nil, fmt.Errorf("game config is required")
	}
	if cfg.LevelFS == nil {
		return nil, fmt.Errorf("level filesystem is required")
	}
	if cfg.LevelIndex != 0 && !cfg.GameConfig.Levels.Contains(cfg.LevelIndex) {
		return nil, fmt.Errorf("level %d out of range %d..%d",
			cfg.LevelIndex, cfg.GameConfig.Levels.First, cfg.GameConfig.Levels.Last)
	}

	appName := cfg.AppName
	if appName == "" {
		appName = game.AppName
	}
	gameState := game.NewGameState(appName)

	var audioManager *game.AudioManager
	if !cfg.DisableAudio {
		audioManager = game.NewAudioManager(audio.NewContext(game.SampleRate), gameState.Settings)
		audioManager.PreloadSounds()
		log.Printf("[App] AudioManager initialized")
	}

	levels := cfg.GameConfig.Levels
	provider := game.NewFSLevelProvider(cfg.LevelFS, levels.Dir, levels.MaxSegments)
	session := game.NewSession(cfg.GameConfig, provider)
	session.SetRecorder(gameState.Saves)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewGameSceneFactory(session, gameState, audioManager, cfg.GameConfig.Blink))

	// 确定加载哪个关卡
	levelToLoad := cfg.LevelIndex
	if levelToLoad == 0 {
		levelToLoad = gameState.Saves.ResumeLevel(levels)
		log.Printf("[App] Resuming at level %d", levelToLoad)
	}
	log.Printf("[App] Starting level: %d", levelToLoad)
	sceneManager.LoadLevel(levelToLoad)

	if gameState.Settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），每次推进一个模拟步
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// Esc 或关闭窗口时保存并退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)

	return a.terminationError()
}

// terminationError 场景请求退出时返回 ebiten.Termination 或导致退出的错误
func (a *App) terminationError() error {
	done, err := a.sceneManager.Terminated()
	if !done {
		return nil
	}
	a.sceneManager.SaveOnExit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return ebiten.Termination
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	settings := a.gameState.Settings
	settings.SetFullscreen(!settings.GetSettings().Fullscreen)
	if err := settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存存档
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
