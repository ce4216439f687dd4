package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/bongallistix/pkg/app"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	levelIndex = flag.Int("level", 0, "从指定关卡开始（默认从存档继续）")
	levelsDir  = flag.String("levels", "", "从磁盘目录加载关卡，代替内置关卡")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/game.yaml）")
	noAudio    = flag.Bool("no-audio", false, "禁用音效")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameConfig, err := loadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	levelFS, err := levelFileSystem(gameConfig, *levelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "关卡目录不可用: %v\n", err)
		os.Exit(1)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		LevelIndex:   *levelIndex,
		GameConfig:   gameConfig,
		LevelFS:      levelFS,
		DisableAudio: *noAudio,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 窗口关闭由 App.Update 处理，以便先保存进度
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("[Main] 游戏异常退出: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadGameConfig 从指定文件或内置 data/game.yaml 加载配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile("data/game.yaml")
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}

// levelFileSystem 返回关卡所在的文件系统
// 指定 dir 时关卡直接位于该目录下
func levelFileSystem(cfg *config.GameConfig, dir string) (fs.FS, error) {
	if dir == "" {
		return embedded.FS()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cfg.Levels.Dir = "."
	return os.DirFS(dir), nil
}
