// verify_shot 无窗口验证工具：加载关卡，按给定初速度发射一次，
// 打印每个模拟步的轨迹，直到命中或静止超时。
//
// 用法：
//
//	go run ./cmd/verify_shot --level 3 --vx 80 --vy 60
//	go run ./cmd/verify_shot --level 3 --aim-x 400 --aim-y 300
//	go run ./cmd/verify_shot --level 3 --vx 80 --physics tuning.yaml
//
// 退出码：0 命中，2 未命中，1 出错。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/game"
	"github.com/decker502/bongallistix/pkg/geometry"
)

var (
	// 命令行参数
	levelIndex  = flag.Int("level", 1, "关卡编号")
	levelsDir   = flag.String("levels", config.DefaultLevelDir, "关卡目录")
	configPath  = flag.String("config", "data/game.yaml", "游戏配置文件（不存在时使用默认配置）")
	physicsPath = flag.String("physics", "", "单独的物理参数文件，覆盖游戏配置中的 physics 段")
	vx          = flag.Float64("vx", 0, "初速度 x 分量")
	vy          = flag.Float64("vy", 0, "初速度 y 分量")
	aimX        = flag.Float64("aim-x", 0, "瞄准点 x（与 --aim-y 一起使用，代替 --vx/--vy）")
	aimY        = flag.Float64("aim-y", 0, "瞄准点 y")
	maxTicks    = flag.Int("max-ticks", 100000, "最多模拟的步数")
	quiet       = flag.Bool("quiet", false, "只打印结果，不打印轨迹")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if err := overridePhysics(cfg, *physicsPath); err != nil {
		fmt.Fprintf(os.Stderr, "物理参数加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg.Levels.Dir = "."
	cfg.Levels.First = 1
	if *levelIndex > cfg.Levels.Last {
		cfg.Levels.Last = *levelIndex
	}

	session := game.NewSession(cfg, game.NewFSLevelProvider(os.DirFS(*levelsDir), ".", cfg.Levels.MaxSegments))
	if err := session.SetLevelIndex(*levelIndex); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := session.LoadCurrentLevel(); err != nil {
		fmt.Fprintf(os.Stderr, "关卡加载失败: %v\n", err)
		os.Exit(1)
	}

	aim := geometry.Point{X: *aimX, Y: *aimY}
	if !isFlagSet("aim-x") && !isFlagSet("aim-y") {
		aim = session.Level().Launcher.Add(geometry.Point{X: *vx, Y: *vy})
	}

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}
	result, err := runShot(session, aim, *maxTicks, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("结果: %s (关卡 %d, t = %.2f s)\n", result, *levelIndex, session.Time())
	if result != game.ModeHit {
		os.Exit(2)
	}
}

// loadConfig 读取游戏配置，文件不存在时使用默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(path)
}

// overridePhysics path 非空时用独立的物理参数文件替换 cfg.Physics
func overridePhysics(cfg *config.GameConfig, path string) error {
	if path == "" {
		return nil
	}
	physics, err := config.LoadPhysicsConfig(path)
	if err != nil {
		return err
	}
	cfg.Physics = *physics
	return nil
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// runShot 瞄准并发射，逐步模拟到命中或未命中
// 返回结束时的模式（Hit 或 Miss）
func runShot(session *game.Session, aim geometry.Point, maxTicks int, out io.Writer) (game.Mode, error) {
	session.Aim(aim)
	launcher := session.Launcher()
	v := launcher.InitialVelocity()
	if d := geometry.Distance(launcher.Origin, aim); d > launcher.MaxLength {
		fmt.Fprintf(out, "初速度被限制为最大值 %.2f\n", launcher.MaxLength)
	}
	fmt.Fprintf(out, "发射: 起点 (%.2f, %.2f), 初速度 (%.2f, %.2f)\n", launcher.Origin.X, launcher.Origin.Y, v.X, v.Y)

	if err := session.Fire(); err != nil {
		return session.Mode(), err
	}

	for i := 0; i < maxTicks; i++ {
		ev := session.Tick()
		projectile := session.Projectile()
		state := projectile.Current
		fmt.Fprintf(out, "t=%7.2f  pos=(%9.3f, %9.3f)  v=(%9.3f, %9.3f)  |v|=%8.3f",
			session.Time(), state.Position.X, state.Position.Y, state.Velocity.X, state.Velocity.Y, projectile.Speed())
		if ev.Bounced {
			wall := session.Level().Walls.At(ev.WallIndex)
			fmt.Fprintf(out, "  反弹: 墙 %d (%.0f,%.0f)-(%.0f,%.0f)", ev.WallIndex, wall.A.X, wall.A.Y, wall.B.X, wall.B.Y)
		}
		fmt.Fprintln(out)

		if ev.Hit || ev.Missed {
			return session.Mode(), nil
		}
	}
	return session.Mode(), fmt.Errorf("no result after %d ticks", maxTicks)
}
