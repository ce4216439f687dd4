package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在游戏关闭时保存状态
//
// 实现此接口的场景会在窗口关闭或会话结束时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// Terminator 可选接口：场景请求结束游戏循环
type Terminator interface {
	// Terminated 返回 true 表示应当退出；err 为导致退出的错误，正常退出时为 nil
	Terminated() (bool, error)
}
