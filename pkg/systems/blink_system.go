package systems

import "github.com/decker502/bongallistix/pkg/components"

// UpdateBlink 推进闪烁计时
//
// 参数：
//   - b: 闪烁组件
//   - dt: 时间增量（秒）
//
// 返回本次调用中闪烁是否刚刚结束
func UpdateBlink(b *components.BlinkComponent, dt float64) bool {
	if !b.IsActive {
		return false
	}

	b.Elapsed += dt
	if b.Elapsed >= b.Duration() {
		// 闪烁结束，恢复可见
		b.IsActive = false
		b.Subject = components.BlinkNone
		return true
	}
	return false
}
