package components

import "github.com/decker502/bongallistix/pkg/geometry"

// LauncherComponent 发射器
//
// Origin 是固定端（发射点），Tip 跟随指针移动。
// 发射器长度被限制在 MaxLength 以内，发射时 Tip - Origin 即为初速度。
type LauncherComponent struct {
	Origin    geometry.Point
	Tip       geometry.Point
	MaxLength float64
}

// NewLauncher 创建发射器，初始时 Tip 与 Origin 重合
func NewLauncher(origin geometry.Point, maxLength float64) LauncherComponent {
	return LauncherComponent{Origin: origin, Tip: origin, MaxLength: maxLength}
}

// Aim 让发射器指向 pointer
// 超过最大长度时沿同一方向截断到 MaxLength
func (l *LauncherComponent) Aim(pointer geometry.Point) {
	length := geometry.Segment{A: l.Origin, B: pointer}.Length()
	if length > l.MaxLength {
		l.Tip = l.Origin.Add(pointer.Sub(l.Origin).Scale(l.MaxLength / length))
		return
	}
	l.Tip = pointer
}

// InitialVelocity 发射初速度
func (l *LauncherComponent) InitialVelocity() geometry.Point {
	return l.Tip.Sub(l.Origin)
}

// Segment 返回发射器线段，用于绘制
func (l *LauncherComponent) Segment() geometry.Segment {
	return geometry.Segment{A: l.Origin, B: l.Tip}
}
