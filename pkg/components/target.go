package components

import (
	"math"

	"github.com/decker502/bongallistix/pkg/geometry"
)

// TargetComponent 目标区域，由两个对角点定义的轴对齐矩形
type TargetComponent struct {
	Min geometry.Point
	Max geometry.Point
}

// NewSquareTarget 以 origin 为一角、边长 side 创建正方形目标
func NewSquareTarget(origin geometry.Point, side float64) TargetComponent {
	return NewRectTarget(origin, geometry.Point{X: origin.X + side, Y: origin.Y + side})
}

// NewRectTarget 由任意两个对角点创建目标，内部会规范化为 Min/Max
func NewRectTarget(p0, p1 geometry.Point) TargetComponent {
	return TargetComponent{
		Min: geometry.Point{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: geometry.Point{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// Contains 判断点是否在目标内（包含边界）
func (t TargetComponent) Contains(p geometry.Point) bool {
	return p.X >= t.Min.X && p.X <= t.Max.X &&
		p.Y >= t.Min.Y && p.Y <= t.Max.Y
}

// Width 目标宽度
func (t TargetComponent) Width() float64 { return t.Max.X - t.Min.X }

// Height 目标高度
func (t TargetComponent) Height() float64 { return t.Max.Y - t.Min.Y }
