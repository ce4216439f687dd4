// Package geometry 提供弹道模拟使用的二维几何内核
//
// 直线统一使用 c·y = a·x + b 的形式表示：
//   - c == 1 表示非竖直直线（y = a·x + b）
//   - c == 0 表示竖直直线（此时 a = 1, b = -x）
//
// 所有求解失败（平行、重合、无交点）都通过返回 ok=false 表达，不使用 error 或 panic。
package geometry

import "math"

// Point 二维坐标点
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Add 返回 p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 返回 p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale 返回 p * k
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Segment 由两个端点 A、B 组成的线段
// 既用于墙壁，也用于投射物上一步的运动轨迹以及发射器的瞄准向量
type Segment struct {
	A Point
	B Point
}

// NewSegment 根据四个坐标值创建线段
func NewSegment(ax, ay, bx, by float64) Segment {
	return Segment{A: Point{X: ax, Y: ay}, B: Point{X: bx, Y: by}}
}

// Line 返回承载该线段的直线方程
func (s Segment) Line() Line {
	return LineThroughPoints(s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// Length 返回线段长度
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// IsVertical 线段是否竖直（两端点 x 坐标完全相等）
func (s Segment) IsVertical() bool {
	return s.A.X == s.B.X
}

// IsHorizontal 线段是否水平（两端点 y 坐标完全相等且不是一个点）
func (s Segment) IsHorizontal() bool {
	return s.A.Y == s.B.Y && s.A.X != s.B.X
}

// Line 直线方程 C·y = A·x + B
type Line struct {
	A float64
	B float64
	C float64
}

// IsVertical 直线是否为竖直线（C == 0）
func (l Line) IsVertical() bool {
	return l.C == 0
}

// SolveLinearSystem2 使用克莱姆法则求解二元一次方程组
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// 行列式 d = a1·b2 − b1·a2 与 0 做精确比较：d == 0 时（直线平行或重合）返回 (0, 0, false)，
// 调用方必须检查 ok，而不是坐标值。
func SolveLinearSystem2(a1, b1, c1, a2, b2, c2 float64) (x, y float64, ok bool) {
	d := a1*b2 - b1*a2
	if d == 0 {
		return 0, 0, false
	}

	dx := c1*b2 - b1*c2
	dy := a1*c2 - c1*a2
	return dx / d, dy / d, true
}

// LineThroughPoints 求经过 (x1,y1) 和 (x2,y2) 的直线方程
//
// x1 == x2 时为竖直线：C=0, A=1, B=-x1。
// 否则 C=1，(A,B) 由方程组 x1·a + b = y1, x2·a + b = y2 求得；
// 由于 x1 != x2，该方程组的行列式必不为 0，因此总能求解成功。
func LineThroughPoints(x1, y1, x2, y2 float64) Line {
	if x1 == x2 {
		return Line{A: 1, B: -x1, C: 0}
	}

	a, b, _ := SolveLinearSystem2(x1, 1, y1, x2, 1, y2)
	return Line{A: a, B: b, C: 1}
}

// IntersectLines 求两条直线的交点
// 将 c·y = a·x + b 改写为 -a·x + c·y = b 后求解；直线平行时返回 ok=false
func IntersectLines(l1, l2 Line) (x, y float64, ok bool) {
	return SolveLinearSystem2(-l1.A, l1.C, l1.B, -l2.A, l2.C, l2.B)
}

// PointOnSegment 判断已知位于线段所在直线上的点 (x,y) 是否落在线段 (ax,ay)-(bx,by) 内
//
// 前置条件：(x,y) 已经在直线上，本函数不做共线检查，只做边界检查（含端点）。
// 竖直线段只比较 y，其余情况只比较 x，避免在"错误"的轴上做浮点比较：
// 例如 (2, 10.0000002) 与线段 (0,10)-(4,10)，或 (4.9999999999, 8) 与线段 (5,0)-(5,15)。
func PointOnSegment(ax, ay, bx, by, x, y float64) bool {
	line := LineThroughPoints(ax, ay, bx, by)
	if line.IsVertical() {
		return between(y, ay, by)
	}
	return between(x, ax, bx)
}

// between 判断 v 是否位于 [lo, hi] 或 [hi, lo] 内（含端点）
func between(v, p, q float64) bool {
	return (v >= p && v <= q) || (v >= q && v <= p)
}

// IntersectSegments 求两条线段的交点
//
// 先求两条承载直线的交点，再要求交点同时属于两条线段。
// 直线平行或交点落在任一线段之外时返回 ok=false。
func IntersectSegments(s1, s2 Segment) (Point, bool) {
	l1 := s1.Line()
	l2 := s2.Line()

	x, y, ok := IntersectLines(l1, l2)
	if !ok {
		return Point{}, false
	}

	if !PointOnSegment(s1.A.X, s1.A.Y, s1.B.X, s1.B.Y, x, y) {
		return Point{}, false
	}
	if !PointOnSegment(s2.A.X, s2.A.Y, s2.B.X, s2.B.Y, x, y) {
		return Point{}, false
	}

	return Point{X: x, Y: y}, true
}

// Distance 两点间的欧几里得距离
func Distance(p0, p1 Point) float64 {
	dx := p0.X - p1.X
	dy := p0.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sign 返回实数的符号：x < 0 返回 -1，其余（包括 0）返回 +1
func Sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
