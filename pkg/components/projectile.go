package components

import "github.com/decker502/bongallistix/pkg/geometry"

// KinematicState 某一时刻投射物的位置与速度
type KinematicState struct {
	Position geometry.Point // 位置（世界坐标）
	Velocity geometry.Point // 速度向量（单位/秒）
}

// ProjectileComponent 投射物组件
//
// 保存两个按时间索引的记录：Previous 为上一个 tick 结束时的状态，
// Current 为本 tick 的状态。两者连成的线段就是最近一次的运动轨迹，
// 碰撞解算依赖它查找穿过的墙壁。
type ProjectileComponent struct {
	Previous KinematicState
	Current  KinematicState
}

// Launch 以给定的起点和初速度重置投射物，两个记录都被覆盖
func (p *ProjectileComponent) Launch(origin, velocity geometry.Point) {
	p.Current = KinematicState{Position: origin, Velocity: velocity}
	p.Previous = p.Current
}

// Motion 返回最近一次运动轨迹（Previous → Current）
func (p *ProjectileComponent) Motion() geometry.Segment {
	return geometry.Segment{A: p.Previous.Position, B: p.Current.Position}
}

// Speed 当前速度的大小
func (p *ProjectileComponent) Speed() float64 {
	return geometry.Distance(geometry.Point{}, p.Current.Velocity)
}
