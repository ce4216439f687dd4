package systems

import (
	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
)

// StepBallistic 在不考虑墙壁的情况下把投射物推进一个时间步
//
// 步骤：
//  1. 当前记录复制到 Previous
//  2. 两个轴分别施加空气阻力 v' = v - (k·v²/m)·dt
//  3. 只对竖直速度施加重力
//  4. 用新速度从 Previous 位置积分（半隐式欧拉）
//
// 阻力项使用 v² 而不是 v·|v|，对负速度同样减小数值，这是沿用下来的近似。
//
// 返回推进后的模拟时间 t + dt。
func StepBallistic(p *components.ProjectileComponent, params config.PhysicsConfig, t, dt float64) float64 {
	p.Previous = p.Current

	k := params.DragCoefficient()
	prev := p.Previous

	vx := prev.Velocity.X - (k*prev.Velocity.X*prev.Velocity.X/params.Mass)*dt
	vy := prev.Velocity.Y - (k*prev.Velocity.Y*prev.Velocity.Y/params.Mass)*dt
	vy -= params.Gravity * dt

	p.Current.Velocity.X = vx
	p.Current.Velocity.Y = vy
	p.Current.Position.X = prev.Position.X + vx*dt
	p.Current.Position.Y = prev.Position.Y + vy*dt

	return t + dt
}
