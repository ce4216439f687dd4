package systems

import (
	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/geometry"
)

// BounceResult 碰撞解算结果
type BounceResult struct {
	// T 修正后的模拟时间
	T float64

	// Dt 修正后的时间步长（命中时按实际走过的比例缩短）
	Dt float64

	// Hit 本 tick 是否撞墙
	Hit bool

	// WallIndex 被撞墙壁在 WallSet 中的下标，未撞墙时为 -1
	WallIndex int

	// Impact 撞击点（去穿透偏移之前）
	Impact geometry.Point
}

// ResolveBounce 检查最近一次运动轨迹是否穿过墙壁，并把投射物修正到撞击状态
//
// 墙壁按插入顺序扫描，只处理第一个相交的墙壁，不寻找最近的交点。
// 命中时：
//   - 位置移到撞击点，t 和 dt 按 drf/d 缩放（d 为整步位移，drf 为到撞击点的位移）
//   - 速度在前后两个记录之间线性插值
//   - 竖直墙反转 vx，水平墙反转 vy
//   - 位置沿来向推离墙面 BounceOffset
//   - 两个轴的速度乘以恢复系数
//
// 投射物没有移动（d == 0）时不可能发生反弹。
func ResolveBounce(walls *components.WallSet, p *components.ProjectileComponent, params config.PhysicsConfig, t, dt float64) BounceResult {
	result := BounceResult{T: t, Dt: dt, WallIndex: -1}

	motion := p.Motion()
	var wall geometry.Segment
	for i, w := range walls.All() {
		impact, ok := geometry.IntersectSegments(motion, w)
		if !ok {
			continue
		}
		wall = w
		result.WallIndex = i
		result.Impact = impact
		break
	}
	if result.WallIndex < 0 {
		return result
	}

	prev := p.Previous
	d := geometry.Distance(prev.Position, p.Current.Position)
	if d == 0 {
		result.WallIndex = -1
		return result
	}
	drf := geometry.Distance(prev.Position, result.Impact)
	ratio := drf / d

	result.Hit = true
	result.T = t - dt + dt*ratio
	result.Dt = dt * ratio

	v := prev.Velocity.Add(p.Current.Velocity.Sub(prev.Velocity).Scale(ratio))
	pos := result.Impact

	if wall.Line().IsVertical() {
		v.X = -v.X
		pos.X = depenetrate(prev.Position.X, pos.X, params.BounceOffset)
	} else {
		v.Y = -v.Y
		pos.Y = depenetrate(prev.Position.Y, pos.Y, params.BounceOffset)
	}

	p.Current.Position = pos
	p.Current.Velocity = v.Scale(params.Restitution)

	return result
}

// depenetrate 把撞击坐标推回投射物来的一侧
func depenetrate(from, impact, offset float64) float64 {
	if from <= impact {
		return impact - offset
	}
	return impact + offset
}
