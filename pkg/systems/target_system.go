package systems

import (
	"math"

	"github.com/decker502/bongallistix/pkg/components"
)

// TargetHit 投射物当前位置是否落在目标内（包含边界）
func TargetHit(p *components.ProjectileComponent, target components.TargetComponent) bool {
	return target.Contains(p.Current.Position)
}

// IsAtRest 投射物在上一个 tick 内是否没有跨过一个"像素"
//
// 位置除以 granularity 后向下取整，两个轴都与上一记录相同即视为静止。
// granularity 为 1 时就是一个显示像素；非正值按 1 处理。
func IsAtRest(p *components.ProjectileComponent, granularity float64) bool {
	if granularity <= 0 {
		granularity = 1
	}
	prev := p.Previous.Position
	cur := p.Current.Position
	return math.Floor(prev.X/granularity) == math.Floor(cur.X/granularity) &&
		math.Floor(prev.Y/granularity) == math.Floor(cur.Y/granularity)
}
