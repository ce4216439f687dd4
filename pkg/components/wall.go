package components

import (
	"errors"
	"fmt"

	"github.com/decker502/bongallistix/pkg/geometry"
)

// ErrWallCapacityExceeded 关卡墙壁数量超过上限
var ErrWallCapacityExceeded = errors.New("wall capacity exceeded")

// WallSet 关卡的墙壁集合
//
// 墙壁按插入顺序保存，碰撞解算也按这个顺序扫描，第一个被穿过的墙壁获胜。
// 集合容量在创建时固定，超出时 Add 返回 ErrWallCapacityExceeded。
type WallSet struct {
	walls    []geometry.Segment
	capacity int
}

// NewWallSet 创建容量为 capacity 的空墙壁集合
func NewWallSet(capacity int) *WallSet {
	return &WallSet{
		walls:    make([]geometry.Segment, 0, capacity),
		capacity: capacity,
	}
}

// Add 追加一面墙
func (ws *WallSet) Add(seg geometry.Segment) error {
	if len(ws.walls) >= ws.capacity {
		return fmt.Errorf("%w: limit is %d", ErrWallCapacityExceeded, ws.capacity)
	}
	ws.walls = append(ws.walls, seg)
	return nil
}

// AddRectangle 把对角点 (x0,y0)-(x1,y1) 定义的矩形转换为 4 面边界墙
// 顺序：左、上、右、下
func (ws *WallSet) AddRectangle(x0, y0, x1, y1 float64) error {
	sides := [4]geometry.Segment{
		geometry.NewSegment(x0, y0, x0, y1),
		geometry.NewSegment(x0, y1, x1, y1),
		geometry.NewSegment(x1, y1, x1, y0),
		geometry.NewSegment(x1, y0, x0, y0),
	}
	for _, s := range sides {
		if err := ws.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Len 墙壁数量
func (ws *WallSet) Len() int {
	return len(ws.walls)
}

// Cap 容量上限
func (ws *WallSet) Cap() int {
	return ws.capacity
}

// At 返回第 i 面墙
func (ws *WallSet) At(i int) geometry.Segment {
	return ws.walls[i]
}

// All 返回全部墙壁（只读，调用方不应修改）
func (ws *WallSet) All() []geometry.Segment {
	return ws.walls
}
