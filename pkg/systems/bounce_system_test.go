package systems

import (
	"math"
	"testing"

	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/geometry"
	"pgregory.net/rapid"
)

// testFatalf 同时适用于 *testing.T 和 *rapid.T
type testFatalf interface {
	Helper()
	Fatalf(format string, args ...any)
}

func wallsOf(t testFatalf, segs ...geometry.Segment) *components.WallSet {
	t.Helper()
	ws := components.NewWallSet(len(segs))
	for _, s := range segs {
		if err := ws.Add(s); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}
	return ws
}

// TestResolveBounce_VerticalWall 水平发射撞上 10 单位外的竖直墙
func TestResolveBounce_VerticalWall(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t, geometry.NewSegment(10, -5, 10, 5))

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 200, Y: 0})

	tm := StepBallistic(p, params, 0, 0.1)
	res := ResolveBounce(walls, p, params, tm, 0.1)

	if !res.Hit || res.WallIndex != 0 {
		t.Fatalf("expected a hit on wall 0, got %+v", res)
	}
	if res.Impact != (geometry.Point{X: 10, Y: 0}) {
		t.Errorf("Impact = %+v, want {10 0}", res.Impact)
	}
	if p.Current.Position.X != 10-params.BounceOffset {
		t.Errorf("x = %v, want %v", p.Current.Position.X, 10-params.BounceOffset)
	}
	if p.Current.Position.Y != 0 {
		t.Errorf("y = %v, want 0", p.Current.Position.Y)
	}
	if p.Current.Velocity.X != -200*params.Restitution {
		t.Errorf("vx = %v, want %v", p.Current.Velocity.X, -200*params.Restitution)
	}
	if math.Abs(res.T-0.05) > 1e-12 || math.Abs(res.Dt-0.05) > 1e-12 {
		t.Errorf("t/dt = %v/%v, want 0.05/0.05", res.T, res.Dt)
	}
}

// TestResolveBounce_HorizontalWall 竖直下落撞上地面
func TestResolveBounce_HorizontalWall(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t, geometry.NewSegment(-10, 0, 10, 0))

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{X: 0, Y: 5}, geometry.Point{X: 0, Y: -100})

	tm := StepBallistic(p, params, 2, 0.1)
	res := ResolveBounce(walls, p, params, tm, 0.1)

	if !res.Hit {
		t.Fatalf("expected a hit, got %+v", res)
	}
	if p.Current.Position.Y != params.BounceOffset {
		t.Errorf("y = %v, want %v (pushed back above the floor)", p.Current.Position.Y, params.BounceOffset)
	}
	if p.Current.Velocity.Y != 100*params.Restitution {
		t.Errorf("vy = %v, want %v", p.Current.Velocity.Y, 100*params.Restitution)
	}
	if math.Abs(res.T-2.05) > 1e-12 {
		t.Errorf("t = %v, want 2.05", res.T)
	}
}

// TestResolveBounce_VelocityInterpolation 撞击速度在前后记录之间线性插值
func TestResolveBounce_VelocityInterpolation(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t, geometry.NewSegment(10, -100, 10, 100))

	p := &components.ProjectileComponent{
		Previous: components.KinematicState{Position: geometry.Point{X: 0, Y: 0}, Velocity: geometry.Point{X: 100, Y: 10}},
		Current:  components.KinematicState{Position: geometry.Point{X: 40, Y: 0}, Velocity: geometry.Point{X: 60, Y: 30}},
	}
	ResolveBounce(walls, p, params, 1, 0.4)

	// drf/d = 10/40
	wantVx := -(100 + (60-100)*0.25) * params.Restitution
	wantVy := (10 + (30-10)*0.25) * params.Restitution
	if math.Abs(p.Current.Velocity.X-wantVx) > 1e-12 || math.Abs(p.Current.Velocity.Y-wantVy) > 1e-12 {
		t.Errorf("velocity = %+v, want {%v %v}", p.Current.Velocity, wantVx, wantVy)
	}
}

// TestResolveBounce_FirstWallInOrderWins 按插入顺序取第一个相交的墙，而不是最近的
func TestResolveBounce_FirstWallInOrderWins(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t,
		geometry.NewSegment(15, -5, 15, 5),
		geometry.NewSegment(10, -5, 10, 5),
	)

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{}, geometry.Point{X: 200, Y: 0})
	tm := StepBallistic(p, params, 0, 0.1)
	res := ResolveBounce(walls, p, params, tm, 0.1)

	if res.WallIndex != 0 {
		t.Errorf("WallIndex = %d, want 0", res.WallIndex)
	}
	if res.Impact.X != 15 {
		t.Errorf("Impact.X = %v, want 15", res.Impact.X)
	}
}

// TestResolveBounce_NoHit 没有穿过墙壁时状态不变
func TestResolveBounce_NoHit(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t,
		geometry.NewSegment(100, -5, 100, 5),
		geometry.NewSegment(0, 50, 20, 50),
	)

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{}, geometry.Point{X: 200, Y: 0})
	tm := StepBallistic(p, params, 0, 0.1)
	before := *p

	res := ResolveBounce(walls, p, params, tm, 0.1)
	if res.Hit || res.WallIndex != -1 {
		t.Errorf("expected no hit, got %+v", res)
	}
	if res.T != tm || res.Dt != 0.1 {
		t.Errorf("t/dt changed without a hit: %v/%v", res.T, res.Dt)
	}
	if *p != before {
		t.Errorf("projectile changed without a hit: %+v", *p)
	}
}

// TestResolveBounce_ZeroMotion 没有位移时不会反弹
func TestResolveBounce_ZeroMotion(t *testing.T) {
	params := freeFlightParams()
	walls := wallsOf(t, geometry.NewSegment(-20, 0, 20, 0))

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{X: 10, Y: 0}, geometry.Point{X: 3, Y: -4})
	before := *p

	res := ResolveBounce(walls, p, params, 0, 0.1)
	if res.Hit {
		t.Errorf("expected no bounce for a zero-length motion, got %+v", res)
	}
	if *p != before {
		t.Errorf("projectile changed: %+v", *p)
	}
}

// TestResolveBounce_VerticalWallProperty 撞竖直墙后 vx 反号、vy 同号、速率减小
func TestResolveBounce_VerticalWallProperty(t *testing.T) {
	params := freeFlightParams()

	rapid.Check(t, func(t *rapid.T) {
		wallX := float64(rapid.IntRange(-100, 100).Draw(t, "wallX"))
		y0 := rapid.Float64Range(-50, 50).Draw(t, "y0")
		y1 := rapid.Float64Range(-50, 50).Draw(t, "y1")
		before := rapid.Float64Range(0.1, 40).Draw(t, "before")
		after := rapid.Float64Range(0.1, 40).Draw(t, "after")
		vx0 := rapid.Float64Range(1, 120).Draw(t, "vx0")
		vx1 := rapid.Float64Range(1, 120).Draw(t, "vx1")
		vy := rapid.Float64Range(-120, 120).Draw(t, "vy")

		ws := wallsOf(t, geometry.NewSegment(wallX, -1000, wallX, 1000))

		p := &components.ProjectileComponent{
			Previous: components.KinematicState{Position: geometry.Point{X: wallX - before, Y: y0}, Velocity: geometry.Point{X: vx0, Y: vy}},
			Current:  components.KinematicState{Position: geometry.Point{X: wallX + after, Y: y1}, Velocity: geometry.Point{X: vx1, Y: vy}},
		}
		ratio := before / (before + after)
		impactVx := vx0 + (vx1-vx0)*ratio
		preSpeed := math.Hypot(impactVx, vy)

		res := ResolveBounce(ws, p, params, 0, 0.1)
		if !res.Hit {
			t.Fatalf("expected a hit: %+v", res)
		}
		if p.Current.Velocity.X >= 0 {
			t.Fatalf("vx should flip sign, got %v", p.Current.Velocity.X)
		}
		if (p.Current.Velocity.Y < 0) != (vy < 0) {
			t.Fatalf("vy sign changed: %v -> %v", vy, p.Current.Velocity.Y)
		}
		if postSpeed := p.Speed(); postSpeed >= preSpeed {
			t.Fatalf("speed did not decrease: %v -> %v", preSpeed, postSpeed)
		}
		if p.Current.Position.X != wallX-params.BounceOffset {
			t.Fatalf("x = %v, want %v", p.Current.Position.X, wallX-params.BounceOffset)
		}
		if res.Dt <= 0 || res.Dt > 0.1 {
			t.Fatalf("dt out of range: %v", res.Dt)
		}
	})
}

// TestResolveBounce_HorizontalWallProperty 撞水平墙后 vy 反号、vx 同号、速率减小
func TestResolveBounce_HorizontalWallProperty(t *testing.T) {
	params := freeFlightParams()

	rapid.Check(t, func(t *rapid.T) {
		wallY := float64(rapid.IntRange(-100, 100).Draw(t, "wallY"))
		x := rapid.Float64Range(-50, 50).Draw(t, "x")
		above := rapid.Float64Range(0.1, 40).Draw(t, "above")
		below := rapid.Float64Range(0.1, 40).Draw(t, "below")
		vy0 := rapid.Float64Range(-120, -1).Draw(t, "vy0")
		vy1 := rapid.Float64Range(-120, -1).Draw(t, "vy1")
		vx := rapid.Float64Range(-120, 120).Draw(t, "vx")

		ws := wallsOf(t, geometry.NewSegment(-1000, wallY, 1000, wallY))

		p := &components.ProjectileComponent{
			Previous: components.KinematicState{Position: geometry.Point{X: x, Y: wallY + above}, Velocity: geometry.Point{X: vx, Y: vy0}},
			Current:  components.KinematicState{Position: geometry.Point{X: x, Y: wallY - below}, Velocity: geometry.Point{X: vx, Y: vy1}},
		}
		ratio := above / (above + below)
		preSpeed := math.Hypot(vx, vy0+(vy1-vy0)*ratio)

		res := ResolveBounce(ws, p, params, 0, 0.1)
		if !res.Hit {
			t.Fatalf("expected a hit: %+v", res)
		}
		if p.Current.Velocity.Y <= 0 {
			t.Fatalf("vy should flip sign, got %v", p.Current.Velocity.Y)
		}
		if (p.Current.Velocity.X < 0) != (vx < 0) {
			t.Fatalf("vx sign changed: %v -> %v", vx, p.Current.Velocity.X)
		}
		if postSpeed := p.Speed(); postSpeed >= preSpeed {
			t.Fatalf("speed did not decrease: %v -> %v", preSpeed, postSpeed)
		}
		if p.Current.Position.Y != wallY+params.BounceOffset {
			t.Fatalf("y = %v, want %v", p.Current.Position.Y, wallY+params.BounceOffset)
		}
	})
}
