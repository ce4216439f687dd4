package systems

import (
	"math"
	"testing"

	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/geometry"
)

// freeFlightParams 无重力、无阻力的物理参数
func freeFlightParams() config.PhysicsConfig {
	params := config.DefaultPhysicsConfig()
	params.Gravity = 0
	params.DragCx = 0
	return params
}

// TestStepBallistic_FreeFlight 无阻力无重力时退化为 x' = x + vx·dt
func TestStepBallistic_FreeFlight(t *testing.T) {
	params := freeFlightParams()

	x0, y0 := 12.5, -3.0
	vx, vy := 37.25, -11.5
	dt := 0.1

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{X: x0, Y: y0}, geometry.Point{X: vx, Y: vy})

	newT := StepBallistic(p, params, 1.0, dt)

	if newT != 1.1 {
		t.Errorf("t = %v, want 1.1", newT)
	}
	if want := x0 + vx*dt; p.Current.Position.X != want {
		t.Errorf("x = %v, want %v", p.Current.Position.X, want)
	}
	if want := y0 + vy*dt; p.Current.Position.Y != want {
		t.Errorf("y = %v, want %v", p.Current.Position.Y, want)
	}
	if p.Current.Velocity != (geometry.Point{X: 37.25, Y: -11.5}) {
		t.Errorf("velocity should be unchanged, got %+v", p.Current.Velocity)
	}
	if p.Previous.Position != (geometry.Point{X: 12.5, Y: -3}) {
		t.Errorf("Previous should hold the pre-step state, got %+v", p.Previous)
	}
}

// TestStepBallistic_DragAndGravity 测试阻力与重力
func TestStepBallistic_DragAndGravity(t *testing.T) {
	params := config.DefaultPhysicsConfig()
	k := params.DragCoefficient()
	dt := 0.1

	tests := []struct {
		name string
		v    geometry.Point
	}{
		{"rising right", geometry.Point{X: 10, Y: 20}},
		{"falling left", geometry.Point{X: -10, Y: -20}},
		{"at rest", geometry.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &components.ProjectileComponent{}
			p.Launch(geometry.Point{X: 100, Y: 100}, tt.v)
			StepBallistic(p, params, 0, dt)

			wantVx := tt.v.X - (k*tt.v.X*tt.v.X/params.Mass)*dt
			wantVy := tt.v.Y - (k*tt.v.Y*tt.v.Y/params.Mass)*dt - params.Gravity*dt

			if math.Abs(p.Current.Velocity.X-wantVx) > 1e-12 {
				t.Errorf("vx = %v, want %v", p.Current.Velocity.X, wantVx)
			}
			if math.Abs(p.Current.Velocity.Y-wantVy) > 1e-12 {
				t.Errorf("vy = %v, want %v", p.Current.Velocity.Y, wantVy)
			}
			if math.Abs(p.Current.Position.X-(100+wantVx*dt)) > 1e-12 {
				t.Errorf("x = %v, want %v", p.Current.Position.X, 100+wantVx*dt)
			}
			if math.Abs(p.Current.Position.Y-(100+wantVy*dt)) > 1e-12 {
				t.Errorf("y = %v, want %v", p.Current.Position.Y, 100+wantVy*dt)
			}
		})
	}
}

// TestStepBallistic_DragUsesSquaredSpeed 阻力项使用 v²，负速度的数值也会被减小
func TestStepBallistic_DragUsesSquaredSpeed(t *testing.T) {
	params := config.DefaultPhysicsConfig()
	params.Gravity = 0

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{}, geometry.Point{X: -50, Y: 0})
	StepBallistic(p, params, 0, 0.1)

	if p.Current.Velocity.X >= -50 {
		t.Errorf("vx = %v, expected drag to push a negative velocity further below -50", p.Current.Velocity.X)
	}
}

// TestStepBallistic_GravityOnlyVertical 重力只作用于竖直方向
func TestStepBallistic_GravityOnlyVertical(t *testing.T) {
	params := config.DefaultPhysicsConfig()
	params.DragCx = 0

	p := &components.ProjectileComponent{}
	p.Launch(geometry.Point{}, geometry.Point{X: 5, Y: 0})

	tm := 0.0
	for i := 0; i < 10; i++ {
		tm = StepBallistic(p, params, tm, 0.1)
	}

	if p.Current.Velocity.X != 5 {
		t.Errorf("vx = %v, want 5", p.Current.Velocity.X)
	}
	if math.Abs(p.Current.Velocity.Y-(-9.8)) > 1e-9 {
		t.Errorf("vy = %v, want -9.8 after 1s", p.Current.Velocity.Y)
	}
	if math.Abs(tm-1.0) > 1e-12 {
		t.Errorf("t = %v, want 1.0", tm)
	}
}
