package components

import (
	"math"
	"testing"

	"github.com/decker502/bongallistix/pkg/geometry"
)

// TestLauncherComponent_Aim 测试瞄准与长度截断
func TestLauncherComponent_Aim(t *testing.T) {
	tests := []struct {
		name    string
		pointer geometry.Point
		wantTip geometry.Point
	}{
		{"within range", geometry.Point{X: 30, Y: 40}, geometry.Point{X: 30, Y: 40}},
		{"exactly max", geometry.Point{X: 60, Y: 80}, geometry.Point{X: 60, Y: 80}},
		{"clamped", geometry.Point{X: 300, Y: 400}, geometry.Point{X: 60, Y: 80}},
		{"on origin", geometry.Point{}, geometry.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLauncher(geometry.Point{}, 100)
			l.Aim(tt.pointer)

			if math.Abs(l.Tip.X-tt.wantTip.X) > 1e-9 || math.Abs(l.Tip.Y-tt.wantTip.Y) > 1e-9 {
				t.Errorf("Tip = %+v, want %+v", l.Tip, tt.wantTip)
			}
			if l.Segment().A != l.Origin {
				t.Error("launcher segment should start at origin")
			}
		})
	}
}

// TestLauncherComponent_InitialVelocity 初速度为 Tip - Origin
func TestLauncherComponent_InitialVelocity(t *testing.T) {
	l := NewLauncher(geometry.Point{X: 50, Y: 50}, 120)
	l.Aim(geometry.Point{X: 80, Y: 90})

	v := l.InitialVelocity()
	if v != (geometry.Point{X: 30, Y: 40}) {
		t.Errorf("InitialVelocity() = %+v, want {30 40}", v)
	}

	// 截断后速度大小等于 MaxLength
	l.Aim(geometry.Point{X: 1000, Y: 50})
	if got := geometry.Distance(geometry.Point{}, l.InitialVelocity()); math.Abs(got-120) > 1e-9 {
		t.Errorf("clamped speed = %v, want 120", got)
	}
}
