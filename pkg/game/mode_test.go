package game

import (
	"errors"
	"testing"
)

// TestCanTransition 测试状态转换表
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Mode
		want     bool
	}{
		{ModeLoading, ModeAiming, true},
		{ModeAiming, ModeLaunching, true},
		{ModeLaunching, ModeSimulating, true},
		{ModeSimulating, ModeHit, true},
		{ModeSimulating, ModeMiss, true},
		{ModeSimulating, ModeLoading, true},
		{ModeHit, ModeLoading, true},
		{ModeMiss, ModeLoading, true},
		{ModeAiming, ModeQuitting, true},
		{ModeSimulating, ModeQuitting, true},

		{ModeLoading, ModeSimulating, false},
		{ModeAiming, ModeSimulating, false},
		{ModeHit, ModeMiss, false},
		{ModeMiss, ModeAiming, false},
		{ModeQuitting, ModeLoading, false},
		{ModeQuitting, ModeQuitting, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// TestModeString 测试模式名称
func TestModeString(t *testing.T) {
	if ModeSimulating.String() != "Simulating" {
		t.Errorf("got %q, want Simulating", ModeSimulating.String())
	}
	if Mode(42).String() != "Mode(42)" {
		t.Errorf("got %q, want Mode(42)", Mode(42).String())
	}

	var err error = &ErrIllegalTransition{From: ModeHit, To: ModeMiss}
	var target *ErrIllegalTransition
	if !errors.As(err, &target) || target.From != ModeHit {
		t.Errorf("errors.As failed for %v", err)
	}
	if err.Error() != "illegal mode transition Hit -> Miss" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
