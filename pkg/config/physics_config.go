package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// PhysicsConfig 弹道模拟物理参数
//
// 所有长度单位与世界坐标一致（1 单位 = 1 像素 = 1 米），时间单位为秒。
// 默认值与原版游戏一致，见 DefaultPhysicsConfig。
//
// 配置文件位置: data/game.yaml 的 physics 节
type PhysicsConfig struct {
	// Mass 投射物质量（kg）
	Mass float64 `yaml:"mass"`

	// Radius 投射物半径（m），只参与空气阻力系数计算，碰撞时投射物视为质点
	Radius float64 `yaml:"radius"`

	// DragCx 球体的空气阻力系数
	DragCx float64 `yaml:"dragCx"`

	// AirDensity 空气密度（kg/m³）
	AirDensity float64 `yaml:"airDensity"`

	// Gravity 重力加速度（m/s²），只作用于竖直速度
	Gravity float64 `yaml:"gravity"`

	// Restitution 碰撞恢复系数，反弹后两个轴的速度都乘以该值，必须 < 1
	Restitution float64 `yaml:"restitution"`

	// MaxInitialSpeed 最大初速度，同时也是发射器的最大长度
	MaxInitialSpeed float64 `yaml:"maxInitialSpeed"`

	// MaxRestTime 投射物静止多久（模拟时间，秒）后判定为未命中
	MaxRestTime float64 `yaml:"maxRestTime"`

	// TimeStep 每个模拟 tick 的名义时间步长 dt（秒）
	TimeStep float64 `yaml:"timeStep"`

	// BounceOffset 反弹时把投射物从墙面推开的距离
	BounceOffset float64 `yaml:"bounceOffset"`

	// RestGranularity 静止判定的"像素"粒度：位置除以该值后取整比较
	RestGranularity float64 `yaml:"restGranularity"`

	// Pi 计算阻力系数使用的 π 值（原版使用截断值 3.14159）
	Pi float64 `yaml:"pi"`
}

// DefaultPhysicsConfig 返回原版游戏的物理参数
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Mass:            2,
		Radius:          0.05,
		DragCx:          0.4,
		AirDensity:      1.2,
		Gravity:         9.8,
		Restitution:     0.95,
		MaxInitialSpeed: 120,
		MaxRestTime:     2,
		TimeStep:        0.1,
		BounceOffset:    0.05,
		RestGranularity: 1,
		Pi:              3.14159,
	}
}

// DragCoefficient 返回球体的空气阻力常数 0.5·Cx·ρ·π·r²
func (c PhysicsConfig) DragCoefficient() float64 {
	return 0.5 * c.DragCx * c.AirDensity * c.Pi * c.Radius * c.Radius
}

// LoadPhysicsConfig 从独立的 YAML 文件加载物理参数
//
// 文件中缺失的字段保留默认值。
func LoadPhysicsConfig(path string) (*PhysicsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read physics config: %w", err)
	}

	cfg := DefaultPhysicsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 阻力与重力允许为 0（用于无阻力/无重力的测试场景），但不能为负。
func (c PhysicsConfig) Validate() error {
	if c.Mass <= 0 {
		return fmt.Errorf("mass must be positive, got %.3f", c.Mass)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius cannot be negative, got %.3f", c.Radius)
	}
	if c.DragCx < 0 || c.AirDensity < 0 {
		return fmt.Errorf("drag parameters cannot be negative (cx=%.3f, rho=%.3f)", c.DragCx, c.AirDensity)
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity cannot be negative, got %.3f", c.Gravity)
	}
	if c.Restitution < 0 || c.Restitution >= 1 {
		return fmt.Errorf("restitution must be in [0, 1), got %.3f", c.Restitution)
	}
	if c.MaxInitialSpeed <= 0 {
		return fmt.Errorf("maxInitialSpeed must be positive, got %.3f", c.MaxInitialSpeed)
	}
	if c.MaxRestTime <= 0 {
		return fmt.Errorf("maxRestTime must be positive, got %.3f", c.MaxRestTime)
	}
	if c.TimeStep <= 0 || math.IsInf(c.TimeStep, 0) || math.IsNaN(c.TimeStep) {
		return fmt.Errorf("timeStep must be a positive finite number, got %v", c.TimeStep)
	}
	if c.BounceOffset <= 0 {
		// 为 0 时投射物停在墙线上，下一步可能因舍入误差穿墙
		return fmt.Errorf("bounceOffset must be positive, got %.3f", c.BounceOffset)
	}
	if c.RestGranularity <= 0 {
		return fmt.Errorf("restGranularity must be positive, got %.3f", c.RestGranularity)
	}
	if c.Pi <= 0 {
		return fmt.Errorf("pi must be positive, got %.5f", c.Pi)
	}
	return nil
}
