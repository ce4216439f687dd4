package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全局配置
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Physics PhysicsConfig  `yaml:"physics"` // 物理参数
	Levels  LevelSetConfig `yaml:"levels"`  // 关卡集合
	Blink   BlinkConfig    `yaml:"blink"`   // 命中/未命中时的闪烁反馈
}

// LevelSetConfig 关卡集合配置
// 关卡文件按编号命名（level1.yaml ... levelN.yaml），最后一关通过后回到第一关
type LevelSetConfig struct {
	Dir         string `yaml:"dir"`         // 关卡目录（相对于数据文件系统根目录）
	First       int    `yaml:"first"`       // 第一关编号
	Last        int    `yaml:"last"`        // 最后一关编号
	MaxSegments int    `yaml:"maxSegments"` // 单个关卡允许的最大墙壁数
}

// BlinkConfig 闪烁反馈配置
type BlinkConfig struct {
	Count    int `yaml:"count"`    // 闪烁次数
	PeriodMs int `yaml:"periodMs"` // 每个亮/灭半周期的时长（毫秒）
}

// 默认值（与原版一致）
const (
	DefaultLevelDir    = "data/levels"
	DefaultFirstLevel  = 1
	DefaultLastLevel   = 6
	DefaultMaxSegments = 100
	DefaultBlinkCount  = 4
	DefaultBlinkPeriod = 200
)

// DefaultGameConfig 返回默认游戏配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{Physics: DefaultPhysicsConfig()}
	applyGameDefaults(cfg)
	return cfg
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 未出现的物理参数保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := &GameConfig{Physics: DefaultPhysicsConfig()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyGameDefaults(cfg)

	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// applyGameDefaults 为缺失的可选字段设置默认值
func applyGameDefaults(cfg *GameConfig) {
	if cfg.Levels.Dir == "" {
		cfg.Levels.Dir = DefaultLevelDir
	}
	if cfg.Levels.First == 0 {
		cfg.Levels.First = DefaultFirstLevel
	}
	if cfg.Levels.Last == 0 {
		cfg.Levels.Last = DefaultLastLevel
	}
	if cfg.Levels.MaxSegments == 0 {
		cfg.Levels.MaxSegments = DefaultMaxSegments
	}
	if cfg.Blink.Count == 0 {
		cfg.Blink.Count = DefaultBlinkCount
	}
	if cfg.Blink.PeriodMs == 0 {
		cfg.Blink.PeriodMs = DefaultBlinkPeriod
	}
}

// validateGameConfig 验证游戏配置
func validateGameConfig(cfg *GameConfig) error {
	if err := cfg.Physics.Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if cfg.Levels.First < 1 {
		return fmt.Errorf("levels.first must be >= 1, got %d", cfg.Levels.First)
	}
	if cfg.Levels.Last < cfg.Levels.First {
		return fmt.Errorf("levels.last (%d) must be >= levels.first (%d)", cfg.Levels.Last, cfg.Levels.First)
	}
	if cfg.Levels.MaxSegments < 4 {
		// 至少要容纳边界矩形的 4 面墙
		return fmt.Errorf("levels.maxSegments must be >= 4, got %d", cfg.Levels.MaxSegments)
	}
	if cfg.Blink.Count < 0 || cfg.Blink.PeriodMs < 0 {
		return fmt.Errorf("blink count/period cannot be negative")
	}
	return nil
}

// NextLevel 返回通过 level 之后的关卡编号，最后一关之后回到第一关
func (c LevelSetConfig) NextLevel(level int) int {
	if level >= c.Last || level < c.First {
		return c.First
	}
	return level + 1
}

// Contains 关卡编号是否在集合范围内
func (c LevelSetConfig) Contains(level int) bool {
	return level >= c.First && level <= c.Last
}
