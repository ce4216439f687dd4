package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置数据结构
// 定义了关卡边界、内部墙壁、发射器位置和目标区域
//
// 坐标系与原版一致：原点在窗口左下角，y 轴向上
type LevelConfig struct {
	ID          string `yaml:"id"`          // 关卡ID，如 "3"
	Name        string `yaml:"name"`        // 关卡名称（可选）
	Description string `yaml:"description"` // 关卡描述（可选）

	Bounds          RectConfig     `yaml:"bounds"`          // 边界矩形，转换为 4 面墙
	VerticalWalls   []SegmentConfig `yaml:"verticalWalls"`   // 竖直墙列表（x0 == x1）
	HorizontalWalls []SegmentConfig `yaml:"horizontalWalls"` // 水平墙列表（y0 == y1）
	Launcher        PointConfig    `yaml:"launcher"`        // 发射器固定端
	Target          TargetConfig   `yaml:"target"`          // 目标正方形
}

// PointConfig 坐标点配置
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig 由两个对角点定义的矩形
type RectConfig struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
}

// SegmentConfig 线段配置，YAML 中写作 [x0, y0, x1, y1]
type SegmentConfig [4]float64

// MarshalYAML 以 [x0, y0, x1, y1] 的紧凑形式输出
func (s SegmentConfig) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range s {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	return node, nil
}

// TargetConfig 目标配置：原点 + 边长
type TargetConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// SegmentCount 返回关卡生成的墙壁总数（边界 4 面 + 内部墙）
func (c *LevelConfig) SegmentCount() int {
	return 4 + len(c.VerticalWalls) + len(c.HorizontalWalls)
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析 YAML 格式的关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &levelConfig, nil
}

// MarshalLevelConfig 把关卡配置序列化为 YAML
func MarshalLevelConfig(config *LevelConfig) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal level config %s: %w", config.ID, err)
	}
	return data, nil
}

// NormalizeLevelConfig 为程序构造的关卡配置（如旧格式转换结果）补全默认值并校验
func NormalizeLevelConfig(config *LevelConfig) error {
	applyDefaults(config)
	if err := validateLevelConfig(config); err != nil {
		return fmt.Errorf("invalid level config: %w", err)
	}
	return nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.Name == "" && config.ID != "" {
		config.Name = "Niveau " + config.ID
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return fmt.Errorf("level ID is required")
	}

	// 边界矩形必须有面积，否则 4 面墙会退化成点
	if config.Bounds.X0 == config.Bounds.X1 || config.Bounds.Y0 == config.Bounds.Y1 {
		return fmt.Errorf("bounds must have a non-zero width and height, got %+v", config.Bounds)
	}

	for i, w := range config.VerticalWalls {
		if w[0] != w[2] {
			return fmt.Errorf("verticalWalls[%d]: x0 (%.1f) must equal x1 (%.1f)", i, w[0], w[2])
		}
		if w[1] == w[3] {
			return fmt.Errorf("verticalWalls[%d]: wall has zero length", i)
		}
	}

	for i, w := range config.HorizontalWalls {
		if w[1] != w[3] {
			return fmt.Errorf("horizontalWalls[%d]: y0 (%.1f) must equal y1 (%.1f)", i, w[1], w[3])
		}
		if w[0] == w[2] {
			return fmt.Errorf("horizontalWalls[%d]: wall has zero length", i)
		}
	}

	if config.Target.Size <= 0 {
		return fmt.Errorf("target size must be positive, got %.1f", config.Target.Size)
	}

	return nil
}
