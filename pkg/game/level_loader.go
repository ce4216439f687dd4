package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strconv"

	"github.com/decker502/bongallistix/internal/legacylevel"
	"github.com/decker502/bongallistix/pkg/components"
	"github.com/decker502/bongallistix/pkg/config"
	"github.com/decker502/bongallistix/pkg/geometry"
)

// ErrLevelUnavailable 关卡无法加载（文件缺失、格式错误、墙壁数量非法）
// 所有关卡加载错误都包装该错误，调用方用 errors.Is 判断
var ErrLevelUnavailable = errors.New("level unavailable")

// Level 运行时关卡数据
// 墙壁、目标和发射点在加载后不再改变
type Level struct {
	Index    int
	Config   *config.LevelConfig
	Walls    *components.WallSet
	Target   components.TargetComponent
	Launcher geometry.Point
}

// LevelProvider 按编号提供关卡
type LevelProvider interface {
	LoadLevel(index int) (*Level, error)
}

// FSLevelProvider 从文件系统读取关卡
//
// 优先读取 <dir>/level<N>.yaml，不存在时回退到旧格式 <dir>/niveau<N>.txt。
type FSLevelProvider struct {
	fsys        fs.FS
	dir         string
	maxSegments int
}

// NewFSLevelProvider 创建关卡提供者
//
// 参数：
//   - fsys: 数据文件系统（嵌入资源或 os.DirFS）
//   - dir: 关卡目录，如 "data/levels"
//   - maxSegments: 单个关卡允许的最大墙壁数
func NewFSLevelProvider(fsys fs.FS, dir string, maxSegments int) *FSLevelProvider {
	return &FSLevelProvider{fsys: fsys, dir: dir, maxSegments: maxSegments}
}

// LevelFileName 返回关卡编号对应的 YAML 文件名
func LevelFileName(index int) string {
	return fmt.Sprintf("level%d.yaml", index)
}

// LoadLevel 加载编号为 index 的关卡
func (p *FSLevelProvider) LoadLevel(index int) (*Level, error) {
	cfg, err := p.readConfig(index)
	if err != nil {
		log.Printf("[LevelLoader] 关卡 %d 加载失败: %v", index, err)
		return nil, fmt.Errorf("%w: level %d: %v", ErrLevelUnavailable, index, err)
	}

	level, err := BuildLevel(index, cfg, p.maxSegments)
	if err != nil {
		log.Printf("[LevelLoader] 关卡 %d 构建失败: %v", index, err)
		return nil, err
	}

	log.Printf("[LevelLoader] 关卡 %d 加载成功: %d/%d 面墙", index, level.Walls.Len(), level.Walls.Cap())
	return level, nil
}

func (p *FSLevelProvider) readConfig(index int) (*config.LevelConfig, error) {
	yamlPath := path.Join(p.dir, LevelFileName(index))
	data, err := fs.ReadFile(p.fsys, yamlPath)
	if err == nil {
		cfg, err := config.ParseLevelConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", yamlPath, err)
		}
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
	}

	legacyPath := path.Join(p.dir, legacylevel.FileName(index))
	log.Printf("[LevelLoader] %s 不存在，尝试旧格式 %s", yamlPath, legacyPath)
	return legacylevel.Load(p.fsys, legacyPath, strconv.Itoa(index))
}

// BuildLevel 把关卡配置转换为运行时关卡
//
// 墙壁顺序：边界矩形（左、上、右、下），然后是竖直墙，最后是水平墙。
// 墙壁总数超过 maxSegments 或不为正时返回 ErrLevelUnavailable。
func BuildLevel(index int, cfg *config.LevelConfig, maxSegments int) (*Level, error) {
	count := cfg.SegmentCount()
	if count <= 0 {
		return nil, fmt.Errorf("%w: level %d has no walls", ErrLevelUnavailable, index)
	}

	walls := components.NewWallSet(maxSegments)
	b := cfg.Bounds
	if err := walls.AddRectangle(b.X0, b.Y0, b.X1, b.Y1); err != nil {
		return nil, fmt.Errorf("%w: level %d: %v", ErrLevelUnavailable, index, err)
	}
	for _, group := range [][]config.SegmentConfig{cfg.VerticalWalls, cfg.HorizontalWalls} {
		for _, w := range group {
			if err := walls.Add(geometry.NewSegment(w[0], w[1], w[2], w[3])); err != nil {
				return nil, fmt.Errorf("%w: level %d has %d walls: %v", ErrLevelUnavailable, index, count, err)
			}
		}
	}

	return &Level{
		Index:    index,
		Config:   cfg,
		Walls:    walls,
		Target:   components.NewSquareTarget(geometry.Point{X: cfg.Target.X, Y: cfg.Target.Y}, cfg.Target.Size),
		Launcher: geometry.Point{X: cfg.Launcher.X, Y: cfg.Launcher.Y},
	}, nil
}
