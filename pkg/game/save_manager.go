package game

import (
	"fmt"
	"log"

	"github.com/decker502/bongallistix/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LevelStats 单个关卡的统计
type LevelStats struct {
	Attempts   int     `yaml:"attempts"`   // 发射次数
	Hits       int     `yaml:"hits"`       // 命中次数
	BestTime   float64 `yaml:"bestTime"`   // 最短命中飞行时间（秒），0 表示尚未命中
	LastResult string  `yaml:"lastResult"` // 最近一次结果："hit" 或 "attempt"
}

// SaveData 进度存档
//
// 保存内容：
//   - 当前关卡（下次启动时从这里继续）
//   - 最高通过关卡
//   - 每个关卡的统计
type SaveData struct {
	CurrentLevel int                 `yaml:"currentLevel"`
	HighestLevel int                 `yaml:"highestLevel"`
	Levels       map[int]*LevelStats `yaml:"levels"`
}

// SaveManager 进度存档管理器
//
// 职责：
//   - 记录每次发射与命中（实现 ProgressRecorder）
//   - 通过 gdata 持久化为 YAML
//
// gdataManager 为 nil 时进入降级模式：进度只保存在内存中，Save 不报错。
type SaveManager struct {
	gdataManager *gdata.Manager
	data         *SaveData
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "default"
)

func newSaveData() *SaveData {
	return &SaveData{Levels: make(map[int]*LevelStats)}
}

// NewSaveManager 创建存档管理器并尝试加载已有进度
//
// 返回的管理器总是可用；加载失败时返回错误并使用空进度。
func NewSaveManager(gdataManager *gdata.Manager) (*SaveManager, error) {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         newSaveData(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load progress: %v (starting fresh)", err)
		return sm, err
	}
	return sm, nil
}

// Load 从 gdata 加载进度
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	raw, err := sm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := newSaveData()
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.Levels == nil {
		loaded.Levels = make(map[int]*LevelStats)
	}

	sm.data = loaded
	log.Printf("[SaveManager] Progress loaded: level %d, highest %d", loaded.CurrentLevel, loaded.HighestLevel)
	return nil
}

// Save 把进度写入 gdata
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(progressObject, progressProperty, raw); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// GetData 返回当前进度
func (sm *SaveManager) GetData() *SaveData {
	return sm.data
}

// Stats 返回关卡统计，不存在时创建
func (sm *SaveManager) Stats(level int) *LevelStats {
	stats, ok := sm.data.Levels[level]
	if !ok {
		stats = &LevelStats{}
		sm.data.Levels[level] = stats
	}
	return stats
}

// RecordAttempt 记录一次发射
func (sm *SaveManager) RecordAttempt(level int) {
	stats := sm.Stats(level)
	stats.Attempts++
	stats.LastResult = "attempt"
	sm.data.CurrentLevel = level
}

// RecordHit 记录一次命中并立即保存
func (sm *SaveManager) RecordHit(level int, flightTime float64) {
	stats := sm.Stats(level)
	stats.Hits++
	stats.LastResult = "hit"
	if stats.BestTime == 0 || flightTime < stats.BestTime {
		stats.BestTime = flightTime
	}
	if level > sm.data.HighestLevel {
		sm.data.HighestLevel = level
	}

	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: %v", err)
	}
}

// SetCurrentLevel 记录当前关卡
func (sm *SaveManager) SetCurrentLevel(level int) {
	sm.data.CurrentLevel = level
}

// ResumeLevel 返回应当继续的关卡编号
// 存档中的关卡不在当前关卡集合内时从第一关开始
func (sm *SaveManager) ResumeLevel(levels config.LevelSetConfig) int {
	if levels.Contains(sm.data.CurrentLevel) {
		return sm.data.CurrentLevel
	}
	return levels.First
}
