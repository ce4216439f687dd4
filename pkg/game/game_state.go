package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "bongallistix"

// GameState 跨场景共享的全局状态：存储、进度与设置
type GameState struct {
	storage  *gdata.Manager // 可为 nil（降级模式，仅内存）
	Saves    *SaveManager
	Settings *SettingsManager
}

// NewGameState 打开 gdata 存储并创建进度/设置管理器
//
// 存储不可用时（如受限环境）进入降级模式，进度和设置只保存在内存中。
func NewGameState(appName string) *GameState {
	storage, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[GameState] Warning: gdata 不可用，使用内存模式: %v", err)
		storage = nil
	}
	return NewGameStateWithStorage(storage)
}

// NewGameStateWithStorage 使用已打开的存储创建全局状态
func NewGameStateWithStorage(storage *gdata.Manager) *GameState {
	saves, err := NewSaveManager(storage)
	if err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}
	settings, err := NewSettingsManager(storage)
	if err != nil {
		log.Printf("[GameState] Warning: %v", err)
	}
	return &GameState{
		storage:  storage,
		Saves:    saves,
		Settings: settings,
	}
}

// GetGdataManager 返回底层存储，降级模式下为 nil
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.storage
}
