package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按关卡编号创建游戏场景，避免 game 与 scenes 包循环依赖
type SceneFactory func(levelIndex int) Scene

// SceneManager controls which scene is active.
// Only the active scene's Update and Draw methods are called.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a SceneManager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 通过工厂函数创建指定关卡的场景并切换过去
func (sm *SceneManager) LoadLevel(levelIndex int) {
	log.Printf("[SceneManager] 加载关卡: %d", levelIndex)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(levelIndex)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建关卡场景: %d", levelIndex)
		return
	}
	sm.SwitchTo(newScene)
}

// Update updates the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Terminated 当前场景是否请求退出
func (sm *SceneManager) Terminated() (bool, error) {
	if t, ok := sm.currentScene.(Terminator); ok {
		return t.Terminated()
	}
	return false, nil
}

// SaveOnExit 让当前场景保存状态（如果它支持）
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
