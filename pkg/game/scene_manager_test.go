package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	// MockScene 不访问 screen，无需创建图像
	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerDrawNoScene verifies that Draw handles nil scene gracefully.
func TestSceneManagerDrawNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Draw(nil) // Should not panic
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	// Switch to scene1
	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	// Switch to scene2
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// terminatingScene 实现 Terminator 与 Saveable 的测试场景
type terminatingScene struct {
	MockScene
	done      bool
	err       error
	saveCalls int
}

func (s *terminatingScene) Terminated() (bool, error) { return s.done, s.err }

func (s *terminatingScene) SaveOnExit() bool {
	s.saveCalls++
	return true
}

// TestSceneManagerLoadLevel 通过工厂函数按关卡编号创建场景
func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager()

	// 未设置工厂时不切换
	sm.LoadLevel(1)
	if sm.GetCurrentScene() != nil {
		t.Fatal("LoadLevel without factory should not switch scene")
	}

	var requested []int
	sm.SetSceneFactory(func(levelIndex int) Scene {
		requested = append(requested, levelIndex)
		if levelIndex > 6 {
			return nil
		}
		return &MockScene{}
	})

	sm.LoadLevel(3)
	first := sm.GetCurrentScene()
	if first == nil {
		t.Fatal("LoadLevel(3) did not switch scene")
	}

	// 工厂返回 nil 时保留当前场景
	sm.LoadLevel(9)
	if sm.GetCurrentScene() != first {
		t.Error("LoadLevel with nil scene should keep the current scene")
	}
	if len(requested) != 2 || requested[0] != 3 || requested[1] != 9 {
		t.Errorf("factory calls = %v, want [3 9]", requested)
	}
}

// TestSceneManagerTerminated 转发当前场景的退出请求
func TestSceneManagerTerminated(t *testing.T) {
	sm := NewSceneManager()
	if done, err := sm.Terminated(); done || err != nil {
		t.Errorf("no scene: Terminated() = %v, %v", done, err)
	}

	sm.SwitchTo(&MockScene{})
	if done, _ := sm.Terminated(); done {
		t.Error("plain scene should never terminate")
	}

	loadErr := errors.New("level unavailable")
	scene := &terminatingScene{done: true, err: loadErr}
	sm.SwitchTo(scene)
	done, err := sm.Terminated()
	if !done || !errors.Is(err, loadErr) {
		t.Errorf("Terminated() = %v, %v, want true, %v", done, err, loadErr)
	}
}

// TestSceneManagerSaveOnExit 只有实现 Saveable 的场景会被调用
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(&MockScene{})
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit() for non-saveable scene should return true")
	}

	scene := &terminatingScene{}
	sm.SwitchTo(scene)
	sm.SaveOnExit()
	if scene.saveCalls != 1 {
		t.Errorf("saveCalls = %d, want 1", scene.saveCalls)
	}
}
