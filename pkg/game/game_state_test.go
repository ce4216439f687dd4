package game

import "testing"

// TestGameStateNilStorage 存储不可用时游戏仍可运行
func TestGameStateNilStorage(t *testing.T) {
	gs := NewGameStateWithStorage(nil)

	if gs.GetGdataManager() != nil {
		t.Fatal("Expected nil manager")
	}
	if gs.Saves == nil || gs.Settings == nil {
		t.Fatal("Saves and Settings must be usable in degraded mode")
	}

	gs.Saves.RecordAttempt(1)
	if gs.Saves.Stats(1).Attempts != 1 {
		t.Error("attempt not recorded in degraded mode")
	}
}

// TestGameStateSharedStorage 进度与设置共用同一个 gdata 存储
func TestGameStateSharedStorage(t *testing.T) {
	manager := createTestGdataManager(t, "state")
	gs := NewGameStateWithStorage(manager)

	if gs.GetGdataManager() != manager {
		t.Fatal("GetGdataManager() should return the given storage")
	}

	gs.Saves.RecordHit(2, 3.5)
	gs.Settings.SetShowHUD(false)
	if err := gs.Settings.Save(); err != nil {
		t.Fatalf("Settings.Save() failed: %v", err)
	}

	reopened := NewGameStateWithStorage(manager)
	if reopened.Saves.Stats(2).Hits != 1 {
		t.Error("hit not persisted")
	}
	if reopened.Settings.GetSettings().ShowHUD {
		t.Error("ShowHUD not persisted")
	}
}
