package store

import (
	"os"
	"testing"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/quasilyte/gdata/v2"
)

// newTestStore 在临时 HOME 下打开 gdata
func newTestStore(t *testing.T, appName string) *StateStore {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return NewStateStore(gdataManager)
}

// TestStateStoreSaveLoad 保存后能读回
func TestStateStoreSaveLoad(t *testing.T) {
	ss := newTestStore(t, "test_xslider_save_load")

	if _, ok, err := ss.Load("volume"); ok || err != nil {
		t.Fatalf("Load before save: ok=%v err=%v", ok, err)
	}

	if err := ss.Save("volume", slider.SavedState{Position: 0.75}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	st, ok, err := ss.Load("volume")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if st.Position != 0.75 || st.Version != slider.StateVersion {
		t.Errorf("loaded %+v", st)
	}
}

// TestStateStoreSliderRoundTrip 通过滑块保存和恢复
func TestStateStoreSliderRoundTrip(t *testing.T) {
	ss := newTestStore(t, "test_xslider_round_trip")

	s := slider.New(slider.DefaultStyle())
	s.SetValue(64, false)
	ss.SaveSlider("brightness", s)

	restored := slider.New(slider.DefaultStyle())
	if !ss.RestoreSlider("brightness", restored) {
		t.Fatal("RestoreSlider returned false")
	}
	if restored.Value() != 64 {
		t.Errorf("restored value = %d, want 64", restored.Value())
	}

	other := slider.New(slider.DefaultStyle())
	if ss.RestoreSlider("never_saved", other) || other.Value() != 0 {
		t.Errorf("unsaved id should leave slider untouched, value = %d", other.Value())
	}
}

// TestStateStoreDegraded nil manager 时不报错也不保存
func TestStateStoreDegraded(t *testing.T) {
	ss := NewStateStore(nil)
	if ss.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	if err := ss.Save("volume", slider.SavedState{Position: 1}); err != nil {
		t.Errorf("Save in degraded mode: %v", err)
	}
	if _, ok, err := ss.Load("volume"); ok || err != nil {
		t.Errorf("Load in degraded mode: ok=%v err=%v", ok, err)
	}
}

// TestValidateID 只接受安全的文件名
func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"volume", false},
		{"slider_2-b", false},
		{"", true},
		{"../etc", true},
		{"Volume", true},
		{"a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if err := validateID(tt.id); (err != nil) != tt.wantErr {
				t.Errorf("validateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

// TestStateStoreCorrupt 损坏数据返回错误，滑块保持原状
func TestStateStoreCorrupt(t *testing.T) {
	ss := newTestStore(t, "test_xslider_corrupt")
	if err := ss.gdataManager.SaveObjectProp(stateObject, "volume", []byte("version: 9\n")); err != nil {
		t.Fatalf("SaveObjectProp failed: %v", err)
	}

	if _, _, err := ss.Load("volume"); err == nil {
		t.Error("expected error for unsupported version")
	}
	s := slider.New(slider.DefaultStyle())
	s.SetValue(10, false)
	if ss.RestoreSlider("volume", s) || s.Value() != 10 {
		t.Errorf("corrupt state should be ignored, value = %d", s.Value())
	}
}
