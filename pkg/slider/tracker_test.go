package slider

import "testing"

// mockPointerInput 可控的指针输入
type mockPointerInput struct {
	pressed bool
	x, y    int
	focused bool
}

func (m *mockPointerInput) PointerState() (bool, int, int) { return m.pressed, m.x, m.y }
func (m *mockPointerInput) IsFocused() bool                { return m.focused }

func TestPointerTrackerSequence(t *testing.T) {
	in := &mockPointerInput{focused: true}
	pt := NewPointerTracker(in)

	steps := []struct {
		name    string
		pressed bool
		x, y    int
		wantOK  bool
		want    PointerEvent
	}{
		{"悬停", false, 5, 5, false, PointerEvent{}},
		{"按下", true, 10, 20, true, PointerEvent{PointerDown, 10, 20}},
		{"原地按住", true, 10, 20, false, PointerEvent{}},
		{"移动", true, 15, 20, true, PointerEvent{PointerMove, 15, 20}},
		// 触摸抬起时位置可能丢失
		{"抬起", false, 0, 0, true, PointerEvent{PointerUp, 15, 20}},
		{"空闲", false, 0, 0, false, PointerEvent{}},
	}

	for _, s := range steps {
		in.pressed, in.x, in.y = s.pressed, s.x, s.y
		got, ok := pt.Update()
		if ok != s.wantOK || got != s.want {
			t.Errorf("%s: Update() = %+v, %v; want %+v, %v", s.name, got, ok, s.want, s.wantOK)
		}
	}
}

func TestPointerTrackerFocusLost(t *testing.T) {
	in := &mockPointerInput{focused: true, pressed: true, x: 3, y: 4}
	pt := NewPointerTracker(in)
	pt.Update()

	in.focused = false
	in.x = 30
	if got, ok := pt.Update(); !ok || got.Action != PointerCancel || got.X != 3 {
		t.Errorf("Update() = %+v, %v; want cancel at last position", got, ok)
	}
	if pt.Pressed() {
		t.Error("tracker should not be pressed after cancel")
	}

	// 失焦期间仍按住，不再产生事件
	if _, ok := pt.Update(); ok {
		t.Error("no events expected while unfocused")
	}
}

// TestPointerTrackerDrivesSlider 轮询输入驱动一次点击
func TestPointerTrackerDrivesSlider(t *testing.T) {
	s, _, _ := newTestSlider(t)
	in := &mockPointerInput{focused: true}
	pt := NewPointerTracker(in)

	// 控件位于宿主 (100, 50)
	for _, p := range []bool{true, false} {
		in.pressed, in.x, in.y = p, 100+160, 50+20
		if ev, ok := pt.Update(); ok {
			s.HandleEvent(ev.Offset(100, 50))
		}
	}

	if s.Value() != 75 {
		t.Errorf("value after tap = %d, want 75", s.Value())
	}
}
