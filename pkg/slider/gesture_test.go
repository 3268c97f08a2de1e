package slider

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func tap(s *Slider, x, y float64) {
	s.HandleEvent(PointerEvent{Action: PointerDown, X: x, Y: y})
	s.HandleEvent(PointerEvent{Action: PointerUp, X: x, Y: y})
}

// TestTapMovesThumb 点击（位移在容差内）把滑块移到点击位置
func TestTapMovesThumb(t *testing.T) {
	tests := []struct {
		name    string
		downX   float64
		upX     float64
		upY     float64
		wantPos float64
	}{
		{"中点", 110, 110, 20, 0.5},
		{"容差内抖动", 110, 113, 22, 0.515},
		{"轨道外左侧", 2, 2, 20, 0},
		{"轨道外右侧", 218, 218, 20, 1},
		{"四分之三", 160, 160, 20, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, l := newTestSlider(t)
			s.SetPosition(0.2, false)
			l.changes = nil

			// 按下点都在滑块触摸区域 [30, 70] 之外
			s.HandleEvent(PointerEvent{Action: PointerDown, X: tt.downX, Y: 20})
			s.HandleEvent(PointerEvent{Action: PointerUp, X: tt.upX, Y: tt.upY})

			if !approx(s.Position(), tt.wantPos) {
				t.Errorf("position = %v, want %v", s.Position(), tt.wantPos)
			}
			if len(l.changes) != 1 || !l.changes[0].FromUser {
				t.Errorf("expected one user notification, got %s", spew.Sdump(l.changes))
			}
		})
	}
}

// TestTapBeyondSlopIgnored 位移超出容差且未拖动时什么也不做
func TestTapBeyondSlopIgnored(t *testing.T) {
	s, _, l := newTestSlider(t)

	s.HandleEvent(PointerEvent{Action: PointerDown, X: 110, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 150, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerUp, X: 150, Y: 20})

	if s.Position() != 0 || len(l.changes) != 0 {
		t.Errorf("position = %v, notifications = %d; want 0, 0", s.Position(), len(l.changes))
	}
}

// TestDragFromThumb 从滑块开始的拖动按相对位移移动
func TestDragFromThumb(t *testing.T) {
	s, _, l := newTestSlider(t)

	s.HandleEvent(PointerEvent{Action: PointerDown, X: 10, Y: 20})
	if !s.Dragging() {
		t.Fatal("down on thumb should start dragging")
	}
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 60, Y: 20})
	if !approx(s.Position(), 0.25) {
		t.Errorf("after first move position = %v, want 0.25", s.Position())
	}
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 110, Y: 25})
	if !approx(s.Position(), 0.5) {
		t.Errorf("after second move position = %v, want 0.5", s.Position())
	}

	// 抬起点与最后一次移动不同：拖动不会套用点击公式
	s.HandleEvent(PointerEvent{Action: PointerUp, X: 150, Y: 20})
	if s.Dragging() {
		t.Error("up should end dragging")
	}
	if !approx(s.Position(), 0.5) {
		t.Errorf("after up position = %v, want 0.5 (tap formula would give 0.7)", s.Position())
	}

	if len(l.changes) != 2 {
		t.Fatalf("notifications = %s, want 2", spew.Sdump(l.changes))
	}
	for _, c := range l.changes {
		if !c.FromUser {
			t.Errorf("drag notification should be fromUser: %s", spew.Sdump(c))
		}
	}
}

// TestDragClamps 拖出轨道时位置限制在 [0, 1]
func TestDragClamps(t *testing.T) {
	s, _, _ := newTestSlider(t)

	s.HandleEvent(PointerEvent{Action: PointerDown, X: 10, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 500, Y: 20})
	if s.Position() != 1 {
		t.Errorf("position = %v, want 1", s.Position())
	}
	s.HandleEvent(PointerEvent{Action: PointerMove, X: -500, Y: 20})
	if s.Position() != 0 {
		t.Errorf("position = %v, want 0", s.Position())
	}
}

// TestDragCancel 取消手势结束拖动，位置保留
func TestDragCancel(t *testing.T) {
	s, _, _ := newTestSlider(t)

	s.HandleEvent(PointerEvent{Action: PointerDown, X: 10, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 50, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerCancel, X: 50, Y: 20})

	if s.Dragging() || !approx(s.Position(), 0.2) {
		t.Errorf("dragging=%v position=%v, want false, 0.2", s.Dragging(), s.Position())
	}
}

// TestDragSettlesWithAnimation 拖动结束时不会重复通知
func TestDragSettlesWithAnimation(t *testing.T) {
	s, clock, sched := newAnimatedSlider(t)
	l := &recordingListener{}
	s.SetOnPositionChangeListener(l)

	s.HandleEvent(PointerEvent{Action: PointerDown, X: 10, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 90, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerUp, X: 90, Y: 20})

	if s.Animator().Running() {
		t.Error("settling to the current position should not animate")
	}
	runFrames(clock, sched, s, 10)
	if len(l.changes) != 1 || !approx(s.Position(), 0.4) {
		t.Errorf("position = %v, notifications = %s", s.Position(), spew.Sdump(l.changes))
	}
}

// TestDownDuringAnimationDoesNotDrag 动画进行中按下不会开始拖动
func TestDownDuringAnimationDoesNotDrag(t *testing.T) {
	s, _, _ := newAnimatedSlider(t)
	s.SetPosition(0.5, true)

	// 原始位置仍在 0，按在滑块上
	s.HandleEvent(PointerEvent{Action: PointerDown, X: 10, Y: 20})
	if s.Dragging() {
		t.Error("should not start dragging while animating")
	}
}

// TestTapAnimates 有调度器时点击以动画移动
func TestTapAnimates(t *testing.T) {
	s, clock, sched := newAnimatedSlider(t)

	tap(s, 160, 20)

	if !s.Animator().Running() {
		t.Fatal("tap should animate")
	}
	if s.Value() != 75 {
		t.Errorf("value during animation = %d, want target value 75", s.Value())
	}
	runFrames(clock, sched, s, 100)
	if s.RawPosition() != 0.75 {
		t.Errorf("raw position = %v, want 0.75", s.RawPosition())
	}
}

// TestMirroredTap 镜像布局下点击 x 等价于非镜像布局点击 2*centerX - x
func TestMirroredTap(t *testing.T) {
	for _, x := range []float64{60, 110, 150, 200} {
		rtl, _, _ := newTestSlider(t)
		rtl.SetRTL(true)
		tap(rtl, x, 20)

		ltr, _, _ := newTestSlider(t)
		tap(ltr, 2*ltr.DrawRect().CenterX()-x, 20)

		if !approx(rtl.Position(), ltr.Position()) {
			t.Errorf("x=%v: mirrored position %v != %v", x, rtl.Position(), ltr.Position())
		}
	}
}

// TestMirroredThumbCenter 镜像布局下滑块从右侧开始
func TestMirroredThumbCenter(t *testing.T) {
	s, _, _ := newTestSlider(t)
	s.SetRTL(true)

	x, y := s.ThumbCenter()
	if x != 210 || y != 20 {
		t.Errorf("thumb center = (%v, %v), want (210, 20)", x, y)
	}

	// 按在右侧的滑块上开始拖动，向左拖增加位置
	s.HandleEvent(PointerEvent{Action: PointerDown, X: 210, Y: 20})
	s.HandleEvent(PointerEvent{Action: PointerMove, X: 160, Y: 20})
	if !approx(s.Position(), 0.25) {
		t.Errorf("position = %v, want 0.25", s.Position())
	}
}

// TestDisabledConsumesEvents 禁用时事件被占有但不处理
func TestDisabledConsumesEvents(t *testing.T) {
	s, _, l := newTestSlider(t)
	s.SetEnabled(false)

	for _, a := range []PointerAction{PointerDown, PointerMove, PointerUp, PointerCancel} {
		if r := s.HandleEvent(PointerEvent{Action: a, X: 110, Y: 20}); r != EventConsumed {
			t.Errorf("%v: result = %v, want EventConsumed", a, r)
		}
	}
	if s.Position() != 0 || len(l.changes) != 0 {
		t.Errorf("disabled slider changed: position %v, %d notifications", s.Position(), len(l.changes))
	}

	s.SetEnabled(true)
	if r := s.HandleEvent(PointerEvent{Action: PointerDown, X: 110, Y: 20}); r != EventHandled {
		t.Errorf("enabled result = %v, want EventHandled", r)
	}
}

// TestThumbHitBounds 放大后的触摸区域
func TestThumbHitBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape ThumbShape
		x, y  float64
		want  bool
	}{
		{"圆形中心", ThumbOval, 10, 20, true},
		{"圆形放大边界", ThumbOval, 30, 20, true},
		{"圆形放大边界外", ThumbOval, 31, 20, false},
		{"圆形垂直边界", ThumbOval, 10, 40, true},
		{"圆形垂直边界外", ThumbOval, 10, 41, false},
		// 矩形滑块半宽取整为 1，中心 x = 1
		{"矩形放大边界", ThumbRectangle, 21, 20, true},
		{"矩形放大边界外", ThumbRectangle, 22, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultStyle()
			st.ThumbShape = tt.shape
			s := New(st)
			s.SetSize(220, 40)
			if got := s.isThumbHit(tt.x, tt.y); got != tt.want {
				t.Errorf("isThumbHit(%v, %v) = %v, want %v (drawRect %s)", tt.x, tt.y, got, tt.want, spew.Sdump(s.DrawRect()))
			}
		})
	}
}
