package slider

import (
	"image/color"
	"testing"
	"time"
)

// mockHost 记录重绘与布局请求
type mockHost struct {
	invalidates int
	layouts     int
}

func (h *mockHost) Invalidate()    { h.invalidates++ }
func (h *mockHost) RequestLayout() { h.layouts++ }

// positionChange 一次位置变化通知
type positionChange struct {
	FromUser         bool
	OldPos, NewPos   float64
	OldValue, NewVal int
}

// recordingListener 记录所有通知
type recordingListener struct {
	changes []positionChange
}

func (l *recordingListener) OnPositionChanged(s *Slider, fromUser bool, oldPos, newPos float64, oldValue, newValue int) {
	l.changes = append(l.changes, positionChange{fromUser, oldPos, newPos, oldValue, newValue})
}

// canvasOp 一次绘制调用
type canvasOp struct {
	kind   string
	bounds Rect
	color  color.Color
}

// recordingCanvas 记录绘制调用
type recordingCanvas struct {
	ops []canvasOp
}

func (c *recordingCanvas) FillPath(p *Path, clr color.Color) {
	c.ops = append(c.ops, canvasOp{"path", p.Bounds(), clr})
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.ops = append(c.ops, canvasOp{"circle", Rect{cx - r, cy - r, cx + r, cy + r}, clr})
}

func (c *recordingCanvas) FillRoundRect(r Rect, radius float64, clr color.Color) {
	c.ops = append(c.ops, canvasOp{"roundrect", r, clr})
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestSlider 创建 220x40 的默认滑块：drawRect = [10, 210] x [10, 30]
func newTestSlider(t *testing.T) (*Slider, *mockHost, *recordingListener) {
	t.Helper()
	s := New(DefaultStyle())
	host := &mockHost{}
	s.Attach(host, nil)
	s.SetSize(220, 40)
	l := &recordingListener{}
	s.SetOnPositionChangeListener(l)
	return s, host, l
}

// newAnimatedSlider 创建绑定了模拟时钟与帧调度器的滑块
func newAnimatedSlider(t *testing.T) (*Slider, *MockClock, *FrameScheduler) {
	t.Helper()
	clock := NewMockClock(testEpoch)
	sched := NewFrameScheduler(clock)
	s := New(DefaultStyle())
	s.Attach(&mockHost{}, sched)
	s.SetSize(220, 40)
	return s, clock, sched
}

// runFrames 推进时钟并执行回调，直到动画结束或达到帧数上限
func runFrames(clock *MockClock, sched *FrameScheduler, s *Slider, max int) int {
	frames := 0
	for s.Animator().Running() && frames < max {
		clock.Advance(FrameInterval)
		sched.Pump()
		frames++
	}
	return frames
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
