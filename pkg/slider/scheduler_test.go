package slider

import (
	"testing"
	"time"
)

// TestFrameSchedulerOrder 到期回调按时间顺序执行
func TestFrameSchedulerOrder(t *testing.T) {
	clock := NewMockClock(testEpoch)
	fs := NewFrameScheduler(clock)

	var got []string
	fs.Schedule(20*time.Millisecond, func() { got = append(got, "b") })
	fs.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	fs.Schedule(50*time.Millisecond, func() { got = append(got, "c") })

	clock.Advance(30 * time.Millisecond)
	if n := fs.Pump(); n != 2 {
		t.Errorf("Pump() = %d, want 2", n)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("order = %v, want [a b]", got)
	}
	if fs.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", fs.Pending())
	}
}

// TestFrameSchedulerCancel 取消后的回调不执行
func TestFrameSchedulerCancel(t *testing.T) {
	clock := NewMockClock(testEpoch)
	fs := NewFrameScheduler(clock)

	ran := false
	cancel := fs.Schedule(0, func() { ran = true })
	cancel()
	cancel()

	if fs.Pump() != 0 || ran {
		t.Error("cancelled callback ran")
	}
}

// TestFrameSchedulerReentrant 回调中调度的任务留到下一次 Pump
func TestFrameSchedulerReentrant(t *testing.T) {
	clock := NewMockClock(testEpoch)
	fs := NewFrameScheduler(clock)

	count := 0
	var loop func()
	loop = func() {
		count++
		fs.Schedule(0, loop)
	}
	fs.Schedule(0, loop)

	fs.Pump()
	fs.Pump()
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	fs.Clear()
	if fs.Pump() != 0 || fs.Pending() != 0 {
		t.Error("Clear should drop pending callbacks")
	}
}
