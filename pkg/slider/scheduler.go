package slider

import (
	"sort"
	"time"
)

// FrameInterval 动画帧间隔（60 FPS）
const FrameInterval = time.Second / 60

// Clock 时间源
type Clock interface {
	Now() time.Time
}

// SystemClock 系统单调时钟
type SystemClock struct{}

// Now 当前时间
func (SystemClock) Now() time.Time { return time.Now() }

// MockClock 可控时间源，用于测试
type MockClock struct {
	now time.Time
}

// NewMockClock 以 start 为起点创建时钟
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now 当前模拟时间
func (m *MockClock) Now() time.Time { return m.now }

// Advance 时间前进 d
func (m *MockClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

// CancelFunc 取消一次已调度的回调；重复调用无副作用
type CancelFunc func()

// Scheduler 延时回调能力
//
// 回调必须在宿主的 UI 线程上执行，与控件的其他操作串行。
type Scheduler interface {
	Schedule(after time.Duration, fn func()) CancelFunc
}

type frameTask struct {
	seq       uint64
	due       time.Time
	fn        func()
	cancelled bool
}

// FrameScheduler 由宿主循环驱动的定时队列
//
// 宿主在每帧（如 ebiten 的 Update）调用 Pump，到期的回调在调用方线程上执行。
// 没有后台 goroutine，因此无需加锁。
type FrameScheduler struct {
	clock Clock
	seq   uint64
	tasks []*frameTask
}

// NewFrameScheduler 创建调度器；clock 为 nil 时使用系统时钟
func NewFrameScheduler(clock Clock) *FrameScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameScheduler{clock: clock}
}

// Clock 调度器使用的时钟
func (fs *FrameScheduler) Clock() Clock { return fs.clock }

// Schedule 在 after 之后执行 fn
func (fs *FrameScheduler) Schedule(after time.Duration, fn func()) CancelFunc {
	if after < 0 {
		after = 0
	}
	fs.seq++
	t := &frameTask{seq: fs.seq, due: fs.clock.Now().Add(after), fn: fn}
	fs.tasks = append(fs.tasks, t)
	return func() {
		t.cancelled = true
	}
}

// Pending 尚未执行且未取消的回调数量
func (fs *FrameScheduler) Pending() int {
	n := 0
	for _, t := range fs.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Pump 执行所有已到期的回调，返回执行数量
//
// 回调中新调度的任务留到下一次 Pump，保证单次 Pump 必然结束。
func (fs *FrameScheduler) Pump() int {
	now := fs.clock.Now()

	var due, rest []*frameTask
	for _, t := range fs.tasks {
		switch {
		case t.cancelled:
		case !t.due.After(now):
			due = append(due, t)
		default:
			rest = append(rest, t)
		}
	}
	fs.tasks = rest

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// 同一批次中较早的回调可能取消了后面的
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
		ran++
	}
	return ran
}

// Clear 丢弃所有待执行回调（宿主关闭时调用）
func (fs *FrameScheduler) Clear() {
	for _, t := range fs.tasks {
		t.cancelled = true
	}
	fs.tasks = nil
}
