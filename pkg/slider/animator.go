package slider

import (
	"time"

	"github.com/decker502/xslider/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// animTarget 动画驱动的对象（滑块的原始位置）
type animTarget interface {
	rawPosition() float64
	setRawPosition(pos float64)
	invalidate()
}

// ThumbAnimator 滑块移动动画
//
// 状态机：Idle -> Running -> Idle，同一时刻只有一个目标。
// 每帧由 Scheduler 回调驱动，按固定频率（而非固定延迟）重新调度。
type ThumbAnimator struct {
	t        animTarget
	sched    Scheduler
	clock    Clock
	interp   utils.Interpolator
	duration time.Duration

	running   bool
	startPos  float64
	target    float64
	startTime time.Time
	nextDue   time.Time
	cancel    CancelFunc
}

func newThumbAnimator(t animTarget, duration time.Duration) *ThumbAnimator {
	return &ThumbAnimator{
		t:        t,
		clock:    SystemClock{},
		interp:   utils.EaseOutQuad,
		duration: duration,
	}
}

// attach 绑定调度器；sched 为 nil 时动画退化为同步赋值
func (a *ThumbAnimator) attach(sched Scheduler) {
	a.sched = sched
	a.clock = SystemClock{}
	if cp, ok := sched.(interface{ Clock() Clock }); ok && cp.Clock() != nil {
		a.clock = cp.Clock()
	}
}

// SetInterpolator 替换缓动曲线；nil 恢复默认
func (a *ThumbAnimator) SetInterpolator(fn utils.Interpolator) {
	if fn == nil {
		fn = utils.EaseOutQuad
	}
	a.interp = fn
}

// Running 动画是否进行中
func (a *ThumbAnimator) Running() bool { return a.running }

// Target 动画目标位置
func (a *ThumbAnimator) Target() float64 { return a.target }

// Start 开始动画到 target
//
// 返回 false 表示没有动画：目标与当前位置相同（调用方自行赋值），
// 或者没有可用的调度器（此时已同步赋值）。
func (a *ThumbAnimator) Start(target float64) bool {
	if a.t.rawPosition() == target {
		return false
	}

	a.target = target

	if a.sched == nil {
		a.t.setRawPosition(target)
		a.t.invalidate()
		return false
	}

	a.interrupt()

	now := a.clock.Now()
	a.startTime = now
	a.startPos = a.t.rawPosition()
	a.running = true
	a.nextDue = now.Add(FrameInterval)
	a.cancel = a.sched.Schedule(FrameInterval, a.tick)
	a.t.invalidate()
	return true
}

// Stop 停止动画并直接跳到目标位置；空闲时调用只触发重绘
func (a *ThumbAnimator) Stop() {
	wasRunning := a.running
	a.interrupt()
	if wasRunning {
		a.t.setRawPosition(a.target)
	}
	a.t.invalidate()
}

// interrupt 放弃进行中的动画，不修改位置
func (a *ThumbAnimator) interrupt() {
	a.running = false
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// progress 当前进度 [0, 1]
func (a *ThumbAnimator) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	return mgl64.Clamp(float64(now.Sub(a.startTime))/float64(a.duration), 0, 1)
}

func (a *ThumbAnimator) tick() {
	a.cancel = nil
	if !a.running {
		return
	}

	now := a.clock.Now()
	p := a.progress(now)
	eased := a.interp(p)
	a.t.setRawPosition(utils.Lerp(a.startPos, a.target, eased))

	if p >= 1 {
		a.Stop()
		return
	}

	if a.sched == nil {
		// 调度器在动画中途被移除
		a.Stop()
		return
	}

	a.nextDue = a.nextDue.Add(FrameInterval)
	a.cancel = a.sched.Schedule(a.nextDue.Sub(now), a.tick)
	a.t.invalidate()
}
