package slider

// PointerInput 逐帧轮询的指针输入源
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// PointerState 是否按下以及位置（宿主坐标）
	PointerState() (pressed bool, x, y int)
	// IsFocused 窗口是否有焦点
	IsFocused() bool
}

// PointerTracker 把轮询得到的按下状态转换为按下/移动/抬起事件序列
//
// 触摸抬起时拿不到位置，使用最后一次按住时的位置；
// 按住期间失去焦点产生取消事件。
type PointerTracker struct {
	input   PointerInput
	pressed bool
	lastX   int
	lastY   int
}

// NewPointerTracker 创建跟踪器
func NewPointerTracker(input PointerInput) *PointerTracker {
	return &PointerTracker{input: input}
}

// Update 每帧调用一次；ok 为 false 表示这一帧没有事件
func (pt *PointerTracker) Update() (ev PointerEvent, ok bool) {
	pressed, x, y := pt.input.PointerState()

	if !pt.input.IsFocused() {
		if pt.pressed {
			pt.pressed = false
			return pt.event(PointerCancel, pt.lastX, pt.lastY), true
		}
		return PointerEvent{}, false
	}

	switch {
	case pressed && !pt.pressed:
		pt.pressed = true
		pt.lastX, pt.lastY = x, y
		return pt.event(PointerDown, x, y), true

	case pressed && pt.pressed:
		if x == pt.lastX && y == pt.lastY {
			return PointerEvent{}, false
		}
		pt.lastX, pt.lastY = x, y
		return pt.event(PointerMove, x, y), true

	case !pressed && pt.pressed:
		pt.pressed = false
		return pt.event(PointerUp, pt.lastX, pt.lastY), true
	}
	return PointerEvent{}, false
}

// Pressed 当前是否按住
func (pt *PointerTracker) Pressed() bool { return pt.pressed }

func (pt *PointerTracker) event(a PointerAction, x, y int) PointerEvent {
	return PointerEvent{Action: a, X: float64(x), Y: float64(y)}
}

// Offset 把宿主坐标的事件平移到控件坐标
func (ev PointerEvent) Offset(dx, dy float64) PointerEvent {
	ev.X -= dx
	ev.Y -= dy
	return ev
}
