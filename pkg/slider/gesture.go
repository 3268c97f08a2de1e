package slider

import "github.com/go-gl/mathgl/mgl64"

// PointerAction 指针事件类型
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent 指针事件，坐标相对控件左上角
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
}

// EventResult 事件处理结果
//
// 两种结果都表示控件占有了这个手势，宿主不应再交给上层容器。
type EventResult int

const (
	// EventHandled 事件已处理
	EventHandled EventResult = iota
	// EventConsumed 控件禁用：事件未处理但也不再向上传递
	EventConsumed
)

// gestureState 单次手势的交互状态，每次按下时重置
type gestureState struct {
	dragging bool
	anchor   mgl64.Vec2
}

// HandleEvent 处理一个指针事件
//
// 从滑块上开始的按下-移动是拖动；在别处按下并在触摸容差内抬起是点击，
// 滑块以动画移到点击位置。
func (s *Slider) HandleEvent(ev PointerEvent) EventResult {
	if !s.enabled {
		return EventConsumed
	}

	x, y := ev.X, ev.Y
	if s.rtl {
		x = s.geo.mirrorX(x)
	}
	p := mgl64.Vec2{x, y}

	switch ev.Action {
	case PointerDown:
		s.gesture.dragging = s.isThumbHit(x, y) && !s.anim.Running()
		s.gesture.anchor = p

	case PointerMove:
		if !s.gesture.dragging {
			break
		}
		w := s.geo.drawRect.Width()
		if w <= 0 {
			break
		}
		offset := (x - s.gesture.anchor.X()) / w
		s.applyPosition(clamp01(s.position+offset), false, true)
		s.gesture.anchor[0] = x
		s.invalidate()

	case PointerUp:
		if s.gesture.dragging {
			s.gesture.dragging = false
			s.applyPosition(s.Position(), true, true)
		} else if p.Sub(s.gesture.anchor).Len() <= float64(s.style.TouchSlop) {
			s.applyPosition(s.geo.positionAt(x), true, true)
		}

	case PointerCancel:
		if s.gesture.dragging {
			s.gesture.dragging = false
			s.applyPosition(s.Position(), true, true)
		}
	}
	return EventHandled
}

// Dragging 是否正在拖动滑块
func (s *Slider) Dragging() bool { return s.gesture.dragging }

// isThumbHit 点是否落在放大后的滑块触摸区域内（逻辑坐标）
func (s *Slider) isThumbHit(x, y float64) bool {
	return s.geo.hitBounds(s.position, &s.style).Contains(x, y)
}
