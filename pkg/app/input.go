package app

import (
	"github.com/decker502/xslider/pkg/slider"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ slider.PointerInput = EbitenPointerInput{}

// EbitenPointerInput 从 Ebitengine 读取指针状态（触摸优先于鼠标）
//
// 实现 slider.PointerInput，由 Panel 的指针跟踪器每帧轮询。
type EbitenPointerInput struct{}

// PointerState 是否按下以及位置
func (EbitenPointerInput) PointerState() (bool, int, int) { return GetPointerState() }

// IsFocused 窗口是否有焦点
func (EbitenPointerInput) IsFocused() bool { return ebiten.IsFocused() }

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}
