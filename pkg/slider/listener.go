package slider

// PositionChangeListener 滑块位置变化的监听者
//
// fromUser 表示变化是否来自用户手势。oldValue/newValue 为变化前后的整数值。
type PositionChangeListener interface {
	OnPositionChanged(s *Slider, fromUser bool, oldPos, newPos float64, oldValue, newValue int)
}

// PositionChangeFunc 函数适配器
type PositionChangeFunc func(s *Slider, fromUser bool, oldPos, newPos float64, oldValue, newValue int)

// OnPositionChanged 调用 f
func (f PositionChangeFunc) OnPositionChanged(s *Slider, fromUser bool, oldPos, newPos float64, oldValue, newValue int) {
	f(s, fromUser, oldPos, newPos, oldValue, newValue)
}

// Host 宿主能力：重绘与重新布局
type Host interface {
	Invalidate()
	RequestLayout()
}
