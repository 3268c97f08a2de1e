package slider

// MeasureMode 测量约束模式
type MeasureMode int

const (
	// MeasureUnspecified 父容器不限制尺寸
	MeasureUnspecified MeasureMode = iota
	// MeasureAtMost 尺寸不超过 Size
	MeasureAtMost
	// MeasureExactly 尺寸固定为 Size
	MeasureExactly
)

// MeasureSpec 单个方向上的测量约束
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

func resolveSize(spec MeasureSpec, suggested int) int {
	switch spec.Mode {
	case MeasureUnspecified:
		return suggested
	case MeasureAtMost:
		if spec.Size < suggested {
			return spec.Size
		}
		return suggested
	default:
		return spec.Size
	}
}

// SuggestedMinimumWidth 建议最小宽度
func (s *Slider) SuggestedMinimumWidth() int {
	return suggestedMinimumWidth(&s.style)
}

// SuggestedMinimumHeight 建议最小高度
func (s *Slider) SuggestedMinimumHeight() int {
	return suggestedMinimumHeight(&s.style)
}

// Measure 按约束计算控件尺寸
func (s *Slider) Measure(width, height MeasureSpec) (int, int) {
	return resolveSize(width, s.SuggestedMinimumWidth()), resolveSize(height, s.SuggestedMinimumHeight())
}
