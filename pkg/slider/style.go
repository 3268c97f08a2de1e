package slider

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

// ThumbShape 滑块形状
type ThumbShape int

const (
	// ThumbOval 圆形滑块（默认）
	ThumbOval ThumbShape = iota
	// ThumbRectangle 矩形滑块，圆角半径取 ThumbRadius
	ThumbRectangle
)

func (s ThumbShape) String() string {
	switch s {
	case ThumbOval:
		return "oval"
	case ThumbRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// 默认尺寸（单位 dp）
const (
	DefaultTrackSizeDp         = 2
	DefaultThumbRadiusDp       = 10
	DefaultThumbWidthDp        = 3
	DefaultThumbHeightDp       = 10
	DefaultTouchSlopDp         = 8
	DefaultEnlargeTouchRangeDp = 20

	// DefaultAnimationDuration 中等动画时长
	DefaultAnimationDuration = 400 * time.Millisecond
)

// Padding 控件内边距（像素）
type Padding struct {
	Left, Top, Right, Bottom int
}

// Horizontal 左右内边距之和
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical 上下内边距之和
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Style 构造时的配置
//
// 尺寸字段单位为像素；为 0 时由 Normalize 按 Density 从默认 dp 值换算。
// ThumbColor 为 nil 时取 ProgressColor。零值 Style 是可交互的默认滑块。
type Style struct {
	// Disabled 创建时即禁用
	Disabled bool

	ProgressColor color.Color
	TrackColor    color.Color
	ThumbColor    color.Color

	TrackSize int

	// Value 初始值，nil 表示未设置（取 Min）
	Value *int
	// MinValue/MaxValue 必须同时设置才生效
	MinValue *int
	MaxValue *int

	ThumbShape  ThumbShape
	ThumbRadius int
	ThumbWidth  int
	ThumbHeight int

	// Density dp -> px 换算系数
	Density           float64
	TouchSlop         int
	EnlargeTouchRange int
	AnimationDuration time.Duration

	Padding Padding
}

// DefaultStyle 返回默认配置（密度 1.0）
func DefaultStyle() Style {
	s := Style{
		ProgressColor: colornames.Black,
		TrackColor:    colornames.Black,
		Density:       1,
	}
	return s.Normalize()
}

// Dp 将 dp 换算为像素，四舍五入
func (s Style) Dp(v float64) int {
	d := s.Density
	if d <= 0 {
		d = 1
	}
	return int(v*d + 0.5)
}

// Normalize 填充缺省字段
func (s Style) Normalize() Style {
	if s.Density <= 0 {
		s.Density = 1
	}
	if s.ProgressColor == nil {
		s.ProgressColor = colornames.Black
	}
	if s.TrackColor == nil {
		s.TrackColor = colornames.Black
	}
	if s.ThumbColor == nil {
		s.ThumbColor = s.ProgressColor
	}
	if s.TrackSize <= 0 {
		s.TrackSize = s.Dp(DefaultTrackSizeDp)
	}
	if s.ThumbRadius <= 0 {
		s.ThumbRadius = s.Dp(DefaultThumbRadiusDp)
	}
	if s.ThumbWidth <= 0 {
		s.ThumbWidth = s.Dp(DefaultThumbWidthDp)
	}
	if s.ThumbHeight <= 0 {
		s.ThumbHeight = s.Dp(DefaultThumbHeightDp)
	}
	if s.TouchSlop <= 0 {
		s.TouchSlop = s.Dp(DefaultTouchSlopDp)
	}
	if s.EnlargeTouchRange <= 0 {
		s.EnlargeTouchRange = s.Dp(DefaultEnlargeTouchRangeDp)
	}
	if s.AnimationDuration <= 0 {
		s.AnimationDuration = DefaultAnimationDuration
	}
	return s
}

// IntPtr 便于构造可选整数字段
func IntPtr(v int) *int { return &v }
