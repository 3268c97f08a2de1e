package slider

import "math"

// Rect 浮点矩形
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width 宽度
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height 高度
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX 水平中心
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY 垂直中心
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Contains 点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Inset 四边同时向内收缩 d（d 为负则扩展）
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// geometry 轨道几何模型
//
// drawRect 是滑块中心可达的区域：水平方向两端各留出半个滑块，
// 垂直方向是以控件高度居中的滑块带。
type geometry struct {
	width, height int
	drawRect      Rect
}

// thumbOffset 水平方向单侧内缩量
func thumbOffset(s *Style) float64 {
	if s.ThumbShape == ThumbOval {
		return float64(s.ThumbRadius)
	}
	return float64(s.ThumbWidth / 2)
}

// thumbCrossSize 滑块在垂直方向的尺寸
func thumbCrossSize(s *Style) int {
	if s.ThumbShape == ThumbOval {
		return s.ThumbRadius * 2
	}
	return s.ThumbHeight
}

// resize 控件尺寸变化时重新计算 drawRect
func (g *geometry) resize(w, h int, s *Style) {
	g.width, g.height = w, h

	offset := thumbOffset(s)
	left := float64(s.Padding.Left) + offset
	right := float64(w-s.Padding.Right) - offset
	if right < left {
		// 控件比两个半滑块还窄：收拢到中点
		mid := (left + right) / 2
		left, right = mid, mid
	}

	band := float64(thumbCrossSize(s))
	top := (float64(h) - band) / 2
	g.drawRect = Rect{Left: left, Top: top, Right: right, Bottom: top + band}
}

// thumbCenter 滑块中心（逻辑坐标，不做镜像）
func (g *geometry) thumbCenter(raw float64) (float64, float64) {
	return g.drawRect.Left + g.drawRect.Width()*raw, g.drawRect.CenterY()
}

// mirrorX 镜像布局下的坐标变换：x' = 2*centerX - x
func (g *geometry) mirrorX(x float64) float64 {
	return 2*g.drawRect.CenterX() - x
}

// hitBounds 放大后的滑块触摸区域
//
// 即使滑块视觉上很小，也保证有足够大的可点击区域。
func (g *geometry) hitBounds(raw float64, s *Style) Rect {
	cx, cy := g.thumbCenter(raw)

	var half float64
	if s.ThumbShape == ThumbOval {
		half = math.Max(float64(s.EnlargeTouchRange),
			math.Max(float64(s.ThumbRadius), float64(g.height)/2))
	} else {
		half = math.Max(float64(s.EnlargeTouchRange),
			math.Max(float64(s.ThumbWidth), float64(s.ThumbHeight)))
	}
	return Rect{Left: cx - half, Top: cy - half, Right: cx + half, Bottom: cy + half}
}

// positionAt 点击位置 -> 轨道位置，限制在 [0, 1]
func (g *geometry) positionAt(x float64) float64 {
	w := g.drawRect.Width()
	if w <= 0 {
		return 0
	}
	return clamp01((x - g.drawRect.Left) / w)
}

// suggestedMinimumWidth 建议最小宽度
func suggestedMinimumWidth(s *Style) int {
	if s.ThumbShape == ThumbOval {
		return s.ThumbRadius*4 + s.Padding.Horizontal()
	}
	return s.ThumbWidth*2 + s.Padding.Horizontal()
}

// suggestedMinimumHeight 建议最小高度
func suggestedMinimumHeight(s *Style) int {
	h := thumbCrossSize(s)
	if s.TrackSize > h {
		h = s.TrackSize
	}
	return h + s.Padding.Vertical()
}
