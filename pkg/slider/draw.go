package slider

import "image/color"

// Canvas 绘制能力，由宿主的图形后端实现
type Canvas interface {
	FillPath(p *Path, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillRoundRect(r Rect, radius float64, c color.Color)
}

// TrackPaths 按当前状态计算两段轨道路径
//
// 返回的指针指向控件内部缓冲，下一次调用时会被覆盖。
func (s *Slider) TrackPaths() *TrackPaths {
	x, y := s.ThumbCenter()

	radius := float64(s.style.ThumbWidth) / 2
	start, end := 0.0, float64(s.geo.width)
	if s.style.ThumbShape == ThumbOval {
		radius = float64(s.style.ThumbRadius)
		start, end = s.geo.drawRect.Left, s.geo.drawRect.Right
	}

	BuildTrackPaths(TrackSpec{
		X:          x,
		Y:          y,
		Radius:     radius,
		HalfStroke: float64(s.style.TrackSize) / 2,
		Start:      start,
		End:        end,
	}, &s.paths)
	return &s.paths
}

// Draw 绘制轨道与滑块
//
// 禁用时已填充段和滑块都使用轨道颜色；矩形滑块禁用时尺寸加倍。
func (s *Slider) Draw(c Canvas) {
	progress := s.style.ProgressColor
	thumb := s.style.ThumbColor
	if !s.enabled {
		progress = s.style.TrackColor
		thumb = s.style.TrackColor
	}

	paths := s.TrackPaths()
	if p := paths.Unfilled(s.rtl); !p.Empty() {
		c.FillPath(p, s.style.TrackColor)
	}
	if p := paths.Filled(s.rtl); !p.Empty() {
		c.FillPath(p, progress)
	}

	x, y := s.ThumbCenter()
	switch s.style.ThumbShape {
	case ThumbOval:
		c.FillCircle(x, y, float64(s.style.ThumbRadius), thumb)
	case ThumbRectangle:
		w, h := float64(s.style.ThumbWidth), float64(s.style.ThumbHeight)
		if !s.enabled {
			w, h = w*2, h*2
		}
		r := Rect{Left: x - w/2, Top: y - h/2, Right: x + w/2, Bottom: y + h/2}
		c.FillRoundRect(r, float64(s.style.ThumbRadius), thumb)
	}
}
