package slider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// arcEpsilon 弧线所在椭圆相对滑块的内缩量，避免轨道边缘露出滑块外
const arcEpsilon = 1.0

// TrackPaths 轨道被滑块分成的两段
//
// Left 从轨道起点到滑块，Right 从滑块到轨道终点。
// 从左到右布局时 Left 为已填充段；镜像布局时 Right 为已填充段。
type TrackPaths struct {
	Left  Path
	Right Path
}

// Filled 已填充段
func (t *TrackPaths) Filled(rtl bool) *Path {
	if rtl {
		return &t.Right
	}
	return &t.Left
}

// Unfilled 未填充段
func (t *TrackPaths) Unfilled(rtl bool) *Path {
	if rtl {
		return &t.Left
	}
	return &t.Right
}

// TrackSpec 构建轨道路径所需的几何参数
type TrackSpec struct {
	// X, Y 滑块中心
	X, Y float64
	// Radius 滑块圆角半径（矩形滑块为半宽）
	Radius float64
	// HalfStroke 轨道半粗细
	HalfStroke float64
	// Start, End 轨道两端的 x 坐标
	Start, End float64
}

// SweepAngle 轨道与滑块相交处的弧线扫角（度）
//
// halfStroke 不能大于 radius-1，调用方需先确认处于弧线模式。
func SweepAngle(halfStroke, radius float64) float64 {
	return mgl64.RadToDeg(math.Asin(halfStroke / (radius - arcEpsilon)))
}

// BuildTrackPaths 构建两段轨道路径，结果写入 out（复用其内存）
//
// 轨道比滑块圆角更粗时，两段都是直角矩形，在滑块中心处对接；
// 否则两段在滑块一侧用弧线收尾，藏到圆形滑块后面。
// 滑块正好在轨道端点时，对应的一段为空。
func BuildTrackPaths(spec TrackSpec, out *TrackPaths) {
	out.Left.Reset()
	out.Right.Reset()

	x, y := spec.X, spec.Y
	h := spec.HalfStroke
	r := spec.Radius

	if r-arcEpsilon < h {
		if x > spec.Start {
			out.Left.MoveTo(spec.Start, y-h)
			out.Left.LineTo(x, y-h)
			out.Left.LineTo(x, y+h)
			out.Left.LineTo(spec.Start, y+h)
			out.Left.Close()
		}
		if x < spec.End {
			out.Right.MoveTo(spec.End, y+h)
			out.Right.LineTo(x, y+h)
			out.Right.LineTo(x, y-h)
			out.Right.LineTo(spec.End, y-h)
			out.Right.Close()
		}
		return
	}

	oval := Rect{Left: x - r + arcEpsilon, Top: y - r + arcEpsilon, Right: x + r - arcEpsilon, Bottom: y + r - arcEpsilon}
	angle := SweepAngle(h, r)

	if x-r > spec.Start {
		out.Left.MoveTo(spec.Start, y-h)
		out.Left.ArcTo(oval, 180+angle, -angle*2)
		out.Left.LineTo(spec.Start, y+h)
		out.Left.Close()
	}
	if x+r < spec.End {
		out.Right.MoveTo(spec.End, y-h)
		out.Right.ArcTo(oval, -angle, angle*2)
		out.Right.LineTo(spec.End, y+h)
		out.Right.Close()
	}
}
