// Package render 把滑块绘制到 Ebitengine 图像上
package render

import (
	"image/color"
	"math"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pathBuilder vector.Path 的子集，测试时可替换
type pathBuilder interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	Arc(x, y, radius, startAngle, endAngle float32, dir vector.Direction)
	Close()
}

// EbitenCanvas 在 ebiten.Image 上实现 slider.Canvas
//
// 滑块坐标相对控件左上角，绘制时加上 (OffsetX, OffsetY)。
type EbitenCanvas struct {
	dst              *ebiten.Image
	offsetX, offsetY float64
	antiAlias        bool

	scratch slider.Path
}

// NewEbitenCanvas 创建画布
func NewEbitenCanvas(dst *ebiten.Image, offsetX, offsetY float64) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, offsetX: offsetX, offsetY: offsetY, antiAlias: true}
}

// Reset 复用画布绘制到另一个目标或位置
func (c *EbitenCanvas) Reset(dst *ebiten.Image, offsetX, offsetY float64) {
	c.dst = dst
	c.offsetX, c.offsetY = offsetX, offsetY
}

// SetAntiAlias 开关抗锯齿
func (c *EbitenCanvas) SetAntiAlias(aa bool) { c.antiAlias = aa }

func (c *EbitenCanvas) FillPath(p *slider.Path, clr color.Color) {
	if p.Empty() {
		return
	}
	var path vector.Path
	appendPath(&path, p, c.offsetX, c.offsetY)

	drawOp := &vector.DrawPathOptions{AntiAlias: c.antiAlias}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, &path, nil, drawOp)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(c.dst, float32(cx+c.offsetX), float32(cy+c.offsetY), float32(r), clr, c.antiAlias)
}

func (c *EbitenCanvas) FillRoundRect(r slider.Rect, radius float64, clr color.Color) {
	c.scratch.Reset()
	RoundRectPath(r, radius, &c.scratch)
	c.FillPath(&c.scratch, clr)
}

// RoundRectPath 生成圆角矩形路径；半径超过短边一半时取一半
func RoundRectPath(r slider.Rect, radius float64, out *slider.Path) {
	radius = mgl64.Clamp(radius, 0, math.Min(r.Width(), r.Height())/2)
	if radius == 0 {
		out.MoveTo(r.Left, r.Top)
		out.LineTo(r.Right, r.Top)
		out.LineTo(r.Right, r.Bottom)
		out.LineTo(r.Left, r.Bottom)
		out.Close()
		return
	}

	d := radius * 2
	out.MoveTo(r.Left+radius, r.Top)
	out.ArcTo(slider.Rect{Left: r.Right - d, Top: r.Top, Right: r.Right, Bottom: r.Top + d}, 270, 90)
	out.ArcTo(slider.Rect{Left: r.Right - d, Top: r.Bottom - d, Right: r.Right, Bottom: r.Bottom}, 0, 90)
	out.ArcTo(slider.Rect{Left: r.Left, Top: r.Bottom - d, Right: r.Left + d, Bottom: r.Bottom}, 90, 90)
	out.ArcTo(slider.Rect{Left: r.Left, Top: r.Top, Right: r.Left + d, Bottom: r.Top + d}, 180, 90)
	out.Close()
}

// appendPath 把后端无关的路径指令转换为 vector 路径
func appendPath(dst pathBuilder, p *slider.Path, ox, oy float64) {
	hasPoint := false
	for _, cmd := range p.Commands() {
		switch cmd.Op {
		case slider.OpMoveTo:
			dst.MoveTo(float32(cmd.X+ox), float32(cmd.Y+oy))
			hasPoint = true

		case slider.OpLineTo:
			dst.LineTo(float32(cmd.X+ox), float32(cmd.Y+oy))
			hasPoint = true

		case slider.OpArcTo:
			sx, sy := slider.ArcPoint(cmd.Oval, cmd.StartDeg)
			if hasPoint {
				dst.LineTo(float32(sx+ox), float32(sy+oy))
			} else {
				dst.MoveTo(float32(sx+ox), float32(sy+oy))
			}
			hasPoint = true

			if cmd.Oval.Width() != cmd.Oval.Height() {
				appendEllipse(dst, cmd, ox, oy)
				continue
			}
			dir := vector.Clockwise
			if cmd.SweepDeg < 0 {
				dir = vector.CounterClockwise
			}
			start := mgl64.DegToRad(cmd.StartDeg)
			end := mgl64.DegToRad(cmd.StartDeg + cmd.SweepDeg)
			dst.Arc(
				float32(cmd.Oval.CenterX()+ox), float32(cmd.Oval.CenterY()+oy),
				float32(cmd.Oval.Width()/2),
				float32(start), float32(end), dir,
			)

		case slider.OpClose:
			dst.Close()
		}
	}
}

// appendEllipse 非正圆的弧用折线逼近
func appendEllipse(dst pathBuilder, cmd slider.PathCmd, ox, oy float64) {
	steps := int(math.Ceil(math.Abs(cmd.SweepDeg)/5)) + 1
	for i := 1; i <= steps; i++ {
		x, y := slider.ArcPoint(cmd.Oval, cmd.StartDeg+cmd.SweepDeg*float64(i)/float64(steps))
		dst.LineTo(float32(x+ox), float32(y+oy))
	}
}
