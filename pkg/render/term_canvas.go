package render

import (
	"image/color"
	"math"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// TermCanvas 在终端单元格上实现 slider.Canvas
//
// 控件坐标按 CellWidth x CellHeight 的虚拟像素映射到单元格，
// 单元格中心落在图形内部时用该颜色填充背景。
type TermCanvas struct {
	screen     tcell.Screen
	col, row   int
	cellWidth  float64
	cellHeight float64
	cols, rows int

	scratch slider.Path
}

// NewTermCanvas 创建画布：控件左上角在 (col, row)，占 cols x rows 个单元格
func NewTermCanvas(screen tcell.Screen, col, row, cols, rows int, cellWidth, cellHeight float64) *TermCanvas {
	return &TermCanvas{
		screen:     screen,
		col:        col,
		row:        row,
		cols:       cols,
		rows:       rows,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// CellToPoint 单元格相对控件的中心点（虚拟像素）
func (c *TermCanvas) CellToPoint(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * c.cellWidth, (float64(cy) + 0.5) * c.cellHeight
}

// PointToCell 虚拟像素坐标所在的单元格（相对控件）
func (c *TermCanvas) PointToCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellWidth)), int(math.Floor(y / c.cellHeight))
}

func (c *TermCanvas) FillPath(p *slider.Path, clr color.Color) {
	if p.Empty() {
		return
	}
	polys := Flatten(p)
	c.fill(clr, func(x, y float64) bool { return insidePolygons(polys, x, y) })
}

func (c *TermCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	center := mgl64.Vec2{cx, cy}
	c.fill(clr, func(x, y float64) bool {
		return mgl64.Vec2{x, y}.Sub(center).Len() <= r
	})
}

func (c *TermCanvas) FillRoundRect(r slider.Rect, radius float64, clr color.Color) {
	c.scratch.Reset()
	RoundRectPath(r, radius, &c.scratch)
	c.FillPath(&c.scratch, clr)
}

func (c *TermCanvas) fill(clr color.Color, inside func(x, y float64) bool) {
	style := tcell.StyleDefault.Background(TermColor(clr))
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			if inside(c.CellToPoint(cx, cy)) {
				c.screen.SetContent(c.col+cx, c.row+cy, ' ', nil, style)
			}
		}
	}
}

// TermColor 转换为终端真彩色
func TermColor(clr color.Color) tcell.Color {
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Flatten 把路径展开成折线多边形，弧线每 5 度取一个点
func Flatten(p *slider.Path) [][]mgl64.Vec2 {
	var polys [][]mgl64.Vec2
	var cur []mgl64.Vec2
	flush := func() {
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, cmd := range p.Commands() {
		switch cmd.Op {
		case slider.OpMoveTo:
			flush()
			cur = append(cur, mgl64.Vec2{cmd.X, cmd.Y})
		case slider.OpLineTo:
			cur = append(cur, mgl64.Vec2{cmd.X, cmd.Y})
		case slider.OpArcTo:
			steps := int(math.Ceil(math.Abs(cmd.SweepDeg)/5)) + 1
			for i := 0; i <= steps; i++ {
				x, y := slider.ArcPoint(cmd.Oval, cmd.StartDeg+cmd.SweepDeg*float64(i)/float64(steps))
				cur = append(cur, mgl64.Vec2{x, y})
			}
		case slider.OpClose:
			flush()
		}
	}
	flush()
	return polys
}

// insidePolygons 奇偶规则
func insidePolygons(polys [][]mgl64.Vec2, x, y float64) bool {
	in := false
	for _, poly := range polys {
		j := len(poly) - 1
		for i := range poly {
			a, b := poly[i], poly[j]
			if (a.Y() > y) != (b.Y() > y) &&
				x < (b.X()-a.X())*(y-a.Y())/(b.Y()-a.Y())+a.X() {
				in = !in
			}
			j = i
		}
	}
	return in
}
