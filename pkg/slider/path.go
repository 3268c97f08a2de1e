package slider

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PathOp 路径指令类型
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	// OpArcTo 先连线到弧起点，再沿椭圆画弧（与 Android Path.arcTo 相同的语义）
	OpArcTo
	OpClose
)

// PathCmd 单条路径指令
//
// MoveTo/LineTo 使用 X, Y；ArcTo 使用 Oval、StartDeg、SweepDeg。
// 角度以度为单位，0 度指向 +x，正方向为屏幕顺时针（y 轴向下）。
type PathCmd struct {
	Op       PathOp
	X, Y     float64
	Oval     Rect
	StartDeg float64
	SweepDeg float64
}

// Path 与绘制后端无关的路径记录
//
// 由 Canvas 实现转换为具体后端的路径对象。
type Path struct {
	cmds []PathCmd
}

// Reset 清空路径
func (p *Path) Reset() { p.cmds = p.cmds[:0] }

// Empty 路径是否为空
func (p *Path) Empty() bool { return p == nil || len(p.cmds) == 0 }

// Commands 返回路径指令（只读）
func (p *Path) Commands() []PathCmd { return p.cmds }

func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpMoveTo, X: x, Y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpLineTo, X: x, Y: y})
}

func (p *Path) ArcTo(oval Rect, startDeg, sweepDeg float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpArcTo, Oval: oval, StartDeg: startDeg, SweepDeg: sweepDeg})
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, PathCmd{Op: OpClose})
}

// ArcPoint 椭圆上指定角度的点
func ArcPoint(oval Rect, deg float64) (float64, float64) {
	rad := mgl64.DegToRad(deg)
	rx, ry := oval.Width()/2, oval.Height()/2
	return oval.CenterX() + rx*math.Cos(rad), oval.CenterY() + ry*math.Sin(rad)
}

// Bounds 路径包围盒；弧线按 5 度步长采样
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}
	b := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	add := func(x, y float64) {
		b.Left = math.Min(b.Left, x)
		b.Right = math.Max(b.Right, x)
		b.Top = math.Min(b.Top, y)
		b.Bottom = math.Max(b.Bottom, y)
	}
	for _, c := range p.cmds {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			add(c.X, c.Y)
		case OpArcTo:
			steps := int(math.Ceil(math.Abs(c.SweepDeg)/5)) + 1
			for i := 0; i <= steps; i++ {
				add(ArcPoint(c.Oval, c.StartDeg+c.SweepDeg*float64(i)/float64(steps)))
			}
		}
	}
	return b
}
