package render

import (
	"testing"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellBg(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTermCanvasFillCircle(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	c := NewTermCanvas(screen, 2, 1, 10, 5, 4, 8)

	// 圆心在控件 (20, 20)，即第 (5, 2) 个单元格中心附近
	c.FillCircle(20, 20, 6, colornames.Red)

	red := TermColor(colornames.Red)
	if got := cellBg(screen, 2+4, 1+2); got != red {
		t.Errorf("center cell bg = %v, want red", got)
	}
	if got := cellBg(screen, 2, 1); got == red {
		t.Error("corner cell should stay empty")
	}
}

func TestTermCanvasFillPath(t *testing.T) {
	screen := newSimScreen(t, 10, 4)
	c := NewTermCanvas(screen, 0, 0, 10, 4, 4, 8)

	var p slider.Path
	p.MoveTo(0, 8)
	p.LineTo(20, 8)
	p.LineTo(20, 16)
	p.LineTo(0, 16)
	p.Close()
	c.FillPath(&p, colornames.Teal)

	teal := TermColor(colornames.Teal)
	for x := 0; x < 10; x++ {
		want := x < 5
		if got := cellBg(screen, x, 1) == teal; got != want {
			t.Errorf("cell (%d, 1) filled = %v, want %v", x, got, want)
		}
		if cellBg(screen, x, 0) == teal || cellBg(screen, x, 2) == teal {
			t.Errorf("column %d: rows outside the band were filled", x)
		}
	}
}

func TestFlattenArcPath(t *testing.T) {
	var p slider.Path
	p.MoveTo(0, 0)
	p.ArcTo(slider.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20}, 180, 90)
	p.Close()
	p.MoveTo(0, 0)
	p.LineTo(1, 1)

	polys := Flatten(&p)
	// 只有两个点的子路径被丢弃
	if len(polys) != 1 || len(polys[0]) < 10 {
		t.Fatalf("polys = %d, first has %d points", len(polys), len(polys[0]))
	}
	// 角点与弧之间的区域
	if !insidePolygons(polys, 1, 1) {
		t.Error("(1, 1) should be inside")
	}
	if insidePolygons(polys, 5, 5) {
		t.Error("(5, 5) lies beyond the arc")
	}
}

func TestTermCanvasCellMapping(t *testing.T) {
	c := NewTermCanvas(nil, 0, 0, 10, 4, 4, 8)
	if x, y := c.CellToPoint(2, 1); x != 10 || y != 12 {
		t.Errorf("CellToPoint = (%v, %v)", x, y)
	}
	if cx, cy := c.PointToCell(10, 12); cx != 2 || cy != 1 {
		t.Errorf("PointToCell = (%d, %d)", cx, cy)
	}
}
