// xslider-tui 在终端里运行滑块演示
//
// 鼠标点击或拖动滑块；1 设置值为 60，2 设置范围为 [10, 80]，
// r 切换镜像布局，左右方向键微调，q / Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/xslider/pkg/config"
	"github.com/decker502/xslider/pkg/render"
	"github.com/decker502/xslider/pkg/slider"
	"github.com/decker502/xslider/pkg/store"
	"github.com/decker502/xslider/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/xlab/closer"
)

// 每个单元格对应的虚拟像素
const (
	cellWidth  = 4
	cellHeight = 8
)

var (
	logPath   = flag.String("log", "", "日志文件，为空不输出日志")
	stylePath = flag.String("style", "", "样式文件（YAML），修改后自动重新加载")
	appName   = flag.String("app-name", "xslider_tui", "状态存储使用的应用名")
	easing    = flag.String("easing", "quad", "滑块动画曲线：linear、quad、cubic 或 decelerate:<系数>")
)

// tuiInput 由鼠标事件更新的指针状态
type tuiInput struct {
	pressed bool
	x, y    int
	focused bool
}

func (in *tuiInput) PointerState() (bool, int, int) { return in.pressed, in.x, in.y }
func (in *tuiInput) IsFocused() bool                { return in.focused }

// host 终端宿主
type host struct {
	screen  tcell.Screen
	sched   *slider.FrameScheduler
	store   *store.StateStore
	watcher *config.StyleWatcher

	slider  *slider.Slider
	canvas  *render.TermCanvas
	input   *tuiInput
	tracker *slider.PointerTracker
	interp  utils.Interpolator

	col, row   int
	cols, rows int
	dirty      bool
}

func (h *host) Invalidate()    { h.dirty = true }
func (h *host) RequestLayout() { h.layout() }

func newHost(screen tcell.Screen, st *store.StateStore, style slider.Style, interp utils.Interpolator) *host {
	h := &host{
		screen: screen,
		sched:  slider.NewFrameScheduler(nil),
		store:  st,
		input:  &tuiInput{focused: true},
		interp: interp,
		col:    2,
		row:    3,
	}
	h.tracker = slider.NewPointerTracker(h.input)
	h.bind(slider.New(style))
	h.store.RestoreSlider("main", h.slider)
	return h
}

func (h *host) bind(s *slider.Slider) {
	h.slider = s
	s.Attach(h, h.sched)
	s.Animator().SetInterpolator(h.interp)
	h.layout()
}

// sliderRows 行数取奇数，让中间一行的中心落在轨道中线上
func sliderRows(measured, cellH int) int {
	rows := (measured + cellH - 1) / cellH
	if rows < 1 {
		rows = 1
	}
	if rows%2 == 0 {
		rows++
	}
	return rows
}

func (h *host) layout() {
	w, _ := h.screen.Size()
	h.cols = w - 2*h.col
	if h.cols < 1 {
		h.cols = 1
	}
	_, mh := h.slider.Measure(
		slider.MeasureSpec{Mode: slider.MeasureExactly, Size: h.cols * cellWidth},
		slider.MeasureSpec{Mode: slider.MeasureUnspecified},
	)
	h.rows = sliderRows(mh, cellHeight)
	h.slider.SetSize(h.cols*cellWidth, h.rows*cellHeight)
	h.canvas = render.NewTermCanvas(h.screen, h.col, h.row, h.cols, h.rows, cellWidth, cellHeight)
	h.dirty = true
}

// applyStyle 重建滑块，保留位置与范围
func (h *host) applyStyle(style slider.Style) {
	old := h.slider
	state := old.SaveState()
	s := slider.New(style)
	if style.MinValue == nil || style.MaxValue == nil {
		s.SetValueRange(old.MinValue(), old.MaxValue(), false)
	}
	s.SetRTL(old.RTL())
	old.Detach()
	h.bind(s)
	s.RestoreState(state)
}

func (h *host) draw() {
	h.screen.Clear()
	h.slider.Draw(h.canvas)

	// 滑块下方的标记
	s := h.slider
	thumbCol, _ := h.canvas.PointToCell(s.ThumbCenter())
	h.print(h.col+thumbCol, h.row+h.rows, "^")

	h.print(h.col, 1, fmt.Sprintf("value: %d, exact: %.4f", s.Value(), s.ExactValue()))
	h.print(h.col, h.row+h.rows+1, fmt.Sprintf("min %d  max %d  rtl %v", s.MinValue(), s.MaxValue(), s.RTL()))
	h.print(h.col, h.row+h.rows+2, "1: setValue(60)  2: setValueRange(10,80)  r: rtl  q: quit")
	h.screen.Show()
	h.dirty = false
}

func (h *host) print(x, y int, text string) {
	for i, r := range text {
		h.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// handleMouse 单元格坐标转换为虚拟像素后交给跟踪器
func (h *host) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	h.input.pressed = ev.Buttons()&tcell.Button1 != 0
	h.input.x = cx*cellWidth + cellWidth/2
	h.input.y = cy*cellHeight + cellHeight/2

	if pev, ok := h.tracker.Update(); ok {
		h.slider.HandleEvent(pev.Offset(float64(h.col*cellWidth), float64(h.row*cellHeight)))
		if pev.Action == slider.PointerUp {
			h.store.SaveSlider("main", h.slider)
		}
	}
}

// handleKey 返回 false 表示退出
func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.slider.SetValue(float64(h.slider.Value()-1), true)
	case tcell.KeyRight:
		h.slider.SetValue(float64(h.slider.Value()+1), true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '1':
			h.slider.SetValue(60, true)
		case '2':
			h.slider.SetValueRange(10, 80, true)
		case 'r':
			h.slider.SetRTL(!h.slider.RTL())
		}
	}
	return true
}

func (h *host) run() {
	ticker := time.NewTicker(slider.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var styleUpdates <-chan *config.StyleConfig
	if h.watcher != nil {
		styleUpdates = h.watcher.Updates()
	}

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !h.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				h.handleMouse(ev)
			case *tcell.EventFocus:
				h.input.focused = ev.Focused
				if pev, ok := h.tracker.Update(); ok {
					h.slider.HandleEvent(pev.Offset(float64(h.col*cellWidth), float64(h.row*cellHeight)))
				}
			case *tcell.EventResize:
				h.screen.Sync()
				h.layout()
			}

		case cfg := <-styleUpdates:
			h.applyStyle(cfg.ToStyle(1))

		case <-ticker.C:
			h.sched.Pump()
			if h.dirty {
				h.draw()
			}
		}
	}
}

func loadStyle(path string) slider.Style {
	cfg := config.DefaultStyleConfig()
	cfg.ProgressColor = "teal"
	cfg.TrackColor = "gray"
	if path != "" {
		loaded, err := config.LoadStyleConfig(path)
		if err != nil {
			log.Printf("[TUI] Warning: %v (using built-in style)", err)
		} else {
			cfg = loaded
		}
	}
	return cfg.ToStyle(1)
}

func main() {
	flag.Parse()

	interp, err := utils.ParseInterpolator(*easing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(f)
		closer.Bind(func() { f.Close() })
	}

	st, err := store.Open(*appName)
	if err != nil {
		log.Printf("[TUI] Warning: %v (state will not be saved)", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.EnableFocus()

	h := newHost(screen, st, loadStyle(*stylePath), interp)
	if *stylePath != "" {
		if h.watcher, err = config.NewStyleWatcher(*stylePath); err != nil {
			log.Printf("[TUI] Warning: style hot reload disabled: %v", err)
		}
	}

	// 信号退出与正常退出都保存状态并恢复终端
	closer.Bind(func() {
		h.store.SaveSlider("main", h.slider)
		if h.watcher != nil {
			h.watcher.Close()
		}
		screen.Fini()
	})

	h.run()
	closer.Close()
}
