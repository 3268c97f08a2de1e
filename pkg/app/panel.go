package app

import (
	"fmt"
	"log"

	"github.com/decker502/xslider/pkg/slider"
	"github.com/decker502/xslider/pkg/store"
	"github.com/decker502/xslider/pkg/utils"
)

// Item 面板上的一个滑块
type Item struct {
	ID    string
	Title string

	Slider *slider.Slider

	// 位置与宽度由面板指定，高度由滑块测量
	X, Y   int
	Width  int
	Height int

	// Persist 退出和每次手势结束时保存位置
	Persist bool

	// OnChange 可选，值变化时调用
	OnChange func(it *Item, fromUser bool)

	panel       *Panel
	label       string
	invalidates int
}

// Bounds 屏幕上的区域
func (it *Item) Bounds() slider.Rect {
	return slider.Rect{
		Left:   float64(it.X),
		Top:    float64(it.Y),
		Right:  float64(it.X + it.Width),
		Bottom: float64(it.Y + it.Height),
	}
}

// Label 当前值说明，由位置变化通知更新
func (it *Item) Label() string { return it.label }

func (it *Item) refreshLabel() {
	it.label = fmt.Sprintf("value: %d, exact: %.4f", it.Slider.Value(), it.Slider.ExactValue())
}

// OnPositionChanged 实现 slider.PositionChangeListener
func (it *Item) OnPositionChanged(s *slider.Slider, fromUser bool, oldPos, newPos float64, oldValue, newValue int) {
	it.refreshLabel()
	if it.OnChange != nil {
		it.OnChange(it, fromUser)
	}
}

// RangeLabel 范围说明
func (it *Item) RangeLabel() string {
	return fmt.Sprintf("[%d, %d]", it.Slider.MinValue(), it.Slider.MaxValue())
}

// Invalidates 收到的重绘请求次数
func (it *Item) Invalidates() int { return it.invalidates }

// Invalidate 实现 slider.Host
func (it *Item) Invalidate() {
	it.invalidates++
	it.panel.dirty = true
}

// RequestLayout 实现 slider.Host
func (it *Item) RequestLayout() {
	it.panel.layout(it)
}

// Button 面板按钮
type Button struct {
	Label   string
	Bounds  slider.Rect
	OnClick func()
}

// Panel 与图形后端无关的演示面板
//
// 负责把指针事件分发给按下时命中的滑块（之后的移动和抬起都交给它），
// 驱动动画调度器，并在手势结束与退出时保存状态。
type Panel struct {
	sched   *slider.FrameScheduler
	store   *store.StateStore
	tracker *slider.PointerTracker
	interp  utils.Interpolator

	items   []*Item
	buttons []*Button

	captured      *Item
	pressedButton *Button
	dirty         bool
}

// NewPanel 创建面板；st 为 nil 时不持久化
func NewPanel(sched *slider.FrameScheduler, st *store.StateStore, input slider.PointerInput) *Panel {
	if st == nil {
		st = store.NewStateStore(nil)
	}
	return &Panel{
		sched:   sched,
		store:   st,
		tracker: slider.NewPointerTracker(input),
	}
}

// AddSlider 添加滑块并恢复保存过的位置
func (p *Panel) AddSlider(id, title string, style slider.Style, x, y, width int, persist bool) *Item {
	it := &Item{
		ID:      id,
		Title:   title,
		X:       x,
		Y:       y,
		Width:   width,
		Persist: persist,
		panel:   p,
	}
	p.bind(it, slider.New(style))
	if persist {
		p.store.RestoreSlider(id, it.Slider)
	}
	p.items = append(p.items, it)
	return it
}

// AddButton 添加按钮
func (p *Panel) AddButton(label string, bounds slider.Rect, onClick func()) *Button {
	b := &Button{Label: label, Bounds: bounds, OnClick: onClick}
	p.buttons = append(p.buttons, b)
	return b
}

// SetInterpolator 设置所有滑块（包括之后添加或重建的）的缓动曲线，nil 恢复默认
func (p *Panel) SetInterpolator(fn utils.Interpolator) {
	p.interp = fn
	for _, it := range p.items {
		it.Slider.Animator().SetInterpolator(fn)
	}
}

// Items 所有滑块
func (p *Panel) Items() []*Item { return p.items }

// Buttons 所有按钮
func (p *Panel) Buttons() []*Button { return p.buttons }

// Item 按 id 查找
func (p *Panel) Item(id string) *Item {
	for _, it := range p.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Dirty 自上次 ClearDirty 以来是否有重绘请求
func (p *Panel) Dirty() bool { return p.dirty }

// ClearDirty 绘制后调用
func (p *Panel) ClearDirty() { p.dirty = false }

// Update 每帧调用：执行到期的动画帧，然后处理指针输入
func (p *Panel) Update() {
	p.sched.Pump()
	if ev, ok := p.tracker.Update(); ok {
		p.Dispatch(ev)
	}
}

// Dispatch 分发一个屏幕坐标的指针事件
func (p *Panel) Dispatch(ev slider.PointerEvent) {
	if ev.Action == slider.PointerDown {
		p.captured = p.itemAt(ev.X, ev.Y)
		p.pressedButton = nil
		if p.captured == nil {
			p.pressedButton = p.buttonAt(ev.X, ev.Y)
		}
	}

	if it := p.captured; it != nil {
		it.Slider.HandleEvent(ev.Offset(float64(it.X), float64(it.Y)))
		if ev.Action == slider.PointerUp || ev.Action == slider.PointerCancel {
			p.captured = nil
			if it.Persist {
				p.store.SaveSlider(it.ID, it.Slider)
			}
		}
		return
	}

	if b := p.pressedButton; b != nil && (ev.Action == slider.PointerUp || ev.Action == slider.PointerCancel) {
		p.pressedButton = nil
		if ev.Action == slider.PointerUp && b.Bounds.Contains(ev.X, ev.Y) && b.OnClick != nil {
			b.OnClick()
		}
	}
}

// ApplyStyle 用新样式重建滑块，保留位置、范围、监听和镜像设置
//
// 样式里写了范围时以样式为准。
func (p *Panel) ApplyStyle(id string, style slider.Style) error {
	it := p.Item(id)
	if it == nil {
		return fmt.Errorf("no slider %q", id)
	}
	old := it.Slider
	state := old.SaveState()

	s := slider.New(style)
	if style.MinValue == nil || style.MaxValue == nil {
		s.SetValueRange(old.MinValue(), old.MaxValue(), false)
	}
	s.SetRTL(old.RTL())

	if p.captured == it {
		p.captured = nil
	}
	old.Detach()
	p.bind(it, s)
	if style.Value == nil {
		s.RestoreState(state)
	}
	it.refreshLabel()
	log.Printf("[App] style applied to %s", id)
	return nil
}

// Save 保存所有需要持久化的滑块
func (p *Panel) Save() {
	for _, it := range p.items {
		if it.Persist {
			p.store.SaveSlider(it.ID, it.Slider)
		}
	}
}

// Close 保存并停止所有动画
func (p *Panel) Close() {
	p.Save()
	for _, it := range p.items {
		it.Slider.Detach()
	}
	p.sched.Clear()
}

func (p *Panel) bind(it *Item, s *slider.Slider) {
	it.Slider = s
	s.Attach(it, p.sched)
	s.Animator().SetInterpolator(p.interp)
	s.SetOnPositionChangeListener(it)
	p.layout(it)
	it.refreshLabel()
}

func (p *Panel) layout(it *Item) {
	w, h := it.Slider.Measure(
		slider.MeasureSpec{Mode: slider.MeasureExactly, Size: it.Width},
		slider.MeasureSpec{Mode: slider.MeasureUnspecified},
	)
	it.Height = h
	it.Slider.SetSize(w, h)
}

func (p *Panel) itemAt(x, y float64) *Item {
	for _, it := range p.items {
		if it.Bounds().Contains(x, y) {
			return it
		}
	}
	return nil
}

func (p *Panel) buttonAt(x, y float64) *Button {
	for _, b := range p.buttons {
		if b.Bounds.Contains(x, y) {
			return b
		}
	}
	return nil
}
