// Package app 提供演示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/decker502/xslider/pkg/config"
	"github.com/decker502/xslider/pkg/render"
	"github.com/decker502/xslider/pkg/slider"
	"github.com/decker502/xslider/pkg/store"
	"github.com/decker502/xslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 480
	ScreenHeight = 360
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "xslider_demo"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StylePath 主滑块的样式文件，为空使用内置样式；文件变化时自动重新加载
	StylePath string
	// AppName 存储目录名，为空使用 DefaultAppName
	AppName string
	// Density dp -> px 换算系数，<= 0 时桌面取 1、移动端取 1.5
	Density float64
	// Easing 滑块动画曲线名，见 utils.ParseInterpolator
	Easing string
	// NoAntiAlias 关闭矢量绘制的抗锯齿
	NoAntiAlias bool
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	panel   *Panel
	canvas  *render.EbitenCanvas
	watcher *config.StyleWatcher
	density float64
	verbose bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	interp, err := utils.ParseInterpolator(cfg.Easing)
	if err != nil {
		return nil, err
	}
	if cfg.AppName == "" {
		cfg.AppName = DefaultAppName
	}
	cfg.Density = resolveDensity(cfg.Density)

	// 存储打不开时降级为不持久化
	st, err := store.Open(cfg.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (state will not be saved)", err)
	}

	a := &App{
		canvas:  render.NewEbitenCanvas(nil, 0, 0),
		density: cfg.Density,
		verbose: cfg.Verbose,
	}
	a.canvas.SetAntiAlias(!cfg.NoAntiAlias)

	mainStyle := demoStyleConfig()
	if cfg.StylePath != "" {
		if loaded, err := config.LoadStyleConfig(cfg.StylePath); err != nil {
			log.Printf("[App] Warning: %v (using built-in style)", err)
		} else {
			mainStyle = loaded
		}
		if a.watcher, err = config.NewStyleWatcher(cfg.StylePath); err != nil {
			log.Printf("[App] Warning: style hot reload disabled: %v", err)
		}
	}

	sched := slider.NewFrameScheduler(nil)
	a.panel = NewPanel(sched, st, EbitenPointerInput{})
	a.panel.SetInterpolator(interp)
	a.buildDemo(mainStyle)

	log.Printf("[App] started with %d sliders", len(a.panel.Items()))
	return a, nil
}

// resolveDensity 未指定密度时按平台选择
func resolveDensity(d float64) float64 {
	if d > 0 {
		return d
	}
	// 触屏上放大滑块和触摸容差
	if utils.IsMobile() {
		return 1.5
	}
	return 1
}

// demoStyleConfig 内置的主滑块样式
func demoStyleConfig() *config.StyleConfig {
	cfg := config.DefaultStyleConfig()
	cfg.ProgressColor = "teal"
	cfg.TrackColor = "lightgray"
	return cfg
}

func (a *App) buildDemo(mainStyle *config.StyleConfig) {
	const (
		left  = 40
		width = ScreenWidth - 2*left
	)
	p := a.panel

	p.AddSlider("main", "oval", mainStyle.ToStyle(a.density), left, 40, width, true)

	rect := demoStyleConfig()
	rect.ThumbType = slider.ThumbRectangle.String()
	rect.ProgressColor = "#ff8000"
	rect.MinValue, rect.MaxValue = slider.IntPtr(0), slider.IntPtr(10)
	p.AddSlider("rect", "rectangle 0..10", rect.ToStyle(a.density), left, 110, width, true)

	rtl := p.AddSlider("rtl", "right-to-left", demoStyleConfig().ToStyle(a.density), left, 180, width, true)
	rtl.Slider.SetRTL(true)

	disabled := demoStyleConfig()
	off := false
	disabled.Enabled = &off
	disabled.Value = slider.IntPtr(30)
	p.AddSlider("disabled", "disabled (E toggles)", disabled.ToStyle(a.density), left, 250, width, false)

	// 样式重新加载会替换滑块，回调里每次重新查找
	p.AddButton("1: setValue(60)", slider.Rect{Left: left, Top: 310, Right: 200, Bottom: 334}, func() {
		p.Item("main").Slider.SetValue(60, true)
	})
	p.AddButton("2: setValueRange(10,80)", slider.Rect{Left: 220, Top: 310, Right: ScreenWidth - left, Bottom: 334}, func() {
		p.Item("main").Slider.SetValueRange(10, 80, true)
	})
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	main := a.panel.Item("main").Slider
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		main.SetValue(60, true)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		main.SetValueRange(10, 80, true)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		main.SetRTL(!main.RTL())
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		d := a.panel.Item("disabled").Slider
		d.SetEnabled(!d.Enabled())
	}

	if a.watcher != nil {
		select {
		case cfg := <-a.watcher.Updates():
			if err := a.panel.ApplyStyle("main", cfg.ToStyle(a.density)); err != nil {
				log.Printf("[App] Warning: %v", err)
			}
		default:
		}
	}

	a.panel.Update()
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	for _, it := range a.panel.Items() {
		a.canvas.Reset(screen, float64(it.X), float64(it.Y))
		it.Slider.Draw(a.canvas)
		ebitenutil.DebugPrintAt(screen, it.Title+"  "+it.RangeLabel(), it.X, it.Y-18)
		ebitenutil.DebugPrintAt(screen, it.Label(), it.X+it.Width-170, it.Y-18)
	}

	for _, b := range a.panel.Buttons() {
		r := b.Bounds
		vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), colornames.Gainsboro, false)
		ebitenutil.DebugPrintAt(screen, b.Label, int(r.Left)+6, int(r.Top)+4)
	}
	a.panel.ClearDirty()
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Panel 演示面板
func (a *App) Panel() *Panel { return a.panel }

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 保存状态并停止监视样式文件
func (a *App) Close() {
	a.panel.Close()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
}
