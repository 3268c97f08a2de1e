package main

import (
	"flag"
	"log"

	"github.com/decker502/xslider/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	stylePath = flag.String("style", "", "主滑块的样式文件（YAML），修改后自动重新加载")
	appName   = flag.String("app-name", app.DefaultAppName, "状态存储使用的应用名")
	density   = flag.Float64("density", 0, "dp 到像素的换算系数，0 表示按平台选择")
	easing    = flag.String("easing", "quad", "滑块动画曲线：linear、quad、cubic 或 decelerate:<系数>")
	noAA      = flag.Bool("no-aa", false, "关闭抗锯齿")
)

func main() {
	flag.Parse()

	demo, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		StylePath:   *stylePath,
		AppName:     *appName,
		Density:     *density,
		Easing:      *easing,
		NoAntiAlias: *noAA,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer demo.Close()

	ebiten.SetWindowSize(app.ScreenWidth*2, app.ScreenHeight*2)
	ebiten.SetWindowTitle("XSlider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(demo); err != nil {
		log.Fatal(err)
	}
}
