package main

import (
	"flag"
	"log"

	"github.com/decker502/bounce/pkg/app"
	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/embedded"
	"github.com/decker502/bounce/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "模拟配置文件路径（.yaml/.toml），默认使用内置配置")
	showStats  = flag.Bool("stats", false, "显示帧率统计")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		ShowStats:  *showStats,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	if !utils.IsMobile() {
		// 视口只在首次绘制时确定，窗口大小固定
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
