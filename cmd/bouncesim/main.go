// bouncesim 无界面运行模拟，按固定步长推进并打印轨迹和反弹点
//
// 用法:
//
//	go run ./cmd/bouncesim -ticks 600 -every 30
//	go run ./cmd/bouncesim -config data/simulation.yaml -width 800 -height 600 -density 2
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/game"
	"github.com/decker502/bounce/pkg/systems"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "模拟配置文件路径（.yaml/.toml），默认使用内置默认值")
	ticks      = flag.Int("ticks", 600, "执行的 tick 数")
	dt         = flag.Float64("dt", 0, "每个 tick 的时间步长（秒），0 = 配置的 tick 间隔")
	width      = flag.Float64("width", float64(config.GameWindowWidth), "视口宽度（像素）")
	height     = flag.Float64("height", float64(config.GameWindowHeight), "视口高度（像素）")
	density    = flag.Float64("density", 1, "像素密度")
	every      = flag.Int("every", 30, "每隔多少个 tick 打印一次位置，0 = 不打印")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultSimulationConfig()
	if *configPath != "" {
		loaded, err := config.LoadSimulationConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	step := *dt
	if step <= 0 {
		step = cfg.TickInterval().Seconds()
	}

	session := game.NewSession(cfg, game.NewManualClock(step))
	session.Initialize(*width, *height, *density)

	ball := session.Ball()
	vp := session.Viewport()
	fmt.Printf("viewport %.0fx%.0f, diameter %.1fpx, dt %.4fs\n", vp.Width, vp.Height, ball.Diameter, step)

	bounces := 0
	tick := 0
	// 只在真正的地面反弹之后打印最高点，静止在地面时不输出
	awaitingApex := false
	session.SetContactHandler(func(c systems.Contact) {
		bounces++
		if c.Bottom {
			awaitingApex = true
		}
		fmt.Printf("tick %4d  bounce #%d %-12s pos (%7.2f, %7.2f) vel (%8.2f, %8.2f)\n",
			tick, bounces, wallNames(c), ball.X, ball.Y, ball.VX, ball.VY)
	})

	prevVY := ball.VY
	for tick = 1; tick <= *ticks; tick++ {
		if !session.Tick() {
			fmt.Printf("tick %4d  simulation stopped\n", tick)
			break
		}

		// 竖直速度由负变为非负：到达最高点
		if awaitingApex && prevVY < 0 && ball.VY >= 0 {
			awaitingApex = false
			fmt.Printf("tick %4d  apex %.2fpx above floor\n", tick, vp.Height-ball.Bounds.Bottom)
		}
		prevVY = ball.VY

		if *every > 0 && tick%*every == 0 {
			fmt.Printf("tick %4d  pos (%7.2f, %7.2f) vel (%8.2f, %8.2f)\n", tick, ball.X, ball.Y, ball.VX, ball.VY)
		}
	}

	fmt.Printf("done: %d ticks, %d bounces, skipped renders %d\n", session.Ticks(), bounces, session.Stats().Skipped)
}

func wallNames(c systems.Contact) string {
	var walls []string
	if c.Left {
		walls = append(walls, "left")
	}
	if c.Right {
		walls = append(walls, "right")
	}
	if c.Top {
		walls = append(walls, "top")
	}
	if c.Bottom {
		walls = append(walls, "bottom")
	}
	return strings.Join(walls, "+")
}
