// bounceterm 在终端中运行弹跳小球
//
// 鼠标左键按住小球拖拽，松开时按最后一次拖拽位移抛出；ESC / q / Ctrl-C 退出。
//
// 用法:
//
//	go run ./cmd/bounceterm
//	go run ./cmd/bounceterm -config data/simulation.yaml -cellw 8 -cellh 16 -stats
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/game"
	"github.com/decker502/bounce/pkg/systems"
	"github.com/decker502/bounce/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// pumpInterval 事件循环推进调度器的周期，tick 节奏仍由配置的间隔决定
const pumpInterval = 5 * time.Millisecond

// pointerInterval 指针采样周期，与 ebiten 的逐帧输入轮询保持一致
const pointerInterval = time.Second / 60

// pointerState 最近一次鼠标事件报告的指针状态
type pointerState struct {
	pressed bool
	x, y    int
}

var (
	verbose    = flag.Bool("verbose", false, "把调试日志写入 -log 指定的文件")
	logPath    = flag.String("log", "bounceterm.log", "调试日志文件")
	configPath = flag.String("config", "", "模拟配置文件路径（.yaml/.toml），默认使用内置默认值")
	cellW      = flag.Float64("cellw", 8, "每个字符格的宽度（像素）")
	cellH      = flag.Float64("cellh", 16, "每个字符格的高度（像素）")
	showStats  = flag.Bool("stats", false, "显示帧率统计")
	mute       = flag.Bool("mute", false, "关闭反弹音效")
)

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("终端初始化失败: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("终端初始化失败: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	var sound *bounceSound
	if !*mute {
		sound, err = newBounceSound()
		if err != nil {
			// 没有声音也可以运行
			log.Printf("[bounceterm] Audio initialization failed: %v", err)
		}
	}

	run(screen, cfg, sound)

	screen.Fini()
	sound.Close()
}

func setupLogging() error {
	if !*verbose {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.Create(*logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

// run 单 goroutine 事件循环：输入事件、调度器推进和绘制都在这里执行
func run(screen tcell.Screen, cfg *config.SimulationConfig, sound *bounceSound) {
	painter := newTermPainter(screen, *cellW, *cellH)

	session := game.NewSession(cfg, nil)
	session.SetContactHandler(func(systems.Contact) {
		sound.Play()
	})

	sched := game.NewFrameScheduler(nil)
	handle := session.Start(sched)

	// 终端没有单独的首次绘制回调，进入循环前完成初始化并绘制第一帧
	width, height := painter.viewport()
	session.Initialize(width, height, 1)

	tracker := utils.NewPointerTracker()
	var pointer pointerState
	quitting := false

	ticker := time.NewTicker(pumpInterval)
	defer ticker.Stop()

	// 终端只在鼠标移动时发送事件，按住不动时靠定时采样生成零位移的 Move
	pointerTicker := time.NewTicker(pointerInterval)
	defer pointerTicker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) && !quitting {
					log.Printf("[bounceterm] Quit requested")
					quitting = true
					session.Stop()
				}
			case *tcell.EventMouse:
				col, row := ev.Position()
				pointer.x, pointer.y = painter.toPixels(col, row)
				pointer.pressed = ev.Buttons()&tcell.Button1 != 0
			case *tcell.EventResize:
				// 视口在首次绘制时已固定，只重绘
				screen.Sync()
			}

		case <-pointerTicker.C:
			if pe, ok := tracker.Next(pointer.pressed, pointer.x, pointer.y); ok {
				session.OnPointer(pe)
			}

		case now := <-ticker.C:
			sched.Advance(now)
			if !sched.Running(handle) {
				return
			}
			if session.ConsumeRender() {
				if *showStats {
					painter.status = systems.FormatStats(session.Ball(), session.Stats())
				}
				session.Paint(painter)
				screen.Show()
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
