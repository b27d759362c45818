// Package app 提供模拟应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/bounce/pkg/config"
	"github.com/decker502/bounce/pkg/embedded"
	"github.com/decker502/bounce/pkg/game"
	"github.com/decker502/bounce/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 模拟配置文件路径（.yaml/.yml/.toml），为空则使用嵌入的默认配置
	ConfigPath string
	// ShowStats 在画面左上角显示帧率统计
	ShowStats bool
}

// App 是模拟应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.SimulationScene
}

// NewApp 创建并初始化模拟应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时使用内置默认配置。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	simCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("模拟配置加载失败: %w", err)
	}
	log.Printf("[App] Config: diameter=%.1fdp gravity=%.1f restitution=%.2f targetFPS=%.0f",
		simCfg.BallDiameter, simCfg.Gravity, simCfg.Restitution, simCfg.TargetFPS)

	// 只有 tick 允许重绘时才重新绘制，其余帧保留上一次的画面
	ebiten.SetScreenClearedEveryFrame(false)

	session := game.NewSession(simCfg, nil)
	scene := scenes.NewSimulationScene(session, cfg.ShowStats)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
	}, nil
}

// LoadConfig 按优先级加载模拟配置
//
// 优先级：指定的文件 > 嵌入的 data/simulation.yaml > 内置默认值
//
// 参数:
//   - path: 配置文件路径，可为空
//
// 返回:
//   - *config.SimulationConfig: 已校验的配置
//   - error: 指定文件或嵌入配置无法读取、解析或校验失败时返回错误
func LoadConfig(path string) (*config.SimulationConfig, error) {
	if path != "" {
		log.Printf("[App] Loading config from %s", path)
		return config.LoadSimulationConfig(path)
	}

	if embedded.IsInitialized() && embedded.Exists(config.DefaultConfigPath) {
		data, err := embedded.ReadFile(config.DefaultConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[App] Loading embedded config %s", config.DefaultConfigPath)
		return config.ParseSimulationConfig(data, config.FormatYAML)
	}

	log.Printf("[App] No config found, using defaults")
	return config.DefaultSimulationConfig(), nil
}

// Update 更新模拟逻辑
// 每个 Ebitengine tick 调用一次（通常每秒 60 次），模拟 tick 由场景内的调度器按配置间隔触发
func (a *App) Update() error {
	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))

	if a.scene.QuitRequested() && !a.scene.Running() {
		log.Printf("[App] Simulation stopped, exiting")
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 离屏图像与窗口像素一一对应，直接拷贝，不做滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 视口以物理像素为单位，小球尺寸在初始化时按像素密度换算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}
