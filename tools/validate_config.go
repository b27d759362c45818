package main

import (
	"fmt"
	"os"

	"github.com/decker502/bounce/pkg/config"
)

// 用法: go run tools/validate_config.go [配置文件...]
// 不带参数时检查 data/simulation.yaml
func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadSimulationConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}

		fmt.Printf("✅ %s\n", path)
		fmt.Printf("   直径 %.1fdp, 重力 %.1fdp/s², 反弹系数 %.2f\n", cfg.BallDiameter, cfg.Gravity, cfg.Restitution)
		fmt.Printf("   初始位置 (%.1f, %.1f), 初始速度 (%.1f, %.1f)\n", cfg.Initial.X, cfg.Initial.Y, cfg.Initial.VX, cfg.Initial.VY)
		fmt.Printf("   tick 间隔 %v, 目标帧率 %.0f (低于 %.1f 跳过重绘), 统计窗口 %d\n",
			cfg.TickInterval(), cfg.TargetFPS, cfg.RenderThreshold(), cfg.StatsWindow)
	}

	if failed > 0 {
		fmt.Printf("❌ %d 个配置文件无效\n", failed)
		os.Exit(1)
	}
}
