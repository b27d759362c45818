package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// 配置文件格式
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// DefaultConfigPath 默认配置文件路径（嵌入资源中的路径）
const DefaultConfigPath = "data/simulation.yaml"

// ErrUnsupportedConfigFormat 表示配置文件扩展名既不是 YAML 也不是 TOML
var ErrUnsupportedConfigFormat = errors.New("unsupported config format")

// SimulationConfig 模拟配置
//
// 所有长度相关的值（直径、位置、速度、重力）使用逻辑单位 (dp)，
// 在首次绘制时根据屏幕像素密度换算为像素。
// 模拟开始后配置只读，Session 持有自己的副本。
//
// 配置文件位置: data/simulation.yaml
type SimulationConfig struct {
	// BallDiameter 小球直径 (dp)
	BallDiameter float64 `yaml:"ballDiameter" toml:"ballDiameter"`

	// Gravity 重力加速度 (dp/s²)，正值向下
	Gravity float64 `yaml:"gravity" toml:"gravity"`

	// Restitution 反弹系数 0.0 ~ 1.0
	// 1 = 完全弹性碰撞，0 = 完全非弹性碰撞
	Restitution float64 `yaml:"restitution" toml:"restitution"`

	// Initial 初始位置和速度
	Initial InitialState `yaml:"initial" toml:"initial"`

	// TouchForceScale 释放拖拽时，拖拽位移 (px) 换算为冲量力的比例
	TouchForceScale float64 `yaml:"touchForceScale" toml:"touchForceScale"`

	// Active 模拟是否运行
	Active bool `yaml:"active" toml:"active"`

	// TargetFPS 目标帧率，低于一半时跳过重绘
	TargetFPS float64 `yaml:"targetFPS" toml:"targetFPS"`

	// StatsWindow 帧率统计窗口（样本数）
	StatsWindow int `yaml:"statsWindow" toml:"statsWindow"`

	// TickIntervalMs 物理 tick 间隔（毫秒），0 表示使用 1000/TargetFPS
	TickIntervalMs int `yaml:"tickIntervalMs" toml:"tickIntervalMs"`
}

// InitialState 初始状态配置
type InitialState struct {
	// X, Y 初始中心位置 (dp)
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`

	// VX, VY 初始速度 (dp/s)
	VX float64 `yaml:"vx" toml:"vx"`
	VY float64 `yaml:"vy" toml:"vy"`
}

// DefaultSimulationConfig 返回默认配置
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		BallDiameter: DefaultBallDiameter,
		Gravity:      DefaultGravity,
		Restitution:  DefaultRestitution,
		Initial: InitialState{
			X: 100,
			Y: 100,
		},
		TouchForceScale: DefaultTouchForceScale,
		Active:          true,
		TargetFPS:       DefaultTargetFPS,
		StatsWindow:     DefaultStatsWindow,
	}
}

// LoadSimulationConfig 加载模拟配置
//
// 根据扩展名选择解析格式（.yaml/.yml 或 .toml）。
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	return ParseSimulationConfig(data, format)
}

// ParseSimulationConfig 解析模拟配置
//
// 未出现在数据中的字段保持默认值。
//
// 参数:
//   - data: 配置文件内容
//   - format: FormatYAML 或 FormatTOML
//
// 返回:
//   - *SimulationConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseSimulationConfig(data []byte, format string) (*SimulationConfig, error) {
	cfg := DefaultSimulationConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return cfg, nil
}

// FormatFromPath 根据文件扩展名推断配置格式
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
}

// Validate 验证配置有效性
//
// 检查配置值是否在合理范围内：
//   - 直径必须为正
//   - 反弹系数在 [0, 1] 之间
//   - 目标帧率、统计窗口必须为正
//   - tick 间隔、触摸力比例不能为负
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *SimulationConfig) Validate() error {
	if c.BallDiameter <= 0 {
		return fmt.Errorf("ballDiameter must be > 0, got %.2f", c.BallDiameter)
	}

	if c.Restitution < 0 || c.Restitution > 1 {
		return fmt.Errorf("restitution must be within [0, 1], got %.2f", c.Restitution)
	}

	if c.TargetFPS <= 0 {
		return fmt.Errorf("targetFPS must be > 0, got %.2f", c.TargetFPS)
	}

	if c.StatsWindow <= 0 {
		return fmt.Errorf("statsWindow must be > 0, got %d", c.StatsWindow)
	}

	if c.TickIntervalMs < 0 {
		return fmt.Errorf("tickIntervalMs must be >= 0, got %d", c.TickIntervalMs)
	}

	if c.TouchForceScale < 0 {
		return fmt.Errorf("touchForceScale must be >= 0, got %.2f", c.TouchForceScale)
	}

	return nil
}

// TickInterval 返回物理 tick 间隔
//
// TickIntervalMs 为 0 时由目标帧率推导。
func (c *SimulationConfig) TickInterval() time.Duration {
	if c.TickIntervalMs > 0 {
		return time.Duration(c.TickIntervalMs) * time.Millisecond
	}
	return time.Duration(float64(time.Second) / c.TargetFPS)
}

// RenderThreshold 返回重绘所需的最低瞬时帧率（目标帧率的一半）
func (c *SimulationConfig) RenderThreshold() float64 {
	return c.TargetFPS / 2
}

// Clone 返回配置副本
func (c *SimulationConfig) Clone() *SimulationConfig {
	clone := *c
	return &clone
}
