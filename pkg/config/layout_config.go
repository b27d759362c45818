package config

// 布局与默认值常量
// 本文件定义窗口尺寸、物理默认值和帧率控制参数

// Window Configuration (窗口配置)
// 窗口尺寸使用逻辑单位，实际像素尺寸 = 逻辑尺寸 * DeviceScaleFactor
const (
	// GameWindowWidth 桌面端默认窗口宽度
	GameWindowWidth = 400

	// GameWindowHeight 桌面端默认窗口高度
	GameWindowHeight = 400

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Bounce"
)

// Physics Defaults (物理默认值)
const (
	// DefaultBallDiameter 默认小球直径 (dp)
	DefaultBallDiameter = 20.0

	// DefaultGravity 默认重力加速度 (dp/s²)，约等于 9.81 m/s² * 100
	DefaultGravity = 981.0

	// DefaultRestitution 默认反弹系数
	DefaultRestitution = 0.5

	// DefaultTouchForceScale 默认拖拽冲量比例
	// 释放时冲量力 = 最后一帧拖拽位移 * 该比例
	DefaultTouchForceScale = 600.0
)

// Frame Pacing (帧率控制)
const (
	// DefaultTargetFPS 目标帧率
	DefaultTargetFPS = 30.0

	// DefaultStatsWindow 帧率统计窗口大小，每满该数量样本输出一次平均帧率并清零
	DefaultStatsWindow = 20
)
