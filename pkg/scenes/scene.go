package scenes

import (
	"github.com/decker502/bounce/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现统一满足 game.Scene 接口
type Scene = game.Scene

var _ Scene = (*SimulationScene)(nil)
