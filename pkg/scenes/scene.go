package scenes

import (
	"github.com/decker502/cubesandbox/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// SandboxSceneName 沙盒场景在 SceneManager 中的名称
const SandboxSceneName = "sandbox"
