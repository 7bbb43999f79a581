package systems

import (
	"testing"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// testWorld 测试用的最小帧上下文
type testWorld struct {
	em    *ecs.EntityManager
	gs    *game.GameState
	input *utils.InputState
	cfg   *config.GameplayConfig
}

func newTestWorld() *testWorld {
	return &testWorld{
		em:    ecs.NewEntityManager(),
		gs:    game.NewGameState(),
		input: utils.NewInputState(),
		cfg:   config.DefaultGameplayConfig(),
	}
}

// addCamera 创建相机实体并登记到 GameState
func (w *testWorld) addCamera(position mgl32.Vec3, yaw, pitch float32) ecs.EntityID {
	id := w.em.CreateEntity()
	transform := components.NewTransform(position)
	transform.Rotation = utils.YawPitchRotation(yaw, pitch)
	ecs.AddComponent(w.em, id, transform)
	ecs.AddComponent(w.em, id, &components.PlayerCameraComponent{
		FovY: w.cfg.Camera.FovY(),
		Near: w.cfg.Camera.Near,
		Far:  w.cfg.Camera.Far,
	})
	ecs.AddComponent(w.em, id, &components.PlayerInputComponent{Yaw: yaw, Pitch: pitch})
	w.gs.CameraEntity = id
	return id
}

// nextFrame 开始新一帧并按下给定的鼠标按键
func (w *testWorld) nextFrame(buttons ...ebiten.MouseButton) {
	w.input.BeginFrame()
	for _, b := range buttons {
		w.input.MouseButtons.Press(b)
	}
}

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual)
	}
}
