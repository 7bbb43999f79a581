package scenes

import (
	"testing"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

type recordingCursor struct {
	states []bool
}

func (c *recordingCursor) SetCursorLocked(locked bool) {
	c.states = append(c.states, locked)
}

func newTestScene(t *testing.T) (*SandboxScene, *utils.InputState, *recordingCursor) {
	t.Helper()
	input := utils.NewInputState()
	input.WindowWidth = 1280
	input.WindowHeight = 720
	cursor := &recordingCursor{}
	scene := NewSandboxScene(config.DefaultGameplayConfig(), input, cursor, utils.PerspectiveRayCaster{})
	return scene, input, cursor
}

func TestNewSandboxSceneLayout(t *testing.T) {
	scene, _, _ := newTestScene(t)
	em := scene.EntityManager()

	// 地面 + 初始方块（父实体和两个子实体）+ 相机
	assert.Equal(t, 5, em.EntityCount())

	camera, ok := scene.GameState().Camera(em)
	require.True(t, ok)

	transform, ok := ecs.GetComponent[*components.TransformComponent](em, camera)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-2.5, 1.5, 9}, transform.Translation)

	// 初始朝向看向原点
	expected := mgl32.Vec3{2.5, -1.5, -9}.Normalize()
	forward := transform.Forward()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected[i], forward[i], 1e-4)
	}
}

func TestSandboxSceneCameraKeepsInitialOrientation(t *testing.T) {
	scene, input, _ := newTestScene(t)
	em := scene.EntityManager()
	camera, _ := scene.GameState().Camera(em)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, camera)
	before := transform.Forward()

	input.BeginFrame()
	scene.Update(frame)

	after := transform.Forward()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, before[i], after[i], 1e-5)
	}
}

func TestSandboxSceneDemoCubeSettlesOnGround(t *testing.T) {
	scene, input, _ := newTestScene(t)
	em := scene.EntityManager()

	for i := 0; i < 180; i++ {
		input.BeginFrame()
		scene.Update(frame)
	}

	roots := ecs.GetEntitiesWith2[*components.RigidBodyComponent, *components.ChildrenComponent](em)
	require.Len(t, roots, 1)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, roots[0])

	// 地面顶部 y=-1.5，长成后的方块边长 1
	assert.InDelta(t, -1.0, transform.Translation.Y(), 1e-2)
}

func TestSandboxSceneSpawnAndShoot(t *testing.T) {
	scene, input, _ := newTestScene(t)
	em := scene.EntityManager()

	input.BeginFrame()
	input.MouseButtons.Press(ebiten.MouseButtonLeft)
	input.MouseButtons.Press(ebiten.MouseButtonRight)
	scene.Update(frame)

	gs := scene.GameState()
	assert.Equal(t, 2, gs.CubesSpawned) // 含初始方块
	assert.Equal(t, 1, gs.ProjectilesFired)
	assert.Len(t, ecs.GetEntitiesWith1[*components.LifetimeComponent](em), 1)
}

func TestSandboxSceneCursorLockToggle(t *testing.T) {
	scene, input, cursor := newTestScene(t)

	for i := 0; i < 3; i++ {
		input.BeginFrame()
		input.Keys.Press(ebiten.KeyL)
		scene.Update(frame)
	}
	assert.Equal(t, []bool{true}, cursor.states)
	assert.True(t, scene.GameState().CursorLocked)
}

func TestSandboxSceneProjectileExpires(t *testing.T) {
	input := utils.NewInputState()
	input.WindowWidth = 1280
	input.WindowHeight = 720
	cfg := config.DefaultGameplayConfig()
	cfg.Projectile.Lifetime = 100 * time.Millisecond
	cfg.Scene.SpawnDemoCube = false
	scene := NewSandboxScene(cfg, input, nil, utils.PerspectiveRayCaster{})
	em := scene.EntityManager()

	input.BeginFrame()
	input.MouseButtons.Press(ebiten.MouseButtonRight)
	scene.Update(frame)
	require.Len(t, ecs.GetEntitiesWith1[*components.LifetimeComponent](em), 1)

	for i := 0; i < 10; i++ {
		input.BeginFrame()
		scene.Update(frame)
	}
	assert.Empty(t, ecs.GetEntitiesWith1[*components.LifetimeComponent](em))
}
