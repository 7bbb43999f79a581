package systems

import (
	"image/color"
	"log"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// cubePalette 新方块依次使用的线框颜色
var cubePalette = []color.RGBA{
	{R: 0xe0, G: 0x6c, B: 0x4f, A: 0xff},
	{R: 0x5b, G: 0xc0, B: 0xeb, A: 0xff},
	{R: 0x9b, G: 0xc5, B: 0x3d, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x4c, A: 0xff},
	{R: 0xc3, G: 0x8d, B: 0xe8, A: 0xff},
}

// SpawnCubeSystem 主按键按下时在相机前方生成一个会长大的方块
//
// 生成的方块由三个实体组成：
//   - 父实体：动态刚体，带初速度
//   - 渲染子实体：MeshComponent + TweenSizeComponent
//   - 碰撞子实体：ColliderComponent + TweenColliderSizeComponent
//
// 两个补间使用相同的起止尺寸和时长，由两个独立的系统驱动。
type SpawnCubeSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         *utils.InputState
	keys          config.ControlKeys
	cfg           config.SpawnerConfig
}

// NewSpawnCubeSystem 创建方块生成系统
func NewSpawnCubeSystem(em *ecs.EntityManager, gs *game.GameState, input *utils.InputState,
	keys config.KeyBindings, cfg config.SpawnerConfig) *SpawnCubeSystem {
	return &SpawnCubeSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		keys:          keys.MustResolve(),
		cfg:           cfg,
	}
}

// Update 检测生成按键的按下边沿
func (s *SpawnCubeSystem) Update(dt time.Duration) {
	if !s.input.MouseButtons.JustPressed(s.keys.Spawn) {
		return
	}

	camera, ok := s.gameState.Camera(s.entityManager)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, camera)
	if !ok {
		return
	}

	position := transform.Translation.Add(transform.Forward().Mul(s.cfg.Distance))
	root := s.SpawnCube(position)
	log.Printf("[SpawnCubeSystem] 生成方块 %d 于 (%.2f, %.2f, %.2f)", root, position.X(), position.Y(), position.Z())
}

// SpawnCube 在 position 生成一个完整的方块，返回父实体 ID
func (s *SpawnCubeSystem) SpawnCube(position mgl32.Vec3) ecs.EntityID {
	em := s.entityManager
	start := s.cfg.StartSizeVec()
	end := s.cfg.EndSizeVec()

	root := em.CreateEntity()
	ecs.AddComponent(em, root, components.NewTransform(position))
	ecs.AddComponent(em, root, &components.RigidBodyComponent{
		Body: physics.NewDynamicBody(s.cfg.LaunchVelocity),
	})

	visual := em.CreateEntity()
	visualTransform := components.NewTransform(mgl32.Vec3{})
	visualTransform.Scale = start
	ecs.AddComponent(em, visual, visualTransform)
	ecs.AddComponent(em, visual, &components.MeshComponent{
		Kind:  components.MeshCuboid,
		Size:  1,
		Color: cubePalette[s.gameState.CubesSpawned%len(cubePalette)],
	})
	ecs.AddComponent(em, visual, &components.TweenSizeComponent{
		StartSize: start,
		EndSize:   end,
		Duration:  s.cfg.Duration,
	})
	AttachChild(em, root, visual)

	body := em.CreateEntity()
	ecs.AddComponent(em, body, components.NewTransform(mgl32.Vec3{}))
	ecs.AddComponent(em, body, components.NewColliderComponent(physics.NewCuboid(start)))
	ecs.AddComponent(em, body, &components.TweenColliderSizeComponent{
		StartSize: start,
		EndSize:   end,
		Duration:  s.cfg.Duration,
	})
	AttachChild(em, root, body)

	s.gameState.CubesSpawned++
	return root
}
