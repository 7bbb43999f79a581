package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/decker502/cubesandbox/pkg/systems"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

var groundColor = color.RGBA{R: 0x4a, G: 0x7a, B: 0x3a, A: 0xff}

// SandboxScene 方块沙盒场景
//
// 每帧按固定顺序执行：
//  1. 输入：InputCaptureSystem → CameraMoveSystem
//  2. 模拟：TweenSizeSystem、TweenColliderSizeSystem、SpawnCubeSystem、ShootProjectileSystem
//  3. 物理：PhysicsSystem → LifetimeSystem → 删除标记的实体
//
// 输入状态由宿主在调用 Update 之前采样。
type SandboxScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         *utils.InputState
	cfg           *config.GameplayConfig

	inputCaptureSystem      *systems.InputCaptureSystem
	cameraMoveSystem        *systems.CameraMoveSystem
	tweenSizeSystem         *systems.TweenSizeSystem
	tweenColliderSizeSystem *systems.TweenColliderSizeSystem
	spawnCubeSystem         *systems.SpawnCubeSystem
	shootProjectileSystem   *systems.ShootProjectileSystem
	physicsSystem           *systems.PhysicsSystem
	lifetimeSystem          *systems.LifetimeSystem
	renderSystem            *systems.RenderSystem
}

// NewSandboxScene 创建沙盒场景并放置地面、相机和初始方块
//
// 参数:
//   - cfg: 已通过验证的玩法配置
//   - input: 宿主每帧写入的输入状态
//   - cursor: 光标锁定实现，可以为 nil
//   - caster: 屏幕到世界的射线投射实现
func NewSandboxScene(cfg *config.GameplayConfig, input *utils.InputState,
	cursor utils.CursorLocker, caster utils.RayCaster) *SandboxScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState()

	s := &SandboxScene{
		entityManager: em,
		gameState:     gs,
		input:         input,
		cfg:           cfg,

		inputCaptureSystem:      systems.NewInputCaptureSystem(em, gs, input, cursor, cfg.Controller),
		cameraMoveSystem:        systems.NewCameraMoveSystem(em, gs, cfg.Controller.MoveSpeed),
		tweenSizeSystem:         systems.NewTweenSizeSystem(em),
		tweenColliderSizeSystem: systems.NewTweenColliderSizeSystem(em),
		spawnCubeSystem:         systems.NewSpawnCubeSystem(em, gs, input, cfg.Controller.Keys, cfg.Spawner),
		shootProjectileSystem:   systems.NewShootProjectileSystem(em, gs, input, caster, cfg.Controller.Keys, cfg.Projectile),
		physicsSystem:           systems.NewPhysicsSystem(em, cfg.Physics),
		lifetimeSystem:          systems.NewLifetimeSystem(em),
		renderSystem:            systems.NewRenderSystem(em, gs),
	}

	s.spawnGround()
	if cfg.Scene.SpawnDemoCube {
		s.spawnDemoCube()
	}
	s.spawnCamera()

	log.Printf("[SandboxScene] 场景初始化完成，实体数: %d", em.EntityCount())
	return s
}

// spawnGround 放置静态地面
func (s *SandboxScene) spawnGround() {
	em := s.entityManager
	size := s.cfg.Scene.GroundSize

	id := em.CreateEntity()
	transform := components.NewTransform(mgl32.Vec3{0, s.cfg.Scene.GroundY, 0})
	transform.Scale = size
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.RigidBodyComponent{Body: physics.NewStaticBody()})
	ecs.AddComponent(em, id, components.NewColliderComponent(physics.NewCuboid(size)))
	ecs.AddComponent(em, id, &components.MeshComponent{Kind: components.MeshCuboid, Size: 1, Color: groundColor})
}

// spawnDemoCube 在原点上方放置一个静止的初始方块
func (s *SandboxScene) spawnDemoCube() {
	root := s.spawnCubeSystem.SpawnCube(mgl32.Vec3{0, 0.5, 0})
	body, ok := ecs.GetComponent[*components.RigidBodyComponent](s.entityManager, root)
	if ok {
		body.LinearVelocity = mgl32.Vec3{}
	}
}

// spawnCamera 创建玩家相机，初始 yaw/pitch 由注视点推导
func (s *SandboxScene) spawnCamera() {
	em := s.entityManager
	cam := s.cfg.Camera
	yaw, pitch := utils.LookYawPitch(cam.StartPosition, cam.LookAt)
	pitch = systems.ClampPitch(pitch, s.cfg.Controller.AngleEpsilon)

	id := em.CreateEntity()
	transform := components.NewTransform(cam.StartPosition)
	transform.Rotation = utils.YawPitchRotation(yaw, pitch)
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.PlayerCameraComponent{
		FovY: cam.FovY(),
		Near: cam.Near,
		Far:  cam.Far,
	})
	ecs.AddComponent(em, id, &components.PlayerInputComponent{Yaw: yaw, Pitch: pitch})
	s.gameState.CameraEntity = id
}

// Update 执行一帧模拟
func (s *SandboxScene) Update(dt time.Duration) {
	// 1. 输入（采集必须先于积分）
	s.inputCaptureSystem.Update(dt)
	s.cameraMoveSystem.Update(dt)

	// 2. 模拟（相互之间无顺序要求）
	s.tweenSizeSystem.Update(dt)
	s.tweenColliderSizeSystem.Update(dt)
	s.spawnCubeSystem.Update(dt)
	s.shootProjectileSystem.Update(dt)

	// 3. 物理与清理
	s.physicsSystem.Update(dt)
	s.lifetimeSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 渲染场景
func (s *SandboxScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// EntityManager 返回场景的实体管理器
func (s *SandboxScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// GameState 返回场景的帧上下文
func (s *SandboxScene) GameState() *game.GameState {
	return s.gameState
}
