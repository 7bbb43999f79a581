package systems

import (
	"image/color"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/decker502/cubesandbox/pkg/utils"
)

var projectileColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ShootProjectileSystem 次按键按下时从屏幕中心沿视线发射小球
//
// 相机、窗口尺寸或射线任一不可用时本帧什么也不做。
type ShootProjectileSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         *utils.InputState
	caster        utils.RayCaster
	keys          config.ControlKeys
	cfg           config.ProjectileConfig
}

// NewShootProjectileSystem 创建小球发射系统
func NewShootProjectileSystem(em *ecs.EntityManager, gs *game.GameState, input *utils.InputState,
	caster utils.RayCaster, keys config.KeyBindings, cfg config.ProjectileConfig) *ShootProjectileSystem {
	return &ShootProjectileSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		caster:        caster,
		keys:          keys.MustResolve(),
		cfg:           cfg,
	}
}

// Update 检测发射按键的按下边沿
func (s *ShootProjectileSystem) Update(dt time.Duration) {
	if !s.input.MouseButtons.JustPressed(s.keys.Shoot) {
		return
	}

	center, ok := s.input.WindowCenter()
	if !ok {
		return
	}
	cameraID, ok := s.gameState.Camera(s.entityManager)
	if !ok {
		return
	}
	camera, ok := ecs.GetComponent[*components.PlayerCameraComponent](s.entityManager, cameraID)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameraID)
	if !ok {
		return
	}

	ray, ok := s.caster.ViewportToWorld(camera, transform, s.input.WindowWidth, s.input.WindowHeight, center)
	if !ok {
		return
	}
	s.SpawnProjectile(ray)
}

// SpawnProjectile 在射线起点生成小球，速度沿射线方向
func (s *ShootProjectileSystem) SpawnProjectile(ray utils.Ray) ecs.EntityID {
	em := s.entityManager

	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewTransform(ray.Origin))
	ecs.AddComponent(em, id, &components.RigidBodyComponent{Body: physics.Body{
		Kind:           physics.BodyDynamic,
		LinearVelocity: ray.Direction.Mul(s.cfg.Speed),
		Mass:           s.cfg.Mass,
		GravityScale:   s.cfg.GravityScale,
	}})
	ecs.AddComponent(em, id, components.NewColliderComponent(physics.NewSphere(s.cfg.ColliderRadius)))
	ecs.AddComponent(em, id, &components.MeshComponent{
		Kind:  components.MeshSphere,
		Size:  s.cfg.MeshRadius,
		Color: projectileColor,
	})
	if s.cfg.Lifetime > 0 {
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: s.cfg.Lifetime})
	}

	s.gameState.ProjectilesFired++
	return id
}
