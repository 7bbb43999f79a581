package systems

import (
	"testing"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const frame = time.Second / 60

func addGround(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, components.NewTransform(mgl32.Vec3{0, -2, 0}))
	ecs.AddComponent(em, id, &components.RigidBodyComponent{Body: physics.NewStaticBody()})
	ecs.AddComponent(em, id, components.NewColliderComponent(physics.NewCuboid(mgl32.Vec3{100, 1, 100})))
	return id
}

// addBox 创建一个碰撞体挂在子实体上的动态方块（与生成的方块结构相同）
func addBox(em *ecs.EntityManager, position mgl32.Vec3, size float32) (ecs.EntityID, *components.TransformComponent, *components.RigidBodyComponent) {
	root := em.CreateEntity()
	transform := components.NewTransform(position)
	body := &components.RigidBodyComponent{Body: physics.NewDynamicBody(mgl32.Vec3{})}
	ecs.AddComponent(em, root, transform)
	ecs.AddComponent(em, root, body)

	child := em.CreateEntity()
	ecs.AddComponent(em, child, components.NewTransform(mgl32.Vec3{}))
	ecs.AddComponent(em, child, components.NewColliderComponent(physics.NewCuboid(mgl32.Vec3{size, size, size})))
	AttachChild(em, root, child)
	return root, transform, body
}

func TestPhysicsSystemGravityIntegration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)

	id := em.CreateEntity()
	transform := components.NewTransform(mgl32.Vec3{})
	body := &components.RigidBodyComponent{Body: physics.NewDynamicBody(mgl32.Vec3{})}
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, body)

	system.Update(100 * time.Millisecond)

	assert.InDelta(t, -0.981, body.LinearVelocity.Y(), 1e-5)
	assert.InDelta(t, -0.0981, transform.Translation.Y(), 1e-5)
}

func TestPhysicsSystemBoxRestsOnGround(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)
	addGround(em)
	_, transform, body := addBox(em, mgl32.Vec3{0, 1, 0}, 1)

	for i := 0; i < 180; i++ {
		system.Update(frame)
	}

	// 地面顶部 y=-1.5，方块半边长 0.5
	assert.InDelta(t, -1.0, transform.Translation.Y(), 1e-3)
	assert.Equal(t, float32(0), body.LinearVelocity.Y())
}

func TestPhysicsSystemFrictionSlowsSlidingBox(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)
	addGround(em)
	_, _, body := addBox(em, mgl32.Vec3{0, -1, 0}, 1)
	body.LinearVelocity = mgl32.Vec3{5, 0, 0}

	for i := 0; i < 60; i++ {
		system.Update(frame)
	}
	assert.Less(t, body.LinearVelocity.X(), float32(1))
	assert.GreaterOrEqual(t, body.LinearVelocity.X(), float32(0))
}

func TestPhysicsSystemFastProjectileDoesNotTunnel(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()
	system := NewPhysicsSystem(em, cfg.Physics)
	addGround(em)

	id := em.CreateEntity()
	transform := components.NewTransform(mgl32.Vec3{})
	ecs.AddComponent(em, id, transform)
	ecs.AddComponent(em, id, &components.RigidBodyComponent{Body: physics.Body{
		Kind:           physics.BodyDynamic,
		LinearVelocity: mgl32.Vec3{0, -cfg.Projectile.Speed, 0},
		Mass:           cfg.Projectile.Mass,
		GravityScale:   cfg.Projectile.GravityScale,
	}})
	ecs.AddComponent(em, id, components.NewColliderComponent(physics.NewSphere(cfg.Projectile.ColliderRadius)))

	for i := 0; i < 10; i++ {
		system.Update(frame)
	}
	assert.InDelta(t, -1.5+cfg.Projectile.ColliderRadius, transform.Translation.Y(), 1e-3)
}

func TestPhysicsSystemSeparatesDynamicBodies(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig().Physics
	cfg.Gravity = mgl32.Vec3{}
	system := NewPhysicsSystem(em, cfg)

	_, a, _ := addBox(em, mgl32.Vec3{0, 0, 0}, 1)
	_, b, _ := addBox(em, mgl32.Vec3{0.5, 0, 0}, 1)

	system.Update(frame)

	// 等质量时各退一半
	assert.InDelta(t, -0.25, a.Translation.X(), 1e-5)
	assert.InDelta(t, 0.75, b.Translation.X(), 1e-5)
}

func TestPhysicsSystemStaticBodiesNeverMove(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)
	ground := addGround(em)
	addBox(em, mgl32.Vec3{0, -1.2, 0}, 1)

	system.Update(frame)

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, ground)
	assert.Equal(t, mgl32.Vec3{0, -2, 0}, transform.Translation)
}

func TestPhysicsSystemKillPlaneRemovesHierarchy(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)
	root, _, _ := addBox(em, mgl32.Vec3{0, -100, 0}, 1)

	system.Update(frame)
	assert.Equal(t, 2, em.PendingDestroyCount())

	em.RemoveMarkedEntities()
	assert.False(t, em.IsAlive(root))
	assert.Equal(t, 0, em.EntityCount())
}

func TestPhysicsSystemZeroDeltaIsNoop(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewPhysicsSystem(em, config.DefaultGameplayConfig().Physics)
	_, transform, body := addBox(em, mgl32.Vec3{0, 3, 0}, 1)
	body.LinearVelocity = mgl32.Vec3{1, 1, 1}

	system.Update(0)
	assert.Equal(t, mgl32.Vec3{0, 3, 0}, transform.Translation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, body.LinearVelocity)
}

func TestSubsteps(t *testing.T) {
	slow := []*physicsBody{{body: &components.RigidBodyComponent{Body: physics.NewDynamicBody(mgl32.Vec3{1, 0, 0})}}}
	assert.Equal(t, 1, substeps(slow, 1.0/60))
	assert.Equal(t, 1, substeps(nil, 1.0/60))

	fast := []*physicsBody{{body: &components.RigidBodyComponent{Body: physics.NewDynamicBody(mgl32.Vec3{0, 0, 100})}}}
	assert.Equal(t, 7, substeps(fast, 1.0/60))

	veryFast := []*physicsBody{{body: &components.RigidBodyComponent{Body: physics.NewDynamicBody(mgl32.Vec3{0, 0, 1e6})}}}
	assert.Equal(t, maxSubsteps, substeps(veryFast, 1.0/60))
}
