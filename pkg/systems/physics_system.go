package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// maxSubsteps 单帧最大子步数
	maxSubsteps = 8
	// substepDistance 单个子步内允许的最大位移，小于地面半厚度以避免穿透
	substepDistance = 0.25
)

// PhysicsSystem 刚体模拟
//
// 每帧：
//  1. 对动态刚体做半隐式欧拉积分（重力 × GravityScale）
//  2. 用 AABB 把动态刚体推出静态刚体，并取消朝向接触面的速度
//  3. 动态刚体之间按质量比例互相推开
//  4. 低于 KillPlaneY 的动态刚体连同子实体一起删除
//
// 刚体的碰撞范围是自身 ColliderComponent 与所有子实体 ColliderComponent 的并集。
// 刚体不旋转，子实体的局部位置直接叠加到父实体位置上。
type PhysicsSystem struct {
	em  *ecs.EntityManager
	cfg config.PhysicsConfig
}

// physicsBody 单帧内参与模拟的刚体快照
type physicsBody struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	body      *components.RigidBodyComponent
	// colliders 碰撞体及其相对刚体原点的偏移
	colliders []offsetCollider
}

type offsetCollider struct {
	collider *components.ColliderComponent
	offset   mgl32.Vec3
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器，用于查询和操作实体组件
//   - cfg: 重力、摩擦与删除高度
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:  em,
		cfg: cfg,
	}
}

// Update 推进一帧物理模拟
func (ps *PhysicsSystem) Update(dt time.Duration) {
	seconds := float32(dt.Seconds())
	if seconds <= 0 {
		return
	}

	var dynamics, statics []*physicsBody
	for _, id := range ecs.GetEntitiesWith2[*components.RigidBodyComponent, *components.TransformComponent](ps.em) {
		b := ps.collect(id)
		if b.body.Kind == physics.BodyDynamic {
			dynamics = append(dynamics, b)
		} else {
			statics = append(statics, b)
		}
	}

	steps := substeps(dynamics, seconds)
	h := seconds / float32(steps)
	for i := 0; i < steps; i++ {
		ps.step(dynamics, statics, h)
	}

	for _, b := range dynamics {
		if b.transform.Translation.Y() < ps.cfg.KillPlaneY {
			log.Printf("[PhysicsSystem] 实体 %d 掉出世界 (y=%.2f)，删除", b.id, b.transform.Translation.Y())
			DestroyRecursive(ps.em, b.id)
		}
	}
}

// collect 收集刚体自身及子实体上的碰撞体
func (ps *PhysicsSystem) collect(id ecs.EntityID) *physicsBody {
	transform, _ := ecs.GetComponent[*components.TransformComponent](ps.em, id)
	body, _ := ecs.GetComponent[*components.RigidBodyComponent](ps.em, id)
	b := &physicsBody{id: id, transform: transform, body: body}

	if c, ok := ecs.GetComponent[*components.ColliderComponent](ps.em, id); ok {
		b.colliders = append(b.colliders, offsetCollider{collider: c})
	}
	if children, ok := ecs.GetComponent[*components.ChildrenComponent](ps.em, id); ok {
		for _, child := range children.Children {
			c, ok := ecs.GetComponent[*components.ColliderComponent](ps.em, child)
			if !ok {
				continue
			}
			var offset mgl32.Vec3
			if ct, ok := ecs.GetComponent[*components.TransformComponent](ps.em, child); ok {
				offset = ct.Translation
			}
			b.colliders = append(b.colliders, offsetCollider{collider: c, offset: offset})
		}
	}
	return b
}

// aabb 返回刚体当前位置下的包围盒；没有碰撞体时返回 false
func (b *physicsBody) aabb() (physics.AABB, bool) {
	if len(b.colliders) == 0 {
		return physics.AABB{}, false
	}
	pos := b.transform.Translation
	box := b.colliders[0].collider.AABB(pos.Add(b.colliders[0].offset))
	for _, oc := range b.colliders[1:] {
		box = box.Union(oc.collider.AABB(pos.Add(oc.offset)))
	}
	return box, true
}

// substeps 根据最快刚体的速度决定本帧子步数
func substeps(dynamics []*physicsBody, dt float32) int {
	var fastest float32
	for _, b := range dynamics {
		fastest = max(fastest, b.body.LinearVelocity.Len())
	}
	n := int(math.Ceil(float64(fastest * dt / substepDistance)))
	return max(1, min(n, maxSubsteps))
}

func (ps *PhysicsSystem) step(dynamics, statics []*physicsBody, dt float32) {
	for _, b := range dynamics {
		b.transform.Translation = b.body.Integrate(b.transform.Translation, ps.cfg.Gravity, dt)
	}

	for _, b := range dynamics {
		box, ok := b.aabb()
		if !ok {
			continue
		}
		for _, s := range statics {
			other, ok := s.aabb()
			if !ok {
				continue
			}
			push, hit := box.Penetration(other)
			if !hit {
				continue
			}
			b.transform.Translation = b.transform.Translation.Add(push)
			b.body.CancelVelocityAlong(push)
			if push.Y() > 0 {
				b.body.ApplyFriction(ps.cfg.Friction, dt)
			}
			box, _ = b.aabb()
		}
	}

	for i := 0; i < len(dynamics); i++ {
		a := dynamics[i]
		for j := i + 1; j < len(dynamics); j++ {
			b := dynamics[j]
			separate(a, b)
		}
	}
}

// separate 按质量比例把两个相交的动态刚体推开
func separate(a, b *physicsBody) {
	boxA, ok := a.aabb()
	if !ok {
		return
	}
	boxB, ok := b.aabb()
	if !ok {
		return
	}
	push, hit := boxA.Penetration(boxB)
	if !hit {
		return
	}

	ma, mb := a.body.EffectiveMass(), b.body.EffectiveMass()
	total := ma + mb
	a.transform.Translation = a.transform.Translation.Add(push.Mul(mb / total))
	b.transform.Translation = b.transform.Translation.Sub(push.Mul(ma / total))
	a.body.CancelVelocityAlong(push)
	b.body.CancelVelocityAlong(push.Mul(-1))
}
