package systems

import (
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/physics"
	"github.com/go-gl/mathgl/mgl32"
)

// TweenColliderSizeSystem 驱动碰撞形状尺寸补间
//
// 碰撞形状不能靠缩放变换改变大小，每帧都要按插值尺寸重建立方体。
// 到达终点后再用精确的 EndSize 重建一次，之后不再修改形状。
type TweenColliderSizeSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenColliderSizeSystem 创建碰撞形状补间系统
func NewTweenColliderSizeSystem(em *ecs.EntityManager) *TweenColliderSizeSystem {
	return &TweenColliderSizeSystem{entityManager: em}
}

// Update 更新所有同时拥有 TweenColliderSizeComponent 和 ColliderComponent 的实体
func (s *TweenColliderSizeSystem) Update(dt time.Duration) {
	entities := ecs.GetEntitiesWith2[*components.TweenColliderSizeComponent, *components.ColliderComponent](s.entityManager)

	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.TweenColliderSizeComponent](s.entityManager, id)
		if tween.Finalized() {
			continue
		}
		collider, _ := ecs.GetComponent[*components.ColliderComponent](s.entityManager, id)

		resizeCuboidCollider(collider, tween.Current())
		tween.Advance(dt)

		if tween.Reached() {
			resizeCuboidCollider(collider, tween.EndSize)
			tween.MarkFinalized()
		}
	}
}

// resizeCuboidCollider 用新尺寸的立方体替换碰撞形状，并同步覆盖缩放元数据
func resizeCuboidCollider(collider *components.ColliderComponent, size mgl32.Vec3) {
	shape := physics.NewCuboid(size)
	collider.SetShape(shape)
	collider.SetScale(shape.UnitScale())
}
