package components

import "github.com/decker502/cubesandbox/pkg/physics"

// ColliderComponent 碰撞体组件
// 挂在刚体实体本身或其子实体上；子实体的碰撞体按子实体的局部位置并入父刚体
type ColliderComponent struct {
	physics.Collider
}

// NewColliderComponent 用给定形状创建碰撞体组件
func NewColliderComponent(shape physics.Shape) *ColliderComponent {
	return &ColliderComponent{Collider: physics.NewCollider(shape)}
}
