package components

import "github.com/decker502/cubesandbox/pkg/ecs"

// ParentComponent 指向父实体，子实体的 TransformComponent 相对父实体
type ParentComponent struct {
	Parent ecs.EntityID
}

// ChildrenComponent 父实体持有的子实体列表
type ChildrenComponent struct {
	Children []ecs.EntityID
}
