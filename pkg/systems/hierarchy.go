package systems

import (
	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// AttachChild 把 child 挂到 parent 下，同时维护双向引用
func AttachChild(em *ecs.EntityManager, parent, child ecs.EntityID) {
	ecs.AddComponent(em, child, &components.ParentComponent{Parent: parent})

	children, ok := ecs.GetComponent[*components.ChildrenComponent](em, parent)
	if !ok {
		children = &components.ChildrenComponent{}
		ecs.AddComponent(em, parent, children)
	}
	children.Children = append(children.Children, child)
}

// DestroyRecursive 标记实体及其所有后代待删除
func DestroyRecursive(em *ecs.EntityManager, id ecs.EntityID) {
	if children, ok := ecs.GetComponent[*components.ChildrenComponent](em, id); ok {
		for _, child := range children.Children {
			DestroyRecursive(em, child)
		}
	}
	em.DestroyEntity(id)
}

// WorldMatrix 返回实体的世界变换矩阵（沿父链逐级相乘）
// 实体没有 TransformComponent 时返回 false
func WorldMatrix(em *ecs.EntityManager, id ecs.EntityID) (mgl32.Mat4, bool) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return mgl32.Ident4(), false
	}
	m := transform.Matrix()

	// 父链深度有限，环状引用视为断开
	seen := map[ecs.EntityID]bool{id: true}
	current := id
	for {
		parent, ok := ecs.GetComponent[*components.ParentComponent](em, current)
		if !ok || seen[parent.Parent] {
			break
		}
		pt, ok := ecs.GetComponent[*components.TransformComponent](em, parent.Parent)
		if !ok {
			break
		}
		m = pt.Matrix().Mul4(m)
		seen[parent.Parent] = true
		current = parent.Parent
	}
	return m, true
}

// WorldTranslation 返回实体在世界空间中的位置
func WorldTranslation(em *ecs.EntityManager, id ecs.EntityID) (mgl32.Vec3, bool) {
	m, ok := WorldMatrix(em, id)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return m.Col(3).Vec3(), true
}
