package components

import "image/color"

// MeshKind 渲染网格类型
type MeshKind int

const (
	// MeshCuboid 以原点为中心的立方体
	MeshCuboid MeshKind = iota
	// MeshSphere 以原点为中心的球体
	MeshSphere
)

// MeshComponent 线框渲染用的网格描述
type MeshComponent struct {
	Kind MeshKind
	// Size 立方体边长或球体半径（乘以 TransformComponent.Scale 后为最终尺寸）
	Size  float32
	Color color.RGBA
}
