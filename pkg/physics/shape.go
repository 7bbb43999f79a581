// Package physics 提供刚体模拟所需的最小物理层
//
// 只处理轴对齐包围盒（AABB）碰撞：刚体不旋转，球体按外接立方体处理。
// 形状尺寸变化必须通过重建形状完成（见 Collider.SetShape），不能只缩放变换。
package physics

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind 碰撞形状类型
type ShapeKind int

const (
	// ShapeCuboid 长方体
	ShapeCuboid ShapeKind = iota
	// ShapeSphere 球体
	ShapeSphere
)

// String 返回形状类型名称
func (k ShapeKind) String() string {
	switch k {
	case ShapeCuboid:
		return "cuboid"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Shape 碰撞几何体
type Shape interface {
	// Kind 返回形状类型
	Kind() ShapeKind
	// HalfExtents 返回局部空间的半尺寸
	HalfExtents() mgl32.Vec3
	// UnitScale 返回相对单位形状（1×1×1 立方体 / 半径 1 的球）的缩放
	UnitScale() mgl32.Vec3
}

// Cuboid 长方体形状，Size 为三个轴上的完整边长
type Cuboid struct {
	Size mgl32.Vec3
}

// NewCuboid 按完整边长创建长方体
func NewCuboid(size mgl32.Vec3) Cuboid {
	return Cuboid{Size: size}
}

// Kind 实现 Shape
func (c Cuboid) Kind() ShapeKind { return ShapeCuboid }

// HalfExtents 实现 Shape
func (c Cuboid) HalfExtents() mgl32.Vec3 { return c.Size.Mul(0.5) }

// UnitScale 实现 Shape
func (c Cuboid) UnitScale() mgl32.Vec3 { return c.Size }

// Sphere 球体形状
type Sphere struct {
	Radius float32
}

// NewSphere 按半径创建球体
func NewSphere(radius float32) Sphere {
	return Sphere{Radius: radius}
}

// Kind 实现 Shape
func (s Sphere) Kind() ShapeKind { return ShapeSphere }

// HalfExtents 实现 Shape
func (s Sphere) HalfExtents() mgl32.Vec3 { return mgl32.Vec3{s.Radius, s.Radius, s.Radius} }

// UnitScale 实现 Shape
func (s Sphere) UnitScale() mgl32.Vec3 { return mgl32.Vec3{s.Radius, s.Radius, s.Radius} }
