package physics

import "github.com/go-gl/mathgl/mgl32"

// Collider 碰撞体：几何形状 + 缩放元数据
//
// 物理层同时缓存形状和它的缩放元数据。两者都可能被读取，
// 所以替换形状的一方也必须覆盖缩放元数据，否则两者会不一致。
// Revision 在每次写入后递增，用于检测多余的形状重建。
type Collider struct {
	shape    Shape
	scale    mgl32.Vec3
	revision uint64
}

// NewCollider 用给定形状创建碰撞体，缩放元数据与形状保持一致
func NewCollider(shape Shape) Collider {
	return Collider{
		shape: shape,
		scale: shape.UnitScale(),
	}
}

// Shape 返回当前几何形状
func (c *Collider) Shape() Shape {
	return c.shape
}

// Scale 返回缓存的缩放元数据
func (c *Collider) Scale() mgl32.Vec3 {
	return c.scale
}

// Revision 返回写入次数
func (c *Collider) Revision() uint64 {
	return c.revision
}

// SetShape 原地替换几何形状
func (c *Collider) SetShape(shape Shape) {
	c.shape = shape
	c.revision++
}

// SetScale 覆盖缩放元数据
func (c *Collider) SetScale(scale mgl32.Vec3) {
	c.scale = scale
	c.revision++
}

// Consistent 检查缩放元数据是否与当前形状一致
func (c *Collider) Consistent() bool {
	if c.shape == nil {
		return false
	}
	return c.scale.ApproxEqual(c.shape.UnitScale())
}

// AABB 返回以 center 为中心的世界空间包围盒
func (c *Collider) AABB(center mgl32.Vec3) AABB {
	if c.shape == nil {
		return AABB{Min: center, Max: center}
	}
	half := c.shape.HalfExtents()
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}
