package physics

import "github.com/go-gl/mathgl/mgl32"

// AABB 轴对齐包围盒
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center 返回包围盒中心
func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Union 返回同时包含 a 和 b 的最小包围盒
func (a AABB) Union(b AABB) AABB {
	var out AABB
	for i := 0; i < 3; i++ {
		out.Min[i] = min(a.Min[i], b.Min[i])
		out.Max[i] = max(a.Max[i], b.Max[i])
	}
	return out
}

// Overlaps 检查两个包围盒是否相交（边界接触不算相交）
func (a AABB) Overlaps(b AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max[i] <= b.Min[i] || a.Min[i] >= b.Max[i] {
			return false
		}
	}
	return true
}

// Penetration 返回把 a 推出 b 所需的最小位移
//
// 只沿穿透深度最小的轴移动。两个包围盒不相交时返回零向量和 false。
func (a AABB) Penetration(b AABB) (mgl32.Vec3, bool) {
	if !a.Overlaps(b) {
		return mgl32.Vec3{}, false
	}

	axis := -1
	var depth float32
	for i := 0; i < 3; i++ {
		// 向正方向推出 vs 向负方向推出
		up := b.Max[i] - a.Min[i]
		down := a.Max[i] - b.Min[i]
		d := up
		if down < up {
			d = -down
		}
		if axis < 0 || abs32(d) < abs32(depth) {
			axis = i
			depth = d
		}
	}

	var push mgl32.Vec3
	push[axis] = depth
	return push, true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
