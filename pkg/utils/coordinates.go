// coordinates.go 提供三维世界坐标与屏幕坐标之间的转换
//
// # 坐标系统概述
//
//   - **世界坐标**：右手系，Y 轴向上，相机默认朝向 -Z
//   - **屏幕坐标**：相对于窗口左上角，X 向右、Y 向下（Ebitengine 约定）
//   - **裁剪坐标**：透视投影之后、透视除法之前的齐次坐标
//
// 相机朝向始终由 (yaw, pitch) 推导：rotation = Ry(yaw) · Rx(pitch)，没有横滚。
package utils

import (
	"math"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray 世界空间射线
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayCaster 宿主提供的相机到世界的射线投射能力
type RayCaster interface {
	// ViewportToWorld 从屏幕点 point 发出射线；无法得到射线时返回 false
	ViewportToWorld(camera *components.PlayerCameraComponent, transform *components.TransformComponent,
		width, height int, point mgl32.Vec2) (Ray, bool)
}

// PerspectiveRayCaster 基于透视投影逆变换的 RayCaster
type PerspectiveRayCaster struct{}

// ViewportToWorld 实现 RayCaster
//
// 射线起点位于近裁剪面上，方向指向远裁剪面上的对应点。
func (PerspectiveRayCaster) ViewportToWorld(camera *components.PlayerCameraComponent,
	transform *components.TransformComponent, width, height int, point mgl32.Vec2) (Ray, bool) {
	if camera == nil || transform == nil || width <= 0 || height <= 0 {
		return Ray{}, false
	}

	view := ViewMatrix(transform)
	proj := ProjectionMatrix(camera, width, height)

	// UnProject 使用左下角为原点的窗口坐标
	winX := point.X()
	winY := float32(height) - point.Y()

	near, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return Ray{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return Ray{}, false
	}

	dir := far.Sub(near)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir.Normalize()}, true
}

// ViewMatrix 返回相机变换的逆矩阵（世界 → 视图）
func ViewMatrix(transform *components.TransformComponent) mgl32.Mat4 {
	rot := transform.Rotation.Normalize().Conjugate().Mat4()
	t := transform.Translation
	return rot.Mul4(mgl32.Translate3D(-t.X(), -t.Y(), -t.Z()))
}

// ProjectionMatrix 返回相机的透视投影矩阵
func ProjectionMatrix(camera *components.PlayerCameraComponent, width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(camera.FovY, aspect, camera.Near, camera.Far)
}

// ClipToScreen 对裁剪坐标做透视除法并映射到屏幕像素
// clip.W() 必须大于 0（调用方负责近平面裁剪）
func ClipToScreen(clip mgl32.Vec4, width, height int) mgl32.Vec2 {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl32.Vec2{
		(ndcX + 1) * 0.5 * float32(width),
		(1 - ndcY) * 0.5 * float32(height),
	}
}

// YawPitchRotation 由偏航、俯仰角得到朝向，先偏航后俯仰，无横滚
func YawPitchRotation(yaw, pitch float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
}

// LookYawPitch 求从 from 看向 to 时的偏航、俯仰角
// 两点重合时返回 (0, 0)
func LookYawPitch(from, to mgl32.Vec3) (yaw, pitch float32) {
	dir := to.Sub(from)
	if dir.Len() == 0 {
		return 0, 0
	}
	dir = dir.Normalize()
	yaw = float32(math.Atan2(float64(-dir.X()), float64(-dir.Z())))
	pitch = float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1))))
	return yaw, pitch
}
