package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// TweenSizeComponent 渲染尺寸补间
// 每帧由 TweenSizeSystem 写入 TransformComponent.Scale，完成后停在 EndSize
type TweenSizeComponent struct {
	StartSize mgl32.Vec3
	EndSize   mgl32.Vec3
	Duration  time.Duration

	// elapsed 只增不减，由 Advance 推进
	elapsed time.Duration
}

// Elapsed 返回已累计时间
func (t *TweenSizeComponent) Elapsed() time.Duration { return t.elapsed }

// Progress 返回当前进度 ∈ [0, 1]
func (t *TweenSizeComponent) Progress() float32 { return TweenProgress(t.elapsed, t.Duration) }

// Current 返回当前进度下的插值尺寸
func (t *TweenSizeComponent) Current() mgl32.Vec3 {
	return LerpVec3(t.StartSize, t.EndSize, t.Progress())
}

// Advance 推进已累计时间，负值被忽略
func (t *TweenSizeComponent) Advance(dt time.Duration) {
	if dt > 0 {
		t.elapsed += dt
	}
}

// TweenColliderSizeComponent 碰撞形状尺寸补间
//
// 与 TweenSizeComponent 字段相同但语义独立：驱动的是碰撞几何体而不是渲染变换，
// 完成时还会重建一次精确的终点形状。由 TweenColliderSizeSystem 独占修改。
type TweenColliderSizeComponent struct {
	StartSize mgl32.Vec3
	EndSize   mgl32.Vec3
	Duration  time.Duration

	elapsed time.Duration
	// finalized 终点形状已写入
	finalized bool
}

// Elapsed 返回已累计时间
func (t *TweenColliderSizeComponent) Elapsed() time.Duration { return t.elapsed }

// Progress 返回当前进度 ∈ [0, 1]
func (t *TweenColliderSizeComponent) Progress() float32 {
	return TweenProgress(t.elapsed, t.Duration)
}

// Current 返回当前进度下的插值尺寸
func (t *TweenColliderSizeComponent) Current() mgl32.Vec3 {
	return LerpVec3(t.StartSize, t.EndSize, t.Progress())
}

// Advance 推进已累计时间，负值被忽略
func (t *TweenColliderSizeComponent) Advance(dt time.Duration) {
	if dt > 0 {
		t.elapsed += dt
	}
}

// Finalized 是否已完成终点吸附或越过终点（elapsed > Duration），此后不再修改碰撞形状
func (t *TweenColliderSizeComponent) Finalized() bool {
	return t.finalized || t.elapsed > t.Duration
}

// MarkFinalized 记录终点形状已写入
func (t *TweenColliderSizeComponent) MarkFinalized() {
	t.finalized = true
}

// Reached 是否已到达终点（elapsed >= Duration）
func (t *TweenColliderSizeComponent) Reached() bool {
	return t.elapsed >= t.Duration
}

// TweenProgress 计算补间进度 clamp(elapsed/duration, 0, 1)
// duration <= 0 视为动画已完成，返回 1
func TweenProgress(elapsed, duration time.Duration) float32 {
	if duration <= 0 {
		return 1
	}
	return mgl32.Clamp(float32(elapsed.Seconds()/duration.Seconds()), 0, 1)
}

// LerpVec3 逐分量线性插值，t<=0 精确返回 a，t>=1 精确返回 b
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}
