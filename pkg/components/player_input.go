package components

import "github.com/go-gl/mathgl/mgl32"

// PlayerInputComponent 第一人称控制器的输入状态，挂在相机实体上
//
// 由 InputCaptureSystem 每帧写入一次，CameraMoveSystem 每帧读取一次。
type PlayerInputComponent struct {
	// Pitch 俯仰角（弧度），始终位于 (-π/2, π/2) 开区间内
	Pitch float32
	// Yaw 偏航角（弧度），绝对值超过 π 时被折回 [0, 2π)
	Yaw float32
	// Movement 移动意图 (右, 上, 前)，每个分量 ∈ {-1, 0, 1}，每帧重新计算
	Movement mgl32.Vec3
}
