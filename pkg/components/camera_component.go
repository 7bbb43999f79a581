package components

// PlayerCameraComponent 标记玩家相机，并保存透视投影参数
type PlayerCameraComponent struct {
	// FovY 垂直视场角（弧度）
	FovY float32
	// Near 近裁剪面距离
	Near float32
	// Far 远裁剪面距离
	Far float32
}
