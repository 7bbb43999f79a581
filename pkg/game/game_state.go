package game

import "github.com/decker502/cubesandbox/pkg/ecs"

// GameState 存储一个场景内跨系统共享的帧上下文
//
// 相机实体是唯一的，用显式字段保存而不是每帧查询；
// CameraEntity 为 0 表示相机不存在，依赖相机的系统此时跳过本帧。
type GameState struct {
	// CameraEntity 玩家相机实体（0 表示不存在）
	CameraEntity ecs.EntityID

	// CursorLocked 光标是否被锁定（捕获）
	CursorLocked bool

	// 统计信息，仅用于 HUD 显示
	CubesSpawned     int
	ProjectilesFired int
}

// NewGameState 创建空的帧上下文
func NewGameState() *GameState {
	return &GameState{}
}

// Camera 返回相机实体；相机未设置或已销毁时返回 false
func (gs *GameState) Camera(em *ecs.EntityManager) (ecs.EntityID, bool) {
	if gs.CameraEntity == 0 || !em.IsAlive(gs.CameraEntity) {
		return 0, false
	}
	return gs.CameraEntity, true
}

// ToggleCursorLock 切换光标锁定状态并返回新状态
func (gs *GameState) ToggleCursorLock() bool {
	gs.CursorLocked = !gs.CursorLocked
	return gs.CursorLocked
}
