package systems

import (
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/utils"
)

// CameraMoveSystem 第一人称控制器的积分阶段
//
// 朝向每帧由 (yaw, pitch) 重新推导并直接赋值，不做积分；
// 位移沿新朝向的前、右方向累加，垂直方向单独使用移动意图的 Y 分量。
type CameraMoveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	moveSpeed     float32 // 单位/秒
}

// NewCameraMoveSystem 创建相机移动系统
func NewCameraMoveSystem(em *ecs.EntityManager, gs *game.GameState, moveSpeed float32) *CameraMoveSystem {
	return &CameraMoveSystem{
		entityManager: em,
		gameState:     gs,
		moveSpeed:     moveSpeed,
	}
}

// Update 更新相机朝向和位置
func (cs *CameraMoveSystem) Update(dt time.Duration) {
	camera, ok := cs.gameState.Camera(cs.entityManager)
	if !ok {
		return
	}
	playerInput, ok := ecs.GetComponent[*components.PlayerInputComponent](cs.entityManager, camera)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](cs.entityManager, camera)
	if !ok {
		return
	}

	transform.Rotation = utils.YawPitchRotation(playerInput.Yaw, playerInput.Pitch)

	intent := playerInput.Movement
	movement := transform.Forward().Mul(intent.Z()).Add(transform.Right().Mul(intent.X()))
	movement[1] = intent.Y()

	factor := float32(dt.Seconds()) * cs.moveSpeed
	transform.Translation = transform.Translation.Add(movement.Mul(factor))
}
