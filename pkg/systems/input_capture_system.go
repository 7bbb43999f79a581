package systems

import (
	"log"
	"math"
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/config"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
)

// InputCaptureSystem 第一人称控制器的输入采集阶段
//
// 负责：
//   - 锁定键按下时切换光标锁定
//   - 把指针移动累加到 PlayerInputComponent 的 yaw / pitch
//   - 每帧从按键状态重新计算移动意图
//
// 必须在 CameraMoveSystem 之前运行。
type InputCaptureSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	input         *utils.InputState
	cursor        utils.CursorLocker
	keys          config.ControlKeys

	sensitivity  float32
	angleEpsilon float32
}

// NewInputCaptureSystem 创建输入采集系统
//
// 参数:
//   - cursor: 光标锁定实现，可以为 nil（此时只记录锁定状态）
func NewInputCaptureSystem(em *ecs.EntityManager, gs *game.GameState, input *utils.InputState,
	cursor utils.CursorLocker, cfg config.ControllerConfig) *InputCaptureSystem {
	return &InputCaptureSystem{
		entityManager: em,
		gameState:     gs,
		input:         input,
		cursor:        cursor,
		keys:          cfg.Keys.MustResolve(),
		sensitivity:   cfg.MouseSensitivity,
		angleEpsilon:  cfg.AngleEpsilon,
	}
}

// Update 处理本帧输入
func (s *InputCaptureSystem) Update(dt time.Duration) {
	camera, ok := s.gameState.Camera(s.entityManager)
	if !ok {
		return
	}
	playerInput, ok := ecs.GetComponent[*components.PlayerInputComponent](s.entityManager, camera)
	if !ok {
		return
	}

	if s.input.Keys.AnyJustPressed(s.keys.LockCursor, s.keys.ReleaseCursor) {
		locked := s.gameState.ToggleCursorLock()
		if s.cursor != nil {
			s.cursor.SetCursorLocked(locked)
		}
		log.Printf("[InputCaptureSystem] 光标锁定: %v", locked)
	}

	delta := s.input.DrainMouseMotion().Mul(s.sensitivity)
	playerInput.Pitch = ClampPitch(playerInput.Pitch-delta.Y(), s.angleEpsilon)
	playerInput.Yaw = WrapYaw(playerInput.Yaw - delta.X())

	keys := s.input.Keys
	playerInput.Movement = mgl32.Vec3{
		keys.Axis(s.keys.Right, s.keys.Left),
		keys.Axis(s.keys.Up, s.keys.Down),
		keys.Axis(s.keys.Forward, s.keys.Back),
	}
}

// ClampPitch 把俯仰角限制在 [-π/2+ε, π/2-ε]
func ClampPitch(pitch, epsilon float32) float32 {
	limit := float32(math.Pi/2) - epsilon
	return mgl32.Clamp(pitch, -limit, limit)
}

// WrapYaw 偏航角绝对值超过 π 时折回 [0, 2π)
func WrapYaw(yaw float32) float32 {
	if float32(math.Abs(float64(yaw))) <= math.Pi {
		return yaw
	}
	w := float32(math.Mod(float64(yaw), 2*math.Pi))
	if w < 0 {
		w += 2 * math.Pi
	}
	// float32 舍入可能得到 2π
	if w >= 2*math.Pi {
		w = 0
	}
	return w
}
