// Package utils 提供通用工具函数
package utils

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonInput 按键状态跟踪器
//
// 同时记录电平状态（Pressed）和边沿状态（JustPressed / JustReleased）。
// 边沿状态只在按下发生的那一帧为真，无论按键被按住多少帧，
// 一次物理按下只会产生一次 JustPressed。
type ButtonInput[K comparable] struct {
	pressed      map[K]struct{}
	justPressed  map[K]struct{}
	justReleased map[K]struct{}
}

// NewButtonInput 创建空的按键状态
func NewButtonInput[K comparable]() *ButtonInput[K] {
	return &ButtonInput[K]{
		pressed:      make(map[K]struct{}),
		justPressed:  make(map[K]struct{}),
		justReleased: make(map[K]struct{}),
	}
}

// Press 记录按键处于按下状态；仅在从松开变为按下时产生边沿
func (b *ButtonInput[K]) Press(k K) {
	if _, held := b.pressed[k]; held {
		return
	}
	b.pressed[k] = struct{}{}
	b.justPressed[k] = struct{}{}
}

// Release 记录按键处于松开状态；仅在从按下变为松开时产生边沿
func (b *ButtonInput[K]) Release(k K) {
	if _, held := b.pressed[k]; !held {
		return
	}
	delete(b.pressed, k)
	b.justReleased[k] = struct{}{}
}

// Set 根据当前采样值调用 Press 或 Release
func (b *ButtonInput[K]) Set(k K, down bool) {
	if down {
		b.Press(k)
	} else {
		b.Release(k)
	}
}

// Pressed 按键当前是否按下
func (b *ButtonInput[K]) Pressed(k K) bool {
	_, ok := b.pressed[k]
	return ok
}

// JustPressed 按键是否在本帧刚按下
func (b *ButtonInput[K]) JustPressed(k K) bool {
	_, ok := b.justPressed[k]
	return ok
}

// JustReleased 按键是否在本帧刚松开
func (b *ButtonInput[K]) JustReleased(k K) bool {
	_, ok := b.justReleased[k]
	return ok
}

// AnyJustPressed 任意一个按键在本帧刚按下
func (b *ButtonInput[K]) AnyJustPressed(keys ...K) bool {
	for _, k := range keys {
		if b.JustPressed(k) {
			return true
		}
	}
	return false
}

// Axis 由一对相反按键得到 +1 / -1 / 0
func (b *ButtonInput[K]) Axis(positive, negative K) float32 {
	var v float32
	if b.Pressed(positive) {
		v++
	}
	if b.Pressed(negative) {
		v--
	}
	return v
}

// ClearJust 清除边沿状态，每帧开始时调用
func (b *ButtonInput[K]) ClearJust() {
	clear(b.justPressed)
	clear(b.justReleased)
}

// InputState 存储当前帧的输入状态
// 由宿主每帧采样一次，所有系统在同一帧内看到相同的输入
type InputState struct {
	Keys         *ButtonInput[ebiten.Key]
	MouseButtons *ButtonInput[ebiten.MouseButton]

	// 窗口尺寸（像素），未知时为 0
	WindowWidth  int
	WindowHeight int

	// 自上一帧以来的指针移动事件，由 DrainMouseMotion 消费
	mouseMotion []mgl32.Vec2
}

// NewInputState 创建空的输入状态
func NewInputState() *InputState {
	return &InputState{
		Keys:         NewButtonInput[ebiten.Key](),
		MouseButtons: NewButtonInput[ebiten.MouseButton](),
	}
}

// BeginFrame 清除上一帧的边沿状态，在采样新一帧输入之前调用
func (s *InputState) BeginFrame() {
	s.Keys.ClearJust()
	s.MouseButtons.ClearJust()
}

// PushMouseMotion 追加一条指针移动事件
func (s *InputState) PushMouseMotion(delta mgl32.Vec2) {
	s.mouseMotion = append(s.mouseMotion, delta)
}

// DrainMouseMotion 返回所有未读指针移动事件之和，并清空事件队列
func (s *InputState) DrainMouseMotion() mgl32.Vec2 {
	var sum mgl32.Vec2
	for _, d := range s.mouseMotion {
		sum = sum.Add(d)
	}
	s.mouseMotion = s.mouseMotion[:0]
	return sum
}

// WindowCenter 返回窗口中心点；窗口尺寸未知时返回 false
func (s *InputState) WindowCenter() (mgl32.Vec2, bool) {
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{float32(s.WindowWidth) * 0.5, float32(s.WindowHeight) * 0.5}, true
}

// CursorLocker 宿主提供的光标锁定能力
type CursorLocker interface {
	SetCursorLocked(locked bool)
}

// EbitenInputSampler 从 Ebitengine 采样键盘和鼠标状态写入 InputState
type EbitenInputSampler struct {
	keys    []ebiten.Key
	buttons []ebiten.MouseButton

	lastX, lastY int
	hasLast      bool
}

// NewEbitenInputSampler 创建采样器，只跟踪给定的按键
func NewEbitenInputSampler(keys []ebiten.Key, buttons []ebiten.MouseButton) *EbitenInputSampler {
	return &EbitenInputSampler{keys: keys, buttons: buttons}
}

// Sample 采样本帧输入
// 必须在所有游戏系统之前调用，每帧一次
func (es *EbitenInputSampler) Sample(state *InputState, width, height int) {
	state.BeginFrame()

	for _, k := range es.keys {
		state.Keys.Set(k, ebiten.IsKeyPressed(k))
	}
	for _, b := range es.buttons {
		state.MouseButtons.Set(b, ebiten.IsMouseButtonPressed(b))
	}

	// 光标被捕获时 CursorPosition 返回无界的累计位置，差值即为移动量
	x, y := ebiten.CursorPosition()
	if es.hasLast && (x != es.lastX || y != es.lastY) {
		state.PushMouseMotion(mgl32.Vec2{float32(x - es.lastX), float32(y - es.lastY)})
	}
	es.lastX, es.lastY = x, y
	es.hasLast = true

	state.WindowWidth = width
	state.WindowHeight = height
}

// EbitenCursor 通过 ebiten.SetCursorMode 实现 CursorLocker
type EbitenCursor struct{}

// SetCursorLocked 实现 CursorLocker
func (EbitenCursor) SetCursorLocked(locked bool) {
	if locked {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
