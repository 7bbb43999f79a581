package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestButtonInputEdgeFiresOncePerPress(t *testing.T) {
	keys := NewButtonInput[ebiten.Key]()

	// 按住三帧，只有第一帧产生边沿
	justPressedFrames := 0
	for frame := 0; frame < 3; frame++ {
		keys.ClearJust()
		keys.Press(ebiten.KeyL)
		if keys.JustPressed(ebiten.KeyL) {
			justPressedFrames++
		}
		assert.True(t, keys.Pressed(ebiten.KeyL))
	}
	assert.Equal(t, 1, justPressedFrames)

	// 松开后再按下，产生第二次边沿
	keys.ClearJust()
	keys.Release(ebiten.KeyL)
	assert.True(t, keys.JustReleased(ebiten.KeyL))
	assert.False(t, keys.Pressed(ebiten.KeyL))

	keys.ClearJust()
	keys.Press(ebiten.KeyL)
	assert.True(t, keys.JustPressed(ebiten.KeyL))
}

func TestButtonInputReleaseWithoutPressIsNoop(t *testing.T) {
	keys := NewButtonInput[ebiten.Key]()
	keys.Release(ebiten.KeyA)
	assert.False(t, keys.JustReleased(ebiten.KeyA))
}

func TestButtonInputAxis(t *testing.T) {
	tests := []struct {
		name string
		down []ebiten.Key
		want float32
	}{
		{"nothing held", nil, 0},
		{"positive", []ebiten.Key{ebiten.KeyW}, 1},
		{"negative", []ebiten.Key{ebiten.KeyS}, -1},
		{"opposing keys cancel", []ebiten.Key{ebiten.KeyW, ebiten.KeyS}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := NewButtonInput[ebiten.Key]()
			for _, k := range tt.down {
				keys.Press(k)
			}
			assert.Equal(t, tt.want, keys.Axis(ebiten.KeyW, ebiten.KeyS))
		})
	}
}

func TestButtonInputAnyJustPressed(t *testing.T) {
	keys := NewButtonInput[ebiten.Key]()
	keys.Press(ebiten.KeyEscape)
	assert.True(t, keys.AnyJustPressed(ebiten.KeyL, ebiten.KeyEscape))
	keys.ClearJust()
	assert.False(t, keys.AnyJustPressed(ebiten.KeyL, ebiten.KeyEscape))
}

func TestInputStateDrainMouseMotion(t *testing.T) {
	state := NewInputState()
	state.PushMouseMotion(mgl32.Vec2{1, 2})
	state.PushMouseMotion(mgl32.Vec2{3, -4})

	assert.Equal(t, mgl32.Vec2{4, -2}, state.DrainMouseMotion())
	// 事件只能被读取一次
	assert.Equal(t, mgl32.Vec2{}, state.DrainMouseMotion())
}

func TestInputStateWindowCenter(t *testing.T) {
	state := NewInputState()
	_, ok := state.WindowCenter()
	assert.False(t, ok)

	state.WindowWidth, state.WindowHeight = 800, 600
	center, ok := state.WindowCenter()
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec2{400, 300}, center)
}
