package components

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTweenProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float32
	}{
		{"start", 0, 500 * time.Millisecond, 0},
		{"quarter", 125 * time.Millisecond, 500 * time.Millisecond, 0.25},
		{"half", 250 * time.Millisecond, 500 * time.Millisecond, 0.5},
		{"end", 500 * time.Millisecond, 500 * time.Millisecond, 1},
		{"past end clamps", 3 * time.Second, 500 * time.Millisecond, 1},
		{"zero duration is complete", 0, 0, 1},
		{"negative duration is complete", time.Second, -time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TweenProgress(tt.elapsed, tt.duration), 1e-6)
		})
	}
}

func TestTweenProgressMatchesRatio(t *testing.T) {
	duration := 700 * time.Millisecond
	for elapsed := time.Duration(0); elapsed <= duration; elapsed += 7 * time.Millisecond {
		want := float32(elapsed.Seconds() / duration.Seconds())
		assert.InDelta(t, want, TweenProgress(elapsed, duration), 1e-6, "elapsed=%v", elapsed)
	}
}

func TestLerpVec3Endpoints(t *testing.T) {
	start := mgl32.Vec3{0.1, 0.1, 0.1}
	end := mgl32.Vec3{1, 1, 1}

	assert.Equal(t, start, LerpVec3(start, end, 0))
	assert.Equal(t, end, LerpVec3(start, end, 1))
	assert.InDelta(t, 0.55, LerpVec3(start, end, 0.5).X(), 1e-6)
}

func TestTweenSizeComponentAdvance(t *testing.T) {
	tween := &TweenSizeComponent{
		StartSize: mgl32.Vec3{0.1, 0.1, 0.1},
		EndSize:   mgl32.Vec3{1, 1, 1},
		Duration:  500 * time.Millisecond,
	}

	assert.Equal(t, tween.StartSize, tween.Current())

	tween.Advance(-time.Second)
	assert.Equal(t, time.Duration(0), tween.Elapsed())

	tween.Advance(250 * time.Millisecond)
	assert.InDelta(t, 0.5, tween.Progress(), 1e-6)

	tween.Advance(time.Second)
	assert.Equal(t, tween.EndSize, tween.Current())
}

func TestTweenColliderSizeComponentStates(t *testing.T) {
	tween := &TweenColliderSizeComponent{Duration: 100 * time.Millisecond}

	assert.False(t, tween.Reached())
	assert.False(t, tween.Finalized())

	tween.Advance(100 * time.Millisecond)
	assert.True(t, tween.Reached())
	assert.False(t, tween.Finalized())

	tween.Advance(time.Millisecond)
	assert.True(t, tween.Finalized())

	// 零时长补间在写入终点后即完成
	zero := &TweenColliderSizeComponent{}
	assert.True(t, zero.Reached())
	assert.False(t, zero.Finalized())
	zero.MarkFinalized()
	assert.True(t, zero.Finalized())
}

func TestTransformDirections(t *testing.T) {
	tr := NewTransform(mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, tr.Forward(), 1e-6)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, tr.Right(), 1e-6)
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, tr.Up(), 1e-6)

	// 偏航 π 后朝向 +Z
	tr.Rotation = mgl32.QuatRotate(mgl32.DegToRad(180), mgl32.Vec3{0, 1, 0})
	assertVec3Near(t, mgl32.Vec3{0, 0, 1}, tr.Forward(), 1e-5)
}

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}
