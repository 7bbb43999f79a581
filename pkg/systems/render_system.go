package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/ecs"
	"github.com/decker502/cubesandbox/pkg/game"
	"github.com/decker502/cubesandbox/pkg/utils"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// sphereSegments 球体每个大圆的线段数
	sphereSegments = 24
	// nearClipEpsilon 近平面裁剪的容差
	nearClipEpsilon = 1e-5
)

var (
	crosshairColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	backgroundTint = color.RGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff}
)

// Segment 世界空间线段
type Segment struct {
	A, B mgl32.Vec3
}

// RenderSystem 线框渲染
//
// 职责范围：
//   - 带 MeshComponent 的实体：立方体画 12 条棱，球体画 3 个大圆
//   - 屏幕中心准星
//   - 左上角调试信息（相机位置、朝向、光标锁定、计数）
//
// 线段先在裁剪空间对近平面裁剪，再做透视除法，相机背后的几何体不会被翻转到屏幕上。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	lineWidth     float32
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		lineWidth:     1.5,
	}
}

// Draw 渲染整个场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundTint)

	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	cameraID, ok := s.gameState.Camera(s.entityManager)
	if !ok {
		ebitenutil.DebugPrintAt(screen, "no camera", 8, 8)
		return
	}
	camera, ok := ecs.GetComponent[*components.PlayerCameraComponent](s.entityManager, cameraID)
	if !ok {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, cameraID)
	if !ok {
		return
	}

	viewProj := utils.ProjectionMatrix(camera, width, height).Mul4(utils.ViewMatrix(transform))

	for _, id := range ecs.GetEntitiesWith2[*components.MeshComponent, *components.TransformComponent](s.entityManager) {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		model, ok := WorldMatrix(s.entityManager, id)
		if !ok {
			continue
		}
		for _, seg := range MeshSegments(mesh, model) {
			p0, p1, visible := ProjectSegment(viewProj, seg, width, height)
			if !visible {
				continue
			}
			vector.StrokeLine(screen, p0.X(), p0.Y(), p1.X(), p1.Y(), s.lineWidth, mesh.Color, true)
		}
	}

	s.drawCrosshair(screen, width, height)
	s.drawHUD(screen, transform, cameraID)
}

func (s *RenderSystem) drawCrosshair(screen *ebiten.Image, width, height int) {
	cx, cy := float32(width)/2, float32(height)/2
	const arm = 8
	vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, 1, crosshairColor, false)
	vector.StrokeLine(screen, cx, cy-arm, cx, cy+arm, 1, crosshairColor, false)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image, transform *components.TransformComponent, cameraID ecs.EntityID) {
	pos := transform.Translation
	lines := fmt.Sprintf("pos (%.2f, %.2f, %.2f)", pos.X(), pos.Y(), pos.Z())
	if input, ok := ecs.GetComponent[*components.PlayerInputComponent](s.entityManager, cameraID); ok {
		lines += fmt.Sprintf("\nyaw %.1f° pitch %.1f°", mgl32.RadToDeg(input.Yaw), mgl32.RadToDeg(input.Pitch))
	}
	lines += fmt.Sprintf("\ncursor locked: %v", s.gameState.CursorLocked)
	lines += fmt.Sprintf("\ncubes %d  projectiles %d  entities %d",
		s.gameState.CubesSpawned, s.gameState.ProjectilesFired, s.entityManager.EntityCount())
	lines += fmt.Sprintf("\nTPS %.0f", ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, lines, 8, 8)
}

// MeshSegments 返回网格在世界空间中的线框线段
func MeshSegments(mesh *components.MeshComponent, model mgl32.Mat4) []Segment {
	switch mesh.Kind {
	case components.MeshCuboid:
		return cuboidSegments(mesh.Size, model)
	case components.MeshSphere:
		return sphereSegmentsFor(mesh.Size, model)
	}
	return nil
}

// cuboidSegments 立方体的 12 条棱
func cuboidSegments(size float32, model mgl32.Mat4) []Segment {
	h := size / 2
	var corners [8]mgl32.Vec3
	for i := 0; i < 8; i++ {
		local := mgl32.Vec3{-h, -h, -h}
		if i&1 != 0 {
			local[0] = h
		}
		if i&2 != 0 {
			local[1] = h
		}
		if i&4 != 0 {
			local[2] = h
		}
		corners[i] = mgl32.TransformCoordinate(local, model)
	}

	segments := make([]Segment, 0, 12)
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			j := i | bit
			if j != i {
				segments = append(segments, Segment{A: corners[i], B: corners[j]})
			}
		}
	}
	return segments
}

// sphereSegmentsFor 球体的三个正交大圆
func sphereSegmentsFor(radius float32, model mgl32.Mat4) []Segment {
	segments := make([]Segment, 0, 3*sphereSegments)
	point := func(plane int, angle float64) mgl32.Vec3 {
		c, sn := float32(math.Cos(angle))*radius, float32(math.Sin(angle))*radius
		var local mgl32.Vec3
		switch plane {
		case 0:
			local = mgl32.Vec3{c, sn, 0}
		case 1:
			local = mgl32.Vec3{c, 0, sn}
		default:
			local = mgl32.Vec3{0, c, sn}
		}
		return mgl32.TransformCoordinate(local, model)
	}
	for plane := 0; plane < 3; plane++ {
		for i := 0; i < sphereSegments; i++ {
			a := 2 * math.Pi * float64(i) / sphereSegments
			b := 2 * math.Pi * float64(i+1) / sphereSegments
			segments = append(segments, Segment{A: point(plane, a), B: point(plane, b)})
		}
	}
	return segments
}

// ProjectSegment 把世界空间线段投影到屏幕
//
// 在裁剪空间对近平面（z + w >= 0）裁剪；整条线段位于近平面之后时返回 false。
func ProjectSegment(viewProj mgl32.Mat4, seg Segment, width, height int) (mgl32.Vec2, mgl32.Vec2, bool) {
	a := viewProj.Mul4x1(seg.A.Vec4(1))
	b := viewProj.Mul4x1(seg.B.Vec4(1))

	da := a.Z() + a.W()
	db := b.Z() + b.W()
	if da < nearClipEpsilon && db < nearClipEpsilon {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	if da < nearClipEpsilon {
		a = clipLerp(a, b, da, db)
	} else if db < nearClipEpsilon {
		b = clipLerp(b, a, db, da)
	}
	if a.W() <= 0 || b.W() <= 0 {
		return mgl32.Vec2{}, mgl32.Vec2{}, false
	}
	return utils.ClipToScreen(a, width, height), utils.ClipToScreen(b, width, height), true
}

// clipLerp 把位于近平面之后的端点 out 移到近平面上
func clipLerp(out, in mgl32.Vec4, dOut, dIn float32) mgl32.Vec4 {
	t := (nearClipEpsilon - dOut) / (dIn - dOut)
	return out.Add(in.Sub(out).Mul(t))
}
