package components

import "github.com/go-gl/mathgl/mgl32"

// TransformComponent 实体的空间变换（相对父实体，无父实体时即世界空间）
//
// 坐标系约定：Y 轴向上，相机默认朝向 -Z。
type TransformComponent struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform 创建位于 translation、无旋转、单位缩放的变换
func NewTransform(translation mgl32.Vec3) *TransformComponent {
	return &TransformComponent{
		Translation: translation,
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Forward 返回朝前方向（局部 -Z）
func (t *TransformComponent) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right 返回右方向（局部 +X）
func (t *TransformComponent) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up 返回上方向（局部 +Y）
func (t *TransformComponent) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Matrix 返回 平移 * 旋转 * 缩放 的模型矩阵
func (t *TransformComponent) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}
