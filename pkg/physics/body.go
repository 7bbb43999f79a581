package physics

import "github.com/go-gl/mathgl/mgl32"

// BodyKind 刚体类型
type BodyKind int

const (
	// BodyDynamic 受重力和碰撞影响
	BodyDynamic BodyKind = iota
	// BodyStatic 永不移动
	BodyStatic
)

// DefaultMass 未指定质量时使用的质量
const DefaultMass float32 = 1.0

// Body 刚体的动力学状态
type Body struct {
	Kind           BodyKind
	LinearVelocity mgl32.Vec3
	// Mass 质量，<= 0 时按 DefaultMass 处理
	Mass float32
	// GravityScale 重力倍率，1 为正常重力
	GravityScale float32
}

// NewDynamicBody 创建默认质量、正常重力的动态刚体
func NewDynamicBody(velocity mgl32.Vec3) Body {
	return Body{
		Kind:           BodyDynamic,
		LinearVelocity: velocity,
		Mass:           DefaultMass,
		GravityScale:   1.0,
	}
}

// NewStaticBody 创建静态刚体
func NewStaticBody() Body {
	return Body{Kind: BodyStatic}
}

// EffectiveMass 返回参与碰撞计算的质量
func (b *Body) EffectiveMass() float32 {
	if b.Mass <= 0 {
		return DefaultMass
	}
	return b.Mass
}

// Integrate 半隐式欧拉积分：先更新速度，再用新速度更新位置
// 静态刚体原样返回位置
func (b *Body) Integrate(position, gravity mgl32.Vec3, dt float32) mgl32.Vec3 {
	if b.Kind != BodyDynamic {
		return position
	}
	b.LinearVelocity = b.LinearVelocity.Add(gravity.Mul(b.GravityScale * dt))
	return position.Add(b.LinearVelocity.Mul(dt))
}

// CancelVelocityAlong 去掉速度中朝向 push 反方向的分量
// 用于碰撞解算后让物体停在接触面上（无反弹）
func (b *Body) CancelVelocityAlong(push mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if push[i] > 0 && b.LinearVelocity[i] < 0 {
			b.LinearVelocity[i] = 0
		} else if push[i] < 0 && b.LinearVelocity[i] > 0 {
			b.LinearVelocity[i] = 0
		}
	}
}

// ApplyFriction 对接触中的物体施加水平阻尼
func (b *Body) ApplyFriction(factor, dt float32) {
	damp := 1 - factor*dt
	if damp < 0 {
		damp = 0
	}
	b.LinearVelocity[0] *= damp
	b.LinearVelocity[2] *= damp
}
