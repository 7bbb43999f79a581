package components

import "github.com/decker502/cubesandbox/pkg/physics"

// RigidBodyComponent 刚体组件（速度、质量、重力倍率）
type RigidBodyComponent struct {
	physics.Body
}
