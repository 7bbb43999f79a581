package systems

import (
	"time"

	"github.com/decker502/cubesandbox/pkg/components"
	"github.com/decker502/cubesandbox/pkg/ecs"
)

// TweenSizeSystem 驱动渲染尺寸补间
//
// 每帧先用推进前的进度写入 TransformComponent.Scale，再推进已累计时间。
// 补间完成后不会被移除，之后每帧都写入 EndSize。
type TweenSizeSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSizeSystem 创建渲染尺寸补间系统
func NewTweenSizeSystem(em *ecs.EntityManager) *TweenSizeSystem {
	return &TweenSizeSystem{entityManager: em}
}

// Update 更新所有同时拥有 TweenSizeComponent 和 TransformComponent 的实体
func (s *TweenSizeSystem) Update(dt time.Duration) {
	entities := ecs.GetEntitiesWith2[*components.TweenSizeComponent, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.TweenSizeComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Scale = tween.Current()
		tween.Advance(dt)
	}
}
