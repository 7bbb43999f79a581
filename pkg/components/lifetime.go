package components

import "time"

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体（如发射出去的小球）
type LifetimeComponent struct {
	MaxLifetime     time.Duration // 最大生命周期
	CurrentLifetime time.Duration // 当前已存在时间
	IsExpired       bool          // 是否已过期
}
