package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 0 保留为无效ID，用于表示"实体不存在"
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 每种组件类型对应一个独立的稀疏集合存储（componentStore），
// 查询时对所需组件类型的存储做连接（join），从最小的存储开始遍历。
type EntityManager struct {
	nextID uint64
	// 存活实体集合
	alive map[EntityID]struct{}
	// 组件类型 -> 该类型的存储
	stores map[reflect.Type]componentStore
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             make(map[EntityID]struct{}),
		stores:            make(map[reflect.Type]componentStore),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive[id] = struct{}{}
	return id
}

// IsAlive 检查实体是否存在（已标记删除但尚未清理的实体仍视为存在）
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// EntityCount 返回当前存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.alive)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		return
	}
	for _, pending := range em.entitiesToDestroy {
		if pending == id {
			return
		}
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 在每帧末尾调用，保证系统遍历期间存储不被修改
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		for _, store := range em.stores {
			store.remove(id)
		}
		delete(em.alive, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// PendingDestroyCount 返回待删除实体数量
func (em *EntityManager) PendingDestroyCount() int {
	return len(em.entitiesToDestroy)
}

// storeFor 返回类型 t 的存储，不存在时返回 nil
func (em *EntityManager) storeFor(t reflect.Type) componentStore {
	return em.stores[t]
}
