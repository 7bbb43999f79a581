package ecs

import "reflect"

// typeOf 返回泛型参数 T 的反射类型，作为存储的键
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// storeOf 返回类型 T 的存储；create 为 true 时不存在则创建
func storeOf[T any](em *EntityManager, create bool) *sparseSet[T] {
	t := typeOf[T]()
	if s, ok := em.stores[t]; ok {
		return s.(*sparseSet[T])
	}
	if !create {
		return nil
	}
	s := newSparseSet[T]()
	em.stores[t] = s
	return s
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
// 实体不存在时忽略
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if !em.IsAlive(id) {
		return
	}
	storeOf[T](em, true).set(id, component)
}

// GetComponent 获取实体的 T 类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	s := storeOf[T](em, false)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.get(id)
}

// HasComponent 检查实体是否拥有 T 类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	s := storeOf[T](em, false)
	return s != nil && s.has(id)
}

// RemoveComponent 从实体移除 T 类型组件
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	if s := storeOf[T](em, false); s != nil {
		s.remove(id)
	}
}

// GetEntitiesWith1 查询拥有组件 A 的所有实体
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.join(typeOf[A]())
}

// GetEntitiesWith2 查询同时拥有组件 A、B 的所有实体
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.join(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 查询同时拥有组件 A、B、C 的所有实体
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.join(typeOf[A](), typeOf[B](), typeOf[C]())
}

// join 对多个存储做交集
// 返回新切片，调用方在遍历期间可以安全地增删组件
func (em *EntityManager) join(types ...reflect.Type) []EntityID {
	stores := make([]componentStore, 0, len(types))
	for _, t := range types {
		s := em.storeFor(t)
		if s == nil || s.len() == 0 {
			return nil
		}
		stores = append(stores, s)
	}

	// 从最小的存储开始遍历
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}

	result := make([]EntityID, 0, stores[smallest].len())
	for _, id := range stores[smallest].entities() {
		hasAll := true
		for i, s := range stores {
			if i != smallest && !s.has(id) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}
	return result
}
