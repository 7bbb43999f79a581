package ecs

// componentStore 是类型擦除后的组件存储接口
// EntityManager 通过它完成跨类型的删除和连接查询
type componentStore interface {
	has(id EntityID) bool
	remove(id EntityID)
	len() int
	entities() []EntityID
}

// sparseSet 是单一组件类型的稀疏集合存储
//
// dense/data 两个切片按相同下标对齐，index 记录实体在 dense 中的位置。
// 删除时用最后一个元素填补空位，遍历顺序因此只在删除后改变。
type sparseSet[T any] struct {
	index map[EntityID]int
	dense []EntityID
	data  []T
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{
		index: make(map[EntityID]int),
		dense: make([]EntityID, 0, 64),
		data:  make([]T, 0, 64),
	}
}

// set 插入或覆盖组件
func (s *sparseSet[T]) set(id EntityID, value T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = value
		return
	}
	s.index[id] = len(s.dense)
	s.dense = append(s.dense, id)
	s.data = append(s.data, value)
}

func (s *sparseSet[T]) get(id EntityID) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.data[i], true
}

func (s *sparseSet[T]) has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *sparseSet[T]) remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.dense) - 1
	if i != last {
		s.dense[i] = s.dense[last]
		s.data[i] = s.data[last]
		s.index[s.dense[i]] = i
	}
	var zero T
	s.data[last] = zero
	s.dense = s.dense[:last]
	s.data = s.data[:last]
	delete(s.index, id)
}

func (s *sparseSet[T]) len() int {
	return len(s.dense)
}

func (s *sparseSet[T]) entities() []EntityID {
	return s.dense
}
