// internal/entity/ecs.go
package entity

import (
	"go-timber/internal/component"
	"go-timber/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Transforms  map[types.EntityID]*component.Transform
	Trunks      map[types.EntityID]*component.Trunk
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Trunks:      make(map[types.EntityID]*component.Trunk),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// WorldPosition складывает локальные позиции по цепочке родителей.
func (ecs *ECS) WorldPosition(id types.EntityID) types.Vec3 {
	var pos types.Vec3
	for depth := 0; id != 0 && depth < 16; depth++ {
		t, ok := ecs.Transforms[id]
		if !ok {
			break
		}
		pos = pos.Add(t.Local)
		id = t.Parent
	}
	return pos
}

// SetPosition задает локальную позицию, создавая Transform при необходимости.
func (ecs *ECS) SetPosition(id types.EntityID, pos types.Vec3) {
	if t, ok := ecs.Transforms[id]; ok {
		t.Local = pos
		return
	}
	ecs.Transforms[id] = &component.Transform{Local: pos}
}

// Position возвращает локальную позицию сущности.
func (ecs *ECS) Position(id types.EntityID) types.Vec3 {
	if t, ok := ecs.Transforms[id]; ok {
		return t.Local
	}
	return types.Vec3{}
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Trunks, id)
	delete(ecs.Renderables, id)
}
