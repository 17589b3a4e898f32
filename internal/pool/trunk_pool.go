// Package pool reuses trunk segment entities between trees.
package pool

import (
	"log"

	"go-timber/internal/component"
	"go-timber/internal/config"
	"go-timber/internal/entity"
	"go-timber/internal/types"
)

// TrunkPool hands out trunk entities and takes them back. Ownership is an
// explicit flag on the Trunk component: a segment is either in the free stack
// (OwnerPool) or handed out (OwnerTree), never both.
type TrunkPool struct {
	ecs     *entity.ECS
	root    types.EntityID // контейнер, к которому привязаны свободные сегменты
	free    []types.EntityID
	inUse   map[types.EntityID]struct{}
	created int
}

// NewTrunkPool creates an empty pool. Capacity grows on demand.
func NewTrunkPool(ecs *entity.ECS) *TrunkPool {
	root := ecs.NewEntity()
	ecs.SetPosition(root, types.Vec3{})
	return &TrunkPool{
		ecs:   ecs,
		root:  root,
		inUse: make(map[types.EntityID]struct{}),
	}
}

// Root returns the holding container entity.
func (p *TrunkPool) Root() types.EntityID {
	return p.root
}

// Prewarm создает n свободных сегментов заранее.
func (p *TrunkPool) Prewarm(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, p.newTrunk())
	}
}

// Acquire returns a segment positioned at position under parent.
func (p *TrunkPool) Acquire(position types.Vec3, parent types.EntityID) types.EntityID {
	var id types.EntityID
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		id = p.newTrunk()
		log.Printf("[TrunkPool] grew to %d segments", p.created)
	}

	t := p.ecs.Transforms[id]
	t.Local = position
	t.Parent = parent

	trunk := p.ecs.Trunks[id]
	trunk.Active = true
	trunk.Owner = component.OwnerTree
	p.inUse[id] = struct{}{}
	return id
}

// Release deactivates the segment and reparents it to the pool root.
// Releasing an unknown or already free segment is ignored.
func (p *TrunkPool) Release(id types.EntityID) {
	if _, ok := p.inUse[id]; !ok {
		return
	}
	delete(p.inUse, id)

	trunk := p.ecs.Trunks[id]
	trunk.Active = false
	trunk.Owner = component.OwnerPool

	t := p.ecs.Transforms[id]
	t.Parent = p.root
	t.Local = types.Vec3{}

	p.free = append(p.free, id)
}

// BelongsToPool сообщает, находится ли сегмент в пуле.
func (p *TrunkPool) BelongsToPool(id types.EntityID) bool {
	trunk, ok := p.ecs.Trunks[id]
	return ok && trunk.Owner == component.OwnerPool
}

// Free returns the number of idle segments.
func (p *TrunkPool) Free() int { return len(p.free) }

// InUse returns the number of segments handed out.
func (p *TrunkPool) InUse() int { return len(p.inUse) }

// Created returns how many segments the pool ever allocated.
func (p *TrunkPool) Created() int { return p.created }

func (p *TrunkPool) newTrunk() types.EntityID {
	id := p.ecs.NewEntity()
	p.ecs.Transforms[id] = &component.Transform{Parent: p.root}
	p.ecs.Trunks[id] = &component.Trunk{Owner: component.OwnerPool}
	col := config.TrunkColor
	if id%2 == 0 {
		col = config.TrunkAltColor
	}
	p.ecs.Renderables[id] = &component.Renderable{
		Color:     col,
		Width:     float32(config.TrunkWidth),
		HasStroke: true,
	}
	p.created++
	return id
}
