// internal/system/render.go
package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-timber/internal/component"
	"go-timber/internal/config"
	"go-timber/internal/entity"
	"go-timber/internal/types"
	"go-timber/pkg/render"
)

// Camera переводит мировые координаты в экранные.
type Camera struct {
	CenterX       float64 // экранный X для мировой точки OriginX
	GroundY       float64 // экранный Y для мировой высоты 0
	OriginX       float64
	RefDepth      float64 // глубина, на которой масштаб равен 1
	PixelsPerUnit float64
}

// NewCamera смотрит на дерево, стоящее в origin.
func NewCamera(origin types.Vec3) Camera {
	return Camera{
		CenterX:       config.ScreenWidth / 2,
		GroundY:       config.GroundY,
		OriginX:       origin.X,
		RefDepth:      origin.Z,
		PixelsPerUnit: config.PixelsPerUnit,
	}
}

// Project возвращает экранные координаты и масштаб для точки p.
func (c Camera) Project(p types.Vec3) (x, y, scale float64) {
	scale = 1
	if p.Z > 0 && c.RefDepth > 0 {
		scale = c.RefDepth / p.Z
	}
	ppu := c.PixelsPerUnit * scale
	return c.CenterX + (p.X-c.OriginX)*ppu, c.GroundY - p.Y*ppu, scale
}

// RenderSystem рисует сегменты ствола, которые сейчас принадлежат дереву.
type RenderSystem struct {
	ecs       *entity.ECS
	camera    Camera
	trunkSize float64
	visible   []types.EntityID
}

func NewRenderSystem(ecs *entity.ECS, camera Camera, trunkSize float64) *RenderSystem {
	return &RenderSystem{ecs: ecs, camera: camera, trunkSize: trunkSize}
}

// VisibleTrunks возвращает активные сегменты дерева снизу вверх.
func (s *RenderSystem) VisibleTrunks() []types.EntityID {
	s.visible = s.visible[:0]
	for id, trunk := range s.ecs.Trunks {
		if trunk.Active && trunk.Owner == component.OwnerTree {
			s.visible = append(s.visible, id)
		}
	}
	sort.Slice(s.visible, func(i, j int) bool {
		return s.ecs.WorldPosition(s.visible[i]).Y < s.ecs.WorldPosition(s.visible[j]).Y
	})
	return s.visible
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, id := range s.VisibleTrunks() {
		r, ok := s.ecs.Renderables[id]
		if !ok {
			continue
		}
		// позиция сегмента — его верхняя грань
		x, y, scale := s.camera.Project(s.ecs.WorldPosition(id))
		ppu := s.camera.PixelsPerUnit * scale
		w := float32(float64(r.Width) * ppu)
		h := float32((s.trunkSize - config.TrunkGap) * ppu)
		left, top := float32(x)-w/2, float32(y)

		vector.DrawFilledRect(screen, left, top, w, h, r.Color, false)
		if r.HasStroke {
			vector.StrokeRect(screen, left, top, w, h, 2, render.DarkenColor(r.Color), false)
		}
	}

	// земля перекрывает сегменты, которые еще под ней
	vector.DrawFilledRect(screen, 0, float32(s.camera.GroundY), config.ScreenWidth,
		float32(config.ScreenHeight-s.camera.GroundY), config.GroundColor, false)
}
