package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stickfighter/arena"
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"golang.org/x/image/colornames"
)

// Drawable is a pose renderer that can paint itself.
type Drawable interface {
	Draw(screen *ebiten.Image)
}

// RenderSystem draws the ground line and every fighter's figure.
type RenderSystem struct {
	GroundColor  string
	GroundStroke float32
	arena        *arena.World
}

func NewRenderSystem(a *arena.World, groundColor string) *RenderSystem {
	return &RenderSystem{arena: a, GroundColor: groundColor, GroundStroke: 2}
}

// Update is a no-op (render occurs in Draw).
func (s *RenderSystem) Update(w *ecs.World) {}

func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	if s.arena != nil {
		c, ok := colornames.Map[s.GroundColor]
		if !ok {
			c = colornames.Dimgray
		}
		y := float32(s.arena.GroundY())
		vector.StrokeLine(screen, 0, y, float32(s.arena.ViewWidth()), y, s.GroundStroke, c, true)
	}

	ecs.ForEach(w, component.PoseComponent.Kind(), func(e ecs.Entity, pc *component.Pose) {
		if d, ok := pc.Renderer.(Drawable); ok {
			d.Draw(screen)
		}
	})
}
