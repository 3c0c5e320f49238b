// Package arena holds the ground line and viewport that all fighter
// positions are measured against.
package arena

import "github.com/milk9111/stickfighter/common"

const (
	DefaultGroundRatio     = 0.85
	DefaultGroundTolerance = 1.0
)

// Config seeds a World. A nil GroundY derives the ground line from
// GroundRatio and the view height.
type Config struct {
	ViewWidth   float64
	ViewHeight  float64
	GroundRatio float64
	GroundY     *float64
}

// World is shared by every controller and animator in a match. It is only
// mutated between ticks, on resize or explicit override.
type World struct {
	groundY     float64
	viewWidth   float64
	viewHeight  float64
	groundRatio float64
	overridden  bool
}

func NewWorld(cfg Config) *World {
	w := &World{
		viewWidth:   cfg.ViewWidth,
		viewHeight:  cfg.ViewHeight,
		groundRatio: cfg.GroundRatio,
	}
	if w.groundRatio <= 0 {
		w.groundRatio = DefaultGroundRatio
	}
	if cfg.GroundY != nil {
		w.SetGroundY(*cfg.GroundY)
	} else {
		w.groundY = w.clampGround(w.viewHeight * w.groundRatio)
	}
	return w
}

func (w *World) GroundY() float64 {
	return w.groundY
}

// SetGroundY overrides the ground line. The override survives resizes.
func (w *World) SetGroundY(y float64) {
	w.overridden = true
	w.groundY = w.clampGround(y)
}

// SetGroundRatio changes the ratio a derived ground line is taken from and
// re-derives it. Non-positive ratios fall back to DefaultGroundRatio.
func (w *World) SetGroundRatio(ratio float64) {
	if ratio <= 0 {
		ratio = DefaultGroundRatio
	}
	w.groundRatio = ratio
	if !w.overridden {
		w.groundY = w.clampGround(w.viewHeight * ratio)
	}
}

func (w *World) ViewWidth() float64 {
	return w.viewWidth
}

func (w *World) ViewHeight() float64 {
	return w.viewHeight
}

func (w *World) Bounds() (width, height float64) {
	return w.viewWidth, w.viewHeight
}

// UpdateViewSize records a new viewport. A derived ground line follows the
// new height; an overridden one is only clamped back into the view.
func (w *World) UpdateViewSize(width, height float64) {
	w.viewWidth = width
	w.viewHeight = height
	if !w.overridden {
		w.groundY = height * w.groundRatio
	}
	w.groundY = w.clampGround(w.groundY)
}

func (w *World) IsOnGround(y, tolerance float64) bool {
	d := y - w.groundY
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// ClampToGround keeps y at or above the ground line (y grows downward).
func (w *World) ClampToGround(y float64) float64 {
	return min(y, w.groundY)
}

func (w *World) clampGround(y float64) float64 {
	return common.Clamp(y, 0, max(w.viewHeight, 0))
}
