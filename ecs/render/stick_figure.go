package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/stickfighter/pose"
	"github.com/milk9111/stickfighter/prefabs"
)

var (
	labelText       = color.White
	labelBackground = color.NRGBA{A: 178}
)

// Style is the resolved drawing size of a stick figure.
type Style struct {
	StrokeWidth   float64
	LabelFontSize float64
	ShowLabels    bool
}

// StickFigure draws the bones of one skeleton. It keeps the local keypoints
// it was given and maps them to the screen at draw time.
type StickFigure struct {
	style     Style
	local     pose.Keypoints
	frame     pose.Frame
	visible   bool
	destroyed bool
}

func NewStickFigure(style Style) *StickFigure {
	return &StickFigure{
		style:   style,
		frame:   pose.Frame{ScaleX: 1},
		visible: true,
	}
}

func (s *StickFigure) SetKeypoints(p pose.Partial) {
	s.local = s.local.Merge(p)
}

func (s *StickFigure) SetPosition(x, y float64) {
	s.frame.X = x
	s.frame.Y = y
}

func (s *StickFigure) SetScaleX(sign float64) {
	s.frame.ScaleX = sign
}

func (s *StickFigure) SetVisible(visible bool) {
	s.visible = visible
}

func (s *StickFigure) Destroy() {
	s.destroyed = true
	s.visible = false
}

// StyleFor converts a resolved skeleton to a drawing style.
func StyleFor(sk prefabs.Skeleton) Style {
	return Style{
		StrokeWidth:   sk.StrokeWidth,
		LabelFontSize: sk.LabelFontSize,
		ShowLabels:    sk.ShowLabels,
	}
}

// ApplySkeleton resizes strokes and labels. The label toggle is left alone.
func (s *StickFigure) ApplySkeleton(sk prefabs.Skeleton) {
	show := s.style.ShowLabels
	s.style = StyleFor(sk)
	s.style.ShowLabels = show
}

func (s *StickFigure) SetShowLabels(show bool) {
	s.style.ShowLabels = show
}

func (s *StickFigure) Draw(screen *ebiten.Image) {
	if screen == nil || !s.visible || s.destroyed {
		return
	}

	k := s.frame.Apply(s.local)
	width := float32(s.style.StrokeWidth)

	for _, b := range pose.Bones {
		from, to := k[b.From], k[b.To]
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), width, b.Color, true)
	}

	// round the joints
	for _, b := range pose.Bones {
		for _, kp := range [2]pose.Keypoint{b.From, b.To} {
			p := k[kp]
			vector.FillCircle(screen, float32(p.X), float32(p.Y), width/2, b.Color, true)
		}
	}

	if s.style.ShowLabels {
		s.drawLabels(screen, k)
	}
}

func (s *StickFigure) drawLabels(screen *ebiten.Image, k pose.Keypoints) {
	size := s.style.LabelFontSize
	face := LabelFace(size)
	pad := size * 0.3

	for i := range k {
		kp := pose.Keypoint(i)
		label := kp.Label()
		w, h := text.Measure(label, face, 0)

		x := k[i].X - w/2
		y := k[i].Y - size*1.5 - h/2
		vector.FillRect(screen, float32(x-pad), float32(y-pad), float32(w+2*pad), float32(h+2*pad), labelBackground, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(labelText)
		text.Draw(screen, label, face, op)
	}
}
