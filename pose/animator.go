package pose

import (
	"github.com/milk9111/stickfighter/common"
	"github.com/milk9111/stickfighter/player"
)

// blendEpsilon absorbs float drift when the blend steps sum to one.
const blendEpsilon = 1e-9

// AnimatorConfig tunes blending and the walk cycle.
type AnimatorConfig struct {
	// BlendStep is the raw blend progress added per tick.
	BlendStep float64
	// WalkFrequency is the sinusoid phase advance per walking tick.
	WalkFrequency float64
	// SwingRatio scales limb swing by body size.
	SwingRatio float64
}

func DefaultAnimatorConfig() AnimatorConfig {
	return AnimatorConfig{
		BlendStep:     0.2,
		WalkFrequency: 0.025,
		SwingRatio:    0.15,
	}
}

func (c AnimatorConfig) WithDefaults() AnimatorConfig {
	d := DefaultAnimatorConfig()
	if c.BlendStep == 0 {
		c.BlendStep = d.BlendStep
	}
	if c.WalkFrequency == 0 {
		c.WalkFrequency = d.WalkFrequency
	}
	if c.SwingRatio == 0 {
		c.SwingRatio = d.SwingRatio
	}
	return c
}

// Transition describes a change of target variant seen by Update.
type Transition struct {
	From, To Variant
}

// Animator owns the visual state of one skeleton and pushes it to a
// Renderer once per tick.
type Animator struct {
	body     Body
	cfg      AnimatorConfig
	renderer Renderer

	standing Keypoints
	current  Keypoints

	currentPose Variant
	targetPose  Variant
	blend       float64
	walkPhase   int
	facing      Facing
	frame       Frame
}

// NewAnimator starts fully arrived at Idle, facing right. The renderer may be
// nil for headless use.
func NewAnimator(body Body, cfg AnimatorConfig, renderer Renderer) *Animator {
	a := &Animator{
		body:        body,
		cfg:         cfg.WithDefaults(),
		renderer:    renderer,
		currentPose: Idle,
		targetPose:  Idle,
		blend:       1,
		facing:      FacingRight,
		frame:       Frame{ScaleX: 1},
	}
	a.standing = body.Standing()
	a.current = a.standing
	if a.renderer != nil {
		a.renderer.SetKeypoints(a.current.Partial())
		a.renderer.SetScaleX(a.facing.Sign())
	}
	return a
}

// SetBody rebuilds the standing layout for a new size. The blend is left
// alone: an arrived pose snaps to the resized target on the next tick and a
// pose still blending carries on toward it.
func (a *Animator) SetBody(body Body) {
	a.body = body
	a.standing = body.Standing()
}

func (a *Animator) SetConfig(cfg AnimatorConfig) {
	a.cfg = cfg.WithDefaults()
}

func (a *Animator) Body() Body                 { return a.body }
func (a *Animator) Config() AnimatorConfig     { return a.cfg }
func (a *Animator) CurrentPose() Variant       { return a.currentPose }
func (a *Animator) TargetPose() Variant        { return a.targetPose }
func (a *Animator) BlendFactor() float64       { return a.blend }
func (a *Animator) WalkPhase() int             { return a.walkPhase }
func (a *Animator) Facing() Facing             { return a.facing }
func (a *Animator) Frame() Frame               { return a.frame }
func (a *Animator) Keypoints() Keypoints       { return a.current }
func (a *Animator) ScreenKeypoints() Keypoints { return a.frame.Apply(a.current) }

// Update advances the animation by one tick from the fighter's state. The
// returned transition is non-nil only on ticks where the target changed.
func (a *Animator) Update(s player.State) *Transition {
	selected, facing := SelectVariant(s, a.facing)

	var tr *Transition
	if selected != a.targetPose {
		// Restarts from the current mid-blend keypoints on a double switch.
		tr = &Transition{From: a.targetPose, To: selected}
		a.targetPose = selected
		a.blend = 0
	}

	target := a.target()

	if a.blend < 1 {
		a.blend = min(1, a.blend+a.cfg.BlendStep)
		if a.blend > 1-blendEpsilon {
			a.blend = 1
		}
		a.current = a.current.Lerp(target, common.EaseOut(a.blend))
		if a.blend >= 1 {
			a.currentPose = a.targetPose
			a.current = target
		}
	} else {
		a.current = target
	}

	if a.renderer != nil {
		a.renderer.SetKeypoints(a.current.Partial())
	}

	if facing != a.facing {
		a.facing = facing
		a.frame.ScaleX = facing.Sign()
		if a.renderer != nil {
			a.renderer.SetScaleX(a.frame.ScaleX)
		}
	}

	// s.Y is the foot line; centre the figure's height above it.
	a.frame.X = s.X
	a.frame.Y = s.Y - a.current.Height()/2
	if a.renderer != nil {
		a.renderer.SetPosition(a.frame.X, a.frame.Y)
	}

	return tr
}

// target builds this tick's target keypoints and advances the walk phase.
func (a *Animator) target() Keypoints {
	target := a.body.Variant(a.standing, a.targetPose)
	if !a.targetPose.Walking() {
		a.walkPhase = 0
		return target
	}
	a.walkPhase++
	return WalkCycle(target, a.walkPhase, a.cfg.WalkFrequency, a.body.Size*a.cfg.SwingRatio)
}

func (a *Animator) SetVisible(visible bool) {
	if a.renderer != nil {
		a.renderer.SetVisible(visible)
	}
}

// Destroy releases the renderer. The animator must not be updated after.
func (a *Animator) Destroy() {
	if a.renderer != nil {
		a.renderer.Destroy()
		a.renderer = nil
	}
}
