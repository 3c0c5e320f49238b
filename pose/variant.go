package pose

import "github.com/milk9111/stickfighter/player"

// Variant is one of the discrete target layouts.
type Variant int

const (
	Idle Variant = iota
	Crouch
	Jump
	WalkLeft
	WalkRight

	variantCount
)

var variantNames = [variantCount]string{
	Idle:      "idle",
	Crouch:    "crouch",
	Jump:      "jump",
	WalkLeft:  "walk_left",
	WalkRight: "walk_right",
}

func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return variantNames[v]
}

func (v Variant) Walking() bool {
	return v == WalkLeft || v == WalkRight
}

// Facing is the horizontal direction the figure is drawn toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign is the horizontal scale applied to the drawn figure.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// SelectVariant picks the target variant for a state, first match wins:
// grounded crouch, jump, walk left, walk right, idle. Facing only changes
// while walking, so a stationary figure keeps the last direction.
func SelectVariant(s player.State, facing Facing) (Variant, Facing) {
	switch {
	case s.IsCrouching && s.IsOnGround:
		return Crouch, facing
	case s.IsJumping:
		return Jump, facing
	case s.VelocityX < 0:
		return WalkLeft, FacingLeft
	case s.VelocityX > 0:
		return WalkRight, FacingRight
	default:
		return Idle, facing
	}
}
