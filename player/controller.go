// Package player implements the kinematic controller for one fighter.
//
// Coordinates follow the screen convention: x grows to the right and y grows
// downward, so a jump starts with a negative vertical velocity and the ground
// line is the largest y a fighter can reach.
package player

import "github.com/milk9111/stickfighter/common"

// Ground is the part of the arena a controller reads every tick.
type Ground interface {
	GroundY() float64
	Bounds() (width, height float64)
}

// State is the kinematic snapshot of a fighter. It carries no pose or visual
// fields; those belong to the animator.
type State struct {
	X           float64
	Y           float64
	VelocityX   float64
	VelocityY   float64
	IsJumping   bool
	IsCrouching bool
	IsOnGround  bool
	GroundY     float64
	Scale       float64
}

// Controller owns one fighter's State. Intent methods may be called at any
// point between ticks; they take effect on the next Update.
type Controller struct {
	state  State
	cfg    Config
	ground Ground
}

func NewController(ground Ground, initialX float64, cfg Config) *Controller {
	cfg = cfg.WithDefaults()
	groundY := ground.GroundY()
	return &Controller{
		ground: ground,
		cfg:    cfg,
		state: State{
			X:          initialX,
			Y:          groundY,
			IsOnGround: true,
			GroundY:    groundY,
			Scale:      cfg.NormalScale,
		},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning without touching the kinematic state.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg.WithDefaults()
}

// UpdateGroundY re-reads the ground line. A grounded fighter is kept glued
// to it.
func (c *Controller) UpdateGroundY() {
	groundY := c.ground.GroundY()
	if c.state.IsOnGround && !c.state.IsJumping {
		c.state.Y = groundY
	}
	c.state.GroundY = groundY
}

func (c *Controller) MoveLeft() {
	c.state.VelocityX = -c.cfg.MoveSpeed
}

func (c *Controller) MoveRight() {
	c.state.VelocityX = c.cfg.MoveSpeed
}

func (c *Controller) StopHorizontalMovement() {
	c.state.VelocityX = 0
}

// Jump only takes off from the ground; otherwise it is silently ignored.
func (c *Controller) Jump() {
	if !c.state.IsOnGround || c.state.IsJumping {
		return
	}
	c.state.IsJumping = true
	c.state.IsOnGround = false
	c.state.VelocityY = -c.cfg.JumpSpeed
}

// StartCrouch only flags the state. The crouch has no physical size; the
// animator draws it.
func (c *Controller) StartCrouch() {
	c.state.IsCrouching = true
}

func (c *Controller) StopCrouch() {
	c.state.IsCrouching = false
}

// Update advances the fighter by one tick.
func (c *Controller) Update() {
	c.state.X += c.state.VelocityX
	lo, hi := c.HorizontalBounds()
	c.state.X = common.Clamp(c.state.X, lo, hi)

	if c.state.IsJumping {
		c.state.VelocityY += c.cfg.Gravity
		c.state.Y += c.state.VelocityY

		// floor only, no ceiling
		if c.state.Y >= c.state.GroundY {
			c.state.Y = c.state.GroundY
			c.state.VelocityY = 0
			c.state.IsJumping = false
			c.state.IsOnGround = true
		}
	}

	c.state.Scale = c.cfg.NormalScale
}

// HorizontalBounds is the range x is clamped into: the controller's half of
// the arena, inset by half the fighter width.
func (c *Controller) HorizontalBounds() (lo, hi float64) {
	viewWidth, _ := c.ground.Bounds()
	half := c.cfg.PlayerWidth / 2
	if c.cfg.Side == SideRight {
		return viewWidth/2 + half, viewWidth - half
	}
	return half, viewWidth/2 - half
}

// ResetPosition puts the fighter back on the ground at x with no velocity,
// as at the start of a round.
func (c *Controller) ResetPosition(x float64) {
	groundY := c.ground.GroundY()
	c.state.X = x
	c.state.Y = groundY
	c.state.GroundY = groundY
	c.state.VelocityX = 0
	c.state.VelocityY = 0
	c.state.IsJumping = false
	c.state.IsOnGround = true
}
