package player

// Side selects which half of the arena a controller is confined to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseSide maps "right" to SideRight and anything else to SideLeft.
func ParseSide(s string) Side {
	if s == "right" {
		return SideRight
	}
	return SideLeft
}

// Config tunes a Controller. Values are per tick; zero fields fall back to
// the defaults in DefaultConfig when passed through WithDefaults.
type Config struct {
	MoveSpeed            float64
	JumpSpeed            float64
	Gravity              float64
	CrouchScale          float64
	NormalScale          float64
	ScaleTransitionSpeed float64
	PlayerWidth          float64
	Side                 Side
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:            5,
		JumpSpeed:            15,
		Gravity:              0.8,
		CrouchScale:          0.7,
		NormalScale:          1.25,
		ScaleTransitionSpeed: 0.15,
		PlayerWidth:          200,
		Side:                 SideLeft,
	}
}

// WithDefaults fills every zero field from DefaultConfig. Negative values are
// kept as given.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.MoveSpeed == 0 {
		c.MoveSpeed = d.MoveSpeed
	}
	if c.JumpSpeed == 0 {
		c.JumpSpeed = d.JumpSpeed
	}
	if c.Gravity == 0 {
		c.Gravity = d.Gravity
	}
	if c.CrouchScale == 0 {
		c.CrouchScale = d.CrouchScale
	}
	if c.NormalScale == 0 {
		c.NormalScale = d.NormalScale
	}
	if c.ScaleTransitionSpeed == 0 {
		c.ScaleTransitionSpeed = d.ScaleTransitionSpeed
	}
	if c.PlayerWidth == 0 {
		c.PlayerWidth = d.PlayerWidth
	}
	return c
}
