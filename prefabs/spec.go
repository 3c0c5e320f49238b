package prefabs

import (
	"fmt"
	"math"

	"github.com/milk9111/stickfighter/arena"
	"github.com/milk9111/stickfighter/player"
	"github.com/milk9111/stickfighter/pose"
	"gopkg.in/yaml.v3"
)

const (
	ArenaSpecFile  = "arena.yaml"
	PlayerSpecFile = "player.yaml"
	CPUSpecFile    = "cpu.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ArenaSpec struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	GroundRatio float64  `yaml:"ground_ratio"`
	GroundY     *float64 `yaml:"ground_y"`
	GroundColor string   `yaml:"ground_color"`
}

func LoadArenaSpec() (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](ArenaSpecFile)
}

// WorldConfig sizes the arena. Non-positive width or height override the
// spec's values.
func (s ArenaSpec) WorldConfig(width, height float64) arena.Config {
	if width <= 0 {
		width = s.Width
	}
	if height <= 0 {
		height = s.Height
	}
	return arena.Config{
		ViewWidth:   width,
		ViewHeight:  height,
		GroundRatio: s.GroundRatio,
		GroundY:     s.GroundY,
	}
}

type MovementSpec struct {
	MoveSpeed            float64 `yaml:"move_speed"`
	JumpSpeed            float64 `yaml:"jump_speed"`
	Gravity              float64 `yaml:"gravity"`
	CrouchScale          float64 `yaml:"crouch_scale"`
	NormalScale          float64 `yaml:"normal_scale"`
	ScaleTransitionSpeed float64 `yaml:"scale_transition_speed"`
	PlayerWidth          float64 `yaml:"player_width"`
}

// SkeletonSpec sizes the stick figure relative to the view height.
type SkeletonSpec struct {
	SizeRatio        float64 `yaml:"size_ratio"`
	HeadRatio        float64 `yaml:"head_ratio"`
	StrokeRatio      float64 `yaml:"stroke_ratio"`
	MinStroke        float64 `yaml:"min_stroke"`
	LabelRatio       float64 `yaml:"label_ratio"`
	MinLabelFontSize float64 `yaml:"min_label_font_size"`
	ShowLabels       bool    `yaml:"show_labels"`
}

type AnimationSpec struct {
	BlendStep     float64 `yaml:"blend_step"`
	WalkFrequency float64 `yaml:"walk_frequency"`
	SwingRatio    float64 `yaml:"swing_ratio"`
}

// FighterSpec is the tuning for one fighter, keyboard or scripted.
type FighterSpec struct {
	Name       string        `yaml:"name"`
	Side       string        `yaml:"side"`
	SpawnRatio float64       `yaml:"spawn_ratio"`
	Script     string        `yaml:"script"`
	Movement   MovementSpec  `yaml:"movement"`
	Skeleton   SkeletonSpec  `yaml:"skeleton"`
	Animation  AnimationSpec `yaml:"animation"`
}

func LoadFighterSpec(filename string) (FighterSpec, error) {
	return LoadSpec[FighterSpec](filename)
}

func (s FighterSpec) PlayerConfig() player.Config {
	m := s.Movement
	return player.Config{
		MoveSpeed:            m.MoveSpeed,
		JumpSpeed:            m.JumpSpeed,
		Gravity:              m.Gravity,
		CrouchScale:          m.CrouchScale,
		NormalScale:          m.NormalScale,
		ScaleTransitionSpeed: m.ScaleTransitionSpeed,
		PlayerWidth:          m.PlayerWidth,
		Side:                 player.ParseSide(s.Side),
	}.WithDefaults()
}

func (s FighterSpec) AnimatorConfig() pose.AnimatorConfig {
	return pose.AnimatorConfig{
		BlendStep:     s.Animation.BlendStep,
		WalkFrequency: s.Animation.WalkFrequency,
		SwingRatio:    s.Animation.SwingRatio,
	}.WithDefaults()
}

// SpawnX places the fighter at spawn_ratio of the view width, defaulting to
// the middle of its half.
func (s FighterSpec) SpawnX(viewWidth float64) float64 {
	r := s.SpawnRatio
	if r <= 0 {
		r = 0.25
		if player.ParseSide(s.Side) == player.SideRight {
			r = 0.75
		}
	}
	return viewWidth * r
}

// Skeleton is the resolved drawing size of a fighter.
type Skeleton struct {
	Body          pose.Body
	StrokeWidth   float64
	LabelFontSize float64
	ShowLabels    bool
}

func (s SkeletonSpec) withDefaults() SkeletonSpec {
	if s.SizeRatio == 0 {
		s.SizeRatio = 0.4
	}
	if s.HeadRatio == 0 {
		s.HeadRatio = 0.1
	}
	if s.StrokeRatio == 0 {
		s.StrokeRatio = 0.005
	}
	if s.MinStroke == 0 {
		s.MinStroke = 4
	}
	if s.LabelRatio == 0 {
		s.LabelRatio = 0.015
	}
	if s.MinLabelFontSize == 0 {
		s.MinLabelFontSize = 10
	}
	return s
}

// Resolve sizes the skeleton for a view of the given height.
func (s SkeletonSpec) Resolve(viewHeight float64) Skeleton {
	s = s.withDefaults()
	size := s.SizeRatio * viewHeight
	return Skeleton{
		Body:          pose.Body{Size: size, HeadRadius: s.HeadRatio * size},
		StrokeWidth:   math.Max(s.MinStroke, s.StrokeRatio*size),
		LabelFontSize: math.Max(s.MinLabelFontSize, s.LabelRatio*size),
		ShowLabels:    s.ShowLabels,
	}
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PoseSpec is a snapshot of a fighter's animator, written out by the debug
// pose dump.
type PoseSpec struct {
	Fighter   string               `yaml:"fighter"`
	Current   string               `yaml:"current"`
	Target    string               `yaml:"target"`
	Blend     float64              `yaml:"blend"`
	WalkPhase int                  `yaml:"walk_phase"`
	Facing    string               `yaml:"facing"`
	X         float64              `yaml:"x"`
	Y         float64              `yaml:"y"`
	Keypoints map[string]PointSpec `yaml:"keypoints"`
}

func NewPoseSpec(name string, a *pose.Animator) PoseSpec {
	f := a.Frame()
	k := a.Keypoints()
	spec := PoseSpec{
		Fighter:   name,
		Current:   a.CurrentPose().String(),
		Target:    a.TargetPose().String(),
		Blend:     a.BlendFactor(),
		WalkPhase: a.WalkPhase(),
		Facing:    a.Facing().String(),
		X:         f.X,
		Y:         f.Y,
		Keypoints: make(map[string]PointSpec, pose.KeypointCount),
	}
	for i := range k {
		spec.Keypoints[pose.Keypoint(i).Name()] = PointSpec{X: k[i].X, Y: k[i].Y}
	}
	return spec
}

func EncodePoses(poses []PoseSpec) ([]byte, error) {
	out, err := yaml.Marshal(poses)
	if err != nil {
		return nil, fmt.Errorf("prefabs: encode poses: %w", err)
	}
	return out, nil
}
