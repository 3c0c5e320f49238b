package entity

import (
	"strings"
	"testing"

	"github.com/milk9111/stickfighter/arena"
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"github.com/milk9111/stickfighter/player"
	"github.com/milk9111/stickfighter/pose"
	"github.com/milk9111/stickfighter/prefabs"
)

type stubRenderer struct {
	skeleton prefabs.Skeleton
	applied  int
}

func (s *stubRenderer) SetKeypoints(pose.Partial) {}
func (s *stubRenderer) SetPosition(x, y float64)  {}
func (s *stubRenderer) SetScaleX(sign float64)    {}
func (s *stubRenderer) SetVisible(visible bool)   {}
func (s *stubRenderer) Destroy()                  {}
func (s *stubRenderer) ApplySkeleton(sk prefabs.Skeleton) {
	s.skeleton = sk
	s.applied++
}

func newArena() *arena.World {
	return arena.NewWorld(arena.Config{ViewWidth: 1280, ViewHeight: 720})
}

func TestBuildFighters(t *testing.T) {
	w := ecs.NewWorld()
	a := newArena()
	var made []*stubRenderer
	factory := func(sk prefabs.Skeleton) pose.Renderer {
		r := &stubRenderer{skeleton: sk}
		made = append(made, r)
		return r
	}

	p, err := NewPlayer(w, a, factory)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	c, err := NewCPU(w, a, factory)
	if err != nil {
		t.Fatalf("NewCPU: %v", err)
	}

	cases := []struct {
		name     string
		e        ecs.Entity
		x        float64
		side     player.Side
		tagged   bool
		scripted bool
	}{
		{"player", p, 320, player.SideLeft, true, false},
		{"cpu", c, 960, player.SideRight, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, ok := ecs.Get(w, tc.e, component.FighterComponent.Kind())
			if !ok {
				t.Fatalf("missing fighter component")
			}
			s := f.Controller.State()
			if s.X != tc.x || s.Y != a.GroundY() || !s.IsOnGround {
				t.Fatalf("spawn state %+v", s)
			}
			if f.Controller.Config().Side != tc.side {
				t.Fatalf("side = %v, want %v", f.Controller.Config().Side, tc.side)
			}
			if got := ecs.Has(w, tc.e, component.PlayerTagComponent.Kind()); got != tc.tagged {
				t.Fatalf("player tag = %v", got)
			}
			if got := ecs.Has(w, tc.e, component.ScriptComponent.Kind()); got != tc.scripted {
				t.Fatalf("script = %v", got)
			}
			if !ecs.Has(w, tc.e, component.InputComponent.Kind()) {
				t.Fatalf("missing input")
			}
			pc, ok := ecs.Get(w, tc.e, component.PoseComponent.Kind())
			if !ok || pc.Animator == nil || pc.Renderer == nil {
				t.Fatalf("missing pose component")
			}
			if pc.Animator.Body().Size != 288 {
				t.Fatalf("body size = %v, want 288", pc.Animator.Body().Size)
			}
		})
	}

	if len(made) != 2 || made[0].skeleton.StrokeWidth != 4 {
		t.Fatalf("renderers not built from resolved skeletons: %+v", made)
	}
}

func TestBuildFighterHeadless(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildFighter(w, newArena(), prefabs.PlayerSpecFile, nil)
	if err != nil {
		t.Fatalf("BuildFighter: %v", err)
	}
	pc, _ := ecs.Get(w, e, component.PoseComponent.Kind())
	if pc.Renderer != nil || pc.Animator == nil {
		t.Fatalf("headless fighter %+v", pc)
	}
}

func TestBuildFighterErrors(t *testing.T) {
	if _, err := BuildFighter(nil, newArena(), prefabs.PlayerSpecFile, nil); err == nil {
		t.Fatalf("expected error for nil world")
	}
	if _, err := BuildFighter(ecs.NewWorld(), nil, prefabs.PlayerSpecFile, nil); err == nil {
		t.Fatalf("expected error for nil arena")
	}
	w := ecs.NewWorld()
	if _, err := BuildFighter(w, newArena(), "missing.yaml", nil); err == nil {
		t.Fatalf("expected error for missing spec")
	}
	if n := len(ecs.Entities(w)); n != 0 {
		t.Fatalf("failed build left %d entities", n)
	}
}

func TestResetRound(t *testing.T) {
	w := ecs.NewWorld()
	a := newArena()
	e, err := NewPlayer(w, a, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	f, _ := ecs.Get(w, e, component.FighterComponent.Kind())
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())

	in.Held.Right = true
	f.Controller.MoveRight()
	f.Controller.Jump()
	for i := 0; i < 5; i++ {
		f.Controller.Update()
	}

	ResetRound(w)

	s := f.Controller.State()
	if s.X != 320 || s.Y != a.GroundY() || s.VelocityX != 0 || s.VelocityY != 0 || s.IsJumping {
		t.Fatalf("state after reset %+v", s)
	}
	if in.Held != (component.Buttons{}) {
		t.Fatalf("input not cleared: %+v", in.Held)
	}
}

func TestReloadAndResize(t *testing.T) {
	w := ecs.NewWorld()
	a := newArena()
	r := &stubRenderer{}
	factory := func(sk prefabs.Skeleton) pose.Renderer { return r }
	if _, err := NewPlayer(w, a, factory); err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if _, err := NewCPU(w, a, nil); err != nil {
		t.Fatalf("NewCPU: %v", err)
	}

	n, err := ReloadFighters(w, a, prefabs.PlayerSpecFile)
	if err != nil {
		t.Fatalf("ReloadFighters: %v", err)
	}
	if n != 1 || r.applied != 1 {
		t.Fatalf("reloaded %d fighters, renderer applied %d", n, r.applied)
	}

	a.UpdateViewSize(1280, 1000)
	if err := ResizeFighters(w, a); err != nil {
		t.Fatalf("ResizeFighters: %v", err)
	}
	if r.skeleton.Body.Size != 400 {
		t.Fatalf("resized body = %v, want 400", r.skeleton.Body.Size)
	}
}

func TestResizeReportsMissingSpec(t *testing.T) {
	w := ecs.NewWorld()
	a := newArena()
	broken, err := NewCPU(w, a, nil)
	if err != nil {
		t.Fatalf("NewCPU: %v", err)
	}
	r := &stubRenderer{}
	if _, err := NewPlayer(w, a, func(sk prefabs.Skeleton) pose.Renderer { return r }); err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	f, _ := ecs.Get(w, broken, component.FighterComponent.Kind())
	f.Spec = "missing.yaml"

	a.UpdateViewSize(1280, 1000)
	err = ResizeFighters(w, a)
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected error naming missing.yaml, got %v", err)
	}

	pc, _ := ecs.Get(w, broken, component.PoseComponent.Kind())
	if pc.Animator.Body().Size != 288 {
		t.Fatalf("broken fighter resized to %v", pc.Animator.Body().Size)
	}
	if r.skeleton.Body.Size != 400 {
		t.Fatalf("healthy fighter not resized: %v", r.skeleton.Body.Size)
	}
}

func TestPoseDump(t *testing.T) {
	w := ecs.NewWorld()
	a := newArena()
	if _, err := NewPlayer(w, a, nil); err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if _, err := NewCPU(w, a, nil); err != nil {
		t.Fatalf("NewCPU: %v", err)
	}

	dump := PoseDump(w)
	if len(dump) != 2 || dump[0].Fighter != "player" || dump[1].Fighter != "cpu" {
		t.Fatalf("unexpected dump %+v", dump)
	}
}
