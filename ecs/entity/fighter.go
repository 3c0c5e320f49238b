package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/stickfighter/arena"
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"github.com/milk9111/stickfighter/player"
	"github.com/milk9111/stickfighter/pose"
	"github.com/milk9111/stickfighter/prefabs"
)

// RendererFactory builds the renderer for a fighter. A nil factory, or one
// returning nil, leaves the fighter headless.
type RendererFactory func(sk prefabs.Skeleton) pose.Renderer

// SkeletonApplier is implemented by renderers that resize on hot reload.
type SkeletonApplier interface {
	ApplySkeleton(sk prefabs.Skeleton)
}

func NewPlayer(w *ecs.World, a *arena.World, newRenderer RendererFactory) (ecs.Entity, error) {
	e, err := BuildFighter(w, a, prefabs.PlayerSpecFile, newRenderer)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	return e, nil
}

func NewCPU(w *ecs.World, a *arena.World, newRenderer RendererFactory) (ecs.Entity, error) {
	return BuildFighter(w, a, prefabs.CPUSpecFile, newRenderer)
}

// BuildFighter creates a fighter entity from a fighter spec. Fighters whose
// spec names a script are driven by it instead of the keyboard.
func BuildFighter(w *ecs.World, a *arena.World, specFile string, newRenderer RendererFactory) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build fighter: world is nil")
	}
	if a == nil {
		return 0, fmt.Errorf("build fighter: arena is nil")
	}

	spec, err := prefabs.LoadFighterSpec(specFile)
	if err != nil {
		return 0, fmt.Errorf("build fighter: %w", err)
	}

	sk := spec.Skeleton.Resolve(a.ViewHeight())
	var r pose.Renderer
	if newRenderer != nil {
		r = newRenderer(sk)
	}

	spawnX := spec.SpawnX(a.ViewWidth())
	name := spec.Name
	if name == "" {
		name = specFile
	}

	e := ecs.CreateEntity(w)
	fighter := &component.Fighter{
		Name:       name,
		Spec:       specFile,
		SpawnX:     spawnX,
		Controller: player.NewController(a, spawnX, spec.PlayerConfig()),
	}
	if err := ecs.Add(w, e, component.FighterComponent.Kind(), fighter); err != nil {
		return 0, fmt.Errorf("build fighter %q: %w", specFile, err)
	}
	if err := ecs.Add(w, e, component.PoseComponent.Kind(), &component.Pose{
		Animator: pose.NewAnimator(sk.Body, spec.AnimatorConfig(), r),
		Renderer: r,
	}); err != nil {
		return 0, fmt.Errorf("build fighter %q: %w", specFile, err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("build fighter %q: %w", specFile, err)
	}
	if spec.Script != "" {
		if err := ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Path: spec.Script}); err != nil {
			return 0, fmt.Errorf("build fighter %q: %w", specFile, err)
		}
	}

	return e, nil
}

// ReloadFighters re-applies specFile to every fighter built from it and
// returns how many were updated. Kinematic state is kept.
func ReloadFighters(w *ecs.World, a *arena.World, specFile string) (int, error) {
	spec, err := prefabs.LoadFighterSpec(specFile)
	if err != nil {
		return 0, err
	}
	sk := spec.Skeleton.Resolve(a.ViewHeight())

	n := 0
	ecs.ForEach2(w, component.FighterComponent.Kind(), component.PoseComponent.Kind(), func(e ecs.Entity, f *component.Fighter, pc *component.Pose) {
		if f.Spec != specFile {
			return
		}
		n++
		f.SpawnX = spec.SpawnX(a.ViewWidth())
		if f.Controller != nil {
			f.Controller.SetConfig(spec.PlayerConfig())
		}
		if pc.Animator != nil {
			pc.Animator.SetConfig(spec.AnimatorConfig())
			pc.Animator.SetBody(sk.Body)
		}
		if sa, ok := pc.Renderer.(SkeletonApplier); ok {
			sa.ApplySkeleton(sk)
		}
		if script, ok := ecs.Get(w, e, component.ScriptComponent.Kind()); ok {
			script.Path = spec.Script
		}
	})
	return n, nil
}

// ResetRound puts every fighter back on its spawn point with no held input.
func ResetRound(w *ecs.World) {
	ecs.ForEach2(w, component.FighterComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, f *component.Fighter, in *component.Input) {
		if f.Controller == nil {
			return
		}
		f.Controller.StopHorizontalMovement()
		f.Controller.StopCrouch()
		f.Controller.ResetPosition(f.SpawnX)
		*in = component.Input{}
	})
}

// ResizeFighters rescales every fighter's skeleton for a new view height.
// Fighters whose spec fails to load keep their size; their errors are joined.
func ResizeFighters(w *ecs.World, a *arena.World) error {
	var errs []error
	ecs.ForEach2(w, component.FighterComponent.Kind(), component.PoseComponent.Kind(), func(e ecs.Entity, f *component.Fighter, pc *component.Pose) {
		spec, err := prefabs.LoadFighterSpec(f.Spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("resize fighter %v: %w", e, err))
			return
		}
		sk := spec.Skeleton.Resolve(a.ViewHeight())
		if pc.Animator != nil && pc.Animator.Body() != sk.Body {
			pc.Animator.SetBody(sk.Body)
		}
		if sa, ok := pc.Renderer.(SkeletonApplier); ok {
			sa.ApplySkeleton(sk)
		}
	})
	return errors.Join(errs...)
}

// PoseDump snapshots every fighter's animator in entity order.
func PoseDump(w *ecs.World) []prefabs.PoseSpec {
	var out []prefabs.PoseSpec
	ecs.ForEach2(w, component.FighterComponent.Kind(), component.PoseComponent.Kind(), func(e ecs.Entity, f *component.Fighter, pc *component.Pose) {
		if pc.Animator == nil {
			return
		}
		out = append(out, prefabs.NewPoseSpec(f.Name, pc.Animator))
	})
	return out
}
