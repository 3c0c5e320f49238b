package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"github.com/milk9111/stickfighter/prefabs"
)

// A fighter script defines `update := func(engine, state) { ... }`. It is
// run once per tick and drives the fighter by holding or tapping buttons:
//
//	engine.hold("left")     engine.release("left")     engine.tap("jump")
//
// state is a map that persists across ticks.
const scriptDispatch = `
if __phase == "update" {
	update(__engine, __state)
}
`

type scriptRuntime struct {
	key       string
	compiled  *tengo.Compiled
	stateData *tengo.Map
	held      component.Buttons
	taps      component.Buttons
	failed    bool
}

// ScriptSystem runs fighter scripts and writes the buttons they press into
// the entity's Input.
type ScriptSystem struct {
	cache map[ecs.Entity]*scriptRuntime
}

func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{cache: map[ecs.Entity]*scriptRuntime{}}
}

// Invalidate drops compiled scripts so the next tick reloads them.
func (s *ScriptSystem) Invalidate() {
	s.cache = map[ecs.Entity]*scriptRuntime{}
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.ScriptComponent.Kind(), component.InputComponent.Kind(), component.FighterComponent.Kind()) {
		script, _ := ecs.Get(w, e, component.ScriptComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		fighter, _ := ecs.Get(w, e, component.FighterComponent.Kind())
		if fighter.Controller == nil {
			continue
		}

		rt, err := s.runtime(e, script)
		if err != nil {
			log.Printf("script: entity=%v load error: %v", e, err)
			continue
		}
		if rt.failed {
			continue
		}

		rt.taps = component.Buttons{}
		if err := rt.run("update", buildScriptEngine(fighter, rt)); err != nil {
			log.Printf("script: entity=%v update error: %v", e, err)
			rt.failed = true
			continue
		}

		input.Held = component.Buttons{
			Left:   rt.held.Left || rt.taps.Left,
			Right:  rt.held.Right || rt.taps.Right,
			Jump:   rt.held.Jump || rt.taps.Jump,
			Crouch: rt.held.Crouch || rt.taps.Crouch,
		}
	}

	for e := range s.cache {
		if !w.IsAlive(e) {
			delete(s.cache, e)
		}
	}
}

func (s *ScriptSystem) runtime(e ecs.Entity, script *component.Script) (*scriptRuntime, error) {
	if s.cache == nil {
		s.cache = map[ecs.Entity]*scriptRuntime{}
	}

	key := script.Path
	if len(script.Source) > 0 {
		key = "inline:" + string(script.Source)
	}
	if rt, ok := s.cache[e]; ok && rt.key == key {
		return rt, nil
	}

	// a script that fails to load stays failed until its source changes
	failed := &scriptRuntime{key: key, failed: true}

	src := script.Source
	if len(src) == 0 {
		if strings.TrimSpace(script.Path) == "" {
			s.cache[e] = failed
			return nil, fmt.Errorf("script has no path or source")
		}
		data, err := prefabs.LoadScript(script.Path)
		if err != nil {
			s.cache[e] = failed
			return nil, err
		}
		src = data
	}

	compiled, err := compileScript(src)
	if err != nil {
		s.cache[e] = failed
		return nil, err
	}

	rt := &scriptRuntime{
		key:       key,
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[e] = rt
	return rt, nil
}

func compileScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), []byte("\n"+scriptDispatch)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	return script.Compile()
}

func (rt *scriptRuntime) run(phase string, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildScriptEngine(fighter *component.Fighter, rt *scriptRuntime) *tengo.ImmutableMap {
	ctrl := fighter.Controller
	values := map[string]tengo.Object{}

	button := func(name string, pressed bool) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			target := selectButton(strings.TrimSpace(objectAsString(args[0])))
			if target == nil {
				return tengo.FalseValue, nil
			}
			b := &rt.held
			if name == "tap" {
				b = &rt.taps
			}
			target(b, pressed)
			return tengo.TrueValue, nil
		}}
	}
	values["hold"] = button("hold", true)
	values["release"] = button("release", false)
	values["tap"] = button("tap", true)

	values["get_position"] = &tengo.UserFunction{Name: "get_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		s := ctrl.State()
		return floatPair(s.X, s.Y), nil
	}}

	values["get_velocity"] = &tengo.UserFunction{Name: "get_velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		s := ctrl.State()
		return floatPair(s.VelocityX, s.VelocityY), nil
	}}

	values["get_bounds"] = &tengo.UserFunction{Name: "get_bounds", Value: func(args ...tengo.Object) (tengo.Object, error) {
		lo, hi := ctrl.HorizontalBounds()
		return floatPair(lo, hi), nil
	}}

	values["get_ground_y"] = &tengo.UserFunction{Name: "get_ground_y", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctrl.State().GroundY}, nil
	}}

	values["is_on_ground"] = &tengo.UserFunction{Name: "is_on_ground", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctrl.State().IsOnGround), nil
	}}

	values["is_jumping"] = &tengo.UserFunction{Name: "is_jumping", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctrl.State().IsJumping), nil
	}}

	values["is_crouching"] = &tengo.UserFunction{Name: "is_crouching", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctrl.State().IsCrouching), nil
	}}

	values["name"] = &tengo.String{Value: fighter.Name}

	return &tengo.ImmutableMap{Value: values}
}

func selectButton(name string) func(b *component.Buttons, pressed bool) {
	switch name {
	case "left":
		return func(b *component.Buttons, pressed bool) { b.Left = pressed }
	case "right":
		return func(b *component.Buttons, pressed bool) { b.Right = pressed }
	case "jump":
		return func(b *component.Buttons, pressed bool) { b.Jump = pressed }
	case "crouch":
		return func(b *component.Buttons, pressed bool) { b.Crouch = pressed }
	default:
		return nil
	}
}

func floatPair(a, b float64) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: a}, &tengo.Float{Value: b}}}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
