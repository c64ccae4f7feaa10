package behavior

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/starwreck/prefabs"
)

// Host is the ship surface a behavior script can read and steer. The
// ship moves itself; scripts only place goals.
type Host interface {
	Position() mgl64.Vec2
	Rotation() float64
	Goal() mgl64.Vec2
	SetGoal(mgl64.Vec2)
}

// Scripts must define init and update functions; this trailer routes
// each run to one of them.
const dispatchScript = `
if __phase == "init" {
	init(__engine, __state)
} else if __phase == "update" {
	update(__engine, __state)
}
`

// Script is one compiled behavior bound to its host ship. Values the
// script writes into __state survive across frames.
type Script struct {
	name        string
	compiled    *tengo.Compiled
	state       *tengo.Map
	engine      *tengo.ImmutableMap
	host        Host
	rng         *rand.Rand
	dt          float64
	initialized bool
}

// Compile loads a script by prefab path and binds it to host. The seed
// feeds the engine's rand so runs are reproducible.
func Compile(name string, host Host, seed int64) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("behavior: load %s: %w", name, err)
	}
	return CompileSource(name, src, host, seed)
}

// CompileSource compiles script source directly.
func CompileSource(name string, src []byte, host Host, seed int64) (*Script, error) {
	full := string(src) + "\n" + dispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("behavior: compile %s: %w", name, err)
	}

	s := &Script{
		name:     name,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		host:     host,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.engine = s.buildEngine()
	return s, nil
}

// Name returns the script's prefab path.
func (s *Script) Name() string { return s.name }

// Update runs the script's update phase, running init first on the
// first call.
func (s *Script) Update(dt float64) error {
	s.dt = dt
	if !s.initialized {
		if err := s.run("init"); err != nil {
			return err
		}
		s.initialized = true
	}
	return s.run("update")
}

func (s *Script) run(phase string) error {
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__engine", s.engine); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("behavior: run %s: %w", s.name, err)
	}
	return nil
}

func (s *Script) buildEngine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["position"] = &tengo.UserFunction{Name: "position", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vecObject(s.host.Position()), nil
	}}

	values["heading"] = &tengo.UserFunction{Name: "heading", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: s.host.Rotation()}, nil
	}}

	values["goal"] = &tengo.UserFunction{Name: "goal", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return vecObject(s.host.Goal()), nil
	}}

	values["set_goal"] = &tengo.UserFunction{Name: "set_goal", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		s.host.SetGoal(mgl64.Vec2{x, y})
		return tengo.TrueValue, nil
	}}

	values["dt"] = &tengo.UserFunction{Name: "dt", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: s.dt}, nil
	}}

	values["rand"] = &tengo.UserFunction{Name: "rand", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) == 0 {
			return &tengo.Float{Value: s.rng.Float64()}, nil
		}
		if len(args) < 2 {
			return tengo.UndefinedValue, nil
		}
		lo, okLo := tengo.ToFloat64(args[0])
		hi, okHi := tengo.ToFloat64(args[1])
		if !okLo || !okHi {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Float{Value: lo + s.rng.Float64()*(hi-lo)}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func vecObject(v mgl64.Vec2) tengo.Object {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: v.X()},
		&tengo.Float{Value: v.Y()},
	}}
}
