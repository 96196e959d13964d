package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/slimes/prefabs"
)

// enemyScript is a compiled brain shared by every enemy naming it. The
// script sees one global, engine, bound to the current enemy per run.
type enemyScript struct {
	path     string
	compiled *tengo.Compiled
}

func (e *EnemyAISystem) runScript(ctx *enemyContext) error {
	rt, err := e.getScript(ctx.enemy.Script)
	if err != nil {
		return err
	}
	if err := rt.compiled.Set("engine", buildEnemyEngine(ctx)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (e *EnemyAISystem) getScript(path string) (*enemyScript, error) {
	if rt, ok := e.scripts[path]; ok {
		return rt, nil
	}

	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	script := tengo.NewScript(src)
	_ = script.Add("engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}
	rt := &enemyScript{path: path, compiled: compiled}
	e.scripts[path] = rt
	return rt, nil
}

func buildEnemyEngine(ctx *enemyContext) *tengo.ImmutableMap {
	float := func(v float64) tengo.Object { return &tengo.Float{Value: v} }
	boolean := func(v bool) tengo.Object {
		if v {
			return tengo.TrueValue
		}
		return tengo.FalseValue
	}
	fn := func(name string, f func() tengo.Object) tengo.Object {
		return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			return f(), nil
		}}
	}

	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"elapsed":      fn("elapsed", func() tengo.Object { return float(ctx.elapsed()) }),
		"ramp_after":   fn("ramp_after", func() tengo.Object { return float(ctx.enemy.RampAfter) }),
		"ramped":       fn("ramped", func() tengo.Object { return boolean(ctx.enemy.Ramped) }),
		"distance":     fn("distance", func() tengo.Object { return float(ctx.distance()) }),
		"attack_range": fn("attack_range", func() tengo.Object { return float(ctx.enemy.AttackRange) }),
		"speed":        fn("speed", func() tengo.Object { return float(ctx.enemy.CurrentSpeed()) }),
		"ramp": fn("ramp", func() tengo.Object {
			ctx.rampIfDue()
			return boolean(ctx.enemy.Ramped)
		}),
		"attack": fn("attack", func() tengo.Object { return boolean(ctx.attack()) }),
		"chase": fn("chase", func() tengo.Object {
			ctx.chase()
			return tengo.TrueValue
		}),
	}}
}
