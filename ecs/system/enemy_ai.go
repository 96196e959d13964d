package system

import (
	"log"

	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

type EnemyAISystem struct {
	scripts  map[string]*enemyScript
	disabled map[string]bool
}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{
		scripts:  make(map[string]*enemyScript),
		disabled: make(map[string]bool),
	}
}

// enemyContext is the per-frame view of one enemy and its target.
type enemyContext struct {
	w      *ecs.World
	entity ecs.Entity
	target ecs.Entity
	now    float64

	enemy     *component.Enemy
	transform *component.Transform
	body      *component.PhysicsBody
	anim      *component.Animator
	targetPos *component.Transform
}

func (e *EnemyAISystem) Update(w *ecs.World) {
	if w == nil || IsPaused(w) {
		return
	}
	now := Now(w)

	entities := w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind())
	for _, ent := range entities {
		ctx, ok := newEnemyContext(w, ent, now)
		if !ok {
			continue
		}
		if ctx.enemy.Script != "" && !e.disabled[ctx.enemy.Script] {
			err := e.runScript(ctx)
			if err == nil {
				continue
			}
			log.Printf("enemy ai: entity=%v script %q: %v", ent, ctx.enemy.Script, err)
			e.disabled[ctx.enemy.Script] = true
		}
		ctx.decide()
	}
}

// Reload drops compiled scripts so the next frame recompiles them.
func (e *EnemyAISystem) Reload() {
	e.scripts = make(map[string]*enemyScript)
	e.disabled = make(map[string]bool)
}

func newEnemyContext(w *ecs.World, ent ecs.Entity, now float64) (*enemyContext, bool) {
	enemy, ok := ecs.Get(w, ent, component.EnemyComponent.Kind())
	if !ok {
		return nil, false
	}
	target := ecs.Entity(enemy.Target)
	if !w.IsAlive(target) {
		return nil, false
	}
	targetPos, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return nil, false
	}
	transform, _ := ecs.Get(w, ent, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, ent, component.PhysicsBodyComponent.Kind())
	anim, _ := ecs.Get(w, ent, component.AnimatorComponent.Kind())
	return &enemyContext{
		w:         w,
		entity:    ent,
		target:    target,
		now:       now,
		enemy:     enemy,
		transform: transform,
		body:      body,
		anim:      anim,
		targetPos: targetPos,
	}, true
}

func (c *enemyContext) decide() {
	c.rampIfDue()
	if c.distance() <= c.enemy.AttackRange {
		c.attack()
		return
	}
	c.chase()
}

func (c *enemyContext) elapsed() float64 {
	return c.now - c.enemy.SpawnTime
}

// rampIfDue raises the speed once the enemy has been alive long enough.
func (c *enemyContext) rampIfDue() {
	if !c.enemy.Ramped && c.elapsed() > c.enemy.RampAfter {
		c.enemy.Ramped = true
	}
}

// distance is the full 3D distance to the target; only chasing and facing
// are horizontal.
func (c *enemyContext) distance() float64 {
	return c.targetPos.Position.Sub(c.transform.Position).Len()
}

func (c *enemyContext) face() {
	dir := common.Horizontal(c.targetPos.Position.Sub(c.transform.Position))
	if dir.Len() > 0 {
		c.transform.Yaw = common.HeadingTo(dir)
	}
}

func (c *enemyContext) chase() {
	speed := c.enemy.CurrentSpeed()
	dir := common.Horizontal(c.targetPos.Position.Sub(c.transform.Position))
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	if c.body != nil {
		c.body.Velocity[0] = dir.X() * speed
		c.body.Velocity[2] = dir.Z() * speed
	}
	c.face()
	if c.anim != nil {
		c.anim.Speed = speed
	}
	if slime, ok := ecs.Get(c.w, c.entity, component.SlimeStateComponent.Kind()); ok && slime.State.Locomotion() {
		ChangeSlimeState(c.w, c.entity, component.StateWalk, 0)
	}
}

func (c *enemyContext) attack() bool {
	if c.body != nil {
		c.body.Velocity[0] = 0
		c.body.Velocity[2] = 0
	}
	c.face()
	return TryEnemyAttack(c.w, c.entity)
}

// TryEnemyAttack attacks the enemy's target unless the cooldown since the
// last successful attack is still running. Attempts inside the window are
// dropped. It reports whether the attack happened.
func TryEnemyAttack(w *ecs.World, ent ecs.Entity) bool {
	enemy, ok := ecs.Get(w, ent, component.EnemyComponent.Kind())
	if !ok {
		return false
	}
	target := ecs.Entity(enemy.Target)
	if !w.IsAlive(target) {
		return false
	}
	now := Now(w)
	if enemy.HasAttacked && now-enemy.LastAttack < enemy.AttackCooldown {
		return false
	}
	enemy.LastAttack = now
	enemy.HasAttacked = true

	if anim, ok := ecs.Get(w, ent, component.AnimatorComponent.Kind()); ok {
		anim.Speed = 0
	}
	if !ChangeSlimeState(w, ent, component.StateAttack, 0) {
		if anim, ok := ecs.Get(w, ent, component.AnimatorComponent.Kind()); ok {
			anim.SetTrigger(component.TriggerAttack)
		}
	}
	PlaySound(w, ent, attackSound)

	if ApplyDamage(w, target, enemy.Damage) {
		ChangeSlimeState(w, target, component.StateDamage, enemy.DamageType)
	}
	return true
}
