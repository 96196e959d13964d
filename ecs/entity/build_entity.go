package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
	"github.com/milk9111/slimes/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":     addPlayerTag,
	"enemy_tag":      addEnemyTag,
	"camera_tag":     addCameraTag,
	"transform":      addTransform,
	"physics_body":   addPhysicsBody,
	"category":       addCategory,
	"player":         addPlayer,
	"input":          addInput,
	"enemy":          addEnemy,
	"health":         addHealth,
	"health_bar":     addHealthBar,
	"slime_state":    addSlimeState,
	"face":           addFace,
	"animator":       addAnimator,
	"audio":          addAudio,
	"ground_contact": addGroundContact,
	"trigger_events": addTriggerEvents,
	"softlock":       addSoftlock,
	"pickup":         addPickup,
	"win_marker":     addWinMarker,
	"puzzle_piece":   addPuzzlePiece,
	"rotator":        addRotator,
	"hover":          addHover,
	"sprite":         addSprite,
	"render_layer":   addRenderLayer,
	"music_player":   addMusicPlayer,
}

// Transform and physics come before components that read them; health
// comes before health_bar.
var componentBuildOrder = []string{
	"player_tag",
	"enemy_tag",
	"camera_tag",
	"transform",
	"physics_body",
	"category",
	"player",
	"input",
	"enemy",
	"health",
	"health_bar",
	"slime_state",
	"face",
	"animator",
	"audio",
	"ground_contact",
	"trigger_events",
	"softlock",
	"pickup",
	"win_marker",
	"puzzle_piece",
	"rotator",
	"hover",
	"sprite",
	"render_layer",
	"music_player",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityTransform moves e, creating its transform when missing. Puzzle
// pieces and checkpoints capture the new position as their initial one.
func SetEntityTransform(w *ecs.World, e ecs.Entity, pos mgl64.Vec3, yaw float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{Scale: 1}
	}
	t.Position = pos
	t.Yaw = yaw
	if piece, ok := ecs.Get(w, e, component.PuzzlePieceComponent.Kind()); ok {
		piece.Initial = pos
		piece.InitialYaw = yaw
	}
	if checkpoint, ok := ecs.Get(w, e, component.CheckpointComponent.Kind()); ok {
		checkpoint.Position = pos
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{spec.X, spec.Y, spec.Z},
		Yaw:      spec.Yaw,
		Scale:    scale,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics_body spec: %w", err)
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Depth <= 0) {
		return fmt.Errorf("physics_body needs a radius or a width and depth")
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Width,
		Depth:      spec.Depth,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
		Sensor:     spec.Sensor,
		UseGravity: spec.UseGravity,
	})
}

func addCategory(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	name, ok := raw.(string)
	if !ok {
		return fmt.Errorf("category must be a string, got %T", raw)
	}
	category, err := component.ParseCategory(name)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CategoryComponent.Kind(), &category)
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	deadzone := spec.Deadzone
	if deadzone == 0 {
		deadzone = 0.1
	}
	smooth := spec.TurnSmoothTime
	if smooth == 0 {
		smooth = 0.1
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:      spec.MoveSpeed,
		JumpForce:      spec.JumpForce,
		Deadzone:       deadzone,
		TurnSmoothTime: smooth,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type enemySpec = prefabs.EnemyComponentSpec

func addEnemy(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[enemySpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy spec: %w", err)
	}
	increased := spec.IncreasedSpeed
	if increased == 0 {
		increased = spec.MoveSpeed
	}
	return ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MoveSpeed:      spec.MoveSpeed,
		IncreasedSpeed: increased,
		RampAfter:      spec.RampAfter,
		AttackRange:    spec.AttackRange,
		AttackCooldown: spec.AttackCooldown,
		Damage:         spec.Damage,
		DamageType:     spec.DamageType,
		Script:         spec.Script,
	})
}

type healthSpec = prefabs.HealthComponentSpec

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[healthSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %v", spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Max, Max: spec.Max})
}

func addHealthBar(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	fraction := 1.0
	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		fraction = health.Fraction()
	}
	return ecs.Add(w, e, component.HealthBarComponent.Kind(), &component.HealthBar{Fraction: fraction})
}

func addSlimeState(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SlimeStateComponent.Kind(), &component.SlimeState{State: component.StateIdle})
}

type faceSpec = prefabs.FaceComponentSpec

func addFace(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[faceSpec](raw)
	if err != nil {
		return fmt.Errorf("decode face spec: %w", err)
	}
	return ecs.Add(w, e, component.FaceComponent.Kind(), &component.Face{
		Current: spec.Idle,
		Idle:    spec.Idle,
		Walk:    spec.Walk,
		Jump:    spec.Jump,
		Attack:  spec.Attack,
		Damage:  append([]string(nil), spec.Damage...),
	})
}

type animatorSpec = prefabs.AnimatorComponentSpec

var animationEvents = map[string]component.AnimationEvent{
	"":             component.AnimationNone,
	"none":         component.AnimationNone,
	"jump_ended":   component.AnimationJumpEnded,
	"attack_ended": component.AnimationAttackEnded,
	"damage_ended": component.AnimationDamageEnded,
}

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}

	clips := make(map[string]component.AnimationClip, len(spec.Clips))
	for name, def := range spec.Clips {
		ev, ok := animationEvents[strings.ToLower(def.Event)]
		if !ok {
			return fmt.Errorf("clip %q: unknown event %q", name, def.Event)
		}
		if def.Duration <= 0 {
			return fmt.Errorf("clip %q: duration must be positive", name)
		}
		clips[name] = component.AnimationClip{Name: name, Duration: def.Duration, Loop: def.Loop, Event: ev}
	}

	current := spec.Current
	if current == "" {
		current = "idle"
	}
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), &component.Animator{Clips: clips, Current: current})
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp := buildAudioComponent(spec.Clips)
	if comp == nil {
		return nil
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func addGroundContact(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GroundContactComponent.Kind(), &component.GroundContact{})
}

func addTriggerEvents(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TriggerEventsComponent.Kind(), &component.TriggerEvents{})
}

type softlockSpec = prefabs.SoftlockComponentSpec

func addSoftlock(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[softlockSpec](raw)
	if err != nil {
		return fmt.Errorf("decode softlock spec: %w", err)
	}
	timeout, threshold := spec.Timeout, spec.Threshold
	if timeout <= 0 {
		timeout = 30
	}
	if threshold <= 0 {
		threshold = 0.1
	}
	if err := ecs.Add(w, e, component.SoftlockComponent.Kind(), &component.Softlock{
		Timeout:   timeout,
		Threshold: threshold,
	}); err != nil {
		return err
	}

	var pos mgl64.Vec3
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos = t.Position
	}
	return ecs.Add(w, e, component.CheckpointComponent.Kind(), &component.Checkpoint{Position: pos})
}

func addPickup(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{})
}

func addWinMarker(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WinMarkerComponent.Kind(), &component.WinMarker{})
}

type puzzlePieceSpec = prefabs.PuzzlePieceComponentSpec

func addPuzzlePiece(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[puzzlePieceSpec](raw)
	if err != nil {
		return fmt.Errorf("decode puzzle_piece spec: %w", err)
	}
	piece := &component.PuzzlePiece{Index: spec.Index}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		piece.Initial = t.Position
		piece.InitialYaw = t.Yaw
	}
	return ecs.Add(w, e, component.PuzzlePieceComponent.Kind(), piece)
}

type rotatorSpec = prefabs.RotatorComponentSpec

func addRotator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rotatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rotator spec: %w", err)
	}
	return ecs.Add(w, e, component.RotatorComponent.Kind(), &component.Rotator{Speed: spec.Speed})
}

type hoverSpec = prefabs.HoverComponentSpec

func addHover(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hoverSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hover spec: %w", err)
	}
	return ecs.Add(w, e, component.HoverComponent.Kind(), &component.Hover{Amplitude: spec.Amplitude, Speed: spec.Speed})
}

type spriteSpec = prefabs.SpriteComponentSpec

var spriteShapes = map[string]component.SpriteShape{
	"":     component.SpriteBox,
	"box":  component.SpriteBox,
	"blob": component.SpriteBlob,
	"gem":  component.SpriteGem,
	"flag": component.SpriteFlag,
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	shape, ok := spriteShapes[strings.ToLower(spec.Shape)]
	if !ok {
		return fmt.Errorf("unknown sprite shape %q", spec.Shape)
	}
	var clr color.Color = color.White
	if spec.Color != nil && spec.Color.Color != nil {
		clr = spec.Color.Color
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Shape: shape, Color: clr, Hidden: spec.Hidden})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type musicPlayerSpec = prefabs.MusicPlayerComponentSpec

func addMusicPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[musicPlayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode music_player spec: %w", err)
	}
	return ecs.Add(w, e, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{Track: spec.Track, Volume: spec.Volume})
}
