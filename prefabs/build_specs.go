package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float64 `yaml:"yaw"`
	Scale float64 `yaml:"scale"`
}

type PhysicsBodyComponentSpec struct {
	Width      float64 `yaml:"width"`
	Depth      float64 `yaml:"depth"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
	Sensor     bool    `yaml:"sensor"`
	UseGravity bool    `yaml:"use_gravity"`
}

type SpriteComponentSpec struct {
	Shape  string     `yaml:"shape"`
	Color  *YAMLColor `yaml:"color"`
	Hidden bool       `yaml:"hidden"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type HealthComponentSpec struct {
	Max float64 `yaml:"max"`
}

type FaceComponentSpec struct {
	Idle   string   `yaml:"idle"`
	Walk   string   `yaml:"walk"`
	Jump   string   `yaml:"jump"`
	Attack string   `yaml:"attack"`
	Damage []string `yaml:"damage"`
}

type PlayerComponentSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpForce      float64 `yaml:"jump_force"`
	Deadzone       float64 `yaml:"deadzone"`
	TurnSmoothTime float64 `yaml:"turn_smooth_time"`
}

type EnemyComponentSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	IncreasedSpeed float64 `yaml:"increased_speed"`
	RampAfter      float64 `yaml:"ramp_after"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	Damage         float64 `yaml:"damage"`
	DamageType     int     `yaml:"damage_type"`
	Script         string  `yaml:"script"`
}

type AnimationClipComponentSpec struct {
	Duration float64 `yaml:"duration"`
	Loop     bool    `yaml:"loop"`
	Event    string  `yaml:"event"`
}

type AnimatorComponentSpec struct {
	Current string                                `yaml:"current"`
	Clips   map[string]AnimationClipComponentSpec `yaml:"clips"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

type SoftlockComponentSpec struct {
	Timeout   float64 `yaml:"timeout"`
	Threshold float64 `yaml:"threshold"`
}

type RotatorComponentSpec struct {
	Speed float64 `yaml:"speed"`
}

type HoverComponentSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
}

type PuzzlePieceComponentSpec struct {
	Index int `yaml:"index"`
}

type MusicPlayerComponentSpec struct {
	Track  string  `yaml:"track"`
	Volume float64 `yaml:"volume"`
}
