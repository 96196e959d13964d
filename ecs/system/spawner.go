package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimes/common"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const defaultSpawnAttempts = 10

// GroundProber finds the first surface straight below a point.
type GroundProber interface {
	ProbeDown(x, z, fromY float64) (GroundHit, bool)
}

// SpawnFunc creates an enemy from prefab at pos, targeting player.
type SpawnFunc func(w *ecs.World, prefab string, pos mgl64.Vec3, player ecs.Entity) (ecs.Entity, error)

// SpawnerSystem places enemies on the ground around the player once.
type SpawnerSystem struct {
	prober GroundProber
	spawn  SpawnFunc
	rng    *rand.Rand
}

func NewSpawnerSystem(prober GroundProber, spawn SpawnFunc, rng *rand.Rand) *SpawnerSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpawnerSystem{prober: prober, spawn: spawn, rng: rng}
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	if w == nil || s.prober == nil || s.spawn == nil {
		return
	}
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.Spawner) {
		if sp.Done {
			return
		}
		sp.Done = true

		player := ecs.Entity(sp.Player)
		t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
		if !ok {
			return
		}
		origin := t.Position
		for i := 0; i < sp.Count; i++ {
			pos, ok := s.findSpawnPoint(sp, origin)
			if !ok {
				continue
			}
			if _, err := s.spawn(w, sp.Prefab, pos, player); err != nil {
				log.Printf("spawner: %v", err)
			}
		}
	})
}

func (s *SpawnerSystem) findSpawnPoint(sp *component.Spawner, origin mgl64.Vec3) (mgl64.Vec3, bool) {
	attempts := sp.Attempts
	if attempts <= 0 {
		attempts = defaultSpawnAttempts
	}
	for i := 0; i < attempts; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		r := sp.Radius * math.Sqrt(s.rng.Float64())
		sample := origin.Add(mgl64.Vec3{math.Cos(angle) * r, 0, math.Sin(angle) * r})
		if common.HorizontalDistance(origin, sample) < sp.MinDistance {
			continue
		}
		hit, ok := s.prober.ProbeDown(sample.X(), sample.Z(), origin.Y()+sp.HeightOffset)
		if !ok || hit.Category != component.CategoryGround {
			continue
		}
		return hit.Point, true
	}
	return mgl64.Vec3{}, false
}
