package component

// Spawner places enemies around the player once at level start.
type Spawner struct {
	Count        int
	Radius       float64
	MinDistance  float64
	HeightOffset float64
	Attempts     int
	Prefab       string

	// Player is the injected player entity (ecs.Entity is uint64).
	Player uint64
	Done   bool
}

var SpawnerComponent = NewComponent[Spawner]()
