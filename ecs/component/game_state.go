package component

// GameState is the global pause latch. Once paused the game never resumes.
type GameState struct {
	Paused bool
	Won    bool
	Over   bool
}

// Latch pauses the game and reports whether this call set the latch.
func (g *GameState) Latch() bool {
	if g == nil || g.Paused {
		return false
	}
	g.Paused = true
	return true
}

var GameStateComponent = NewComponent[GameState]()
