package component

// GameOver holds the end-of-game thresholds.
type GameOver struct {
	FallThresholdY float64
}

var GameOverComponent = NewComponent[GameOver]()

// HUD is the text and panel state read by the UI layer.
type HUD struct {
	ScoreText       string
	TimeText        string
	FinalScoreText  string
	FinalTimeText   string
	WinVisible      bool
	GameOverVisible bool
}

var HUDComponent = NewComponent[HUD]()
