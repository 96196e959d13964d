package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slimes/ecs"
	"github.com/milk9111/slimes/ecs/component"
)

const healthBarScale = 100

// HUDActions are the callbacks behind the HUD buttons. Demo is nil unless
// the demo harness is enabled.
type HUDActions struct {
	Restart  func()
	MainMenu func()
	Copy     func()
	Demo     func(state component.SlimeAnimationState, damageType int)
}

// HUD mirrors the session HUD component and the player health bar onto
// ebitenui widgets.
type HUD struct {
	ui *ebitenui.UI

	score  *widget.Text
	time   *widget.Text
	health *widget.ProgressBar

	win           *widget.Container
	winScore      *widget.Text
	winTime       *widget.Text
	gameOver      *widget.Container
	gameOverScore *widget.Text
	gameOverTime  *widget.Text
}

func NewHUD(fonts *uiFonts, actions HUDActions) *HUD {
	h := &HUD{}
	body := &fonts.body

	status := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Left: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	h.score = widget.NewText(widget.TextOpts.Text("Score: 0", body, textColor))
	h.time = widget.NewText(widget.TextOpts.Text("00:00:000", body, textColor))
	h.health = widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 16)),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: solidNineSlice(healthTrack)},
			&widget.ProgressBarImage{Idle: solidNineSlice(healthFill)},
		),
		widget.ProgressBarOpts.Values(0, healthBarScale, healthBarScale),
	)
	status.AddChild(h.score)
	status.AddChild(h.time)
	status.AddChild(h.health)

	h.win, h.winScore, h.winTime = newResultPanel(fonts, "You Win!", actions)
	h.gameOver, h.gameOverScore, h.gameOverTime = newResultPanel(fonts, "Game Over", actions)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(status)
	root.AddChild(h.win)
	root.AddChild(h.gameOver)
	if actions.Demo != nil {
		root.AddChild(newDemoBar(fonts, actions.Demo))
	}

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func newResultPanel(fonts *uiFonts, title string, actions HUDActions) (*widget.Container, *widget.Text, *widget.Text) {
	panel := newPanel()
	score := newLabel(&fonts.body, "", textColor)
	elapsed := newLabel(&fonts.body, "", textColor)
	panel.AddChild(newLabel(&fonts.title, title, titleTextColor))
	panel.AddChild(score)
	panel.AddChild(elapsed)
	panel.AddChild(newButton(&fonts.body, "Restart", actions.Restart))
	panel.AddChild(newButton(&fonts.body, "Main Menu", actions.MainMenu))
	panel.AddChild(newButton(&fonts.body, "Copy result", actions.Copy))
	setVisible(panel, false)
	return panel, score, elapsed
}

var demoStates = []struct {
	label      string
	state      component.SlimeAnimationState
	damageType int
}{
	{"Idle", component.StateIdle, 0},
	{"Walk", component.StateWalk, 0},
	{"Jump", component.StateJump, 0},
	{"Attack", component.StateAttack, 0},
	{"Damage 0", component.StateDamage, 0},
	{"Damage 1", component.StateDamage, 1},
	{"Damage 2", component.StateDamage, 2},
}

func newDemoBar(fonts *uiFonts, change func(component.SlimeAnimationState, int)) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.NRGBA{A: 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	for _, d := range demoStates {
		bar.AddChild(newButton(&fonts.body, d.label, func() { change(d.state, d.damageType) }))
	}
	return bar
}

// Update copies the session state into the widgets and runs the UI.
func (h *HUD) Update(w *ecs.World) {
	if ent, ok := ecs.First(w, component.HUDComponent.Kind()); ok {
		hud, _ := ecs.Get(w, ent, component.HUDComponent.Kind())
		h.score.Label = hud.ScoreText
		h.time.Label = hud.TimeText
		h.winScore.Label, h.winTime.Label = hud.FinalScoreText, hud.FinalTimeText
		h.gameOverScore.Label, h.gameOverTime.Label = hud.FinalScoreText, hud.FinalTimeText
		setVisible(h.win, hud.WinVisible)
		setVisible(h.gameOver, hud.GameOverVisible && !hud.WinVisible)
	}
	if ent, ok := ecs.First(w, component.HealthBarComponent.Kind()); ok {
		bar, _ := ecs.Get(w, ent, component.HealthBarComponent.Kind())
		h.health.SetCurrent(healthValue(bar.Fraction))
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func healthValue(fraction float64) int {
	v := int(fraction * healthBarScale)
	return max(0, min(healthBarScale, v))
}

// resultText is the shareable summary of a finished run.
func resultText(hud *component.HUD, won bool) string {
	outcome := "Game over"
	if won {
		outcome = "Cleared"
	}
	return fmt.Sprintf("Slimes - %s. %s, %s", outcome, hud.FinalScoreText, hud.FinalTimeText)
}
