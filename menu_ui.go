package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// Menu is the main menu scene.
type Menu struct {
	ui *ebitenui.UI
}

func NewMenu(fonts *uiFonts, onPlay, onQuit func()) *Menu {
	panel := newPanel()
	panel.AddChild(newLabel(&fonts.title, "Slimes", titleTextColor))
	panel.AddChild(newButton(&fonts.body, "Play", onPlay))
	panel.AddChild(newButton(&fonts.body, "Quit", onQuit))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &Menu{ui: &ebitenui.UI{Container: root}}
}

func (m *Menu) Update() {
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}
