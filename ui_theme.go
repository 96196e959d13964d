package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	textColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonHover    = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	buttonPressed  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	healthTrack    = color.NRGBA{R: 0x40, G: 0x10, B: 0x10, A: 0xff}
	healthFill     = color.NRGBA{R: 0xd9, G: 0x3b, B: 0x3b, A: 0xff}
	btnTextColor   = &widget.ButtonTextColor{Idle: textColor}
	titleTextColor = color.NRGBA{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff}
)

type uiFonts struct {
	body  text.Face
	title text.Face
}

func loadFonts() (*uiFonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &uiFonts{
		body:  &text.GoTextFace{Source: regular, Size: 20},
		title: &text.GoTextFace{Source: bold, Size: 40},
	}, nil
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newButton(face *text.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    solidNineSlice(buttonColor),
			Hover:   solidNineSlice(buttonHover),
			Pressed: solidNineSlice(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, face, btnTextColor),
		widget.ButtonOpts.TextPadding(&widget.Insets{Left: 16, Right: 16, Top: 6, Bottom: 6}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newLabel(face *text.Face, label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// newPanel is a centred vertical panel.
func newPanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	c.GetWidget().Visibility = widget.Visibility_Hide
}
