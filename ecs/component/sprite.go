package component

import "image/color"

type SpriteShape uint8

const (
	SpriteBox SpriteShape = iota
	SpriteBlob
	SpriteGem
	SpriteFlag
)

// Sprite is the flat-shaded look of an entity. Hidden entities are skipped
// by the renderer.
type Sprite struct {
	Shape  SpriteShape
	Color  color.Color
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
