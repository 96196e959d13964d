package component

import (
	"fmt"
	"strings"
)

// Category classifies physical objects. It replaces string tags on shapes.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryGround
	CategoryWall
	CategoryPickUp
	CategoryWinMarker
	CategoryPlayer
	CategoryEnemy
	CategoryPuzzle
)

var categoryNames = map[Category]string{
	CategoryNone:      "none",
	CategoryGround:    "ground",
	CategoryWall:      "wall",
	CategoryPickUp:    "pickup",
	CategoryWinMarker: "win_marker",
	CategoryPlayer:    "player",
	CategoryEnemy:     "enemy",
	CategoryPuzzle:    "puzzle",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// Category lets a bare Category satisfy Categorized.
func (c Category) Category() Category {
	return c
}

// Bit is the Chipmunk shape filter bit for the category.
func (c Category) Bit() uint {
	if c == CategoryNone {
		return 0
	}
	return 1 << (uint(c) - 1)
}

func ParseCategory(s string) (Category, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == want {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Categorized is implemented by anything that can report its category,
// such as the user data attached to physics shapes.
type Categorized interface {
	Category() Category
}

var CategoryComponent = NewComponent[Category]()
