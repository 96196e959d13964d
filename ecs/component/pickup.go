package component

// Pickup is a collectible. A collected pickup is no longer a trigger and is
// not drawn.
type Pickup struct {
	Collected bool
}

var PickupComponent = NewComponent[Pickup]()

// WinMarker ends the level when the player reaches it.
type WinMarker struct {
	Reached bool
}

var WinMarkerComponent = NewComponent[WinMarker]()
