package component

// RenderLayer is used to sort draw order deterministically. Lower layers
// draw first; ties sort by height then depth.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
