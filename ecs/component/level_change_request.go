package component

type SceneKind uint8

const (
	SceneReload SceneKind = iota + 1
	SceneMainMenu
)

// SceneRequest asks the host to switch scenes at the end of the frame.
type SceneRequest struct {
	Kind SceneKind
}

var SceneRequestComponent = NewComponent[SceneRequest]()
