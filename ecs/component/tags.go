package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
