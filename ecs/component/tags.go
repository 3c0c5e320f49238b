package component

// PlayerTag marks the keyboard-driven fighter.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
