package component

// Buttons is the held state of every fighter control.
type Buttons struct {
	Left   bool
	Right  bool
	Jump   bool
	Crouch bool
}

// Input stores this tick's and last tick's buttons for an entity. The
// keyboard or a script writes Held; the intent system reads the edges.
type Input struct {
	Held Buttons
	Prev Buttons
}

var InputComponent = NewComponent[Input]()
