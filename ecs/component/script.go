package component

// Script drives an entity's Input from a tengo script. Source, when set,
// is used instead of loading Path from the prefab scripts.
type Script struct {
	Path   string
	Source []byte
}

var ScriptComponent = NewComponent[Script]()
