package object

// Environment is the variable binding table for one program run. The
// language has a single flat scope: no parents, no shadowing. A rebinding
// replaces the prior value.
type Environment struct {
	store map[string]Object
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// Get looks up a binding by name.
func (e *Environment) Get(name string) (Object, bool) {
	val, ok := e.store[name]
	return val, ok
}

// Set binds a value under name, overwriting any prior binding.
func (e *Environment) Set(name string, val Object) {
	e.store[name] = val
}
