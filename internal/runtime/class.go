package runtime

// Class is a Lox class value (spec.md §3): a name, its own methods
// keyed by name, and an optional base class. Lookup semantics already
// walk the base chain (FindMethod), so — per spec.md §4.5 step 5 — a
// Class only needs to store its *own* methods, not a merged copy of
// its ancestors'.
type Class struct {
	Name       string
	Methods    map[string]*Function
	Superclass *Class
}

func (c *Class) Display() string { return c.Name }

// FindMethod implements spec.md §4.4's get_method(name): check this
// class's own methods, then recurse into the base class, then give up.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}
