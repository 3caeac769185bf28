package runtime

import "fmt"

// Instance is a Lox object: a Class and a mutable field map (spec.md
// §3). Field lookups and method lookups share one namespace from the
// caller's point of view (`instance.foo` may resolve to either), which
// is why Get tries fields before methods.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates a fresh, fieldless instance of class (spec.md
// §4.4 "Class call (construction)" step 1). Running `init`, if any, is
// the evaluator's job since it requires executing statements.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) Display() string { return i.Class.Name + " instance" }

// Get implements spec.md §4.4 property read: a field wins over a
// method of the same name; if neither exists, UndefinedPropertyError.
// A method found this way comes back already bound to i.
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), nil
	}
	return nil, &UndefinedPropertyError{Name: name}
}

// Set implements spec.md §4.4 property write: it always writes a
// field, creating one if absent. Lox has no notion of a read-only
// field, so Set never fails for an Instance receiver — SetProperty
// (below) is what rejects non-Instance receivers.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}

// UndefinedPropertyError is the RuntimeError kind for a Get/Super
// lookup that finds neither a field nor a method (spec.md §4.4, §7).
type UndefinedPropertyError struct {
	Name string
}

func (e *UndefinedPropertyError) Error() string {
	return fmt.Sprintf("Undefined property '%s'.", e.Name)
}

// FieldOnNonInstanceError is the RuntimeError kind for `Set` on a
// non-Instance value (spec.md §4.4: "Only instances have fields.").
type FieldOnNonInstanceError struct{}

func (e *FieldOnNonInstanceError) Error() string {
	return "Only instances have fields."
}

// SetProperty implements the Set expression's full dispatch: Instance
// receivers write a field, anything else fails.
func SetProperty(obj Value, name string, value Value) error {
	inst, ok := obj.(*Instance)
	if !ok {
		return &FieldOnNonInstanceError{}
	}
	inst.Set(name, value)
	return nil
}
