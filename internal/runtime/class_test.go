package runtime

import "testing"

func TestFindMethodWalksSuperclass(t *testing.T) {
	greet := &Function{Name: "greet"}
	base := &Class{Name: "Base", Methods: map[string]*Function{"greet": greet}}
	derived := &Class{Name: "Derived", Methods: map[string]*Function{}, Superclass: base}

	if derived.FindMethod("greet") != greet {
		t.Error("expected FindMethod to walk into the superclass")
	}
	if derived.FindMethod("missing") != nil {
		t.Error("expected a nil result for a method that exists nowhere in the chain")
	}
}

func TestInstanceGetFieldBeatsMethod(t *testing.T) {
	method := &Function{Name: "x"}
	class := &Class{Name: "C", Methods: map[string]*Function{"x": method}}
	inst := NewInstance(class)
	inst.Fields["x"] = Number(42)

	v, err := inst.Get("x")
	if err != nil || v != Value(Number(42)) {
		t.Fatalf("field should win over method, got %v, %v", v, err)
	}
}

func TestInstanceGetBindsMethod(t *testing.T) {
	method := &Function{Name: "m", Closure: NewEnvironment()}
	class := &Class{Name: "C", Methods: map[string]*Function{"m": method}}
	inst := NewInstance(class)

	v, err := inst.Get("m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bound, ok := v.(*Function)
	if !ok {
		t.Fatalf("expected a *Function, got %T", v)
	}
	this, err := bound.Closure.Get("this")
	if err != nil || this != Value(inst) {
		t.Fatalf("bound method should close over this=instance, got %v, %v", this, err)
	}
}

func TestInstanceGetUndefinedProperty(t *testing.T) {
	inst := NewInstance(&Class{Name: "C", Methods: map[string]*Function{}})
	if _, err := inst.Get("nope"); err == nil {
		t.Fatal("expected an UndefinedPropertyError")
	}
}

func TestSetPropertyRejectsNonInstance(t *testing.T) {
	if err := SetProperty(Number(1), "x", Number(2)); err == nil {
		t.Fatal("expected an error setting a field on a non-instance")
	}
}
