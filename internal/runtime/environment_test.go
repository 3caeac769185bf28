package runtime

import "testing"

func TestEnvironmentDefineGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Number(1))

	v, err := env.Get("x")
	if err != nil || v != Value(Number(1)) {
		t.Fatalf("Get(x) = %v, %v", v, err)
	}

	if _, err := env.Get("missing"); err == nil {
		t.Fatal("expected an error looking up an undeclared name")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Number(1))

	inner := NewEnclosedEnvironment(outer)
	inner.Define("x", Number(2))

	v, _ := inner.Get("x")
	if v != Value(Number(2)) {
		t.Fatalf("inner shadow: got %v, want 2", v)
	}
	v, _ = outer.Get("x")
	if v != Value(Number(1)) {
		t.Fatalf("outer unaffected: got %v, want 1", v)
	}
}

func TestEnvironmentAssignNeverDeclares(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign("x", Number(1)); err == nil {
		t.Fatal("assigning to an undeclared name should fail")
	}
}

func TestEnvironmentAssignWalksOuter(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("x", Number(1))
	inner := NewEnclosedEnvironment(outer)

	if err := inner.Assign("x", Number(5)); err != nil {
		t.Fatalf("Assign from inner scope: %v", err)
	}
	v, _ := outer.Get("x")
	if v != Value(Number(5)) {
		t.Fatalf("outer binding should have been updated, got %v", v)
	}
}

func TestEnvironmentGetAtAssignAt(t *testing.T) {
	global := NewEnvironment()
	global.Define("x", Number(1))
	a := NewEnclosedEnvironment(global)
	b := NewEnclosedEnvironment(a)

	if got := b.GetAt(2, "x"); got != Value(Number(1)) {
		t.Fatalf("GetAt(2, x) = %v, want 1", got)
	}

	b.AssignAt(2, "x", Number(9))
	if got := global.store["x"]; got != Value(Number(9)) {
		t.Fatalf("AssignAt should reach the global scope, got %v", got)
	}
}
