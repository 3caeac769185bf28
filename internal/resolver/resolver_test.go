package resolver_test

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

func resolve(t *testing.T, src string) []*resolver.Error {
	t.Helper()
	l := lexer.New(src)
	program, perrs := parser.Parse(l)
	if len(perrs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, perrs)
	}
	return resolver.New().Resolve(program)
}

func TestResolveCleanProgram(t *testing.T) {
	src := `
		var a = 1;
		{
			var b = a + 1;
			print b;
		}
	`
	if errs := resolve(t, src); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestDuplicateDeclarationInBlock(t *testing.T) {
	src := `{ var a = 1; var a = 2; }`
	errs := resolve(t, src)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	errs := resolve(t, `return 1;`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestReturnValueFromInitializer(t *testing.T) {
	src := `
		class Foo {
			init() { return 1; }
		}
	`
	errs := resolve(t, src)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestBareReturnFromInitializerIsFine(t *testing.T) {
	src := `
		class Foo {
			init() { return; }
		}
	`
	if errs := resolve(t, src); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestThisOutsideClass(t *testing.T) {
	errs := resolve(t, `print this;`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	errs := resolve(t, `class Foo < Foo {}`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestSuperOutsideSubclass(t *testing.T) {
	src := `
		class Foo {
			bar() { super.bar(); }
		}
	`
	errs := resolve(t, src)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestReadLocalInOwnInitializer(t *testing.T) {
	errs := resolve(t, `{ var a = a; }`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestDuplicateParameterName(t *testing.T) {
	errs := resolve(t, `fun f(a, a) { print a; }`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}
