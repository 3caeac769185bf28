package parser_test

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, errs := parser.Parse(lexer.New(src))
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return program
}

func TestParsePrecedence(t *testing.T) {
	program := parse(t, "print 1 + 2 * 3;")
	stmt := program.Statements[0].(*ast.Print)
	bin := stmt.Expr.(*ast.Binary)
	if bin.Operator != "+" {
		t.Fatalf("top operator = %q, want +", bin.Operator)
	}
	right := bin.Right.(*ast.Binary)
	if right.Operator != "*" {
		t.Fatalf("right operator = %q, want *", right.Operator)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	program := parse(t, "a = b = 3;")
	stmt := program.Statements[0].(*ast.ExpressionStmt)
	assign := stmt.Expr.(*ast.Assign)
	if assign.Name != "a" {
		t.Fatalf("outer target = %q, want a", assign.Name)
	}
	inner, ok := assign.Value.(*ast.Assign)
	if !ok || inner.Name != "b" {
		t.Fatalf("inner assign = %#v", assign.Value)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, errs := parser.Parse(lexer.New("1 = 2;"))
	if len(errs) == 0 {
		t.Fatal("expected an error for an invalid assignment target")
	}
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	program := parse(t, `
		class Animal {
			speak() { print "..."; }
		}
		class Dog < Animal {
			speak() { print "Woof"; }
		}
	`)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(program.Statements))
	}
	dog := program.Statements[1].(*ast.ClassDecl)
	if dog.Superclass == nil || dog.Superclass.Name != "Animal" {
		t.Fatalf("expected Dog < Animal, got %#v", dog.Superclass)
	}
	if len(dog.Methods) != 1 || dog.Methods[0].Name != "speak" {
		t.Fatalf("unexpected methods: %#v", dog.Methods)
	}
}

func TestParseForLoopDesugarsToWhile(t *testing.T) {
	program := parse(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	block := program.Statements[0].(*ast.Block)
	if len(block.Stmts) != 2 {
		t.Fatalf("expected [initializer, while], got %d statements", len(block.Stmts))
	}
	if _, ok := block.Stmts[0].(*ast.Var); !ok {
		t.Fatalf("expected the first lowered statement to be the initializer, got %#v", block.Stmts[0])
	}
	while, ok := block.Stmts[1].(*ast.While)
	if !ok {
		t.Fatalf("expected a While, got %#v", block.Stmts[1])
	}
	body := while.Body.(*ast.Block)
	if len(body.Stmts) != 2 {
		t.Fatalf("expected [print, increment] inside the while body, got %d", len(body.Stmts))
	}
}

func TestParseCallAndGetChain(t *testing.T) {
	program := parse(t, "print a.b(1, 2).c;")
	stmt := program.Statements[0].(*ast.Print)
	get := stmt.Expr.(*ast.Get)
	if get.Name != "c" {
		t.Fatalf("outer property = %q, want c", get.Name)
	}
	call := get.Object.(*ast.Call)
	if len(call.Arguments) != 2 {
		t.Fatalf("expected 2 call arguments, got %d", len(call.Arguments))
	}
}
