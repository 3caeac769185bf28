// Package resolver implements the semantic pre-pass described in
// spec.md §4.5: before any statement runs, it walks the AST once,
// annotating Variable/Assign/This/Super nodes with the scope distance
// from their use to the scope that defines them, and rejecting the
// handful of static misuses the core is responsible for ("this"/
// "super" outside a class, "return" outside a function, duplicate
// declarations in one block). Lexing/parsing/"reserved words as
// identifiers" are the parser's job (spec.md §9); this pass only sees
// an already-built AST.
package resolver

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
)

// Error is one static finding. Resolve collects every one it can before
// returning, matching go-dws's Analyzer, which gathers the full error
// list instead of stopping at the first problem.
type Error struct {
	Message string
	Pos     ast.Node
}

func (e *Error) Error() string { return e.Message }

type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (spec.md
// §4.5's "cannot read local variable in its own initializer" check:
// declared-but-not-yet-defined is distinguishable from fully defined).
type scope map[string]bool

// Resolver performs the single static pass. Construct one with New and
// call Resolve once per program.
type Resolver struct {
	scopes       []scope
	errors       []*Error
	currentFunc  funcType
	currentClass classType
}

// New creates a Resolver ready to resolve one program.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks program, annotating it in place. It returns every
// SemanticError found; a non-empty result means execution must not
// begin (spec.md §4.5, §7).
func (r *Resolver) Resolve(program *ast.Program) []*Error {
	for _, s := range program.Statements {
		r.resolveStmt(s)
	}
	return r.errors
}

func (r *Resolver) errorf(node ast.Node, format string, args ...any) {
	r.errors = append(r.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: node})
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

// declare marks name as present but not yet initialized in the
// innermost scope, failing if it duplicates an existing declaration in
// that same scope (spec.md §4.5: "variable already declared in this
// scope"). No-op at global scope, matching spec.md §4.2's "redefinition
// at global scope is allowed".
func (r *Resolver) declare(node ast.Node, name string) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name]; ok {
		r.errorf(node, "variable already declared in this scope")
		return
	}
	sc[name] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks the scope stack innermost-first and, on a match,
// records the hop count into distance.
func (r *Resolver) resolveLocal(name string, distance **int) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			d := len(r.scopes) - 1 - i
			*distance = &d
			return
		}
	}
	// Not found in any local scope: treated as a global (spec.md §4.5).
	*distance = nil
}

func (r *Resolver) resolveStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(st.Expr)
	case *ast.Print:
		r.resolveExpr(st.Expr)
	case *ast.Var:
		r.declare(st, st.Name)
		r.resolveExpr(st.Initializer)
		r.define(st.Name)
	case *ast.Block:
		r.beginScope()
		for _, inner := range st.Stmts {
			r.resolveStmt(inner)
		}
		r.endScope()
	case *ast.If:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Then)
		if st.Else != nil {
			r.resolveStmt(st.Else)
		}
	case *ast.While:
		r.resolveExpr(st.Condition)
		r.resolveStmt(st.Body)
	case *ast.Return:
		if r.currentFunc == funcNone {
			r.errorf(st, "'return' outside a function")
			return
		}
		if r.currentFunc == funcInitializer {
			if lit, ok := st.Expr.(*ast.Literal); !ok || lit.Value != nil {
				r.errorf(st, "cannot return a value from an initializer")
				return
			}
		}
		r.resolveExpr(st.Expr)
	case *ast.FunctionDecl:
		r.declare(st, st.Name)
		r.define(st.Name)
		r.resolveFunction(st, funcFunction)
	case *ast.ClassDecl:
		r.resolveClass(st)
	default:
		panic(fmt.Sprintf("resolver: unknown statement %T", s))
	}
}

func (r *Resolver) resolveFunction(decl *ast.FunctionDecl, kind funcType) {
	enclosing := r.currentFunc
	r.currentFunc = kind

	r.beginScope()
	seen := map[string]bool{}
	for _, p := range decl.Params {
		if seen[p] {
			r.errorf(decl, "duplicate parameter name %q", p)
			continue
		}
		seen[p] = true
		r.declare(decl, p)
		r.define(p)
	}
	for _, s := range decl.Body {
		r.resolveStmt(s)
	}
	r.endScope()

	r.currentFunc = enclosing
}

func (r *Resolver) resolveClass(decl *ast.ClassDecl) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(decl, decl.Name)
	r.define(decl.Name)

	if decl.Superclass != nil {
		r.currentClass = classSubclass
		if decl.Superclass.Name == decl.Name {
			r.errorf(decl, "a class cannot inherit from itself")
		}
		r.resolveExpr(decl.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range decl.Methods {
		kind := funcMethod
		if method.Name == "init" {
			kind = funcInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if decl.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(e ast.Expression) {
	switch ex := e.(type) {
	case *ast.Literal:
		// nothing to resolve
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][ex.Name]; declared && !defined {
				r.errorf(ex, "cannot read local variable in its own initializer")
			}
		}
		r.resolveLocal(ex.Name, &ex.Distance)
	case *ast.Assign:
		r.resolveExpr(ex.Value)
		r.resolveLocal(ex.Name, &ex.Distance)
	case *ast.Unary:
		r.resolveExpr(ex.Right)
	case *ast.Binary:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *ast.Logical:
		r.resolveExpr(ex.Left)
		r.resolveExpr(ex.Right)
	case *ast.Call:
		r.resolveExpr(ex.Callee)
		for _, a := range ex.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(ex.Object)
	case *ast.Set:
		r.resolveExpr(ex.Value)
		r.resolveExpr(ex.Object)
	case *ast.This:
		if r.currentClass == classNone {
			r.errorf(ex, "'this' outside of a class")
			return
		}
		r.resolveLocal("this", &ex.Distance)
	case *ast.Super:
		if r.currentClass == classNone {
			r.errorf(ex, "'super' outside of a class with no base")
			return
		}
		if r.currentClass != classSubclass {
			r.errorf(ex, "'super' outside of a class with no base")
			return
		}
		r.resolveLocal("super", &ex.Distance)
	case *ast.Grouping:
		r.resolveExpr(ex.Expr)
	default:
		panic(fmt.Sprintf("resolver: unknown expression %T", e))
	}
}
