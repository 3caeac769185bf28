// Package evaluator walks an already-resolved AST against a chain of
// runtime.Environments, producing side effects (print output) and
// returning nothing per successful statement — or a *RuntimeError that
// unwinds to the top-level Execute call (spec.md §2, §5, §7).
package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/cwbudde/go-lox/internal/runtime"
)

// Evaluator is the single-threaded, synchronous walking interpreter
// (spec.md §5). It holds no state that outlives one Execute call other
// than the globals environment passed in, so it is cheap to construct
// per run.
type Evaluator struct {
	out     io.Writer
	calls   *callStack
	globals *runtime.Environment
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithOutput redirects `print` output away from os.Stdout; tests use
// this to capture program output for comparison (spec.md §8 end-to-end
// scenarios).
func WithOutput(w io.Writer) Option {
	return func(e *Evaluator) { e.out = w }
}

// WithMaxCallDepth overrides the recursion guard from spec.md §5.
func WithMaxCallDepth(depth int) Option {
	return func(e *Evaluator) { e.calls = newCallStack(depth) }
}

// New creates an Evaluator bound to globals (spec.md §6: `execute(p,
// globals)` takes the environment the host prepared, typically via
// NewGlobals).
func New(globals *runtime.Environment, opts ...Option) *Evaluator {
	e := &Evaluator{
		out:     os.Stdout,
		calls:   newCallStack(0),
		globals: globals,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute validates program with the resolver, then evaluates it
// (spec.md §6). Resolver findings are returned as []*resolver.Error and
// abort before any statement runs; a nil resolver error slice plus a
// non-nil error means a RuntimeError occurred during evaluation.
func Execute(program *ast.Program, globals *runtime.Environment, opts ...Option) ([]*resolver.Error, error) {
	if errs := resolver.New().Resolve(program); len(errs) > 0 {
		return errs, nil
	}
	e := New(globals, opts...)
	return nil, e.Run(program)
}

// Run evaluates an already-resolved program against the Evaluator's
// globals environment. Callers that want to skip resolution (the CLI's
// --no-resolve debugging flag) call this directly.
func (e *Evaluator) Run(program *ast.Program) error {
	for _, s := range program.Statements {
		if _, err := e.execStmt(s, e.globals); err != nil {
			return err
		}
	}
	return nil
}

// control reports how a statement's execution should affect its
// caller: either "keep going" (none) or "a Return statement fired,
// carrying value, and it needs to propagate up to the nearest active
// call frame" (spec.md §5, §9 — modeled as an explicit result value
// rather than a panic/exception, per spec.md §9's recommendation).
type control struct {
	returning bool
	value     runtime.Value
}

var noControl = control{}

func (e *Evaluator) execStmt(s ast.Statement, env *runtime.Environment) (control, error) {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		_, err := e.evalExpr(st.Expr, env)
		return noControl, err

	case *ast.Print:
		v, err := e.evalExpr(st.Expr, env)
		if err != nil {
			return noControl, err
		}
		fmt.Fprintln(e.out, v.Display())
		return noControl, nil

	case *ast.Var:
		v, err := e.evalExpr(st.Initializer, env)
		if err != nil {
			return noControl, err
		}
		env.Define(st.Name, v)
		return noControl, nil

	case *ast.Block:
		return e.execBlock(st.Stmts, runtime.NewEnclosedEnvironment(env))

	case *ast.If:
		cond, err := e.evalExpr(st.Condition, env)
		if err != nil {
			return noControl, err
		}
		if runtime.Truthy(cond) {
			return e.execStmt(st.Then, env)
		}
		if st.Else != nil {
			return e.execStmt(st.Else, env)
		}
		return noControl, nil

	case *ast.While:
		for {
			cond, err := e.evalExpr(st.Condition, env)
			if err != nil {
				return noControl, err
			}
			if !runtime.Truthy(cond) {
				return noControl, nil
			}
			ctrl, err := e.execStmt(st.Body, env)
			if err != nil || ctrl.returning {
				return ctrl, err
			}
		}

	case *ast.Return:
		v, err := e.evalExpr(st.Expr, env)
		if err != nil {
			return noControl, err
		}
		return control{returning: true, value: v}, nil

	case *ast.FunctionDecl:
		env.Define(st.Name, &runtime.Function{
			Name:    st.Name,
			Params:  st.Params,
			Body:    st.Body,
			Closure: env,
		})
		return noControl, nil

	case *ast.ClassDecl:
		return noControl, e.execClassDecl(st, env)

	default:
		panic(fmt.Sprintf("evaluator: unknown statement %T", s))
	}
}

// execBlock runs stmts in env (already the pushed child scope,
// spec.md §4.6 "Block") and stops at the first error or Return.
func (e *Evaluator) execBlock(stmts []ast.Statement, env *runtime.Environment) (control, error) {
	for _, s := range stmts {
		ctrl, err := e.execStmt(s, env)
		if err != nil || ctrl.returning {
			return ctrl, err
		}
	}
	return noControl, nil
}
