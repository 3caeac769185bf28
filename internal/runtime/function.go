package runtime

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a user-defined function or method value (spec.md §3). It
// carries everything the call protocol in spec.md §4.4 needs: the
// parameter names, the body to execute, and the environment it closed
// over at definition time. The actual call — pushing a new environment,
// binding parameters, running the body, and catching a non-local
// Return — is the evaluator's job (internal/evaluator/call.go), since it
// requires walking statements; Function itself only holds data plus the
// pure data transform Bind performs.
type Function struct {
	Name          string
	Params        []string
	Body          []ast.Statement
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Display() string { return "<fn " + f.Name + ">" }

// Bind produces a fresh Function sharing Params/Body, whose captured
// environment is a new child of f.Closure with `this` bound to
// instance (spec.md §4.4 "Method binding bind(instance)"). Two
// invocations of Bind on the same underlying method, even on different
// instances, never interfere: each gets its own environment layer.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// NativeFunction is a built-in callable implemented in Go, such as the
// `clock()` function spec.md §6 requires new_globals() to seed.
type NativeFunction struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (n *NativeFunction) Display() string { return "<native fn>" }
