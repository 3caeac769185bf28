package evaluator

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/runtime"
)

// execClassDecl implements the class-declaration evaluation sequence
// from spec.md §4.5: resolve the superclass (if any), bind the class
// name early so methods can refer to it recursively, wrap a `super`
// scope around method closures when there's a superclass, then build
// and install the Class value.
func (e *Evaluator) execClassDecl(decl *ast.ClassDecl, env *runtime.Environment) error {
	var superclass *runtime.Class
	if decl.Superclass != nil {
		v, err := e.evalExpr(decl.Superclass, env)
		if err != nil {
			return err
		}
		cls, ok := v.(*runtime.Class)
		if !ok {
			return runtimeErr(SuperclassNotAClass, "Superclass must be a class.")
		}
		superclass = cls
	}

	env.Define(decl.Name, runtime.Nil{})

	methodEnv := env
	if superclass != nil {
		methodEnv = runtime.NewEnclosedEnvironment(env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(decl.Methods))
	for _, m := range decl.Methods {
		methods[m.Name] = &runtime.Function{
			Name:          m.Name,
			Params:        m.Params,
			Body:          m.Body,
			Closure:       methodEnv,
			IsInitializer: m.Name == "init",
		}
	}

	class := &runtime.Class{
		Name:       decl.Name,
		Methods:    methods,
		Superclass: superclass,
	}

	return env.Assign(decl.Name, class)
}
