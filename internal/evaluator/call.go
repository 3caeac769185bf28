package evaluator

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/runtime"
)

func (e *Evaluator) evalCall(call *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := e.evalExpr(call.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, len(call.Arguments))
	for i, a := range call.Arguments {
		v, err := e.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return e.call(callee, args)
}

// call dispatches a call by the callee's runtime variant (spec.md
// §4.6 Call row): Function, Class, or NativeFunction. Anything else
// fails CallOfNonCallable.
func (e *Evaluator) call(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.Function:
		return e.callFunction(fn, args)
	case *runtime.Class:
		return e.callClass(fn, args)
	case *runtime.NativeFunction:
		return e.callNative(fn, args)
	default:
		return nil, runtimeErr(CallOfNonCallable, "Can only call functions and classes.")
	}
}

// callFunction implements the function call protocol in spec.md §4.4.
func (e *Evaluator) callFunction(fn *runtime.Function, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, arityMismatch(len(fn.Params), len(args))
	}

	if err := e.calls.push(); err != nil {
		return nil, err
	}
	defer e.calls.pop()

	callEnv := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}

	ctrl, err := e.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		// spec.md §4.4 step 6: discard whatever `return` produced and
		// hand back the instance instead. fn.Closure is the
		// environment Bind created, which holds `this` directly
		// (distance 0) — not callEnv, whose `this` is one hop further
		// out.
		return fn.Closure.GetAt(0, "this"), nil
	}

	if ctrl.returning {
		return ctrl.value, nil
	}
	return runtime.Nil{}, nil
}

// callClass implements spec.md §4.4 "Class call (construction)".
func (e *Evaluator) callClass(class *runtime.Class, args []runtime.Value) (runtime.Value, error) {
	instance := runtime.NewInstance(class)

	if init := class.FindMethod("init"); init != nil {
		if _, err := e.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, arityMismatch(0, len(args))
	}

	return instance, nil
}

func (e *Evaluator) callNative(fn *runtime.NativeFunction, args []runtime.Value) (runtime.Value, error) {
	if len(args) != fn.Arity {
		return nil, arityMismatch(fn.Arity, len(args))
	}
	v, err := fn.Fn(args)
	if err != nil {
		return nil, runtimeErr(TypeMismatch, "%s", err.Error())
	}
	return v, nil
}

// getProperty implements the Get row of spec.md §4.6 / §4.4: only
// Instance values have properties.
func (e *Evaluator) getProperty(obj runtime.Value, name string) (runtime.Value, error) {
	inst, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, runtimeErr(FieldOnNonInstance, "Only instances have properties.")
	}
	v, err := inst.Get(name)
	if err != nil {
		return nil, wrapOperatorErr(err, UndefinedProperty)
	}
	return v, nil
}

// evalSuper implements spec.md §4.4 "super access": resolve `super` at
// its statically computed distance to get the base class, resolve
// `this` one scope further in, look the method up on the base, and
// bind it to `this`.
func (e *Evaluator) evalSuper(expr *ast.Super, env *runtime.Environment) (runtime.Value, error) {
	distance := *expr.Distance
	superVal := env.GetAt(distance, "super")
	base, ok := superVal.(*runtime.Class)
	if !ok {
		panic("evaluator: 'super' binding is not a class")
	}
	thisVal := env.GetAt(distance-1, "this")
	instance, ok := thisVal.(*runtime.Instance)
	if !ok {
		panic("evaluator: 'this' binding is not an instance")
	}

	method := base.FindMethod(expr.Method)
	if method == nil {
		return nil, runtimeErr(UndefinedProperty, "Undefined property '%s'.", expr.Method)
	}
	return method.Bind(instance), nil
}
