package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/runtime"
)

func (e *Evaluator) evalExpr(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return literalValue(x.Value), nil

	case *ast.Grouping:
		return e.evalExpr(x.Expr, env)

	case *ast.Variable:
		return e.lookupVariable(x.Name, x.Distance, env)

	case *ast.Assign:
		v, err := e.evalExpr(x.Value, env)
		if err != nil {
			return nil, err
		}
		if err := e.assignVariable(x.Name, x.Distance, v, env); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.Unary:
		right, err := e.evalExpr(x.Right, env)
		if err != nil {
			return nil, err
		}
		return e.evalUnary(x.Operator, right)

	case *ast.Binary:
		left, err := e.evalExpr(x.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.evalExpr(x.Right, env)
		if err != nil {
			return nil, err
		}
		return e.evalBinary(x.Operator, left, right)

	case *ast.Logical:
		left, err := e.evalExpr(x.Left, env)
		if err != nil {
			return nil, err
		}
		switch x.Operator {
		case "and":
			if !runtime.Truthy(left) {
				return left, nil
			}
		case "or":
			if runtime.Truthy(left) {
				return left, nil
			}
		default:
			panic("evaluator: unknown logical operator " + x.Operator)
		}
		return e.evalExpr(x.Right, env)

	case *ast.Call:
		return e.evalCall(x, env)

	case *ast.Get:
		obj, err := e.evalExpr(x.Object, env)
		if err != nil {
			return nil, err
		}
		return e.getProperty(obj, x.Name)

	case *ast.Set:
		obj, err := e.evalExpr(x.Object, env)
		if err != nil {
			return nil, err
		}
		val, err := e.evalExpr(x.Value, env)
		if err != nil {
			return nil, err
		}
		if err := runtime.SetProperty(obj, x.Name, val); err != nil {
			return nil, wrapOperatorErr(err, FieldOnNonInstance)
		}
		return val, nil

	case *ast.This:
		return e.lookupVariable("this", x.Distance, env)

	case *ast.Super:
		return e.evalSuper(x, env)

	default:
		panic(fmt.Sprintf("evaluator: unknown expression %T", expr))
	}
}

func literalValue(v any) runtime.Value {
	switch t := v.(type) {
	case nil:
		return runtime.Nil{}
	case bool:
		return runtime.Bool(t)
	case float64:
		return runtime.Number(t)
	case string:
		return runtime.String(t)
	default:
		panic(fmt.Sprintf("evaluator: unsupported literal payload %T", v))
	}
}

func (e *Evaluator) lookupVariable(name string, distance *int, env *runtime.Environment) (runtime.Value, error) {
	if distance != nil {
		return env.GetAt(*distance, name), nil
	}
	v, err := e.globals.Get(name)
	if err != nil {
		return nil, wrapOperatorErr(err, UndefinedVariable)
	}
	return v, nil
}

func (e *Evaluator) assignVariable(name string, distance *int, value runtime.Value, env *runtime.Environment) error {
	if distance != nil {
		env.AssignAt(*distance, name, value)
		return nil
	}
	if err := e.globals.Assign(name, value); err != nil {
		return wrapOperatorErr(err, UndefinedVariable)
	}
	return nil
}

func (e *Evaluator) evalUnary(op string, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "-":
		v, err := runtime.Negate(right)
		if err != nil {
			return nil, wrapOperatorErr(err, TypeMismatch)
		}
		return v, nil
	case "!":
		return runtime.Not(right), nil
	default:
		panic("evaluator: unknown unary operator " + op)
	}
}

func (e *Evaluator) evalBinary(op string, left, right runtime.Value) (runtime.Value, error) {
	var (
		v   runtime.Value
		err error
	)
	switch op {
	case "+":
		v, err = runtime.Add(left, right)
	case "-":
		v, err = runtime.Subtract(left, right)
	case "*":
		v, err = runtime.Multiply(left, right)
	case "/":
		v, err = runtime.Divide(left, right)
	case "<":
		v, err = runtime.Less(left, right)
	case "<=":
		v, err = runtime.LessEqual(left, right)
	case ">":
		v, err = runtime.Greater(left, right)
	case ">=":
		v, err = runtime.GreaterEqual(left, right)
	case "==":
		return runtime.Bool(runtime.Equals(left, right)), nil
	case "!=":
		return runtime.Bool(!runtime.Equals(left, right)), nil
	default:
		panic("evaluator: unknown binary operator " + op)
	}
	if err != nil {
		kind := TypeMismatch
		if _, ok := err.(*runtime.OperatorError); ok && err.Error() == "Division by zero." {
			kind = DivisionByZero
		}
		return nil, wrapOperatorErr(err, kind)
	}
	return v, nil
}

// wrapOperatorErr lifts a runtime package error (OperatorError,
// UndefinedVariableError, UndefinedPropertyError,
// FieldOnNonInstanceError) into the evaluator's RuntimeError taxonomy
// (spec.md §7), preserving its message verbatim.
func wrapOperatorErr(err error, kind Kind) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: err.Error()}
}
