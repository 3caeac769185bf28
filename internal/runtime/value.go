// Package runtime holds the tagged runtime value system (spec.md §3, §4.1),
// the lexical environment chain (§4.2), and the callable/class/instance
// protocol (§4.4). It has no dependency on the evaluator: the evaluator
// imports runtime, never the reverse, so values can be constructed and
// inspected independently of how they get evaluated.
package runtime

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the tagged runtime value every Lox expression produces. The
// five variants are Nil, Bool, Number, String, and Object (itself split
// into Function, Class, Instance, NativeFunction) — spec.md §3 is
// explicit that this set is closed; Go's type switch over the concrete
// types below is how the "tag" is matched.
type Value interface {
	// Display renders the value the way a `print` statement does
	// (spec.md §4.1). It is distinct from fmt.Stringer's String so that
	// debugging helpers (tests, %v) can use a different, more verbose
	// representation without affecting Lox-visible output.
	Display() string
}

// Nil is the value of the `nil` literal and of an absent initializer.
type Nil struct{}

func (Nil) Display() string { return "nil" }

// Bool is a boolean value.
type Bool bool

func (b Bool) Display() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is Lox's only numeric type: an IEEE-754 double (spec.md §1).
type Number float64

// Display formats integral numbers without a decimal point and
// everything else as the shortest round-tripping decimal (spec.md §4.1).
func (n Number) Display() string {
	f := float64(n)
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is Lox's immutable UTF-8 text value.
type String string

func (s String) Display() string { return string(s) }

// Truthy implements spec.md §4.1: only Nil and Bool(false) are falsy;
// everything else — including 0, "", and an empty instance — is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}

// Equals implements spec.md §3's type-strict equality: values of
// differing variants are never equal, Number uses IEEE equality (so
// NaN != NaN), String uses codepoint equality, Bool and Nil use
// identity (there being only one value each), and Objects (Function,
// Class, Instance, NativeFunction) use Go reference identity.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Class:
		bv, ok := b.(*Class)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	case *NativeFunction:
		bv, ok := b.(*NativeFunction)
		return ok && av == bv
	default:
		return false
	}
}

// OperatorError is a typed failure from a primitive operator, reported
// verbatim as the RuntimeError message (spec.md §4.1, §7).
type OperatorError struct {
	Message string
}

func (e *OperatorError) Error() string { return e.Message }

func opErr(msg string) error { return &OperatorError{Message: msg} }

// Add implements `+`: numeric addition for two Numbers, concatenation
// for two Strings, and a TypeMismatch otherwise (spec.md §4.1).
func Add(l, r Value) (Value, error) {
	if ln, ok := l.(Number); ok {
		if rn, ok := r.(Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := l.(String); ok {
		if rs, ok := r.(String); ok {
			return ls + rs, nil
		}
	}
	return nil, opErr("Operands must be two numbers or two strings.")
}

// arithmetic implements `-`, `*`, `/` — both operands must be Number.
func arithmetic(l, r Value, op func(a, b float64) (float64, error)) (Value, error) {
	ln, ok := l.(Number)
	if !ok {
		return nil, opErr("Operands must be numbers.")
	}
	rn, ok := r.(Number)
	if !ok {
		return nil, opErr("Operands must be numbers.")
	}
	result, err := op(float64(ln), float64(rn))
	if err != nil {
		return nil, err
	}
	return Number(result), nil
}

func Subtract(l, r Value) (Value, error) {
	return arithmetic(l, r, func(a, b float64) (float64, error) { return a - b, nil })
}

func Multiply(l, r Value) (Value, error) {
	return arithmetic(l, r, func(a, b float64) (float64, error) { return a * b, nil })
}

func Divide(l, r Value) (Value, error) {
	return arithmetic(l, r, func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, opErr("Division by zero.")
		}
		return a / b, nil
	})
}

// compare implements `<`, `<=`, `>`, `>=` — both operands must be Number.
func compare(l, r Value, op func(a, b float64) bool) (Value, error) {
	ln, ok := l.(Number)
	if !ok {
		return nil, opErr("Operands must be numbers.")
	}
	rn, ok := r.(Number)
	if !ok {
		return nil, opErr("Operands must be numbers.")
	}
	return Bool(op(float64(ln), float64(rn))), nil
}

func Less(l, r Value) (Value, error)         { return compare(l, r, func(a, b float64) bool { return a < b }) }
func LessEqual(l, r Value) (Value, error)    { return compare(l, r, func(a, b float64) bool { return a <= b }) }
func Greater(l, r Value) (Value, error)      { return compare(l, r, func(a, b float64) bool { return a > b }) }
func GreaterEqual(l, r Value) (Value, error) { return compare(l, r, func(a, b float64) bool { return a >= b }) }

// Negate implements unary `-`.
func Negate(v Value) (Value, error) {
	n, ok := v.(Number)
	if !ok {
		return nil, opErr("Operand must be a number.")
	}
	return -n, nil
}

// Not implements unary `!`.
func Not(v Value) Value {
	return Bool(!Truthy(v))
}

// TypeName returns a short label naming v's variant, for diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case Nil:
		return "nil"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case *Function:
		return "function"
	case *NativeFunction:
		return "native function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		return fmt.Sprintf("%T", v)
	}
}
