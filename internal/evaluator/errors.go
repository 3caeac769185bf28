package evaluator

import "fmt"

// Kind enumerates the RuntimeError kinds named in spec.md §7. Every
// runtime failure the evaluator produces carries one of these, which
// lets a host map errors to behavior (exit code, retry, etc.) without
// string-matching messages.
type Kind int

const (
	TypeMismatch Kind = iota
	DivisionByZero
	UndefinedVariable
	UndefinedProperty
	FieldOnNonInstance
	CallOfNonCallable
	ArityMismatch
	SuperclassNotAClass
	StackOverflow
)

func (k Kind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case UndefinedVariable:
		return "UndefinedVariable"
	case UndefinedProperty:
		return "UndefinedProperty"
	case FieldOnNonInstance:
		return "FieldOnNonInstance"
	case CallOfNonCallable:
		return "CallOfNonCallable"
	case ArityMismatch:
		return "ArityMismatch"
	case SuperclassNotAClass:
		return "SuperclassNotAClass"
	case StackOverflow:
		return "StackOverflow"
	default:
		return "RuntimeError"
	}
}

// RuntimeError is the single error type the evaluator ever returns for
// a Lox-level failure (spec.md §7: "RuntimeError, with kinds: ..."). It
// unwinds the evaluator to the top-level Execute call and is surfaced
// to the host verbatim; nothing inside the core catches or recovers it
// (spec.md §7 Propagation).
type RuntimeError struct {
	Kind    Kind
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func runtimeErr(kind Kind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func arityMismatch(expected, got int) *RuntimeError {
	return runtimeErr(ArityMismatch, "Expected %d arguments but got %d.", expected, got)
}
