package evaluator

import (
	"time"

	"github.com/cwbudde/go-lox/internal/runtime"
)

// NewGlobals builds the environment a fresh run starts with, seeded
// with the native functions spec.md §6 names: `clock()` returns the
// number of seconds since the Unix epoch as a Lox number.
func NewGlobals() *runtime.Environment {
	env := runtime.NewEnvironment()
	env.Define("clock", &runtime.NativeFunction{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []runtime.Value) (runtime.Value, error) {
			return runtime.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
	return env
}
