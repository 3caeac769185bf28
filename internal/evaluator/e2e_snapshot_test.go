package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-lox/internal/evaluator"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

// TestEndToEndPrograms runs whole Lox programs end to end and snapshots
// their printed output, grounded on the teacher's fixture-driven
// snapshot tests (internal/interp/fixture_test.go) but scaled down to a
// handful of inline programs instead of an external fixture corpus.
func TestEndToEndPrograms(t *testing.T) {
	programs := []struct {
		name string
		src  string
	}{
		{
			name: "fibonacci",
			src: `
				fun fib(n) {
					if (n < 2) return n;
					return fib(n - 1) + fib(n - 2);
				}
				for (var i = 0; i < 8; i = i + 1) {
					print fib(i);
				}
			`,
		},
		{
			name: "class_hierarchy",
			src: `
				class Shape {
					area() { return 0; }
					describe() {
						print "area =";
						return this.area();
					}
				}
				class Circle < Shape {
					init(radius) {
						this.radius = radius;
					}
					area() {
						return 3 * this.radius * this.radius;
					}
				}
				var c = Circle(2);
				print c.describe();
			`,
		},
		{
			name: "closures_and_counters",
			src: `
				fun makeCounter() {
					var count = 0;
					fun increment() {
						count = count + 1;
						return count;
					}
					return increment;
				}
				var a = makeCounter();
				var b = makeCounter();
				print a();
				print a();
				print b();
			`,
		},
	}

	for _, tc := range programs {
		t.Run(tc.name, func(t *testing.T) {
			program, perrs := parser.Parse(lexer.New(tc.src))
			if len(perrs) > 0 {
				t.Fatalf("parse errors: %v", perrs)
			}
			var buf bytes.Buffer
			resolveErrs, err := evaluator.Execute(program, evaluator.NewGlobals(), evaluator.WithOutput(&buf))
			if len(resolveErrs) > 0 {
				t.Fatalf("resolve errors: %v", resolveErrs)
			}
			if err != nil {
				t.Fatalf("runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, buf.String())
		})
	}
}
