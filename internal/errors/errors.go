// Package errors formats the diagnostics the CLI surfaces for parser
// syntax errors and resolver semantic errors, each with a source line
// and a caret pointing at the offending column. Evaluator RuntimeErrors
// carry no position and are printed by the CLI as plain text, not
// through this package.
// It is grounded on the teacher's internal/errors package but swaps its
// hand-rolled ANSI escapes for github.com/fatih/color, matching how
// sam-decook-lox's test harness colors its own diagnostic output.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cwbudde/go-lox/internal/token"
)

var (
	caretColor   = color.New(color.FgRed, color.Bold)
	messageColor = color.New(color.Bold)
	dimColor     = color.New(color.Faint)
)

// Diagnostic is a single reportable failure: a parser syntax error or a
// resolver Error, reduced to a message plus a best-effort position
// (spec.md §7).
type Diagnostic struct {
	Message string
	Source  string
	Pos     token.Position
}

// Format renders the diagnostic the way the CLI prints it: a header line,
// the offending source line, a caret, and the message. color.NoColor
// (set globally by fatih/color based on terminal detection, or forced by
// the CLI's --no-color flag) governs whether escapes are emitted at all.
func (d *Diagnostic) Format() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Error at line %d:%d\n", d.Pos.Line, d.Pos.Column)

	if line := sourceLine(d.Source, d.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		dimColor.Fprint(&sb, prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+max(d.Pos.Column-1, 0)))
		caretColor.Fprintln(&sb, "^")
	}

	messageColor.Fprint(&sb, d.Message)
	return sb.String()
}

func (d *Diagnostic) Error() string { return d.Format() }

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatAll renders a batch of diagnostics the way the CLI reports
// multiple resolver or syntax errors from a single run, per spec.md §7's
// "all are reported, none are swallowed" resolver contract.
func FormatAll(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d/%d] ", i+1, len(diags))
		sb.WriteString(d.Format())
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
