package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/evaluator"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

var (
	evalExpr    string
	dumpAST     bool
	noResolve   bool
	maxCallDepth int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox script file or an inline expression",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  lox run script.lox
  lox run -e "print 1 + 2;"
  lox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before running")
	runCmd.Flags().BoolVar(&noResolve, "no-resolve", false, "skip the resolver pass (debugging only; this can change variable binding behavior)")
	runCmd.Flags().IntVar(&maxCallDepth, "max-call-depth", evaluator.DefaultMaxCallDepth, "maximum call stack depth before a StackOverflow error")
}

func runScript(cmd *cobra.Command, args []string) error {
	applyLoxrcDefaults(cmd)

	var source, filename string

	switch {
	case evalExpr != "":
		source, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	l := lexer.New(source)
	program, parseErrs := parser.Parse(l)
	if len(parseErrs) > 0 {
		diags := make([]*errors.Diagnostic, len(parseErrs))
		for i, e := range parseErrs {
			diags[i] = &errors.Diagnostic{Message: e.Message, Source: source, Pos: e.Pos}
		}
		fmt.Fprintln(os.Stderr, errors.FormatAll(diags))
		return &exitError{code: ExitDataError}
	}

	if dumpAST {
		fmt.Println(program.String())
	}

	globals := evaluator.NewGlobals()
	opts := []evaluator.Option{evaluator.WithMaxCallDepth(maxCallDepth)}

	if noResolve {
		if err := evaluator.New(globals, opts...).Run(program); err != nil {
			return runtimeExit(err, source)
		}
		return nil
	}

	if resolveErrs := resolver.New().Resolve(program); len(resolveErrs) > 0 {
		diags := make([]*errors.Diagnostic, len(resolveErrs))
		for i, e := range resolveErrs {
			diags[i] = &errors.Diagnostic{Message: e.Message, Source: source, Pos: e.Pos.Pos()}
		}
		fmt.Fprintln(os.Stderr, errors.FormatAll(diags))
		return &exitError{code: ExitDataError}
	}

	if err := evaluator.New(globals, opts...).Run(program); err != nil {
		return runtimeExit(err, source)
	}
	return nil
}

func runtimeExit(err error, source string) error {
	fmt.Fprintln(os.Stderr, "Runtime error:", err)
	return &exitError{code: ExitSoftwareErr}
}
