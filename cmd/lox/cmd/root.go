package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Exit codes follow the convention the original Lox interpreter
// (Crafting Interpreters, ch. 7/8) uses, carried forward by spec.md §2:
// 65 for a syntax/semantic error caught before any code runs, 70 for a
// runtime error that aborted an in-progress run.
const (
	ExitOK          = 0
	ExitDataError   = 65
	ExitSoftwareErr = 70
)

var (
	// Version is the CLI's reported version, set by build flags the way
	// the teacher's cmd/dwscript/cmd/root.go does.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	noColor bool
)

var rootCmd = &cobra.Command{
	Use:     "lox",
	Short:   "A tree-walking interpreter for the Lox language",
	Version: Version,
}

// Execute runs the CLI and returns the process exit code. Errors that
// set an explicit exit code (via exitError) propagate that code; any
// other cobra-reported error (bad flags, missing files) exits 1.
func Execute() int {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		if ee, ok := err.(*exitError); ok {
			if ee.message != "" {
				fmt.Fprintln(os.Stderr, ee.message)
			}
			return ee.code
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return ExitOK
}

// exitError carries a specific process exit code through cobra's
// error-returning RunE, distinct from cobra's own usage errors.
type exitError struct {
	code    int
	message string
}

func (e *exitError) Error() string { return e.message }

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}
