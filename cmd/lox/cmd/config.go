package cmd

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// loxrcConfig holds the handful of settings a .loxrc file may override.
// Command-line flags always win over the config file; the config file
// only changes a flag's default before cobra parses argv.
type loxrcConfig struct {
	NoColor      *bool
	MaxCallDepth *int
}

// keyCaser lower-cases a config key the same way the language-aware
// parts of the teacher's toolchain normalize identifiers, so `NoColor`,
// `nocolor`, and `no-color` all match regardless of how the user wrote
// them in .loxrc.
var keyCaser = cases.Lower(language.Und)

func foldConfigKey(key string) string {
	return keyCaser.String(strings.ReplaceAll(key, "-", ""))
}

// loadLoxrc reads a simple `key = value` config file, skipping blank
// lines and lines starting with '#'. It never errors on a missing file;
// it is pure defaulting, not a requirement.
func loadLoxrc(path string) (*loxrcConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &loxrcConfig{}, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg := &loxrcConfig{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := foldConfigKey(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch key {
		case "nocolor":
			if b, err := strconv.ParseBool(value); err == nil {
				cfg.NoColor = &b
			}
		case "maxcalldepth":
			if n, err := strconv.Atoi(value); err == nil {
				cfg.MaxCallDepth = &n
			}
		}
	}
	return cfg, scanner.Err()
}

// defaultLoxrcPath is $HOME/.loxrc, mirroring how most Unix CLIs name
// their per-user dotfile.
func defaultLoxrcPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loxrc")
}

// applyLoxrcDefaults fills in noColor/maxCallDepth from a .loxrc found
// at defaultLoxrcPath, for any flag the invocation did NOT set on the
// command line — an explicit flag always wins over the config file.
// Cobra has already parsed argv by the time a command's RunE runs, so
// calling this from runScript (rather than OnInitialize, which fires
// before ParseFlags is guaranteed settled) is what makes the
// "flags win" check meaningful.
func applyLoxrcDefaults(cmd *cobra.Command) {
	path := defaultLoxrcPath()
	if path == "" {
		return
	}
	cfg, err := loadLoxrc(path)
	if err != nil {
		return
	}
	if cfg.NoColor != nil && !cmd.Flags().Changed("no-color") {
		noColor = *cfg.NoColor
		if noColor {
			color.NoColor = true
		}
	}
	if cfg.MaxCallDepth != nil && !cmd.Flags().Changed("max-call-depth") {
		maxCallDepth = *cfg.MaxCallDepth
	}
}
