package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nekolite-studio/pylaunch/pkg/launcher"
)

// defaultBaseDir is the operator-editable base directory. Leave empty to use
// the directory containing the pylaunch executable.
const defaultBaseDir = ""

var exitCode int

// launch is swapped in tests.
var launch = func(baseDir string, args []string) int {
	return launcher.New(launcher.Config{BaseDir: baseDir}).Run(args)
}

// Every argument belongs to the analyzer: flag parsing is disabled so
// pylaunch defines no flag grammar of its own and forwards argv verbatim.
var rootCmd = &cobra.Command{
	Use:                "pylaunch [analyzer arguments...]",
	Short:              "Launch the project analyzer with the right Python interpreter",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseDir, err := resolveBaseDir()
		if err != nil {
			return err
		}
		exitCode = launch(baseDir, args)
		return nil
	},
}

func resolveBaseDir() (string, error) {
	if defaultBaseDir != "" {
		return defaultBaseDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
