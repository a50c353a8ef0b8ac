package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "dagger-codegen",
	Short: "Generate Go client bindings for the Dagger API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// if we got this far, CLI parsing worked just fine; no
		// need to show usage for runtime errors
		cmd.SilenceUsage = true

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(newLogger(cmd, level))
	},
}

func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
		Level:      level,
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd, introspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
