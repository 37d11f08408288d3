// Package main implements voicenav, a command line front end for relative
// text navigation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/voicenav/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "voicenav",
	Level:  log.InfoLevel,
})

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "voicenav",
		Short: "Relative text navigation for spoken commands",
		Long: heredoc.Doc(`
			voicenav finds the Nth occurrence of a spoken target near the cursor
			and moves, extends, selects, deletes, cuts or copies there.

			Targets are literal strings, words with their homophones, free text,
			named classes (word, small, big, parens, ...) or raw expressions.
		`),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath(), "Settings file (.toml or .yaml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the settings file")

	root.AddCommand(
		newNavigateCmd(flags),
		newScriptCmd(flags),
		newClassesCmd(),
		newConfigCmd(flags),
	)
	return root
}
