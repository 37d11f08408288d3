package main

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/dshills/voicenav/internal/plugin/api"
	plua "github.com/dshills/voicenav/internal/plugin/lua"
)

type scriptFlags struct {
	buffer  bufferFlags
	grant   []string
	timeout time.Duration
}

func newScriptCmd(flags *globalFlags) *cobra.Command {
	sf := &scriptFlags{}

	cmd := &cobra.Command{
		Use:   "script SCRIPT FILE",
		Short: "Run a Lua navigation script against a file",
		Long: heredoc.Doc(`
			Script runs SCRIPT in a sandboxed Lua state with the nav module
			loaded, operating on the contents of FILE.

			Deleting and cutting need the edit capability; cutting and copying
			need the clipboard capability. Grant them with --grant.

			The settings file is watched while the script runs, so edits to it
			apply to the navigation calls that follow.
		`),
		Example: heredoc.Doc(`
			# script.lua:
			#   nav.by_word("there", { action = "select", direction = "left" })
			#   nav.by_name("parens", { action = "delete", occurrence = 2 })
			voicenav script script.lua notes.txt --grant edit --write
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, flags, sf, args[0], args[1])
		},
	}

	sf.buffer.register(cmd)
	cmd.Flags().StringSliceVar(&sf.grant, "grant", nil, "Capabilities to grant: edit, clipboard")
	cmd.Flags().DurationVar(&sf.timeout, "timeout", plua.DefaultExecutionTimeout, "Script execution timeout (0 disables)")

	return cmd
}

func runScript(cmd *cobra.Command, flags *globalFlags, sf *scriptFlags, script, path string) error {
	caps := make([]plua.Capability, 0, len(sf.grant))
	for _, g := range sf.grant {
		c, err := plua.ParseCapability(g)
		if err != nil {
			return err
		}
		caps = append(caps, c)
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, flags, true)
	if err != nil {
		return err
	}
	defer s.Close()

	text, mode, err := readBuffer(path)
	if err != nil {
		return err
	}
	ed, err := s.newEditor(text, &sf.buffer)
	if err != nil {
		return err
	}

	state, err := plua.NewState(
		plua.WithExecutionTimeout(sf.timeout),
		plua.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return err
	}
	defer state.Close()

	for _, c := range caps {
		state.Sandbox().Grant(c)
	}

	reg := api.NewRegistry()
	if err := reg.Register(api.NewNavModule(s.newNavigator(ed), state.Sandbox())); err != nil {
		return err
	}
	reg.Install(state)

	logger.Debug("running script", "script", script, "modules", reg.List(), "capabilities", state.Sandbox().Capabilities())
	if err := state.DoFile(ctx, script); err != nil {
		return fmt.Errorf("script %s: %w", script, err)
	}

	return finish(cmd, path, text, mode, ed, &sf.buffer)
}
