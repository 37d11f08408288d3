package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect voicenav settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), flags.configPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings and where they came from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := openSession(cmd.Context(), flags, false)
				if err != nil {
					return err
				}
				defer s.Close()

				entries := s.cfg.Entries()
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{e.Path, fmt.Sprint(e.Value), e.Source, e.Description})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Setting", "Value", "Source", "Description"}, rows))
				return nil
			},
		},
	)
	return cmd
}
