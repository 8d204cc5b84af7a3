package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newTournamentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournaments",
		Aliases: []string{"tournament"},
		Short:   "Browse the tournament schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTournaments(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTournaments(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament

			if err := client.Get("/api/v1/tournaments/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	})

	return cmd
}

func listTournaments(cmd *cobra.Command) error {
	var result []Tournament

	if err := client.Get("/api/v1/tournaments", &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.Print(result)
	return nil
}
