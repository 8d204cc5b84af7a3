package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Device session commands",
	}

	cmd.AddCommand(newSessionShowCmd())
	cmd.AddCommand(newSessionRoleCmd())
	cmd.AddCommand(newSessionBackCmd())
	cmd.AddCommand(newSessionAuthCmd())
	cmd.AddCommand(newSessionLogoutCmd())

	return cmd
}

func newSessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newSessionRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "role <player|admin>",
		Short:     "Select a role and open the login screen",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"player", "admin"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/api/v1/session/role", map[string]string{"role": args[0]})
		},
	}
}

func newSessionBackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Leave the login screen and return to role selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/api/v1/session/back", nil)
		},
	}
}

func newSessionAuthCmd() *cobra.Command {
	var mode, nickname, password, firstName, lastName, weapon, favorite string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Log in or register for the selected role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "login" && mode != "register" {
				return fmt.Errorf("--mode must be login or register")
			}

			req := map[string]string{
				"mode":           mode,
				"nickname":       nickname,
				"password":       password,
				"firstName":      firstName,
				"lastName":       lastName,
				"weapon":         weapon,
				"favoritePlayer": favorite,
			}
			return postSession(cmd, "/api/v1/session/auth", req)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "login", "Form mode: login, register")
	cmd.Flags().StringVar(&nickname, "nickname", "", "Nickname or login")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (register)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name (register)")
	cmd.Flags().StringVar(&weapon, "weapon", "", "Favorite weapon (register)")
	cmd.Flags().StringVar(&favorite, "favorite-player", "", "Favorite player (register)")

	return cmd
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and return to role selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postSession(cmd, "/api/v1/session/logout", nil)
		},
	}
}

func postSession(cmd *cobra.Command, path string, body any) error {
	var result Session

	if err := client.Post(path, body, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.Print(result)
	return nil
}
