package cmd

import (
	"fmt"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *app) *cobra.Command {
	var username, password, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Signup(cmd.Context(), username, password, name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are logged in as %s\n", session.Name, session.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%d stories, %d favorites)\n",
				session.Username, len(session.OwnStories), len(session.Favorites))
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Logout(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.bootstrap.Restore(cmd.Context()) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return err
			}

			session, _ := app.sessions.Current()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", whoamiLine(session))
			return err
		},
	}
}

func whoamiLine(session domain.Session) string {
	line := session.Username
	if session.Name != "" {
		line = fmt.Sprintf("%s (%s)", session.Username, session.Name)
	}
	if !session.CreatedAt.IsZero() {
		line += ", member since " + session.CreatedAt.Format("02 Jan 2006")
	}
	return fmt.Sprintf("%s · %d stories · %d favorites", line, len(session.OwnStories), len(session.Favorites))
}
