package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snooze",
		Short:         "Hack or Snooze from the terminal",
		Long:          "snooze reads the Hack or Snooze story feed, lets you log in, submit and delete stories, and keep a list of favorites.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStoriesCmd(app),
		newMineCmd(app),
		newFavoritesCmd(app),
		newSubmitCmd(app),
		newDeleteCmd(app),
		newFavoriteCmd(app),
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
	)

	return rootCmd
}
