package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	storiesadapter "github.com/bnema/snooze-cli/internal/adapters/render/stories"
	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/spf13/cobra"
)

type storyOutput struct {
	ID        string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Hostname  string    `json:"hostname,omitempty"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	Favorite  bool      `json:"favorite"`
	Mine      bool      `json:"mine"`
}

func newStoriesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stories",
		Short: "List the story feed, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := app.bootstrap.Start
			if asJSON {
				if err := start(cmd.Context()); err != nil {
					return err
				}
			} else {
				if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading stories...", start); err != nil {
					return err
				}
			}

			return writeStoriesOutput(cmd, app, "All stories", app.stories.Stories(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newMineCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List the stories you submitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			return writeStoriesOutput(cmd, app, "My stories", app.sessions.OwnStories(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newFavoritesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List your favorite stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			return writeStoriesOutput(cmd, app, "Favorites", app.sessions.Favorites(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeStoriesOutput(cmd *cobra.Command, app *app, heading string, stories []domain.Story, asJSON bool) error {
	if asJSON {
		out := make([]storyOutput, 0, len(stories))
		for _, story := range stories {
			out = append(out, storyOutput{
				ID:        string(story.ID),
				Title:     story.Title,
				Author:    story.Author,
				URL:       story.URL,
				Hostname:  story.Hostname(),
				Username:  story.Username,
				CreatedAt: story.CreatedAt,
				Favorite:  app.sessions.IsFavorite(story),
				Mine:      app.sessions.IsOwnStory(story),
			})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rows := make([]storiesadapter.StoryRow, 0, len(stories))
	for _, story := range stories {
		rows = append(rows, storiesadapter.StoryRow{
			Story:    story,
			Favorite: app.sessions.IsFavorite(story),
			Mine:     app.sessions.IsOwnStory(story),
		})
	}

	_, authenticated := app.sessions.Current()
	rendered, err := app.storyRenderer(storiesadapter.StoryListView{
		Heading:       heading,
		Rows:          rows,
		ShowFavorites: authenticated,
	}, storiesadapter.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render stories: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// requireSession restores the remembered session and fails when there is none.
func requireSession(ctx context.Context, app *app) error {
	if _, ok := app.sessions.Current(); ok {
		return nil
	}
	if app.bootstrap.Restore(ctx) {
		return nil
	}

	return fmt.Errorf("%w: run \"snooze login\" first", domain.ErrAuthRequired)
}
