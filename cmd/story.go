package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSubmitCmd(app *app) *cobra.Command {
	var fields domain.NewStoryFields

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new story",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			story, err := app.sessions.CreateStory(cmd.Context(), fields)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Submitted %q (%s)\n", story.Title, story.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "Story title")
	cmd.Flags().StringVar(&fields.Author, "author", "", "Story author")
	cmd.Flags().StringVar(&fields.URL, "url", "", "Story URL (http or https)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <storyId>",
		Short: "Delete one of your stories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			id := domain.StoryID(strings.TrimSpace(args[0]))
			if err := app.sessions.DeleteStory(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted story %s\n", id)
			return err
		},
	}
}

func newFavoriteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favorite stories",
	}

	cmd.AddCommand(
		newFavoriteAddCmd(app),
		newFavoriteRemoveCmd(app),
		newFavoriteToggleCmd(app),
	)

	return cmd
}

func newFavoriteAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <storyId>",
		Short: "Add a story to your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := favoriteTarget(cmd.Context(), app, args[0], true)
			if err != nil {
				return err
			}
			if err := app.sessions.AddFavorite(cmd.Context(), story); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "★ %s\n", describeStory(story))
			return err
		},
	}
}

func newFavoriteRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <storyId>",
		Short: "Remove a story from your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := favoriteTarget(cmd.Context(), app, args[0], false)
			if err != nil {
				return err
			}
			if err := app.sessions.RemoveFavorite(cmd.Context(), story); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "☆ %s\n", describeStory(story))
			return err
		},
	}
}

func newFavoriteToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <storyId>",
		Short: "Flip a story's favorite mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := favoriteTarget(cmd.Context(), app, args[0], true)
			if err != nil {
				return err
			}

			favorite, err := app.sessions.ToggleFavorite(cmd.Context(), story)
			if err != nil {
				return err
			}

			marker := "☆"
			if favorite {
				marker = "★"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, describeStory(story))
			return err
		},
	}
}

// favoriteTarget resolves id against the session's own views first, then the
// feed. A removal may target a story that no longer exists anywhere.
func favoriteTarget(ctx context.Context, app *app, rawID string, mustExist bool) (domain.Story, error) {
	if err := requireSession(ctx, app); err != nil {
		return domain.Story{}, err
	}

	id := domain.StoryID(strings.TrimSpace(rawID))
	if id == "" {
		return domain.Story{}, errors.New("story id is empty")
	}

	session, _ := app.sessions.Current()
	for _, views := range [][]domain.Story{session.Favorites, session.OwnStories} {
		for _, story := range views {
			if story.ID == id {
				return story, nil
			}
		}
	}

	if story, ok := app.stories.Find(id); ok {
		return story, nil
	}

	if err := app.stories.LoadAll(ctx); err != nil {
		return domain.Story{}, err
	}
	if story, ok := app.stories.Find(id); ok {
		return story, nil
	}

	if !mustExist {
		return domain.Story{ID: id}, nil
	}

	return domain.Story{}, fmt.Errorf("story %s: %w", id, domain.ErrStoryNotFound)
}

func describeStory(story domain.Story) string {
	if story.Title == "" {
		return string(story.ID)
	}
	return fmt.Sprintf("%s (%s)", story.Title, story.ID)
}
