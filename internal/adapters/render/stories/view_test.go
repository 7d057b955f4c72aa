package stories

import (
	"testing"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func sampleStory(id, title, username string, age time.Duration) domain.Story {
	return domain.Story{
		ID:        domain.StoryID(id),
		Title:     title,
		Author:    "Ada Lovelace",
		URL:       "https://www.example.com/articles/" + id,
		Username:  username,
		CreatedAt: renderNow.Add(-age),
	}
}

func TestRenderAnonymousListHasNoFavoriteMarkers(t *testing.T) {
	output, err := Render(StoryListView{
		Heading: "All stories",
		Rows: []StoryRow{
			{Story: sampleStory("s1", "Engines of analysis", "ann", 3*time.Hour)},
			{Story: sampleStory("s2", "Notes on notes", "bob", 2*24*time.Hour)},
		},
	}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "All stories")
	assert.Contains(t, output, "2 stories")
	assert.Contains(t, output, "Engines of analysis")
	assert.Contains(t, output, "(www.example.com)")
	assert.Contains(t, output, "by Ada Lovelace")
	assert.Contains(t, output, "posted by ann")
	assert.Contains(t, output, "3 hours ago")
	assert.Contains(t, output, "2 days ago")
	assert.Contains(t, output, "id: s2")
	assert.NotContains(t, output, favoriteMarker)
	assert.NotContains(t, output, notFavoriteMarker)
	assert.NotContains(t, output, mineMarker)
}

func TestRenderAuthenticatedListMarksFavoritesAndOwnStories(t *testing.T) {
	output, err := Render(StoryListView{
		ShowFavorites: true,
		Rows: []StoryRow{
			{Story: sampleStory("s1", "Mine and loved", "ann", time.Minute), Favorite: true, Mine: true},
			{Story: sampleStory("s2", "Someone else's", "bob", 30*time.Second)},
		},
	}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "Hack or Snooze")
	assert.Contains(t, output, favoriteMarker+" Mine and loved")
	assert.Contains(t, output, notFavoriteMarker+" Someone else's")
	assert.Contains(t, output, mineMarker)
	assert.Contains(t, output, "1 minute ago")
	assert.Contains(t, output, "just now")
}

func TestRenderEmptyList(t *testing.T) {
	output, err := Render(StoryListView{Heading: "Favorites"}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "Favorites")
	assert.Contains(t, output, "0 stories")
	assert.Contains(t, output, "No stories yet.")
}

func TestRenderStoryWithUnparseableURLOmitsHostname(t *testing.T) {
	story := sampleStory("s1", "Broken link", "ann", time.Hour)
	story.URL = "::not a url"

	output, err := Render(StoryListView{Rows: []StoryRow{{Story: story}}}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "1 story")
	assert.Contains(t, output, "Broken link")
	assert.NotContains(t, output, "()")
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name      string
		createdAt time.Time
		now       time.Time
		want      string
	}{
		{name: "unknown", want: ""},
		{name: "no clock", createdAt: renderNow, want: "2026-02-14 11:00"},
		{name: "seconds", createdAt: renderNow.Add(-10 * time.Second), now: renderNow, want: "just now"},
		{name: "minutes", createdAt: renderNow.Add(-5 * time.Minute), now: renderNow, want: "5 minutes ago"},
		{name: "one hour", createdAt: renderNow.Add(-90 * time.Minute), now: renderNow, want: "1 hour ago"},
		{name: "days", createdAt: renderNow.Add(-49 * time.Hour), now: renderNow, want: "2 days ago"},
		{name: "old", createdAt: renderNow.Add(-60 * 24 * time.Hour), now: renderNow, want: "16 Dec 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAge(tt.createdAt, tt.now))
		})
	}
}

func TestInterpolateColorClamps(t *testing.T) {
	assert.Equal(t, "240", string(interpolateColor(-5, 0, 10)))
	assert.Equal(t, "255", string(interpolateColor(50, 0, 10)))
	assert.Equal(t, "255", string(interpolateColor(1, 3, 3)))
}
