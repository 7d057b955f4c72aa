package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionHydratesStoryViews(t *testing.T) {
	t.Parallel()

	session := NewSession(UserData{
		Username:  "gopher",
		Name:      "Gopher",
		CreatedAt: "2026-02-14T12:00:00Z",
		Favorites: []StoryData{{StoryID: "s1", Title: "fav"}},
		Stories:   []StoryData{{StoryID: "s2"}, {StoryID: "s3"}},
	}, "token-123")

	assert.Equal(t, "gopher", session.Username)
	assert.Equal(t, "token-123", session.Token)
	assert.Len(t, session.OwnStories, 2)
	assert.True(t, session.IsFavorite("s1"))
	assert.True(t, session.IsOwnStory("s3"))
	assert.False(t, session.IsFavorite("s2"))
}

func TestNewSessionAcceptsOwnStoriesField(t *testing.T) {
	t.Parallel()

	session := NewSession(UserData{Username: "gopher", OwnStories: []StoryData{{StoryID: "s9"}}}, "t")

	require.Len(t, session.OwnStories, 1)
	assert.Equal(t, StoryID("s9"), session.OwnStories[0].ID)
}

func TestSessionFavoriteMembershipIsByID(t *testing.T) {
	t.Parallel()

	session := NewSession(UserData{Favorites: []StoryData{{StoryID: "s1", Title: "original"}}}, "t")

	assert.True(t, session.IsFavorite(Story{ID: "s1", Title: "another instance"}.ID))
}

func TestSessionAddFavoriteDeduplicates(t *testing.T) {
	t.Parallel()

	var session Session
	assert.True(t, session.AddFavorite(Story{ID: "s1"}))
	assert.False(t, session.AddFavorite(Story{ID: "s1"}))
	assert.Len(t, session.Favorites, 1)
}

func TestSessionRemoveAndRestoreFavoriteKeepsPosition(t *testing.T) {
	t.Parallel()

	session := Session{Favorites: []Story{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	removed, idx, ok := session.RemoveFavorite("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []StoryID{"a", "c"}, storyIDs(session.Favorites))

	session.RestoreFavorite(removed, idx)
	assert.Equal(t, []StoryID{"a", "b", "c"}, storyIDs(session.Favorites))

	_, _, ok = session.RemoveFavorite("missing")
	assert.False(t, ok)
}

func TestSessionForgetStoryClearsBothViews(t *testing.T) {
	t.Parallel()

	session := Session{
		OwnStories: []Story{{ID: "a"}, {ID: "b"}},
		Favorites:  []Story{{ID: "b"}, {ID: "c"}},
	}

	session.ForgetStory("b")

	assert.Equal(t, []StoryID{"a"}, storyIDs(session.OwnStories))
	assert.Equal(t, []StoryID{"c"}, storyIDs(session.Favorites))
}

func TestSessionCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	session := Session{Favorites: []Story{{ID: "a"}}}
	clone := session.Clone()
	clone.Favorites[0] = Story{ID: "z"}

	assert.Equal(t, StoryID("a"), session.Favorites[0].ID)
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, Session{Token: "t"}.Validate(), "username is required")
	assert.EqualError(t, Session{Username: "u"}.Validate(), "token is required")
	assert.NoError(t, Session{Username: "u", Token: "t"}.Validate())
}
