package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginAs(t *testing.T, f fixture, user domain.UserData) {
	t.Helper()

	f.gateway.EXPECT().Authenticate(anyCtx(), user.Username, "secret").Return(ports.AuthResult{User: user, Token: "tok-" + user.Username}, nil).Once()
	f.credentials.EXPECT().Set(anyCtx(), mock.Anything).Return(nil).Once()

	_, err := f.sessions.Login(context.Background(), user.Username, "secret")
	require.NoError(t, err)
}

func TestSessionManagerStartsAnonymous(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, StateAnonymous, f.sessions.State())
	_, ok := f.sessions.Current()
	assert.False(t, ok)
	assert.Empty(t, f.sessions.Favorites())
	assert.False(t, f.sessions.IsFavorite(domain.Story{ID: "s1"}))
}

func TestSessionManagerLoginHydratesSessionAndRemembersCredentials(t *testing.T) {
	f := newFixture(t)

	own := []domain.StoryData{storyData("s3", "ann"), storyData("s2", "ann"), storyData("s1", "ann")}
	user := userData("ann", own, []domain.StoryData{storyData("s9", "bob")})

	f.gateway.EXPECT().Authenticate(anyCtx(), "ann", "secret").Return(ports.AuthResult{User: user, Token: "tok"}, nil).Once()
	f.credentials.EXPECT().Set(anyCtx(), domain.Credentials{Token: "tok", Username: "ann", SavedAt: testNow}).Return(nil).Once()

	session, err := f.sessions.Login(context.Background(), "ann", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ann", session.Username)
	assert.Equal(t, "tok", session.Token)
	assert.Len(t, session.OwnStories, 3)
	assert.Equal(t, StateAuthenticated, f.sessions.State())
	assert.True(t, f.sessions.IsOwnStory(domain.Story{ID: "s2"}))
	assert.True(t, f.sessions.IsFavorite(domain.Story{ID: "s9"}))
	assert.False(t, f.sessions.IsFavorite(domain.Story{ID: "s1"}))
}

func TestSessionManagerLoginRejected(t *testing.T) {
	f := newFixture(t)

	rejected := &domain.RemoteError{Op: "login", Status: 401, Message: "bad password", Rejected: true}
	f.gateway.EXPECT().Authenticate(anyCtx(), "ann", "wrong").Return(ports.AuthResult{}, rejected).Once()

	_, err := f.sessions.Login(context.Background(), "ann", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, StateAnonymous, f.sessions.State())
}

func TestSessionManagerLoginRequiresUsernameAndPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.Login(context.Background(), " ", "secret")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "username", validation.Field)

	_, err = f.sessions.Login(context.Background(), "ann", "")
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "password", validation.Field)
}

func TestSessionManagerLoginSucceedsWhenCredentialsCannotBeSaved(t *testing.T) {
	f := newFixture(t)

	user := userData("ann", nil, nil)
	f.gateway.EXPECT().Authenticate(anyCtx(), "ann", "secret").Return(ports.AuthResult{User: user, Token: "tok"}, nil).Once()
	f.credentials.EXPECT().Set(anyCtx(), mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.sessions.Login(context.Background(), "ann", "secret")
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, f.sessions.State())
}

func TestSessionManagerLoginMissingTokenIsMalformed(t *testing.T) {
	f := newFixture(t)

	f.gateway.EXPECT().Authenticate(anyCtx(), "ann", "secret").Return(ports.AuthResult{User: userData("ann", nil, nil)}, nil).Once()

	_, err := f.sessions.Login(context.Background(), "ann", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, StateAnonymous, f.sessions.State())
}

func TestSessionManagerSignup(t *testing.T) {
	f := newFixture(t)

	user := userData("newbie", nil, nil)
	f.gateway.EXPECT().Register(anyCtx(), "newbie", "secret", "New Bie").Return(ports.AuthResult{User: user, Token: "tok"}, nil).Once()
	f.credentials.EXPECT().Set(anyCtx(), domain.Credentials{Token: "tok", Username: "newbie", SavedAt: testNow}).Return(nil).Once()

	session, err := f.sessions.Signup(context.Background(), "newbie", "secret", "New Bie")
	require.NoError(t, err)
	assert.Equal(t, "newbie", session.Username)
	assert.Empty(t, session.OwnStories)
	assert.Empty(t, session.Favorites)
}

func TestSessionManagerSignupConflict(t *testing.T) {
	f := newFixture(t)

	conflict := &domain.RemoteError{Op: "signup", Status: 409, Message: "username taken", Rejected: true}
	f.gateway.EXPECT().Register(anyCtx(), "ann", "secret", "Ann").Return(ports.AuthResult{}, conflict).Once()

	_, err := f.sessions.Signup(context.Background(), "ann", "secret", "Ann")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, StateAnonymous, f.sessions.State())
}

func TestSessionManagerSignupRequiresName(t *testing.T) {
	f := newFixture(t)

	_, err := f.sessions.Signup(context.Background(), "ann", "secret", "")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)
}

func TestSessionManagerRestore(t *testing.T) {
	f := newFixture(t)

	user := userData("ann", []domain.StoryData{storyData("s1", "ann")}, nil)
	f.gateway.EXPECT().ResolveSession(anyCtx(), "tok", "ann").Return(user, nil).Once()

	assert.True(t, f.sessions.Restore(context.Background(), "tok", "ann"))

	session, ok := f.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, []domain.StoryID{"s1"}, storyIDs(session.OwnStories))
}

func TestSessionManagerRestoreFailureStaysAnonymous(t *testing.T) {
	f := newFixture(t)

	f.gateway.EXPECT().ResolveSession(anyCtx(), "stale", "ann").Return(domain.UserData{}, &domain.RemoteError{Op: "resolve session", Status: 401}).Once()

	assert.False(t, f.sessions.Restore(context.Background(), "stale", "ann"))
	assert.Equal(t, StateAnonymous, f.sessions.State())
}

func TestSessionManagerRestoreWithoutCredentialsSkipsGateway(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.sessions.Restore(context.Background(), "", "ann"))
	assert.False(t, f.sessions.Restore(context.Background(), "tok", ""))
}

func TestSessionManagerRestoreFromStore(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		restored bool
	}{
		{
			name: "stored credentials are valid",
			setup: func(f fixture) {
				f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{Token: "tok", Username: "ann"}, nil).Once()
				f.gateway.EXPECT().ResolveSession(anyCtx(), "tok", "ann").Return(userData("ann", nil, nil), nil).Once()
			},
			restored: true,
		},
		{
			name: "nothing stored",
			setup: func(f fixture) {
				f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{}, domain.ErrCredentialsNotFound).Once()
			},
		},
		{
			name: "store unreadable",
			setup: func(f fixture) {
				f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{}, errors.New("permission denied")).Once()
			},
		},
		{
			name: "stored token rejected",
			setup: func(f fixture) {
				f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{Token: "old", Username: "ann"}, nil).Once()
				f.gateway.EXPECT().ResolveSession(anyCtx(), "old", "ann").Return(domain.UserData{}, &domain.RemoteError{Op: "resolve session", Status: 401}).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			assert.Equal(t, tt.restored, f.sessions.RestoreFromStore(context.Background()))
			if tt.restored {
				assert.Equal(t, StateAuthenticated, f.sessions.State())
			} else {
				assert.Equal(t, StateAnonymous, f.sessions.State())
			}
		})
	}
}

func TestSessionManagerLogoutClearsStateAndCredentials(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}))

	f.credentials.EXPECT().Clear(anyCtx()).Return(errors.New("already gone")).Once()

	f.sessions.Logout(context.Background())
	assert.Equal(t, StateAnonymous, f.sessions.State())
	assert.Empty(t, f.sessions.Favorites())
	assert.False(t, f.sessions.IsFavorite(domain.Story{ID: "s1"}))
}

func TestSessionManagerMutationsRequireSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	story := domain.Story{ID: "s1"}

	assert.ErrorIs(t, f.sessions.AddFavorite(ctx, story), domain.ErrAuthRequired)
	assert.ErrorIs(t, f.sessions.RemoveFavorite(ctx, story), domain.ErrAuthRequired)
	_, err := f.sessions.ToggleFavorite(ctx, story)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	_, err = f.sessions.CreateStory(ctx, domain.NewStoryFields{Title: "a", Author: "b", URL: "https://x.io"})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.ErrorIs(t, f.sessions.DeleteStory(ctx, "s1"), domain.ErrAuthRequired)
}

func TestSessionManagerAddFavoriteIsOptimistic(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}))

	story := domain.NewStory(storyData("s2", "bob"))
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s2"), true).
		Run(func(context.Context, string, string, domain.StoryID, bool) {
			assert.True(t, f.sessions.IsFavorite(story))
		}).
		Return(nil).Once()

	require.NoError(t, f.sessions.AddFavorite(context.Background(), story))
	assert.Equal(t, []domain.StoryID{"s1", "s2"}, storyIDs(f.sessions.Favorites()))
}

func TestSessionManagerAddFavoriteTwiceKeepsOneEntry(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}))

	story := domain.NewStory(storyData("s1", "bob"))
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s1"), true).Return(nil).Once()

	require.NoError(t, f.sessions.AddFavorite(context.Background(), story))
	assert.Equal(t, []domain.StoryID{"s1"}, storyIDs(f.sessions.Favorites()))
}

func TestSessionManagerAddFavoriteFailureRollsBack(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, nil))

	story := domain.NewStory(storyData("s2", "bob"))
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s2"), true).Return(errors.New("network down")).Once()

	err := f.sessions.AddFavorite(context.Background(), story)
	require.Error(t, err)
	assert.False(t, f.sessions.IsFavorite(story))
	assert.Empty(t, f.sessions.Favorites())
}

func TestSessionManagerRemoveFavoriteFailureRestoresPosition(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{
		storyData("s1", "bob"),
		storyData("s2", "bob"),
		storyData("s3", "bob"),
	}))

	story := domain.NewStory(storyData("s2", "bob"))
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s2"), false).
		Run(func(context.Context, string, string, domain.StoryID, bool) {
			assert.False(t, f.sessions.IsFavorite(story))
		}).
		Return(errors.New("network down")).Once()

	require.Error(t, f.sessions.RemoveFavorite(context.Background(), story))
	assert.Equal(t, []domain.StoryID{"s1", "s2", "s3"}, storyIDs(f.sessions.Favorites()))
}

func TestSessionManagerRemoveFavoriteNotPresentStillCallsGateway(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}))

	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s7"), false).Return(nil).Once()

	require.NoError(t, f.sessions.RemoveFavorite(context.Background(), domain.Story{ID: "s7"}))
	assert.Equal(t, []domain.StoryID{"s1"}, storyIDs(f.sessions.Favorites()))
}

func TestSessionManagerToggleFavorite(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, nil))

	story := domain.NewStory(storyData("s1", "bob"))
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s1"), true).Return(nil).Once()
	f.gateway.EXPECT().SetFavorite(anyCtx(), "tok-ann", "ann", domain.StoryID("s1"), false).Return(nil).Once()

	favorite, err := f.sessions.ToggleFavorite(context.Background(), story)
	require.NoError(t, err)
	assert.True(t, favorite)

	favorite, err = f.sessions.ToggleFavorite(context.Background(), story)
	require.NoError(t, err)
	assert.False(t, favorite)
	assert.Empty(t, f.sessions.Favorites())
}

func TestSessionManagerCreateStoryUpdatesBothViewsAtFront(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", []domain.StoryData{storyData("s1", "ann")}, nil))

	f.gateway.EXPECT().ListStories(anyCtx()).Return([]domain.StoryData{storyData("s1", "ann"), storyData("s0", "bob")}, nil).Once()
	require.NoError(t, f.stories.LoadAll(context.Background()))

	fields := domain.NewStoryFields{Title: "Fresh", Author: "Ann", URL: "https://example.com/fresh"}
	f.gateway.EXPECT().CreateStory(anyCtx(), "tok-ann", fields).Return(storyData("s5", "ann"), nil).Once()

	story, err := f.sessions.CreateStory(context.Background(), fields)
	require.NoError(t, err)
	assert.Equal(t, domain.StoryID("s5"), story.ID)
	assert.Equal(t, []domain.StoryID{"s5", "s1", "s0"}, storyIDs(f.stories.Stories()))
	assert.Equal(t, []domain.StoryID{"s5", "s1"}, storyIDs(f.sessions.OwnStories()))
	assert.True(t, f.sessions.IsOwnStory(story))
}

func TestSessionManagerDeleteStoryRemovesFromAllViews(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann",
		[]domain.StoryData{storyData("s2", "ann"), storyData("s1", "ann")},
		[]domain.StoryData{storyData("s2", "ann"), storyData("s9", "bob")},
	))

	f.gateway.EXPECT().ListStories(anyCtx()).Return([]domain.StoryData{storyData("s9", "bob"), storyData("s2", "ann"), storyData("s1", "ann")}, nil).Once()
	require.NoError(t, f.stories.LoadAll(context.Background()))

	f.gateway.EXPECT().DeleteStory(anyCtx(), "tok-ann", domain.StoryID("s2")).Return(nil).Once()

	require.NoError(t, f.sessions.DeleteStory(context.Background(), "s2"))
	assert.Equal(t, []domain.StoryID{"s9", "s1"}, storyIDs(f.stories.Stories()))
	assert.Equal(t, []domain.StoryID{"s1"}, storyIDs(f.sessions.OwnStories()))
	assert.Equal(t, []domain.StoryID{"s9"}, storyIDs(f.sessions.Favorites()))
}

func TestSessionManagerDeleteStoryFailureChangesNothing(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", []domain.StoryData{storyData("s1", "ann")}, nil))

	f.gateway.EXPECT().ListStories(anyCtx()).Return([]domain.StoryData{storyData("s1", "ann")}, nil).Once()
	require.NoError(t, f.stories.LoadAll(context.Background()))

	f.gateway.EXPECT().DeleteStory(anyCtx(), "tok-ann", domain.StoryID("s1")).Return(&domain.RemoteError{Op: "delete story", Status: 500}).Once()

	require.Error(t, f.sessions.DeleteStory(context.Background(), "s1"))
	assert.Equal(t, 1, f.stories.Len())
	assert.Len(t, f.sessions.OwnStories(), 1)
}

func TestSessionManagerCurrentReturnsIndependentCopy(t *testing.T) {
	f := newFixture(t)
	loginAs(t, f, userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}))

	session, ok := f.sessions.Current()
	require.True(t, ok)
	session.Favorites[0].Title = "mutated"

	assert.Equal(t, "Story s1", f.sessions.Favorites()[0].Title)
}

func TestAuthStateString(t *testing.T) {
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
