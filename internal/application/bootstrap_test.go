package application

import (
	"context"
	"testing"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapStartRestoresThenLoads(t *testing.T) {
	f := newFixture(t)
	bootstrap := NewBootstrap(f.sessions)

	f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{Token: "tok", Username: "ann"}, nil).Once()
	f.gateway.EXPECT().ResolveSession(anyCtx(), "tok", "ann").Return(userData("ann", nil, []domain.StoryData{storyData("s1", "bob")}), nil).Once()
	f.gateway.EXPECT().ListStories(anyCtx()).Return([]domain.StoryData{storyData("s1", "bob")}, nil).Once()

	require.NoError(t, bootstrap.Start(context.Background()))
	assert.Equal(t, StateAuthenticated, f.sessions.State())
	assert.True(t, f.sessions.IsFavorite(domain.Story{ID: "s1"}))
	assert.Equal(t, 1, f.stories.Len())
}

func TestBootstrapStartWithStaleCredentialsStillLoadsFeed(t *testing.T) {
	f := newFixture(t)
	bootstrap := NewBootstrap(f.sessions)

	f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{Token: "old", Username: "ann"}, nil).Once()
	f.gateway.EXPECT().ResolveSession(anyCtx(), "old", "ann").Return(domain.UserData{}, &domain.RemoteError{Op: "resolve session", Status: 401}).Once()
	f.gateway.EXPECT().ListStories(anyCtx()).Return([]domain.StoryData{storyData("s1", "bob")}, nil).Once()

	require.NoError(t, bootstrap.Start(context.Background()))
	assert.Equal(t, StateAnonymous, f.sessions.State())
	assert.Equal(t, 1, f.stories.Len())
}

func TestBootstrapStartReportsFeedFailure(t *testing.T) {
	f := newFixture(t)
	bootstrap := NewBootstrap(f.sessions)

	f.credentials.EXPECT().Get(anyCtx()).Return(domain.Credentials{}, domain.ErrCredentialsNotFound).Once()
	f.gateway.EXPECT().ListStories(anyCtx()).Return(nil, &domain.RemoteError{Op: "list stories", Status: 503}).Once()

	err := bootstrap.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
}
