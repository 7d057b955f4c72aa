package ports

import (
	"context"

	"github.com/bnema/snooze-cli/internal/domain"
)

// AuthResult is the payload of a successful signup or login.
type AuthResult struct {
	User  domain.UserData
	Token string
}

// Gateway performs exactly one remote call per method and never touches local state.
// Failures match domain.ErrRemote.
type Gateway interface {
	ListStories(ctx context.Context) ([]domain.StoryData, error)
	CreateStory(ctx context.Context, token string, fields domain.NewStoryFields) (domain.StoryData, error)
	DeleteStory(ctx context.Context, token string, id domain.StoryID) error
	Register(ctx context.Context, username, password, name string) (AuthResult, error)
	Authenticate(ctx context.Context, username, password string) (AuthResult, error)
	ResolveSession(ctx context.Context, token, username string) (domain.UserData, error)
	SetFavorite(ctx context.Context, token, username string, id domain.StoryID, present bool) error
}
