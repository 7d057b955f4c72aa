package ports

import (
	"context"

	"github.com/bnema/snooze-cli/internal/domain"
)

type CredentialStore interface {
	// Get returns domain.ErrCredentialsNotFound when nothing is stored.
	Get(ctx context.Context) (domain.Credentials, error)
	Set(ctx context.Context, credentials domain.Credentials) error
	Clear(ctx context.Context) error
}
