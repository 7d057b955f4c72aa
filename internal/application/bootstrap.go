package application

import (
	"context"
	"fmt"
)

// Bootstrap runs the startup sequence: restore the remembered user, then load the feed.
type Bootstrap struct {
	sessions *SessionManager
}

func NewBootstrap(sessions *SessionManager) *Bootstrap {
	return &Bootstrap{sessions: sessions}
}

// Restore never fails; it reports whether a session is now live.
func (b *Bootstrap) Restore(ctx context.Context) bool {
	return b.sessions.RestoreFromStore(ctx)
}

// Start restores the session and loads the story feed. Only the feed load can fail.
func (b *Bootstrap) Start(ctx context.Context) error {
	b.Restore(ctx)

	if err := b.sessions.Stories().LoadAll(ctx); err != nil {
		return fmt.Errorf("load story feed: %w", err)
	}

	return nil
}
