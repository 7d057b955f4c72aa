package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type AuthState uint8

const (
	StateAnonymous AuthState = iota
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// sessionState is Anonymous with a zero session, or Authenticated with a live one.
type sessionState struct {
	kind    AuthState
	session domain.Session
}

// SessionManager owns the single current session and is the one place where
// the story collection, own stories and favorites are mutated together.
type SessionManager struct {
	gateway     ports.Gateway
	credentials ports.CredentialStore
	stories     *StoryList
	clock       ports.Clock
	logger      logrus.FieldLogger

	mu    sync.RWMutex
	state sessionState
}

func NewSessionManager(gateway ports.Gateway, credentials ports.CredentialStore, stories *StoryList, clock ports.Clock, logger logrus.FieldLogger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if stories == nil {
		stories = NewStoryList(gateway, logger)
	}

	return &SessionManager{
		gateway:     gateway,
		credentials: credentials,
		stories:     stories,
		clock:       clock,
		logger:      logger,
	}
}

func (m *SessionManager) Stories() *StoryList {
	return m.stories
}

func (m *SessionManager) State() AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.kind
}

// Current returns a copy of the live session.
func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state.kind != StateAuthenticated {
		return domain.Session{}, false
	}

	return m.state.session.Clone(), true
}

func (m *SessionManager) Favorites() []domain.Story {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.state.session.Favorites)
}

func (m *SessionManager) OwnStories() []domain.Story {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.state.session.OwnStories)
}

func (m *SessionManager) Signup(ctx context.Context, username, password, name string) (domain.Session, error) {
	if err := requireCredentials(username, password); err != nil {
		return domain.Session{}, fmt.Errorf("signup: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return domain.Session{}, fmt.Errorf("signup: %w", &domain.ValidationError{Field: "name", Reason: "is required"})
	}

	result, err := m.gateway.Register(ctx, username, password, name)
	if err != nil {
		return domain.Session{}, fmt.Errorf("signup: %w", err)
	}

	return m.begin(ctx, result)
}

func (m *SessionManager) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if err := requireCredentials(username, password); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	result, err := m.gateway.Authenticate(ctx, username, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return m.begin(ctx, result)
}

// Restore turns a stored token into a live session. Any failure leaves the
// manager as it was and reports false; a stale credential never blocks startup.
func (m *SessionManager) Restore(ctx context.Context, token, username string) bool {
	log := m.logger.WithField("username", username)
	if strings.TrimSpace(token) == "" || strings.TrimSpace(username) == "" {
		log.Debug("no credentials to restore")
		return false
	}

	user, err := m.gateway.ResolveSession(ctx, token, username)
	if err != nil {
		log.WithError(err).Debug("restore session failed")
		return false
	}

	m.setSession(domain.NewSession(user, token))
	log.Debug("session restored")
	return true
}

// RestoreFromStore reads the remembered credentials and restores them.
func (m *SessionManager) RestoreFromStore(ctx context.Context) bool {
	if m.credentials == nil {
		return false
	}

	credentials, err := m.credentials.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialsNotFound) {
			m.logger.WithError(err).Warn("read stored credentials")
		}
		return false
	}

	return m.Restore(ctx, credentials.Token, credentials.Username)
}

// Logout always succeeds; a failure to clear stored credentials is only logged.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	username := m.state.session.Username
	m.state = sessionState{kind: StateAnonymous}
	m.mu.Unlock()

	if m.credentials != nil {
		if err := m.credentials.Clear(ctx); err != nil {
			m.logger.WithError(err).Warn("clear stored credentials")
		}
	}

	m.logger.WithField("username", username).Info("logged out")
}

func (m *SessionManager) IsFavorite(story domain.Story) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.kind == StateAuthenticated && m.state.session.IsFavorite(story.ID)
}

func (m *SessionManager) IsOwnStory(story domain.Story) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.kind == StateAuthenticated && m.state.session.IsOwnStory(story.ID)
}

// AddFavorite marks story as a favorite before the remote call and reverts
// the mark if the call fails.
func (m *SessionManager) AddFavorite(ctx context.Context, story domain.Story) error {
	m.mu.Lock()
	if m.state.kind != StateAuthenticated {
		m.mu.Unlock()
		return domain.ErrAuthRequired
	}
	token, username := m.state.session.Token, m.state.session.Username
	added := m.state.session.AddFavorite(story)
	m.mu.Unlock()

	if err := m.gateway.SetFavorite(ctx, token, username, story.ID, true); err != nil {
		if added {
			m.mu.Lock()
			if m.isCurrentLocked(username) {
				m.state.session.RemoveFavorite(story.ID)
			}
			m.mu.Unlock()
		}
		return fmt.Errorf("add favorite %s: %w", story.ID, err)
	}

	m.logger.WithFields(logrus.Fields{"username": username, "story_id": story.ID}).Debug("favorite added")
	return nil
}

// RemoveFavorite unmarks story before the remote call and puts it back in
// place if the call fails. The call is issued even when story was not a favorite.
func (m *SessionManager) RemoveFavorite(ctx context.Context, story domain.Story) error {
	m.mu.Lock()
	if m.state.kind != StateAuthenticated {
		m.mu.Unlock()
		return domain.ErrAuthRequired
	}
	token, username := m.state.session.Token, m.state.session.Username
	removed, index, ok := m.state.session.RemoveFavorite(story.ID)
	m.mu.Unlock()

	if err := m.gateway.SetFavorite(ctx, token, username, story.ID, false); err != nil {
		if ok {
			m.mu.Lock()
			if m.isCurrentLocked(username) {
				m.state.session.RestoreFavorite(removed, index)
			}
			m.mu.Unlock()
		}
		return fmt.Errorf("remove favorite %s: %w", story.ID, err)
	}

	m.logger.WithFields(logrus.Fields{"username": username, "story_id": story.ID}).Debug("favorite removed")
	return nil
}

// ToggleFavorite flips the favorite mark and returns the new state.
func (m *SessionManager) ToggleFavorite(ctx context.Context, story domain.Story) (bool, error) {
	if m.IsFavorite(story) {
		if err := m.RemoveFavorite(ctx, story); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := m.AddFavorite(ctx, story); err != nil {
		return false, err
	}
	return true, nil
}

// CreateStory submits a story as the current user.
func (m *SessionManager) CreateStory(ctx context.Context, fields domain.NewStoryFields) (domain.Story, error) {
	token, username, err := m.credentialsForMutation()
	if err != nil {
		return domain.Story{}, err
	}

	story, err := m.stories.create(ctx, token, fields)
	if err != nil {
		return domain.Story{}, err
	}

	m.mu.Lock()
	if m.isCurrentLocked(username) {
		m.state.session.PrependOwnStory(story)
	}
	m.mu.Unlock()

	return story, nil
}

// DeleteStory removes a story everywhere it is referenced.
func (m *SessionManager) DeleteStory(ctx context.Context, id domain.StoryID) error {
	token, username, err := m.credentialsForMutation()
	if err != nil {
		return err
	}

	if err := m.stories.remove(ctx, token, id); err != nil {
		return err
	}

	m.mu.Lock()
	if m.isCurrentLocked(username) {
		m.state.session.ForgetStory(id)
	}
	m.mu.Unlock()

	return nil
}

func (m *SessionManager) begin(ctx context.Context, result ports.AuthResult) (domain.Session, error) {
	session := domain.NewSession(result.User, result.Token)
	if err := session.Validate(); err != nil {
		return domain.Session{}, &domain.RemoteError{Op: "authenticate", Message: "malformed response", Err: err}
	}

	m.setSession(session)
	m.remember(ctx, session)

	m.logger.WithField("username", session.Username).Info("logged in")
	return session.Clone(), nil
}

func (m *SessionManager) remember(ctx context.Context, session domain.Session) {
	if m.credentials == nil {
		return
	}

	err := m.credentials.Set(ctx, domain.Credentials{
		Token:    session.Token,
		Username: session.Username,
		SavedAt:  m.clock.Now(),
	})
	if err != nil {
		m.logger.WithError(err).WithField("username", session.Username).Warn("remember credentials")
	}
}

func (m *SessionManager) setSession(session domain.Session) {
	m.mu.Lock()
	m.state = sessionState{kind: StateAuthenticated, session: session}
	m.mu.Unlock()
}

func (m *SessionManager) credentialsForMutation() (string, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state.kind != StateAuthenticated {
		return "", "", domain.ErrAuthRequired
	}

	return m.state.session.Token, m.state.session.Username, nil
}

// isCurrentLocked reports whether username still owns the live session; the caller holds mu.
func (m *SessionManager) isCurrentLocked(username string) bool {
	return m.state.kind == StateAuthenticated && m.state.session.Username == username
}

func requireCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &domain.ValidationError{Field: "username", Reason: "is required"}
	}
	if password == "" {
		return &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	return nil
}
