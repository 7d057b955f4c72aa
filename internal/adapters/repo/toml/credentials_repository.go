package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	credentialsFileMode = 0o600
	credentialsDirMode  = 0o700
	tempFilePattern     = ".credentials-*.toml.tmp"
)

// CredentialRepository remembers who is logged in. The token itself lives in
// the secret store; the file only keeps the username and the secret reference.
type CredentialRepository struct {
	path    string
	secrets ports.SecretStore
	clock   ports.Clock
	mu      *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*CredentialRepository)(nil)

func NewCredentialRepository(path string, secrets ports.SecretStore, clock ports.Clock) (*CredentialRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("credentials path is empty")
	}
	if secrets == nil {
		return nil, errors.New("secret store is required")
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &CredentialRepository{path: path, secrets: secrets, clock: clock, mu: lockForPath(path)}, nil
}

func (r *CredentialRepository) Path() string {
	return r.path
}

func (r *CredentialRepository) Get(ctx context.Context) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	r.mu.RLock()
	file, err := r.readSchema()
	r.mu.RUnlock()
	if err != nil {
		return domain.Credentials{}, err
	}

	entry := file.Session
	if entry == nil || entry.Username == "" || entry.SecretRef == "" {
		return domain.Credentials{}, domain.ErrCredentialsNotFound
	}

	token, err := r.secrets.Get(ctx, entry.SecretRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Credentials{}, domain.ErrCredentialsNotFound
		}
		return domain.Credentials{}, fmt.Errorf("read token for %s: %w", entry.Username, err)
	}

	return domain.Credentials{
		Token:    token,
		Username: entry.Username,
		SavedAt:  parseTime(entry.SavedAt),
	}, nil
}

// Set stores the token first, then points the file at it. A token left behind
// by a different user is deleted once the file no longer references it.
func (r *CredentialRepository) Set(ctx context.Context, credentials domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if credentials.Empty() {
		return errors.New("credentials are incomplete")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	ref := SecretRef(credentials.Username)
	if err := r.secrets.Put(ctx, ref, credentials.Token); err != nil {
		return fmt.Errorf("store token for %s: %w", credentials.Username, err)
	}

	savedAt := credentials.SavedAt
	if savedAt.IsZero() {
		savedAt = r.clock.Now()
	}

	previous := file.Session
	file.Session = &sessionSchema{
		Username:  credentials.Username,
		SecretRef: ref,
		SavedAt:   formatTime(savedAt),
	}

	if err := r.writeSchema(file); err != nil {
		if rollbackErr := r.secrets.Delete(ctx, ref); rollbackErr != nil && !errors.Is(rollbackErr, domain.ErrSecretNotFound) {
			return errors.Join(err, fmt.Errorf("rollback token for %s: %w", credentials.Username, rollbackErr))
		}
		return err
	}

	if previous != nil && previous.SecretRef != "" && previous.SecretRef != ref {
		if err := r.secrets.Delete(ctx, previous.SecretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("delete previous token for %s: %w", previous.Username, err)
		}
	}

	return nil
}

// Clear forgets the stored session. Clearing an empty store is not an error.
func (r *CredentialRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	previous := file.Session
	if previous == nil {
		return nil
	}

	file.Session = nil
	if err := r.writeSchema(file); err != nil {
		return err
	}

	if previous.SecretRef == "" {
		return nil
	}

	if err := r.secrets.Delete(ctx, previous.SecretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("delete token for %s: %w", previous.Username, err)
	}

	return nil
}

// SecretRef is the secret store key holding username's token.
func SecretRef(username string) string {
	return "snooze/" + username + "/token"
}

func (r *CredentialRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read credentials file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode credentials file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *CredentialRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, credentialsDirMode); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credentials file: %w", err)
	}
	if err := tempFile.Chmod(credentialsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credentials file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credentials file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve credentials path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
