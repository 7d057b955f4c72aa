package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/snooze-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/snooze-cli/internal/adapters/secrets/pass"
	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// Store tries its backends in order. Writes land in the first backend that
// accepts them; reads return the first hit; deletes reach every backend.
type Store struct {
	backends []ports.SecretStore
	logger   logrus.FieldLogger
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain has no backends")

func NewStore(logger logrus.FieldLogger, backends ...ports.SecretStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("secret store backend %d is nil", i)
		}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Store{backends: backends, logger: logger}, nil
}

func NewPassFirstWithFileFallback(fileRoot string, logger logrus.FieldLogger) (*Store, error) {
	return NewStore(logger, passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldStop(err) {
			return err
		}

		s.logger.WithError(err).WithField("backend", i).Debug("secret backend put failed")
		errs = append(errs, fmt.Errorf("backend %d put: %w", i, err))
	}

	return errors.Join(errs...)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	missing := 0
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldStop(err) {
			return "", err
		}

		if errors.Is(err, domain.ErrSecretNotFound) {
			missing++
			continue
		}

		s.logger.WithError(err).WithField("backend", i).Debug("secret backend get failed")
		errs = append(errs, fmt.Errorf("backend %d get: %w", i, err))
	}

	if missing == len(s.backends) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", errors.Join(errs...)
}

// Delete fails only when no backend could confirm the secret is gone.
func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil || errors.Is(err, domain.ErrSecretNotFound) {
			continue
		}
		if shouldStop(err) {
			return err
		}

		s.logger.WithError(err).WithField("backend", i).Debug("secret backend delete failed")
		errs = append(errs, fmt.Errorf("backend %d delete: %w", i, err))
	}

	if len(errs) == len(s.backends) {
		return errors.Join(errs...)
	}

	return nil
}

func shouldStop(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
