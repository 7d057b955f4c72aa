package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bnema/snooze-cli/internal/adapters/gateway/httpapi"
	storiesadapter "github.com/bnema/snooze-cli/internal/adapters/render/stories"
	tomlrepo "github.com/bnema/snooze-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/snooze-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/snooze-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/snooze-cli/internal/adapters/secrets/pass"
	"github.com/bnema/snooze-cli/internal/application"
	"github.com/bnema/snooze-cli/internal/config"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/bnema/snooze-cli/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	config        config.Config
	logger        logrus.FieldLogger
	sessions      *application.SessionManager
	stories       *application.StoryList
	bootstrap     *application.Bootstrap
	storyRenderer func(storiesadapter.StoryListView, storiesadapter.RenderOptions) (string, error)
	now           func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	secretStore, err := newSecretStore(cfg.Secrets, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	clock := ports.SystemClock{}
	credentials, err := tomlrepo.NewCredentialRepository(cfg.Credentials.Path, secretStore, clock)
	if err != nil {
		return nil, fmt.Errorf("wire credential repository: %w", err)
	}

	gateway := httpapi.New(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger)
	gateway.RequestTimeout = cfg.API.Timeout
	gateway.UserAgent = "snooze/" + version.Version

	stories := application.NewStoryList(gateway, logger)
	sessions := application.NewSessionManager(gateway, credentials, stories, clock, logger)

	return &app{
		config:        cfg,
		logger:        logger,
		sessions:      sessions,
		stories:       stories,
		bootstrap:     application.NewBootstrap(sessions),
		storyRenderer: storiesadapter.Render,
		now:           time.Now,
	}, nil
}

func newSecretStore(cfg config.SecretsConfig, logger logrus.FieldLogger) (ports.SecretStore, error) {
	switch cfg.Backend {
	case config.SecretsBackendFile:
		return filestore.NewStore(cfg.Dir), nil
	case config.SecretsBackendPass:
		return passstore.NewStore(), nil
	case config.SecretsBackendChain:
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir, logger)
	default:
		return nil, fmt.Errorf("unsupported secrets backend %q", cfg.Backend)
	}
}
