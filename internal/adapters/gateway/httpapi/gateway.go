package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL        = "https://hack-or-snooze-v3.herokuapp.com"
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
)

type Gateway struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
	Logger         logrus.FieldLogger
}

var _ ports.Gateway = (*Gateway)(nil)

type tokenBody struct {
	Token string `json:"token"`
}

type createStoryBody struct {
	Token string                `json:"token"`
	Story domain.NewStoryFields `json:"story"`
}

type credentialsBody struct {
	User userCredentials `json:"user"`
}

type userCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type storiesResponse struct {
	Stories []domain.StoryData `json:"stories"`
}

type storyResponse struct {
	Story *domain.StoryData `json:"story"`
}

type userResponse struct {
	User  *domain.UserData `json:"user"`
	Token string           `json:"token"`
}

type apiErrorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(baseURL string, client *http.Client, logger logrus.FieldLogger) *Gateway {
	return &Gateway{BaseURL: baseURL, HTTPClient: client, Logger: logger}
}

func (g *Gateway) ListStories(ctx context.Context) ([]domain.StoryData, error) {
	var payload storiesResponse
	if err := g.do(ctx, "list stories", http.MethodGet, "/stories", nil, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Stories == nil {
		return nil, malformed("list stories", errors.New("missing stories"))
	}

	return payload.Stories, nil
}

func (g *Gateway) CreateStory(ctx context.Context, token string, fields domain.NewStoryFields) (domain.StoryData, error) {
	var payload storyResponse
	body := createStoryBody{Token: token, Story: fields}
	if err := g.do(ctx, "create story", http.MethodPost, "/stories", nil, body, &payload); err != nil {
		return domain.StoryData{}, err
	}
	if payload.Story == nil || payload.Story.StoryID == "" {
		return domain.StoryData{}, malformed("create story", errors.New("missing story id"))
	}

	return *payload.Story, nil
}

func (g *Gateway) DeleteStory(ctx context.Context, token string, id domain.StoryID) error {
	path := "/stories/" + url.PathEscape(string(id))
	return g.do(ctx, "delete story", http.MethodDelete, path, nil, tokenBody{Token: token}, nil)
}

func (g *Gateway) Register(ctx context.Context, username, password, name string) (ports.AuthResult, error) {
	body := credentialsBody{User: userCredentials{Username: username, Password: password, Name: name}}
	return g.authenticate(ctx, "signup", "/signup", body)
}

func (g *Gateway) Authenticate(ctx context.Context, username, password string) (ports.AuthResult, error) {
	body := credentialsBody{User: userCredentials{Username: username, Password: password}}
	return g.authenticate(ctx, "login", "/login", body)
}

func (g *Gateway) ResolveSession(ctx context.Context, token, username string) (domain.UserData, error) {
	var payload userResponse
	path := "/users/" + url.PathEscape(username)
	query := url.Values{"token": []string{token}}
	if err := g.do(ctx, "resolve session", http.MethodGet, path, query, nil, &payload); err != nil {
		return domain.UserData{}, err
	}
	if payload.User == nil || payload.User.Username == "" {
		return domain.UserData{}, malformed("resolve session", errors.New("missing user"))
	}

	return *payload.User, nil
}

func (g *Gateway) SetFavorite(ctx context.Context, token, username string, id domain.StoryID, present bool) error {
	op, method := "add favorite", http.MethodPost
	if !present {
		op, method = "remove favorite", http.MethodDelete
	}

	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(string(id))
	return g.do(ctx, op, method, path, nil, tokenBody{Token: token}, nil)
}

func (g *Gateway) authenticate(ctx context.Context, op, path string, body credentialsBody) (ports.AuthResult, error) {
	var payload userResponse
	if err := g.do(ctx, op, http.MethodPost, path, nil, body, &payload); err != nil {
		var remoteErr *domain.RemoteError
		if errors.As(err, &remoteErr) && isRejection(remoteErr.Status) {
			remoteErr.Rejected = true
		}
		return ports.AuthResult{}, err
	}
	if payload.User == nil || payload.User.Username == "" || payload.Token == "" {
		return ports.AuthResult{}, malformed(op, errors.New("missing user or token"))
	}

	return ports.AuthResult{User: *payload.User, Token: payload.Token}, nil
}

func (g *Gateway) do(ctx context.Context, op, method, path string, query url.Values, body any, out any) error {
	endpoint, err := buildAPIURL(g.BaseURL, path)
	if err != nil {
		return &domain.RemoteError{Op: op, Err: err}
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &domain.RemoteError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := g.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return &domain.RemoteError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if g.UserAgent != "" {
		req.Header.Set("User-Agent", g.UserAgent)
	}

	log := g.logger().WithFields(logrus.Fields{"op": op, "method": method, "path": path})
	started := time.Now()

	resp, err := g.httpClient().Do(req)
	if err != nil {
		log.WithError(err).Debug("api request failed")
		return &domain.RemoteError{Op: op, Err: fmt.Errorf("perform request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	log.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(started)}).Debug("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RemoteError{Op: op, Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return malformed(op, err)
	}

	return nil
}

func (g *Gateway) httpClient() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return http.DefaultClient
}

func (g *Gateway) logger() logrus.FieldLogger {
	if g.Logger != nil {
		return g.Logger
	}
	return logrus.StandardLogger()
}

func (g *Gateway) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := g.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func malformed(op string, err error) error {
	return &domain.RemoteError{Op: op, Message: "malformed response", Err: err}
}

// isRejection reports statuses the API uses to refuse a signup or login.
func isRejection(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusConflict:
		return true
	default:
		return false
	}
}

func errorMessage(body []byte) string {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error.Message != "" {
			return apiErr.Error.Message
		}
		if apiErr.Error.Title != "" {
			return apiErr.Error.Title
		}
	}

	return strings.TrimSpace(string(body))
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}
