// Package fakeapi is an in-memory stand-in for the Hack or Snooze API used by
// the CLI and end-to-end tests.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
)

type user struct {
	password  string
	name      string
	createdAt string
	favorites []string
	stories   []string
}

// API holds users, tokens and stories. Stories are kept newest first.
type API struct {
	mu      sync.Mutex
	users   map[string]*user
	tokens  map[string]string
	stories []domain.StoryData
	nextID  int
	now     func() time.Time
	calls   []string
}

func New() *API {
	return &API{
		users:  map[string]*user{},
		tokens: map[string]string{},
		now:    func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

// Start serves the API until the returned server is closed.
func (a *API) Start() *httptest.Server {
	return httptest.NewServer(a.Handler())
}

func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stories", a.listStories)
	mux.HandleFunc("POST /stories", a.createStory)
	mux.HandleFunc("DELETE /stories/{id}", a.deleteStory)
	mux.HandleFunc("POST /signup", a.signup)
	mux.HandleFunc("POST /login", a.login)
	mux.HandleFunc("GET /users/{username}", a.getUser)
	mux.HandleFunc("POST /users/{username}/favorites/{id}", a.setFavorite(true))
	mux.HandleFunc("DELETE /users/{username}/favorites/{id}", a.setFavorite(false))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.calls = append(a.calls, r.Method+" "+r.URL.Path)
		a.mu.Unlock()
		mux.ServeHTTP(w, r)
	})
}

// AddUser registers a user directly and returns a valid token for it.
func (a *API) AddUser(username, password, name string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.users[username] = &user{password: password, name: name, createdAt: a.stamp()}
	return a.issueToken(username)
}

// AddStory posts a story as username and returns its id.
func (a *API) AddStory(username, title, author, storyURL string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	story := a.newStory(username, domain.NewStoryFields{Title: title, Author: author, URL: storyURL})
	return story.StoryID
}

func (a *API) RevokeTokens() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tokens = map[string]string{}
}

func (a *API) Favorites(username string) []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if u, ok := a.users[username]; ok {
		return slices.Clone(u.favorites)
	}
	return nil
}

func (a *API) StoryIDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]string, 0, len(a.stories))
	for _, story := range a.stories {
		ids = append(ids, story.StoryID)
	}
	return ids
}

func (a *API) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return slices.Clone(a.calls)
}

func (a *API) listStories(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"stories": a.stories})
}

func (a *API) createStory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string                `json:"token"`
		Story domain.NewStoryFields `json:"story"`
	}
	if !decode(w, r, &body) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	username, ok := a.tokens[body.Token]
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}
	if err := body.Story.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	story := a.newStory(username, body.Story)
	writeJSON(w, http.StatusCreated, map[string]any{"story": story})
}

func (a *API) deleteStory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !decode(w, r, &body) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	username, ok := a.tokens[body.Token]
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}

	id := r.PathValue("id")
	idx := slices.IndexFunc(a.stories, func(s domain.StoryData) bool { return s.StoryID == id })
	if idx < 0 {
		writeError(w, http.StatusNotFound, "Not Found", "no story with id "+id)
		return
	}
	story := a.stories[idx]
	if story.Username != username {
		writeError(w, http.StatusForbidden, "Forbidden", "you can only delete your own stories")
		return
	}

	a.stories = slices.Delete(a.stories, idx, idx+1)
	for _, u := range a.users {
		u.stories = slices.DeleteFunc(u.stories, func(s string) bool { return s == id })
		u.favorites = slices.DeleteFunc(u.favorites, func(s string) bool { return s == id })
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "deleted", "story": story})
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
		} `json:"user"`
	}
	if !decode(w, r, &body) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if body.User.Username == "" || body.User.Password == "" || body.User.Name == "" {
		writeError(w, http.StatusBadRequest, "Bad Request", "username, password and name are required")
		return
	}
	if _, exists := a.users[body.User.Username]; exists {
		writeError(w, http.StatusConflict, "User Already Exists", "There is already a user with username "+body.User.Username)
		return
	}

	a.users[body.User.Username] = &user{password: body.User.Password, name: body.User.Name, createdAt: a.stamp()}
	token := a.issueToken(body.User.Username)
	writeJSON(w, http.StatusCreated, map[string]any{"token": token, "user": a.userPayload(body.User.Username)})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		User struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if !decode(w, r, &body) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	u, ok := a.users[body.User.Username]
	if !ok {
		writeError(w, http.StatusNotFound, "User Not Found", "No user with username "+body.User.Username)
		return
	}
	if u.password != body.User.Password {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Invalid password")
		return
	}

	token := a.issueToken(body.User.Username)
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": a.userPayload(body.User.Username)})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	username := r.PathValue("username")
	if owner, ok := a.tokens[r.URL.Query().Get("token")]; !ok || owner != username {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return
	}
	if _, ok := a.users[username]; !ok {
		writeError(w, http.StatusNotFound, "User Not Found", "No user with username "+username)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": a.userPayload(username)})
}

func (a *API) setFavorite(present bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Token string `json:"token"`
		}
		if !decode(w, r, &body) {
			return
		}

		a.mu.Lock()
		defer a.mu.Unlock()

		username := r.PathValue("username")
		if owner, ok := a.tokens[body.Token]; !ok || owner != username {
			writeError(w, http.StatusUnauthorized, "Unauthorized", "invalid token")
			return
		}

		id := r.PathValue("id")
		u := a.users[username]
		if present {
			if !slices.ContainsFunc(a.stories, func(s domain.StoryData) bool { return s.StoryID == id }) {
				writeError(w, http.StatusNotFound, "Not Found", "no story with id "+id)
				return
			}
			if !slices.Contains(u.favorites, id) {
				u.favorites = append(u.favorites, id)
			}
		} else {
			u.favorites = slices.DeleteFunc(u.favorites, func(s string) bool { return s == id })
		}

		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "user": a.userPayload(username)})
	}
}

func (a *API) newStory(username string, fields domain.NewStoryFields) domain.StoryData {
	a.nextID++
	story := domain.StoryData{
		StoryID:   fmt.Sprintf("story-%d", a.nextID),
		Title:     fields.Title,
		Author:    fields.Author,
		URL:       fields.URL,
		Username:  username,
		CreatedAt: a.stamp(),
	}

	a.stories = append([]domain.StoryData{story}, a.stories...)
	if u, ok := a.users[username]; ok {
		u.stories = append([]string{story.StoryID}, u.stories...)
	}
	return story
}

func (a *API) userPayload(username string) domain.UserData {
	u := a.users[username]
	return domain.UserData{
		Username:  username,
		Name:      u.name,
		CreatedAt: u.createdAt,
		Favorites: a.lookup(u.favorites),
		Stories:   a.lookup(u.stories),
	}
}

func (a *API) lookup(ids []string) []domain.StoryData {
	out := make([]domain.StoryData, 0, len(ids))
	for _, id := range ids {
		idx := slices.IndexFunc(a.stories, func(s domain.StoryData) bool { return s.StoryID == id })
		if idx >= 0 {
			out = append(out, a.stories[idx])
		}
	}
	return out
}

func (a *API) issueToken(username string) string {
	token := fmt.Sprintf("token-%s-%d", username, len(a.tokens)+1)
	a.tokens[token] = username
	return token
}

func (a *API) stamp() string {
	return a.now().Format(time.RFC3339)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, title, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"status": status, "title": title, "message": message},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
