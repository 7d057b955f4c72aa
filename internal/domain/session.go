package domain

import (
	"slices"
	"strings"
	"time"
)

// UserData is the user shape returned by signup, login and user lookups.
// The API names the user's own submissions "stories"; "ownStories" is accepted too.
type UserData struct {
	Username   string      `json:"username"`
	Name       string      `json:"name"`
	CreatedAt  string      `json:"createdAt"`
	Favorites  []StoryData `json:"favorites"`
	Stories    []StoryData `json:"stories"`
	OwnStories []StoryData `json:"ownStories,omitempty"`
}

func (d UserData) OwnStoryData() []StoryData {
	if len(d.Stories) > 0 {
		return d.Stories
	}

	return d.OwnStories
}

// Session is the authenticated actor together with its derived story views.
type Session struct {
	Username   string
	Name       string
	CreatedAt  time.Time
	Token      string
	OwnStories []Story
	Favorites  []Story
}

func NewSession(data UserData, token string) Session {
	return Session{
		Username:   data.Username,
		Name:       data.Name,
		CreatedAt:  ParseTimestamp(data.CreatedAt),
		Token:      token,
		OwnStories: UniqueStories(NewStories(data.OwnStoryData())),
		Favorites:  UniqueStories(NewStories(data.Favorites)),
	}
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Username) == "" {
		return &ValidationError{Field: "username", Reason: "is required"}
	}
	if strings.TrimSpace(s.Token) == "" {
		return &ValidationError{Field: "token", Reason: "is required"}
	}

	return nil
}

func (s Session) IsFavorite(id StoryID) bool {
	return ContainsStory(s.Favorites, id)
}

func (s Session) IsOwnStory(id StoryID) bool {
	return ContainsStory(s.OwnStories, id)
}

// AddFavorite appends story unless a favorite with the same id already exists.
func (s *Session) AddFavorite(story Story) bool {
	if s.IsFavorite(story.ID) {
		return false
	}

	s.Favorites = append(s.Favorites, story)
	return true
}

// RemoveFavorite drops the favorite with the given id and reports where it was.
func (s *Session) RemoveFavorite(id StoryID) (Story, int, bool) {
	idx := indexOfStory(s.Favorites, id)
	if idx < 0 {
		return Story{}, -1, false
	}

	removed := s.Favorites[idx]
	s.Favorites = RemoveStory(s.Favorites, id)
	return removed, idx, true
}

// RestoreFavorite reinserts a favorite at index, clamped to the current length.
func (s *Session) RestoreFavorite(story Story, index int) {
	if s.IsFavorite(story.ID) {
		return
	}

	if index < 0 || index > len(s.Favorites) {
		index = len(s.Favorites)
	}
	s.Favorites = slices.Insert(slices.Clone(s.Favorites), index, story)
}

func (s *Session) PrependOwnStory(story Story) {
	s.OwnStories = PrependStory(s.OwnStories, story)
}

// ForgetStory removes id from both the own-stories and favorites views.
func (s *Session) ForgetStory(id StoryID) {
	s.OwnStories = RemoveStory(s.OwnStories, id)
	s.Favorites = RemoveStory(s.Favorites, id)
}

// Clone returns a copy whose slices do not alias the receiver's.
func (s Session) Clone() Session {
	clone := s
	clone.OwnStories = slices.Clone(s.OwnStories)
	clone.Favorites = slices.Clone(s.Favorites)
	return clone
}
