package domain

import (
	"net/url"
	"strings"
	"time"
)

type StoryID string

// StoryData is the story shape exchanged with the remote API.
type StoryData struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Story is a value: collections hold copies and never edit one in place.
type Story struct {
	ID        StoryID
	Title     string
	Author    string
	URL       string
	Username  string
	CreatedAt time.Time
}

// NewStoryFields are the fields a user supplies when submitting a story.
type NewStoryFields struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

func NewStory(data StoryData) Story {
	return Story{
		ID:        StoryID(data.StoryID),
		Title:     data.Title,
		Author:    data.Author,
		URL:       data.URL,
		Username:  data.Username,
		CreatedAt: ParseTimestamp(data.CreatedAt),
	}
}

func NewStories(data []StoryData) []Story {
	stories := make([]Story, 0, len(data))
	for _, entry := range data {
		stories = append(stories, NewStory(entry))
	}

	return stories
}

// Hostname returns the host part of the story URL, or "" when it does not parse.
func (s Story) Hostname() string {
	parsed, err := url.Parse(strings.TrimSpace(s.URL))
	if err != nil {
		return ""
	}

	return parsed.Host
}

func (f NewStoryFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(f.Author) == "" {
		return &ValidationError{Field: "author", Reason: "is required"}
	}
	if strings.TrimSpace(f.URL) == "" {
		return &ValidationError{Field: "url", Reason: "is required"}
	}

	parsed, err := url.ParseRequestURI(strings.TrimSpace(f.URL))
	if err != nil || parsed.Host == "" {
		return &ValidationError{Field: "url", Reason: "must be an absolute URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Reason: "must use http or https"}
	}

	return nil
}

// ParseTimestamp accepts the API's ISO-8601 timestamps and yields the zero time otherwise.
func ParseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed
		}
	}

	return time.Time{}
}

func indexOfStory(stories []Story, id StoryID) int {
	for i := range stories {
		if stories[i].ID == id {
			return i
		}
	}

	return -1
}

func withoutStory(stories []Story, id StoryID) []Story {
	result := make([]Story, 0, len(stories))
	for _, story := range stories {
		if story.ID == id {
			continue
		}
		result = append(result, story)
	}

	return result
}

// PrependStory puts story at the front and drops any other entry sharing its id.
func PrependStory(stories []Story, story Story) []Story {
	result := make([]Story, 0, len(stories)+1)
	result = append(result, story)

	return append(result, withoutStory(stories, story.ID)...)
}

// RemoveStory drops every entry with the given id; absent ids are a no-op.
func RemoveStory(stories []Story, id StoryID) []Story {
	return withoutStory(stories, id)
}

// UniqueStories keeps the first occurrence of each id.
func UniqueStories(stories []Story) []Story {
	result := make([]Story, 0, len(stories))
	seen := make(map[StoryID]struct{}, len(stories))
	for _, story := range stories {
		if _, ok := seen[story.ID]; ok {
			continue
		}
		seen[story.ID] = struct{}{}
		result = append(result, story)
	}

	return result
}

func ContainsStory(stories []Story, id StoryID) bool {
	return indexOfStory(stories, id) >= 0
}
