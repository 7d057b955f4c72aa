package application

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

// StoryList is the canonical newest-first collection of every known story.
// Its lock is never held across a gateway call.
type StoryList struct {
	gateway ports.Gateway
	logger  logrus.FieldLogger

	mu      sync.RWMutex
	stories []domain.Story
}

func NewStoryList(gateway ports.Gateway, logger logrus.FieldLogger) *StoryList {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &StoryList{gateway: gateway, logger: logger}
}

// LoadAll replaces the whole collection. On failure the previous contents stay.
func (l *StoryList) LoadAll(ctx context.Context) error {
	data, err := l.gateway.ListStories(ctx)
	if err != nil {
		return fmt.Errorf("list stories: %w", err)
	}

	stories := domain.UniqueStories(domain.NewStories(data))

	l.mu.Lock()
	l.stories = stories
	l.mu.Unlock()

	l.logger.WithField("count", len(stories)).Debug("story feed loaded")
	return nil
}

// Create submits a story on behalf of session and puts it first in both the
// collection and the session's own stories.
func (l *StoryList) Create(ctx context.Context, session *domain.Session, fields domain.NewStoryFields) (domain.Story, error) {
	if session == nil || session.Validate() != nil {
		return domain.Story{}, domain.ErrAuthRequired
	}

	story, err := l.create(ctx, session.Token, fields)
	if err != nil {
		return domain.Story{}, err
	}

	session.PrependOwnStory(story)
	return story, nil
}

// Remove deletes a story remotely, then drops it from the collection and from
// both session views whether or not the session owns it.
func (l *StoryList) Remove(ctx context.Context, session *domain.Session, id domain.StoryID) error {
	if session == nil || session.Validate() != nil {
		return domain.ErrAuthRequired
	}

	if err := l.remove(ctx, session.Token, id); err != nil {
		return err
	}

	session.ForgetStory(id)
	return nil
}

func (l *StoryList) Stories() []domain.Story {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.stories)
}

func (l *StoryList) Find(id domain.StoryID) (domain.Story, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, story := range l.stories {
		if story.ID == id {
			return story, true
		}
	}

	return domain.Story{}, false
}

func (l *StoryList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.stories)
}

func (l *StoryList) create(ctx context.Context, token string, fields domain.NewStoryFields) (domain.Story, error) {
	if err := fields.Validate(); err != nil {
		return domain.Story{}, fmt.Errorf("create story: %w", err)
	}

	data, err := l.gateway.CreateStory(ctx, token, fields)
	if err != nil {
		return domain.Story{}, fmt.Errorf("create story: %w", err)
	}

	story := domain.NewStory(data)

	l.mu.Lock()
	l.stories = domain.PrependStory(l.stories, story)
	l.mu.Unlock()

	l.logger.WithFields(logrus.Fields{"story_id": story.ID, "username": story.Username}).Info("story created")
	return story, nil
}

func (l *StoryList) remove(ctx context.Context, token string, id domain.StoryID) error {
	if err := l.gateway.DeleteStory(ctx, token, id); err != nil {
		return fmt.Errorf("delete story %s: %w", id, err)
	}

	l.mu.Lock()
	l.stories = domain.RemoveStory(l.stories, id)
	l.mu.Unlock()

	l.logger.WithField("story_id", id).Info("story deleted")
	return nil
}
