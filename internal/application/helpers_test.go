package application

import (
	"testing"
	"time"

	"github.com/bnema/snooze-cli/internal/domain"
	"github.com/bnema/snooze-cli/internal/ports/mocks"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

type stoppedClock struct{ now time.Time }

func (c stoppedClock) Now() time.Time { return c.now }

func anyCtx() interface{} {
	return mock.Anything
}

func quietLogger() logrus.FieldLogger {
	logger, _ := logrustest.NewNullLogger()
	return logger
}

type fixture struct {
	gateway     *mocks.MockGateway
	credentials *mocks.MockCredentialStore
	stories     *StoryList
	sessions    *SessionManager
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	gateway := mocks.NewMockGateway(t)
	credentials := mocks.NewMockCredentialStore(t)
	logger := quietLogger()
	stories := NewStoryList(gateway, logger)

	return fixture{
		gateway:     gateway,
		credentials: credentials,
		stories:     stories,
		sessions:    NewSessionManager(gateway, credentials, stories, stoppedClock{now: testNow}, logger),
	}
}

func storyData(id, username string) domain.StoryData {
	return domain.StoryData{
		StoryID:   id,
		Title:     "Story " + id,
		Author:    "Author " + id,
		URL:       "https://example.com/" + id,
		Username:  username,
		CreatedAt: "2026-03-01T10:00:00.000Z",
	}
}

func userData(username string, own, favorites []domain.StoryData) domain.UserData {
	return domain.UserData{
		Username:  username,
		Name:      "Test " + username,
		CreatedAt: "2026-01-01T00:00:00.000Z",
		Stories:   own,
		Favorites: favorites,
	}
}

func storyIDs(stories []domain.Story) []domain.StoryID {
	ids := make([]domain.StoryID, 0, len(stories))
	for _, story := range stories {
		ids = append(ids, story.ID)
	}
	return ids
}
