package service

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/repository"
	"skillswap/exchange-service/internal/storage"
	"skillswap/exchange-service/internal/storage/storagetest"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stepClock advances one second on every reading so records written in sequence
// get distinct, ordered timestamps.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

type fixture struct {
	store   *storagetest.FaultyStore
	chat    ChatService
	matches MatchService
	catalog CatalogService
	clock   *stepClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storagetest.NewFaultyStore(storage.NewMemoryStore())
	storagetest.Seed(t, store, storage.UserProfiles,
		&models.UserProfile{ID: "alice", UserName: "Alice", Bio: "Backend engineer", City: "Lisbon", IsAvailable: true},
		&models.UserProfile{ID: "bob", UserName: "Bob", Bio: "Guitar tutor", City: "Porto"},
		&models.UserProfile{ID: "carol", UserName: "Carol", Bio: "Chef", Region: "Algarve", IsAvailable: true},
	)
	storagetest.Seed(t, store, storage.Matches,
		&models.Match{ID: "m-ab", MatchTitle: "Go for guitar", UserOneID: "alice", UserOneDisplayName: "Alice", UserTwoID: "bob", UserTwoDisplayName: "Bob", MatchConfidenceScore: intPtr(80)},
		&models.Match{ID: "m-ca", MatchTitle: "Cooking for code", UserOneID: "carol", UserOneDisplayName: "Carol", UserTwoID: "alice", UserTwoDisplayName: "Alice"},
		&models.Match{ID: "m-solo", MatchTitle: "Nobody yet", UserOneID: "alice"},
	)

	clock := newStepClock()
	chatRepo := repository.NewChatRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)
	logger := quietLogger()

	return &fixture{
		store:   store,
		chat:    NewChatService(chatRepo, catalogRepo, logger, WithClock(clock.Now)),
		matches: NewMatchService(catalogRepo, logger),
		catalog: NewCatalogService(catalogRepo, logger, WithClock(clock.Now)),
		clock:   clock,
	}
}
