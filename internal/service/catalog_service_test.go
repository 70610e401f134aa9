package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/storage"
	"skillswap/exchange-service/internal/storage/storagetest"
)

func seedSkills(t *testing.T, f *fixture) {
	t.Helper()
	storagetest.Seed(t, f.store, storage.Skills,
		&models.Skill{ID: "s1", SkillName: "Go", Category: "tech", DifficultyLevel: "advanced", Keywords: "backend concurrency"},
		&models.Skill{ID: "s2", SkillName: "Guitar", Category: "music", DifficultyLevel: "beginner"},
		&models.Skill{ID: "s3", SkillName: "Pasta", Category: "cooking", DifficultyLevel: "beginner", Description: "Fresh pasta by hand"},
	)
}

func TestHomeFeedTakesLeadingRecords(t *testing.T) {
	f := newFixture(t)
	seedSkills(t, f)

	feed, err := f.catalog.Home(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.Skills, 3)
	assert.Len(t, feed.Users, 3)
	assert.Len(t, feed.Matches, 3)
}

func TestHomeFeedFailsWhenACollectionFails(t *testing.T) {
	f := newFixture(t)
	f.store.Fail(storagetest.OpGetAll, storage.Skills, nil)

	_, err := f.catalog.Home(context.Background())
	assert.ErrorIs(t, err, storagetest.ErrInjected)
}

func TestDiscover(t *testing.T) {
	f := newFixture(t)
	seedSkills(t, f)

	result, err := f.catalog.Discover(context.Background(), DiscoveryQuery{Search: "gui"})
	require.NoError(t, err)
	require.Len(t, result.Skills, 1)
	assert.Equal(t, "s2", result.Skills[0].ID)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "bob", result.Users[0].ID)
	assert.Equal(t, []string{"cooking", "music", "tech"}, result.Categories)

	result, err = f.catalog.Discover(context.Background(), DiscoveryQuery{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, result.Skills, 3)
}

func TestListSkillsFilters(t *testing.T) {
	f := newFixture(t)
	seedSkills(t, f)
	ctx := context.Background()

	list, err := f.catalog.ListSkills(ctx, SkillQuery{Difficulty: "beginner"})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Skills, 2)
	assert.Equal(t, []string{"advanced", "beginner"}, list.Difficulties)

	list, err = f.catalog.ListSkills(ctx, SkillQuery{Search: "concurrency"})
	require.NoError(t, err)
	require.Len(t, list.Skills, 1)
	assert.Equal(t, "s1", list.Skills[0].ID)

	list, err = f.catalog.ListSkills(ctx, SkillQuery{Category: "music", Difficulty: "advanced"})
	require.NoError(t, err)
	assert.Empty(t, list.Skills)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	list, err := f.catalog.ListUsers(ctx, UserQuery{AvailableOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Users, 2)

	list, err = f.catalog.ListUsers(ctx, UserQuery{Search: "algarve"})
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "carol", list.Users[0].ID)
}

func TestGetUserAndSkillNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = f.catalog.GetSkill(ctx, "nothing")
	assert.ErrorIs(t, err, ErrSkillNotFound)

	u, err := f.catalog.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.UserName)
}

func TestListLocationsAndListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	storagetest.Seed(t, f.store, storage.Locations,
		&models.Location{ID: "l1", LocationName: "Central Library", City: "Lisbon", Country: "Portugal"},
		&models.Location{ID: "l2", LocationName: "Makerspace", City: "Berlin", Country: "Germany"},
	)
	storagetest.Seed(t, f.store, storage.SkillListings,
		&models.SkillListing{ID: "sl1", ListingType: "Offer", Status: "Active"},
		&models.SkillListing{ID: "sl2", ListingType: "Request", Status: "Active"},
		&models.SkillListing{ID: "sl3", ListingType: "offer", Status: "Closed"},
	)

	locs, err := f.catalog.ListLocations(ctx, "portugal")
	require.NoError(t, err)
	assert.Equal(t, 2, locs.Total)
	require.Len(t, locs.Locations, 1)
	assert.Equal(t, "l1", locs.Locations[0].ID)

	listings, err := f.catalog.ListSkillListings(ctx, ListingQuery{Type: "offer"})
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	listings, err = f.catalog.ListSkillListings(ctx, ListingQuery{Type: "offer", Status: "active"})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "sl1", listings[0].ID)
}

func TestSubmitContact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub, err := f.catalog.SubmitContact(ctx, ContactInput{
		SenderName:     " Dana ",
		SenderEmail:    "dana@example.com",
		Subject:        "Partnership",
		MessageContent: "Hello there",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", sub.SenderName)
	assert.Equal(t, "pending", sub.Status)
	assert.False(t, sub.SubmissionDateTime.IsZero())
	assert.Equal(t, 1, f.store.Calls(storagetest.OpCreate, storage.ContactSubmissions))
}

func TestSubmitContactValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.SubmitContact(context.Background(), ContactInput{
		SenderName:  "Dana",
		SenderEmail: "not-an-email",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Fields["SenderEmail"])
	assert.Equal(t, "required", verr.Fields["Subject"])
	assert.Equal(t, "required", verr.Fields["MessageContent"])
	assert.NotContains(t, verr.Fields, "SenderName")
	assert.Equal(t, 0, f.store.Calls(storagetest.OpCreate, storage.ContactSubmissions))
}

func TestOnboarding(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	status, err := f.catalog.GetOnboarding(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, status.Completed)

	state, err := f.catalog.CompleteOnboarding(ctx, "alice", []string{"tech", "music", "tech"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tech", "music"}, state.Interests)

	status, err = f.catalog.GetOnboarding(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.Completed)
	assert.Equal(t, []string{"tech", "music"}, status.State.Interests)

	status, err = f.catalog.GetOnboarding(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, status.Completed)
}

func TestCompleteOnboardingValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.catalog.CompleteOnboarding(ctx, "alice", []string{"tech", "astrology"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = f.catalog.CompleteOnboarding(ctx, "", []string{"tech"})
	assert.ErrorIs(t, err, ErrMemberRequired)

	_, err = f.catalog.GetOnboarding(ctx, "")
	assert.ErrorIs(t, err, ErrMemberRequired)
}
