package repository

import (
	"context"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/storage"
)

// CatalogRepository covers the collections behind the browsing pages, plus contact
// form submissions and onboarding state.
type CatalogRepository interface {
	ListUsers(ctx context.Context) ([]*models.UserProfile, error)
	GetUserByID(ctx context.Context, id string) (*models.UserProfile, error)
	ListSkills(ctx context.Context) ([]*models.Skill, error)
	GetSkillByID(ctx context.Context, id string) (*models.Skill, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	GetMatchByID(ctx context.Context, id string) (*models.Match, error)
	ListLocations(ctx context.Context) ([]*models.Location, error)
	ListSkillListings(ctx context.Context) ([]*models.SkillListing, error)
	CreateContactSubmission(ctx context.Context, sub *models.ContactSubmission) error
	GetOnboarding(ctx context.Context, memberID string) (*models.OnboardingState, error)
	SaveOnboarding(ctx context.Context, state *models.OnboardingState) error
}

type catalogRepository struct {
	users       collection[models.UserProfile]
	skills      collection[models.Skill]
	matches     collection[models.Match]
	locations   collection[models.Location]
	listings    collection[models.SkillListing]
	submissions collection[models.ContactSubmission]
	onboarding  collection[models.OnboardingState]
}

func NewCatalogRepository(store storage.Store) CatalogRepository {
	return &catalogRepository{
		users:       newCollection[models.UserProfile](store, storage.UserProfiles),
		skills:      newCollection[models.Skill](store, storage.Skills),
		matches:     newCollection[models.Match](store, storage.Matches),
		locations:   newCollection[models.Location](store, storage.Locations),
		listings:    newCollection[models.SkillListing](store, storage.SkillListings),
		submissions: newCollection[models.ContactSubmission](store, storage.ContactSubmissions),
		onboarding:  newCollection[models.OnboardingState](store, storage.OnboardingStates),
	}
}

func (r *catalogRepository) ListUsers(ctx context.Context) ([]*models.UserProfile, error) {
	return r.users.all(ctx)
}

func (r *catalogRepository) GetUserByID(ctx context.Context, id string) (*models.UserProfile, error) {
	return r.users.byID(ctx, id)
}

func (r *catalogRepository) ListSkills(ctx context.Context) ([]*models.Skill, error) {
	return r.skills.all(ctx)
}

func (r *catalogRepository) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	return r.skills.byID(ctx, id)
}

func (r *catalogRepository) ListMatches(ctx context.Context) ([]*models.Match, error) {
	return r.matches.all(ctx)
}

func (r *catalogRepository) GetMatchByID(ctx context.Context, id string) (*models.Match, error) {
	return r.matches.byID(ctx, id)
}

func (r *catalogRepository) ListLocations(ctx context.Context) ([]*models.Location, error) {
	return r.locations.all(ctx)
}

func (r *catalogRepository) ListSkillListings(ctx context.Context) ([]*models.SkillListing, error) {
	return r.listings.all(ctx)
}

func (r *catalogRepository) CreateContactSubmission(ctx context.Context, sub *models.ContactSubmission) error {
	return r.submissions.create(ctx, sub.ID, sub)
}

func (r *catalogRepository) GetOnboarding(ctx context.Context, memberID string) (*models.OnboardingState, error) {
	return r.onboarding.byID(ctx, memberID)
}

// SaveOnboarding creates the member's record or overwrites its fields.
func (r *catalogRepository) SaveOnboarding(ctx context.Context, state *models.OnboardingState) error {
	err := r.onboarding.create(ctx, state.ID, state)
	if err == nil || !isAlreadyExists(err) {
		return err
	}
	return r.onboarding.update(ctx, state.ID, state)
}
