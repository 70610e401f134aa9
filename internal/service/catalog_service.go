package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"skillswap/exchange-service/internal/metrics"
	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/repository"
)

const (
	homeSkills  = 6
	homeUsers   = 4
	homeMatches = 3
)

// OnboardingCategories are the interests a member can pick while onboarding.
var OnboardingCategories = []string{
	"tech", "design", "business", "language", "music", "fitness", "cooking", "other",
}

type HomeFeed struct {
	Skills  []*models.Skill       `json:"skills"`
	Users   []*models.UserProfile `json:"users"`
	Matches []*models.Match       `json:"matches"`
}

type DiscoveryQuery struct {
	Search   string
	Category string
}

type DiscoveryResult struct {
	Skills     []*models.Skill       `json:"skills"`
	Users      []*models.UserProfile `json:"users"`
	Categories []string              `json:"categories"`
}

type UserQuery struct {
	Search        string
	AvailableOnly bool
}

type UserList struct {
	Users []*models.UserProfile `json:"users"`
	Total int                   `json:"total"`
}

type SkillQuery struct {
	Search     string
	Category   string
	Difficulty string
}

type SkillList struct {
	Skills       []*models.Skill `json:"skills"`
	Total        int             `json:"total"`
	Categories   []string        `json:"categories"`
	Difficulties []string        `json:"difficulties"`
}

type LocationList struct {
	Locations []*models.Location `json:"locations"`
	Total     int                `json:"total"`
}

type ListingQuery struct {
	Type   string
	Status string
}

type ContactInput struct {
	SenderName     string `json:"senderName"`
	SenderEmail    string `json:"senderEmail"`
	Subject        string `json:"subject"`
	MessageContent string `json:"messageContent"`
}

type OnboardingStatus struct {
	Completed bool                    `json:"completed"`
	State     *models.OnboardingState `json:"state,omitempty"`
}

// CatalogService backs the browsing pages: home, discovery, directories and detail views,
// the contact form and onboarding.
type CatalogService interface {
	Home(ctx context.Context) (*HomeFeed, error)
	Discover(ctx context.Context, q DiscoveryQuery) (*DiscoveryResult, error)
	ListUsers(ctx context.Context, q UserQuery) (*UserList, error)
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
	ListSkills(ctx context.Context, q SkillQuery) (*SkillList, error)
	GetSkill(ctx context.Context, id string) (*models.Skill, error)
	ListLocations(ctx context.Context, search string) (*LocationList, error)
	ListSkillListings(ctx context.Context, q ListingQuery) ([]*models.SkillListing, error)
	SubmitContact(ctx context.Context, in ContactInput) (*models.ContactSubmission, error)
	GetOnboarding(ctx context.Context, memberID string) (*OnboardingStatus, error)
	CompleteOnboarding(ctx context.Context, memberID string, interests []string) (*models.OnboardingState, error)
}

type catalogService struct {
	catalog  repository.CatalogRepository
	logger   *logrus.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewCatalogService(catalog repository.CatalogRepository, logger *logrus.Logger, opts ...Option) CatalogService {
	o := buildOptions(opts)
	return &catalogService{
		catalog:  catalog,
		logger:   logger,
		validate: validator.New(),
		now:      o.now,
	}
}

func (s *catalogService) Home(ctx context.Context) (*HomeFeed, error) {
	feed := &HomeFeed{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills, err := s.catalog.ListSkills(gctx)
		feed.Skills = head(skills, homeSkills)
		return err
	})
	g.Go(func() error {
		users, err := s.catalog.ListUsers(gctx)
		feed.Users = head(users, homeUsers)
		return err
	})
	g.Go(func() error {
		matches, err := s.catalog.ListMatches(gctx)
		feed.Matches = head(matches, homeMatches)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load home feed")
		return nil, err
	}

	return feed, nil
}

func (s *catalogService) Discover(ctx context.Context, q DiscoveryQuery) (*DiscoveryResult, error) {
	var skills []*models.Skill
	var users []*models.UserProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = s.catalog.ListSkills(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.catalog.ListUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load discovery")
		return nil, err
	}

	result := &DiscoveryResult{
		Skills:     []*models.Skill{},
		Users:      []*models.UserProfile{},
		Categories: distinct(skills, func(sk *models.Skill) string { return sk.Category }),
	}
	for _, sk := range skills {
		if matchesTerm(q.Search, sk.SkillName, sk.Description) && (anyValue(q.Category) || sk.Category == q.Category) {
			result.Skills = append(result.Skills, sk)
		}
	}
	for _, u := range users {
		if matchesTerm(q.Search, u.UserName, u.Bio) {
			result.Users = append(result.Users, u)
		}
	}

	return result, nil
}

func (s *catalogService) ListUsers(ctx context.Context, q UserQuery) (*UserList, error) {
	all, err := s.catalog.ListUsers(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list users")
		return nil, err
	}

	list := &UserList{Users: []*models.UserProfile{}, Total: len(all)}
	for _, u := range all {
		if !matchesTerm(q.Search, u.UserName, u.Bio, u.City, u.Region) {
			continue
		}
		if q.AvailableOnly && !u.IsAvailable {
			continue
		}
		list.Users = append(list.Users, u)
	}
	return list, nil
}

func (s *catalogService) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	user, err := s.catalog.GetUserByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.WithError(err).Error("Failed to get user")
		return nil, err
	}
	return user, nil
}

func (s *catalogService) ListSkills(ctx context.Context, q SkillQuery) (*SkillList, error) {
	all, err := s.catalog.ListSkills(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list skills")
		return nil, err
	}

	list := &SkillList{
		Skills:       []*models.Skill{},
		Total:        len(all),
		Categories:   distinct(all, func(sk *models.Skill) string { return sk.Category }),
		Difficulties: distinct(all, func(sk *models.Skill) string { return sk.DifficultyLevel }),
	}
	for _, sk := range all {
		if !matchesTerm(q.Search, sk.SkillName, sk.Description, sk.Keywords) {
			continue
		}
		if !anyValue(q.Category) && sk.Category != q.Category {
			continue
		}
		if !anyValue(q.Difficulty) && sk.DifficultyLevel != q.Difficulty {
			continue
		}
		list.Skills = append(list.Skills, sk)
	}
	return list, nil
}

func (s *catalogService) GetSkill(ctx context.Context, id string) (*models.Skill, error) {
	skill, err := s.catalog.GetSkillByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrSkillNotFound
		}
		s.logger.WithError(err).Error("Failed to get skill")
		return nil, err
	}
	return skill, nil
}

func (s *catalogService) ListLocations(ctx context.Context, search string) (*LocationList, error) {
	all, err := s.catalog.ListLocations(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list locations")
		return nil, err
	}

	list := &LocationList{Locations: []*models.Location{}, Total: len(all)}
	for _, loc := range all {
		if matchesTerm(search, loc.LocationName, loc.City, loc.StateProvince, loc.Country, loc.Description) {
			list.Locations = append(list.Locations, loc)
		}
	}
	return list, nil
}

func (s *catalogService) ListSkillListings(ctx context.Context, q ListingQuery) ([]*models.SkillListing, error) {
	all, err := s.catalog.ListSkillListings(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list skill listings")
		return nil, err
	}

	out := []*models.SkillListing{}
	for _, l := range all {
		if !anyValue(q.Type) && !strings.EqualFold(l.ListingType, q.Type) {
			continue
		}
		if !anyValue(q.Status) && !strings.EqualFold(l.Status, q.Status) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *catalogService) SubmitContact(ctx context.Context, in ContactInput) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{
		ID:                 uuid.New().String(),
		SenderName:         strings.TrimSpace(in.SenderName),
		SenderEmail:        strings.TrimSpace(in.SenderEmail),
		Subject:            strings.TrimSpace(in.Subject),
		MessageContent:     strings.TrimSpace(in.MessageContent),
		SubmissionDateTime: s.now(),
		Status:             "pending",
	}
	if err := s.validate.Struct(sub); err != nil {
		return nil, newValidationError(err)
	}

	if err := s.catalog.CreateContactSubmission(ctx, sub); err != nil {
		s.logger.WithError(err).Error("Failed to store contact submission")
		return nil, err
	}
	metrics.ContactSubmissionsTotal.Inc()

	s.logger.WithFields(logrus.Fields{
		"submission_id": sub.ID,
		"subject":       sub.Subject,
	}).Info("Contact submission stored")

	return sub, nil
}

func (s *catalogService) GetOnboarding(ctx context.Context, memberID string) (*OnboardingStatus, error) {
	if memberID == "" {
		return nil, ErrMemberRequired
	}
	state, err := s.catalog.GetOnboarding(ctx, memberID)
	if err != nil {
		if repository.IsNotFound(err) {
			return &OnboardingStatus{}, nil
		}
		return nil, err
	}
	return &OnboardingStatus{Completed: true, State: state}, nil
}

type onboardingInput struct {
	Interests []string `validate:"dive,oneof=tech design business language music fitness cooking other"`
}

func (s *catalogService) CompleteOnboarding(ctx context.Context, memberID string, interests []string) (*models.OnboardingState, error) {
	if memberID == "" {
		return nil, ErrMemberRequired
	}
	if err := s.validate.Struct(onboardingInput{Interests: interests}); err != nil {
		return nil, newValidationError(err)
	}

	state := &models.OnboardingState{
		ID:          memberID,
		Interests:   dedupe(interests),
		CompletedAt: s.now(),
	}
	if err := s.catalog.SaveOnboarding(ctx, state); err != nil {
		s.logger.WithError(err).WithField("member_id", memberID).Error("Failed to save onboarding")
		return nil, err
	}
	return state, nil
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	if items == nil {
		return []T{}
	}
	return items
}

// distinct collects the non-empty values of key, sorted.
func distinct[T any](items []T, key func(T) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range items {
		v := key(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func dedupe(values []string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
