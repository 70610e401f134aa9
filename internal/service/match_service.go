package service

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/models"
	"skillswap/exchange-service/internal/repository"
)

type MatchSort string

const (
	SortByRecency    MatchSort = "recent"
	SortByConfidence MatchSort = "confidence"
)

type MatchQuery struct {
	Search string
	Sort   MatchSort
}

type MatchList struct {
	Matches []*models.Match `json:"matches"`
	Total   int             `json:"total"`
}

// MatchService presents matches computed elsewhere. Nothing here scores or pairs users.
type MatchService interface {
	ListMatches(ctx context.Context, q MatchQuery) (*MatchList, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
}

type matchService struct {
	catalog repository.CatalogRepository
	logger  *logrus.Logger
}

func NewMatchService(catalog repository.CatalogRepository, logger *logrus.Logger) MatchService {
	return &matchService{catalog: catalog, logger: logger}
}

func (s *matchService) ListMatches(ctx context.Context, q MatchQuery) (*MatchList, error) {
	all, err := s.catalog.ListMatches(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list matches")
		return nil, err
	}

	filtered := FilterMatches(all, q.Search)
	SortMatches(filtered, q.Sort)

	return &MatchList{Matches: filtered, Total: len(all)}, nil
}

func (s *matchService) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.catalog.GetMatchByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrMatchNotFound
		}
		s.logger.WithError(err).Error("Failed to get match")
		return nil, err
	}
	return match, nil
}

// FilterMatches keeps matches whose title, participant names, skill names or
// explanation contain term.
func FilterMatches(matches []*models.Match, term string) []*models.Match {
	out := make([]*models.Match, 0, len(matches))
	for _, m := range matches {
		if matchesTerm(term,
			m.MatchTitle,
			m.UserOneDisplayName,
			m.UserTwoDisplayName,
			m.OfferedSkillName,
			m.RequestedSkillName,
			m.MatchExplanation,
		) {
			out = append(out, m)
		}
	}
	return out
}

// SortMatches orders by descending confidence, or by descending generation date for
// any other value. Missing scores count as 0 and missing dates as the epoch.
func SortMatches(matches []*models.Match, by MatchSort) {
	if by == SortByConfidence {
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Confidence() > matches[j].Confidence()
		})
		return
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].GeneratedAt().After(matches[j].GeneratedAt())
	})
}
