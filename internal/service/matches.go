package service

import (
	"context"
	"time"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/logger"
	"ticketfoot/internal/models"
	"ticketfoot/internal/repository"
	"ticketfoot/internal/search"
)

type MatchService struct {
	matchRepo *repository.MatchRepository
	esClient  *search.ElasticsearchClient
}

func NewMatchService(matchRepo *repository.MatchRepository, esClient *search.ElasticsearchClient) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		esClient:  esClient,
	}
}

// MonthWindow returns the listing window for now: from today (inclusive) to
// the first day of the next month (exclusive). The catalog only ever shows
// future matches of the current month.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return from, to
}

// List returns the current month's future matches, soonest first. A non-empty
// query routes through Elasticsearch when it is configured and silently falls
// back to the SQL listing when it is not.
func (s *MatchService) List(ctx context.Context, query string) ([]models.MatchItem, error) {
	from, to := MonthWindow(time.Now().UTC())

	if query != "" && s.esClient != nil {
		items, err := s.esClient.Search(ctx, query,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
		if err == nil {
			return items, nil
		}
		logger.WithContext(ctx).Warn("Search failed, falling back to SQL listing", "error", err)
	}

	matches, err := s.matchRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, apperrors.Internal("failed to list matches", err)
	}

	items := make([]models.MatchItem, 0, len(matches))
	for _, m := range matches {
		items = append(items, models.MatchItemFrom(m))
	}

	return items, nil
}
