package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/app-rank-notifier/infrastructure/repository"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 366
)

type HistoryService interface {
	GetHistory(ctx context.Context, appID string, startDate, endDate time.Time) (*domain.RankHistoryResponse, error)
}

type RankHistoryService struct {
	RankObservationRepository repository.RankObservationRepository
	now                       func() time.Time
}

func NewRankHistoryService(rankObservationRepository repository.RankObservationRepository) HistoryService {
	return &RankHistoryService{
		RankObservationRepository: rankObservationRepository,
		now:                       time.Now,
	}
}

// GetHistory retorna as observações do app no período. Datas zeradas assumem os últimos 30 dias.
func (s *RankHistoryService) GetHistory(ctx context.Context, appID string, startDate, endDate time.Time) (*domain.RankHistoryResponse, error) {
	if appID == "" {
		return nil, ErrAppIDRequired
	}

	if endDate.IsZero() {
		endDate = s.now().UTC().Truncate(24 * time.Hour)
	}
	if startDate.IsZero() {
		startDate = endDate.AddDate(0, 0, -defaultHistoryDays)
	}

	if endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}
	if endDate.Sub(startDate) > maxHistoryDays*24*time.Hour {
		return nil, ErrPeriodTooLong
	}

	observations, err := s.RankObservationRepository.ListHistory(ctx, appID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchHistory, err)
	}

	return &domain.RankHistoryResponse{
		AppID:        appID,
		Observations: observations,
	}, nil
}
