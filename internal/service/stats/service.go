package stats_service

import (
	"context"
	"time"

	"gym-ledger/internal/models"
	"gym-ledger/internal/repository"
	"gym-ledger/internal/service"
)

type statsService struct {
	store repository.Store
}

func NewStatsService(store repository.Store) service.StatsService {
	return &statsService{store: store}
}

func (s *statsService) GetStatistics(ctx context.Context, today time.Time) (*models.Statistics, error) {
	return s.store.Repositories().Stats.GetStatistics(ctx, models.DateOnly(today))
}

// ListMembers - у посетителя может быть несколько активных абонементов на будущее,
// в обзор попадает строка с самым поздним окончанием
func (s *statsService) ListMembers(ctx context.Context) ([]models.MemberOverview, error) {
	rows, err := s.store.Repositories().Stats.GetMemberOverview(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]models.MemberOverview, 0, len(rows))
	seen := make(map[int64]bool, len(rows))
	for _, row := range rows {
		if seen[row.ID] {
			continue
		}
		seen[row.ID] = true
		members = append(members, row)
	}
	return members, nil
}

func (s *statsService) ListTransactions(ctx context.Context) ([]models.TransactionView, error) {
	return s.store.Repositories().Transactions.GetAll(ctx)
}
