package stats

import (
	"context"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
)

type (
	StatsService interface {
		GetDonorStats(ctx context.Context, userID uint) (*entities.DonorStats, error)
		GetRecipientStats(ctx context.Context, userID uint) (*entities.RecipientStats, error)
		GetLogisticsStats(ctx context.Context, userID uint) (*entities.LogisticsStats, error)
		GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error)
	}

	statsService struct {
		statsRepository StatsRepository
	}
)

func NewStatsService(statsRepository StatsRepository) StatsService {
	return &statsService{statsRepository: statsRepository}
}

func (s *statsService) GetDonorStats(ctx context.Context, userID uint) (*entities.DonorStats, error) {
	return s.statsRepository.GetDonorStats(ctx, userID)
}

func (s *statsService) GetRecipientStats(ctx context.Context, userID uint) (*entities.RecipientStats, error) {
	return s.statsRepository.GetRecipientStats(ctx, userID)
}

func (s *statsService) GetLogisticsStats(ctx context.Context, userID uint) (*entities.LogisticsStats, error) {
	return s.statsRepository.GetLogisticsStats(ctx, userID)
}

func (s *statsService) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	return s.statsRepository.GetGlobalStats(ctx)
}
