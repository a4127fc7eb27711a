package stats

import (
	"context"
	"errors"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	StatsRepository interface {
		GetDonorStats(ctx context.Context, userID uint) (*entities.DonorStats, error)
		GetRecipientStats(ctx context.Context, userID uint) (*entities.RecipientStats, error)
		GetLogisticsStats(ctx context.Context, userID uint) (*entities.LogisticsStats, error)
		GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error)
	}

	statsRepository struct {
		db *gorm.DB
	}
)

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetDonorStats(ctx context.Context, userID uint) (*entities.DonorStats, error) {
	var stats entities.DonorStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonorStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) GetRecipientStats(ctx context.Context, userID uint) (*entities.RecipientStats, error) {
	var stats entities.RecipientStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipientStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) GetLogisticsStats(ctx context.Context, userID uint) (*entities.LogisticsStats, error) {
	var stats entities.LogisticsStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogisticsStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	db := r.db.WithContext(ctx)
	stats := &domain.GlobalStats{}

	if err := db.Model(&entities.Donation{}).Count(&stats.TotalDonations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Donation{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&stats.TotalMealsProvided).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Delivery{}).
		Where("status IN ?", []string{domain.DeliveryStatusPickupPending, domain.DeliveryStatusInTransit}).
		Count(&stats.ActiveDeliveries).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Delivery{}).
		Where("status = ?", domain.DeliveryStatusCompleted).
		Count(&stats.CompletedDeliveries).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Claim{}).Count(&stats.TotalClaims).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entities.Donation{}).
		Where("status = ?", domain.DonationStatusAvailable).
		Count(&stats.ActiveDonations).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
