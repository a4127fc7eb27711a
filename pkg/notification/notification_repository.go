package notification

import (
	"context"
	"errors"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetUserNotification(ctx context.Context, id, userID uint) (*entities.Notification, error)
		ListUserNotifications(ctx context.Context, userID uint, q domain.NotificationListQuery) ([]*entities.Notification, error)
		MarkAsRead(ctx context.Context, id, userID uint) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetUserNotification(ctx context.Context, id, userID uint) (*entities.Notification, error) {
	var notification entities.Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListUserNotifications(ctx context.Context, userID uint, q domain.NotificationListQuery) ([]*entities.Notification, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Notification{}).Where("user_id = ?", userID)
	if q.IsRead != nil {
		tx = tx.Where("is_read = ?", *q.IsRead)
	}

	var notifications []*entities.Notification
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now()}).Error
}
