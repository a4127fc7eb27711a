package notification

import (
	"context"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/internal/utils"
)

type (
	NotificationService interface {
		CreateNotification(ctx context.Context, req domain.CreateNotificationRequest) (*entities.Notification, error)
		ListUserNotifications(ctx context.Context, userID uint, q domain.NotificationListQuery) ([]*entities.Notification, error)
		MarkAsRead(ctx context.Context, id, userID uint) (*entities.Notification, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) CreateNotification(ctx context.Context, req domain.CreateNotificationRequest) (*entities.Notification, error) {
	userID, ok := utils.ToInt(req.UserID)
	if !ok {
		return nil, domain.InvalidIntField("userId")
	}

	notification := &entities.Notification{
		UserID:  uint(userID),
		Title:   *req.Title,
		Message: *req.Message,
		Type:    *req.Type,
		IsRead:  false,
	}
	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) ListUserNotifications(ctx context.Context, userID uint, q domain.NotificationListQuery) ([]*entities.Notification, error) {
	return s.notificationRepository.ListUserNotifications(ctx, userID, q)
}

// MarkAsRead only touches notifications owned by userID; a notification
// that exists under another user is reported as not found. Re-marking an
// already read notification succeeds.
func (s *notificationService) MarkAsRead(ctx context.Context, id, userID uint) (*entities.Notification, error) {
	if _, err := s.notificationRepository.GetUserNotification(ctx, id, userID); err != nil {
		return nil, err
	}
	if err := s.notificationRepository.MarkAsRead(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.notificationRepository.GetUserNotification(ctx, id, userID)
}
