package notification

import (
	"context"
	"testing"
	"time"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepository struct {
	nextID        uint
	notifications map[uint]*entities.Notification
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{nextID: 1, notifications: map[uint]*entities.Notification{}}
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, n *entities.Notification) error {
	n.ID = f.nextID
	f.nextID++
	copied := *n
	f.notifications[n.ID] = &copied
	return nil
}

func (f *fakeNotificationRepository) GetUserNotification(_ context.Context, id, userID uint) (*entities.Notification, error) {
	n, ok := f.notifications[id]
	if !ok || n.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNotificationRepository) ListUserNotifications(_ context.Context, userID uint, q domain.NotificationListQuery) ([]*entities.Notification, error) {
	var out []*entities.Notification
	for _, n := range f.notifications {
		if n.UserID != userID {
			continue
		}
		if q.IsRead != nil && n.IsRead != *q.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *fakeNotificationRepository) MarkAsRead(_ context.Context, id, userID uint) error {
	if n, ok := f.notifications[id]; ok && n.UserID == userID {
		n.IsRead = true
		n.UpdatedAt = time.Now()
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	svc := NewNotificationService(repo)

	created, err := svc.CreateNotification(ctx, domain.CreateNotificationRequest{
		UserID:  "4",
		Title:   strPtr("New donation nearby"),
		Message: strPtr("Fresh produce listed half a mile away"),
		Type:    strPtr("new_donation"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), created.UserID)
	assert.False(t, created.IsRead)

	_, err = svc.CreateNotification(ctx, domain.CreateNotificationRequest{
		UserID:  "four",
		Title:   strPtr("t"),
		Message: strPtr("m"),
		Type:    strPtr("alert"),
	})
	var reqErr *domain.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "INVALID_USER_ID", reqErr.Code)
}

func TestMarkAsRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	svc := NewNotificationService(repo)

	created, err := svc.CreateNotification(ctx, domain.CreateNotificationRequest{
		UserID:  2,
		Title:   strPtr("Claim accepted"),
		Message: strPtr("Your claim was accepted"),
		Type:    strPtr("claim_accepted"),
	})
	require.NoError(t, err)

	t.Run("marks owned notification", func(t *testing.T) {
		updated, err := svc.MarkAsRead(ctx, created.ID, 2)
		require.NoError(t, err)
		assert.True(t, updated.IsRead)
	})

	t.Run("idempotent", func(t *testing.T) {
		updated, err := svc.MarkAsRead(ctx, created.ID, 2)
		require.NoError(t, err)
		assert.True(t, updated.IsRead)
	})

	t.Run("another user's notification reads as missing", func(t *testing.T) {
		_, err := svc.MarkAsRead(ctx, created.ID, 9)
		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.MarkAsRead(ctx, 404, 2)
		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})
}

func TestListUserNotificationsFilters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	svc := NewNotificationService(repo)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateNotification(ctx, domain.CreateNotificationRequest{
			UserID:  1,
			Title:   strPtr("t"),
			Message: strPtr("m"),
			Type:    strPtr("alert"),
		})
		require.NoError(t, err)
	}
	_, err := svc.MarkAsRead(ctx, 1, 1)
	require.NoError(t, err)

	unread := false
	list, err := svc.ListUserNotifications(ctx, 1, domain.NotificationListQuery{IsRead: &unread})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	read := true
	list, err = svc.ListUserNotifications(ctx, 1, domain.NotificationListQuery{IsRead: &read})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
