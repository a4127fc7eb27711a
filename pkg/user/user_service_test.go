package user

import (
	"context"
	"os"
	"testing"

	"SmartServe-Backend/domain"
	"SmartServe-Backend/entities"
	"SmartServe-Backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	nextID uint
	users  map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{nextID: 1, users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id uint) (*entities.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepository()
	svc := NewUserService(repo, jwt.NewJWTService())

	req := domain.RegisterUserRequest{
		Name:     "Dana Reyes",
		Email:    "  Dana@Example.org  ",
		Password: "hunter2hunter2",
		Role:     domain.RoleDonor,
	}

	t.Run("register normalizes email and hashes password", func(t *testing.T) {
		resp, err := svc.Register(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "dana@example.org", resp.User.Email)
		assert.NotEmpty(t, resp.Token)

		stored := repo.users["dana@example.org"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "hunter2hunter2", stored.Password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	})

	t.Run("login succeeds with right password", func(t *testing.T) {
		resp, err := svc.Login(ctx, domain.LoginUserRequest{
			Email:    "dana@example.org",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginUserRequest{
			Email:    "dana@example.org",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.LoginUserRequest{
			Email:    "nobody@example.org",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("me", func(t *testing.T) {
		resp, err := svc.Me(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Dana Reyes", resp.Name)

		_, err = svc.Me(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
