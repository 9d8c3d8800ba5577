package application

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/auth"
	"github.com/officebook/service-booking/internal/domain"
	userDomain "github.com/officebook/service-booking/internal/domain/user"
	"github.com/officebook/service-booking/internal/repository"
	"github.com/officebook/service-booking/internal/storage"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	store := storage.NewFileStore(afero.NewMemMapFs(), zap.NewNop())
	repo := repository.NewStoreUserRepository(store, zap.NewNop())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(repo, jwtManager, zap.NewNop())
}

func TestCreateUserAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	u := userDomain.User{Username: "admin", Name: "Administrator", Role: "admin", Email: "admin@officebook.local"}
	require.NoError(t, svc.CreateUser(ctx, u, "admin123"))

	result, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, "Administrator", result.Name)
	assert.Equal(t, "admin", result.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.CreateUser(ctx, userDomain.User{Username: "admin"}, "admin123"))

	_, err := svc.Login(ctx, "admin", "wrong")
	require.Error(t, err)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	require.Error(t, err)
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "invalid username or password", validation.Message)
}

func TestCreateUser_RefusesExistingUsername(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.CreateUser(ctx, userDomain.User{Username: "admin", Name: "First"}, "pw1"))

	err := svc.CreateUser(ctx, userDomain.User{Username: "admin", Name: "Second"}, "pw2")
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	// The first password still works.
	_, err = svc.Login(ctx, "admin", "pw1")
	assert.NoError(t, err)
}

func TestListUsers_BlanksPasswordHashes(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.CreateUser(ctx, userDomain.User{Username: "admin"}, "admin123"))
	require.NoError(t, svc.CreateUser(ctx, userDomain.User{Username: "employee1"}, "employee123"))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
