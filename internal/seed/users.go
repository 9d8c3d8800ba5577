// Package seed creates the default user accounts on first startup so a
// fresh data directory is immediately usable.
package seed

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/application"
	"github.com/officebook/service-booking/internal/domain"
	userDomain "github.com/officebook/service-booking/internal/domain/user"
)

type defaultUser struct {
	user     userDomain.User
	password string
}

var defaultUsers = []defaultUser{
	{
		user:     userDomain.User{Username: "admin", Name: "Administrator", Role: "admin", Email: "admin@officebook.local"},
		password: "admin123",
	},
	{
		user:     userDomain.User{Username: "employee1", Name: "Ivan Petrov", Role: "employee", Email: "employee1@officebook.local"},
		password: "employee123",
	},
	{
		user:     userDomain.User{Username: "employee2", Name: "Anna Sidorova", Role: "employee", Email: "employee2@officebook.local"},
		password: "employee123",
	},
}

// EnsureDefaultUsers creates the default accounts that do not exist yet.
// Existing accounts are left untouched, so running it on every startup is
// safe.
func EnsureDefaultUsers(ctx context.Context, authService *application.AuthService, log *zap.Logger) error {
	for _, du := range defaultUsers {
		err := authService.CreateUser(ctx, du.user, du.password)
		if err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				continue
			}
			return err
		}
		log.Info("seeded default user", zap.String("username", du.user.Username))
	}
	return nil
}
