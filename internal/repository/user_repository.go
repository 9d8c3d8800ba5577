package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/domain"
	userDomain "github.com/officebook/service-booking/internal/domain/user"
	"github.com/officebook/service-booking/internal/storage"
)

const usersRoot = "users"

// StoreUserRepository persists user accounts as one document per username
// at users/{username}.json. The username is the natural key, so user
// lookups need no scan.
type StoreUserRepository struct {
	store storage.DocumentStore
	log   *zap.Logger
}

// NewStoreUserRepository creates a user repository over the given document
// store.
func NewStoreUserRepository(store storage.DocumentStore, log *zap.Logger) *StoreUserRepository {
	return &StoreUserRepository{store: store, log: log}
}

func userPath(username string) string {
	return fmt.Sprintf("%s/%s.json", usersRoot, username)
}

// FindByUsername retrieves a user document.
func (r *StoreUserRepository) FindByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	p := userPath(username)
	data, err := r.store.Get(ctx, p)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user", username)
		}
		return nil, err
	}
	var u userDomain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, domain.NewSerializationError(p, err)
	}
	return &u, nil
}

// Save writes the user document, overwriting any previous version.
func (r *StoreUserRepository) Save(ctx context.Context, u *userDomain.User) error {
	p := userPath(u.Username)
	data, err := json.Marshal(u)
	if err != nil {
		return domain.NewSerializationError(p, err)
	}
	return r.store.Put(ctx, p, data)
}

// ListAll retrieves every user document, skipping corrupt entries.
func (r *StoreUserRepository) ListAll(ctx context.Context) ([]userDomain.User, error) {
	paths, err := r.store.ListFiles(ctx, usersRoot)
	if err != nil {
		return nil, err
	}

	users := make([]userDomain.User, 0, len(paths))
	for _, p := range paths {
		if !strings.HasSuffix(p, ".json") {
			continue
		}
		data, err := r.store.Get(ctx, p)
		if err != nil {
			r.log.Warn("skipping unreadable user document", zap.String("path", p), zap.Error(err))
			continue
		}
		var u userDomain.User
		if err := json.Unmarshal(data, &u); err != nil {
			r.log.Warn("skipping corrupt user document", zap.String("path", p), zap.Error(err))
			continue
		}
		users = append(users, u)
	}
	return users, nil
}
