package repository

import (
	"context"

	"athlete-service/internal/domain/apikey"
	"athlete-service/internal/domain/athlete"
	"athlete-service/internal/domain/user"
)

// Provider-side interfaces consumed by the auth service and the
// access-control middleware. Concrete implementations live in postgres/.

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, input user.CreateUserInput) (*user.User, error)
}

type APIKeyRepository interface {
	// GetActiveByKey returns the key record only when it exists and is
	// active; an inactive or unknown key yields ErrNotFound.
	GetActiveByKey(ctx context.Context, key string) (*apikey.APIKey, error)
	Create(ctx context.Context, input apikey.CreateAPIKeyInput) (*apikey.APIKey, error)
	Deactivate(ctx context.Context, id int64) error
}

type AthleteRepository interface {
	List(ctx context.Context, filter athlete.ListFilter) ([]*athlete.Athlete, error)
	GetByID(ctx context.Context, id int64) (*athlete.Athlete, error)
	Create(ctx context.Context, input athlete.CreateInput) (*athlete.Athlete, error)
	Update(ctx context.Context, id int64, input athlete.UpdateInput) (*athlete.Athlete, error)
	Delete(ctx context.Context, id int64) error
}
