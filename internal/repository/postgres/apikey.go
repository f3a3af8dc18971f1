package postgres

import (
	"context"

	"athlete-service/internal/domain/apikey"
	apperrors "athlete-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type APIKeyRepository struct {
	db *DB
}

func NewAPIKeyRepository(db *DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) Create(ctx context.Context, input apikey.CreateAPIKeyInput) (*apikey.APIKey, error) {
	query := `
		INSERT INTO api_keys (key, user_id, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, key, user_id, is_active
	`

	k := &apikey.APIKey{}
	err := r.db.Pool.QueryRow(ctx, query, input.Key, input.UserID, input.Active).Scan(
		&k.ID, &k.Key, &k.UserID, &k.Active,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict("API key already exists")
		}
		return nil, errFailedCreateAPIKey(err)
	}

	return k, nil
}

// GetActiveByKey looks a key up by its value and only matches active
// records, so a deactivated key is indistinguishable from an unknown one.
func (r *APIKeyRepository) GetActiveByKey(ctx context.Context, key string) (*apikey.APIKey, error) {
	query := `
		SELECT id, key, user_id, is_active
		FROM api_keys
		WHERE key = $1 AND is_active = TRUE
	`

	k := &apikey.APIKey{}
	err := r.db.Pool.QueryRow(ctx, query, key).Scan(
		&k.ID, &k.Key, &k.UserID, &k.Active,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAPIKeyNotFound)
		}
		return nil, errFailedGetAPIKey(err)
	}

	return k, nil
}

func (r *APIKeyRepository) Deactivate(ctx context.Context, id int64) error {
	query := "UPDATE api_keys SET is_active = FALSE WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedRevokeAPIKey(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errAPIKeyNotFound)
	}

	return nil
}
