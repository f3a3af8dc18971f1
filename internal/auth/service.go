package auth

import (
	"context"
	"errors"

	"athlete-service/internal/domain/user"
	"athlete-service/internal/repository"
	apperrors "athlete-service/pkg/errors"
	"athlete-service/pkg/password"
)

// Pre-computed bcrypt hash (cost 12) used to equalize timing on failed lookups.
// The actual plaintext is irrelevant — this just ensures constant-time response.
const dummyBcryptHash = "$2a$12$dWR5CQpS4zNHLavLSIr4o.P6QDQEUJKv7mJ7WekUHHqyRSRMJzH0S"

const (
	msgEmailTaken    = "a user with this email already exists"
	msgUsernameTaken = "a user with this username already exists"
)

// Service orchestrates registration and login on top of the user store,
// the password hasher and the token service.
type Service struct {
	users repository.UserRepository
	jwt   *JWTService
}

func NewService(users repository.UserRepository, jwt *JWTService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a new identity. The duplicate pre-checks and the
// insert are not one transaction; a store-level unique violation from a
// concurrent registration surfaces as the same duplicate error.
func (s *Service) Register(ctx context.Context, username, email, plaintext string, role user.Role) (*user.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.EmailExists(msgEmailTaken)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.UsernameExists(msgUsernameTaken)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return nil, apperrors.InternalServer("failed to process password", err)
	}

	if role == "" {
		role = user.RoleUser
	}

	created, err := s.users.Create(ctx, user.CreateUserInput{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies credentials and issues a signed token carrying the
// user's id, email and role.
func (s *Service) Login(ctx context.Context, email, plaintext string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Run bcrypt against a dummy hash to prevent timing oracle.
			// Without this, "user not found" returns in ~1ms while
			// "wrong password" takes ~200ms, leaking email existence.
			password.Verify(plaintext, dummyBcryptHash)
			return "", apperrors.InvalidCredentials()
		}
		return "", err
	}

	if !password.Verify(plaintext, u.PasswordHash) {
		return "", apperrors.InvalidCredentials()
	}

	token, err := s.jwt.Generate(u)
	if err != nil {
		return "", apperrors.InternalServer("failed to generate token", err)
	}

	return token, nil
}
