package auth

import (
	"context"

	"trainpilot/backend/internal/model"
)

// Verifier resolves a bearer token into a user identity. Implementations
// must return an error wrapping app_errors.ErrAuth for any rejected or
// unverifiable token so the API layer can answer with a uniform 401.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*model.User, error)
}
