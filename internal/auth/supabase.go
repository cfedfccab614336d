package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	app_errors "trainpilot/backend/internal/errors"
	"trainpilot/backend/internal/model"
)

// supabaseVerifier checks tokens against the identity provider's user
// endpoint. The provider authenticates the service itself via the apikey
// header while the user's token travels in the Authorization header.
type supabaseVerifier struct {
	client     *http.Client
	baseURL    string
	serviceKey string
}

// NewSupabaseVerifier creates a Verifier backed by a Supabase-compatible
// identity provider.
func NewSupabaseVerifier(baseURL, serviceKey string) Verifier {
	return &supabaseVerifier{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		serviceKey: serviceKey,
	}
}

// supabaseUser mirrors the provider's user record. The display name lives
// in the free-form metadata object.
type supabaseUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (v *supabaseVerifier) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create request: %s", app_errors.ErrAuth, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("apikey", v.serviceKey)

	resp, err := v.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: identity provider unreachable: %s", app_errors.ErrAuth, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: identity provider returned status %d: %s", app_errors.ErrAuth, resp.StatusCode, string(bodyBytes))
	}

	var providerUser supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&providerUser); err != nil {
		return nil, fmt.Errorf("%w: could not decode identity response: %s", app_errors.ErrAuth, err)
	}
	if providerUser.ID == "" {
		return nil, fmt.Errorf("%w: identity response missing user id", app_errors.ErrAuth)
	}

	return &model.User{
		ID:    providerUser.ID,
		Email: providerUser.Email,
		Name:  providerUser.UserMetadata.Name,
	}, nil
}
