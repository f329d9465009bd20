package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Verifier checks Google ID tokens against the configured OAuth client.
type Verifier struct {
	clientID string
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID}
}

// Verify validates a Google-issued ID token and maps its claims onto an
// Identity. The phone claim is rarely present and defaults to empty.
func (v *Verifier) Verify(ctx context.Context, token string) (Identity, error) {
	if v.clientID == "" {
		return Identity{}, errors.New("auth: google client id not configured")
	}

	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return Identity{}, fmt.Errorf("validating google id token: %w", err)
	}

	id := Identity{ID: payload.Subject}
	if name, ok := payload.Claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := payload.Claims["email"].(string); ok {
		id.Email = email
	}
	if phone, ok := payload.Claims["phone_number"].(string); ok {
		id.Phone = phone
	}
	return id, nil
}
