// Package auth resolves provider-issued ID tokens to stable user ids.
package auth

import (
	"context"
	"fmt"

	"parkpulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// verifier implements service.IdentityVerifier on Firebase Auth. The
// sign-in flows (phone one-time-code, federated OAuth) run entirely on the
// provider; this side only verifies the resulting token.
type verifier struct {
	client *fbauth.Client
}

// NewVerifier derives the identity verifier from the Firebase app.
func NewVerifier(ctx context.Context, app *firebase.App) (service.IdentityVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &verifier{client: client}, nil
}

// VerifyToken validates the ID token and returns the subject user id.
func (v *verifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify ID token: %w", err)
	}

	return token.UID, nil
}
