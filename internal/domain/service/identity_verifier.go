package service

import "context"

// IdentityVerifier resolves a provider-issued ID token to a stable user id.
// The sign-in flows themselves (phone one-time-code, federated OAuth) belong
// to the external identity provider and are out of scope here.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (userID string, err error)
}
