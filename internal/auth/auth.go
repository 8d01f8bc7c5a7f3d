package auth

import "context"

// Principal is the decoded identity attached to an authenticated request.
type Principal struct {
	UID   string
	Email string
}

// TokenVerifier validates a bearer credential against the identity provider
// and returns the principal it was issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}
