package auth

import "context"

// CredentialChecker validates an admin credential pair. The default
// implementation is a single static pair from the environment; a real
// identity provider can be substituted without touching call sites.
type CredentialChecker interface {
	Check(ctx context.Context, username, password string) error
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) error
}
