package auth

import (
	"context"

	"github.com/metonline/hesap-paylas/internal/models"
)

// Authenticator is the identity provider the settlement engine treats as an
// external collaborator. Implementations may use passwords, OAuth or
// anything else that yields an opaque user identity.
type Authenticator interface {
	// Register creates a new account. The credential format depends on the
	// implementation.
	Register(ctx context.Context, email, firstName, lastName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the user if valid.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements before any account is touched.
	ValidateCredential(credential string) error
}
