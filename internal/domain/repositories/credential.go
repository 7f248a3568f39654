package repositories

import "context"

type CredentialRepository interface {
	// Resolve returns the account id bound to credential.
	Resolve(ctx context.Context, credential string) (string, error)
}
