package interactor

import (
	"context"
	"strings"

	"github.com/mufasadev/account-ledger/internal/domain/repositories"
	apperrors "github.com/mufasadev/account-ledger/internal/errors"
	"github.com/mufasadev/account-ledger/pkg/log"
	"github.com/rs/zerolog"
)

// Authenticator resolves a raw credential to an account id.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (string, error)
}

type AuthInteractor struct {
	credentials repositories.CredentialRepository
	logger      *zerolog.Logger
}

func NewAuthInteractor(credentials repositories.CredentialRepository) *AuthInteractor {
	l := log.GetLogger()
	return &AuthInteractor{credentials: credentials, logger: &l}
}

// Authenticate fails with UnauthenticatedError when the credential is empty or unknown.
func (a *AuthInteractor) Authenticate(ctx context.Context, credential string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		a.logger.Debug().Msg(apperrors.ErrCredentialRequired)
		return "", apperrors.NewUnauthenticatedError()
	}

	id, err := a.credentials.Resolve(ctx, credential)
	if err != nil {
		a.logger.Debug().Err(err).Msg("credential rejected")
		return "", apperrors.NewUnauthenticatedError()
	}

	return id, nil
}
