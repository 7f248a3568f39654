package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/mufasadev/account-ledger/internal/errors"
	http2 "github.com/mufasadev/account-ledger/internal/infrastructure/api/http"
	"github.com/mufasadev/account-ledger/internal/usecases/interactor"
	"github.com/mufasadev/account-ledger/pkg/log"
)

const authTimeout = 5 * time.Second

// CredentialMiddleware authenticates the caller's credential and stores the
// resolved account id in the request context. Absent or unknown credentials
// get 401 before the handler reads the body.
func CredentialMiddleware(auth interactor.Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.GetLogger()

			ctx, cancel := context.WithTimeout(r.Context(), authTimeout)
			defer cancel()

			id, err := auth.Authenticate(ctx, http2.CredentialFromRequest(r))
			if err != nil {
				logger.Debug().Err(err).Str("path", r.URL.Path).Msg(errors.ErrInvalidCredential)
				errors.HandleHTTPError(w, errors.NewUnauthenticatedError())
				return
			}

			next.ServeHTTP(w, r.WithContext(http2.WithAccountID(r.Context(), id)))
		})
	}
}
