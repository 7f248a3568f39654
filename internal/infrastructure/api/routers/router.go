package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mufasadev/account-ledger/internal/di"
	"github.com/mufasadev/account-ledger/internal/infrastructure/api/handlers"
	"github.com/mufasadev/account-ledger/internal/infrastructure/api/middlewares"
)

const maxBodyBytes = 1 << 12

func NewRouter(container *di.Container) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Heartbeat("/ping"))

	router.Get("/", handlers.Welcome)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.CredentialMiddleware(container.AuthInteractor))
		r.Use(middlewares.MaxBodySize(maxBodyBytes))

		r.Get("/balance", container.BalanceHandler.GetBalance)
		r.Post("/deposit", container.TransactionHandler.Deposit)
		r.Post("/withdraw", container.TransactionHandler.Withdraw)
	})

	return router
}
