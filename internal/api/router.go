package api

import (
	_ "stableswap/docs"
	"stableswap/internal/ledger/handler"
	"stableswap/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

const assetPattern = `{asset:[A-Za-z0-9._:-]{1,64}}`

func NewRouter(ledgerHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(metrics.Middleware)

	router.Handle("/metrics", metrics.Handler())

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/assets", ledgerHandler.GetSupportedAssets)

		r.Post("/custody/deposits", ledgerHandler.Deposit)
		r.Post("/custody/withdrawals", ledgerHandler.Withdraw)
		r.Get("/custody/snapshots/latest", ledgerHandler.GetLatestSnapshot)
		r.Get("/custody/"+assetPattern, ledgerHandler.GetCustody)

		r.Put("/rates", ledgerHandler.SetSwapRate)
		r.Get("/rates/pairs", ledgerHandler.GetSwappablePairs)
		r.Get("/rates/{from}/{to}", ledgerHandler.GetSwapRate)

		r.Post("/swaps", ledgerHandler.Swap)
		r.Get("/operations/{id}", ledgerHandler.GetOperation)
	})
	return router
}
