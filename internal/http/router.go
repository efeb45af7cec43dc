package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stocktrail-app/stocktrail/internal/http/export"
	"github.com/stocktrail-app/stocktrail/internal/http/httpx"
	"github.com/stocktrail-app/stocktrail/internal/http/importcsv"
	"github.com/stocktrail-app/stocktrail/internal/http/inventory"
	"github.com/stocktrail-app/stocktrail/internal/http/transfer"
)

func New(
	transfersV1 *transfer.Handler,
	inventoryV1 *inventory.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(httpx.Authenticator(jwtSecret))

		r.Route("/transfers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transfersV1.Routes(r)
		})

		r.Route("/inventory", inventoryV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
