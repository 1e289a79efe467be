package handlers

import (
	"github.com/go-chi/chi/v5"
)

func RegisterScanRoutes(r chi.Router) {
	r.Get("/scans", GetScansHandler)

	r.Route("/scans/{scan_id}", func(subRouter chi.Router) {
		subRouter.Get("/", GetScanHandler)
		subRouter.Get("/findings", GetScanFindingsHandler)
		subRouter.Get("/kinds", GetScanKindsHandler)
		subRouter.Delete("/", DeleteScanHandler)
	})
}
