package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDatasetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dataset", handler.GetDatasetStatus)
	mux.HandleFunc("POST /v1/dataset/reload", handler.ReloadDataset)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/export.csv", handler.ExportPlayersCSV)
	mux.HandleFunc("GET /v1/stats", handler.GetStats)
	mux.HandleFunc("GET /v1/criteria", handler.GetCriteria)
	mux.HandleFunc("PATCH /v1/criteria/filter", handler.UpdateFilter)
	mux.HandleFunc("PUT /v1/criteria/sort", handler.UpdateSort)
	// Header-click behaviour of the table view.
	mux.HandleFunc("POST /v1/criteria/sort/toggle", handler.ToggleSort)
	mux.HandleFunc("POST /v1/criteria/reset", handler.ResetCriteria)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/views/{view}", handler.GetView)
	mux.HandleFunc("GET /charts", handler.ChartsPage)
}
