package httpapi

import (
	"net/http"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDatasetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatasetStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, datasetStatusToDTO(h.dataset.Status(ctx)))
}

// ReloadDataset is the user-triggered retry. The previous record set stays
// in place when the load fails.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadDataset")
	defer span.End()

	if _, err := h.dataset.Load(ctx); err != nil {
		h.logger.WarnContext(ctx, "reload dataset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, datasetStatusToDTO(h.dataset.Status(ctx)))
}
