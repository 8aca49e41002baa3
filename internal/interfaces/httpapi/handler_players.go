package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/ucl-stats/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	snap := h.engine.Snapshot(ctx)
	writeSuccess(ctx, w, http.StatusOK, playerListDTO{
		Version: snap.Version,
		Total:   snap.TotalRecords,
		Count:   len(snap.View),
		Items:   playersToDTO(snap.View),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	snap := h.engine.Snapshot(ctx)
	if snap.Stats == nil {
		writeError(ctx, w, fmt.Errorf("%w: no records loaded", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(snap.Stats))
}
