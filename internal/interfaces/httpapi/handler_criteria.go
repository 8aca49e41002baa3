package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/usecase"
)

func (h *Handler) GetCriteria(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCriteria")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, criteriaToDTO(h.engine.Snapshot(ctx)))
}

func (h *Handler) UpdateFilter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFilter")
	defer span.End()

	var req filterPatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snap := h.engine.UpdateFilter(ctx, req.toPatch())
	writeSuccess(ctx, w, http.StatusOK, criteriaToDTO(snap))
}

func (h *Handler) UpdateSort(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSort")
	defer span.End()

	var req sortRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	field, ok := player.ParseField(req.Field)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown sort field %q", usecase.ErrInvalidInput, req.Field))
		return
	}

	snap, err := h.engine.UpdateSort(ctx, player.SortCriteria{
		Field:     field,
		Direction: player.Direction(req.Direction),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, criteriaToDTO(snap))
}

func (h *Handler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleSort")
	defer span.End()

	var req toggleSortRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	field, ok := player.ParseField(req.Field)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown sort field %q", usecase.ErrInvalidInput, req.Field))
		return
	}

	snap, err := h.engine.ToggleSort(ctx, field)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, criteriaToDTO(snap))
}

func (h *Handler) ResetCriteria(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetCriteria")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, criteriaToDTO(h.engine.ResetCriteria(ctx)))
}
