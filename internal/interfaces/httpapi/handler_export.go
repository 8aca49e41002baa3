package httpapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/valyala/bytebufferpool"
)

const exportFileName = "ucl-players.csv"

// ExportPlayersCSV writes the derived view in view order, using the source
// labels as header so the file can be loaded back as a dataset.
func (h *Handler) ExportPlayersCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayersCSV")
	defer span.End()

	snap := h.engine.Snapshot(ctx)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := writePlayersCSV(buf, snap.View); err != nil {
		h.logger.ErrorContext(ctx, "export players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}

func writePlayersCSV(buf *bytebufferpool.ByteBuffer, items []player.Player) error {
	fields := player.AllFields()
	writer := csv.NewWriter(buf)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Label()
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(fields))
	for _, item := range items {
		for i, f := range fields {
			row[i] = exportValue(item, f)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportValue(p player.Player, f player.Field) string {
	if f.Kind() == player.KindNumber {
		return strconv.FormatFloat(p.Number(f), 'f', -1, 64)
	}
	return p.Text(f)
}
