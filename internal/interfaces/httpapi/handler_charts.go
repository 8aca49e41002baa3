package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const chartsCachePrefix = "charts:"

type barChartConfig struct {
	Title      string
	Subtitle   string
	TotalLabel string
	Per90Label string
	Total      func(player.Player) float64
	Per90      func(player.Player) float64
}

// ChartsPage renders the top scorer and top assister bar charts. The page
// depends only on the record set, so renders are cached per snapshot version.
func (h *Handler) ChartsPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChartsPage")
	defer span.End()

	snap := h.engine.Snapshot(ctx)
	if snap.Stats == nil {
		writeError(ctx, w, fmt.Errorf("%w: no records loaded", usecase.ErrNotFound))
		return
	}

	key := fmt.Sprintf("%sv%d", chartsCachePrefix, snap.Version)
	page, err := h.charts.GetOrLoad(ctx, key, func(ctx context.Context) ([]byte, error) {
		h.charts.DeletePrefix(ctx, chartsCachePrefix)
		return renderChartsPage(snap.Stats)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "render charts page failed", "version", snap.Version, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func renderChartsPage(stats *player.Stats) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = "UCL 24/25 Charts"
	page.AddCharts(
		topPlayersBar(stats.TopScorers, barChartConfig{
			Title:      "Top Scorers",
			Subtitle:   fmt.Sprintf("%d players, %d teams", stats.TotalPlayers, len(stats.Teams)),
			TotalLabel: "Goals",
			Per90Label: "Goals per 90",
			Total:      func(p player.Player) float64 { return p.Goals },
			Per90:      func(p player.Player) float64 { return p.GoalsPer90 },
		}),
		topPlayersBar(stats.TopAssisters, barChartConfig{
			Title:      "Top Assisters",
			Subtitle:   fmt.Sprintf("%d players, %d teams", stats.TotalPlayers, len(stats.Teams)),
			TotalLabel: "Assists",
			Per90Label: "Assists per 90",
			Total:      func(p player.Player) float64 { return p.Assists },
			Per90:      func(p player.Player) float64 { return p.AssistsPer90 },
		}),
	)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := page.Render(buf); err != nil {
		return nil, fmt.Errorf("render charts page: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func topPlayersBar(items []player.Player, config barChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	labels := make([]string, len(items))
	totals := make([]opts.BarData, len(items))
	per90 := make([]opts.BarData, len(items))
	for i, item := range items {
		labels[i] = item.Name
		totals[i] = opts.BarData{Name: item.Team, Value: config.Total(item)}
		per90[i] = opts.BarData{Name: item.Team, Value: config.Per90(item)}
	}

	bar.SetXAxis(labels).
		AddSeries(config.TotalLabel, totals).
		AddSeries(config.Per90Label, per90)

	return bar
}
