package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/usecase"
)

const (
	viewOverview = "overview"
	viewCharts   = "charts"
	viewTable    = "table"

	overviewTopSize = 5
)

type countsDTO struct {
	Players   int `json:"players"`
	Teams     int `json:"teams"`
	Positions int `json:"positions"`
	Nations   int `json:"nations"`
}

type overviewDTO struct {
	View         string      `json:"view"`
	TotalPlayers int         `json:"totalPlayers"`
	TotalGoals   float64     `json:"totalGoals"`
	TotalAssists float64     `json:"totalAssists"`
	AverageAge   float64     `json:"averageAge"`
	TopScorers   []playerDTO `json:"topScorers"`
	TopAssisters []playerDTO `json:"topAssisters"`
	Counts       countsDTO   `json:"counts"`
}

type chartPointDTO struct {
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	Value    float64 `json:"value"`
	Per90    float64 `json:"per90"`
	Nineties float64 `json:"nineties"`
}

type chartsViewDTO struct {
	View         string          `json:"view"`
	TopScorers   []chartPointDTO `json:"topScorers"`
	TopAssisters []chartPointDTO `json:"topAssisters"`
	Counts       countsDTO       `json:"counts"`
}

type filterOptionsDTO struct {
	Teams     []string `json:"teams"`
	Positions []string `json:"positions"`
	Nations   []string `json:"nations"`
}

type tableViewDTO struct {
	View     string           `json:"view"`
	Showing  string           `json:"showing"`
	Criteria criteriaDTO      `json:"criteria"`
	Options  filterOptionsDTO `json:"options"`
	Items    []playerDTO      `json:"items"`
}

// GetView serves the three dashboard views from one consistent snapshot.
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetView")
	defer span.End()

	view := r.PathValue("view")
	snap := h.engine.Snapshot(ctx)

	switch view {
	case viewOverview:
		if snap.Stats == nil {
			writeError(ctx, w, fmt.Errorf("%w: no records loaded", usecase.ErrNotFound))
			return
		}
		writeSuccess(ctx, w, http.StatusOK, overviewToDTO(snap.Stats))
	case viewCharts:
		if snap.Stats == nil {
			writeError(ctx, w, fmt.Errorf("%w: no records loaded", usecase.ErrNotFound))
			return
		}
		writeSuccess(ctx, w, http.StatusOK, chartsViewToDTO(snap.Stats))
	case viewTable:
		writeSuccess(ctx, w, http.StatusOK, tableViewToDTO(snap))
	default:
		writeError(ctx, w, fmt.Errorf("%w: unknown view %q", usecase.ErrNotFound, view))
	}
}

func overviewToDTO(stats *player.Stats) overviewDTO {
	return overviewDTO{
		View:         viewOverview,
		TotalPlayers: stats.TotalPlayers,
		TotalGoals:   stats.TotalGoals,
		TotalAssists: stats.TotalAssists,
		AverageAge:   stats.AverageAge,
		TopScorers:   playersToDTO(headOf(stats.TopScorers, overviewTopSize)),
		TopAssisters: playersToDTO(headOf(stats.TopAssisters, overviewTopSize)),
		Counts:       countsOf(stats),
	}
}

func chartsViewToDTO(stats *player.Stats) chartsViewDTO {
	scorers := make([]chartPointDTO, 0, len(stats.TopScorers))
	for _, p := range stats.TopScorers {
		scorers = append(scorers, chartPointDTO{
			Name:     p.Name,
			Team:     p.Team,
			Value:    p.Goals,
			Per90:    p.GoalsPer90,
			Nineties: p.Nineties,
		})
	}
	assisters := make([]chartPointDTO, 0, len(stats.TopAssisters))
	for _, p := range stats.TopAssisters {
		assisters = append(assisters, chartPointDTO{
			Name:     p.Name,
			Team:     p.Team,
			Value:    p.Assists,
			Per90:    p.AssistsPer90,
			Nineties: p.Nineties,
		})
	}

	return chartsViewDTO{
		View:         viewCharts,
		TopScorers:   scorers,
		TopAssisters: assisters,
		Counts:       countsOf(stats),
	}
}

func tableViewToDTO(snap usecase.Snapshot) tableViewDTO {
	options := filterOptionsDTO{Teams: []string{}, Positions: []string{}, Nations: []string{}}
	if snap.Stats != nil {
		options = filterOptionsDTO{
			Teams:     nonNilStrings(snap.Stats.Teams),
			Positions: nonNilStrings(snap.Stats.Positions),
			Nations:   nonNilStrings(snap.Stats.Nations),
		}
	}

	return tableViewDTO{
		View:     viewTable,
		Showing:  fmt.Sprintf("Showing %d of %d players", len(snap.View), snap.TotalRecords),
		Criteria: criteriaToDTO(snap),
		Options:  options,
		Items:    playersToDTO(snap.View),
	}
}

func countsOf(stats *player.Stats) countsDTO {
	return countsDTO{
		Players:   stats.TotalPlayers,
		Teams:     len(stats.Teams),
		Positions: len(stats.Positions),
		Nations:   len(stats.Nations),
	}
}

func headOf(items []player.Player, n int) []player.Player {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
