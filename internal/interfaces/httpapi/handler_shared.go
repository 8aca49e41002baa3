package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/platform/cache"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
	"github.com/riskibarqy/ucl-stats/internal/usecase"
)

type Handler struct {
	engine    *usecase.QueryEngine
	dataset   *usecase.DatasetService
	charts    *cache.Store[[]byte]
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(
	engine *usecase.QueryEngine,
	dataset *usecase.DatasetService,
	charts *cache.Store[[]byte],
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if charts == nil {
		charts = cache.NewStore[[]byte](0)
	}

	return &Handler{
		engine:    engine,
		dataset:   dataset,
		charts:    charts,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type filterPatchRequest struct {
	Search     *string  `json:"search" validate:"omitempty,max=200"`
	Position   *string  `json:"position" validate:"omitempty,max=50"`
	Team       *string  `json:"team" validate:"omitempty,max=100"`
	Nation     *string  `json:"nation" validate:"omitempty,max=50"`
	MinGoals   *float64 `json:"minGoals" validate:"omitempty,gte=0"`
	MinAssists *float64 `json:"minAssists" validate:"omitempty,gte=0"`
	MinMinutes *float64 `json:"minMinutes" validate:"omitempty,gte=0"`
}

func (r filterPatchRequest) toPatch() player.FilterPatch {
	return player.FilterPatch{
		Search:     r.Search,
		Position:   r.Position,
		Team:       r.Team,
		Nation:     r.Nation,
		MinGoals:   r.MinGoals,
		MinAssists: r.MinAssists,
		MinMinutes: r.MinMinutes,
	}
}

type sortRequest struct {
	Field     string `json:"field" validate:"required"`
	Direction string `json:"direction" validate:"required,oneof=asc desc"`
}

type toggleSortRequest struct {
	Field string `json:"field" validate:"required"`
}

type datasetStatusDTO struct {
	Source   string `json:"source"`
	Loading  bool   `json:"loading"`
	Error    string `json:"error,omitempty"`
	LoadedAt string `json:"loadedAt,omitempty"`
	Records  int    `json:"records"`
	Version  uint64 `json:"version"`
}

type playerDTO struct {
	Name                        string  `json:"name"`
	Nation                      string  `json:"nation"`
	Position                    string  `json:"position"`
	Team                        string  `json:"team"`
	Age                         string  `json:"age"`
	Born                        float64 `json:"born"`
	MatchesPlayed               float64 `json:"matchesPlayed"`
	Starts                      float64 `json:"starts"`
	Minutes                     float64 `json:"minutes"`
	Nineties                    float64 `json:"nineties"`
	Goals                       float64 `json:"goals"`
	Assists                     float64 `json:"assists"`
	GoalsAssists                float64 `json:"goalsAssists"`
	NonPenaltyGoals             float64 `json:"nonPenaltyGoals"`
	PenaltyGoals                float64 `json:"penaltyGoals"`
	PenaltyAttempts             float64 `json:"penaltyAttempts"`
	YellowCards                 float64 `json:"yellowCards"`
	RedCards                    float64 `json:"redCards"`
	XG                          float64 `json:"xg"`
	NPXG                        float64 `json:"npxg"`
	XAG                         float64 `json:"xag"`
	NPXGPlusXAG                 float64 `json:"npxgPlusXag"`
	ProgressiveCarries          float64 `json:"progressiveCarries"`
	ProgressivePasses           float64 `json:"progressivePasses"`
	ProgressiveReceptions       float64 `json:"progressiveReceptions"`
	GoalsPer90                  float64 `json:"goalsPer90"`
	AssistsPer90                float64 `json:"assistsPer90"`
	GoalsAssistsPer90           float64 `json:"goalsAssistsPer90"`
	NonPenaltyGoalsPer90        float64 `json:"nonPenaltyGoalsPer90"`
	NonPenaltyGoalsAssistsPer90 float64 `json:"nonPenaltyGoalsAssistsPer90"`
	XGPer90                     float64 `json:"xgPer90"`
	XAGPer90                    float64 `json:"xagPer90"`
	XGPlusXAGPer90              float64 `json:"xgPlusXagPer90"`
	NPXGPer90                   float64 `json:"npxgPer90"`
	NPXGPlusXAGPer90            float64 `json:"npxgPlusXagPer90"`
	Shots                       string  `json:"shots,omitempty"`
	ShotsOnTarget               string  `json:"shotsOnTarget,omitempty"`
	PassesCompleted             string  `json:"passesCompleted,omitempty"`
	PassesAttempted             string  `json:"passesAttempted,omitempty"`
	Tackles                     string  `json:"tackles,omitempty"`
	Interceptions               string  `json:"interceptions,omitempty"`
	Blocks                      string  `json:"blocks,omitempty"`
	Fouls                       string  `json:"fouls,omitempty"`
}

type playerListDTO struct {
	Version uint64      `json:"version"`
	Total   int         `json:"total"`
	Count   int         `json:"count"`
	Items   []playerDTO `json:"items"`
}

type statsDTO struct {
	ReferenceYear int         `json:"referenceYear"`
	TotalPlayers  int         `json:"totalPlayers"`
	TotalGoals    float64     `json:"totalGoals"`
	TotalAssists  float64     `json:"totalAssists"`
	AverageAge    float64     `json:"averageAge"`
	TopScorers    []playerDTO `json:"topScorers"`
	TopAssisters  []playerDTO `json:"topAssisters"`
	Teams         []string    `json:"teams"`
	Positions     []string    `json:"positions"`
	Nations       []string    `json:"nations"`
}

type filterDTO struct {
	Search     string  `json:"search"`
	Position   string  `json:"position"`
	Team       string  `json:"team"`
	Nation     string  `json:"nation"`
	MinGoals   float64 `json:"minGoals"`
	MinAssists float64 `json:"minAssists"`
	MinMinutes float64 `json:"minMinutes"`
}

type sortDTO struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type criteriaDTO struct {
	Version uint64    `json:"version"`
	Visible int       `json:"visible"`
	Total   int       `json:"total"`
	Filter  filterDTO `json:"filter"`
	Sort    sortDTO   `json:"sort"`
}

func datasetStatusToDTO(status usecase.LoadStatus) datasetStatusDTO {
	out := datasetStatusDTO{
		Source:  status.Source,
		Loading: status.Loading,
		Error:   status.Error,
		Records: status.Records,
		Version: status.Version,
	}
	if !status.LoadedAt.IsZero() {
		out.LoadedAt = status.LoadedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		Name:                        p.Name,
		Nation:                      p.Nation,
		Position:                    p.Position,
		Team:                        p.Team,
		Age:                         p.Age,
		Born:                        p.Born,
		MatchesPlayed:               p.MatchesPlayed,
		Starts:                      p.Starts,
		Minutes:                     p.Minutes,
		Nineties:                    p.Nineties,
		Goals:                       p.Goals,
		Assists:                     p.Assists,
		GoalsAssists:                p.GoalsAssists,
		NonPenaltyGoals:             p.NonPenaltyGoals,
		PenaltyGoals:                p.PenaltyGoals,
		PenaltyAttempts:             p.PenaltyAttempts,
		YellowCards:                 p.YellowCards,
		RedCards:                    p.RedCards,
		XG:                          p.XG,
		NPXG:                        p.NPXG,
		XAG:                         p.XAG,
		NPXGPlusXAG:                 p.NPXGPlusXAG,
		ProgressiveCarries:          p.ProgressiveCarries,
		ProgressivePasses:           p.ProgressivePasses,
		ProgressiveReceptions:       p.ProgressiveReceptions,
		GoalsPer90:                  p.GoalsPer90,
		AssistsPer90:                p.AssistsPer90,
		GoalsAssistsPer90:           p.GoalsAssistsPer90,
		NonPenaltyGoalsPer90:        p.NonPenaltyGoalsPer90,
		NonPenaltyGoalsAssistsPer90: p.NonPenaltyGoalsAssistsPer90,
		XGPer90:                     p.XGPer90,
		XAGPer90:                    p.XAGPer90,
		XGPlusXAGPer90:              p.XGPlusXAGPer90,
		NPXGPer90:                   p.NPXGPer90,
		NPXGPlusXAGPer90:            p.NPXGPlusXAGPer90,
		Shots:                       p.Shots,
		ShotsOnTarget:               p.ShotsOnTarget,
		PassesCompleted:             p.PassesCompleted,
		PassesAttempted:             p.PassesAttempted,
		Tackles:                     p.Tackles,
		Interceptions:               p.Interceptions,
		Blocks:                      p.Blocks,
		Fouls:                       p.Fouls,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func statsToDTO(stats *player.Stats) statsDTO {
	return statsDTO{
		ReferenceYear: stats.ReferenceYear,
		TotalPlayers:  stats.TotalPlayers,
		TotalGoals:    stats.TotalGoals,
		TotalAssists:  stats.TotalAssists,
		AverageAge:    stats.AverageAge,
		TopScorers:    playersToDTO(stats.TopScorers),
		TopAssisters:  playersToDTO(stats.TopAssisters),
		Teams:         nonNilStrings(stats.Teams),
		Positions:     nonNilStrings(stats.Positions),
		Nations:       nonNilStrings(stats.Nations),
	}
}

func criteriaToDTO(snap usecase.Snapshot) criteriaDTO {
	return criteriaDTO{
		Version: snap.Version,
		Visible: len(snap.View),
		Total:   snap.TotalRecords,
		Filter: filterDTO{
			Search:     snap.Filter.Search,
			Position:   snap.Filter.Position,
			Team:       snap.Filter.Team,
			Nation:     snap.Filter.Nation,
			MinGoals:   snap.Filter.MinGoals,
			MinAssists: snap.Filter.MinAssists,
			MinMinutes: snap.Filter.MinMinutes,
		},
		Sort: sortDTO{
			Field:     snap.Sort.Field.Label(),
			Direction: string(snap.Sort.Direction),
		},
	}
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
