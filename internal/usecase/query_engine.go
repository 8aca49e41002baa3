package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
)

// Snapshot is a consistent, read-only view of the engine state. Slices are
// shared with the engine and must not be modified.
type Snapshot struct {
	Version       uint64
	TotalRecords  int
	Filter        player.FilterCriteria
	Sort          player.SortCriteria
	View          []player.Player
	Stats         *player.Stats
	ReferenceYear int
}

// QueryEngine owns the record set, the criteria and everything derived from
// them. Every command replaces state and recomputes under one lock, so a
// snapshot never mixes aggregates and a view from different record sets.
type QueryEngine struct {
	mu            sync.RWMutex
	referenceYear int
	records       []player.Player
	filter        player.FilterCriteria
	sort          player.SortCriteria
	view          []player.Player
	stats         *player.Stats
	version       uint64
	logger        *logging.Logger
}

func NewQueryEngine(referenceYear int, logger *logging.Logger) *QueryEngine {
	if referenceYear <= 0 {
		referenceYear = player.DefaultReferenceYear
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &QueryEngine{
		referenceYear: referenceYear,
		records:       []player.Player{},
		filter:        player.DefaultFilter(),
		sort:          player.DefaultSort(),
		view:          []player.Player{},
		logger:        logger,
	}
}

// ReplaceRecords swaps the whole record set, then recomputes aggregates and
// the derived view with the current criteria.
func (e *QueryEngine) ReplaceRecords(ctx context.Context, records []player.Player) Snapshot {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.ReplaceRecords")
	defer span.End()

	owned := slices.Clone(records)
	if owned == nil {
		owned = []player.Player{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.records = owned
	e.stats = player.ComputeStats(e.records, e.referenceYear)
	e.version++
	e.recomputeViewLocked()

	e.logger.InfoContext(ctx, "record set replaced",
		"records", len(e.records),
		"visible", len(e.view),
		"version", e.version,
	)
	return e.snapshotLocked()
}

// UpdateFilter merges the patch into the current filter. Aggregates are
// left untouched.
func (e *QueryEngine) UpdateFilter(ctx context.Context, patch player.FilterPatch) Snapshot {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.UpdateFilter")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.filter = e.filter.Merge(patch)
	e.recomputeViewLocked()

	e.logger.DebugContext(ctx, "filter updated", "filter", e.filter, "visible", len(e.view))
	return e.snapshotLocked()
}

// UpdateSort replaces the sort criteria wholesale.
func (e *QueryEngine) UpdateSort(ctx context.Context, criteria player.SortCriteria) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.UpdateSort")
	defer span.End()

	if err := criteria.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sort = criteria
	e.recomputeViewLocked()

	e.logger.DebugContext(ctx, "sort updated", "field", criteria.Field.String(), "direction", string(criteria.Direction))
	return e.snapshotLocked(), nil
}

// ToggleSort applies a header-click style change on field.
func (e *QueryEngine) ToggleSort(ctx context.Context, field player.Field) (Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.ToggleSort")
	defer span.End()

	if !field.Valid() {
		return Snapshot{}, fmt.Errorf("%w: invalid sort field", ErrInvalidInput)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sort = e.sort.Toggle(field)
	e.recomputeViewLocked()

	e.logger.DebugContext(ctx, "sort toggled", "field", e.sort.Field.String(), "direction", string(e.sort.Direction))
	return e.snapshotLocked(), nil
}

// ResetCriteria restores the default filter and sort.
func (e *QueryEngine) ResetCriteria(ctx context.Context) Snapshot {
	ctx, span := startUsecaseSpan(ctx, "usecase.QueryEngine.ResetCriteria")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.filter = player.DefaultFilter()
	e.sort = player.DefaultSort()
	e.recomputeViewLocked()

	e.logger.DebugContext(ctx, "criteria reset", "visible", len(e.view))
	return e.snapshotLocked()
}

func (e *QueryEngine) Snapshot(ctx context.Context) Snapshot {
	_, span := startUsecaseSpan(ctx, "usecase.QueryEngine.Snapshot")
	defer span.End()

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.snapshotLocked()
}

func (e *QueryEngine) recomputeViewLocked() {
	e.view = player.Apply(e.records, e.filter, e.sort, e.referenceYear)
}

func (e *QueryEngine) snapshotLocked() Snapshot {
	return Snapshot{
		Version:       e.version,
		TotalRecords:  len(e.records),
		Filter:        e.filter,
		Sort:          e.sort,
		View:          e.view,
		Stats:         e.stats,
		ReferenceYear: e.referenceYear,
	}
}
