package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/riskibarqy/ucl-stats/internal/domain/player"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
)

func engineFixture() []player.Player {
	return []player.Player{
		{Name: "A", Team: "X", Position: "FW", Nation: "fr FRA", Goals: 10, Assists: 2, Minutes: 900, Born: 1998},
		{Name: "B", Team: "Y", Position: "MF", Nation: "es ESP", Goals: 3, Assists: 7, Minutes: 200, Born: 2002},
		{Name: "C", Team: "X", Position: "DF", Nation: "fr FRA", Goals: 0, Assists: 1, Minutes: 1200, Born: 1994},
	}
}

func viewNames(snap Snapshot) []string {
	out := make([]string, 0, len(snap.View))
	for _, p := range snap.View {
		out = append(out, p.Name)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

func TestQueryEngine_InitialSnapshotIsEmpty(t *testing.T) {
	t.Parallel()

	engine := NewQueryEngine(0, logging.NewNop())
	snap := engine.Snapshot(context.Background())

	if snap.Version != 0 || snap.TotalRecords != 0 || len(snap.View) != 0 {
		t.Fatalf("unexpected initial snapshot: %+v", snap)
	}
	if snap.Stats != nil {
		t.Fatalf("expected nil aggregates before any load")
	}
	if snap.Sort != player.DefaultSort() || snap.Filter != player.DefaultFilter() {
		t.Fatalf("expected default criteria, got %+v / %+v", snap.Filter, snap.Sort)
	}
	if snap.ReferenceYear != player.DefaultReferenceYear {
		t.Fatalf("unexpected reference year: %d", snap.ReferenceYear)
	}
}

func TestQueryEngine_ReplaceRecordsRecomputesEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())

	snap := engine.ReplaceRecords(ctx, engineFixture())
	if snap.Version != 1 {
		t.Fatalf("expected version 1, got %d", snap.Version)
	}
	if snap.TotalRecords != 3 {
		t.Fatalf("unexpected record count: %d", snap.TotalRecords)
	}
	if got := viewNames(snap); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Fatalf("unexpected default view: %v", got)
	}
	if snap.Stats == nil || snap.Stats.TotalGoals != 13 || snap.Stats.TotalAssists != 10 {
		t.Fatalf("unexpected aggregates: %+v", snap.Stats)
	}

	snap = engine.ReplaceRecords(ctx, nil)
	if snap.Version != 2 || snap.TotalRecords != 0 || snap.Stats != nil {
		t.Fatalf("expected empty record set after replace, got %+v", snap)
	}
}

func TestQueryEngine_ReplaceRecordsCopiesInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	records := engineFixture()

	engine.ReplaceRecords(ctx, records)
	records[0].Name = "mutated"

	snap := engine.Snapshot(ctx)
	if snap.View[0].Name != "A" {
		t.Fatalf("engine state changed through caller slice: %q", snap.View[0].Name)
	}
}

func TestQueryEngine_FilterDoesNotTouchAggregates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	before := engine.ReplaceRecords(ctx, engineFixture())

	after := engine.UpdateFilter(ctx, player.FilterPatch{MinGoals: ptr(5.0)})
	if got := viewNames(after); !slices.Equal(got, []string{"A"}) {
		t.Fatalf("unexpected filtered view: %v", got)
	}
	if after.Stats != before.Stats {
		t.Fatalf("aggregates must not be recomputed by a filter change")
	}
	if after.Version != before.Version {
		t.Fatalf("filter change must not bump the record set version")
	}
	if after.TotalRecords != 3 {
		t.Fatalf("unexpected record count: %d", after.TotalRecords)
	}
}

func TestQueryEngine_FilterPatchMerges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	engine.UpdateFilter(ctx, player.FilterPatch{Team: ptr("X")})
	snap := engine.UpdateFilter(ctx, player.FilterPatch{MinMinutes: ptr(1000.0)})

	if snap.Filter.Team != "X" || snap.Filter.MinMinutes != 1000 {
		t.Fatalf("expected both patches applied, got %+v", snap.Filter)
	}
	if got := viewNames(snap); !slices.Equal(got, []string{"C"}) {
		t.Fatalf("unexpected view: %v", got)
	}
}

func TestQueryEngine_UpdateSort(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	snap, err := engine.UpdateSort(ctx, player.SortCriteria{Field: player.FieldBorn, Direction: player.Ascending})
	if err != nil {
		t.Fatalf("update sort: %v", err)
	}
	if got := viewNames(snap); !slices.Equal(got, []string{"B", "A", "C"}) {
		t.Fatalf("ascending Born should order by increasing age, got %v", got)
	}
}

func TestQueryEngine_UpdateSortRejectsInvalidCriteria(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	_, err := engine.UpdateSort(ctx, player.SortCriteria{Field: player.FieldGoals, Direction: "sideways"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := engine.Snapshot(ctx).Sort; got != player.DefaultSort() {
		t.Fatalf("rejected sort must not change state, got %+v", got)
	}

	if _, err := engine.ToggleSort(ctx, player.Field(0)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for toggle, got %v", err)
	}
}

func TestQueryEngine_ToggleSort(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	snap, err := engine.ToggleSort(ctx, player.FieldAssists)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if snap.Sort.Direction != player.Ascending {
		t.Fatalf("new field should start ascending, got %s", snap.Sort.Direction)
	}
	if got := viewNames(snap); !slices.Equal(got, []string{"C", "A", "B"}) {
		t.Fatalf("unexpected ascending assists view: %v", got)
	}

	snap, err = engine.ToggleSort(ctx, player.FieldAssists)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if snap.Sort.Direction != player.Descending {
		t.Fatalf("same field should flip to descending, got %s", snap.Sort.Direction)
	}
}

func TestQueryEngine_ResetRestoresInitialView(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	initial := engine.ReplaceRecords(ctx, engineFixture())

	engine.UpdateFilter(ctx, player.FilterPatch{Search: ptr("fra"), MinAssists: ptr(2.0)})
	if _, err := engine.UpdateSort(ctx, player.SortCriteria{Field: player.FieldName, Direction: player.Descending}); err != nil {
		t.Fatalf("update sort: %v", err)
	}

	reset := engine.ResetCriteria(ctx)
	if reset.Filter != initial.Filter || reset.Sort != initial.Sort {
		t.Fatalf("reset should restore defaults, got %+v / %+v", reset.Filter, reset.Sort)
	}
	if !slices.Equal(viewNames(reset), viewNames(initial)) {
		t.Fatalf("reset view %v differs from initial %v", viewNames(reset), viewNames(initial))
	}
}

func TestQueryEngine_ViewIsSubsequenceOfRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	engine.UpdateFilter(ctx, player.FilterPatch{Team: ptr("X")})
	if _, err := engine.UpdateSort(ctx, player.SortCriteria{Field: player.FieldMinutes, Direction: player.Ascending}); err != nil {
		t.Fatalf("update sort: %v", err)
	}
	snap := engine.Snapshot(ctx)

	for _, p := range snap.View {
		if p.Team != "X" {
			t.Fatalf("view contains record outside the filter: %+v", p)
		}
	}
	if got := viewNames(snap); !slices.Equal(got, []string{"A", "C"}) {
		t.Fatalf("unexpected view: %v", got)
	}
}

func TestQueryEngine_ConcurrentCommandsKeepSnapshotsConsistent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	engine := NewQueryEngine(2024, logging.NewNop())
	engine.ReplaceRecords(ctx, engineFixture())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			engine.ReplaceRecords(ctx, engineFixture())
		}()
		go func(i int) {
			defer wg.Done()
			engine.UpdateFilter(ctx, player.FilterPatch{MinGoals: ptr(float64(i % 2))})
			snap := engine.Snapshot(ctx)
			if snap.Stats == nil || snap.Stats.TotalPlayers != snap.TotalRecords {
				t.Errorf("snapshot mixes record sets: %+v", snap)
			}
		}(i)
	}
	wg.Wait()

	if got := engine.Snapshot(ctx).Version; got != 9 {
		t.Fatalf("expected 9 record set versions, got %d", got)
	}
}
