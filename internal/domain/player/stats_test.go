package player

import (
	"fmt"
	"slices"
	"testing"
)

func TestComputeStats_EmptyIsNil(t *testing.T) {
	t.Parallel()

	if got := ComputeStats(nil, DefaultReferenceYear); got != nil {
		t.Fatalf("expected nil stats for empty record set, got %+v", got)
	}
	if got := ComputeStats([]Player{}, DefaultReferenceYear); got != nil {
		t.Fatalf("expected nil stats for empty record set, got %+v", got)
	}
}

func TestComputeStats_Totals(t *testing.T) {
	t.Parallel()

	records := []Player{
		{Name: "A", Team: "X", Goals: 10, Assists: 2, Minutes: 900, Born: 1998},
		{Name: "B", Team: "Y", Goals: 3, Assists: 7, Minutes: 200, Born: 2002},
	}

	stats := ComputeStats(records, DefaultReferenceYear)
	if stats == nil {
		t.Fatalf("expected stats")
	}
	if stats.TotalPlayers != 2 {
		t.Fatalf("unexpected TotalPlayers: %d", stats.TotalPlayers)
	}
	if stats.TotalGoals != 13 {
		t.Fatalf("unexpected TotalGoals: %v", stats.TotalGoals)
	}
	if stats.TotalAssists != 9 {
		t.Fatalf("unexpected TotalAssists: %v", stats.TotalAssists)
	}
	if stats.AverageAge != 24 {
		t.Fatalf("unexpected AverageAge: %v", stats.AverageAge)
	}
	if stats.ReferenceYear != DefaultReferenceYear {
		t.Fatalf("unexpected ReferenceYear: %d", stats.ReferenceYear)
	}
}

func TestComputeStats_ReferenceYearShiftsAverageAge(t *testing.T) {
	t.Parallel()

	stats := ComputeStats([]Player{{Born: 2000}}, 2030)
	if stats.AverageAge != 30 {
		t.Fatalf("unexpected AverageAge: %v", stats.AverageAge)
	}
}

func TestComputeStats_TopListsAreCappedAndStable(t *testing.T) {
	t.Parallel()

	records := make([]Player, 0, 14)
	for i := 0; i < 14; i++ {
		records = append(records, Player{
			Name:    fmt.Sprintf("P%02d", i),
			Goals:   float64(i % 3),
			Assists: float64(14 - i),
		})
	}

	stats := ComputeStats(records, DefaultReferenceYear)
	if len(stats.TopScorers) != 10 {
		t.Fatalf("expected 10 top scorers, got %d", len(stats.TopScorers))
	}
	if len(stats.TopAssisters) != 10 {
		t.Fatalf("expected 10 top assisters, got %d", len(stats.TopAssisters))
	}

	// Goals cycle 0,1,2: ties keep input order.
	wantScorers := []string{"P02", "P05", "P08", "P11", "P01", "P04", "P07", "P10", "P13", "P00"}
	if !slices.Equal(names(stats.TopScorers), wantScorers) {
		t.Fatalf("unexpected top scorers: got=%v want=%v", names(stats.TopScorers), wantScorers)
	}
	if stats.TopAssisters[0].Name != "P00" || stats.TopAssisters[9].Name != "P09" {
		t.Fatalf("unexpected top assisters: %v", names(stats.TopAssisters))
	}
}

func TestComputeStats_DistinctSetsAreSorted(t *testing.T) {
	t.Parallel()

	records := []Player{
		{Team: "Real Madrid", Position: "FW", Nation: "fr FRA"},
		{Team: "Arsenal", Position: "MF", Nation: "eng ENG"},
		{Team: "Real Madrid", Position: "DF", Nation: "fr FRA"},
		{Team: "Barcelona", Position: "FW", Nation: "es ESP"},
	}

	stats := ComputeStats(records, DefaultReferenceYear)
	if want := []string{"Arsenal", "Barcelona", "Real Madrid"}; !slices.Equal(stats.Teams, want) {
		t.Fatalf("unexpected teams: got=%v want=%v", stats.Teams, want)
	}
	if want := []string{"DF", "FW", "MF"}; !slices.Equal(stats.Positions, want) {
		t.Fatalf("unexpected positions: got=%v want=%v", stats.Positions, want)
	}
	if want := []string{"eng ENG", "es ESP", "fr FRA"}; !slices.Equal(stats.Nations, want) {
		t.Fatalf("unexpected nations: got=%v want=%v", stats.Nations, want)
	}
}

func TestComputeStats_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	records := samplePlayers()
	before := names(records)
	_ = ComputeStats(records, DefaultReferenceYear)

	if !slices.Equal(names(records), before) {
		t.Fatalf("input was reordered: %v", names(records))
	}
}
