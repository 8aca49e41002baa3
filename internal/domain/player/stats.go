package player

import (
	"cmp"
	"slices"
)

const topListSize = 10

// ComputeStats aggregates the full record set. It returns nil for an empty
// set so callers never see an average computed from zero records.
func ComputeStats(records []Player, referenceYear int) *Stats {
	if len(records) == 0 {
		return nil
	}

	stats := &Stats{
		TotalPlayers:  len(records),
		ReferenceYear: referenceYear,
	}
	ageSum := 0.0
	for _, p := range records {
		stats.TotalGoals += p.Goals
		stats.TotalAssists += p.Assists
		ageSum += p.AgeAt(referenceYear)
	}
	stats.AverageAge = ageSum / float64(len(records))

	stats.TopScorers = topBy(records, FieldGoals, topListSize)
	stats.TopAssisters = topBy(records, FieldAssists, topListSize)
	stats.Teams = distinct(records, FieldTeam)
	stats.Positions = distinct(records, FieldPosition)
	stats.Nations = distinct(records, FieldNation)

	return stats
}

func topBy(records []Player, field Field, limit int) []Player {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Player) int {
		return cmp.Compare(b.Number(field), a.Number(field))
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return slices.Clip(out)
}

func distinct(records []Player, field Field) []string {
	seen := make(map[string]struct{}, 64)
	out := make([]string, 0, 64)
	for _, p := range records {
		v := p.Text(field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
