package player

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Matches reports whether p passes every active constraint of c.
func (c FilterCriteria) Matches(p Player) bool {
	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Team), term) &&
			!strings.Contains(strings.ToLower(p.Nation), term) &&
			!strings.Contains(strings.ToLower(p.Position), term) {
			return false
		}
	}
	if c.Position != "" && p.Position != c.Position {
		return false
	}
	if c.Team != "" && p.Team != c.Team {
		return false
	}
	if c.Nation != "" && p.Nation != c.Nation {
		return false
	}

	return p.Goals >= c.MinGoals &&
		p.Assists >= c.MinAssists &&
		p.Minutes >= c.MinMinutes
}

// Filter returns the records passing c, in input order.
func Filter(records []Player, c FilterCriteria) []Player {
	out := make([]Player, 0, len(records))
	for _, p := range records {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders records in place with a stable comparator. Born is compared by
// derived age: ascending orders by increasing age.
func Sort(records []Player, s SortCriteria, referenceYear int) {
	compare := comparator(s.Field, referenceYear)
	if s.Direction == Descending {
		asc := compare
		compare = func(a, b Player) int { return asc(b, a) }
	}
	slices.SortStableFunc(records, compare)
}

// Apply derives the filtered and sorted view without touching records.
func Apply(records []Player, f FilterCriteria, s SortCriteria, referenceYear int) []Player {
	out := Filter(records, f)
	Sort(out, s, referenceYear)
	return out
}

func comparator(field Field, referenceYear int) func(a, b Player) int {
	switch {
	case field == FieldBorn:
		return func(a, b Player) int {
			return cmp.Compare(a.AgeAt(referenceYear), b.AgeAt(referenceYear))
		}
	case field.Kind() == KindText:
		col := collate.New(language.English)
		return func(a, b Player) int {
			return col.CompareString(a.Text(field), b.Text(field))
		}
	default:
		return func(a, b Player) int {
			return cmp.Compare(a.Number(field), b.Number(field))
		}
	}
}
