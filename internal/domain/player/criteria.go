package player

import "fmt"

// FilterCriteria restricts the derived view. Empty strings and zero
// thresholds mean "no restriction".
type FilterCriteria struct {
	Search     string
	Position   string
	Team       string
	Nation     string
	MinGoals   float64
	MinAssists float64
	MinMinutes float64
}

// FilterPatch carries a partial filter update; nil fields keep their value.
type FilterPatch struct {
	Search     *string
	Position   *string
	Team       *string
	Nation     *string
	MinGoals   *float64
	MinAssists *float64
	MinMinutes *float64
}

// Merge returns c with every non-nil patch field applied.
func (c FilterCriteria) Merge(patch FilterPatch) FilterCriteria {
	if patch.Search != nil {
		c.Search = *patch.Search
	}
	if patch.Position != nil {
		c.Position = *patch.Position
	}
	if patch.Team != nil {
		c.Team = *patch.Team
	}
	if patch.Nation != nil {
		c.Nation = *patch.Nation
	}
	if patch.MinGoals != nil {
		c.MinGoals = *patch.MinGoals
	}
	if patch.MinAssists != nil {
		c.MinAssists = *patch.MinAssists
	}
	if patch.MinMinutes != nil {
		c.MinMinutes = *patch.MinMinutes
	}
	return c
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

func ParseDirection(v string) (Direction, error) {
	switch Direction(v) {
	case Ascending, Descending:
		return Direction(v), nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", v)
	}
}

// SortCriteria orders the derived view.
type SortCriteria struct {
	Field     Field
	Direction Direction
}

func (s SortCriteria) Validate() error {
	if !s.Field.Valid() {
		return fmt.Errorf("invalid sort field %d", s.Field)
	}
	if _, err := ParseDirection(string(s.Direction)); err != nil {
		return err
	}
	return nil
}

// Toggle mirrors a column header click: the active field flips direction,
// any other field starts ascending.
func (s SortCriteria) Toggle(field Field) SortCriteria {
	if s.Field == field && s.Direction == Ascending {
		return SortCriteria{Field: field, Direction: Descending}
	}
	return SortCriteria{Field: field, Direction: Ascending}
}

func DefaultFilter() FilterCriteria {
	return FilterCriteria{}
}

func DefaultSort() SortCriteria {
	return SortCriteria{Field: FieldGoals, Direction: Descending}
}
