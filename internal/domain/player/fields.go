package player

// Field identifies one Player attribute by its source column.
type Field int

const (
	FieldName Field = iota + 1
	FieldNation
	FieldPosition
	FieldTeam
	FieldAge
	FieldBorn
	FieldMatchesPlayed
	FieldStarts
	FieldMinutes
	FieldNineties
	FieldGoals
	FieldAssists
	FieldGoalsAssists
	FieldNonPenaltyGoals
	FieldPenaltyGoals
	FieldPenaltyAttempts
	FieldYellowCards
	FieldRedCards
	FieldXG
	FieldNPXG
	FieldXAG
	FieldNPXGPlusXAG
	FieldProgressiveCarries
	FieldProgressivePasses
	FieldProgressiveReceptions
	FieldGoalsPer90
	FieldAssistsPer90
	FieldGoalsAssistsPer90
	FieldNonPenaltyGoalsPer90
	FieldNonPenaltyGoalsAssistsPer90
	FieldXGPer90
	FieldXAGPer90
	FieldXGPlusXAGPer90
	FieldNPXGPer90
	FieldNPXGPlusXAGPer90
	FieldShots
	FieldShotsOnTarget
	FieldPassesCompleted
	FieldPassesAttempted
	FieldTackles
	FieldInterceptions
	FieldBlocks
	FieldFouls
)

// Kind describes how a field is stored and compared.
type Kind int

const (
	// KindText is free text compared with collation.
	KindText Kind = iota + 1
	// KindNumber is a coerced float column.
	KindNumber
)

type fieldSpec struct {
	label  string
	kind   Kind
	text   func(*Player) *string
	number func(*Player) *float64
}

var fieldSpecs = map[Field]fieldSpec{
	FieldName:     textField("Player", func(p *Player) *string { return &p.Name }),
	FieldNation:   textField("Nation", func(p *Player) *string { return &p.Nation }),
	FieldPosition: textField("Pos", func(p *Player) *string { return &p.Position }),
	FieldTeam:     textField("Squad", func(p *Player) *string { return &p.Team }),
	FieldAge:      textField("Age", func(p *Player) *string { return &p.Age }),
	FieldBorn:     numberField("Born", func(p *Player) *float64 { return &p.Born }),

	FieldMatchesPlayed: numberField("MP", func(p *Player) *float64 { return &p.MatchesPlayed }),
	FieldStarts:        numberField("Starts", func(p *Player) *float64 { return &p.Starts }),
	FieldMinutes:       numberField("Min", func(p *Player) *float64 { return &p.Minutes }),
	FieldNineties:      numberField("90s", func(p *Player) *float64 { return &p.Nineties }),

	FieldGoals:           numberField("Gls", func(p *Player) *float64 { return &p.Goals }),
	FieldAssists:         numberField("Ast", func(p *Player) *float64 { return &p.Assists }),
	FieldGoalsAssists:    numberField("G+A", func(p *Player) *float64 { return &p.GoalsAssists }),
	FieldNonPenaltyGoals: numberField("G-PK", func(p *Player) *float64 { return &p.NonPenaltyGoals }),
	FieldPenaltyGoals:    numberField("PK", func(p *Player) *float64 { return &p.PenaltyGoals }),
	FieldPenaltyAttempts: numberField("PKatt", func(p *Player) *float64 { return &p.PenaltyAttempts }),
	FieldYellowCards:     numberField("CrdY", func(p *Player) *float64 { return &p.YellowCards }),
	FieldRedCards:        numberField("CrdR", func(p *Player) *float64 { return &p.RedCards }),

	FieldXG:          numberField("xG", func(p *Player) *float64 { return &p.XG }),
	FieldNPXG:        numberField("npxG", func(p *Player) *float64 { return &p.NPXG }),
	FieldXAG:         numberField("xAG", func(p *Player) *float64 { return &p.XAG }),
	FieldNPXGPlusXAG: numberField("npxG+xAG", func(p *Player) *float64 { return &p.NPXGPlusXAG }),

	FieldProgressiveCarries:    numberField("PrgC", func(p *Player) *float64 { return &p.ProgressiveCarries }),
	FieldProgressivePasses:     numberField("PrgP", func(p *Player) *float64 { return &p.ProgressivePasses }),
	FieldProgressiveReceptions: numberField("PrgR", func(p *Player) *float64 { return &p.ProgressiveReceptions }),

	FieldGoalsPer90:                  numberField("Gls.1", func(p *Player) *float64 { return &p.GoalsPer90 }),
	FieldAssistsPer90:                numberField("Ast.1", func(p *Player) *float64 { return &p.AssistsPer90 }),
	FieldGoalsAssistsPer90:           numberField("G+A.1", func(p *Player) *float64 { return &p.GoalsAssistsPer90 }),
	FieldNonPenaltyGoalsPer90:        numberField("G-PK.1", func(p *Player) *float64 { return &p.NonPenaltyGoalsPer90 }),
	FieldNonPenaltyGoalsAssistsPer90: numberField("G+A-PK", func(p *Player) *float64 { return &p.NonPenaltyGoalsAssistsPer90 }),
	FieldXGPer90:                     numberField("xG.1", func(p *Player) *float64 { return &p.XGPer90 }),
	FieldXAGPer90:                    numberField("xAG.1", func(p *Player) *float64 { return &p.XAGPer90 }),
	FieldXGPlusXAGPer90:              numberField("xG+xAG", func(p *Player) *float64 { return &p.XGPlusXAGPer90 }),
	FieldNPXGPer90:                   numberField("npxG.1", func(p *Player) *float64 { return &p.NPXGPer90 }),
	FieldNPXGPlusXAGPer90:            numberField("npxG+xAG.1", func(p *Player) *float64 { return &p.NPXGPlusXAGPer90 }),

	FieldShots:           textField("Sh", func(p *Player) *string { return &p.Shots }),
	FieldShotsOnTarget:   textField("SoT", func(p *Player) *string { return &p.ShotsOnTarget }),
	FieldPassesCompleted: textField("Cmp", func(p *Player) *string { return &p.PassesCompleted }),
	FieldPassesAttempted: textField("Att", func(p *Player) *string { return &p.PassesAttempted }),
	FieldTackles:         textField("Tkl", func(p *Player) *string { return &p.Tackles }),
	FieldInterceptions:   textField("Int", func(p *Player) *string { return &p.Interceptions }),
	FieldBlocks:          textField("Blocks", func(p *Player) *string { return &p.Blocks }),
	FieldFouls:           textField("Fls", func(p *Player) *string { return &p.Fouls }),
}

var fieldsByLabel = func() map[string]Field {
	out := make(map[string]Field, len(fieldSpecs))
	for field, spec := range fieldSpecs {
		out[spec.label] = field
	}
	return out
}()

func textField(label string, text func(*Player) *string) fieldSpec {
	return fieldSpec{label: label, kind: KindText, text: text}
}

func numberField(label string, number func(*Player) *float64) fieldSpec {
	return fieldSpec{label: label, kind: KindNumber, number: number}
}

// AllFields lists every field in source column order.
func AllFields() []Field {
	out := make([]Field, 0, len(fieldSpecs))
	for f := FieldName; f <= FieldFouls; f++ {
		out = append(out, f)
	}
	return out
}

// ParseField resolves a case-sensitive source label such as "Gls" or "xG.1".
func ParseField(label string) (Field, bool) {
	f, ok := fieldsByLabel[label]
	return f, ok
}

func (f Field) Valid() bool {
	_, ok := fieldSpecs[f]
	return ok
}

// Label returns the source column name.
func (f Field) Label() string {
	return fieldSpecs[f].label
}

func (f Field) Kind() Kind {
	return fieldSpecs[f].kind
}

func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return f.Label()
}

// Number returns the numeric value of a KindNumber field, zero otherwise.
func (p Player) Number(f Field) float64 {
	spec, ok := fieldSpecs[f]
	if !ok || spec.number == nil {
		return 0
	}
	return *spec.number(&p)
}

// Text returns the textual value of a field. Numeric fields have no text.
func (p Player) Text(f Field) string {
	spec, ok := fieldSpecs[f]
	if !ok || spec.text == nil {
		return ""
	}
	return *spec.text(&p)
}

// SetNumber assigns a KindNumber field; it reports false for other kinds.
func (p *Player) SetNumber(f Field, v float64) bool {
	spec, ok := fieldSpecs[f]
	if !ok || spec.number == nil {
		return false
	}
	*spec.number(p) = v
	return true
}

// SetText assigns a text-backed field; it reports false for numeric kinds.
func (p *Player) SetText(f Field, v string) bool {
	spec, ok := fieldSpecs[f]
	if !ok || spec.text == nil {
		return false
	}
	*spec.text(p) = v
	return true
}
