package player

// DefaultReferenceYear is the season year ages are derived against.
const DefaultReferenceYear = 2024

// Player is one ingested statistics row for a single player-team pairing.
// Numeric fields are always finite once ingested; absent values are zero.
type Player struct {
	Name     string
	Nation   string
	Position string
	Team     string
	Age      string
	Born     float64

	MatchesPlayed float64
	Starts        float64
	Minutes       float64
	Nineties      float64

	Goals           float64
	Assists         float64
	GoalsAssists    float64
	NonPenaltyGoals float64
	PenaltyGoals    float64
	PenaltyAttempts float64
	YellowCards     float64
	RedCards        float64

	XG          float64
	NPXG        float64
	XAG         float64
	NPXGPlusXAG float64

	ProgressiveCarries    float64
	ProgressivePasses     float64
	ProgressiveReceptions float64

	GoalsPer90                  float64
	AssistsPer90                float64
	GoalsAssistsPer90           float64
	NonPenaltyGoalsPer90        float64
	NonPenaltyGoalsAssistsPer90 float64
	XGPer90                     float64
	XAGPer90                    float64
	XGPlusXAGPer90              float64
	NPXGPer90                   float64
	NPXGPlusXAGPer90            float64

	// Supplementary columns are kept as exported by the source.
	Shots           string
	ShotsOnTarget   string
	PassesCompleted string
	PassesAttempted string
	Tackles         string
	Interceptions   string
	Blocks          string
	Fouls           string
}

// AgeAt derives the player's age from the birth year.
func (p Player) AgeAt(referenceYear int) float64 {
	return float64(referenceYear) - p.Born
}

// Stats summarizes the full, unfiltered record set.
type Stats struct {
	TotalPlayers  int
	TotalGoals    float64
	TotalAssists  float64
	AverageAge    float64
	TopScorers    []Player
	TopAssisters  []Player
	Teams         []string
	Positions     []string
	Nations       []string
	ReferenceYear int
}
