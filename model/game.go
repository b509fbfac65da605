package model

const (
	PeriodOvertime = "OT"
	PeriodShootout = "SO"
)

// Game is one team's copy of a game record. Each game is stored twice, once
// under each participating team, so TeamID identifies whose copy this is and
// Home says which side that team played.
type Game struct {
	ID        string
	TeamID    string
	Home      bool
	HomeScore *int
	AwayScore *int
	Period    string
}

// Decided reports whether both scores are present. Games without both
// scores have not been played yet and are excluded from aggregation.
func (g *Game) Decided() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// OwnScore returns this team's score. Only valid when Decided().
func (g *Game) OwnScore() int {
	if g.Home {
		return *g.HomeScore
	}
	return *g.AwayScore
}

// OpponentScore returns the opposing team's score. Only valid when Decided().
func (g *Game) OpponentScore() int {
	if g.Home {
		return *g.AwayScore
	}
	return *g.HomeScore
}

// OvertimePeriod reports whether the game reached overtime or a shootout,
// which turns a loss into an overtime loss worth one point.
func (g *Game) OvertimePeriod() bool {
	return g.Period == PeriodOvertime || g.Period == PeriodShootout
}
