package model

// StandingsTeam is the derived standings line for a single team. It is
// recomputed on every aggregation pass and never persisted.
type StandingsTeam struct {
	ID               string
	Name             string
	LogoURL          string
	Conference       string
	Division         string
	League           string
	GamesPlayed      int
	Wins             int
	Losses           int
	OvertimeLosses   int
	Points           int
	GoalsFor         int
	GoalsAgainst     int
	GoalDifferential int
	PointPercentage  float64
	PlayoffStatus    PlayoffStatus
}

type DivisionStandings struct {
	Name  string
	Teams []StandingsTeam
}

type ConferenceStandings struct {
	Name      string
	Divisions []DivisionStandings
}

// Standings is one full grouped result for a league. Unassigned holds teams
// whose conference/division fields do not match the league taxonomy; they
// are surfaced explicitly instead of being dropped.
type Standings struct {
	League      string
	Conferences []ConferenceStandings
	Unassigned  []StandingsTeam
}

// Overall flattens the grouped standings into a single ranked list. The
// per-division lists are already sorted, so the merged list only needs one
// more sort by the caller; teams keep their division ordering among ties.
func (s *Standings) Overall() []StandingsTeam {
	var out []StandingsTeam
	for _, c := range s.Conferences {
		for _, d := range c.Divisions {
			out = append(out, d.Teams...)
		}
	}
	out = append(out, s.Unassigned...)
	return out
}

// ConferenceTeams returns all teams in the named conference across its
// divisions, or nil if the conference is not part of the taxonomy.
func (s *Standings) ConferenceTeams(name string) []StandingsTeam {
	for _, c := range s.Conferences {
		if c.Name != name {
			continue
		}
		var out []StandingsTeam
		for _, d := range c.Divisions {
			out = append(out, d.Teams...)
		}
		return out
	}
	return nil
}
