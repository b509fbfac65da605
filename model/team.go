package model

const (
	LeagueMajor = "major"
	LeagueMinor = "minor"
)

// UnassignedTeam is the sentinel team id used for players that do not
// belong to any team, e.g. draft-class players that have not been picked.
const UnassignedTeam = "none"

type Team struct {
	ID         string
	Name       string
	LogoURL    string
	Conference string
	Division   string
	League     string
}

type Conference struct {
	Name      string
	Divisions []string
}

var majorStructure = []Conference{
	{Name: "Eastern", Divisions: []string{"Atlantic", "Metropolitan"}},
	{Name: "Western", Divisions: []string{"Central", "Pacific"}},
}

var minorStructure = []Conference{
	{Name: "North", Divisions: []string{"East", "West"}},
	{Name: "South", Divisions: []string{"East", "West"}},
}

// LeagueStructure returns the static conference/division taxonomy for a
// league. Unknown league tags fall back to the major league structure.
func LeagueStructure(league string) []Conference {
	if league == LeagueMinor {
		return minorStructure
	}
	return majorStructure
}

// ParseLeague normalizes a league tag, defaulting to the major league.
func ParseLeague(league string) string {
	if league == LeagueMinor {
		return LeagueMinor
	}
	return LeagueMajor
}

// ValidLeague reports whether the tag is one of the known leagues. Unlike
// ParseLeague it does not default, so it can be used to reject bad records.
func ValidLeague(league string) bool {
	return league == LeagueMajor || league == LeagueMinor
}
