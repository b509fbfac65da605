package model

// PlayoffStatus tags a team's postseason state in the standings views.
type PlayoffStatus string

const (
	PlayoffNone       PlayoffStatus = "none"
	PlayoffLeague     PlayoffStatus = "league"
	PlayoffConference PlayoffStatus = "conference"
	PlayoffDivision   PlayoffStatus = "division"
	PlayoffClinched   PlayoffStatus = "playoff"
	PlayoffEliminated PlayoffStatus = "eliminated"
)

func ParsePlayoffStatus(s string) (PlayoffStatus, bool) {
	switch PlayoffStatus(s) {
	case PlayoffNone, PlayoffLeague, PlayoffConference, PlayoffDivision, PlayoffClinched, PlayoffEliminated:
		return PlayoffStatus(s), true
	default:
		return PlayoffNone, false
	}
}
