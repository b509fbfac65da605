package model

import (
	"time"
)

const (
	ClassUpcoming  = "upcoming"
	ClassActive    = "active"
	ClassCompleted = "completed"
)

// DraftClass is the pool of players eligible for a given season's draft.
// Eligibility itself is derived from the players' DraftClass field; this
// record only tracks the class lifecycle.
type DraftClass struct {
	Season  int
	League  string
	Status  string
	Created time.Time
}

const (
	DraftNotStarted = "not_started"
	DraftInProgress = "in_progress"
	DraftCompleted  = "completed"
)

type Draft struct {
	ID      string
	Season  int
	League  string
	Rounds  int
	Status  string
	Created time.Time
	Started time.Time
	Ended   time.Time
}

// DraftOrder is the sequence of team ids determining pick priority. The
// same order is used for every round; there is no snake reversal.
type DraftOrder struct {
	DraftID string
	TeamIDs []string
}

type DraftPick struct {
	ID             string
	DraftID        string
	Season         int
	Round          int
	Pick           int
	Overall        int
	TeamID         string
	OriginalTeamID string
	PlayerID       string
	Completed      bool
}

// PickPosition identifies the round and pick-in-round currently on the
// clock.
type PickPosition struct {
	Round int
	Pick  int
}

// DraftHistory is the archived copy of a finished draft, keyed by season.
type DraftHistory struct {
	Season   int
	League   string
	Rounds   int
	Started  time.Time
	Ended    time.Time
	Archived time.Time
}
