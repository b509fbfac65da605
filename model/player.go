package model

import (
	"time"
)

const (
	PlayerStatusActive    = "active"
	PlayerStatusFreeAgent = "free_agent"
	PlayerStatusRetired   = "retired"
)

type Player struct {
	ID         string
	FirstName  string
	LastName   string
	Position   Position
	TeamID     string
	Age        int
	Status     string
	DraftClass int
	Created    time.Time
	Updated    time.Time
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Attributes is the per-player ratings sub-record. Only Overall matters for
// draft ordering; the rest feed the training screens.
type Attributes struct {
	PlayerID string
	Overall  int
	Skating  int
	Shooting int
	Passing  int
	Checking int
	Defense  int
}

// DefaultOverall is used when a player has no attributes record yet.
const DefaultOverall = 50

// DraftPlayer is a player annotated with the overall rating looked up from
// the attributes sub-record, used to populate a pick's candidate list.
type DraftPlayer struct {
	Player
	Overall int
}

const (
	TransactionDraft     = "draft"
	TransactionTrade     = "trade"
	TransactionFreeAgent = "free_agent"
)

// TransactionRecord is one entry in a player's history: a draft selection,
// a trade, or a release to free agency.
type TransactionRecord struct {
	ID       string
	PlayerID string
	Type     string
	Detail   string
	FromTeam string
	ToTeam   string
	Time     time.Time
}

/// Progression is one training data point: an attribute changing value at a
// moment in time.
type Progression struct {
	ID        string
	PlayerID  string
	Attribute string
	OldValue  int
	NewValue  int
	Time      time.Time
}

// RosterEntry is the denormalized copy of a player stored under a team.
type RosterEntry struct {
	TeamID   string
	PlayerID string
	Name     string
	Position Position
	Added    time.Time
}
