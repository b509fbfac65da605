package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/N0HBDY-code/GOHLS-sub000/db"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

// cacheTTL bounds how stale the team directory and the computed standings
// are allowed to get before a full refetch.
const cacheTTL = 10 * time.Minute

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Returns all teams across both leagues, memoized for cacheTTL.
	GetTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error)

	// Returns the grouped standings for a league, from cache when the
	// cached copy is fresh and belongs to the same league. A store failure
	// yields an empty standings set for the cycle, not an error.
	GetStandings(ctx context.Context, league string) (*model.Standings, error)
	OverallStandings(ctx context.Context, league string) ([]model.StandingsTeam, error)
	ConferenceStandings(ctx context.Context, league, conference string) ([]model.StandingsTeam, error)
	// Drops the cached entry for the league and recomputes.
	RefreshStandings(ctx context.Context, league string) (*model.Standings, error)
	// Empties both the standings cache and the team directory cache.
	ClearCaches()

	GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error)
	// Writes a team's playoff status, invalidates the standings cache for
	// every league and recomputes the written league immediately.
	SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	GetPlayerHistory(ctx context.Context, id string) ([]model.TransactionRecord, error)
	GetProgressions(ctx context.Context, id string) ([]model.Progression, error)
	// Records a training data point and applies the new attribute value.
	RecordProgression(ctx context.Context, playerID, attribute string, newValue int) (*model.Progression, error)
	// Swaps two players between their teams as one atomic transaction.
	TradePlayers(ctx context.Context, playerA, playerB string) error

	CreateDraftClass(ctx context.Context, season int, league string) (*model.DraftClass, error)
	GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error)
	CreateDraft(ctx context.Context, season int, league string, rounds int) (*model.Draft, error)
	GetDraft(ctx context.Context, season int, league string) (*model.Draft, error)
	// Persists the draft order and regenerates every pick from it. Any
	// previously generated picks are discarded.
	SetDraftOrder(ctx context.Context, season int, league string, teamIDs []string) error
	// Returns the draft, its order, its picks and the current position.
	GetDraftBoard(ctx context.Context, season int, league string) (*DraftBoard, error)
	StartDraft(ctx context.Context, season int, league string) error
	MakeDraftPick(ctx context.Context, season int, league, pickID, playerID string) error
	EndDraft(ctx context.Context, season int, league string) error
	// Requires confirmed=true; removes the draft, its order and picks.
	DeleteDraft(ctx context.Context, season int, league string, confirmed bool) error
	// Players eligible for the season's draft, annotated with their
	// overall rating. sortBy is one of "overall", "age" or "position";
	// reverse flips the default direction.
	EligibleDraftPlayers(ctx context.Context, season int, sortBy string, reverse bool) ([]model.DraftPlayer, error)
	GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, []model.DraftPick, error)
}

// DraftBoard is everything a draft screen needs in one load.
type DraftBoard struct {
	Draft   *model.Draft
	Order   []string
	Picks   []model.DraftPick
	Current *model.PickPosition
}

type controller struct {
	clock clock.Clock
	db    db.DB

	teams     teamCache
	standings standingsCache
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}

// teamCache memoizes the full team directory. The mutex is held across the
// refetch so concurrent callers never trigger duplicate loads.
type teamCache struct {
	mu      sync.Mutex
	teams   []model.Team
	fetched time.Time
}

// standingsCache holds the last grouped standings. A single entry is kept;
// it is only served when the league tag matches and the entry is fresh.
type standingsCache struct {
	mu      sync.Mutex
	entry   *model.Standings
	league  string
	fetched time.Time
}
