package db

import (
	"context"
	"time"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

type DB interface {
	ListTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id string) (*model.Team, error)
	// Lists every game record stored under the given team, played or not.
	ListGames(ctx context.Context, teamID string) ([]model.Game, error)
	GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error)

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayersByDraftClass(ctx context.Context, season int) ([]model.Player, error)
	GetPlayerAttributes(ctx context.Context, playerID string) (*model.Attributes, error)
	ListPlayerHistory(ctx context.Context, playerID string) ([]model.TransactionRecord, error)
	ListProgressions(ctx context.Context, playerID string) ([]model.Progression, error)
	// Appends a progression entry and applies the new attribute value in a
	// single transaction.
	AddProgression(ctx context.Context, p *model.Progression) error
	// Swaps two players between their teams: both player records, both
	// roster entries and both history records are written atomically.
	SwapRosterPlayers(ctx context.Context, a, b *model.Player, recA, recB *model.TransactionRecord) error

	// Returns the status map for a league. Teams without an entry have
	// status none and are not present in the map.
	GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error)
	// Writing model.PlayoffNone removes the entry instead of storing it.
	SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error

	GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error)
	SaveDraftClass(ctx context.Context, c *model.DraftClass) error

	GetDraft(ctx context.Context, season int, league string) (*model.Draft, error)
	SaveDraft(ctx context.Context, d *model.Draft) error
	// Replaces the draft order and all picks in a single transaction. Any
	// previously generated picks are discarded.
	SaveDraftOrder(ctx context.Context, draftID string, teamIDs []string, picks []model.DraftPick) error
	GetDraftOrder(ctx context.Context, draftID string) ([]string, error)
	// Picks are returned ordered by (round, pick).
	ListPicks(ctx context.Context, draftID string) ([]model.DraftPick, error)
	GetPick(ctx context.Context, draftID, pickID string) (*model.DraftPick, error)
	// Transitions the draft to in_progress and its class to active,
	// stamping the start time, in one transaction.
	StartDraft(ctx context.Context, season int, league string, at time.Time) error
	// Completes a pick: the pick update, the player's team reassignment,
	// the roster insert and the history append are one transaction.
	MakePick(ctx context.Context, pick *model.DraftPick, player *model.Player, roster *model.RosterEntry, rec *model.TransactionRecord) error
	// Transitions the draft and its class to completed and stamps the end
	// time, in one transaction.
	CompleteDraft(ctx context.Context, season int, league string, at time.Time) error
	// Marks every active, unassigned player of the season's class as a
	// free agent with a single bulk update. Returns the number updated.
	MarkFreeAgents(ctx context.Context, season int, at time.Time) (int64, error)
	// Copies the draft metadata and all picks into the history collection
	// keyed by season, in one transaction.
	ArchiveDraft(ctx context.Context, h *model.DraftHistory, picks []model.DraftPick) error
	// Removes all picks, the order and the draft document atomically.
	DeleteDraft(ctx context.Context, draftID string) error

	GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, error)
	ListHistoryPicks(ctx context.Context, season int) ([]model.DraftPick, error)
}
