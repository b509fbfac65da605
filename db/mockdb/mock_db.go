package mockdb

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context, teamID string) ([]model.Game, error) {
	args := db.Called(ctx, teamID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error) {
	args := db.Called(ctx, teamID)

	var r []model.RosterEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.RosterEntry)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayersByDraftClass(ctx context.Context, season int) ([]model.Player, error) {
	args := db.Called(ctx, season)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetPlayerAttributes(ctx context.Context, playerID string) (*model.Attributes, error) {
	args := db.Called(ctx, playerID)

	var a *model.Attributes
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Attributes)
	}
	return a, args.Error(1)
}

func (db *DB) ListPlayerHistory(ctx context.Context, playerID string) ([]model.TransactionRecord, error) {
	args := db.Called(ctx, playerID)

	var r []model.TransactionRecord
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TransactionRecord)
	}
	return r, args.Error(1)
}

func (db *DB) ListProgressions(ctx context.Context, playerID string) ([]model.Progression, error) {
	args := db.Called(ctx, playerID)

	var r []model.Progression
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Progression)
	}
	return r, args.Error(1)
}

func (db *DB) AddProgression(ctx context.Context, p *model.Progression) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) SwapRosterPlayers(ctx context.Context, a, b *model.Player, recA, recB *model.TransactionRecord) error {
	args := db.Called(ctx, a, b, recA, recB)
	return args.Error(0)
}

func (db *DB) GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error) {
	args := db.Called(ctx, league)

	var r map[string]model.PlayoffStatus
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]model.PlayoffStatus)
	}
	return r, args.Error(1)
}

func (db *DB) SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error {
	args := db.Called(ctx, league, teamID, status)
	return args.Error(0)
}

func (db *DB) GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error) {
	args := db.Called(ctx, season)

	var c *model.DraftClass
	if args.Get(0) != nil {
		c = args.Get(0).(*model.DraftClass)
	}
	return c, args.Error(1)
}

func (db *DB) SaveDraftClass(ctx context.Context, c *model.DraftClass) error {
	args := db.Called(ctx, c)
	return args.Error(0)
}

func (db *DB) GetDraft(ctx context.Context, season int, league string) (*model.Draft, error) {
	args := db.Called(ctx, season, league)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) SaveDraft(ctx context.Context, d *model.Draft) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) SaveDraftOrder(ctx context.Context, draftID string, teamIDs []string, picks []model.DraftPick) error {
	args := db.Called(ctx, draftID, teamIDs, picks)
	return args.Error(0)
}

func (db *DB) GetDraftOrder(ctx context.Context, draftID string) ([]string, error) {
	args := db.Called(ctx, draftID)

	var r []string
	if args.Get(0) != nil {
		r = args.Get(0).([]string)
	}
	return r, args.Error(1)
}

func (db *DB) ListPicks(ctx context.Context, draftID string) ([]model.DraftPick, error) {
	args := db.Called(ctx, draftID)

	var r []model.DraftPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPick)
	}
	return r, args.Error(1)
}

func (db *DB) GetPick(ctx context.Context, draftID, pickID string) (*model.DraftPick, error) {
	args := db.Called(ctx, draftID, pickID)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) StartDraft(ctx context.Context, season int, league string, at time.Time) error {
	args := db.Called(ctx, season, league, at)
	return args.Error(0)
}

func (db *DB) MakePick(ctx context.Context, pick *model.DraftPick, player *model.Player, roster *model.RosterEntry, rec *model.TransactionRecord) error {
	args := db.Called(ctx, pick, player, roster, rec)
	return args.Error(0)
}

func (db *DB) CompleteDraft(ctx context.Context, season int, league string, at time.Time) error {
	args := db.Called(ctx, season, league, at)
	return args.Error(0)
}

func (db *DB) MarkFreeAgents(ctx context.Context, season int, at time.Time) (int64, error) {
	args := db.Called(ctx, season, at)
	return args.Get(0).(int64), args.Error(1)
}

func (db *DB) ArchiveDraft(ctx context.Context, h *model.DraftHistory, picks []model.DraftPick) error {
	args := db.Called(ctx, h, picks)
	return args.Error(0)
}

func (db *DB) DeleteDraft(ctx context.Context, draftID string) error {
	args := db.Called(ctx, draftID)
	return args.Error(0)
}

func (db *DB) GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, error) {
	args := db.Called(ctx, season)

	var h *model.DraftHistory
	if args.Get(0) != nil {
		h = args.Get(0).(*model.DraftHistory)
	}
	return h, args.Error(1)
}

func (db *DB) ListHistoryPicks(ctx context.Context, season int) ([]model.DraftPick, error) {
	args := db.Called(ctx, season)

	var r []model.DraftPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPick)
	}
	return r, args.Error(1)
}
