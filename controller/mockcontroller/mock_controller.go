package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/N0HBDY-code/GOHLS-sub000/controller"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (c *C) GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error) {
	args := c.Called(ctx, teamID)

	var r []model.RosterEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.RosterEntry)
	}
	return r, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context, league string) (*model.Standings, error) {
	args := c.Called(ctx, league)

	var s *model.Standings
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Standings)
	}
	return s, args.Error(1)
}

func (c *C) OverallStandings(ctx context.Context, league string) ([]model.StandingsTeam, error) {
	args := c.Called(ctx, league)

	var r []model.StandingsTeam
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingsTeam)
	}
	return r, args.Error(1)
}

func (c *C) ConferenceStandings(ctx context.Context, league, conference string) ([]model.StandingsTeam, error) {
	args := c.Called(ctx, league, conference)

	var r []model.StandingsTeam
	if args.Get(0) != nil {
		r = args.Get(0).([]model.StandingsTeam)
	}
	return r, args.Error(1)
}

func (c *C) RefreshStandings(ctx context.Context, league string) (*model.Standings, error) {
	args := c.Called(ctx, league)

	var s *model.Standings
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Standings)
	}
	return s, args.Error(1)
}

func (c *C) ClearCaches() {
	c.Called()
}

func (c *C) GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error) {
	args := c.Called(ctx, league)

	var r map[string]model.PlayoffStatus
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]model.PlayoffStatus)
	}
	return r, args.Error(1)
}

func (c *C) SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error {
	args := c.Called(ctx, league, teamID, status)
	return args.Error(0)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetPlayerHistory(ctx context.Context, id string) ([]model.TransactionRecord, error) {
	args := c.Called(ctx, id)

	var r []model.TransactionRecord
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TransactionRecord)
	}
	return r, args.Error(1)
}

func (c *C) GetProgressions(ctx context.Context, id string) ([]model.Progression, error) {
	args := c.Called(ctx, id)

	var r []model.Progression
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Progression)
	}
	return r, args.Error(1)
}

func (c *C) RecordProgression(ctx context.Context, playerID, attribute string, newValue int) (*model.Progression, error) {
	args := c.Called(ctx, playerID, attribute, newValue)

	var p *model.Progression
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Progression)
	}
	return p, args.Error(1)
}

func (c *C) TradePlayers(ctx context.Context, playerA, playerB string) error {
	args := c.Called(ctx, playerA, playerB)
	return args.Error(0)
}

func (c *C) CreateDraftClass(ctx context.Context, season int, league string) (*model.DraftClass, error) {
	args := c.Called(ctx, season, league)

	var dc *model.DraftClass
	if args.Get(0) != nil {
		dc = args.Get(0).(*model.DraftClass)
	}
	return dc, args.Error(1)
}

func (c *C) GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error) {
	args := c.Called(ctx, season)

	var dc *model.DraftClass
	if args.Get(0) != nil {
		dc = args.Get(0).(*model.DraftClass)
	}
	return dc, args.Error(1)
}

func (c *C) CreateDraft(ctx context.Context, season int, league string, rounds int) (*model.Draft, error) {
	args := c.Called(ctx, season, league, rounds)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (c *C) GetDraft(ctx context.Context, season int, league string) (*model.Draft, error) {
	args := c.Called(ctx, season, league)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (c *C) SetDraftOrder(ctx context.Context, season int, league string, teamIDs []string) error {
	args := c.Called(ctx, season, league, teamIDs)
	return args.Error(0)
}

func (c *C) GetDraftBoard(ctx context.Context, season int, league string) (*controller.DraftBoard, error) {
	args := c.Called(ctx, season, league)

	var b *controller.DraftBoard
	if args.Get(0) != nil {
		b = args.Get(0).(*controller.DraftBoard)
	}
	return b, args.Error(1)
}

func (c *C) StartDraft(ctx context.Context, season int, league string) error {
	args := c.Called(ctx, season, league)
	return args.Error(0)
}

func (c *C) MakeDraftPick(ctx context.Context, season int, league, pickID, playerID string) error {
	args := c.Called(ctx, season, league, pickID, playerID)
	return args.Error(0)
}

func (c *C) EndDraft(ctx context.Context, season int, league string) error {
	args := c.Called(ctx, season, league)
	return args.Error(0)
}

func (c *C) DeleteDraft(ctx context.Context, season int, league string, confirmed bool) error {
	args := c.Called(ctx, season, league, confirmed)
	return args.Error(0)
}

func (c *C) EligibleDraftPlayers(ctx context.Context, season int, sortBy string, reverse bool) ([]model.DraftPlayer, error) {
	args := c.Called(ctx, season, sortBy, reverse)

	var r []model.DraftPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPlayer)
	}
	return r, args.Error(1)
}

func (c *C) GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, []model.DraftPick, error) {
	args := c.Called(ctx, season)

	var h *model.DraftHistory
	if args.Get(0) != nil {
		h = args.Get(0).(*model.DraftHistory)
	}
	var picks []model.DraftPick
	if args.Get(1) != nil {
		picks = args.Get(1).([]model.DraftPick)
	}
	return h, picks, args.Error(2)
}
