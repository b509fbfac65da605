package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func TestSetPlayoffStatusValidation(t *testing.T) {
	c, _, _ := newTestController(t)
	ctx := context.Background()

	tests := map[string]struct {
		teamID   string
		status   model.PlayoffStatus
		exErrMsg string
	}{
		"missing team":   {teamID: "", status: model.PlayoffClinched, exErrMsg: "teamID must be provided"},
		"unknown status": {teamID: "t1", status: "champion", exErrMsg: "unknown playoff status: champion"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := c.SetPlayoffStatus(ctx, "major", tc.teamID, tc.status)
			if err == nil || err.Error() != tc.exErrMsg {
				t.Errorf("expected error %q, got: %v", tc.exErrMsg, err)
			}
		})
	}
}

func TestSetPlayoffStatusInvalidatesAllLeagues(t *testing.T) {
	c, m, _ := newTestController(t)
	ctx := context.Background()

	m.On("ListTeams", mock.Anything).Return(standingsTestTeams(), nil)
	m.On("GetPlayoffStatuses", mock.Anything, mock.Anything).Return(map[string]model.PlayoffStatus{}, nil)
	m.On("ListGames", mock.Anything, mock.Anything).Return([]model.Game{}, nil)
	m.On("SetPlayoffStatus", mock.Anything, "minor", "t3", model.PlayoffEliminated).Return(nil)

	// Prime the cache with the major league.
	if _, err := c.GetStandings(ctx, "major"); err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	playoffCalls := len(m.Calls)

	// Writing a status in the minor league invalidates the whole cache and
	// recomputes the minor league immediately.
	if err := c.SetPlayoffStatus(ctx, "minor", "t3", model.PlayoffEliminated); err != nil {
		t.Fatalf("error setting playoff status: %v", err)
	}
	if len(m.Calls) <= playoffCalls {
		t.Fatalf("expected an immediate recomputation after the status write")
	}

	// The major league entry is gone too, so it recomputes on next read.
	before := countCalls(&m.Mock, "GetPlayoffStatuses")
	if _, err := c.GetStandings(ctx, "major"); err != nil {
		t.Fatalf("error getting standings: %v", err)
	}
	if countCalls(&m.Mock, "GetPlayoffStatuses") != before+1 {
		t.Errorf("expected the major league to recompute after a minor league status write")
	}
}

func TestSetPlayoffStatusNonePassesThrough(t *testing.T) {
	c, m, _ := newTestController(t)
	ctx := context.Background()

	m.On("SetPlayoffStatus", mock.Anything, "major", "t1", model.PlayoffNone).Return(nil)
	m.On("ListTeams", mock.Anything).Return(standingsTestTeams(), nil)
	m.On("GetPlayoffStatuses", mock.Anything, "major").Return(map[string]model.PlayoffStatus{}, nil)
	m.On("ListGames", mock.Anything, mock.Anything).Return([]model.Game{}, nil)

	if err := c.SetPlayoffStatus(ctx, "major", "t1", model.PlayoffNone); err != nil {
		t.Fatalf("error clearing playoff status: %v", err)
	}
	m.AssertCalled(t, "SetPlayoffStatus", mock.Anything, "major", "t1", model.PlayoffNone)
}

func countCalls(m *mock.Mock, method string) int {
	n := 0
	for _, c := range m.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}
