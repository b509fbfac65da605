package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"

	"github.com/N0HBDY-code/GOHLS-sub000/controller"
	"github.com/N0HBDY-code/GOHLS-sub000/controller/mockcontroller"
	"github.com/N0HBDY-code/GOHLS-sub000/db"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func serveRouter(m *mockcontroller.C, req *http.Request) *http.Response {
	router := getRouter(m, render.New(), AdminCreds{User: "admin", Password: "hunter2"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Result()
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("admin", "hunter2")
	return req
}

func TestStandingsHandlerViews(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("GetStandings", mock.Anything, "major").Return(&model.Standings{League: model.LeagueMajor}, nil)
	m.On("OverallStandings", mock.Anything, "major").Return([]model.StandingsTeam{}, nil)
	m.On("ConferenceStandings", mock.Anything, "major", "Eastern").Return([]model.StandingsTeam{}, nil)

	tests := map[string]struct {
		target   string
		exStatus int
	}{
		"default view":    {target: "/standings?league=major", exStatus: http.StatusOK},
		"division view":   {target: "/standings?league=major&view=division", exStatus: http.StatusOK},
		"overall view":    {target: "/standings?league=major&view=overall", exStatus: http.StatusOK},
		"conference view": {target: "/standings?league=major&view=conference&conference=Eastern", exStatus: http.StatusOK},
		"unknown view":    {target: "/standings?league=major&view=sideways", exStatus: http.StatusBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			resp := serveRouter(m, httptest.NewRequest(http.MethodGet, tc.target, nil))
			defer resp.Body.Close()

			if resp.StatusCode != tc.exStatus {
				t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
			}
		})
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := map[string]struct {
		err      error
		exStatus int
	}{
		"missing tables":   {err: db.ErrStoreNotConfigured, exStatus: http.StatusServiceUnavailable},
		"team not found":   {err: db.ErrTeamNotFound, exStatus: http.StatusNotFound},
		"malformed record": {err: db.ErrMalformedRecord, exStatus: http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := &mockcontroller.C{}
			m.On("GetTeam", mock.Anything, "t1").Return(nil, tc.err)

			resp := serveRouter(m, httptest.NewRequest(http.MethodGet, "/teams/t1", nil))
			defer resp.Body.Close()

			if resp.StatusCode != tc.exStatus {
				t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
			}
		})
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("ClearCaches").Return()

	req := httptest.NewRequest(http.MethodPost, "/admin/caches/clear", nil)
	resp := serveRouter(m, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without credentials, got: %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/admin/caches/clear", nil)
	req.SetBasicAuth("admin", "hunter2")
	resp = serveRouter(m, req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 with credentials, got: %d", resp.StatusCode)
	}
	m.AssertCalled(t, "ClearCaches")
}

func TestSetPlayoffStatusHandler(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("SetPlayoffStatus", mock.Anything, "major", "t1", model.PlayoffClinched).Return(nil)

	form := url.Values{"team": {"t1"}, "status": {"playoff"}}
	resp := serveRouter(m, postForm("/admin/playoffs/major", form))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	m.AssertExpectations(t)
}

func TestCreateDraftHandlerValidation(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("CreateDraft", mock.Anything, 2026, "major", 3).Return(&model.Draft{
		ID: "d1", Season: 2026, League: model.LeagueMajor, Rounds: 3, Status: model.DraftNotStarted,
	}, nil)

	tests := map[string]struct {
		form     url.Values
		exStatus int
	}{
		"valid":          {form: url.Values{"season": {"2026"}, "league": {"major"}, "rounds": {"3"}}, exStatus: http.StatusCreated},
		"bad season":     {form: url.Values{"season": {"next year"}, "league": {"major"}, "rounds": {"3"}}, exStatus: http.StatusBadRequest},
		"missing rounds": {form: url.Values{"season": {"2026"}, "league": {"major"}}, exStatus: http.StatusBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			resp := serveRouter(m, postForm("/admin/drafts", tc.form))
			defer resp.Body.Close()

			if resp.StatusCode != tc.exStatus {
				t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
			}
		})
	}
}

func TestSetDraftOrderHandlerSplitsTeams(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("SetDraftOrder", mock.Anything, 2026, "major", []string{"t1", "t2", "t3"}).Return(nil)

	form := url.Values{"league": {"major"}, "teams": {"t1, t2,t3"}}
	resp := serveRouter(m, postForm("/admin/drafts/2026/order", form))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	m.AssertExpectations(t)
}

func TestMakePickHandlerRequiresPlayer(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("MakeDraftPick", mock.Anything, 2026, "major", "p-12", "pl9").Return(nil)

	resp := serveRouter(m, postForm("/admin/drafts/2026/picks/p-12", url.Values{"league": {"major"}}))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without a player, got: %d", resp.StatusCode)
	}

	form := url.Values{"league": {"major"}, "player": {"pl9"}}
	resp = serveRouter(m, postForm("/admin/drafts/2026/picks/p-12", form))
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	m.AssertExpectations(t)
}

func TestDeleteDraftHandlerConfirmFlag(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("DeleteDraft", mock.Anything, 2026, "major", false).
		Return(controller.ErrDeleteNotConfirmed)
	m.On("DeleteDraft", mock.Anything, 2026, "major", true).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/drafts/2026?league=major", nil)
	req.SetBasicAuth("admin", "hunter2")
	resp := serveRouter(m, req)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 without confirmation, got: %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/drafts/2026?league=major&confirm=true", nil)
	req.SetBasicAuth("admin", "hunter2")
	resp = serveRouter(m, req)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
}

func TestEligiblePlayersHandlerParams(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("EligibleDraftPlayers", mock.Anything, 2026, "age", true).Return([]model.DraftPlayer{}, nil)

	resp := serveRouter(m, httptest.NewRequest(
		http.MethodGet, "/drafts/2026/players?sort=age&reverse=true", nil))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}
	m.AssertExpectations(t)
}

func TestRecordProgressionHandler(t *testing.T) {
	m := &mockcontroller.C{}
	m.On("RecordProgression", mock.Anything, "pl1", "skating", 74).Return(&model.Progression{
		ID: "pr1", PlayerID: "pl1", Attribute: "skating", OldValue: 70, NewValue: 74,
	}, nil)

	form := url.Values{"attribute": {"skating"}, "value": {"74"}}
	resp := serveRouter(m, postForm("/admin/players/pl1/progressions", form))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("unexpected status code. Got: %d", resp.StatusCode)
	}

	form = url.Values{"attribute": {"skating"}, "value": {"a lot"}}
	resp = serveRouter(m, postForm("/admin/players/pl1/progressions", form))
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric value, got: %d", resp.StatusCode)
	}
}
