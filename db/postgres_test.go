package db_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/N0HBDY-code/GOHLS-sub000/db"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
	"github.com/N0HBDY-code/GOHLS-sub000/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()

	code := m.Run()
	os.Exit(code)
}

func TestListTeamsAndGetTeam(t *testing.T) {
	ctx := context.Background()

	teams, err := testDB.DB.ListTeams(ctx)
	if err != nil {
		t.Fatalf("error listing teams: %v", err)
	}
	if len(teams) != 3 {
		t.Errorf("expected 3 teams, got: %d", len(teams))
	}

	team, err := testDB.DB.GetTeam(ctx, "t-bos")
	if err != nil {
		t.Fatalf("error getting team: %v", err)
	}
	if team.Name != "Boston Bears" || team.Conference != "Eastern" || team.Division != "Atlantic" {
		t.Errorf("unexpected team: %+v", team)
	}
	if team.League != model.LeagueMajor {
		t.Errorf("expected major league, got: %s", team.League)
	}

	if _, err := testDB.DB.GetTeam(ctx, "t-nope"); !errors.Is(err, db.ErrTeamNotFound) {
		t.Errorf("expected ErrTeamNotFound, got: %v", err)
	}
}

func TestListGames(t *testing.T) {
	ctx := context.Background()

	games, err := testDB.DB.ListGames(ctx, "t-bos")
	if err != nil {
		t.Fatalf("error listing games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got: %d", len(games))
	}

	g := games[0]
	if !g.Home || !g.Decided() {
		t.Errorf("expected a decided home game: %+v", g)
	}
	if g.OwnScore() != 4 || g.OpponentScore() != 2 {
		t.Errorf("unexpected scores: %d-%d", g.OwnScore(), g.OpponentScore())
	}

	// The same game is stored under the road team with the sides flipped.
	games, err = testDB.DB.ListGames(ctx, "t-nyr")
	if err != nil {
		t.Fatalf("error listing games: %v", err)
	}
	if len(games) != 1 || games[0].Home || games[0].OwnScore() != 2 {
		t.Errorf("unexpected road copy of the game: %+v", games)
	}
}

func TestGetRoster(t *testing.T) {
	ctx := context.Background()

	roster, err := testDB.DB.GetRoster(ctx, "t-bos")
	if err != nil {
		t.Fatalf("error getting roster: %v", err)
	}
	if len(roster) == 0 {
		t.Fatalf("expected at least one roster entry")
	}

	found := false
	for _, e := range roster {
		if e.PlayerID == "pl-vet" && e.Name == "Henrik Berg" && e.Position == model.POS_C {
			found = true
		}
	}
	if !found {
		t.Errorf("pl-vet not found on the t-bos roster: %+v", roster)
	}
}

func TestPlayerAttributesAndProgressions(t *testing.T) {
	ctx := context.Background()

	p, err := testDB.DB.GetPlayer(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	if p.FullName() != "Owen Tremblay" || p.DraftClass != 2030 {
		t.Errorf("unexpected player: %+v", p)
	}

	attrs, err := testDB.DB.GetPlayerAttributes(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error getting attributes: %v", err)
	}
	if attrs.Overall != 88 || attrs.Skating != 90 {
		t.Errorf("unexpected attributes: %+v", attrs)
	}

	err = testDB.DB.AddProgression(ctx, &model.Progression{
		ID:        "pr-owen-1",
		PlayerID:  "pl-owen",
		Attribute: "skating",
		OldValue:  90,
		NewValue:  93,
		Time:      testDB.Clock.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("error adding progression: %v", err)
	}

	attrs, err = testDB.DB.GetPlayerAttributes(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error getting attributes after progression: %v", err)
	}
	if attrs.Skating != 93 {
		t.Errorf("skating was not updated, got: %d", attrs.Skating)
	}

	progressions, err := testDB.DB.ListProgressions(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error listing progressions: %v", err)
	}
	if len(progressions) != 1 || progressions[0].NewValue != 93 {
		t.Errorf("unexpected progressions: %+v", progressions)
	}

	// pl-mats has no attributes row, so the update inside the transaction
	// touches nothing and the whole progression must be rolled back.
	err = testDB.DB.AddProgression(ctx, &model.Progression{
		ID:        "pr-mats-1",
		PlayerID:  "pl-mats",
		Attribute: "skating",
		OldValue:  50,
		NewValue:  55,
		Time:      testDB.Clock.Now().UTC(),
	})
	if !errors.Is(err, db.ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got: %v", err)
	}
	progressions, err = testDB.DB.ListProgressions(ctx, "pl-mats")
	if err != nil {
		t.Fatalf("error listing progressions: %v", err)
	}
	if len(progressions) != 0 {
		t.Errorf("progression was not rolled back: %+v", progressions)
	}
}

func TestPlayoffStatusRoundTrip(t *testing.T) {
	ctx := context.Background()

	if err := testDB.DB.SetPlayoffStatus(ctx, "major", "t-bos", model.PlayoffClinched); err != nil {
		t.Fatalf("error setting playoff status: %v", err)
	}

	statuses, err := testDB.DB.GetPlayoffStatuses(ctx, "major")
	if err != nil {
		t.Fatalf("error getting playoff statuses: %v", err)
	}
	if statuses["t-bos"] != model.PlayoffClinched {
		t.Errorf("unexpected statuses: %+v", statuses)
	}

	// Setting a team back to none removes the row entirely.
	if err := testDB.DB.SetPlayoffStatus(ctx, "major", "t-bos", model.PlayoffNone); err != nil {
		t.Fatalf("error clearing playoff status: %v", err)
	}
	statuses, err = testDB.DB.GetPlayoffStatuses(ctx, "major")
	if err != nil {
		t.Fatalf("error getting playoff statuses: %v", err)
	}
	if _, ok := statuses["t-bos"]; ok {
		t.Errorf("expected no status for t-bos, got: %+v", statuses)
	}
}

func TestDraftLifecycle(t *testing.T) {
	ctx := context.Background()
	now := testDB.Clock.Now().UTC()

	class := &model.DraftClass{Season: 2030, League: model.LeagueMajor, Status: model.ClassUpcoming}
	if err := testDB.DB.SaveDraftClass(ctx, class); err != nil {
		t.Fatalf("error saving draft class: %v", err)
	}

	draft := &model.Draft{
		ID:     "d-2030",
		Season: 2030,
		League: model.LeagueMajor,
		Rounds: 2,
		Status: model.DraftNotStarted,
	}
	if err := testDB.DB.SaveDraft(ctx, draft); err != nil {
		t.Fatalf("error saving draft: %v", err)
	}

	order := []string{"t-bos", "t-nyr"}
	picks := make([]model.DraftPick, 0, 4)
	overall := 1
	for round := 1; round <= draft.Rounds; round++ {
		for i, team := range order {
			picks = append(picks, model.DraftPick{
				ID:             fmt.Sprintf("p-%d-%d", round, i+1),
				DraftID:        draft.ID,
				Season:         draft.Season,
				Round:          round,
				Pick:           i + 1,
				Overall:        overall,
				TeamID:         team,
				OriginalTeamID: team,
			})
			overall++
		}
	}
	if err := testDB.DB.SaveDraftOrder(ctx, draft.ID, order, picks); err != nil {
		t.Fatalf("error saving draft order: %v", err)
	}

	gotOrder, err := testDB.DB.GetDraftOrder(ctx, draft.ID)
	if err != nil {
		t.Fatalf("error getting draft order: %v", err)
	}
	if len(gotOrder) != 2 || gotOrder[0] != "t-bos" || gotOrder[1] != "t-nyr" {
		t.Errorf("unexpected draft order: %v", gotOrder)
	}

	gotPicks, err := testDB.DB.ListPicks(ctx, draft.ID)
	if err != nil {
		t.Fatalf("error listing picks: %v", err)
	}
	if len(gotPicks) != 4 {
		t.Fatalf("expected 4 picks, got: %d", len(gotPicks))
	}
	for i, p := range gotPicks {
		if p.Overall != i+1 {
			t.Errorf("picks out of order at %d: %+v", i, p)
		}
	}

	if err := testDB.DB.StartDraft(ctx, 2030, "major", now); err != nil {
		t.Fatalf("error starting draft: %v", err)
	}
	started, err := testDB.DB.GetDraft(ctx, 2030, "major")
	if err != nil {
		t.Fatalf("error getting draft: %v", err)
	}
	if started.Status != model.DraftInProgress || !started.Started.Equal(now) {
		t.Errorf("unexpected draft after start: %+v", started)
	}
	gotClass, err := testDB.DB.GetDraftClass(ctx, 2030)
	if err != nil {
		t.Fatalf("error getting draft class: %v", err)
	}
	if gotClass.Status != model.ClassActive {
		t.Errorf("expected an active class, got: %s", gotClass.Status)
	}

	// Making the first pick writes the pick, the player, the roster entry
	// and the history record together.
	pick := gotPicks[0]
	pick.PlayerID = "pl-owen"
	player := &model.Player{
		ID:       "pl-owen",
		TeamID:   pick.TeamID,
		Status:   model.PlayerStatusActive,
		Position: model.POS_RW,
	}
	err = testDB.DB.MakePick(ctx, &pick, player, &model.RosterEntry{
		TeamID:   pick.TeamID,
		PlayerID: "pl-owen",
		Name:     "Owen Tremblay",
		Position: model.POS_RW,
		Added:    now,
	}, &model.TransactionRecord{
		ID:       "tr-owen-draft",
		PlayerID: "pl-owen",
		Type:     model.TransactionDraft,
		Detail:   "Selected round 1, pick 1 of the 2030 draft",
		FromTeam: model.UnassignedTeam,
		ToTeam:   pick.TeamID,
		Time:     now,
	})
	if err != nil {
		t.Fatalf("error making pick: %v", err)
	}

	gotPick, err := testDB.DB.GetPick(ctx, draft.ID, pick.ID)
	if err != nil {
		t.Fatalf("error getting pick: %v", err)
	}
	if !gotPick.Completed || gotPick.PlayerID != "pl-owen" {
		t.Errorf("pick was not completed: %+v", gotPick)
	}
	drafted, err := testDB.DB.GetPlayer(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error getting drafted player: %v", err)
	}
	if drafted.TeamID != "t-bos" {
		t.Errorf("player was not assigned, team: %s", drafted.TeamID)
	}
	history, err := testDB.DB.ListPlayerHistory(ctx, "pl-owen")
	if err != nil {
		t.Fatalf("error listing player history: %v", err)
	}
	if len(history) != 1 || history[0].Type != model.TransactionDraft {
		t.Errorf("unexpected player history: %+v", history)
	}

	// A completed pick can not be made again.
	if err := testDB.DB.MakePick(ctx, &pick, player, &model.RosterEntry{}, &model.TransactionRecord{}); !errors.Is(err, db.ErrPickNotFound) {
		t.Errorf("expected ErrPickNotFound on a completed pick, got: %v", err)
	}

	if err := testDB.DB.CompleteDraft(ctx, 2030, "major", now); err != nil {
		t.Fatalf("error completing draft: %v", err)
	}

	// pl-mats is the only active unassigned player left in the class.
	count, err := testDB.DB.MarkFreeAgents(ctx, 2030, now)
	if err != nil {
		t.Fatalf("error marking free agents: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 free agent, got: %d", count)
	}
	mats, err := testDB.DB.GetPlayer(ctx, "pl-mats")
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	if mats.Status != model.PlayerStatusFreeAgent {
		t.Errorf("expected a free agent, got: %s", mats.Status)
	}

	ended, err := testDB.DB.GetDraft(ctx, 2030, "major")
	if err != nil {
		t.Fatalf("error getting completed draft: %v", err)
	}
	finalPicks, err := testDB.DB.ListPicks(ctx, draft.ID)
	if err != nil {
		t.Fatalf("error listing final picks: %v", err)
	}
	err = testDB.DB.ArchiveDraft(ctx, &model.DraftHistory{
		Season:   2030,
		League:   ended.League,
		Rounds:   ended.Rounds,
		Started:  ended.Started,
		Ended:    ended.Ended,
		Archived: now,
	}, finalPicks)
	if err != nil {
		t.Fatalf("error archiving draft: %v", err)
	}

	archived, err := testDB.DB.GetDraftHistory(ctx, 2030)
	if err != nil {
		t.Fatalf("error getting draft history: %v", err)
	}
	if archived.Rounds != 2 || archived.League != model.LeagueMajor {
		t.Errorf("unexpected draft history: %+v", archived)
	}
	archivedPicks, err := testDB.DB.ListHistoryPicks(ctx, 2030)
	if err != nil {
		t.Fatalf("error listing archived picks: %v", err)
	}
	if len(archivedPicks) != 4 {
		t.Errorf("expected 4 archived picks, got: %d", len(archivedPicks))
	}

	if err := testDB.DB.DeleteDraft(ctx, draft.ID); err != nil {
		t.Fatalf("error deleting draft: %v", err)
	}
	if _, err := testDB.DB.GetDraft(ctx, 2030, "major"); !errors.Is(err, db.ErrDraftNotFound) {
		t.Errorf("expected ErrDraftNotFound after delete, got: %v", err)
	}
	remaining, err := testDB.DB.ListPicks(ctx, draft.ID)
	if err != nil {
		t.Fatalf("error listing picks after delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("picks were not deleted: %+v", remaining)
	}

	// The archive survives the deletion of the live draft.
	if _, err := testDB.DB.GetDraftHistory(ctx, 2030); err != nil {
		t.Errorf("draft history should survive deleting the draft: %v", err)
	}
}

func TestSwapRosterPlayers(t *testing.T) {
	ctx := context.Background()
	now := testDB.Clock.Now().UTC()

	seed := []struct {
		id, first, last, team string
	}{
		{"pl-swap-a", "Anton", "Dufour", "t-bos"},
		{"pl-swap-b", "Billy", "Crane", "t-nyr"},
	}
	for _, s := range seed {
		err := testDB.Exec(`INSERT INTO players (id, name_first, name_last, position, team, age, status, created)
							VALUES (@id, @first, @last, 'C', @team, 25, 'active', @created)`,
			pgx.NamedArgs{"id": s.id, "first": s.first, "last": s.last, "team": s.team, "created": now})
		if err != nil {
			t.Fatalf("error seeding player %s: %v", s.id, err)
		}
		err = testDB.Exec(`INSERT INTO rosters (team, player, name, position, added)
							VALUES (@team, @player, @name, 'C', @added)`,
			pgx.NamedArgs{"team": s.team, "player": s.id, "name": s.first + " " + s.last, "added": now})
		if err != nil {
			t.Fatalf("error seeding roster entry for %s: %v", s.id, err)
		}
	}

	a := &model.Player{ID: "pl-swap-a", FirstName: "Anton", LastName: "Dufour", Position: model.POS_C, TeamID: "t-nyr", Status: model.PlayerStatusActive}
	b := &model.Player{ID: "pl-swap-b", FirstName: "Billy", LastName: "Crane", Position: model.POS_C, TeamID: "t-bos", Status: model.PlayerStatusActive}
	recA := &model.TransactionRecord{ID: "tr-swap-a", PlayerID: a.ID, Type: model.TransactionTrade, FromTeam: "t-bos", ToTeam: "t-nyr", Time: now}
	recB := &model.TransactionRecord{ID: "tr-swap-b", PlayerID: b.ID, Type: model.TransactionTrade, FromTeam: "t-nyr", ToTeam: "t-bos", Time: now}

	if err := testDB.DB.SwapRosterPlayers(ctx, a, b, recA, recB); err != nil {
		t.Fatalf("error swapping players: %v", err)
	}

	gotA, err := testDB.DB.GetPlayer(ctx, "pl-swap-a")
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	if gotA.TeamID != "t-nyr" {
		t.Errorf("player A was not moved, team: %s", gotA.TeamID)
	}

	roster, err := testDB.DB.GetRoster(ctx, "t-nyr")
	if err != nil {
		t.Fatalf("error getting roster: %v", err)
	}
	onRoster := map[string]bool{}
	for _, e := range roster {
		onRoster[e.PlayerID] = true
	}
	if !onRoster["pl-swap-a"] || onRoster["pl-swap-b"] {
		t.Errorf("roster entries were not rewritten: %+v", roster)
	}

	history, err := testDB.DB.ListPlayerHistory(ctx, "pl-swap-b")
	if err != nil {
		t.Fatalf("error listing history: %v", err)
	}
	if len(history) != 1 || history[0].ToTeam != "t-bos" {
		t.Errorf("unexpected trade history: %+v", history)
	}
}

func TestStoreNotConfigured(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The maintenance database exists but has none of the application tables.
	connStr := strings.Replace(testDB.ConnectionString(), "/gohls?", "/postgres?", 1)
	bare, err := db.New(ctx, connStr, testDB.Clock)
	if err != nil {
		t.Fatalf("error connecting to the maintenance database: %v", err)
	}

	if _, err := bare.ListTeams(ctx); !errors.Is(err, db.ErrStoreNotConfigured) {
		t.Errorf("expected ErrStoreNotConfigured, got: %v", err)
	}
}
