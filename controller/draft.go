package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/N0HBDY-code/GOHLS-sub000/db"
	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

// ErrDeleteNotConfirmed is returned when a destructive draft operation is
// attempted without the explicit confirmation flag.
var ErrDeleteNotConfirmed = errors.New("deleting a draft requires explicit confirmation")

func (c *controller) CreateDraftClass(ctx context.Context, season int, league string) (*model.DraftClass, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be a positive number, got: %d", season)
	}

	existing, err := c.db.GetDraftClass(ctx, season)
	if err != nil && !errors.Is(err, db.ErrDraftClassNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a draft class for season %d already exists", season)
	}

	class := &model.DraftClass{
		Season: season,
		League: model.ParseLeague(league),
		Status: model.ClassUpcoming,
	}
	if err := c.db.SaveDraftClass(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (c *controller) GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error) {
	return c.db.GetDraftClass(ctx, season)
}

func (c *controller) CreateDraft(ctx context.Context, season int, league string, rounds int) (*model.Draft, error) {
	if season <= 0 {
		return nil, fmt.Errorf("season must be a positive number, got: %d", season)
	}
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got: %d", rounds)
	}
	league = model.ParseLeague(league)

	existing, err := c.db.GetDraft(ctx, season, league)
	if err != nil && !errors.Is(err, db.ErrDraftNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a draft for season %d already exists", season)
	}

	// A draft needs a class to draw players from; create one if the season
	// doesn't have one yet.
	if _, err := c.db.GetDraftClass(ctx, season); err != nil {
		if !errors.Is(err, db.ErrDraftClassNotFound) {
			return nil, err
		}
		class := &model.DraftClass{Season: season, League: league, Status: model.ClassUpcoming}
		if err := c.db.SaveDraftClass(ctx, class); err != nil {
			return nil, err
		}
	}

	d := &model.Draft{
		ID:     uuid.NewString(),
		Season: season,
		League: league,
		Rounds: rounds,
		Status: model.DraftNotStarted,
	}
	if err := c.db.SaveDraft(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *controller) GetDraft(ctx context.Context, season int, league string) (*model.Draft, error) {
	return c.db.GetDraft(ctx, season, model.ParseLeague(league))
}

// SetDraftOrder persists the order and regenerates every pick from it.
// Existing picks are discarded unconditionally, so this must only be used
// before any pick has been made.
func (c *controller) SetDraftOrder(ctx context.Context, season int, league string, teamIDs []string) error {
	if len(teamIDs) == 0 {
		return fmt.Errorf("draft order must contain at least one team")
	}
	seen := make(map[string]bool, len(teamIDs))
	for _, id := range teamIDs {
		if seen[id] {
			return fmt.Errorf("team %s appears more than once in the draft order", id)
		}
		seen[id] = true
	}

	d, err := c.db.GetDraft(ctx, season, model.ParseLeague(league))
	if err != nil {
		return err
	}
	if d.Status == model.DraftCompleted {
		return fmt.Errorf("draft for season %d is already completed", season)
	}

	picks := generatePicks(d, teamIDs)
	return c.db.SaveDraftOrder(ctx, d.ID, teamIDs, picks)
}

// generatePicks builds rounds × len(order) picks. Every round cycles the
// order from the top; there is no snake reversal.
func generatePicks(d *model.Draft, order []string) []model.DraftPick {
	picks := make([]model.DraftPick, 0, d.Rounds*len(order))
	overall := 0
	for round := 1; round <= d.Rounds; round++ {
		for i, teamID := range order {
			overall++
			picks = append(picks, model.DraftPick{
				ID:             uuid.NewString(),
				DraftID:        d.ID,
				Season:         d.Season,
				Round:          round,
				Pick:           i + 1,
				Overall:        overall,
				TeamID:         teamID,
				OriginalTeamID: teamID,
			})
		}
	}
	return picks
}

func (c *controller) GetDraftBoard(ctx context.Context, season int, league string) (*DraftBoard, error) {
	d, err := c.db.GetDraft(ctx, season, model.ParseLeague(league))
	if err != nil {
		return nil, err
	}

	order, err := c.db.GetDraftOrder(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	picks, err := c.db.ListPicks(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	return &DraftBoard{
		Draft:   d,
		Order:   order,
		Picks:   picks,
		Current: currentPosition(picks),
	}, nil
}

// currentPosition finds the first incomplete pick in (round, pick) order.
// When every pick is completed the last pick is the current position. Picks
// are already sorted by the store; nil is returned when there are none.
func currentPosition(picks []model.DraftPick) *model.PickPosition {
	if len(picks) == 0 {
		return nil
	}
	for i := range picks {
		if !picks[i].Completed {
			return &model.PickPosition{Round: picks[i].Round, Pick: picks[i].Pick}
		}
	}
	last := picks[len(picks)-1]
	return &model.PickPosition{Round: last.Round, Pick: last.Pick}
}

func (c *controller) StartDraft(ctx context.Context, season int, league string) error {
	league = model.ParseLeague(league)
	d, err := c.db.GetDraft(ctx, season, league)
	if err != nil {
		return err
	}
	if d.Status != model.DraftNotStarted {
		return fmt.Errorf("draft for season %d cannot be started from status %s", season, d.Status)
	}

	return c.db.StartDraft(ctx, season, league, c.clock.Now().UTC())
}

func (c *controller) MakeDraftPick(ctx context.Context, season int, league, pickID, playerID string) error {
	league = model.ParseLeague(league)
	d, err := c.db.GetDraft(ctx, season, league)
	if err != nil {
		return err
	}
	if d.Status != model.DraftInProgress {
		return fmt.Errorf("draft for season %d is not in progress", season)
	}

	pick, err := c.db.GetPick(ctx, d.ID, pickID)
	if err != nil {
		return err
	}
	if pick.Completed {
		return fmt.Errorf("pick %d-%d has already been made", pick.Round, pick.Pick)
	}

	player, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if player.TeamID != model.UnassignedTeam {
		return fmt.Errorf("player %s is already on team %s", player.FullName(), player.TeamID)
	}

	now := c.clock.Now().UTC()
	pick.PlayerID = player.ID
	pick.Completed = true
	from := player.TeamID
	player.TeamID = pick.TeamID

	roster := &model.RosterEntry{
		TeamID:   pick.TeamID,
		PlayerID: player.ID,
		Name:     player.FullName(),
		Position: player.Position,
		Added:    now,
	}
	rec := &model.TransactionRecord{
		ID:       uuid.NewString(),
		PlayerID: player.ID,
		Type:     model.TransactionDraft,
		Detail:   fmt.Sprintf("Selected round %d, pick %d of the %d draft", pick.Round, pick.Pick, pick.Season),
		FromTeam: from,
		ToTeam:   pick.TeamID,
		Time:     now,
	}

	return c.db.MakePick(ctx, pick, player, roster, rec)
}

func (c *controller) EndDraft(ctx context.Context, season int, league string) error {
	league = model.ParseLeague(league)
	d, err := c.db.GetDraft(ctx, season, league)
	if err != nil {
		return err
	}
	if d.Status != model.DraftInProgress {
		return fmt.Errorf("draft for season %d is not in progress", season)
	}

	now := c.clock.Now().UTC()
	if err := c.db.CompleteDraft(ctx, season, league, now); err != nil {
		return err
	}

	// Everyone in the class who went undrafted becomes a free agent.
	n, err := c.db.MarkFreeAgents(ctx, season, now)
	if err != nil {
		return fmt.Errorf("error releasing undrafted players: %w", err)
	}
	if n > 0 {
		log.Printf("season %d draft: %d undrafted players marked as free agents", season, n)
	}

	picks, err := c.db.ListPicks(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("error loading picks for archival: %w", err)
	}
	history := &model.DraftHistory{
		Season:   season,
		League:   league,
		Rounds:   d.Rounds,
		Started:  d.Started,
		Ended:    now,
		Archived: now,
	}
	return c.db.ArchiveDraft(ctx, history, picks)
}

func (c *controller) DeleteDraft(ctx context.Context, season int, league string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}

	d, err := c.db.GetDraft(ctx, season, model.ParseLeague(league))
	if err != nil {
		return err
	}
	return c.db.DeleteDraft(ctx, d.ID)
}

const (
	SortByOverall  = "overall"
	SortByAge      = "age"
	SortByPosition = "position"
)

func (c *controller) EligibleDraftPlayers(ctx context.Context, season int, sortBy string, reverse bool) ([]model.DraftPlayer, error) {
	players, err := c.db.ListPlayersByDraftClass(ctx, season)
	if err != nil {
		return nil, err
	}

	eligible := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.TeamID == model.UnassignedTeam && p.Status == model.PlayerStatusActive {
			eligible = append(eligible, p)
		}
	}

	// The ratings live in a per-player sub-record; fetch them concurrently
	// and join on the player id.
	overalls := make(map[string]int, len(eligible))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var fetchErr error
	for _, p := range eligible {
		wg.Add(1)
		go func(playerID string) {
			defer wg.Done()
			attrs, err := c.db.GetPlayerAttributes(ctx, playerID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if errors.Is(err, db.ErrPlayerNotFound) {
					overalls[playerID] = model.DefaultOverall
					return
				}
				if fetchErr == nil {
					fetchErr = err
				}
				return
			}
			overalls[playerID] = attrs.Overall
		}(p.ID)
	}
	wg.Wait()
	if fetchErr != nil {
		return nil, fmt.Errorf("error loading player ratings: %w", fetchErr)
	}

	result := make([]model.DraftPlayer, 0, len(eligible))
	for _, p := range eligible {
		result = append(result, model.DraftPlayer{Player: p, Overall: overalls[p.ID]})
	}

	cmp := draftPlayerComparator(sortBy)
	if reverse {
		inner := cmp
		cmp = func(a, b model.DraftPlayer) int { return -inner(a, b) }
	}
	slices.SortStableFunc(result, cmp)

	return result, nil
}

// draftPlayerComparator returns the default-direction comparator for a sort
// key: overall rating high to low, age young to old, or the fixed position
// priority (G, D, C, LW, RW). Unknown keys fall back to overall.
func draftPlayerComparator(sortBy string) func(a, b model.DraftPlayer) int {
	switch sortBy {
	case SortByAge:
		return func(a, b model.DraftPlayer) int { return a.Age - b.Age }
	case SortByPosition:
		return func(a, b model.DraftPlayer) int {
			return model.PositionPriority(a.Position) - model.PositionPriority(b.Position)
		}
	default:
		return func(a, b model.DraftPlayer) int { return b.Overall - a.Overall }
	}
}

func (c *controller) GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, []model.DraftPick, error) {
	h, err := c.db.GetDraftHistory(ctx, season)
	if err != nil {
		return nil, nil, err
	}
	picks, err := c.db.ListHistoryPicks(ctx, season)
	if err != nil {
		return nil, nil, err
	}
	return h, picks, nil
}
