package controller

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func (c *controller) GetTeams(ctx context.Context) ([]model.Team, error) {
	c.teams.mu.Lock()
	defer c.teams.mu.Unlock()

	if c.teams.teams != nil && c.clock.Now().Sub(c.teams.fetched) < cacheTTL {
		return slices.Clone(c.teams.teams), nil
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading team directory: %w", err)
	}
	teamCacheRefreshes.Inc()

	c.teams.teams = teams
	c.teams.fetched = c.clock.Now()
	return slices.Clone(teams), nil
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error) {
	return c.db.GetRoster(ctx, teamID)
}

func (c *controller) GetStandings(ctx context.Context, league string) (*model.Standings, error) {
	league = model.ParseLeague(league)

	c.standings.mu.Lock()
	defer c.standings.mu.Unlock()

	if c.standingsCacheValid(league) {
		standingsCacheHits.Inc()
		return c.standings.entry, nil
	}
	standingsCacheMisses.Inc()

	return c.computeAndCacheLocked(ctx, league)
}

func (c *controller) RefreshStandings(ctx context.Context, league string) (*model.Standings, error) {
	league = model.ParseLeague(league)

	c.standings.mu.Lock()
	defer c.standings.mu.Unlock()

	if c.standings.league == league {
		c.standings.entry = nil
	}
	return c.computeAndCacheLocked(ctx, league)
}

func (c *controller) OverallStandings(ctx context.Context, league string) ([]model.StandingsTeam, error) {
	s, err := c.GetStandings(ctx, league)
	if err != nil {
		return nil, err
	}
	teams := s.Overall()
	sortStandings(teams)
	return teams, nil
}

func (c *controller) ConferenceStandings(ctx context.Context, league, conference string) ([]model.StandingsTeam, error) {
	s, err := c.GetStandings(ctx, league)
	if err != nil {
		return nil, err
	}
	teams := s.ConferenceTeams(conference)
	if teams == nil {
		return nil, fmt.Errorf("unknown conference: %s", conference)
	}
	sortStandings(teams)
	return teams, nil
}

func (c *controller) ClearCaches() {
	c.standings.mu.Lock()
	c.standings.entry = nil
	c.standings.mu.Unlock()

	c.teams.mu.Lock()
	c.teams.teams = nil
	c.teams.mu.Unlock()
}

// invalidateStandings drops the cached entry regardless of league. Playoff
// status writes call this so every league recomputes on its next read.
func (c *controller) invalidateStandings() {
	c.standings.mu.Lock()
	c.standings.entry = nil
	c.standings.mu.Unlock()
}

func (c *controller) standingsCacheValid(league string) bool {
	return c.standings.entry != nil &&
		c.standings.league == league &&
		c.clock.Now().Sub(c.standings.fetched) < cacheTTL
}

// computeAndCacheLocked runs one aggregation pass and stores the result.
// Callers must hold the standings mutex. A store failure is logged and an
// empty, uncached standings set is returned for this cycle.
func (c *controller) computeAndCacheLocked(ctx context.Context, league string) (*model.Standings, error) {
	timer := c.clock.Now()
	s, err := c.computeStandings(ctx, league)
	if err != nil {
		log.Printf("error computing standings for %s league: %v", league, err)
		return &model.Standings{League: league}, nil
	}
	standingsComputeSeconds.Observe(c.clock.Now().Sub(timer).Seconds())

	c.standings.entry = s
	c.standings.league = league
	c.standings.fetched = c.clock.Now()
	return s, nil
}

func (c *controller) computeStandings(ctx context.Context, league string) (*model.Standings, error) {
	teams, err := c.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	leagueTeams := make([]model.Team, 0, len(teams))
	for _, t := range teams {
		if model.ParseLeague(t.League) == league {
			leagueTeams = append(leagueTeams, t)
		}
	}

	statuses, err := c.db.GetPlayoffStatuses(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("error loading playoff statuses: %w", err)
	}

	// Fan out the per-team game fetches and join on the team id, never on
	// completion order.
	games := make(map[string][]model.Game, len(leagueTeams))
	var mu sync.Mutex
	var wg sync.WaitGroup
	var fetchErr error
	for _, t := range leagueTeams {
		wg.Add(1)
		go func(teamID string) {
			defer wg.Done()
			g, err := c.db.ListGames(ctx, teamID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if fetchErr == nil {
					fetchErr = fmt.Errorf("error loading games for %s: %w", teamID, err)
				}
				return
			}
			games[teamID] = g
		}(t.ID)
	}
	wg.Wait()
	if fetchErr != nil {
		return nil, fetchErr
	}

	rows := make([]model.StandingsTeam, 0, len(leagueTeams))
	for _, t := range leagueTeams {
		st := buildStandingsTeam(&t, games[t.ID])
		if status, ok := statuses[t.ID]; ok {
			st.PlayoffStatus = status
		} else {
			st.PlayoffStatus = model.PlayoffNone
		}
		rows = append(rows, st)
	}

	return groupStandings(league, rows), nil
}

// buildStandingsTeam folds a team's game records into its standings line.
// Games missing either score have not been played and are skipped. A win is
// own score above the opponent's; a loss in an OT or SO period counts as an
// overtime loss worth one point. Equal scores are not a modeled outcome and
// increment nothing.
func buildStandingsTeam(t *model.Team, games []model.Game) model.StandingsTeam {
	st := model.StandingsTeam{
		ID:         t.ID,
		Name:       t.Name,
		LogoURL:    t.LogoURL,
		Conference: t.Conference,
		Division:   t.Division,
		League:     model.ParseLeague(t.League),
	}

	for i := range games {
		g := &games[i]
		if !g.Decided() {
			continue
		}

		own := g.OwnScore()
		opp := g.OpponentScore()
		st.GamesPlayed++
		st.GoalsFor += own
		st.GoalsAgainst += opp

		switch {
		case own > opp:
			st.Wins++
		case own < opp && g.OvertimePeriod():
			st.OvertimeLosses++
		case own < opp:
			st.Losses++
		}
	}

	st.Points = 2*st.Wins + st.OvertimeLosses
	st.GoalDifferential = st.GoalsFor - st.GoalsAgainst
	if st.GamesPlayed > 0 {
		st.PointPercentage = float64(st.Points) / float64(2*st.GamesPlayed)
	}

	return st
}

// sortStandings orders teams by points, then point percentage, then goal
// differential, all descending. The sort is stable: teams tied on all three
// keys keep their incoming relative order.
func sortStandings(teams []model.StandingsTeam) {
	slices.SortStableFunc(teams, compareStandings)
}

func compareStandings(a, b model.StandingsTeam) int {
	if a.Points != b.Points {
		return b.Points - a.Points
	}
	if a.PointPercentage != b.PointPercentage {
		if b.PointPercentage > a.PointPercentage {
			return 1
		}
		return -1
	}
	return b.GoalDifferential - a.GoalDifferential
}

// groupStandings buckets the computed rows into the league's static
// conference/division taxonomy. Teams whose conference/division fields do
// not match any taxonomy entry land in the Unassigned bucket with a logged
// warning instead of vanishing.
func groupStandings(league string, rows []model.StandingsTeam) *model.Standings {
	s := &model.Standings{League: league}
	matched := make(map[string]bool, len(rows))

	for _, conf := range model.LeagueStructure(league) {
		cs := model.ConferenceStandings{Name: conf.Name}
		for _, div := range conf.Divisions {
			ds := model.DivisionStandings{Name: div}
			for _, row := range rows {
				if row.Conference == conf.Name && row.Division == div {
					ds.Teams = append(ds.Teams, row)
					matched[row.ID] = true
				}
			}
			sortStandings(ds.Teams)
			cs.Divisions = append(cs.Divisions, ds)
		}
		s.Conferences = append(s.Conferences, cs)
	}

	for _, row := range rows {
		if !matched[row.ID] {
			log.Printf("team %s (%s) has conference/division %q/%q outside the %s league structure",
				row.ID, row.Name, row.Conference, row.Division, league)
			s.Unassigned = append(s.Unassigned, row)
		}
	}
	sortStandings(s.Unassigned)

	return s
}
