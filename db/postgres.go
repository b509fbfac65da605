package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

var (
	ErrTeamNotFound       error = errors.New("team not found")
	ErrPlayerNotFound     error = errors.New("player not found")
	ErrDraftNotFound      error = errors.New("draft not found")
	ErrDraftClassNotFound error = errors.New("draft class not found")
	ErrPickNotFound       error = errors.New("pick not found")
	ErrHistoryNotFound    error = errors.New("draft history not found")

	// ErrStoreNotConfigured means the store rejected a query because the
	// schema it needs is missing. The fix is operational, not a retry.
	ErrStoreNotConfigured error = errors.New("store not configured")

	// ErrMalformedRecord means a stored document failed validation while
	// being read. Bad values are rejected at the boundary instead of being
	// fed into the standings math.
	ErrMalformedRecord error = errors.New("malformed record")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// classifyError maps schema-level failures to ErrStoreNotConfigured so the
// web layer can surface a "configuration needed" state with remediation
// instead of a generic failure.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42P01", "42703": // undefined_table, undefined_column
			return fmt.Errorf("%w: %s", ErrStoreNotConfigured, pgErr.Message)
		}
	}
	return err
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, name, logo_url, conference, division, league FROM teams ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing teams: %w", err))
	}

	results := make([]model.Team, 0, 32)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}

	return results, nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	const query = `SELECT id, name, logo_url, conference, division, league FROM teams WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, classifyError(err)
	}
	return t, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var logo pgtype.Text
	err := row.Scan(
		&result.ID,
		&result.Name,
		&logo,
		&result.Conference,
		&result.Division,
		&result.League)
	if err != nil {
		return nil, err
	}

	result.LogoURL = logo.String
	if !model.ValidLeague(result.League) {
		return nil, fmt.Errorf("%w: team %s has unknown league %q", ErrMalformedRecord, result.ID, result.League)
	}

	return &result, nil
}

func (db *postgresDB) ListGames(ctx context.Context, teamID string) ([]model.Game, error) {
	const query = `SELECT id, team, home, home_score, away_score, period
					FROM games WHERE team=@team ORDER BY id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": teamID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing games for %s: %w", teamID, err))
	}

	results := make([]model.Game, 0, 82)
	for rows.Next() {
		var g model.Game
		var homeScore, awayScore pgtype.Int4
		err := rows.Scan(&g.ID, &g.TeamID, &g.Home, &homeScore, &awayScore, &g.Period)
		if err != nil {
			return nil, fmt.Errorf("error scanning game: %w", err)
		}
		if homeScore.Valid {
			v := int(homeScore.Int32)
			if v < 0 {
				return nil, fmt.Errorf("%w: game %s has negative home score", ErrMalformedRecord, g.ID)
			}
			g.HomeScore = &v
		}
		if awayScore.Valid {
			v := int(awayScore.Int32)
			if v < 0 {
				return nil, fmt.Errorf("%w: game %s has negative away score", ErrMalformedRecord, g.ID)
			}
			g.AwayScore = &v
		}
		results = append(results, g)
	}

	return results, nil
}

func (db *postgresDB) GetRoster(ctx context.Context, teamID string) ([]model.RosterEntry, error) {
	const query = `SELECT team, player, name, position, added
					FROM rosters WHERE team=@team ORDER BY name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"team": teamID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing roster for %s: %w", teamID, err))
	}

	results := make([]model.RosterEntry, 0, 23)
	for rows.Next() {
		var e model.RosterEntry
		var pos string
		var added pgtype.Timestamptz
		err := rows.Scan(&e.TeamID, &e.PlayerID, &e.Name, &pos, &added)
		if err != nil {
			return nil, fmt.Errorf("error scanning roster entry: %w", err)
		}
		e.Position = model.Position(pos)
		e.Added = added.Time
		results = append(results, e)
	}

	return results, nil
}
