package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/N0HBDY-code/GOHLS-sub000/containers"
	"github.com/N0HBDY-code/GOHLS-sub000/db"
)

// TestDB is a shared database-in-a-container for integration tests. The pool
// gives tests raw SQL access for seeding and assertions that the DB interface
// does not expose.
type TestDB struct {
	container *containers.DBContainer
	pool      *pgxpool.Pool
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()

	clk := clock.NewMock()
	clk.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	database, err := db.New(context.Background(), container.ConnectionString(), clk)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), container.ConnectionString())
	if err != nil {
		log.Fatalf("error creating seed pool: %v", err)
	}

	t := &TestDB{
		container: container,
		pool:      pool,
		DB:        database,
		Clock:     clk,
	}
	if err := t.InsertLeagueFixtures(); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}
	return t
}

func (t *TestDB) Shutdown() {
	t.pool.Close()
	t.container.Shutdown()
}

// ConnectionString exposes the container address so tests can open
// connections with deliberately wrong settings.
func (t *TestDB) ConnectionString() string {
	return t.container.ConnectionString()
}

// Exec runs raw SQL against the test database.
func (t *TestDB) Exec(query string, args pgx.NamedArgs) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := t.pool.Exec(ctx, query, args)
	return err
}

// InsertLeagueFixtures seeds a small league: three major-league teams, one
// decided game, a rostered veteran and an unassigned 2030 draft class.
func (t *TestDB) InsertLeagueFixtures() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := t.Clock.Now().UTC()

	teams := []pgx.NamedArgs{
		{"id": "t-bos", "name": "Boston Bears", "conference": "Eastern", "division": "Atlantic", "league": "major"},
		{"id": "t-nyr", "name": "New York Knights", "conference": "Eastern", "division": "Metropolitan", "league": "major"},
		{"id": "t-chi", "name": "Chicago Blizzard", "conference": "Western", "division": "Central", "league": "major"},
	}
	for _, args := range teams {
		const insert = `INSERT INTO teams (id, name, conference, division, league)
						VALUES (@id, @name, @conference, @division, @league)`
		if _, err := t.pool.Exec(ctx, insert, args); err != nil {
			return err
		}
	}

	// One decided game, stored once per participating team.
	games := []pgx.NamedArgs{
		{"id": "g1", "team": "t-bos", "home": true, "homeScore": 4, "awayScore": 2, "period": "3rd"},
		{"id": "g1", "team": "t-nyr", "home": false, "homeScore": 4, "awayScore": 2, "period": "3rd"},
	}
	for _, args := range games {
		const insert = `INSERT INTO games (id, team, home, home_score, away_score, period)
						VALUES (@id, @team, @home, @homeScore, @awayScore, @period)`
		if _, err := t.pool.Exec(ctx, insert, args); err != nil {
			return err
		}
	}

	players := []pgx.NamedArgs{
		{"id": "pl-vet", "first": "Henrik", "last": "Berg", "position": "C", "team": "t-bos", "age": 29, "status": "active", "class": 0, "created": now},
		{"id": "pl-owen", "first": "Owen", "last": "Tremblay", "position": "RW", "team": "none", "age": 18, "status": "active", "class": 2030, "created": now},
		{"id": "pl-mats", "first": "Mats", "last": "Lindqvist", "position": "D", "team": "none", "age": 19, "status": "active", "class": 2030, "created": now},
	}
	for _, args := range players {
		const insert = `INSERT INTO players (id, name_first, name_last, position, team, age, status, draft_class, created)
						VALUES (@id, @first, @last, @position, @team, @age, @status, @class, @created)`
		if _, err := t.pool.Exec(ctx, insert, args); err != nil {
			return err
		}
	}

	attributes := []pgx.NamedArgs{
		{"player": "pl-vet", "overall": 84, "skating": 82},
		{"player": "pl-owen", "overall": 88, "skating": 90},
	}
	for _, args := range attributes {
		const insert = `INSERT INTO player_attributes (player, overall, skating) VALUES (@player, @overall, @skating)`
		if _, err := t.pool.Exec(ctx, insert, args); err != nil {
			return err
		}
	}

	const roster = `INSERT INTO rosters (team, player, name, position, added)
					VALUES ('t-bos', 'pl-vet', 'Henrik Berg', 'C', @added)`
	if _, err := t.pool.Exec(ctx, roster, pgx.NamedArgs{"added": now}); err != nil {
		return err
	}

	return nil
}
