package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

const playerColumns = `id, name_first, name_last, position, team, age, status, draft_class, created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, classifyError(err)
	}
	return p, nil
}

func (db *postgresDB) ListPlayersByDraftClass(ctx context.Context, season int) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE draft_class=@season ORDER BY id`, playerColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing draft class %d: %w", season, err))
	}

	results := make([]model.Player, 0, 64)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}

	return results, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var pos string
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.FirstName,
		&result.LastName,
		&pos,
		&result.TeamID,
		&result.Age,
		&result.Status,
		&result.DraftClass,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	result.Position = model.Position(pos)
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func (db *postgresDB) GetPlayerAttributes(ctx context.Context, playerID string) (*model.Attributes, error) {
	const query = `SELECT player, overall, skating, shooting, passing, checking, defense
					FROM player_attributes WHERE player=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": playerID})
	var a model.Attributes
	err := row.Scan(&a.PlayerID, &a.Overall, &a.Skating, &a.Shooting, &a.Passing, &a.Checking, &a.Defense)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, classifyError(err)
	}
	return &a, nil
}

func (db *postgresDB) ListPlayerHistory(ctx context.Context, playerID string) ([]model.TransactionRecord, error) {
	const query = `SELECT id, player, type, detail, from_team, to_team, created
					FROM player_history WHERE player=@id ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"id": playerID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing history for %s: %w", playerID, err))
	}

	results := make([]model.TransactionRecord, 0, 16)
	for rows.Next() {
		var r model.TransactionRecord
		var created pgtype.Timestamptz
		err := rows.Scan(&r.ID, &r.PlayerID, &r.Type, &r.Detail, &r.FromTeam, &r.ToTeam, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning history record: %w", err)
		}
		r.Time = created.Time
		results = append(results, r)
	}

	return results, nil
}

func (db *postgresDB) ListProgressions(ctx context.Context, playerID string) ([]model.Progression, error) {
	const query = `SELECT id, player, attribute, old_value, new_value, created
					FROM player_progressions WHERE player=@id ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"id": playerID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing progressions for %s: %w", playerID, err))
	}

	results := make([]model.Progression, 0, 16)
	for rows.Next() {
		var p model.Progression
		var created pgtype.Timestamptz
		err := rows.Scan(&p.ID, &p.PlayerID, &p.Attribute, &p.OldValue, &p.NewValue, &created)
		if err != nil {
			return nil, fmt.Errorf("error scanning progression: %w", err)
		}
		p.Time = created.Time
		results = append(results, p)
	}

	return results, nil
}

func (db *postgresDB) AddProgression(ctx context.Context, p *model.Progression) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insert = `INSERT INTO player_progressions (id, player, attribute, old_value, new_value, created)
					VALUES (@id, @player, @attribute, @old, @new, @created)`
	_, err = tx.Exec(ctx, insert, pgx.NamedArgs{
		"id":        p.ID,
		"player":    p.PlayerID,
		"attribute": p.Attribute,
		"old":       p.OldValue,
		"new":       p.NewValue,
		"created":   p.Time,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error inserting progression: %w", err))
	}

	// The attribute column is derived from the progression entry. Attribute
	// names are a fixed set validated by the controller, never user input.
	update := fmt.Sprintf(`UPDATE player_attributes SET %s=@value WHERE player=@player`, p.Attribute)
	tag, err := tx.Exec(ctx, update, pgx.NamedArgs{
		"value":  p.NewValue,
		"player": p.PlayerID,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error updating attribute: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) SwapRosterPlayers(ctx context.Context, a, b *model.Player, recA, recB *model.TransactionRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := db.clock.Now().UTC()
	for _, p := range []*model.Player{a, b} {
		if err := updatePlayerTeam(ctx, tx, p, now); err != nil {
			return err
		}
	}

	// Rewrite both roster entries under the players' new teams.
	for _, p := range []*model.Player{a, b} {
		if _, err := tx.Exec(ctx, `DELETE FROM rosters WHERE player=@player`, pgx.NamedArgs{"player": p.ID}); err != nil {
			return classifyError(fmt.Errorf("error removing roster entry: %w", err))
		}
		if p.TeamID == model.UnassignedTeam {
			continue
		}
		if err := insertRosterEntry(ctx, tx, &model.RosterEntry{
			TeamID:   p.TeamID,
			PlayerID: p.ID,
			Name:     p.FullName(),
			Position: p.Position,
			Added:    now,
		}); err != nil {
			return err
		}
	}

	for _, rec := range []*model.TransactionRecord{recA, recB} {
		if err := insertHistoryRecord(ctx, tx, rec); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func updatePlayerTeam(ctx context.Context, tx pgx.Tx, p *model.Player, now time.Time) error {
	const query = `UPDATE players SET team=@team, status=@status, updated=@updated WHERE id=@id`
	tag, err := tx.Exec(ctx, query, pgx.NamedArgs{
		"team":    p.TeamID,
		"status":  p.Status,
		"updated": now,
		"id":      p.ID,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error updating player %s: %w", p.ID, err))
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func insertRosterEntry(ctx context.Context, tx pgx.Tx, e *model.RosterEntry) error {
	const query = `INSERT INTO rosters (team, player, name, position, added)
					VALUES (@team, @player, @name, @position, @added)
					ON CONFLICT (team, player) DO UPDATE SET name=@name, position=@position, added=@added`
	_, err := tx.Exec(ctx, query, pgx.NamedArgs{
		"team":     e.TeamID,
		"player":   e.PlayerID,
		"name":     e.Name,
		"position": string(e.Position),
		"added":    e.Added,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error inserting roster entry: %w", err))
	}
	return nil
}

func insertHistoryRecord(ctx context.Context, tx pgx.Tx, r *model.TransactionRecord) error {
	const query = `INSERT INTO player_history (id, player, type, detail, from_team, to_team, created)
					VALUES (@id, @player, @type, @detail, @fromTeam, @toTeam, @created)`
	_, err := tx.Exec(ctx, query, pgx.NamedArgs{
		"id":       r.ID,
		"player":   r.PlayerID,
		"type":     r.Type,
		"detail":   r.Detail,
		"fromTeam": r.FromTeam,
		"toTeam":   r.ToTeam,
		"created":  r.Time,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error inserting history record: %w", err))
	}
	return nil
}
