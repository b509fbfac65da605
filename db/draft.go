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

func (db *postgresDB) GetDraftClass(ctx context.Context, season int) (*model.DraftClass, error) {
	const query = `SELECT season, league, status, created FROM draft_classes WHERE season=@season`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"season": season})
	var c model.DraftClass
	var created pgtype.Timestamptz
	err := row.Scan(&c.Season, &c.League, &c.Status, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftClassNotFound
		}
		return nil, classifyError(err)
	}
	c.Created = created.Time
	return &c, nil
}

func (db *postgresDB) SaveDraftClass(ctx context.Context, c *model.DraftClass) error {
	const query = `INSERT INTO draft_classes (season, league, status, created)
					VALUES (@season, @league, @status, @created)
					ON CONFLICT (season) DO UPDATE SET status=@status`
	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{
		"season":  c.Season,
		"league":  c.League,
		"status":  c.Status,
		"created": db.clock.Now().UTC(),
	})
	if err != nil {
		return classifyError(fmt.Errorf("error saving draft class: %w", err))
	}
	return nil
}

func (db *postgresDB) GetDraft(ctx context.Context, season int, league string) (*model.Draft, error) {
	const query = `SELECT id, season, league, rounds, status, created, started, ended
					FROM drafts WHERE season=@season AND league=@league`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"season": season, "league": league})
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, classifyError(err)
	}
	return d, nil
}

func scanDraft(row pgx.Row) (*model.Draft, error) {
	var d model.Draft
	var created, started, ended pgtype.Timestamptz
	err := row.Scan(&d.ID, &d.Season, &d.League, &d.Rounds, &d.Status, &created, &started, &ended)
	if err != nil {
		return nil, err
	}
	d.Created = created.Time
	d.Started = started.Time
	d.Ended = ended.Time
	return &d, nil
}

func (db *postgresDB) SaveDraft(ctx context.Context, d *model.Draft) error {
	const query = `INSERT INTO drafts (id, season, league, rounds, status, created)
					VALUES (@id, @season, @league, @rounds, @status, @created)`
	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{
		"id":      d.ID,
		"season":  d.Season,
		"league":  d.League,
		"rounds":  d.Rounds,
		"status":  d.Status,
		"created": db.clock.Now().UTC(),
	})
	if err != nil {
		return classifyError(fmt.Errorf("error saving draft: %w", err))
	}
	return nil
}

func (db *postgresDB) SaveDraftOrder(ctx context.Context, draftID string, teamIDs []string, picks []model.DraftPick) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM draft_orders WHERE draft=@draft`, pgx.NamedArgs{"draft": draftID}); err != nil {
		return classifyError(fmt.Errorf("error clearing draft order: %w", err))
	}
	if _, err := tx.Exec(ctx, `DELETE FROM draft_picks WHERE draft=@draft`, pgx.NamedArgs{"draft": draftID}); err != nil {
		return classifyError(fmt.Errorf("error clearing draft picks: %w", err))
	}

	for i, teamID := range teamIDs {
		const insert = `INSERT INTO draft_orders (draft, position, team) VALUES (@draft, @position, @team)`
		_, err := tx.Exec(ctx, insert, pgx.NamedArgs{"draft": draftID, "position": i, "team": teamID})
		if err != nil {
			return classifyError(fmt.Errorf("error saving draft order entry: %w", err))
		}
	}

	for i := range picks {
		if err := insertPick(ctx, tx, "draft_picks", &picks[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertPick(ctx context.Context, tx pgx.Tx, table string, p *model.DraftPick) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, draft, season, round, pick, overall, team, original_team, player, completed)
					VALUES (@id, @draft, @season, @round, @pick, @overall, @team, @originalTeam, @player, @completed)`, table)
	_, err := tx.Exec(ctx, query, pgx.NamedArgs{
		"id":           p.ID,
		"draft":        p.DraftID,
		"season":       p.Season,
		"round":        p.Round,
		"pick":         p.Pick,
		"overall":      p.Overall,
		"team":         p.TeamID,
		"originalTeam": p.OriginalTeamID,
		"player":       p.PlayerID,
		"completed":    p.Completed,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error inserting pick %d-%d: %w", p.Round, p.Pick, err))
	}
	return nil
}

func (db *postgresDB) GetDraftOrder(ctx context.Context, draftID string) ([]string, error) {
	const query = `SELECT team FROM draft_orders WHERE draft=@draft ORDER BY position`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"draft": draftID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing draft order: %w", err))
	}

	results := make([]string, 0, 32)
	for rows.Next() {
		var team string
		if err := rows.Scan(&team); err != nil {
			return nil, fmt.Errorf("error scanning draft order entry: %w", err)
		}
		results = append(results, team)
	}

	return results, nil
}

const pickColumns = `id, draft, season, round, pick, overall, team, original_team, player, completed`

func (db *postgresDB) ListPicks(ctx context.Context, draftID string) ([]model.DraftPick, error) {
	query := fmt.Sprintf(`SELECT %s FROM draft_picks WHERE draft=@draft ORDER BY round, pick`, pickColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"draft": draftID})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing picks: %w", err))
	}
	return scanPicks(rows)
}

func scanPicks(rows pgx.Rows) ([]model.DraftPick, error) {
	results := make([]model.DraftPick, 0, 64)
	for rows.Next() {
		var p model.DraftPick
		err := rows.Scan(&p.ID, &p.DraftID, &p.Season, &p.Round, &p.Pick, &p.Overall,
			&p.TeamID, &p.OriginalTeamID, &p.PlayerID, &p.Completed)
		if err != nil {
			return nil, fmt.Errorf("error scanning pick: %w", err)
		}
		results = append(results, p)
	}
	return results, nil
}

func (db *postgresDB) GetPick(ctx context.Context, draftID, pickID string) (*model.DraftPick, error) {
	query := fmt.Sprintf(`SELECT %s FROM draft_picks WHERE draft=@draft AND id=@id`, pickColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"draft": draftID, "id": pickID})
	var p model.DraftPick
	err := row.Scan(&p.ID, &p.DraftID, &p.Season, &p.Round, &p.Pick, &p.Overall,
		&p.TeamID, &p.OriginalTeamID, &p.PlayerID, &p.Completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, classifyError(err)
	}
	return &p, nil
}

func (db *postgresDB) StartDraft(ctx context.Context, season int, league string, at time.Time) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const draft = `UPDATE drafts SET status=@status, started=@at WHERE season=@season AND league=@league`
	tag, err := tx.Exec(ctx, draft, pgx.NamedArgs{
		"status": model.DraftInProgress,
		"at":     at,
		"season": season,
		"league": league,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error starting draft: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}

	const class = `UPDATE draft_classes SET status=@status WHERE season=@season`
	if _, err := tx.Exec(ctx, class, pgx.NamedArgs{"status": model.ClassActive, "season": season}); err != nil {
		return classifyError(fmt.Errorf("error activating draft class: %w", err))
	}

	return tx.Commit(ctx)
}

// MakePick writes all four records for a completed pick in one transaction
// so a partial failure can never leave the pick marked complete without the
// roster and history updates.
func (db *postgresDB) MakePick(ctx context.Context, pick *model.DraftPick, player *model.Player, roster *model.RosterEntry, rec *model.TransactionRecord) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const update = `UPDATE draft_picks SET player=@player, completed=TRUE
					WHERE id=@id AND completed=FALSE`
	tag, err := tx.Exec(ctx, update, pgx.NamedArgs{"player": pick.PlayerID, "id": pick.ID})
	if err != nil {
		return classifyError(fmt.Errorf("error completing pick: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrPickNotFound
	}

	if err := updatePlayerTeam(ctx, tx, player, db.clock.Now().UTC()); err != nil {
		return err
	}
	if err := insertRosterEntry(ctx, tx, roster); err != nil {
		return err
	}
	if err := insertHistoryRecord(ctx, tx, rec); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) CompleteDraft(ctx context.Context, season int, league string, at time.Time) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const draft = `UPDATE drafts SET status=@status, ended=@at WHERE season=@season AND league=@league`
	tag, err := tx.Exec(ctx, draft, pgx.NamedArgs{
		"status": model.DraftCompleted,
		"at":     at,
		"season": season,
		"league": league,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error completing draft: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}

	const class = `UPDATE draft_classes SET status=@status WHERE season=@season`
	if _, err := tx.Exec(ctx, class, pgx.NamedArgs{"status": model.ClassCompleted, "season": season}); err != nil {
		return classifyError(fmt.Errorf("error completing draft class: %w", err))
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) MarkFreeAgents(ctx context.Context, season int, at time.Time) (int64, error) {
	const query = `UPDATE players SET status=@freeAgent, updated=@at
					WHERE draft_class=@season AND team=@unassigned AND status=@active`
	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{
		"freeAgent":  model.PlayerStatusFreeAgent,
		"at":         at,
		"season":     season,
		"unassigned": model.UnassignedTeam,
		"active":     model.PlayerStatusActive,
	})
	if err != nil {
		return 0, classifyError(fmt.Errorf("error marking free agents: %w", err))
	}
	return tag.RowsAffected(), nil
}

func (db *postgresDB) ArchiveDraft(ctx context.Context, h *model.DraftHistory, picks []model.DraftPick) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insert = `INSERT INTO draft_history (season, league, rounds, started, ended, archived)
					VALUES (@season, @league, @rounds, @started, @ended, @archived)
					ON CONFLICT (season) DO UPDATE SET league=@league, rounds=@rounds,
						started=@started, ended=@ended, archived=@archived`
	_, err = tx.Exec(ctx, insert, pgx.NamedArgs{
		"season":   h.Season,
		"league":   h.League,
		"rounds":   h.Rounds,
		"started":  h.Started,
		"ended":    h.Ended,
		"archived": h.Archived,
	})
	if err != nil {
		return classifyError(fmt.Errorf("error archiving draft: %w", err))
	}

	if _, err := tx.Exec(ctx, `DELETE FROM draft_history_picks WHERE season=@season`, pgx.NamedArgs{"season": h.Season}); err != nil {
		return classifyError(fmt.Errorf("error clearing archived picks: %w", err))
	}
	for i := range picks {
		if err := insertPick(ctx, tx, "draft_history_picks", &picks[i]); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) DeleteDraft(ctx context.Context, draftID string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM draft_picks WHERE draft=@draft`, pgx.NamedArgs{"draft": draftID}); err != nil {
		return classifyError(fmt.Errorf("error deleting picks: %w", err))
	}
	if _, err := tx.Exec(ctx, `DELETE FROM draft_orders WHERE draft=@draft`, pgx.NamedArgs{"draft": draftID}); err != nil {
		return classifyError(fmt.Errorf("error deleting draft order: %w", err))
	}
	tag, err := tx.Exec(ctx, `DELETE FROM drafts WHERE id=@draft`, pgx.NamedArgs{"draft": draftID})
	if err != nil {
		return classifyError(fmt.Errorf("error deleting draft: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}

	return tx.Commit(ctx)
}

func (db *postgresDB) GetDraftHistory(ctx context.Context, season int) (*model.DraftHistory, error) {
	const query = `SELECT season, league, rounds, started, ended, archived FROM draft_history WHERE season=@season`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"season": season})
	var h model.DraftHistory
	var started, ended, archived pgtype.Timestamptz
	err := row.Scan(&h.Season, &h.League, &h.Rounds, &started, &ended, &archived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, classifyError(err)
	}
	h.Started = started.Time
	h.Ended = ended.Time
	h.Archived = archived.Time
	return &h, nil
}

func (db *postgresDB) ListHistoryPicks(ctx context.Context, season int) ([]model.DraftPick, error) {
	query := fmt.Sprintf(`SELECT %s FROM draft_history_picks WHERE season=@season ORDER BY round, pick`, pickColumns)

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing archived picks: %w", err))
	}
	return scanPicks(rows)
}
