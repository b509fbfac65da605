package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func (db *postgresDB) GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error) {
	const query = `SELECT team, status FROM playoff_statuses WHERE league=@league`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"league": league})
	if err != nil {
		return nil, classifyError(fmt.Errorf("error listing playoff statuses for %s: %w", league, err))
	}

	results := make(map[string]model.PlayoffStatus)
	for rows.Next() {
		var team, status string
		if err := rows.Scan(&team, &status); err != nil {
			return nil, fmt.Errorf("error scanning playoff status: %w", err)
		}
		s, ok := model.ParsePlayoffStatus(status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown playoff status %q for team %s", ErrMalformedRecord, status, team)
		}
		results[team] = s
	}

	return results, nil
}

func (db *postgresDB) SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error {
	if status == model.PlayoffNone {
		const del = `DELETE FROM playoff_statuses WHERE league=@league AND team=@team`
		_, err := db.pool.Exec(ctx, del, pgx.NamedArgs{"league": league, "team": teamID})
		if err != nil {
			return classifyError(fmt.Errorf("error clearing playoff status: %w", err))
		}
		return nil
	}

	const upsert = `INSERT INTO playoff_statuses (league, team, status)
					VALUES (@league, @team, @status)
					ON CONFLICT (league, team) DO UPDATE SET status=@status`
	_, err := db.pool.Exec(ctx, upsert, pgx.NamedArgs{
		"league": league,
		"team":   teamID,
		"status": string(status),
	})
	if err != nil {
		return classifyError(fmt.Errorf("error saving playoff status: %w", err))
	}
	return nil
}
