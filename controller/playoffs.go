package controller

import (
	"context"
	"fmt"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func (c *controller) GetPlayoffStatuses(ctx context.Context, league string) (map[string]model.PlayoffStatus, error) {
	return c.db.GetPlayoffStatuses(ctx, model.ParseLeague(league))
}

func (c *controller) SetPlayoffStatus(ctx context.Context, league, teamID string, status model.PlayoffStatus) error {
	league = model.ParseLeague(league)
	if teamID == "" {
		return fmt.Errorf("teamID must be provided")
	}
	if _, ok := model.ParsePlayoffStatus(string(status)); !ok {
		return fmt.Errorf("unknown playoff status: %s", status)
	}

	if err := c.db.SetPlayoffStatus(ctx, league, teamID, status); err != nil {
		return err
	}

	// Any status write invalidates the whole cache, not just this league,
	// then the written league is recomputed so the change shows right away.
	c.invalidateStandings()
	_, err := c.GetStandings(ctx, league)
	return err
}
