package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/N0HBDY-code/GOHLS-sub000/model"
)

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) GetPlayerHistory(ctx context.Context, id string) ([]model.TransactionRecord, error) {
	return c.db.ListPlayerHistory(ctx, id)
}

func (c *controller) GetProgressions(ctx context.Context, id string) ([]model.Progression, error) {
	return c.db.ListProgressions(ctx, id)
}

var trainableAttributes = map[string]bool{
	"overall":  true,
	"skating":  true,
	"shooting": true,
	"passing":  true,
	"checking": true,
	"defense":  true,
}

func (c *controller) RecordProgression(ctx context.Context, playerID, attribute string, newValue int) (*model.Progression, error) {
	if !trainableAttributes[attribute] {
		return nil, fmt.Errorf("unknown attribute: %s", attribute)
	}
	if newValue < 0 || newValue > 99 {
		return nil, fmt.Errorf("attribute value must be between 0 and 99, got: %d", newValue)
	}

	attrs, err := c.db.GetPlayerAttributes(ctx, playerID)
	if err != nil {
		return nil, err
	}

	old := attrs.Overall
	switch attribute {
	case "skating":
		old = attrs.Skating
	case "shooting":
		old = attrs.Shooting
	case "passing":
		old = attrs.Passing
	case "checking":
		old = attrs.Checking
	case "defense":
		old = attrs.Defense
	}

	p := &model.Progression{
		ID:        uuid.NewString(),
		PlayerID:  playerID,
		Attribute: attribute,
		OldValue:  old,
		NewValue:  newValue,
		Time:      c.clock.Now().UTC(),
	}
	if err := c.db.AddProgression(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) TradePlayers(ctx context.Context, playerA, playerB string) error {
	if playerA == playerB {
		return fmt.Errorf("cannot trade a player for themselves")
	}

	a, err := c.db.GetPlayer(ctx, playerA)
	if err != nil {
		return err
	}
	b, err := c.db.GetPlayer(ctx, playerB)
	if err != nil {
		return err
	}
	if a.TeamID == b.TeamID {
		return fmt.Errorf("both players are on team %s", a.TeamID)
	}

	now := c.clock.Now().UTC()
	fromA, fromB := a.TeamID, b.TeamID
	a.TeamID, b.TeamID = fromB, fromA

	recA := &model.TransactionRecord{
		ID:       uuid.NewString(),
		PlayerID: a.ID,
		Type:     model.TransactionTrade,
		Detail:   fmt.Sprintf("Traded for %s", b.FullName()),
		FromTeam: fromA,
		ToTeam:   a.TeamID,
		Time:     now,
	}
	recB := &model.TransactionRecord{
		ID:       uuid.NewString(),
		PlayerID: b.ID,
		Type:     model.TransactionTrade,
		Detail:   fmt.Sprintf("Traded for %s", a.FullName()),
		FromTeam: fromB,
		ToTeam:   b.TeamID,
		Time:     now,
	}

	return c.db.SwapRosterPlayers(ctx, a, b, recA, recB)
}
