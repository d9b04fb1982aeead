// Package rounddb stores the trip itinerary: rounds and their tee groups.
package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// RoundDBImpl implements Repository using bun.
type RoundDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*RoundDBImpl)(nil)

func (db *RoundDBImpl) conn(idb bun.IDB) bun.IDB {
	if idb != nil {
		return idb
	}
	return db.DB
}

func (db *RoundDBImpl) CreateRound(ctx context.Context, idb bun.IDB, round *Round) error {
	if _, err := db.conn(idb).NewInsert().Model(round).Exec(ctx); err != nil {
		return fmt.Errorf("create round: %w", err)
	}
	return nil
}

func (db *RoundDBImpl) GetRound(ctx context.Context, idb bun.IDB, roundID sharedtypes.RoundID) (*Round, error) {
	round := new(Round)
	err := db.conn(idb).NewSelect().Model(round).Where("r.id = ?", roundID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("get round: %w", err)
	}
	return round, nil
}

func (db *RoundDBImpl) ListRounds(ctx context.Context, idb bun.IDB) ([]Round, error) {
	rounds := []Round{}
	err := db.conn(idb).NewSelect().Model(&rounds).Order("trip_day ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return rounds, nil
}

func (db *RoundDBImpl) UpdateTeeTime(ctx context.Context, idb bun.IDB, roundID sharedtypes.RoundID, teeTime time.Time) error {
	res, err := db.conn(idb).NewUpdate().
		Model((*Round)(nil)).
		Set("tee_time = ?", teeTime).
		Set("updated_at = now()").
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update tee time: %w", err)
	}
	return requireRows(res)
}

// ReplacePairings swaps the round's tee groups wholesale. Pairings change as a unit
// when the trip captain reshuffles groups, so partial edits are not supported.
func (db *RoundDBImpl) ReplacePairings(ctx context.Context, idb bun.IDB, roundID sharedtypes.RoundID, pairings []Pairing) error {
	conn := db.conn(idb)
	if _, err := conn.NewDelete().
		Model((*Pairing)(nil)).
		Where("round_id = ?", roundID).
		Exec(ctx); err != nil {
		return fmt.Errorf("replace pairings: %w", err)
	}
	if len(pairings) == 0 {
		return nil
	}
	if _, err := conn.NewInsert().Model(&pairings).Exec(ctx); err != nil {
		return fmt.Errorf("replace pairings: %w", err)
	}
	return nil
}

func (db *RoundDBImpl) ListPairings(ctx context.Context, idb bun.IDB, roundID sharedtypes.RoundID) ([]Pairing, error) {
	pairings := []Pairing{}
	err := db.conn(idb).NewSelect().
		Model(&pairings).
		Where("round_id = ?", roundID).
		Order("group_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pairings: %w", err)
	}
	return pairings, nil
}

func requireRows(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
