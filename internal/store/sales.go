package store

import (
	"context"
	"database/sql"
	"fmt"

	"sales-browser/internal/models"
	"sales-browser/internal/query"
	"sales-browser/internal/util"
)

// FindSales returns one window of the sales matching q and the count of
// all matching sales. Both reads share one snapshot.
func (s *Store) FindSales(ctx context.Context, q query.Query) ([]models.Sale, int, error) {
	ctx, span := util.StartSpan(ctx, "Store.FindSales")
	defer span.End()

	selectSQL, selectArgs, err := buildSelectQuery(s.bindType, q)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := buildCountQuery(s.bindType, q)
	if err != nil {
		return nil, 0, err
	}

	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	defer tx.Rollback()

	var total int
	if err := tx.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	sales := []models.Sale{}
	if err := tx.SelectContext(ctx, &sales, selectSQL, selectArgs...); err != nil {
		return nil, 0, fmt.Errorf("failed to select sales: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit read transaction: %w", err)
	}

	return sales, total, nil
}

// ListFacets returns the categorical columns of every sale
func (s *Store) ListFacets(ctx context.Context) ([]models.SaleFacets, error) {
	ctx, span := util.StartSpan(ctx, "Store.ListFacets")
	defer span.End()

	facets := []models.SaleFacets{}
	err := s.db.SelectContext(ctx, &facets, "SELECT "+facetColumns+" FROM "+salesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to select sale facets: %w", err)
	}
	return facets, nil
}
