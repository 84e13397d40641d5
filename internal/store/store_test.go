package store

import (
	"context"
	"os"
	"strings"
	"testing"

	"sales-browser/internal/query"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhereClauseEmpty(t *testing.T) {
	where, args, err := buildWhereClause(query.Query{})
	require.NoError(t, err)
	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestBuildSelectQuery(t *testing.T) {
	from := "2023-01-01"
	q := query.Build("O'Br", query.FilterSpec{
		CustomerRegion: []string{"North", "South"},
		DateFrom:       &from,
	}, "quantity", "asc", 3, 10)

	stmt, args, err := buildSelectQuery(sqlx.DOLLAR, q)
	require.NoError(t, err)

	assert.Contains(t, stmt, `WHERE ("customer_name" ILIKE $1 OR "phone_number" ILIKE $2)`)
	assert.Contains(t, stmt, `AND "customer_region" IN ($3, $4)`)
	assert.Contains(t, stmt, `AND "date" >= $5`)
	assert.True(t, strings.HasSuffix(stmt, `ORDER BY sales."quantity" ASC, sales."id" ASC LIMIT $6 OFFSET $7`), stmt)

	assert.Equal(t, []interface{}{"%O'Br%", "%O'Br%", "North", "South", "2023-01-01", 10, 20}, args)
}

func TestBuildSelectQueryDefaultSort(t *testing.T) {
	q := query.Build("", query.FilterSpec{}, "bogus", "bogus", 1, 10)

	stmt, args, err := buildSelectQuery(sqlx.DOLLAR, q)
	require.NoError(t, err)

	assert.NotContains(t, stmt, "WHERE")
	assert.Contains(t, stmt, `ORDER BY sales."date" DESC, sales."id" ASC LIMIT $1 OFFSET $2`)
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestBuildCountQueryIgnoresWindow(t *testing.T) {
	minAge, maxAge := 20, 30
	q := query.Build("", query.FilterSpec{
		Gender:        []string{"Female"},
		AgeMin:        &minAge,
		AgeMax:        &maxAge,
		PaymentMethod: []string{"Cash", "Card", "UPI"},
	}, "date", "desc", 5, 25)

	stmt, args, err := buildCountQuery(sqlx.DOLLAR, q)
	require.NoError(t, err)

	assert.Equal(t,
		`SELECT COUNT(*) FROM sales WHERE "gender" IN ($1) AND "age" >= $2 AND "age" <= $3 AND "payment_method" IN ($4, $5, $6)`,
		stmt)
	assert.Equal(t, []interface{}{"Female", 20, 30, "Cash", "Card", "UPI"}, args)
}

func TestBuildQueryRejectsUnknownColumns(t *testing.T) {
	_, _, err := buildCountQuery(sqlx.DOLLAR, query.Query{
		Conditions: []query.Condition{{Field: "id; DROP TABLE sales", Operator: query.OpGte, Value: 1}},
	})
	assert.Error(t, err)

	_, _, err = buildCountQuery(sqlx.DOLLAR, query.Query{
		Conditions: []query.Condition{{Field: query.ColumnAge, Operator: "like", Value: 1}},
	})
	assert.Error(t, err)

	_, _, err = buildSelectQuery(sqlx.DOLLAR, query.Query{
		Sort:   query.Sort{Column: "created_at"},
		Window: query.NewWindow(1, 10),
	})
	assert.Error(t, err)

	_, _, err = buildSelectQuery(sqlx.DOLLAR, query.Query{
		Search: &query.SearchFilter{Fields: []string{"email"}, Pattern: "%x%"},
		Sort:   query.ResolveSort("date", "desc"),
		Window: query.NewWindow(1, 10),
	})
	assert.Error(t, err)
}

func TestFindSales(t *testing.T) {
	// Integration test - requires a database with the sales schema
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("Integration test - requires database")
	}

	require.NoError(t, MigrateUp(databaseURL))

	store, err := NewStore(databaseURL, DefaultOptions())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	_, total, err := store.FindSales(ctx, query.Build("", query.FilterSpec{}, "date", "desc", 1, 10))
	require.NoError(t, err)

	beyond := query.TotalPages(total, 10) + 1
	sales, beyondTotal, err := store.FindSales(ctx, query.Build("", query.FilterSpec{}, "date", "desc", beyond, 10))
	require.NoError(t, err)
	assert.Empty(t, sales)
	assert.NotNil(t, sales)
	assert.Equal(t, total, beyondTotal)

	facets, err := store.ListFacets(ctx)
	require.NoError(t, err)
	assert.Len(t, facets, total)
}
