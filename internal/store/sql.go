package store

import (
	"fmt"
	"strings"

	"sales-browser/internal/query"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const salesTable = "sales"

// id and date are cast to text so rows carry the opaque id and a plain YYYY-MM-DD date
const saleColumns = `id::text AS id, customer_id, customer_name, phone_number, gender, age,
	customer_region, customer_type, product_id, product_name, brand, product_category, tags,
	quantity, price_per_unit, discount_percentage, total_amount, final_amount,
	"date"::text AS "date", payment_method, order_status, delivery_type,
	store_id, store_location, salesperson_id, employee_name, created_at`

const facetColumns = `customer_region, gender, product_category, tags, payment_method`

var searchableColumns = map[string]bool{
	query.ColumnCustomerName: true,
	query.ColumnPhoneNumber:  true,
}

var filterableColumns = map[string]bool{
	query.ColumnCustomerRegion:  true,
	query.ColumnGender:          true,
	query.ColumnAge:             true,
	query.ColumnProductCategory: true,
	query.ColumnTags:            true,
	query.ColumnPaymentMethod:   true,
	query.ColumnDate:            true,
}

// buildWhereClause renders the search group and conditions with ? placeholders
func buildWhereClause(q query.Query) (string, []interface{}, error) {
	var clauses []string
	var args []interface{}

	if q.Search != nil {
		group := make([]string, 0, len(q.Search.Fields))
		for _, field := range q.Search.Fields {
			if !searchableColumns[field] {
				return "", nil, fmt.Errorf("column %q is not searchable", field)
			}
			group = append(group, pq.QuoteIdentifier(field)+" ILIKE ?")
			args = append(args, q.Search.Pattern)
		}
		if len(group) > 0 {
			clauses = append(clauses, "("+strings.Join(group, " OR ")+")")
		}
	}

	for _, cond := range q.Conditions {
		if !filterableColumns[cond.Field] {
			return "", nil, fmt.Errorf("column %q is not filterable", cond.Field)
		}

		column := pq.QuoteIdentifier(cond.Field)
		switch cond.Operator {
		case query.OpIn:
			clauses = append(clauses, column+" IN (?)")
		case query.OpGte:
			clauses = append(clauses, column+" >= ?")
		case query.OpLte:
			clauses = append(clauses, column+" <= ?")
		default:
			return "", nil, fmt.Errorf("unsupported operator %q on column %q", cond.Operator, cond.Field)
		}
		args = append(args, cond.Value)
	}

	if len(clauses) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// buildSelectQuery renders the windowed, ordered page query
func buildSelectQuery(bindType int, q query.Query) (string, []interface{}, error) {
	where, args, err := buildWhereClause(q)
	if err != nil {
		return "", nil, err
	}

	if !query.IsSortable(q.Sort.Column) {
		return "", nil, fmt.Errorf("column %q is not sortable", q.Sort.Column)
	}

	stmt := "SELECT " + saleColumns + " FROM " + salesTable + where +
		" ORDER BY " + tableColumn(q.Sort.Column) + " " + q.Sort.Direction() +
		", " + tableColumn(query.ColumnID) + " ASC" +
		" LIMIT ? OFFSET ?"
	args = append(args, q.Window.Limit(), q.Window.Offset())

	return expand(bindType, stmt, args)
}

// buildCountQuery renders the exact count of all matching rows, ignoring the window
func buildCountQuery(bindType int, q query.Query) (string, []interface{}, error) {
	where, args, err := buildWhereClause(q)
	if err != nil {
		return "", nil, err
	}

	return expand(bindType, "SELECT COUNT(*) FROM "+salesTable+where, args)
}

// tableColumn qualifies a column with the table so ORDER BY sorts on the
// stored value rather than a same-named ::text output alias
func tableColumn(column string) string {
	return salesTable + "." + pq.QuoteIdentifier(column)
}

// expand spreads IN lists into one placeholder per value and rebinds for the driver
func expand(bindType int, stmt string, args []interface{}) (string, []interface{}, error) {
	stmt, args, err := sqlx.In(stmt, args...)
	if err != nil {
		return "", nil, fmt.Errorf("failed to expand query arguments: %w", err)
	}
	return sqlx.Rebind(bindType, stmt), args, nil
}
