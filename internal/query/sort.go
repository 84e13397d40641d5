package query

// Sort directions accepted on the wire
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

var sortableColumns = map[string]string{
	"date":          ColumnDate,
	"quantity":      ColumnQuantity,
	"customer_name": ColumnCustomerName,
}

// Sort is the resolved ordering directive. Rows that tie on Column are
// ordered by id ascending.
type Sort struct {
	Column    string
	Ascending bool
}

// ResolveSort never fails: unknown fields sort by date and anything other
// than "asc" sorts descending.
func ResolveSort(sortBy, sortOrder string) Sort {
	column, ok := sortableColumns[sortBy]
	if !ok {
		column = ColumnDate
	}

	return Sort{
		Column:    column,
		Ascending: sortOrder == DirectionAsc,
	}
}

// Direction returns the SQL keyword for the sort direction
func (s Sort) Direction() string {
	if s.Ascending {
		return "ASC"
	}
	return "DESC"
}

// IsSortable reports whether column is one of the sortable columns
func IsSortable(column string) bool {
	for _, c := range sortableColumns {
		if c == column {
			return true
		}
	}
	return false
}
