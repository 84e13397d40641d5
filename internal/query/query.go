package query

import (
	"strings"
)

// Column names of the sales table that the translator may reference
const (
	ColumnID              = "id"
	ColumnCustomerName    = "customer_name"
	ColumnPhoneNumber     = "phone_number"
	ColumnCustomerRegion  = "customer_region"
	ColumnGender          = "gender"
	ColumnAge             = "age"
	ColumnProductCategory = "product_category"
	ColumnTags            = "tags"
	ColumnPaymentMethod   = "payment_method"
	ColumnDate            = "date"
	ColumnQuantity        = "quantity"
)

// Operator is the comparison a Condition applies to its column
type Operator string

const (
	OpIn  Operator = "in"
	OpGte Operator = "gte"
	OpLte Operator = "lte"
)

// Condition is a single predicate. Conditions in a list are ANDed.
//
// Value is a []string for OpIn, an int for age bounds and a YYYY-MM-DD
// string for date bounds.
type Condition struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// SearchFilter matches rows where any of Fields contains Pattern,
// case-insensitively.
type SearchFilter struct {
	Fields  []string
	Pattern string
}

// FilterSpec is the parsed filter part of a list request. A nil or empty
// selection and a nil bound impose no constraint.
type FilterSpec struct {
	CustomerRegion  []string
	Gender          []string
	ProductCategory []string
	Tags            []string
	PaymentMethod   []string
	AgeMin          *int
	AgeMax          *int
	DateFrom        *string
	DateTo          *string
}

// Query is everything the store needs to serve one page of sales
type Query struct {
	Search     *SearchFilter
	Conditions []Condition
	Sort       Sort
	Window     Window
}

// Build translates a search term, filters, sort request and page into a Query
func Build(search string, filters FilterSpec, sortBy, sortOrder string, page, pageSize int) Query {
	return Query{
		Search:     BuildSearchFilter(search),
		Conditions: BuildFilters(filters),
		Sort:       ResolveSort(sortBy, sortOrder),
		Window:     NewWindow(page, pageSize),
	}
}

// BuildSearchFilter returns nil for a blank term. The trimmed term is
// embedded as-is: LIKE metacharacters in it are not escaped.
func BuildSearchFilter(term string) *SearchFilter {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	return &SearchFilter{
		Fields:  []string{ColumnCustomerName, ColumnPhoneNumber},
		Pattern: "%" + term + "%",
	}
}

// BuildFilters converts a FilterSpec into conditions in a fixed order:
// region, gender, age bounds, category, tags, payment method, date bounds.
func BuildFilters(filters FilterSpec) []Condition {
	conditions := make([]Condition, 0)

	conditions = appendIn(conditions, ColumnCustomerRegion, filters.CustomerRegion)
	conditions = appendIn(conditions, ColumnGender, filters.Gender)

	if filters.AgeMin != nil {
		conditions = append(conditions, Condition{Field: ColumnAge, Operator: OpGte, Value: *filters.AgeMin})
	}
	if filters.AgeMax != nil {
		conditions = append(conditions, Condition{Field: ColumnAge, Operator: OpLte, Value: *filters.AgeMax})
	}

	conditions = appendIn(conditions, ColumnProductCategory, filters.ProductCategory)
	conditions = appendIn(conditions, ColumnTags, filters.Tags)
	conditions = appendIn(conditions, ColumnPaymentMethod, filters.PaymentMethod)

	// Dates are fixed-width YYYY-MM-DD, so lexicographic order is date order
	if filters.DateFrom != nil {
		conditions = append(conditions, Condition{Field: ColumnDate, Operator: OpGte, Value: *filters.DateFrom})
	}
	if filters.DateTo != nil {
		conditions = append(conditions, Condition{Field: ColumnDate, Operator: OpLte, Value: *filters.DateTo})
	}

	return conditions
}

func appendIn(conditions []Condition, field string, values []string) []Condition {
	if len(values) == 0 {
		return conditions
	}

	set := make([]string, len(values))
	copy(set, values)

	return append(conditions, Condition{Field: field, Operator: OpIn, Value: set})
}
