package api

import (
	"strconv"
	"strings"
	"time"

	"sales-browser/internal/query"
	"sales-browser/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// PageLimits bounds the page size accepted by the list endpoint.
// MaxPageSize 0 means no upper bound.
type PageLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// parseListSalesParams reads and validates the list query string. Absent
// or empty parameters impose no filter.
func parseListSalesParams(c *gin.Context, limits PageLimits) (service.ListSalesParams, error) {
	var params service.ListSalesParams
	var err error

	params.Search = c.Query("search")
	params.SortBy = c.DefaultQuery("sortBy", "date")
	params.SortOrder = c.DefaultQuery("sortOrder", query.DirectionDesc)

	params.Filters = query.FilterSpec{
		CustomerRegion:  splitList(c.Query("customerRegion")),
		Gender:          splitList(c.Query("gender")),
		ProductCategory: splitList(c.Query("productCategory")),
		Tags:            splitList(c.Query("tags")),
		PaymentMethod:   splitList(c.Query("paymentMethod")),
	}

	if params.Filters.AgeMin, err = parseAge(c, "ageMin"); err != nil {
		return params, err
	}
	if params.Filters.AgeMax, err = parseAge(c, "ageMax"); err != nil {
		return params, err
	}
	if params.Filters.DateFrom, err = parseDate(c, "dateFrom"); err != nil {
		return params, err
	}
	if params.Filters.DateTo, err = parseDate(c, "dateTo"); err != nil {
		return params, err
	}

	if params.Page, err = parsePositive(c, "page", 1); err != nil {
		return params, err
	}
	if params.PageSize, err = parsePositive(c, "pageSize", limits.DefaultPageSize); err != nil {
		return params, err
	}
	if limits.MaxPageSize > 0 && params.PageSize > limits.MaxPageSize {
		return params, &service.ValidationError{
			Field:   "pageSize",
			Message: "must not exceed " + strconv.Itoa(limits.MaxPageSize),
		}
	}
	if !query.WindowFits(params.Page, params.PageSize) {
		return params, &service.ValidationError{
			Field:   "page",
			Message: "is out of range for pageSize " + strconv.Itoa(params.PageSize),
		}
	}

	return params, nil
}

// splitList splits a comma-joined selection, dropping blank entries
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func parseAge(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	age, err := strconv.Atoi(raw)
	if err != nil || age < 0 {
		return nil, &service.ValidationError{Field: name, Message: "must be a non-negative integer"}
	}
	return &age, nil
}

func parseDate(c *gin.Context, name string) (*string, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	if _, err := time.Parse(dateLayout, raw); err != nil {
		return nil, &service.ValidationError{Field: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &raw, nil
}

func parsePositive(c *gin.Context, name string, defaultVal int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		if defaultVal < 1 {
			defaultVal = 1
		}
		return defaultVal, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, &service.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return v, nil
}
