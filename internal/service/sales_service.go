package service

import (
	"context"
	"sort"
	"time"

	"sales-browser/internal/models"
	"sales-browser/internal/query"
	"sales-browser/internal/util"

	"go.uber.org/zap"
)

// SaleStore is the storage collaborator the sales service reads from
type SaleStore interface {
	FindSales(ctx context.Context, q query.Query) ([]models.Sale, int, error)
	ListFacets(ctx context.Context) ([]models.SaleFacets, error)
}

// SalesService executes sales list and filter option queries
type SalesService struct {
	store  SaleStore
	logger *zap.Logger
}

// NewSalesService creates a new sales service
func NewSalesService(store SaleStore) *SalesService {
	return &SalesService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// ListSalesParams is a validated list request. Page and PageSize must be >= 1.
type ListSalesParams struct {
	Search    string
	Filters   query.FilterSpec
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ListSalesResponse is one page of sales with pagination metadata
type ListSalesResponse struct {
	Data       []models.Sale `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ListSales returns the requested page of sales matching the search and filters
func (s *SalesService) ListSales(ctx context.Context, params ListSalesParams) (*ListSalesResponse, error) {
	ctx, span := util.StartSpan(ctx, "SalesService.ListSales")
	defer span.End()

	const operation = "list_sales"
	start := time.Now()
	defer func() {
		util.SalesQueryLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	q := query.Build(params.Search, params.Filters, params.SortBy, params.SortOrder, params.Page, params.PageSize)

	sales, total, err := s.store.FindSales(ctx, q)
	if err != nil {
		util.SalesQueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, &QueryFailedError{Operation: operation, Cause: err}
	}

	util.SalesQueriesTotal.WithLabelValues(operation, "ok").Inc()
	util.SalesRowsReturned.Observe(float64(len(sales)))

	if sales == nil {
		sales = []models.Sale{}
	}

	s.logger.Debug("Sales listed",
		zap.Int("page", params.Page),
		zap.Int("page_size", params.PageSize),
		zap.Int("conditions", len(q.Conditions)),
		zap.Bool("search", q.Search != nil),
		zap.Int("rows", len(sales)),
		zap.Int("total", total))

	return &ListSalesResponse{
		Data:       sales,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: query.TotalPages(total, params.PageSize),
	}, nil
}

// GetFilterOptions returns the distinct values of each categorical field,
// sorted ascending. It scans every row on each call.
func (s *SalesService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	ctx, span := util.StartSpan(ctx, "SalesService.GetFilterOptions")
	defer span.End()

	const operation = "filter_options"
	start := time.Now()
	defer func() {
		util.SalesQueryLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	facets, err := s.store.ListFacets(ctx)
	if err != nil {
		util.SalesQueriesTotal.WithLabelValues(operation, "error").Inc()
		return nil, &QueryFailedError{Operation: operation, Cause: err}
	}

	util.SalesQueriesTotal.WithLabelValues(operation, "ok").Inc()

	regions := newValueSet()
	genders := newValueSet()
	categories := newValueSet()
	tags := newValueSet()
	payments := newValueSet()

	for _, f := range facets {
		regions.add(f.CustomerRegion)
		genders.add(f.Gender)
		categories.add(f.ProductCategory)
		tags.add(f.Tags)
		payments.add(f.PaymentMethod)
	}

	s.logger.Debug("Filter options computed", zap.Int("rows_scanned", len(facets)))

	return &models.FilterOptions{
		CustomerRegion:  regions.sorted(),
		Gender:          genders.sorted(),
		ProductCategory: categories.sorted(),
		Tags:            tags.sorted(),
		PaymentMethod:   payments.sorted(),
	}, nil
}

type valueSet map[string]struct{}

func newValueSet() valueSet {
	return make(valueSet)
}

// add ignores null and empty values
func (vs valueSet) add(v *string) {
	if v == nil || *v == "" {
		return
	}
	vs[*v] = struct{}{}
}

func (vs valueSet) sorted() []string {
	values := make([]string, 0, len(vs))
	for v := range vs {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
