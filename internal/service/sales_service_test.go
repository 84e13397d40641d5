package service

import (
	"context"
	"errors"
	"testing"

	"sales-browser/internal/models"
	"sales-browser/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeStore struct {
	sales  []models.Sale
	facets []models.SaleFacets
	err    error

	lastQuery query.Query
	calls     int
}

// FindSales applies only the window; filtering is the database's job
func (f *fakeStore) FindSales(_ context.Context, q query.Query) ([]models.Sale, int, error) {
	f.calls++
	f.lastQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}

	from, to := q.Window.Offset(), q.Window.Offset()+q.Window.Limit()
	if from >= len(f.sales) {
		return nil, len(f.sales), nil
	}
	if to > len(f.sales) {
		to = len(f.sales)
	}
	return f.sales[from:to], len(f.sales), nil
}

func (f *fakeStore) ListFacets(_ context.Context) ([]models.SaleFacets, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.facets, nil
}

func newTestService(t *testing.T, store SaleStore) *SalesService {
	svc := NewSalesService(store)
	svc.logger = zaptest.NewLogger(t)
	return svc
}

func makeSales(n int) []models.Sale {
	sales := make([]models.Sale, n)
	for i := range sales {
		sales[i] = models.Sale{ID: string(rune('a' + i%26)), Quantity: 1, Date: "2023-01-01"}
	}
	return sales
}

func str(v string) *string { return &v }

func TestListSalesEnvelope(t *testing.T) {
	store := &fakeStore{sales: makeSales(25)}
	svc := newTestService(t, store)

	resp, err := svc.ListSales(context.Background(), ListSalesParams{
		Search:    "ali",
		Filters:   query.FilterSpec{CustomerRegion: []string{"North", "South"}},
		SortBy:    "quantity",
		SortOrder: "asc",
		Page:      3,
		PageSize:  10,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 5)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, 3, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)

	q := store.lastQuery
	require.NotNil(t, q.Search)
	assert.Equal(t, "%ali%", q.Search.Pattern)
	assert.Equal(t, query.Sort{Column: query.ColumnQuantity, Ascending: true}, q.Sort)
	assert.Equal(t, query.Window{From: 20, To: 29}, q.Window)
	require.Len(t, q.Conditions, 1)
	assert.Equal(t, query.ColumnCustomerRegion, q.Conditions[0].Field)
	assert.ElementsMatch(t, []string{"North", "South"}, q.Conditions[0].Value)
}

func TestListSalesEmptyResult(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	resp, err := svc.ListSales(context.Background(), ListSalesParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 0, resp.Total)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestListSalesPageBeyondLast(t *testing.T) {
	svc := newTestService(t, &fakeStore{sales: makeSales(30)})

	resp, err := svc.ListSales(context.Background(), ListSalesParams{Page: 5, PageSize: 10})
	require.NoError(t, err)

	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 30, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 5, resp.Page)
}

func TestListSalesStoreFailure(t *testing.T) {
	cause := errors.New("connection refused")
	store := &fakeStore{err: cause}
	svc := newTestService(t, store)

	resp, err := svc.ListSales(context.Background(), ListSalesParams{Page: 1, PageSize: 10})
	assert.Nil(t, resp)
	require.Error(t, err)

	var qf *QueryFailedError
	require.True(t, errors.As(err, &qf))
	assert.Equal(t, "list_sales", qf.Operation)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Equal(t, 1, store.calls, "store must not be retried")
}

func TestGetFilterOptions(t *testing.T) {
	store := &fakeStore{facets: []models.SaleFacets{
		{CustomerRegion: str("South"), Gender: str("Male"), ProductCategory: str("Clothing"), Tags: str("casual"), PaymentMethod: str("UPI")},
		{CustomerRegion: str("North"), Gender: str("Female"), ProductCategory: str("Beauty"), Tags: str("organic"), PaymentMethod: str("Cash")},
		{CustomerRegion: str("South"), Gender: nil, ProductCategory: str(""), Tags: str("casual"), PaymentMethod: str("Credit Card")},
		{},
	}}
	svc := newTestService(t, store)

	opts, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &models.FilterOptions{
		CustomerRegion:  []string{"North", "South"},
		Gender:          []string{"Female", "Male"},
		ProductCategory: []string{"Beauty", "Clothing"},
		Tags:            []string{"casual", "organic"},
		PaymentMethod:   []string{"Cash", "Credit Card", "UPI"},
	}, opts)
}

func TestGetFilterOptionsIdempotent(t *testing.T) {
	store := &fakeStore{facets: []models.SaleFacets{
		{CustomerRegion: str("West"), Tags: str("b")},
		{CustomerRegion: str("East"), Tags: str("a")},
	}}
	svc := newTestService(t, store)

	first, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)
	second, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, store.calls)
}

func TestGetFilterOptionsEmptyStore(t *testing.T) {
	svc := newTestService(t, &fakeStore{})

	opts, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, opts.CustomerRegion)
	assert.Empty(t, opts.CustomerRegion)
	assert.Empty(t, opts.PaymentMethod)
}

func TestGetFilterOptionsStoreFailure(t *testing.T) {
	svc := newTestService(t, &fakeStore{err: errors.New("timeout")})

	opts, err := svc.GetFilterOptions(context.Background())
	assert.Nil(t, opts)

	var qf *QueryFailedError
	require.ErrorAs(t, err, &qf)
	assert.Equal(t, "filter_options", qf.Operation)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "page", Message: "must be a positive integer"}
	assert.Equal(t, "invalid page: must be a positive integer", err.Error())
	assert.False(t, errors.Is(err, ErrQueryFailed))
}
