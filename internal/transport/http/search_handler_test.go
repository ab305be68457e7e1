package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/composer"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/queries/search_products"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/repo"
)

type stubSearcher struct {
	rows     []contracts.ProductRow
	count    int64
	fetchErr error
	countErr error
}

func (s *stubSearcher) Fetch(context.Context, spanner.Statement) ([]contracts.ProductRow, error) {
	return s.rows, s.fetchErr
}

func (s *stubSearcher) Count(context.Context, spanner.Statement) (int64, error) {
	return s.count, s.countErr
}

type stubCategoryFinder struct {
	bounds contracts.CategoryBounds
	err    error
}

func (f *stubCategoryFinder) Bounds(context.Context, int64) (contracts.CategoryBounds, error) {
	return f.bounds, f.err
}

// newHandler wires a handler over a stubbed backend. The subtree filter
// only consults the category finder under full-tree mode, so that mode
// follows from whether a finder is given.
func newHandler(searcher *stubSearcher, finder contracts.CategoryFinder) *SearchHandler {
	cfg := contracts.SearchConfig{
		HomeCategoryID:  2,
		ShopID:          1,
		FullTree:        finder != nil,
		StockManagement: true,
	}
	query := search_products.NewQuery(composer.New(cfg, finder), searcher)
	return NewSearchHandler(query)
}

func TestSearchHandler_OK(t *testing.T) {
	searcher := &stubSearcher{
		count: 1,
		rows: []contracts.ProductRow{{
			IDProduct:     7,
			Name:          "Hummingbird printed t-shirt",
			Price:         40,
			ComputedPrice: 32,
			Quantity:      300,
			Condition:     "new",
		}},
	}
	handler := newHandler(searcher, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search?condition=new", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Count)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, int64(7), resp.Products[0].IDProduct)
	assert.Equal(t, 32.0, resp.Products[0].ComputedPrice)
}

func TestSearchHandler_EmptyResultKeepsProductsArray(t *testing.T) {
	handler := newHandler(&stubSearcher{count: 0}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[],"count":0}`, rec.Body.String())
}

func TestSearchHandler_MethodNotAllowed(t *testing.T) {
	handler := newHandler(&stubSearcher{}, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/search", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSearchHandler_UnknownCategory(t *testing.T) {
	finder := &stubCategoryFinder{err: domain.ErrCategoryNotFound}
	handler := newHandler(&stubSearcher{count: 1}, finder)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHandler_BackendFailure(t *testing.T) {
	searcher := &stubSearcher{
		countErr: &repo.QueryExecutionError{
			Op:   "count",
			Code: codes.Unavailable,
			Err:  context.DeadlineExceeded,
		},
	}
	handler := newHandler(searcher, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
