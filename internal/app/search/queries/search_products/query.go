package search_products

import (
	"context"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/composer"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/query"
)

// productColumns are the row columns every search selects. The reduction
// columns let the row mapper compute the effective price.
var productColumns = []string{
	m_product.IDProduct,
	m_product.Name,
	m_product.Price,
	m_product.Quantity,
	m_product.Condition,
	m_product.Weight,
	m_product.Position,
	m_product.ReductionType,
	m_product.Reduction,
	m_product.ReductionPrice,
	m_product.ReductionFrom,
	m_product.ReductionTo,
}

// Request carries one search invocation's validated query and facet
// selections.
type Request struct {
	Query   domain.ProductSearchQuery
	Filters domain.SelectedFilters
}

// Query assembles and executes a faceted product search.
type Query struct {
	composer *composer.Composer
	searcher contracts.ProductSearcher
}

// NewQuery creates a new product search query.
func NewQuery(c *composer.Composer, s contracts.ProductSearcher) *Query {
	return &Query{
		composer: c,
		searcher: s,
	}
}

// Execute runs the search and returns the paged product list plus total
// match count. A fresh builder is composed per call; nothing is shared
// across invocations.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.SearchResult, error) {
	b := query.From(m_product.TableName, m_product.IDProduct)
	if err := q.composer.Compose(ctx, b, req.Query.CategoryID, req.Filters); err != nil {
		return nil, err
	}

	sortField := domain.ValidateSortField(req.Query.SortField)
	direction := query.Asc
	if domain.ValidateSortDirection(req.Query.SortDir) == domain.SortDesc {
		direction = query.Desc
	}

	b.AddSelect(productColumns...)
	orderField := sortField
	if sortField == m_product.Price || req.Filters.HasPriceFilter() {
		// Price sorting and filtering both work on the reduced price, so
		// the computed-price expression joins the select list and replaces
		// the physical order field.
		b.AddSelect(m_product.ComputedPriceExpr)
		if sortField == m_product.Price {
			orderField = m_product.ComputedPrice
		}
	}

	pageSize := req.Query.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	b.OrderBy(orderField, direction).
		Limit(pageSize).
		Offset(req.Query.Offset())
	b.AddGroupBy(m_product.IDProduct)

	total, err := q.searcher.Count(ctx, b.BuildCount())
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &contracts.SearchResult{Products: []contracts.ProductRow{}}, nil
	}

	rows, err := q.searcher.Fetch(ctx, b.Build())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []contracts.ProductRow{}
	}

	return &contracts.SearchResult{
		Products: rows,
		Count:    total,
	}, nil
}
