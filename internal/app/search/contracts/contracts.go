package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
)

// SearchConfig collects the shop configuration consulted while composing a
// search. It is resolved once at construction and passed in whole; the
// composer never reads configuration mid-algorithm.
type SearchConfig struct {
	// HomeCategoryID is the category used when a query names none.
	HomeCategoryID int64
	// ShopID scopes every search to one shop.
	ShopID int64
	// FullTree includes the whole subtree of the effective category
	// instead of products assigned to it directly.
	FullTree bool
	// FilterByDefaultCategory restricts the base population to products
	// whose default category is the effective category.
	FilterByDefaultCategory bool
	// StockManagement is the global stock management switch; when off the
	// stock facet is ignored entirely.
	StockManagement bool
	// OrderOutOfStock is the global flag allowing sale at zero quantity.
	OrderOutOfStock bool
	// GroupRestrictionActive enables group-based visibility filtering.
	GroupRestrictionActive bool
	// UserGroupIDs are the current user's groups; CurrentGroupID is the
	// fallback when the list is empty.
	UserGroupIDs   []int64
	CurrentGroupID int64
}

// CategoryBounds are the nested-set bounds of one category subtree.
type CategoryBounds struct {
	NLeft  int64
	NRight int64
}

// CategoryFinder resolves nested-set bounds for subtree containment
// filtering.
type CategoryFinder interface {
	// Bounds returns the bounds for categoryID, or
	// domain.ErrCategoryNotFound when no such category exists.
	Bounds(ctx context.Context, categoryID int64) (CategoryBounds, error)
}

// ProductRow is one product returned by a search.
type ProductRow struct {
	IDProduct     int64
	Name          string
	Price         float64
	ComputedPrice float64
	Quantity      int64
	Condition     string
	Weight        float64
	Position      int64
}

// SearchResult contains the paged product list plus the total match count.
type SearchResult struct {
	Products []ProductRow
	Count    int64
}

// ProductSearcher executes compiled search statements against the data
// store. Execution failures surface as *repo.QueryExecutionError and are
// never retried at this layer.
type ProductSearcher interface {
	// Fetch runs a row statement and returns the mapped product rows.
	Fetch(ctx context.Context, stmt spanner.Statement) ([]ProductRow, error)

	// Count runs a count statement and returns the total.
	Count(ctx context.Context, stmt spanner.Statement) (int64, error)
}
