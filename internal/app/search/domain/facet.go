package domain

// StockStatus is one selectable stock availability state.
type StockStatus int64

const (
	// StockNotAvailable matches products that cannot be bought right now.
	StockNotAvailable StockStatus = 0
	// StockAvailable matches products that can be bought, in stock or on order.
	StockAvailable StockStatus = 1
	// StockInStock matches products with positive quantity.
	StockInStock StockStatus = 2
)

// StockStatusCount is the number of known stock states. Selecting every
// state is treated as no filter at all.
const StockStatusCount = 3

// ProductCondition is a product condition facet value.
type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsed        ProductCondition = "used"
	ConditionRefurbished ProductCondition = "refurbished"
)

// ConditionCount is the number of known condition values. As with stock
// states, selecting all of them is equivalent to no filter.
const ConditionCount = 3

// KnownCondition reports whether code is a recognized condition value.
func KnownCondition(code ProductCondition) bool {
	switch code {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	}
	return false
}

// Range is a numeric facet interval. A nil bound imposes no constraint on
// that side.
type Range struct {
	Min *float64
	Max *float64
}

// Empty reports whether neither bound is set.
func (r Range) Empty() bool {
	return r.Min == nil && r.Max == nil
}

// SelectedFilters holds one request's facet selections. Each facet kind
// keeps its own value shape so translation into predicates is exhaustive.
// An empty or nil facet means the facet is not filtered on.
type SelectedFilters struct {
	Categories    []int64
	Manufacturers []int64
	Conditions    []ProductCondition
	Quantities    []StockStatus
	Features      map[int64][]int64
	Attributes    map[int64][]int64
	Weight        *Range
	Price         *Range
}

// HasPriceFilter reports whether a price range with at least one bound was
// selected.
func (f SelectedFilters) HasPriceFilter() bool {
	return f.Price != nil && !f.Price.Empty()
}
