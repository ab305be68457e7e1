package composer

import (
	"context"
	"fmt"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/query"
)

// Composer translates selected facet filters plus shop context into query
// builder state. One Compose call establishes the filtered product
// population a search executes against.
type Composer struct {
	cfg        contracts.SearchConfig
	categories contracts.CategoryFinder
}

// New creates a Composer bound to one shop configuration.
func New(cfg contracts.SearchConfig, categories contracts.CategoryFinder) *Composer {
	return &Composer{
		cfg:        cfg,
		categories: categories,
	}
}

// Compose applies base filters, facet filters and finalization rules to b,
// leaving it holding the filtered population. Facets with empty value sets
// are skipped; facet application order does not affect the outcome beyond
// generated parameter numbering.
func (c *Composer) Compose(ctx context.Context, b *query.Builder, categoryID int64, f domain.SelectedFilters) error {
	effective := categoryID
	if effective == 0 {
		effective = c.cfg.HomeCategoryID
	}

	if !c.cfg.FullTree {
		b.AddFilter(m_product.IDCategory, []interface{}{effective}, query.OpEq)
	}
	if c.cfg.FilterByDefaultCategory {
		b.AddFilter(m_product.IDCategoryDefault, []interface{}{effective}, query.OpEq)
	}
	b.AddFilter(m_product.Visibility, []interface{}{m_product.VisibilityBoth, m_product.VisibilityCatalog}, query.OpEq)
	if c.cfg.GroupRestrictionActive {
		groups := c.cfg.UserGroupIDs
		if len(groups) == 0 {
			groups = []int64{c.cfg.CurrentGroupID}
		}
		addFilter(b, m_product.IDGroup, int64Values(groups))
	}

	categorySelected := c.composeFacets(b, f)

	if !categorySelected && c.cfg.FullTree && effective > 0 {
		bounds, err := c.categories.Bounds(ctx, effective)
		if err != nil {
			return fmt.Errorf("resolve category %d bounds: %w", effective, err)
		}
		b.AddFilter(m_product.NLeft, []interface{}{bounds.NLeft}, query.OpGte)
		b.AddFilter(m_product.NRight, []interface{}{bounds.NRight}, query.OpLte)
	}
	b.AddFilter(m_product.IDShop, []interface{}{c.cfg.ShopID}, query.OpEq)
	b.AddGroupBy(m_product.IDProduct)
	b.UseFiltersAsInitialPopulation()

	return nil
}

// composeFacets translates every selected facet. Reports whether an
// explicit category facet was applied, since that suppresses the subtree
// finalization filter.
func (c *Composer) composeFacets(b *query.Builder, f domain.SelectedFilters) bool {
	for id, values := range f.Features {
		if len(values) == 0 {
			continue
		}
		b.AddOperationsFilter(fmt.Sprintf("with_features_%d", id), [][]query.Condition{
			{query.In(m_product.IDFeatureValue, int64Values(values)...)},
		})
	}
	for id, values := range f.Attributes {
		if len(values) == 0 {
			continue
		}
		b.AddOperationsFilter(fmt.Sprintf("with_attributes_%d", id), [][]query.Condition{
			{query.In(m_product.IDAttribute, int64Values(values)...)},
		})
	}

	categorySelected := false
	if len(f.Categories) > 0 {
		addFilter(b, m_product.IDCategory, int64Values(f.Categories))
		// An explicit category selection overrides the default-category
		// init filter; keeping both would double-restrict.
		b.ResetFilter(m_product.IDCategoryDefault)
		categorySelected = true
	}

	c.composeStock(b, f.Quantities)

	addFilter(b, m_product.IDManufacturer, int64Values(f.Manufacturers))

	if n := knownConditions(f.Conditions); len(n) > 0 && len(n) < domain.ConditionCount {
		values := make([]interface{}, 0, len(n))
		for _, cond := range n {
			values = append(values, string(cond))
		}
		b.AddFilter(m_product.Condition, values, query.OpEq)
	}

	if f.Weight != nil {
		if f.Weight.Min != nil {
			b.AddFilter(m_product.Weight, []interface{}{*f.Weight.Min}, query.OpGte)
		}
		if f.Weight.Max != nil {
			b.AddFilter(m_product.Weight, []interface{}{*f.Weight.Max}, query.OpLte)
		}
	}

	if f.HasPriceFilter() {
		c.addPriceRange(b, *f.Price)
	}

	return categorySelected
}

// addPriceRange compares against the per-product price_min/price_max
// columns, which hold the minimum and maximum price across the product's
// applicable reduction states. A product whose reduced price falls inside
// the range matches even when its base price does not, and vice versa.
// A blank bound defaults to 0.
func (c *Composer) addPriceRange(b *query.Builder, r domain.Range) {
	var lower, upper float64
	if r.Min != nil {
		lower = *r.Min
	}
	if r.Max != nil {
		upper = *r.Max
	}
	b.AddFilter(m_product.PriceMin, []interface{}{upper}, query.OpLte)
	b.AddFilter(m_product.PriceMax, []interface{}{lower}, query.OpGte)
}

// knownConditions de-duplicates and drops unrecognized condition codes.
func knownConditions(codes []domain.ProductCondition) []domain.ProductCondition {
	seen := make(map[domain.ProductCondition]bool, len(codes))
	out := make([]domain.ProductCondition, 0, len(codes))
	for _, code := range codes {
		if !domain.KnownCondition(code) || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// addFilter adds an ANY-of equality filter, flattening one level of nested
// value lists. Empty input adds nothing.
func addFilter(b *query.Builder, field string, values []interface{}) {
	flat := make([]interface{}, 0, len(values))
	for _, v := range values {
		switch nested := v.(type) {
		case []interface{}:
			flat = append(flat, nested...)
		case []int64:
			for _, n := range nested {
				flat = append(flat, n)
			}
		default:
			flat = append(flat, v)
		}
	}
	if len(flat) == 0 {
		return
	}
	b.AddFilter(field, flat, query.OpEq)
}

func int64Values(ids []int64) []interface{} {
	values := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return values
}
