package composer

import (
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/query"
)

// stockFilterName is the single operations group every stock predicate
// registers under; re-composition replaces prior content.
const stockFilterName = "with_stock_management"

// composeStock translates the stock-status facet into the
// with_stock_management operations group.
//
// out_of_stock values on a product row: 0 = deny orders at zero quantity,
// 1 = allow them, 2 = follow the global order-out-of-stock flag.
//
// Selections that cover every reachable state add no predicate: all three
// states, or not-available plus available, which together span the whole
// catalog. The same applies when stock management is globally disabled.
func (c *Composer) composeStock(b *query.Builder, selected []domain.StockStatus) {
	if !c.cfg.StockManagement {
		return
	}

	has := make(map[domain.StockStatus]bool, len(selected))
	for _, s := range selected {
		has[s] = true
	}
	if len(has) == 0 || len(has) >= domain.StockStatusCount {
		return
	}
	if has[domain.StockNotAvailable] && has[domain.StockAvailable] {
		return
	}

	var groups [][]query.Condition
	if has[domain.StockNotAvailable] {
		outOfStock := []interface{}{int64(0)}
		if !c.cfg.OrderOutOfStock {
			outOfStock = append(outOfStock, int64(2))
		}
		groups = append(groups, []query.Condition{
			query.Cmp(m_product.Quantity, query.OpLte, int64(0)),
			query.In(m_product.OutOfStock, outOfStock...),
		})
	}
	if has[domain.StockAvailable] {
		outOfStock := []interface{}{int64(1)}
		if c.cfg.OrderOutOfStock {
			outOfStock = append(outOfStock, int64(2))
		}
		groups = append(groups, []query.Condition{
			query.In(m_product.OutOfStock, outOfStock...),
			query.Cmp(m_product.Quantity, query.OpGt, int64(0)),
		})
	}
	if has[domain.StockInStock] {
		groups = append(groups, []query.Condition{
			query.Cmp(m_product.Quantity, query.OpGt, int64(0)),
		})
	}

	b.AddOperationsFilter(stockFilterName, groups)
}
