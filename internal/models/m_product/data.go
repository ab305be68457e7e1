package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a database row returned by a product search.
// Only columns present in the statement's select list are populated.
type Data struct {
	IDProduct      int64               `spanner:"id_product"`
	Name           string              `spanner:"name"`
	Price          float64             `spanner:"price"`
	Quantity       int64               `spanner:"quantity"`
	OutOfStock     int64               `spanner:"out_of_stock"`
	Condition      string              `spanner:"condition"`
	Weight         float64             `spanner:"weight"`
	Position       int64               `spanner:"position"`
	DateAdd        time.Time           `spanner:"date_add"`
	ReductionType  spanner.NullString  `spanner:"reduction_type"`
	Reduction      spanner.NullFloat64 `spanner:"reduction"`
	ReductionPrice spanner.NullFloat64 `spanner:"reduction_price"`
	ReductionFrom  spanner.NullTime    `spanner:"reduction_from"`
	ReductionTo    spanner.NullTime    `spanner:"reduction_to"`
	ComputedPrice  spanner.NullFloat64 `spanner:"computed_price"`
}
