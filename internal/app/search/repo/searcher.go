package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
	"github.com/Hlavtox/ps-facetedsearch/internal/pkg/clock"
)

// SpannerSearcher implements contracts.ProductSearcher for Spanner.
type SpannerSearcher struct {
	client *spanner.Client
	clk    clock.Clock
}

// NewSpannerSearcher creates a new ProductSearcher implementation.
func NewSpannerSearcher(client *spanner.Client, clk clock.Clock) contracts.ProductSearcher {
	return &SpannerSearcher{
		client: client,
		clk:    clk,
	}
}

// Fetch runs a row statement and maps the results into product rows.
func (s *SpannerSearcher) Fetch(ctx context.Context, stmt spanner.Statement) ([]contracts.ProductRow, error) {
	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	now := s.clk.Now()
	rows := make([]contracts.ProductRow, 0, 16)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, execError("fetch", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product row: %w", err)
		}

		rows = append(rows, rowFromData(&data, now))
	}

	return rows, nil
}

// Count runs a count statement and returns the total.
func (s *SpannerSearcher) Count(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return 0, nil
	}
	if err != nil {
		return 0, execError("count", err)
	}

	var total int64
	if err := row.Columns(&total); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return total, nil
}

// rowFromData maps a database row to a product row, computing the
// effective price from any reduction carried on the row.
func rowFromData(data *m_product.Data, now time.Time) contracts.ProductRow {
	base := domain.MoneyFromFloat(data.Price)
	computed := domain.ComputedPrice(base, reductionFromData(data), now)

	return contracts.ProductRow{
		IDProduct:     data.IDProduct,
		Name:          data.Name,
		Price:         data.Price,
		ComputedPrice: computed.Float64(),
		Quantity:      data.Quantity,
		Condition:     data.Condition,
		Weight:        data.Weight,
		Position:      data.Position,
	}
}

// reductionFromData rebuilds the row's reduction value object. Malformed
// reduction data is treated as no reduction rather than failing the row.
func reductionFromData(data *m_product.Data) *domain.Reduction {
	if !data.ReductionType.Valid {
		return nil
	}

	var from, to time.Time
	if data.ReductionFrom.Valid {
		from = data.ReductionFrom.Time
	}
	if data.ReductionTo.Valid {
		to = data.ReductionTo.Time
	}

	switch domain.ReductionType(data.ReductionType.StringVal) {
	case domain.ReductionPercentage:
		if !data.Reduction.Valid {
			return nil
		}
		reduction, err := domain.NewPercentageReduction(data.Reduction.Float64, from, to)
		if err != nil {
			return nil
		}
		return reduction
	case domain.ReductionAmount:
		if !data.ReductionPrice.Valid {
			return nil
		}
		reduction, err := domain.NewAmountReduction(domain.MoneyFromFloat(data.ReductionPrice.Float64), from, to)
		if err != nil {
			return nil
		}
		return reduction
	}
	return nil
}

// execError classifies a Spanner failure by its status code and wraps it
// as a fatal query execution error.
func execError(op string, err error) error {
	return &QueryExecutionError{
		Op:   op,
		Code: spanner.ErrCode(err),
		Err:  err,
	}
}
