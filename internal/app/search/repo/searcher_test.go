package repo

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
)

var mappingNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func baseData() *m_product.Data {
	return &m_product.Data{
		IDProduct: 7,
		Name:      "Hummingbird printed t-shirt",
		Price:     40,
		Quantity:  300,
		Condition: "new",
		Weight:    0.3,
		Position:  1,
	}
}

func TestRowFromData_NoReduction(t *testing.T) {
	row := rowFromData(baseData(), mappingNow)

	assert.Equal(t, int64(7), row.IDProduct)
	assert.Equal(t, "Hummingbird printed t-shirt", row.Name)
	assert.Equal(t, 40.0, row.Price)
	assert.Equal(t, 40.0, row.ComputedPrice)
	assert.Equal(t, int64(300), row.Quantity)
	assert.Equal(t, "new", row.Condition)
}

func TestRowFromData_ActivePercentageReduction(t *testing.T) {
	data := baseData()
	data.ReductionType = spanner.NullString{StringVal: "percentage", Valid: true}
	data.Reduction = spanner.NullFloat64{Float64: 0.2, Valid: true}
	data.ReductionFrom = spanner.NullTime{Time: mappingNow.AddDate(0, 0, -1), Valid: true}
	data.ReductionTo = spanner.NullTime{Time: mappingNow.AddDate(0, 0, 1), Valid: true}

	row := rowFromData(data, mappingNow)
	assert.Equal(t, 40.0, row.Price)
	assert.InDelta(t, 32.0, row.ComputedPrice, 1e-9)
}

func TestRowFromData_ActiveAmountReduction(t *testing.T) {
	data := baseData()
	data.ReductionType = spanner.NullString{StringVal: "amount", Valid: true}
	data.ReductionPrice = spanner.NullFloat64{Float64: 29.9, Valid: true}

	// Null window on both sides means always active.
	row := rowFromData(data, mappingNow)
	assert.InDelta(t, 29.9, row.ComputedPrice, 1e-9)
}

func TestRowFromData_ExpiredReduction(t *testing.T) {
	data := baseData()
	data.ReductionType = spanner.NullString{StringVal: "percentage", Valid: true}
	data.Reduction = spanner.NullFloat64{Float64: 0.2, Valid: true}
	data.ReductionTo = spanner.NullTime{Time: mappingNow.AddDate(0, -1, 0), Valid: true}

	row := rowFromData(data, mappingNow)
	assert.Equal(t, 40.0, row.ComputedPrice)
}

func TestReductionFromData_MalformedRowsYieldNoReduction(t *testing.T) {
	t.Run("no type", func(t *testing.T) {
		assert.Nil(t, reductionFromData(baseData()))
	})

	t.Run("unknown type", func(t *testing.T) {
		data := baseData()
		data.ReductionType = spanner.NullString{StringVal: "coupon", Valid: true}
		assert.Nil(t, reductionFromData(data))
	})

	t.Run("percentage without rate", func(t *testing.T) {
		data := baseData()
		data.ReductionType = spanner.NullString{StringVal: "percentage", Valid: true}
		assert.Nil(t, reductionFromData(data))
	})

	t.Run("percentage with rate out of range", func(t *testing.T) {
		data := baseData()
		data.ReductionType = spanner.NullString{StringVal: "percentage", Valid: true}
		data.Reduction = spanner.NullFloat64{Float64: 1.7, Valid: true}
		assert.Nil(t, reductionFromData(data))
	})

	t.Run("amount without price", func(t *testing.T) {
		data := baseData()
		data.ReductionType = spanner.NullString{StringVal: "amount", Valid: true}
		assert.Nil(t, reductionFromData(data))
	})
}

func TestExecError_ClassifiesByStatusCode(t *testing.T) {
	cause := status.Error(codes.DeadlineExceeded, "deadline exceeded")
	err := execError("fetch", cause)

	var execErr *QueryExecutionError
	assert.ErrorAs(t, err, &execErr)
	assert.Equal(t, "fetch", execErr.Op)
	assert.Equal(t, codes.DeadlineExceeded, execErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestExecError_UnknownCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := execError("count", cause)

	var execErr *QueryExecutionError
	assert.ErrorAs(t, err, &execErr)
	assert.Equal(t, codes.Unknown, execErr.Code)
	assert.ErrorIs(t, err, cause)
}
