package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_category"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_product"
)

// ProductFixture is one denormalized product row for the test catalog.
// Zero-value fields fall back to sensible storefront defaults in
// CreateTestProduct.
type ProductFixture struct {
	IDProduct         int64
	Name              string
	IDCategory        int64
	IDCategoryDefault int64
	IDManufacturer    int64
	IDGroup           int64
	IDFeatureValue    int64
	IDAttribute       int64
	Visibility        string
	Quantity          int64
	OutOfStock        int64
	Condition         string
	Weight            float64
	Price             float64
	NLeft             int64
	NRight            int64
	Position          int64
}

// CreateTestProduct inserts a product row, filling in catalog defaults for
// unset fixture fields. Every row lands in shop 1.
func CreateTestProduct(t *testing.T, client *spanner.Client, f ProductFixture) {
	t.Helper()

	if f.Visibility == "" {
		f.Visibility = m_product.VisibilityBoth
	}
	if f.Condition == "" {
		f.Condition = "new"
	}
	if f.IDCategoryDefault == 0 {
		f.IDCategoryDefault = f.IDCategory
	}

	mutation := spanner.InsertOrUpdateMap(m_product.TableName, map[string]interface{}{
		m_product.IDProduct:         f.IDProduct,
		m_product.Name:              f.Name,
		m_product.IDShop:            int64(1),
		m_product.IDCategory:        f.IDCategory,
		m_product.IDCategoryDefault: f.IDCategoryDefault,
		m_product.IDManufacturer:    f.IDManufacturer,
		m_product.IDGroup:           f.IDGroup,
		m_product.IDFeatureValue:    f.IDFeatureValue,
		m_product.IDAttribute:       f.IDAttribute,
		m_product.Visibility:        f.Visibility,
		m_product.Quantity:          f.Quantity,
		m_product.OutOfStock:        f.OutOfStock,
		m_product.Condition:         f.Condition,
		m_product.Weight:            f.Weight,
		m_product.Price:             f.Price,
		m_product.PriceMin:          f.Price,
		m_product.PriceMax:          f.Price,
		m_product.NLeft:             f.NLeft,
		m_product.NRight:            f.NRight,
		m_product.Position:          f.Position,
		m_product.DateAdd:           time.Now(),
	})

	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")
}

// CreateTestCategory inserts a category row with its nested-set interval.
func CreateTestCategory(t *testing.T, client *spanner.Client, id, nleft, nright, depth int64) {
	t.Helper()

	mutation := spanner.InsertOrUpdateMap(m_category.TableName, map[string]interface{}{
		m_category.IDCategory: id,
		m_category.NLeft:      nleft,
		m_category.NRight:     nright,
		m_category.LevelDepth: depth,
	})

	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test category")
}
