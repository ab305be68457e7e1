package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/contracts"
	"github.com/Hlavtox/ps-facetedsearch/internal/app/search/domain"
	"github.com/Hlavtox/ps-facetedsearch/internal/models/m_category"
)

// CategoryRepo resolves category nested-set bounds from Spanner.
type CategoryRepo struct {
	client *spanner.Client
}

// NewCategoryRepo creates a new CategoryFinder implementation.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryFinder {
	return &CategoryRepo{
		client: client,
	}
}

// Bounds returns the nested-set bounds for categoryID.
func (r *CategoryRepo) Bounds(ctx context.Context, categoryID int64) (contracts.CategoryBounds, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, []string{
		m_category.NLeft,
		m_category.NRight,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return contracts.CategoryBounds{}, domain.ErrCategoryNotFound
		}
		return contracts.CategoryBounds{}, execError("category bounds", err)
	}

	var bounds contracts.CategoryBounds
	if err := row.Columns(&bounds.NLeft, &bounds.NRight); err != nil {
		return contracts.CategoryBounds{}, fmt.Errorf("failed to parse category bounds: %w", err)
	}
	return bounds, nil
}
