package postgres

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
)

func TestSaleRepository_Create_FillsGeneratedID(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	fx.seedChain(t, ctx, "CG-12520", "FUR-BO-10001798", "CA-2017-152156")

	sale := &entity.Sale{OrderID: "CA-2017-152156", ProductID: "FUR-BO-10001798", Sales: 261.96, Quantity: 2, Profit: 41.91}
	require.NoError(t, fx.sales.Create(ctx, sale))
	assert.NotZero(t, sale.SalesID)

	found, err := fx.sales.FindByID(ctx, sale.SalesID)
	require.NoError(t, err)
	assert.Equal(t, sale, found)
}

func TestSaleRepository_Create_UnknownParents(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	sale := &entity.Sale{OrderID: "NO-SUCH-ORDER", ProductID: "NO-SUCH-PRODUCT", Sales: 10, Quantity: 1}
	err := fx.sales.Create(ctx, sale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestSaleRepository_Update_Partial(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	fx.seedChain(t, ctx, "CG-12520", "FUR-BO-10001798", "CA-2017-152156")
	sale := &entity.Sale{OrderID: "CA-2017-152156", ProductID: "FUR-BO-10001798", Sales: 261.96, Quantity: 2}
	require.NoError(t, fx.sales.Create(ctx, sale))

	quantity := 5
	discount := 0.2
	err := fx.sales.Update(ctx, sale.SalesID, repository.SalePatch{Quantity: &quantity, Discount: &discount})
	require.NoError(t, err)

	found, err := fx.sales.FindByID(ctx, sale.SalesID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.Quantity)
	assert.Equal(t, 0.2, found.Discount)
	assert.Equal(t, 261.96, found.Sales)
}

func TestSaleRepository_Update_MissingRow(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	quantity := 5
	err := fx.sales.Update(ctx, 9999, repository.SalePatch{Quantity: &quantity})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}

func TestSaleRepository_Delete(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	fx.seedChain(t, ctx, "CG-12520", "FUR-BO-10001798", "CA-2017-152156")
	sale := &entity.Sale{OrderID: "CA-2017-152156", ProductID: "FUR-BO-10001798", Sales: 261.96, Quantity: 2}
	require.NoError(t, fx.sales.Create(ctx, sale))

	require.NoError(t, fx.sales.Delete(ctx, sale.SalesID))

	_, err := fx.sales.FindByID(ctx, sale.SalesID)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))

	err = fx.sales.Delete(ctx, sale.SalesID)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}
