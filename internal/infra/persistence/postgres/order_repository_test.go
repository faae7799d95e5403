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

func TestOrderRepository_CreateAndFind_DateRoundTrip(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	require.NoError(t, fx.customers.Create(ctx, testCustomer("CG-12520")))

	order := testOrder("CA-2017-152156", "CG-12520", entity.NewDate(2017, 11, 8))
	require.NoError(t, fx.orders.Create(ctx, order))

	found, err := fx.orders.FindByID(ctx, "CA-2017-152156")
	require.NoError(t, err)
	assert.Equal(t, entity.NewDate(2017, 11, 8), found.OrderDate)
	assert.Equal(t, "CG-12520", found.CustomerID)
}

func TestOrderRepository_Create_UnknownCustomer(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	order := testOrder("CA-2017-152156", "XX-00000", entity.NewDate(2017, 11, 8))
	err := fx.orders.Create(ctx, order)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestOrderRepository_Update_ReassignCustomer(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	require.NoError(t, fx.customers.Create(ctx, testCustomer("CG-12520")))
	require.NoError(t, fx.customers.Create(ctx, testCustomer("DV-13045")))
	require.NoError(t, fx.orders.Create(ctx, testOrder("CA-2017-152156", "CG-12520", entity.NewDate(2017, 11, 8))))

	newCustomer := "DV-13045"
	newShip := entity.NewDate(2017, 11, 12)
	err := fx.orders.Update(ctx, "CA-2017-152156", repository.OrderPatch{
		CustomerID: &newCustomer,
		ShipDate:   &newShip,
	})
	require.NoError(t, err)

	found, err := fx.orders.FindByID(ctx, "CA-2017-152156")
	require.NoError(t, err)
	assert.Equal(t, "DV-13045", found.CustomerID)
	assert.Equal(t, newShip, found.ShipDate)
	assert.Equal(t, entity.NewDate(2017, 11, 8), found.OrderDate)
}

func TestOrderRepository_Update_UnknownCustomerReference(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	require.NoError(t, fx.customers.Create(ctx, testCustomer("CG-12520")))
	require.NoError(t, fx.orders.Create(ctx, testOrder("CA-2017-152156", "CG-12520", entity.NewDate(2017, 11, 8))))

	ghost := "XX-00000"
	err := fx.orders.Update(ctx, "CA-2017-152156", repository.OrderPatch{CustomerID: &ghost})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestOrderRepository_Delete_CascadesToSales(t *testing.T) {
	fx := newRepoFixtures(t)
	ctx := context.Background()

	fx.seedChain(t, ctx, "CG-12520", "FUR-BO-10001798", "CA-2017-152156")
	sale := &entity.Sale{OrderID: "CA-2017-152156", ProductID: "FUR-BO-10001798", Sales: 261.96, Quantity: 2}
	require.NoError(t, fx.sales.Create(ctx, sale))

	require.NoError(t, fx.orders.Delete(ctx, "CA-2017-152156"))

	_, err := fx.sales.FindByID(ctx, sale.SalesID)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))

	// The customer is untouched by the cascade.
	_, err = fx.customers.FindByID(ctx, "CG-12520")
	assert.NoError(t, err)
}
