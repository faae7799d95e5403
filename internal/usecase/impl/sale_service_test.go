package impl

import (
	"context"
	"testing"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	mockRepo "superstore/internal/mocks/repository"
	"superstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleServiceFixtures struct {
	service  usecase.SaleUsecase
	saleRepo *mockRepo.MockSaleRepository
}

func createTestSaleService(t *testing.T) saleServiceFixtures {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	service := NewSaleService(saleRepo)

	return saleServiceFixtures{
		service:  service,
		saleRepo: saleRepo,
	}
}

func TestSaleService_GetSale(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	stored := &entity.Sale{
		SalesID:   42,
		OrderID:   "CA-2017-152156",
		ProductID: "FUR-BO-10001798",
		Sales:     261.96,
		Quantity:  2,
	}

	fx.saleRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(stored, nil)

	sale, err := fx.service.GetSale(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), sale.SalesID)
	assert.Equal(t, "CA-2017-152156", sale.OrderID)
}

func TestSaleService_CreateSale_InvalidReference(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	sale := &entity.Sale{OrderID: "NO-SUCH-ORDER", ProductID: "NO-SUCH-PRODUCT", Sales: 10, Quantity: 1}

	fx.saleRepo.EXPECT().
		Create(ctx, sale).
		Return(domainerrors.ErrInvalidReference)

	err := fx.service.CreateSale(ctx, sale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidReference))
}

func TestSaleService_UpdateSale(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()
	profit := 12.5
	patch := repository.SalePatch{Profit: &profit}

	fx.saleRepo.EXPECT().
		Update(ctx, int64(42), patch).
		Return(nil)

	err := fx.service.UpdateSale(ctx, 42, patch)
	require.NoError(t, err)
}

func TestSaleService_DeleteSale_NotFound(t *testing.T) {
	fx := createTestSaleService(t)

	ctx := context.Background()

	fx.saleRepo.EXPECT().
		Delete(ctx, int64(9999)).
		Return(domainerrors.ErrSaleNotFound)

	err := fx.service.DeleteSale(ctx, 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSaleNotFound))
}
