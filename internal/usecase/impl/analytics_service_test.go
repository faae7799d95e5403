package impl

import (
	"context"
	"testing"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	mockRepo "superstore/internal/mocks/repository"
	"superstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service    usecase.AnalyticsUsecase
	reportRepo *mockRepo.MockReportRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	service := NewAnalyticsService(reportRepo)

	return analyticsServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
	}
}

func TestAnalyticsService_OrderQuantityByProduct(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	groups := []*entity.ProductQuantity{
		{ProductID: "OFF-PA-10001970", TotalQuantity: 31},
		{ProductID: "FUR-CH-10002647", TotalQuantity: 20},
	}

	fx.reportRepo.EXPECT().
		OrderQuantityByProduct(ctx).
		Return(groups, nil)

	result, err := fx.service.OrderQuantityByProduct(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(31), result[0].TotalQuantity)
}

func TestAnalyticsService_SalesByCategory_RoundsToCents(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	// Summed float line amounts carry sub-cent noise.
	groups := []*entity.CategorySales{
		{Category: "Technology", TotalSales: 836154.03299999},
		{Category: "Furniture", TotalSales: 741999.79500001},
	}

	fx.reportRepo.EXPECT().
		SalesByCategory(ctx).
		Return(groups, nil)

	result, err := fx.service.SalesByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 836154.03, result[0].TotalSales)
	assert.Equal(t, 741999.8, result[1].TotalSales)
}

func TestAnalyticsService_SalesOverTime_RoundsToCents(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	groups := []*entity.MonthlySales{
		{Month: "2017-01", TotalSales: 14236.894999},
		{Month: "2017-02", TotalSales: 4519.892001},
	}

	fx.reportRepo.EXPECT().
		SalesOverTime(ctx).
		Return(groups, nil)

	result, err := fx.service.SalesOverTime(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2017-01", result[0].Month)
	assert.Equal(t, 14236.89, result[0].TotalSales)
	assert.Equal(t, 4519.89, result[1].TotalSales)
}

func TestAnalyticsService_SalesOverTime_QueryFailure(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()

	fx.reportRepo.EXPECT().
		SalesOverTime(ctx).
		Return(nil, domainerrors.ErrAggregationFailed)

	result, err := fx.service.SalesOverTime(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAggregationFailed))
}
