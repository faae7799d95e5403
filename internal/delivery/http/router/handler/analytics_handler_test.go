package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	mockRepo "superstore/internal/mocks/repository"
	"superstore/internal/usecase/impl"
)

func TestAnalyticsHandler_OrderQuantity(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockReportRepository(t)
	handler := NewAnalyticsHandler(impl.NewAnalyticsService(repo), fx.logger)

	repo.EXPECT().
		OrderQuantityByProduct(mock.Anything).
		Return([]*entity.ProductQuantity{
			{ProductID: "TEC-AC-10003832", TotalQuantity: 75},
			{ProductID: "OFF-PA-10001970", TotalQuantity: 70},
		}, nil)

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/analytics/order-quantity", nil), handler.OrderQuantity)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "TEC-AC-10003832")
	assert.Contains(t, rec.Body.String(), `"totalQuantity":75`)
}

func TestAnalyticsHandler_SalesByCategory(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockReportRepository(t)
	handler := NewAnalyticsHandler(impl.NewAnalyticsService(repo), fx.logger)

	repo.EXPECT().
		SalesByCategory(mock.Anything).
		Return([]*entity.CategorySales{{Category: "Technology", TotalSales: 836154.033}}, nil)

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/analytics/sales-by-category", nil), handler.SalesByCategory)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Technology")
	assert.Contains(t, rec.Body.String(), `"totalSales":836154.03`)
}

func TestAnalyticsHandler_SalesOverTime_Failure(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockReportRepository(t)
	handler := NewAnalyticsHandler(impl.NewAnalyticsService(repo), fx.logger)

	repo.EXPECT().
		SalesOverTime(mock.Anything).
		Return(nil, domainerrors.ErrAggregationFailed.WithDetails("query failed"))

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/analytics/sales-over-time", nil), handler.SalesOverTime)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AGGREGATION_FAILED")
}
