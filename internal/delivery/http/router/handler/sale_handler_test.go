package handler

import (
	"context"
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

func TestSaleHandler_List_ByID(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	repo.EXPECT().
		FindByID(mock.Anything, int64(42)).
		Return(&entity.Sale{SalesID: 42, OrderID: "CA-2016-152156", ProductID: "FUR-BO-10001798", Sales: 261.96, Quantity: 2}, nil)

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/sales?salesId=42", nil), handler.List)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CA-2016-152156")
}

func TestSaleHandler_List_NonNumericID(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	// The parse failure is rejected before any store access.
	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/sales?salesId=abc", nil), handler.List)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_IDENTIFIER")
}

func TestSaleHandler_Create_ReturnsGeneratedID(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Run(func(ctx context.Context, sale *entity.Sale) {
			sale.SalesID = 9995
		}).
		Return(nil)

	body := `{"orderId":"CA-2016-152156","productId":"FUR-BO-10001798","sales":261.96,"quantity":2,"discount":0,"profit":41.9136}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/sales", body), handler.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "9995")
}

func TestSaleHandler_Create_ZeroQuantityRejected(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	body := `{"orderId":"CA-2016-152156","productId":"FUR-BO-10001798","sales":261.96,"quantity":0,"discount":0,"profit":41.9136}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/sales", body), handler.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestSaleHandler_Create_UnknownParent(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Sale")).
		Return(domainerrors.ErrInvalidReference.WithDetails("order or product does not exist"))

	body := `{"orderId":"XX-0000-000000","productId":"FUR-BO-10001798","sales":10,"quantity":1,"discount":0,"profit":1}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/sales", body), handler.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REFERENCE")
}

func TestSaleHandler_Update_MissingIdentifier(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	rec := fx.perform(jsonRequest(http.MethodPut, "/sales", `{"discount":0.2}`), handler.Update)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDENTIFIER")
}

func TestSaleHandler_Delete_NotFound(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockSaleRepository(t)
	handler := NewSaleHandler(impl.NewSaleService(repo), fx.logger)

	repo.EXPECT().
		Delete(mock.Anything, int64(404)).
		Return(domainerrors.ErrSaleNotFound)

	rec := fx.perform(httptest.NewRequest(http.MethodDelete, "/sales?salesId=404", nil), handler.Delete)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SALE_NOT_FOUND")
}
