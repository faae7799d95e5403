package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superstore/internal/delivery/http/middleware"
	"superstore/internal/delivery/http/validator"
	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	mockRepo "superstore/internal/mocks/repository"
	"superstore/internal/usecase/impl"
)

// handlerFixtures bundles an echo instance wired like the real server:
// request validator plus the error handler that maps application errors to
// status codes.
type handlerFixtures struct {
	echo   *echo.Echo
	errMW  *middleware.ErrorMiddleware
	logger *slog.Logger
}

func newHandlerFixtures(t *testing.T) handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = validator.New()

	return handlerFixtures{
		echo:   e,
		errMW:  middleware.NewErrorMiddleware(logger),
		logger: logger,
	}
}

// perform runs one handler call and routes any returned error through the
// error handler, the way the real server does.
func (fx handlerFixtures) perform(req *http.Request, handlerFunc echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	if err := handlerFunc(c); err != nil {
		fx.errMW.HandleHTTPError(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestCustomerHandler_List_All(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	repo.EXPECT().
		FindAll(mock.Anything).
		Return([]*entity.Customer{{CustomerID: "CG-12520", CustomerName: "Claire Gute"}}, nil)

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/customers", nil), handler.List)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CG-12520")
}

func TestCustomerHandler_List_ByID_NotFound(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	repo.EXPECT().
		FindByID(mock.Anything, "XX-00000").
		Return(nil, domainerrors.ErrCustomerNotFound)

	rec := fx.perform(httptest.NewRequest(http.MethodGet, "/customers?customerId=XX-00000", nil), handler.List)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CUSTOMER_NOT_FOUND")
}

func TestCustomerHandler_Create(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	body := `{"customerId":"CG-12520","customerName":"Claire Gute","segment":"Consumer","country":"United States","city":"Henderson","state":"Kentucky","postalCode":"42420","region":"South"}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/customers", body), handler.Create)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerHandler_Create_MissingRequiredField(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	// No store call is expected; validation fails first.
	body := `{"customerId":"CG-12520"}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/customers", body), handler.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestCustomerHandler_Create_Duplicate(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Customer")).
		Return(domainerrors.ErrDuplicateKey.WithDetails("customer already exists"))

	body := `{"customerId":"CG-12520","customerName":"Claire Gute","segment":"Consumer","country":"United States","city":"Henderson","state":"Kentucky","postalCode":"42420","region":"South"}`
	rec := fx.perform(jsonRequest(http.MethodPost, "/customers", body), handler.Create)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_KEY")
}

func TestCustomerHandler_Update_MissingIdentifier(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	// The identifier check fires before any store access.
	rec := fx.perform(jsonRequest(http.MethodPut, "/customers", `{"city":"Louisville"}`), handler.Update)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDENTIFIER")
}

func TestCustomerHandler_Update_OmittedKeysStayNil(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	repo.EXPECT().
		Update(mock.Anything, "CG-12520", mock.MatchedBy(func(patch repository.CustomerPatch) bool {
			return patch.City != nil && *patch.City == "Louisville" &&
				patch.CustomerName == nil && patch.State == nil
		})).
		Return(nil)

	rec := fx.perform(jsonRequest(http.MethodPut, "/customers?customerId=CG-12520", `{"city":"Louisville"}`), handler.Update)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerHandler_Delete_MissingIdentifier(t *testing.T) {
	fx := newHandlerFixtures(t)
	repo := mockRepo.NewMockCustomerRepository(t)
	handler := NewCustomerHandler(impl.NewCustomerService(repo), fx.logger)

	rec := fx.perform(httptest.NewRequest(http.MethodDelete, "/customers", nil), handler.Delete)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_IDENTIFIER")
}
