// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"superstore/internal/delivery/http/response"
	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

// CustomerHandler holds dependencies for the /customers resource.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// createCustomerRequest is the POST body. Every column is required; the
// table has no nullable fields.
type createCustomerRequest struct {
	CustomerID   string `json:"customerId" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Segment      string `json:"segment" validate:"required"`
	Country      string `json:"country" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostalCode   string `json:"postalCode" validate:"required"`
	Region       string `json:"region" validate:"required"`
}

// updateCustomerRequest is the PUT body. Omitted keys leave the stored
// value untouched.
type updateCustomerRequest struct {
	CustomerName *string `json:"customerName"`
	Segment      *string `json:"segment"`
	Country      *string `json:"country"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
	Region       *string `json:"region"`
}

// List returns all customers, or one when customerId is given.
func (h *CustomerHandler) List(c echo.Context) error {
	if customerID := c.QueryParam("customerId"); customerID != "" {
		customer, err := h.uc.GetCustomer(c.Request().Context(), customerID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, customer, "")
	}

	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customers, "")
}

// Create inserts a new customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed customer body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := &entity.Customer{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Segment:      req.Segment,
		Country:      req.Country,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Region:       req.Region,
	}

	if err := h.uc.CreateCustomer(c.Request().Context(), customer); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created")
}

// Update applies a partial update to one customer.
func (h *CustomerHandler) Update(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("customerId query parameter is required")
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed customer body")
	}

	patch := repository.CustomerPatch{
		CustomerName: req.CustomerName,
		Segment:      req.Segment,
		Country:      req.Country,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Region:       req.Region,
	}

	if err := h.uc.UpdateCustomer(c.Request().Context(), customerID, patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer updated")
}

// Delete removes one customer and, through the store's cascade rules, its
// orders and their sales.
func (h *CustomerHandler) Delete(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("customerId query parameter is required")
	}

	if err := h.uc.DeleteCustomer(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Customer deleted")
}
