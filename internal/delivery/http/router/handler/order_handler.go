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

// OrderHandler holds dependencies for the /orders resource.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// createOrderRequest is the POST body. Dates arrive as "YYYY-MM-DD".
type createOrderRequest struct {
	OrderID    string      `json:"orderId" validate:"required"`
	OrderDate  entity.Date `json:"orderDate" validate:"required"`
	ShipDate   entity.Date `json:"shipDate" validate:"required"`
	ShipMode   string      `json:"shipMode" validate:"required"`
	CustomerID string      `json:"customerId" validate:"required"`
}

type updateOrderRequest struct {
	OrderDate  *entity.Date `json:"orderDate"`
	ShipDate   *entity.Date `json:"shipDate"`
	ShipMode   *string      `json:"shipMode"`
	CustomerID *string      `json:"customerId"`
}

// List returns all orders, or one when orderId is given.
func (h *OrderHandler) List(c echo.Context) error {
	if orderID := c.QueryParam("orderId"); orderID != "" {
		order, err := h.uc.GetOrder(c.Request().Context(), orderID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, order, "")
	}

	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Create inserts a new order. The referenced customer must exist.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed order body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order := &entity.Order{
		OrderID:    req.OrderID,
		OrderDate:  req.OrderDate,
		ShipDate:   req.ShipDate,
		ShipMode:   req.ShipMode,
		CustomerID: req.CustomerID,
	}

	if err := h.uc.CreateOrder(c.Request().Context(), order); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// Update applies a partial update to one order.
func (h *OrderHandler) Update(c echo.Context) error {
	orderID := c.QueryParam("orderId")
	if orderID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("orderId query parameter is required")
	}

	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed order body")
	}

	patch := repository.OrderPatch{
		OrderDate:  req.OrderDate,
		ShipDate:   req.ShipDate,
		ShipMode:   req.ShipMode,
		CustomerID: req.CustomerID,
	}

	if err := h.uc.UpdateOrder(c.Request().Context(), orderID, patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order updated")
}

// Delete removes one order and its sale line items.
func (h *OrderHandler) Delete(c echo.Context) error {
	orderID := c.QueryParam("orderId")
	if orderID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("orderId query parameter is required")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}
