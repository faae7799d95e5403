package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"superstore/internal/delivery/http/response"
	"superstore/internal/domain/entity"
	domainerrors "superstore/internal/domain/errors"
	"superstore/internal/domain/repository"
	"superstore/internal/usecase"
)

// SaleHandler holds dependencies for the /sales resource. Unlike the other
// resources the key is numeric and generated by the store.
type SaleHandler struct {
	uc     usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: logger}
}

// createSaleRequest is the POST body. Numeric fields are pointers so a
// legitimate zero (discount 0, profit 0) still passes the required check.
type createSaleRequest struct {
	OrderID   string   `json:"orderId" validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Sales     *float64 `json:"sales" validate:"required"`
	Quantity  *int     `json:"quantity" validate:"required,gt=0"`
	Discount  *float64 `json:"discount" validate:"required"`
	Profit    *float64 `json:"profit" validate:"required"`
}

type updateSaleRequest struct {
	OrderID   *string  `json:"orderId"`
	ProductID *string  `json:"productId"`
	Sales     *float64 `json:"sales"`
	Quantity  *int     `json:"quantity"`
	Discount  *float64 `json:"discount"`
	Profit    *float64 `json:"profit"`
}

// salesID parses the salesId query parameter. A missing parameter and a
// malformed one are both request-shape errors raised before any store
// access.
func salesID(c echo.Context) (int64, error) {
	raw := c.QueryParam("salesId")
	if raw == "" {
		return 0, domainerrors.ErrMissingIdentifier.WithDetails("salesId query parameter is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidIdentifier.WithDetails("salesId must be an integer")
	}

	return id, nil
}

// List returns all sales, or one when salesId is given.
func (h *SaleHandler) List(c echo.Context) error {
	if c.QueryParam("salesId") != "" {
		id, err := salesID(c)
		if err != nil {
			return err
		}

		sale, err := h.uc.GetSale(c.Request().Context(), id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, sale, "")
	}

	sales, err := h.uc.ListSales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "")
}

// Create inserts a new sale line item and returns it with the generated
// salesId.
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed sale body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sale := &entity.Sale{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Sales:     *req.Sales,
		Quantity:  *req.Quantity,
		Discount:  *req.Discount,
		Profit:    *req.Profit,
	}

	if err := h.uc.CreateSale(c.Request().Context(), sale); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale created")
}

// Update applies a partial update to one sale.
func (h *SaleHandler) Update(c echo.Context) error {
	id, err := salesID(c)
	if err != nil {
		return err
	}

	var req updateSaleRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed sale body")
	}

	patch := repository.SalePatch{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Sales:     req.Sales,
		Quantity:  req.Quantity,
		Discount:  req.Discount,
		Profit:    req.Profit,
	}

	if err := h.uc.UpdateSale(c.Request().Context(), id, patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale updated")
}

// Delete removes one sale line item.
func (h *SaleHandler) Delete(c echo.Context) error {
	id, err := salesID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSale(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale deleted")
}
