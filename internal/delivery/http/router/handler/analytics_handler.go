package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"superstore/internal/delivery/http/response"
	"superstore/internal/usecase"
)

// AnalyticsHandler serves the three dashboard reports.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, logger: logger}
}

// OrderQuantity returns the top products by units sold.
func (h *AnalyticsHandler) OrderQuantity(c echo.Context) error {
	groups, err := h.uc.OrderQuantityByProduct(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// SalesByCategory returns total sales per product category.
func (h *AnalyticsHandler) SalesByCategory(c echo.Context) error {
	groups, err := h.uc.SalesByCategory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}

// SalesOverTime returns total sales per calendar month.
func (h *AnalyticsHandler) SalesOverTime(c echo.Context) error {
	groups, err := h.uc.SalesOverTime(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, groups, "")
}
