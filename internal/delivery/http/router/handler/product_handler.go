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

// ProductHandler holds dependencies for the /products resource.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

type createProductRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	ProductName string `json:"productName" validate:"required"`
	Category    string `json:"category" validate:"required"`
	SubCategory string `json:"subCategory" validate:"required"`
}

type updateProductRequest struct {
	ProductName *string `json:"productName"`
	Category    *string `json:"category"`
	SubCategory *string `json:"subCategory"`
}

// List returns all products, or one when productId is given.
func (h *ProductHandler) List(c echo.Context) error {
	if productID := c.QueryParam("productId"); productID != "" {
		product, err := h.uc.GetProduct(c.Request().Context(), productID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, product, "")
	}

	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Create inserts a new product.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed product body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product := &entity.Product{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Category:    req.Category,
		SubCategory: req.SubCategory,
	}

	if err := h.uc.CreateProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update applies a partial update to one product.
func (h *ProductHandler) Update(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("productId query parameter is required")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed product body")
	}

	patch := repository.ProductPatch{
		ProductName: req.ProductName,
		Category:    req.Category,
		SubCategory: req.SubCategory,
	}

	if err := h.uc.UpdateProduct(c.Request().Context(), productID, patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated")
}

// Delete removes one product and its dependent sales.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID := c.QueryParam("productId")
	if productID == "" {
		return domainerrors.ErrMissingIdentifier.WithDetails("productId query parameter is required")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted")
}
