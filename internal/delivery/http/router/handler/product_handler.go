package handler

import (
	"log/slog"
	"net/http"

	"expo/internal/delivery/http/response"
	"expo/internal/domain/entity"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/domain/repository"
	"expo/internal/errors"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// ProductHandler serves the product catalogue
type ProductHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// CreateProductRequest is the body of POST /api/products
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Owner       string   `json:"owner" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
}

type productCreatedResponse struct {
	Success    bool              `json:"success"`
	Product    *entity.Product   `json:"product"`
	Categories []entity.Category `json:"categories"`
}

type categoriesResponse struct {
	Categories []entity.Category `json:"categories"`
}

// ListProducts returns every product with live totals, or the products CSV with format=csv
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("format") == formatCSV {
		data, err := h.ledgerUC.ExportCSV(ctx, repository.MirrorProducts)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.CSV(c, "products_report.csv", data)
	}

	products, err := h.ledgerUC.ListProducts(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns one product with live totals
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.ledgerUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories returns the closed category list
func (h *ProductHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, categoriesResponse{Categories: entity.ProductCategories()})
}

// CreateProduct validates and stores a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.ledgerUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Owner:       req.Owner,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCategory) {
			return response.ErrorWithData(c, http.StatusBadRequest,
				domainerrors.ErrInvalidCategory.ErrorCode(),
				domainerrors.ErrInvalidCategory.Message(),
				"",
				categoriesResponse{Categories: entity.ProductCategories()},
			)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, productCreatedResponse{
		Success:    true,
		Product:    product,
		Categories: entity.ProductCategories(),
	})
}
