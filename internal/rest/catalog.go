package rest

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"glowAdvisor/domain"
	"glowAdvisor/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetAllItems(ctx context.Context) ([]domain.CatalogItem, error)
	GetItemBySKU(ctx context.Context, sku string) (domain.CatalogItem, error)
	CreateItem(ctx context.Context, item *domain.CatalogItem) error
	UpdateItem(ctx context.Context, item *domain.CatalogItem) error
	DeleteItem(ctx context.Context, sku string) error
	ImportCSV(ctx context.Context, r io.Reader) (int, int, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        30 * time.Second,
	}
}

type CatalogItemRequest struct {
	SKU             string   `json:"sku" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category" validate:"required"`
	Subcategory     string   `json:"subcategory"`
	SkinTypes       []string `json:"skin_types"`
	Concerns        []string `json:"concerns_addressed"`
	KeyIngredients  []string `json:"key_ingredients"`
	Ingredients     []string `json:"ingredients"`
	PreferenceTags  []string `json:"preference_tags"`
	Climates        []string `json:"climates"`
	Texture         string   `json:"texture"`
	Rating          *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Price           float64  `json:"price" validate:"gte=0"`
	SensitivitySafe *bool    `json:"sensitivity_safe"`
	InStock         *bool    `json:"in_stock"`
	Usage           string   `json:"usage"`
}

func (req CatalogItemRequest) toDomain() domain.CatalogItem {
	return domain.CatalogItem{
		SKU:             req.SKU,
		Name:            req.Name,
		Brand:           req.Brand,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		SkinTypes:       domain.StringsJSON(req.SkinTypes),
		Concerns:        domain.StringsJSON(req.Concerns),
		KeyIngredients:  domain.StringsJSON(req.KeyIngredients),
		Ingredients:     domain.StringsJSON(req.Ingredients),
		PreferenceTags:  domain.StringsJSON(req.PreferenceTags),
		Climates:        domain.StringsJSON(req.Climates),
		Texture:         req.Texture,
		Rating:          req.Rating,
		Price:           req.Price,
		SensitivitySafe: req.SensitivitySafe,
		InStock:         req.InStock,
		Usage:           req.Usage,
	}
}

func (h *CatalogHandler) GetAllItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.GetAllItems(ctx)
	if err != nil {
		logger.Error("Failed to find all catalog items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all catalog items",
		"items":   items,
	})
}

func (h *CatalogHandler) GetItemBySKU(c echo.Context) error {
	sku := c.Param("sku")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.catalogService.GetItemBySKU(ctx, sku)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to find catalog item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get catalog item",
		"item":    item,
	})
}

func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var req CatalogItemRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate catalog item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := req.toDomain()
	if err := h.catalogService.CreateItem(ctx, &item); err != nil {
		logger.Error("Failed to create catalog item", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "catalog item created successfully",
		"item":    item,
	})
}

func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	sku := c.Param("sku")

	var req CatalogItemRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	req.SKU = sku

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate catalog item request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := req.toDomain()
	if err := h.catalogService.UpdateItem(ctx, &item); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to update catalog item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "catalog item updated successfully",
		"item":    item,
	})
}

func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	sku := c.Param("sku")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.catalogService.DeleteItem(ctx, sku); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to delete catalog item", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "catalog item deleted successfully",
	})
}

// ImportCatalog ingests a multipart CSV upload into the catalog.
func (h *CatalogHandler) ImportCatalog(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("Missing catalog csv upload", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing csv file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open catalog csv upload", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	written, skipped, err := h.catalogService.ImportCSV(ctx, file)
	if err != nil {
		logger.Error("Failed to import catalog csv", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "catalog imported successfully",
		"imported": written,
		"skipped":  skipped,
	})
}
