package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"glowAdvisor/domain"
	"glowAdvisor/pkg/logger"
)

// ItemRepository contract interface
type ItemRepository interface {
	Create(ctx context.Context, item *domain.CatalogItem) error
	FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, error)
	FindAll(ctx context.Context) ([]domain.CatalogItem, error)
	FindInStock(ctx context.Context) ([]domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, sku string) error
	BulkUpsert(ctx context.Context, items []domain.CatalogItem) (int, error)
}

// Cache contract interface. A read-through copy of the in-stock catalog
// lives here so consultations do not hit the database on every request.
type Cache interface {
	GetItems(ctx context.Context) ([]domain.RawItem, error)
	SetItems(ctx context.Context, items []domain.RawItem, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type CatalogService struct {
	itemRepo ItemRepository
	cache    Cache
	cacheTTL time.Duration
}

func NewCatalogService(itemRepo ItemRepository, cache Cache, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		itemRepo: itemRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// InStockItems returns the purchasable catalog in the raw shape the
// recommendation engine consumes, served from cache when warm.
func (s *CatalogService) InStockItems(ctx context.Context) ([]domain.RawItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.GetItems(ctx)
		if err == nil && len(cached) > 0 {
			return cached, nil
		}
		if err != nil {
			logger.Warn("catalog cache read failed, falling back to database", err)
		}
	}

	stored, err := s.itemRepo.FindInStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	raw := make([]domain.RawItem, 0, len(stored))
	for _, it := range stored {
		raw = append(raw, it.ToRaw())
	}

	if s.cache != nil {
		if err := s.cache.SetItems(ctx, raw, s.cacheTTL); err != nil {
			logger.Warn("catalog cache write failed", err)
		}
	}

	return raw, nil
}

func (s *CatalogService) GetAllItems(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all catalog items", err)
		return nil, err
	}

	return items, nil
}

func (s *CatalogService) GetItemBySKU(ctx context.Context, sku string) (domain.CatalogItem, error) {
	if sku == "" {
		return domain.CatalogItem{}, errors.New("sku is required")
	}
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("context error: %w", err)
	}

	item, err := s.itemRepo.FindBySKU(ctx, sku)
	if err != nil {
		logger.Error("failed to find catalog item by sku", err)
		return domain.CatalogItem{}, err
	}

	return item, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := validateItem(item); err != nil {
		logger.Error("Invalid catalog item data", err)
		return err
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		logger.Error("failed to create catalog item", err)
		return err
	}

	s.invalidateCache(ctx)
	logger.Info("catalog item created", "sku", item.SKU)

	return nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := validateItem(item); err != nil {
		logger.Error("Invalid catalog item data", err)
		return err
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		logger.Error("failed to update catalog item", err)
		return err
	}

	s.invalidateCache(ctx)
	logger.Info("catalog item updated", "sku", item.SKU)

	return nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, sku string) error {
	if sku == "" {
		return errors.New("sku is required")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.itemRepo.Delete(ctx, sku); err != nil {
		logger.Error("failed to delete catalog item", err)
		return err
	}

	s.invalidateCache(ctx)
	logger.Info("catalog item deleted", "sku", sku)

	return nil
}

// ImportCSV ingests a spreadsheet export and upserts every parseable row.
// It returns how many rows were written and how many were skipped.
func (s *CatalogService) ImportCSV(ctx context.Context, r io.Reader) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, fmt.Errorf("context error: %w", err)
	}

	rawItems, skipped, err := ParseCSV(r)
	if err != nil {
		return 0, skipped, fmt.Errorf("failed to parse catalog csv: %w", err)
	}
	if len(rawItems) == 0 {
		return 0, skipped, errors.New("no importable rows found")
	}

	stored := make([]domain.CatalogItem, 0, len(rawItems))
	for _, raw := range rawItems {
		stored = append(stored, toStored(raw))
	}

	written, err := s.itemRepo.BulkUpsert(ctx, stored)
	if err != nil {
		logger.Error("failed to upsert imported catalog items", err)
		return 0, skipped, err
	}

	s.invalidateCache(ctx)
	logger.Info("catalog import finished", "written", written, "skipped", skipped)

	return written, skipped, nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate catalog cache", err)
	}
}

func validateItem(item *domain.CatalogItem) error {
	if item.SKU == "" {
		return errors.New("sku is required")
	}
	if item.Name == "" {
		return errors.New("name is required")
	}
	if item.Category == "" {
		return errors.New("category is required")
	}
	if item.Price < 0 {
		return errors.New("price cannot be negative")
	}

	return nil
}

func toStored(raw domain.RawItem) domain.CatalogItem {
	return domain.CatalogItem{
		SKU:             raw.SKU,
		Name:            raw.Name,
		Brand:           raw.Brand,
		Category:        raw.Category,
		Subcategory:     raw.Subcategory,
		SkinTypes:       domain.StringsJSON(raw.SkinTypes),
		Concerns:        domain.StringsJSON(raw.Concerns),
		KeyIngredients:  domain.StringsJSON(raw.KeyIngredients),
		Ingredients:     domain.StringsJSON(raw.Ingredients),
		PreferenceTags:  domain.StringsJSON(raw.PreferenceTags),
		Climates:        domain.StringsJSON(raw.Climates),
		Texture:         raw.Texture,
		Rating:          raw.Rating,
		Price:           raw.Price,
		SensitivitySafe: raw.SensitivitySafe,
		InStock:         raw.InStock,
		Usage:           raw.Usage,
	}
}
