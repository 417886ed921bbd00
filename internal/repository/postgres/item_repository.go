package postgres

import (
	"context"
	"errors"
	"fmt"

	"glowAdvisor/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{
		DB: db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create catalog item: %w", err)
	}

	return nil
}

func (r *ItemRepository) FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.CatalogItem

	err := r.DB.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CatalogItem{}, errors.New("catalog item not found")
		}
		return domain.CatalogItem{}, fmt.Errorf("failed to find catalog item: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CatalogItem
	err := r.DB.WithContext(ctx).Order("sku").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) FindInStock(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.CatalogItem
	// in_stock is nullable; a missing value means purchasable
	err := r.DB.WithContext(ctx).
		Where("in_stock IS NULL OR in_stock = ?", true).
		Order("sku").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find in-stock catalog items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, item *domain.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.CatalogItem
	if err := r.DB.WithContext(ctx).Where("sku = ?", item.SKU).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("catalog item not found")
		}
		return fmt.Errorf("failed to find catalog item: %w", err)
	}

	updateData := map[string]interface{}{
		"name":               item.Name,
		"brand":              item.Brand,
		"category":           item.Category,
		"subcategory":        item.Subcategory,
		"skin_types":         item.SkinTypes,
		"concerns_addressed": item.Concerns,
		"key_ingredients":    item.KeyIngredients,
		"ingredients":        item.Ingredients,
		"preference_tags":    item.PreferenceTags,
		"climates":           item.Climates,
		"texture":            item.Texture,
		"rating":             item.Rating,
		"price":              item.Price,
		"sensitivity_safe":   item.SensitivitySafe,
		"in_stock":           item.InStock,
		"usage":              item.Usage,
	}

	result := r.DB.WithContext(ctx).Model(&domain.CatalogItem{}).Where("sku = ?", item.SKU).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("catalog item not found or already deleted")
	}

	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, sku string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("sku = ?", sku).Delete(&domain.CatalogItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("catalog item not found or already deleted")
	}

	return nil
}

// BulkUpsert writes imported rows in one statement, keyed on sku.
func (r *ItemRepository) BulkUpsert(ctx context.Context, items []domain.CatalogItem) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "brand", "category", "subcategory", "skin_types",
			"concerns_addressed", "key_ingredients", "ingredients",
			"preference_tags", "climates", "texture", "rating", "price",
			"sensitivity_safe", "in_stock", "usage", "updated_at",
		}),
	}).Create(&items)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to upsert catalog items: %w", result.Error)
	}

	return len(items), nil
}
