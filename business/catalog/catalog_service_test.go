package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"glowAdvisor/domain"
)

type fakeItemRepo struct {
	items       []domain.CatalogItem
	findCalls   int
	upsertCalls int
	err         error
}

func (r *fakeItemRepo) Create(ctx context.Context, item *domain.CatalogItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeItemRepo) FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return domain.CatalogItem{}, errors.New("not found")
}

func (r *fakeItemRepo) FindAll(ctx context.Context) ([]domain.CatalogItem, error) {
	return r.items, r.err
}

func (r *fakeItemRepo) FindInStock(ctx context.Context) ([]domain.CatalogItem, error) {
	r.findCalls++
	return r.items, r.err
}

func (r *fakeItemRepo) Update(ctx context.Context, item *domain.CatalogItem) error { return r.err }
func (r *fakeItemRepo) Delete(ctx context.Context, sku string) error               { return r.err }

func (r *fakeItemRepo) BulkUpsert(ctx context.Context, items []domain.CatalogItem) (int, error) {
	r.upsertCalls++
	if r.err != nil {
		return 0, r.err
	}
	r.items = append(r.items, items...)
	return len(items), nil
}

type fakeCache struct {
	items       []domain.RawItem
	getErr      error
	sets        int
	invalidates int
}

func (c *fakeCache) GetItems(ctx context.Context) ([]domain.RawItem, error) {
	return c.items, c.getErr
}

func (c *fakeCache) SetItems(ctx context.Context, items []domain.RawItem, ttl time.Duration) error {
	c.sets++
	c.items = items
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context) error {
	c.invalidates++
	c.items = nil
	return nil
}

func storedItem(sku string) domain.CatalogItem {
	return domain.CatalogItem{SKU: sku, Name: "item " + sku, Category: "cleanser", Price: 10}
}

func TestInStockItemsCacheHit(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.CatalogItem{storedItem("cln-1")}}
	cache := &fakeCache{items: []domain.RawItem{{SKU: "cached-1", Name: "cached", Category: "cleanser"}}}
	svc := NewCatalogService(repo, cache, time.Minute)

	items, err := svc.InStockItems(context.Background())
	if err != nil {
		t.Fatalf("InStockItems: %v", err)
	}
	if len(items) != 1 || items[0].SKU != "cached-1" {
		t.Errorf("items = %v, want the cached copy", items)
	}
	if repo.findCalls != 0 {
		t.Errorf("warm cache must not hit the database, findCalls = %d", repo.findCalls)
	}
}

func TestInStockItemsCacheMissFillsCache(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.CatalogItem{storedItem("cln-1")}}
	cache := &fakeCache{}
	svc := NewCatalogService(repo, cache, time.Minute)

	items, err := svc.InStockItems(context.Background())
	if err != nil {
		t.Fatalf("InStockItems: %v", err)
	}
	if len(items) != 1 || items[0].SKU != "cln-1" {
		t.Errorf("items = %v", items)
	}
	if repo.findCalls != 1 {
		t.Errorf("findCalls = %d, want 1", repo.findCalls)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestInStockItemsCacheErrorFallsBack(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.CatalogItem{storedItem("cln-1")}}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := NewCatalogService(repo, cache, time.Minute)

	items, err := svc.InStockItems(context.Background())
	if err != nil {
		t.Fatalf("a cache failure must not fail the read: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("items = %v", items)
	}
}

func TestInStockItemsNilCache(t *testing.T) {
	repo := &fakeItemRepo{items: []domain.CatalogItem{storedItem("cln-1")}}
	svc := NewCatalogService(repo, nil, time.Minute)

	if _, err := svc.InStockItems(context.Background()); err != nil {
		t.Fatalf("InStockItems without a cache: %v", err)
	}
}

func TestInStockItemsCancelledContext(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewCatalogService(repo, nil, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.InStockItems(ctx); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

func TestCreateItemValidation(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewCatalogService(repo, nil, time.Minute)
	ctx := context.Background()

	cases := []struct {
		name string
		item domain.CatalogItem
	}{
		{"missing sku", domain.CatalogItem{Name: "x", Category: "cleanser"}},
		{"missing name", domain.CatalogItem{SKU: "a", Category: "cleanser"}},
		{"missing category", domain.CatalogItem{SKU: "a", Name: "x"}},
		{"negative price", domain.CatalogItem{SKU: "a", Name: "x", Category: "cleanser", Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := tc.item
			if err := svc.CreateItem(ctx, &item); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if len(repo.items) != 0 {
		t.Errorf("invalid items must not reach the repository, stored %d", len(repo.items))
	}
}

func TestCreateItemInvalidatesCache(t *testing.T) {
	repo := &fakeItemRepo{}
	cache := &fakeCache{items: []domain.RawItem{{SKU: "stale"}}}
	svc := NewCatalogService(repo, cache, time.Minute)

	item := storedItem("cln-9")
	if err := svc.CreateItem(context.Background(), &item); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if cache.invalidates != 1 {
		t.Errorf("invalidates = %d, want 1", cache.invalidates)
	}
}

func TestImportCSVWritesAndInvalidates(t *testing.T) {
	repo := &fakeItemRepo{}
	cache := &fakeCache{}
	svc := NewCatalogService(repo, cache, time.Minute)

	csvData := "sku,name,category,price\n" +
		"cln-1,Foam Cleanser,cleanser,12.5\n" +
		",broken,cleanser,1\n" +
		"mst-1,Gel Moisturizer,moisturizer,20\n"

	written, skipped, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if written != 2 || skipped != 1 {
		t.Errorf("written=%d skipped=%d, want 2 and 1", written, skipped)
	}
	if repo.upsertCalls != 1 {
		t.Errorf("upsertCalls = %d, want 1", repo.upsertCalls)
	}
	if cache.invalidates != 1 {
		t.Errorf("invalidates = %d, want 1", cache.invalidates)
	}
}

func TestImportCSVNoImportableRows(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := NewCatalogService(repo, nil, time.Minute)

	csvData := "sku,name,category\n,broken,cleanser\n"
	if _, _, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData)); err == nil {
		t.Error("an import with zero usable rows must fail")
	}
	if repo.upsertCalls != 0 {
		t.Errorf("upsertCalls = %d, want 0", repo.upsertCalls)
	}
}
