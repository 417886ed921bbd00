package catalog

import (
	"strings"
	"testing"
)

const catalogHeader = "sku,name,brand,category,subcategory,skin_types,concerns_addressed,key_ingredients,ingredients,preference_tags,climates,texture,rating,price,sensitivity_safe,in_stock,usage"

func TestParseCSVFullRow(t *testing.T) {
	csvData := catalogHeader + "\n" +
		"CLN-001,Foam Cleanser,DermaLab,cleanser,foaming,oily|combination,acne|oiliness,salicylic-acid,water|salicylic-acid|glycerin,vegan,humid,foam,4.2,12.50,yes,true,both\n"

	items, skipped, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(items) != 1 {
		t.Fatalf("parsed %d items, want 1", len(items))
	}

	item := items[0]
	if item.SKU != "CLN-001" || item.Name != "Foam Cleanser" || item.Category != "cleanser" {
		t.Errorf("identity fields = %q %q %q", item.SKU, item.Name, item.Category)
	}
	if len(item.SkinTypes) != 2 || item.SkinTypes[0] != "oily" || item.SkinTypes[1] != "combination" {
		t.Errorf("skin_types = %v", item.SkinTypes)
	}
	if len(item.Ingredients) != 3 {
		t.Errorf("ingredients = %v", item.Ingredients)
	}
	if item.Rating == nil || *item.Rating != 4.2 {
		t.Errorf("rating = %v", item.Rating)
	}
	if item.Price != 12.50 {
		t.Errorf("price = %v", item.Price)
	}
	if item.SensitivitySafe == nil || !*item.SensitivitySafe {
		t.Errorf("sensitivity_safe = %v, want true from \"yes\"", item.SensitivitySafe)
	}
	if item.InStock == nil || !*item.InStock {
		t.Errorf("in_stock = %v", item.InStock)
	}
}

func TestParseCSVSkipsRowsMissingIdentity(t *testing.T) {
	csvData := "sku,name,category\n" +
		"CLN-001,Foam Cleanser,cleanser\n" +
		",Nameless Wonder,cleanser\n" +
		"MST-001,,moisturizer\n" +
		"SUN-001,Daily SPF,sunscreen\n"

	items, skipped, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("parsed %d items, want 2", len(items))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestParseCSVSkipsMalformedRows(t *testing.T) {
	csvData := "sku,name,category\n" +
		"CLN-001,Foam Cleanser,cleanser\n" +
		"too,few\n" +
		"SUN-001,Daily SPF,sunscreen\n"

	items, skipped, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("parsed %d items, want 2", len(items))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	csvData := "sku,name\nCLN-001,Foam Cleanser\n"

	if _, _, err := ParseCSV(strings.NewReader(csvData)); err == nil {
		t.Error("a header without the category column must fail")
	}
}

func TestParseCSVHeaderCaseAndSpacing(t *testing.T) {
	csvData := "SKU, Name ,CATEGORY\nCLN-001,Foam Cleanser,cleanser\n"

	items, _, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(items) != 1 || items[0].Category != "cleanser" {
		t.Errorf("items = %+v", items)
	}
}

func TestParseCSVOptionalFieldsEmpty(t *testing.T) {
	csvData := catalogHeader + "\n" +
		"SUN-001,Daily SPF,,sunscreen,,,,,,,,,not-a-number,,maybe,,\n"

	items, _, err := ParseCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("parsed %d items, want 1", len(items))
	}

	item := items[0]
	if item.Rating != nil {
		t.Errorf("unparseable rating should be nil, got %v", item.Rating)
	}
	if item.SensitivitySafe != nil {
		t.Errorf("unrecognized bool should be nil, got %v", item.SensitivitySafe)
	}
	if item.SkinTypes != nil {
		t.Errorf("empty list cell should be nil, got %v", item.SkinTypes)
	}
}
