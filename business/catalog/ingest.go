package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"glowAdvisor/domain"
	"glowAdvisor/pkg/logger"
)

// listSeparator splits multi-valued spreadsheet cells, e.g. "dry|oily".
const listSeparator = "|"

// ParseCSV reads a catalog spreadsheet export. The first record is the
// header; rows missing an sku, name or category are skipped, not fatal.
// It returns the parsed items and the number of skipped rows.
func ParseCSV(r io.Reader) ([]domain.RawItem, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"sku", "name", "category"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("missing required csv column %q", required)
		}
	}

	var (
		items   []domain.RawItem
		skipped int
		line    = 1
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed csv row", "line", line, "error", err.Error())
			skipped++
			continue
		}

		row := rowReader{cols: cols, record: record}

		item := domain.RawItem{
			SKU:             row.str("sku"),
			Name:            row.str("name"),
			Brand:           row.str("brand"),
			Category:        row.str("category"),
			Subcategory:     row.str("subcategory"),
			SkinTypes:       row.list("skin_types"),
			Concerns:        row.list("concerns_addressed"),
			KeyIngredients:  row.list("key_ingredients"),
			Ingredients:     row.list("ingredients"),
			PreferenceTags:  row.list("preference_tags"),
			Climates:        row.list("climates"),
			Texture:         row.str("texture"),
			Rating:          row.floatPtr("rating"),
			Price:           row.float("price"),
			SensitivitySafe: row.boolPtr("sensitivity_safe"),
			InStock:         row.boolPtr("in_stock"),
			Usage:           row.str("usage"),
		}

		if item.SKU == "" || item.Name == "" || item.Category == "" {
			logger.Warn("skipping csv row with missing identity fields", "line", line)
			skipped++
			continue
		}

		items = append(items, item)
	}

	return items, skipped, nil
}

type rowReader struct {
	cols   map[string]int
	record []string
}

func (r rowReader) str(col string) string {
	idx, ok := r.cols[col]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

func (r rowReader) list(col string) []string {
	val := r.str(col)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r rowReader) float(col string) float64 {
	val := r.str(col)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

func (r rowReader) floatPtr(col string) *float64 {
	val := r.str(col)
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (r rowReader) boolPtr(col string) *bool {
	val := strings.ToLower(r.str(col))
	if val == "" {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		switch val {
		case "yes", "y":
			b = true
		case "no", "n":
			b = false
		default:
			return nil
		}
	}
	return &b
}
