package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Category is the closed set of product categories the engine understands.
type Category string

const (
	CategoryCleanser    Category = "cleanser"
	CategoryToner       Category = "toner"
	CategorySerum       Category = "serum"
	CategoryMoisturizer Category = "moisturizer"
	CategorySunscreen   Category = "sunscreen"
	CategoryTreatment   Category = "treatment"
	CategoryEyeCare     Category = "eye-care"
	CategoryMask        Category = "mask"
)

// AllCategories in presentation order.
var AllCategories = []Category{
	CategoryCleanser,
	CategoryToner,
	CategorySerum,
	CategoryMoisturizer,
	CategorySunscreen,
	CategoryTreatment,
	CategoryEyeCare,
	CategoryMask,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCleanser, CategoryToner, CategorySerum, CategoryMoisturizer,
		CategorySunscreen, CategoryTreatment, CategoryEyeCare, CategoryMask:
		return true
	}
	return false
}

type SkinType string

const (
	SkinTypeDry         SkinType = "dry"
	SkinTypeOily        SkinType = "oily"
	SkinTypeCombination SkinType = "combination"
	SkinTypeNormal      SkinType = "normal"

	// SkinTypeAll marks an item as suitable for every skin type.
	SkinTypeAll SkinType = "all"
)

type Texture string

const (
	TextureGel    Texture = "gel"
	TextureFoam   Texture = "foam"
	TextureFluid  Texture = "fluid"
	TextureLotion Texture = "lotion"
	TextureCream  Texture = "cream"
	TextureBalm   Texture = "balm"
	TextureOil    Texture = "oil"
)

// Lightweight reports whether the texture belongs to the lightweight group.
func (t Texture) Lightweight() bool {
	return t == TextureGel || t == TextureFoam || t == TextureFluid
}

// Heavy reports whether the texture belongs to the rich/heavy group.
func (t Texture) Heavy() bool {
	return t == TextureCream || t == TextureBalm || t == TextureOil
}

type UsageWindow string

const (
	UsageMorning UsageWindow = "morning"
	UsageEvening UsageWindow = "evening"
	UsageBoth    UsageWindow = "both"
)

// Includes reports whether the window covers the given time of day.
func (u UsageWindow) Includes(w UsageWindow) bool {
	return u == UsageBoth || u == w
}

type Climate string

const (
	ClimateHumid     Climate = "humid"
	ClimateDry       Climate = "dry"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
	ClimateAll       Climate = "all"
)

// RawItem is a candidate product record exactly as it arrives from the
// catalog store or a spreadsheet import, before normalization. Optional
// booleans are pointers so a missing value is distinguishable from false.
type RawItem struct {
	SKU             string   `json:"sku"`
	Name            string   `json:"name"`
	Brand           string   `json:"brand"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	SkinTypes       []string `json:"skin_types"`
	Concerns        []string `json:"concerns_addressed"`
	KeyIngredients  []string `json:"key_ingredients"`
	Ingredients     []string `json:"ingredients"`
	PreferenceTags  []string `json:"preference_tags"`
	Climates        []string `json:"climates"`
	Texture         string   `json:"texture"`
	Rating          *float64 `json:"rating"`
	Price           float64  `json:"price"`
	SensitivitySafe *bool    `json:"sensitivity_safe"`
	InStock         *bool    `json:"in_stock"`
	Usage           string   `json:"usage"`
}

// Item is a normalized candidate product. Instances are produced by the
// normalizer and never mutated afterwards.
type Item struct {
	SKU            string      `json:"sku"`
	Name           string      `json:"name"`
	Brand          string      `json:"brand"`
	Category       Category    `json:"category"`
	Subcategory    string      `json:"subcategory"`
	SkinTypes      []SkinType  `json:"skin_types"`
	Concerns       []ConcernID `json:"concerns_addressed"`
	KeyIngredients []string    `json:"key_ingredients"`
	// Ingredients is the full label list; it is the only list consulted for
	// allergy checks. Empty means the list is unknown, not that the item is
	// ingredient-free.
	Ingredients     []string    `json:"ingredients"`
	PreferenceTags  []string    `json:"preference_tags"`
	Climates        []Climate   `json:"climates"`
	Texture         Texture     `json:"texture"` // "" when unknown
	Rating          float64     `json:"rating"`
	HasRating       bool        `json:"has_rating"`
	Price           float64     `json:"price"`
	SensitivitySafe bool        `json:"sensitivity_safe"`
	InStock         bool        `json:"in_stock"`
	Usage           UsageWindow `json:"usage"`
}

// SuitsSkinType reports whether the item targets the given skin type or is
// universal.
func (it Item) SuitsSkinType(st SkinType) bool {
	for _, s := range it.SkinTypes {
		if s == SkinTypeAll || s == st {
			return true
		}
	}
	return false
}

// Addresses reports whether the item covers the given concern.
func (it Item) Addresses(id ConcernID) bool {
	for _, c := range it.Concerns {
		if c == id {
			return true
		}
	}
	return false
}

// SuitsClimate reports whether the item lists the climate or is universal.
func (it Item) SuitsClimate(c Climate) bool {
	for _, cl := range it.Climates {
		if cl == ClimateAll || cl == c {
			return true
		}
	}
	return false
}

// CatalogItem is the persisted shape of a candidate product. List fields are
// stored as jsonb so the spreadsheet importer can write them verbatim.
type CatalogItem struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU             string         `gorm:"column:sku;unique;not null" json:"sku"`
	Name            string         `gorm:"column:name;type:text;not null" json:"name"`
	Brand           string         `gorm:"column:brand;type:text" json:"brand"`
	Category        string         `gorm:"column:category;type:text;not null" json:"category"`
	Subcategory     string         `gorm:"column:subcategory;type:text" json:"subcategory"`
	SkinTypes       datatypes.JSON `gorm:"column:skin_types;type:jsonb" json:"skin_types"`
	Concerns        datatypes.JSON `gorm:"column:concerns_addressed;type:jsonb" json:"concerns_addressed"`
	KeyIngredients  datatypes.JSON `gorm:"column:key_ingredients;type:jsonb" json:"key_ingredients"`
	Ingredients     datatypes.JSON `gorm:"column:ingredients;type:jsonb" json:"ingredients"`
	PreferenceTags  datatypes.JSON `gorm:"column:preference_tags;type:jsonb" json:"preference_tags"`
	Climates        datatypes.JSON `gorm:"column:climates;type:jsonb" json:"climates"`
	Texture         string         `gorm:"column:texture;type:text" json:"texture"`
	Rating          *float64       `gorm:"column:rating;type:numeric" json:"rating"`
	Price           float64        `gorm:"column:price;type:numeric" json:"price"`
	SensitivitySafe *bool          `gorm:"column:sensitivity_safe" json:"sensitivity_safe"`
	InStock         *bool          `gorm:"column:in_stock" json:"in_stock"`
	Usage           string         `gorm:"column:usage;type:text" json:"usage"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// ToRaw converts a stored row back into the raw shape the engine's
// normalizer accepts.
func (ci CatalogItem) ToRaw() RawItem {
	return RawItem{
		SKU:             ci.SKU,
		Name:            ci.Name,
		Brand:           ci.Brand,
		Category:        ci.Category,
		Subcategory:     ci.Subcategory,
		SkinTypes:       jsonStrings(ci.SkinTypes),
		Concerns:        jsonStrings(ci.Concerns),
		KeyIngredients:  jsonStrings(ci.KeyIngredients),
		Ingredients:     jsonStrings(ci.Ingredients),
		PreferenceTags:  jsonStrings(ci.PreferenceTags),
		Climates:        jsonStrings(ci.Climates),
		Texture:         ci.Texture,
		Rating:          ci.Rating,
		Price:           ci.Price,
		SensitivitySafe: ci.SensitivitySafe,
		InStock:         ci.InStock,
		Usage:           ci.Usage,
	}
}

func jsonStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// StringsJSON marshals a string list for jsonb storage.
func StringsJSON(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return b
}
