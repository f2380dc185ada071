package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PrintTemplate is a catalog product priced by a base price plus configured deltas.
// A nil ShopID marks a global template.
type PrintTemplate struct {
	ID               int64                  `gorm:"column:id;primaryKey;autoIncrement"`
	Slug             string                 `gorm:"column:slug;not null;uniqueIndex"`
	Title            string                 `gorm:"column:title;not null"`
	ShopID           *int64                 `gorm:"column:shop_id;index"`
	BasePrice        decimal.Decimal        `gorm:"column:base_price;type:numeric(12,4);not null"`
	MinQuantity      int                    `gorm:"column:min_quantity;not null;default:1"`
	DefaultSheetSize string                 `gorm:"column:default_sheet_size;not null;default:''"`
	DefaultGSM       int                    `gorm:"column:default_gsm;not null;default:0"`
	DefaultPaperType string                 `gorm:"column:default_paper_type;not null;default:''"`
	DefaultSides     string                 `gorm:"column:default_print_sides;not null;default:'SIMPLEX'"`
	AllowedGSM       pq.Int64Array          `gorm:"column:allowed_gsm"`
	MinGSM           *int                   `gorm:"column:min_gsm"`
	MaxGSM           *int                   `gorm:"column:max_gsm"`
	FinalWidthMM     decimal.NullDecimal    `gorm:"column:final_width_mm;type:numeric(10,2)"`
	FinalHeightMM    decimal.NullDecimal    `gorm:"column:final_height_mm;type:numeric(10,2)"`
	IsLargeFormat    bool                   `gorm:"column:is_large_format;not null"`
	DuplexMultiplier decimal.NullDecimal    `gorm:"column:duplex_multiplier;type:numeric(6,3)"`
	GSMStepPercent   decimal.NullDecimal    `gorm:"column:gsm_step_percent;type:numeric(6,3)"`
	PrintingShare    decimal.NullDecimal    `gorm:"column:printing_share;type:numeric(4,3)"`
	IsActive         bool                   `gorm:"column:is_active;not null"`
	Finishings       []TemplateFinishing    `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	Options          []TemplateOption       `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	Adjustments      []TemplateAdjustment   `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	MaterialRates    []TemplateMaterialRate `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TemplateFinishing is a per-unit finishing delta offered on a template.
type TemplateFinishing struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID  int64           `gorm:"column:template_id;not null;index"`
	Name        string          `gorm:"column:name;not null"`
	PriceDelta  decimal.Decimal `gorm:"column:price_delta;type:numeric(12,4);not null"`
	IsMandatory bool            `gorm:"column:is_mandatory;not null"`
	IsDefault   bool            `gorm:"column:is_default;not null"`
}

// TemplateOption is a selectable flat price modifier.
type TemplateOption struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID    int64           `gorm:"column:template_id;not null;index"`
	OptionGroup   string          `gorm:"column:option_group;not null;default:''"`
	Label         string          `gorm:"column:label;not null"`
	PriceModifier decimal.Decimal `gorm:"column:price_modifier;type:numeric(12,4);not null"`
	DisplayOrder  int             `gorm:"column:display_order;not null;default:0"`
}

// TemplateAdjustment changes the price when a job deviates from a template default.
type TemplateAdjustment struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID int64           `gorm:"column:template_id;not null;index"`
	Dimension  string          `gorm:"column:dimension;not null"`
	Value      string          `gorm:"column:value;not null"`
	Mode       string          `gorm:"column:mode;not null"`
	Amount     decimal.Decimal `gorm:"column:amount;type:numeric(12,4);not null"`
}

// TemplateMaterialRate is a per square metre rate for a large-format template.
type TemplateMaterialRate struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TemplateID   int64           `gorm:"column:template_id;not null;index"`
	MaterialType string          `gorm:"column:material_type;not null"`
	PricePerSqm  decimal.Decimal `gorm:"column:price_per_sqm;type:numeric(12,4);not null"`
}
