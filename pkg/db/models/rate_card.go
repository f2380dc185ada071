package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrintingPrice is a per-side (and optional duplex per-sheet) printing rate.
type PrintingPrice struct {
	ID                  int64               `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID              int64               `gorm:"column:shop_id;not null;index"`
	MachineID           *int64              `gorm:"column:machine_id"`
	Machine             *Machine            `gorm:"foreignKey:MachineID"`
	SheetSize           string              `gorm:"column:sheet_size;not null"`
	ColorMode           string              `gorm:"column:color_mode;not null"`
	SellingPricePerSide decimal.Decimal     `gorm:"column:selling_price_per_side;type:numeric(12,4);not null"`
	SellingPriceDuplex  decimal.NullDecimal `gorm:"column:selling_price_duplex_per_sheet;type:numeric(12,4)"`
	BuyingPricePerSide  decimal.NullDecimal `gorm:"column:buying_price_per_side;type:numeric(12,4)"`
	IsActive            bool                `gorm:"column:is_active;not null"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// PaperPrice prices one sheet of stock.
type PaperPrice struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID       int64               `gorm:"column:shop_id;not null;index"`
	SheetSize    string              `gorm:"column:sheet_size;not null"`
	GSM          int                 `gorm:"column:gsm;not null"`
	PaperType    string              `gorm:"column:paper_type;not null"`
	BuyingPrice  decimal.NullDecimal `gorm:"column:buying_price;type:numeric(12,4)"`
	SellingPrice decimal.Decimal     `gorm:"column:selling_price;type:numeric(12,4);not null"`
	IsActive     bool                `gorm:"column:is_active;not null"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// MaterialPrice prices large-format material per sheet or per square metre.
type MaterialPrice struct {
	ID           int64               `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID       int64               `gorm:"column:shop_id;not null;index"`
	MaterialType string              `gorm:"column:material_type;not null"`
	Unit         string              `gorm:"column:unit;not null"`
	BuyingPrice  decimal.NullDecimal `gorm:"column:buying_price;type:numeric(12,4)"`
	SellingPrice decimal.Decimal     `gorm:"column:selling_price;type:numeric(12,4);not null"`
	IsActive     bool                `gorm:"column:is_active;not null"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// FinishingService is a post-press service billed per job, sheet or piece.
type FinishingService struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID      int64           `gorm:"column:shop_id;not null;index"`
	Name        string          `gorm:"column:name;not null"`
	Category    string          `gorm:"column:category;not null;default:'OTHER'"`
	ChargeBy    string          `gorm:"column:charge_by;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,4);not null"`
	IsDefault   bool            `gorm:"column:is_default;not null;default:false"`
	IsMandatory bool            `gorm:"column:is_mandatory;not null;default:false"`
	IsActive    bool            `gorm:"column:is_active;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// VolumeDiscount is a quantity-tiered percentage discount.
type VolumeDiscount struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID          int64           `gorm:"column:shop_id;not null;index"`
	Name            string          `gorm:"column:name;not null;default:''"`
	MinQuantity     int             `gorm:"column:min_quantity;not null"`
	DiscountPercent decimal.Decimal `gorm:"column:discount_percent;type:numeric(5,2);not null"`
	IsActive        bool            `gorm:"column:is_active;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}
