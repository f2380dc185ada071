package models

import "time"

// Shop is a print shop tenant. Only the fields the pricing surface reads are mapped.
type Shop struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	Name      string    `gorm:"column:name;not null"`
	Currency  string    `gorm:"column:currency;not null;default:'KES'"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Machine is a press owned by a shop. Printing prices may be tied to one.
type Machine struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID    int64     `gorm:"column:shop_id;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// ShopPaperCapability records the paper weights a shop can run per sheet size.
type ShopPaperCapability struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID    int64  `gorm:"column:shop_id;not null;index"`
	SheetSize string `gorm:"column:sheet_size;not null"`
	MinGSM    int    `gorm:"column:min_gsm;not null"`
	MaxGSM    int    `gorm:"column:max_gsm;not null"`
}
