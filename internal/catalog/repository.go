package catalog

import (
	"context"

	"github.com/printhub/printhub-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the active pricing catalog. It never writes.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

// FindShopBySlug loads an active shop.
func (r *Repository) FindShopBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	var shop models.Shop
	if err := r.conn(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListPrintingPrices returns active printing rows ordered by id, with their machine.
func (r *Repository) ListPrintingPrices(ctx context.Context, shopID int64) ([]models.PrintingPrice, error) {
	var rows []models.PrintingPrice
	err := r.conn(ctx).
		Preload("Machine").
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// ListPaperPrices returns active paper rows ordered by id.
func (r *Repository) ListPaperPrices(ctx context.Context, shopID int64) ([]models.PaperPrice, error) {
	var rows []models.PaperPrice
	err := r.activeByShop(ctx, shopID).Find(&rows).Error
	return rows, err
}

// ListMaterialPrices returns active material rows ordered by id.
func (r *Repository) ListMaterialPrices(ctx context.Context, shopID int64) ([]models.MaterialPrice, error) {
	var rows []models.MaterialPrice
	err := r.activeByShop(ctx, shopID).Find(&rows).Error
	return rows, err
}

// ListFinishingServices returns active finishing rows ordered by id.
func (r *Repository) ListFinishingServices(ctx context.Context, shopID int64) ([]models.FinishingService, error) {
	var rows []models.FinishingService
	err := r.activeByShop(ctx, shopID).Find(&rows).Error
	return rows, err
}

// ListVolumeDiscounts returns active discount tiers ordered by minimum quantity.
func (r *Repository) ListVolumeDiscounts(ctx context.Context, shopID int64) ([]models.VolumeDiscount, error) {
	var rows []models.VolumeDiscount
	err := r.conn(ctx).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("min_quantity ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ListPaperCapabilities returns the shop's paper weight bounds per sheet size.
func (r *Repository) ListPaperCapabilities(ctx context.Context, shopID int64) ([]models.ShopPaperCapability, error) {
	var rows []models.ShopPaperCapability
	err := r.conn(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// FindTemplateBySlug loads an active template with all pricing associations.
func (r *Repository) FindTemplateBySlug(ctx context.Context, slug string) (*models.PrintTemplate, error) {
	var tpl models.PrintTemplate
	err := r.conn(ctx).
		Preload("Finishings", orderByID).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC, id ASC") }).
		Preload("Adjustments", orderByID).
		Preload("MaterialRates", orderByID).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *Repository) activeByShop(ctx context.Context, shopID int64) *gorm.DB {
	return r.conn(ctx).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("id ASC")
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
