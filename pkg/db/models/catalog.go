package models

// Catalog lists every model backing the pricing catalog, in dependency order.
// Local sqlite databases are created from it instead of the Postgres migrations.
func Catalog() []any {
	return []any{
		&Shop{},
		&Machine{},
		&ShopPaperCapability{},
		&PrintingPrice{},
		&PaperPrice{},
		&MaterialPrice{},
		&FinishingService{},
		&VolumeDiscount{},
		&PrintTemplate{},
		&TemplateFinishing{},
		&TemplateOption{},
		&TemplateAdjustment{},
		&TemplateMaterialRate{},
	}
}
