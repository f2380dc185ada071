package dto

// QuoteCosts lists the rounded cost components of a quote.
type QuoteCosts struct {
	Printing  string `json:"printing"`
	Paper     string `json:"paper"`
	Material  string `json:"material"`
	Finishing string `json:"finishing"`
	Options   string `json:"options"`
	Subtotal  string `json:"subtotal"`
}

type QuoteFinishingLine struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ChargeBasis string `json:"charge_basis,omitempty"`
	UnitPrice   string `json:"unit_price"`
	Units       int    `json:"units"`
	Total       string `json:"total"`
	Mandatory   bool   `json:"mandatory"`
}

type QuoteOptionLine struct {
	ID     int64  `json:"id"`
	Group  string `json:"group"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type QuoteAnomaly struct {
	Kind      string `json:"kind"`
	Dimension string `json:"dimension,omitempty"`
	Message   string `json:"message"`
}

// QuoteResponse is the public price breakdown. Money is rendered as fixed-point strings.
type QuoteResponse struct {
	Context      string `json:"context"`
	Mode         string `json:"mode"`
	Currency     string `json:"currency"`
	ShopSlug     string `json:"shop_slug,omitempty"`
	TemplateSlug string `json:"template_slug,omitempty"`

	Quantity       int     `json:"quantity"`
	BilledQuantity int     `json:"billed_quantity"`
	SheetsRequired int     `json:"sheets_required"`
	Imposition     int     `json:"imposition,omitempty"`
	AreaSqm        *string `json:"area_sqm,omitempty"`

	Costs           QuoteCosts `json:"costs"`
	DiscountPercent string     `json:"discount_percent"`
	DiscountAmount  string     `json:"discount_amount"`
	GrandTotal      string     `json:"grand_total"`
	PricePerSheet   string     `json:"price_per_sheet"`
	PricePerUnit    string     `json:"price_per_unit"`
	CostOfGoods     *string    `json:"cost_of_goods,omitempty"`
	Margin          *string    `json:"margin,omitempty"`

	Finishings []QuoteFinishingLine `json:"finishings"`
	Options    []QuoteOptionLine    `json:"options"`
	Notes      []string             `json:"notes"`
	Anomalies  []QuoteAnomaly       `json:"anomalies"`
	Estimate   bool                 `json:"is_estimate"`
}
