package dto

type RateCardPrinting struct {
	ID                  int64   `json:"id"`
	MachineID           *int64  `json:"machine_id,omitempty"`
	MachineName         string  `json:"machine_name,omitempty"`
	SheetSize           string  `json:"sheet_size"`
	ColorMode           string  `json:"color_mode"`
	PricePerSide        string  `json:"price_per_side"`
	DuplexPricePerSheet *string `json:"duplex_price_per_sheet,omitempty"`
}

type RateCardPaper struct {
	ID        int64  `json:"id"`
	SheetSize string `json:"sheet_size"`
	GSM       int    `json:"gsm"`
	PaperType string `json:"paper_type"`
	Price     string `json:"price"`
}

type RateCardMaterial struct {
	ID           int64  `json:"id"`
	MaterialType string `json:"material_type"`
	Unit         string `json:"unit"`
	Price        string `json:"price"`
}

type RateCardFinishing struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ChargeBasis string `json:"charge_basis"`
	Price       string `json:"price"`
	IsDefault   bool   `json:"is_default"`
	IsMandatory bool   `json:"is_mandatory"`
}

type RateCardDiscount struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	MinQuantity int    `json:"min_quantity"`
	Percent     string `json:"percent"`
}

type RateCardCapability struct {
	SheetSize string `json:"sheet_size"`
	MinGSM    int    `json:"min_gsm"`
	MaxGSM    int    `json:"max_gsm"`
}

type RateCardSummary struct {
	Printing     int `json:"printing"`
	Papers       int `json:"papers"`
	Materials    int `json:"materials"`
	Finishings   int `json:"finishings"`
	Discounts    int `json:"discounts"`
	Capabilities int `json:"capabilities"`
}

// RateCardResponse is the read-only view of a shop's validated rate card. Buying
// prices stay internal.
type RateCardResponse struct {
	ShopSlug     string               `json:"shop_slug"`
	Currency     string               `json:"currency"`
	Printing     []RateCardPrinting   `json:"printing"`
	Papers       []RateCardPaper      `json:"papers"`
	Materials    []RateCardMaterial   `json:"materials"`
	Finishings   []RateCardFinishing  `json:"finishings"`
	Discounts    []RateCardDiscount   `json:"discounts"`
	Capabilities []RateCardCapability `json:"capabilities"`
	Summary      RateCardSummary      `json:"summary"`
	Anomalies    []string             `json:"anomalies"`
}
