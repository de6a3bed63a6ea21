package variant

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultMinStockAlert = 5
	DefaultPriceModifier = "0.00"
)

// Settings carries the per-variant toggles.
type Settings struct {
	IsActive      bool `json:"is_active"`
	AllowPurchase bool `json:"allow_purchase"`
}

// Variant is one purchasable configuration of a product, e.g. "Red - Large".
// IsInStock is derived: it must always equal StockQuantity > 0.
type Variant struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Options       map[string]string `json:"options"`
	PriceModifier string            `json:"price_modifier"`
	StockQuantity int               `json:"stock_quantity"`
	IsInStock     bool              `json:"is_in_stock"`
	MinStockAlert int               `json:"min_stock_alert"`
	DisplayOrder  int               `json:"display_order"`
	IsActive      bool              `json:"is_active"`
	Settings      Settings          `json:"settings"`
}

// SettingsInput is the server-shaped settings record with optional fields.
type SettingsInput struct {
	IsActive      *bool `json:"is_active,omitempty"`
	AllowPurchase *bool `json:"allow_purchase,omitempty"`
}

// SeedVariant is the server-shaped record a product arrives with. Unset
// fields fall back to the editor defaults during normalization.
type SeedVariant struct {
	ID            *string           `json:"id,omitempty"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Options       map[string]string `json:"options,omitempty"`
	PriceModifier *string           `json:"price_modifier,omitempty"`
	StockQuantity *int              `json:"stock_quantity,omitempty"`
	MinStockAlert *int              `json:"min_stock_alert,omitempty"`
	DisplayOrder  *int              `json:"display_order,omitempty"`
	IsActive      *bool             `json:"is_active,omitempty"`
	Settings      *SettingsInput    `json:"settings,omitempty"`
}

// Draft holds the add-variant form input.
type Draft struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	PriceModifier string `json:"price_modifier"`
	StockQuantity int    `json:"stock_quantity"`
}

// NewLocalID generates a session-local variant id. Not a durable identity:
// server-assigned ids are round-tripped as-is, these only key local edits.
func NewLocalID() string {
	return uuid.NewString()
}

// formatModifier renders a raw price modifier as a 2-decimal string.
// Blank or unparseable input falls back to "0.00".
func formatModifier(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return DefaultPriceModifier
	}
	return d.StringFixed(2)
}

// normalize fills every default for a server-shaped record. position is the
// record's 1-based place in the incoming list.
func normalize(in SeedVariant, position int) Variant {
	v := Variant{
		ID:            NewLocalID(),
		Name:          in.Name,
		SKU:           in.SKU,
		Options:       map[string]string{},
		PriceModifier: DefaultPriceModifier,
		MinStockAlert: DefaultMinStockAlert,
		DisplayOrder:  position,
		IsActive:      true,
		Settings:      Settings{IsActive: true, AllowPurchase: true},
	}

	if in.ID != nil && *in.ID != "" {
		v.ID = *in.ID
	}
	for k, val := range in.Options {
		v.Options[k] = val
	}
	if in.PriceModifier != nil {
		v.PriceModifier = formatModifier(*in.PriceModifier)
	}
	if in.StockQuantity != nil {
		v.StockQuantity = *in.StockQuantity
	}
	v.IsInStock = v.StockQuantity > 0
	if in.MinStockAlert != nil {
		v.MinStockAlert = *in.MinStockAlert
	}
	if in.DisplayOrder != nil {
		v.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	if in.Settings != nil {
		if in.Settings.IsActive != nil {
			v.Settings.IsActive = *in.Settings.IsActive
		}
		if in.Settings.AllowPurchase != nil {
			v.Settings.AllowPurchase = *in.Settings.AllowPurchase
		}
	}

	return v
}

func cloneVariant(v Variant) Variant {
	out := v
	if v.Options != nil {
		out.Options = make(map[string]string, len(v.Options))
		for k, val := range v.Options {
			out.Options[k] = val
		}
	}
	return out
}

func cloneList(list []Variant) []Variant {
	out := make([]Variant, 0, len(list))
	for _, v := range list {
		out = append(out, cloneVariant(v))
	}
	return out
}
