package variant

import "strings"

// Field names accepted by Store.Update. They match the wire field names the
// product endpoint expects.
const (
	FieldName          = "name"
	FieldSKU           = "sku"
	FieldOptions       = "options"
	FieldPriceModifier = "price_modifier"
	FieldStockQuantity = "stock_quantity"
	FieldMinStockAlert = "min_stock_alert"
	FieldDisplayOrder  = "display_order"
	FieldIsActive      = "is_active"
	FieldAllowPurchase = "allow_purchase"
)

// Store owns the in-memory variant list for one product editing session.
// It seeds at most once per lifetime; every later change comes from user
// actions. Nothing here does I/O.
type Store struct {
	items  []Variant
	seeded bool
}

func NewStore() *Store {
	return &Store{}
}

// Seeded reports whether the one-time initialization has completed.
func (s *Store) Seeded() bool {
	return s.seeded
}

// Seed populates the store from the server-shaped variants, once. Later calls
// are no-ops regardless of input, so a re-render handing the same (or a
// different) list back down never repopulates the store. A nil or empty input
// still marks initialization complete.
func (s *Store) Seed(initial []SeedVariant) {
	if s.seeded {
		return
	}
	s.seeded = true

	if len(initial) == 0 {
		return
	}

	s.items = make([]Variant, 0, len(initial))
	for i, in := range initial {
		s.items = append(s.items, normalize(in, i+1))
	}
}

// Add appends a new variant built from the draft, filling every default.
// Drafts with a blank name or sku are silently rejected. Returns whether the
// store changed.
func (s *Store) Add(d Draft) bool {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.SKU) == "" {
		return false
	}

	s.items = append(s.items, Variant{
		ID:            NewLocalID(),
		Name:          d.Name,
		SKU:           d.SKU,
		Options:       map[string]string{},
		PriceModifier: formatModifier(d.PriceModifier),
		StockQuantity: d.StockQuantity,
		IsInStock:     d.StockQuantity > 0,
		MinStockAlert: DefaultMinStockAlert,
		DisplayOrder:  len(s.items) + 1,
		IsActive:      true,
		Settings:      Settings{IsActive: true, AllowPurchase: true},
	})
	return true
}

// Update replaces a single field on the variant with the given id. Unknown
// ids and unknown fields are silent no-ops. Setting stock_quantity recomputes
// is_in_stock in the same mutation. Returns whether the store changed.
func (s *Store) Update(id, field string, value any) bool {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		return applyField(&s.items[i], field, value)
	}
	return false
}

// Remove deletes the variant with the given id. Remaining variants keep their
// ids and relative order; display_order values are not renumbered. The caller
// is responsible for confirming the destructive action first.
func (s *Store) Remove(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the current ordered variants as deep copies.
func (s *Store) List() []Variant {
	return cloneList(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

func applyField(v *Variant, field string, value any) bool {
	switch field {
	case FieldName:
		v.Name = toString(value)
	case FieldSKU:
		v.SKU = toString(value)
	case FieldOptions:
		m, ok := toOptions(value)
		if !ok {
			return false
		}
		v.Options = m
	case FieldPriceModifier:
		v.PriceModifier = formatModifier(toString(value))
	case FieldStockQuantity:
		qty := toInt(value)
		v.StockQuantity = qty
		v.IsInStock = qty > 0
	case FieldMinStockAlert:
		v.MinStockAlert = toInt(value)
	case FieldDisplayOrder:
		v.DisplayOrder = toInt(value)
	case FieldIsActive:
		v.IsActive = toBool(value)
	case FieldAllowPurchase:
		v.Settings.AllowPurchase = toBool(value)
	default:
		return false
	}
	return true
}

// JSON-decoded values arrive as float64/string/bool; the coercions below
// keep Update tolerant of both native and decoded inputs.

func toString(value any) string {
	s, _ := value.(string)
	return s
}

func toInt(value any) int {
	switch n := value.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func toBool(value any) bool {
	b, _ := value.(bool)
	return b
}

func toOptions(value any) (map[string]string, bool) {
	switch m := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = toString(v)
		}
		return out, true
	}
	return nil, false
}
