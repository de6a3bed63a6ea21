package editor

import (
	"context"
	"sync"
	"time"

	"storefront-admin/internal/product"
	"storefront-admin/internal/producttype"
	"storefront-admin/internal/variant"

	"github.com/google/uuid"
)

// Session is one product's editing state: the variant store seeded once from
// the server payload, the bridge keeping the form's variants field current,
// and the capability decision made at open time. A session never outlives the
// manager that holds it and persists nothing unless Submit is called.
type Session struct {
	ID        string
	ProductID string

	mu        sync.Mutex
	supported bool
	store     *variant.Store
	bridge    *variant.Bridge
	form      *ProductForm
	raw       []variant.SeedVariant
	products  product.Service
	lastUsed  time.Time
}

func newSession(p *product.Product, selected *producttype.ProductType, products product.Service) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		ProductID: p.ID,
		products:  products,
		raw:       p.Variants,
		lastUsed:  time.Now(),
		form: NewProductForm(map[string]any{
			"name":            p.Name,
			"sku":             p.SKU,
			"description":     p.Description,
			"base_price":      p.BasePrice,
			"status":          p.Status,
			"category_id":     p.CategoryID,
			"product_type_id": p.ProductTypeID,
		}),
	}

	s.supported = variant.SupportsVariants(selected, p.ProductType)
	s.store = variant.NewStore()
	s.bridge = variant.NewBridge(s.store, s.form)

	// An unsupported product keeps its server data visible but the store
	// stays unseeded, so the bridge can never publish.
	if s.supported {
		s.store.Seed(p.Variants)
		s.bridge.Prime()
	}

	return s
}

func (s *Session) touch() {
	s.lastUsed = time.Now()
}

// Supported reports whether the variant editor applies to this product.
func (s *Session) Supported() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.supported
}

// Variants returns the store's current ordered list.
func (s *Session) Variants() []variant.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.store.List()
}

// ServerVariants returns the untouched server payload, for display when the
// editor is gated off.
func (s *Session) ServerVariants() []variant.SeedVariant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

func (s *Session) AddVariant(d variant.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.supported {
		return ErrVariantsUnsupported
	}
	if !s.store.Add(d) {
		return ErrDraftIncomplete
	}

	s.bridge.Sync()
	return nil
}

func (s *Session) UpdateVariant(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.supported {
		return ErrVariantsUnsupported
	}

	// Unknown ids and fields are silent no-ops; the bridge's diff keeps
	// them from republishing.
	s.store.Update(id, field, value)
	s.bridge.Sync()
	return nil
}

func (s *Session) RemoveVariant(id string, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if !s.supported {
		return ErrVariantsUnsupported
	}
	if !confirmed {
		return ErrConfirmRequired
	}

	s.store.Remove(id)
	s.bridge.Sync()
	return nil
}

// EditField records a product-level form edit (name, status, base price...).
func (s *Session) EditField(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.form.SetField(name, value)
}

// Form exposes the form's current values.
func (s *Session) Form() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Values()
}

// Submit hands every changed form field, variants included, to the product
// service in a single update.
func (s *Session) Submit(ctx context.Context) (*product.Product, error) {
	s.mu.Lock()
	input := s.buildUpdateInput()
	s.mu.Unlock()

	return s.products.Update(ctx, input)
}

func (s *Session) buildUpdateInput() product.UpdateInput {
	input := product.UpdateInput{ID: s.ProductID}

	if v, ok := s.form.DirtyField("name"); ok {
		str := asString(v)
		input.Name = &str
	}
	if v, ok := s.form.DirtyField("sku"); ok {
		str := asString(v)
		input.SKU = &str
	}
	if v, ok := s.form.DirtyField("description"); ok {
		str := asString(v)
		input.Description = &str
	}
	if v, ok := s.form.DirtyField("base_price"); ok {
		price := asFloat(v)
		input.BasePrice = &price
	}
	if v, ok := s.form.DirtyField("status"); ok {
		str := asString(v)
		input.Status = &str
	}
	if v, ok := s.form.DirtyField("category_id"); ok {
		str := asString(v)
		input.CategoryID = &str
	}
	if v, ok := s.form.DirtyField("product_type_id"); ok {
		str := asString(v)
		input.ProductTypeID = &str
	}
	if v, ok := s.form.DirtyField(variant.FormKey); ok {
		if list, ok := v.([]variant.FormVariant); ok {
			input.Variants = list
		}
	}

	return input
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
