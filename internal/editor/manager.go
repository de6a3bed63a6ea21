package editor

import (
	"context"
	"sync"
	"time"

	"storefront-admin/internal/logger"
	"storefront-admin/internal/product"
	"storefront-admin/internal/producttype"

	"go.uber.org/zap"
)

const (
	sessionTTL    = 30 * time.Minute
	sweepInterval = time.Minute
)

// Manager holds the live editing sessions. Sessions are in-memory only:
// closing one (or letting it idle out) discards unsubmitted edits, the same
// way navigating away from an edit screen does.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	products product.Service
	types    producttype.Service
}

func NewManager(products product.Service, types producttype.Service) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		products: products,
		types:    types,
	}
	go m.sweep()
	return m
}

// Open loads the product and starts a session for it. selectedTypeID, when
// set, overrides the product's own type for the capability decision — the
// edit form may have a different type selected than the one saved.
func (m *Manager) Open(ctx context.Context, productID string, selectedTypeID *string) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "editor"),
		zap.String("product_id", productID),
	)

	p, err := m.products.GetProductByID(ctx, productID)
	if err != nil {
		log.Error("failed to load product for editing", zap.Error(err))
		return nil, err
	}

	selected := p.ProductType
	if selectedTypeID != nil && *selectedTypeID != "" {
		t, err := m.types.GetProductTypeByID(ctx, *selectedTypeID)
		if err != nil {
			log.Error("failed to load selected product type", zap.Error(err))
			return nil, err
		}
		selected = t
	}

	s := newSession(p, selected, m.products)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	log.Info("editor session opened",
		zap.String("session_id", s.ID),
		zap.Bool("variants_supported", s.Supported()),
		zap.Int("variant_count", len(p.Variants)),
	)

	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// sweep drops idle sessions to prevent abandoned edits from piling up.
func (m *Manager) sweep() {
	for {
		time.Sleep(sweepInterval)

		m.mu.Lock()
		for id, s := range m.sessions {
			s.mu.Lock()
			idle := time.Since(s.lastUsed)
			s.mu.Unlock()

			if idle > sessionTTL {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
