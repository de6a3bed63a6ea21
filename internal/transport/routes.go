package transport

import (
	"net/http"

	"storefront-admin/internal/logger"
	"storefront-admin/internal/middleware"
)

// NewRouter builds the full HTTP surface. Login stays open; everything else
// requires an admin or editor token.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", h.HandleLogin)

	protected := http.NewServeMux()
	protected.HandleFunc("POST /api/auth/register", h.HandleRegister)
	protected.HandleFunc("GET /api/products", h.HandleListProducts)
	protected.HandleFunc("GET /api/products/{id}", h.HandleGetProduct)
	protected.HandleFunc("GET /api/product-types", h.HandleListProductTypes)

	protected.HandleFunc("POST /api/products/{id}/editor", h.HandleOpenEditor)
	protected.HandleFunc("GET /api/editor/{sid}/variants", h.HandleEditorVariants)
	protected.HandleFunc("POST /api/editor/{sid}/variants", h.HandleAddVariant)
	protected.HandleFunc("PATCH /api/editor/{sid}/variants/{vid}", h.HandleUpdateVariant)
	protected.HandleFunc("DELETE /api/editor/{sid}/variants/{vid}", h.HandleRemoveVariant)
	protected.HandleFunc("PATCH /api/editor/{sid}/fields", h.HandleEditField)
	protected.HandleFunc("POST /api/editor/{sid}/submit", h.HandleSubmitEditor)
	protected.HandleFunc("DELETE /api/editor/{sid}", h.HandleCloseEditor)

	mux.Handle("/api/", middleware.RequireAdmin(protected))

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.CORS(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
