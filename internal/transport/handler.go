package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"storefront-admin/internal/admin"
	"storefront-admin/internal/editor"
	"storefront-admin/internal/product"
	"storefront-admin/internal/producttype"
	"storefront-admin/internal/utils"
	"storefront-admin/internal/variant"
)

type Handler struct {
	Products product.Service
	Types    producttype.Service
	Admins   admin.Service
	Sessions *editor.Manager
}

func NewHandler(products product.Service, types producttype.Service, admins admin.Service, sessions *editor.Manager) *Handler {
	return &Handler{
		Products: products,
		Types:    types,
		Admins:   admins,
		Sessions: sessions,
	}
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.Admins.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}

type registerRequest struct {
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     admin.Role `json:"role"`
}

// HandleRegister creates a new admin or editor account. Registration sits
// behind auth so only a logged-in admin can add users.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteJSONError(w, "email and password are required", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = admin.RoleEditor
	}

	token, u, err := h.Admins.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, admin.ErrEmailExists) {
			utils.WriteJSONError(w, err.Error(), http.StatusConflict)
			return
		}
		utils.WriteJSONError(w, "registration failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  u,
	})
}

// --- Products ---

func (h *Handler) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := product.QueryOptions{
		IncludeCount: q.Get("include_count") == "true",
	}
	if s := q.Get("search"); s != "" {
		opts.Search = &s
	}
	if s := q.Get("status"); s != "" {
		opts.Status = &s
	}
	if s := q.Get("product_type_id"); s != "" {
		opts.ProductTypeID = &s
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		opts.Page = int32(n)
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = int32(n)
	}

	res, err := h.Products.GetList(r.Context(), opts)
	if err != nil {
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"total":    res.TotalCount,
		"products": product.MapProductsToDetails(res.Items),
	})
}

func (h *Handler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Products.GetProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to fetch product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, product.MapProductToDetail(p))
}

// --- Product types ---

func (h *Handler) HandleListProductTypes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter *string
	if s := q.Get("search"); s != "" {
		filter = &s
	}

	types, err := h.Types.GetProductTypes(r.Context(), filter, nil, nil)
	if err != nil {
		utils.WriteJSONError(w, "failed to list product types", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"product_types": types})
}

// --- Editor sessions ---

type openEditorRequest struct {
	ProductTypeID *string `json:"product_type_id,omitempty"`
}

func (h *Handler) HandleOpenEditor(w http.ResponseWriter, r *http.Request) {
	var req openEditorRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	s, err := h.Sessions.Open(r.Context(), r.PathValue("id"), req.ProductTypeID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to open editor", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"session_id": s.ID,
		"product_id": s.ProductID,
		"supported":  s.Supported(),
		"variants":   s.Variants(),
	})
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*editor.Session, bool) {
	s, err := h.Sessions.Get(r.PathValue("sid"))
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) HandleEditorVariants(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"supported": s.Supported(),
		"variants":  s.Variants(),
	})
}

func (h *Handler) HandleAddVariant(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var draft variant.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.AddVariant(draft); err != nil {
		writeEditorError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{"variants": s.Variants()})
}

type updateVariantRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (h *Handler) HandleUpdateVariant(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req updateVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Field == "" {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.UpdateVariant(r.PathValue("vid"), req.Field, req.Value); err != nil {
		writeEditorError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"variants": s.Variants()})
}

func (h *Handler) HandleRemoveVariant(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := s.RemoveVariant(r.PathValue("vid"), confirmed); err != nil {
		writeEditorError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"variants": s.Variants()})
}

type editFieldRequest struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (h *Handler) HandleEditField(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req editFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Field == "" {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.EditField(req.Field, req.Value)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"form": s.Form()})
}

func (h *Handler) HandleSubmitEditor(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	p, err := s.Submit(r.Context())
	if err != nil {
		if errors.Is(err, product.ErrNoFieldsToUpdate) || errors.Is(err, product.ErrNameEmpty) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, product.ErrNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to save product", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, product.MapProductToDetail(p))
}

func (h *Handler) HandleCloseEditor(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Close(r.PathValue("sid"))
	w.WriteHeader(http.StatusNoContent)
}

func writeEditorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, editor.ErrVariantsUnsupported):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, editor.ErrConfirmRequired),
		errors.Is(err, editor.ErrDraftIncomplete):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "editor operation failed", http.StatusInternalServerError)
	}
}
