package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bloodlink/auth-service/internal/domain"
	appCtx "github.com/bloodlink/auth-service/internal/pkg/context"
	"github.com/bloodlink/auth-service/internal/service"
	"github.com/bloodlink/auth-service/internal/transport/rest/response"
	"github.com/go-chi/render"
)

type Handler struct {
	svc *service.AuthService

	// Diagnostics. store is nil when no database is configured.
	store  domain.UserRepository
	dbName string
	uriSet bool
}

func NewHandler(svc *service.AuthService, store domain.UserRepository, dbName string, uriSet bool) *Handler {
	return &Handler{svc: svc, store: store, dbName: dbName, uriSet: uriSet}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Blood Bank API is running",
	})
}

// Probe is a best-effort diagnostic: it never returns an error status, probe
// failures become strings in the payload (truncated so a driver error can't
// flood the response).
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store == nil {
		resp["database"] = "⚠️ Available but not initialized"
		response.JSON(w, http.StatusOK, resp)
		return
	}

	resp["database"] = "✅ Available"
	if h.uriSet {
		resp["database_url"] = "✅ Set"
	} else {
		resp["database_url"] = "❌ Not Set"
	}
	resp["database_name"] = h.dbName
	resp["connection_status"] = "Connected"

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	names, err := h.store.CollectionNames(ctx, 10)
	if err != nil {
		resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
	} else {
		resp["collections"] = names
		resp["database"] = "✅ Connected & Working"
	}

	response.JSON(w, http.StatusOK, resp)
}

// Name is a pointer so a missing field fails required while an explicit
// empty string passes, matching the previous backend. The password ceiling
// is bcrypt's 72-byte input limit.
type registerRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`

	Phone      *string `json:"phone"`
	City       *string `json:"city"`
	BloodGroup *string `json:"blood_group"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// userPayload is the only user shape that leaves the API. Phone, role and
// password hash are deliberately absent.
type userPayload struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	City       *string `json:"city"`
	BloodGroup *string `json:"blood_group"`
}

func toPayload(u *domain.User) userPayload {
	return userPayload{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		City:       u.City,
		BloodGroup: u.BloodGroup,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusUnprocessableEntity, "request.invalid", "invalid body", nil)
		return
	}

	if meta := validateRequest(&req); meta != nil {
		fail(w, r, http.StatusUnprocessableEntity, "request.validation", "validation failed", meta)
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Name:       *req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		City:       req.City,
		BloodGroup: req.BloodGroup,
	})
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Registration successful", toPayload(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusUnprocessableEntity, "request.invalid", "invalid body", nil)
		return
	}

	if meta := validateRequest(&req); meta != nil {
		fail(w, r, http.StatusUnprocessableEntity, "request.validation", "validation failed", meta)
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", toPayload(user))
}

func handleErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		fail(w, r, http.StatusInternalServerError, "store.unavailable", "Database not configured", nil)
	case errors.Is(err, domain.ErrEmailTaken):
		fail(w, r, http.StatusBadRequest, "registration.email_taken", "Email already registered", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Identical message for unknown email and wrong password.
		fail(w, r, http.StatusUnauthorized, "auth.invalid_credentials", "Invalid email or password", nil)
	case errors.Is(err, domain.ErrAccountInactive):
		fail(w, r, http.StatusForbidden, "auth.account_inactive", "Account is inactive", nil)
	default:
		// Do not leak internal details.
		fail(w, r, http.StatusInternalServerError, "internal", "internal error", nil)
	}
}

func fail(w http.ResponseWriter, r *http.Request, status int, code, message string, meta map[string]string) {
	reqID := appCtx.GetRequestID(r.Context())
	if reqID == "" {
		reqID = "no-request-id"
	}
	response.Fail(w, status, code, message, meta, reqID)
}

// truncate limits to n characters, not bytes, so multibyte driver errors are
// never cut mid-rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
