package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/alorahq/hr-portal/internal/transport"
	"github.com/alorahq/hr-portal/pkg/logger"
)

// CookieConfig carries what the handler needs to mint and clear the
// session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Cookie  CookieConfig
	ttl     time.Duration
}

func NewHandler(svc ServiceAPI, cookie CookieConfig, ttl time.Duration) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	if cookie.Name == "" {
		cookie.Name = "alora_sid"
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Cookie:      cookie,
		ttl:         ttl,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	h.WriteJSON(w, http.StatusOK, IdentityResponse{User: &session.Identity})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, IdentityResponse{User: identity})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.SessionToken(r, h.Cookie.Name)
	if token != "" {
		if err := h.Service.Logout(r.Context(), token); err != nil {
			h.WriteAppError(w, err)
			return
		}
	}

	h.clearSessionCookie(w)
	h.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok || identity == nil {
		h.WriteError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	h.WriteJSON(w, http.StatusOK, IdentityResponse{User: identity})
}

// SessionMiddleware resolves the cookie into an identity and rejects the
// request before any handler logic when no valid session exists. Each hit
// slides the expiry window, on the store and on the cookie.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.SessionToken(r, h.Cookie.Name)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		session, err := h.Service.Resolve(r.Context(), token)
		if err != nil {
			h.WriteAppError(w, err)
			return
		}
		if session == nil {
			h.clearSessionCookie(w)
			h.WriteError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		h.setSessionCookie(w, session.Token, session.ExpiresAt)

		ctx := ContextWithIdentity(r.Context(), &session.Identity)
		ctx = logger.With(ctx, "user_id", session.Identity.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.ttl / time.Second),
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
