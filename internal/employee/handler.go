package employee

import (
	"context"
	"encoding/json"
	"net/http"

	internal "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/internal/transport"
)

type ServiceAPI interface {
	GetProfile(ctx context.Context, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, email string, dto *UpdateProfileDTO) (*Profile, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), identity.Email)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProfileResponse{Profile: profile})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateProfile: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), identity.Email, &dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ProfileResponse{Profile: profile})
}
