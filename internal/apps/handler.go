package apps

import (
	"context"
	"net/http"

	internal "github.com/alorahq/hr-portal/internal"
	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/internal/transport"
)

type ServiceAPI interface {
	AppsForRole(ctx context.Context, role auth.Role) ([]AppEntry, error)
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

func (h *Handler) GetApps(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	entries, err := h.Service.AppsForRole(r.Context(), identity.Role)
	if err != nil {
		h.Logger.Error("GetApps: failed to list apps", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list apps")
		return
	}

	h.WriteJSON(w, http.StatusOK, AppsResponse{Apps: entries})
}
