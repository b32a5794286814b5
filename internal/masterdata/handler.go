package masterdata

import (
	"context"
	"net/http"

	"github.com/alorahq/hr-portal/internal/transport"
)

type ServiceAPI interface {
	GetLookups(ctx context.Context) (*Lookups, error)
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

func (h *Handler) GetLookups(w http.ResponseWriter, r *http.Request) {
	lookups, err := h.Service.GetLookups(r.Context())
	if err != nil {
		h.Logger.Error("GetLookups: failed to load lookups", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to load master data")
		return
	}

	h.WriteJSON(w, http.StatusOK, lookups)
}
