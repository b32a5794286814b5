package satisfaction

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alorahq/hr-portal/internal/auth"
	"github.com/alorahq/hr-portal/internal/transport"
)

type ServiceAPI interface {
	Status(ctx context.Context, identity *auth.Identity) (*StatusResponse, error)
	MasterData(ctx context.Context) (*MasterDataResponse, error)
	Submit(ctx context.Context, identity *auth.Identity, dto *SubmitSurveyDTO) (*SubmitResponse, error)
	PeriodStats(ctx context.Context, surveyKey string) (*Stats, error)
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

// GetStatus handles GET /satisfaction/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	status, err := h.Service.Status(r.Context(), identity)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, status)
}

// GetMasterData handles GET /satisfaction/master-data
func (h *Handler) GetMasterData(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.MasterData(r.Context())
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, data)
}

// Submit handles POST /satisfaction/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, _ := auth.IdentityFromContext(r.Context())

	var dto SubmitSurveyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Submit(r.Context(), identity, &dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// GetStats handles GET /satisfaction/stats?survey_key=YYYY-Qn
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.PeriodStats(r.Context(), r.URL.Query().Get("survey_key"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, stats)
}
