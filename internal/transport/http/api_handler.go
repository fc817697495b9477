package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"blended-advisor/internal/app"
	"blended-advisor/internal/domain"
	"go.uber.org/zap"
)

// APIHandler serves the stateless JSON API.
type APIHandler struct {
	service *app.AdvisorService
	log     *zap.Logger
}

func NewAPIHandler(service *app.AdvisorService, log *zap.Logger) *APIHandler {
	return &APIHandler{service: service, log: log}
}

type recommendRequest struct {
	Responses []string `json:"responses"`
}

type questionnaireView struct {
	Questions []domain.Question `json:"questions"`
}

// Questionnaire lists the questions and their options.
func (h *APIHandler) Questionnaire(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, questionnaireView{Questions: domain.Questionnaire()})
}

// Recommend answers POST {"responses": ["a", ...]} with the ranked models.
func (h *APIHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4<<10)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Message: "invalid request body"})
		return
	}

	rec, err := h.service.Recommend(r.Context(), req.Responses)
	if errors.Is(err, domain.ErrInvalidResponseCount) {
		writeJSON(w, http.StatusUnprocessableEntity, errorPayload{Message: err.Error()})
		return
	}
	if err != nil {
		h.log.Error("recommend failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorPayload{Message: "internal error"})
		return
	}
	h.log.Debug("recommendation served", zap.Strings("models", rec.Lines()))
	writeJSON(w, http.StatusOK, newRecommendationView(rec))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
