package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// AffiliateHandler handles affiliate-related HTTP requests.
type AffiliateHandler struct {
	service service.AffiliateService
	logger  zerolog.Logger
}

// NewAffiliateHandler creates a new affiliate handler.
func NewAffiliateHandler(service service.AffiliateService, logger zerolog.Logger) *AffiliateHandler {
	return &AffiliateHandler{
		service: service,
		logger:  logger.With().Str("handler", "affiliate").Logger(),
	}
}

// Register handles POST /api/affiliate/register requests.
func (h *AffiliateHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.AffiliateRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/affiliate/stats/{code} requests.
func (h *AffiliateHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/api/affiliate/stats/")
	if code == "" {
		writeError(w, http.StatusBadRequest, "affiliate code is required", h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context(), code)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Click handles POST /api/affiliate/click requests.
func (h *AffiliateHandler) Click(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.AffiliateClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Click(r.Context(), &req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Click tracked",
	})
}
