package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// SocialHandler handles social share tracking HTTP requests.
type SocialHandler struct {
	service service.SocialService
	logger  zerolog.Logger
}

// NewSocialHandler creates a new social handler.
func NewSocialHandler(service service.SocialService, logger zerolog.Logger) *SocialHandler {
	return &SocialHandler{
		service: service,
		logger:  logger.With().Str("handler", "social").Logger(),
	}
}

// Share handles POST /api/social/share requests.
func (h *SocialHandler) Share(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.SocialShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Share(r.Context(), &req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Share tracked",
	})
}

// Shares handles GET /api/social/shares/{productId} requests.
func (h *SocialHandler) Shares(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/social/shares/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	productID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	counts, err := h.service.Counts(r.Context(), productID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}
