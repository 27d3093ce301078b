package handlers

import (
	"net/http"

	"coursepilot/internal/service"
)

// PreferencesHandler handles HTTP requests for the preferences singleton.
type PreferencesHandler struct {
	prefs *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(prefs *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

// Load returns the stored preferences, or the defaults when none are saved.
func (h *PreferencesHandler) Load(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Load(r.Context())
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to load preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// Update merges the set fields into the stored preferences.
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.PreferencesUpdate
	if !decodeBody(w, r, &req) {
		return
	}
	prefs, err := h.prefs.Update(r.Context(), req)
	if err != nil {
		handleServiceError(w, r.Context(), err, "Failed to update preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
