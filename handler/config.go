package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/syncads/paydetect/gateway"
	"github.com/syncads/paydetect/infra/response"
	"github.com/syncads/paydetect/infra/store"
)

// ConfigHandler handles tenant gateway configuration requests. Credentials
// are verified against the live gateway before being persisted.
type ConfigHandler struct {
	store    *store.Store
	detector *gateway.Detector
	validate *validator.Validate
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(s *store.Store, detector *gateway.Detector, validate *validator.Validate) *ConfigHandler {
	return &ConfigHandler{store: s, detector: detector, validate: validate}
}

// SetConfig verifies and stores a tenant's credentials for a gateway. The
// bag is normalized before persistence so stored configurations always use
// canonical camelCase keys.
func (h *ConfigHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "At least one credential is required", err)
		return
	}

	slug := chi.URLParam(r, "gateway")
	result := h.detector.TestGateway(r.Context(), slug, req.Credentials)
	if !result.Success {
		_ = response.WriteJSON(w, http.StatusUnprocessableEntity, response.Response{
			Code:    http.StatusUnprocessableEntity,
			Success: false,
			Message: result.Message,
			Data:    detectionData(result),
		})
		return
	}

	bag := gateway.Normalize(req.Credentials).Bag()
	if err := h.store.Save(r.Context(), tenantID, slug, bag); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to save gateway configuration", err)
		return
	}

	response.Success(w, http.StatusOK, result.Message, detectionData(result))
}

// GetConfig returns a tenant's stored configuration for a gateway with
// secrets masked.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	slug := chi.URLParam(r, "gateway")
	bag, err := h.store.Get(r.Context(), tenantID, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Gateway configuration not found", nil)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to load gateway configuration", err)
		return
	}

	masked := make(map[string]string, len(bag))
	for k, v := range bag {
		masked[k] = maskSecret(v)
	}

	response.Success(w, http.StatusOK, "Gateway configuration", map[string]any{
		"gateway":     slug,
		"credentials": masked,
	})
}

// ListConfigs returns the gateways a tenant has configured.
func (h *ConfigHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	summaries, err := h.store.List(r.Context(), tenantID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list gateway configurations", err)
		return
	}

	response.Success(w, http.StatusOK, "Configured gateways", map[string]any{
		"gateways": summaries,
	})
}

// DeleteConfig removes a tenant's configuration for a gateway.
func (h *ConfigHandler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFrom(w, r)
	if !ok {
		return
	}

	slug := chi.URLParam(r, "gateway")
	if err := h.store.Delete(r.Context(), tenantID, slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Gateway configuration not found", nil)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete gateway configuration", err)
		return
	}

	response.Success(w, http.StatusOK, "Gateway configuration deleted", nil)
}

func tenantFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID := r.Header.Get("X-Tenant-ID")
	if tenantID == "" {
		response.Error(w, http.StatusBadRequest, "X-Tenant-ID header is required", nil)
		return "", false
	}
	return tenantID, true
}

// maskSecret keeps the first and last four characters visible. Short values
// are fully masked.
func maskSecret(v string) string {
	if len(v) <= 8 {
		return "****"
	}
	return v[:4] + "****" + v[len(v)-4:]
}
