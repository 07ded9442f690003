package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/syncads/paydetect/gateway"
	"github.com/syncads/paydetect/infra/response"
)

// DetectHandler handles detection related HTTP requests
type DetectHandler struct {
	detector *gateway.Detector
	validate *validator.Validate
}

// NewDetectHandler creates a new detect handler
func NewDetectHandler(detector *gateway.Detector, validate *validator.Validate) *DetectHandler {
	return &DetectHandler{detector: detector, validate: validate}
}

// DetectRequest carries the raw credential bag to probe. Keys may use any of
// the accepted spellings; normalization happens inside the detector.
type DetectRequest struct {
	Credentials map[string]string `json:"credentials" validate:"required,min=1"`
}

// AutoDetect probes every supported gateway with the given credentials and
// returns the first one that accepts them.
func (h *DetectHandler) AutoDetect(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	result := h.detector.AutoDetect(r.Context(), req.Credentials)
	writeResult(w, result)
}

// TestGateway probes a single named gateway, bypassing auto-detection.
func (h *DetectHandler) TestGateway(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	slug := chi.URLParam(r, "gateway")
	result := h.detector.TestGateway(r.Context(), slug, req.Credentials)
	writeResult(w, result)
}

// ListGateways returns the public projection of every supported gateway.
func (h *DetectHandler) ListGateways(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Supported gateways", map[string]any{
		"gateways": h.detector.Supported(),
	})
}

// ValidateCredentials runs the cheap offline pre-check, without any network
// probe.
func (h *DetectHandler) ValidateCredentials(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	valid, message := gateway.ValidateCredentials(req.Credentials)
	status := http.StatusOK
	if !valid {
		status = http.StatusUnprocessableEntity
	}
	_ = response.WriteJSON(w, status, response.Response{
		Code:    status,
		Success: valid,
		Message: message,
	})
}

func (h *DetectHandler) parseRequest(w http.ResponseWriter, r *http.Request) (DetectRequest, bool) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request format", err)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "At least one credential is required", err)
		return req, false
	}
	return req, true
}

// writeResult maps a detection outcome onto the response envelope. A failed
// detection is still a well-formed API response, not a server error.
func writeResult(w http.ResponseWriter, result gateway.DetectionResult) {
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	_ = response.WriteJSON(w, status, response.Response{
		Code:    status,
		Success: result.Success,
		Message: result.Message,
		Data:    detectionData(result),
	})
}

func detectionData(result gateway.DetectionResult) any {
	if result.Gateway == nil && result.HTTPStatus == 0 {
		return nil
	}
	data := map[string]any{}
	if result.Gateway != nil {
		data["gateway"] = result.Gateway
	}
	if result.Capabilities != nil {
		data["capabilities"] = result.Capabilities
	}
	if result.HTTPStatus != 0 {
		data["httpStatus"] = result.HTTPStatus
	}
	return data
}
