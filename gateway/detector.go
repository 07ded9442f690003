package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuditEntry records one probe attempt for the audit trail.
type AuditEntry struct {
	AttemptID  string        `json:"attempt_id"`
	Gateway    string        `json:"gateway"`
	Success    bool          `json:"success"`
	HTTPStatus int           `json:"http_status"`
	Message    string        `json:"message"`
	Duration   time.Duration `json:"duration"`
	Timestamp  time.Time     `json:"timestamp"`
}

// AuditSink receives probe attempt records. Implementations must not block
// the detection path.
type AuditSink interface {
	LogAttempt(ctx context.Context, entry AuditEntry)
}

// Detector runs credential probes against the gateways in its registry. It
// holds no state between calls beyond its immutable configuration, so a
// single Detector is safe for concurrent use.
type Detector struct {
	registry *Registry
	client   *ProbeClient
	logger   zerolog.Logger
	audit    AuditSink
}

// Option configures a Detector.
type Option func(*Detector)

// WithProbeTimeout sets the per-probe timeout.
func WithProbeTimeout(timeout time.Duration) Option {
	return func(d *Detector) { d.client = NewProbeClient(timeout) }
}

// WithProbeClient replaces the probe client entirely.
func WithProbeClient(c *ProbeClient) Option {
	return func(d *Detector) { d.client = c }
}

// WithLogger sets the structured logger used for per-adapter diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Detector) { d.logger = logger }
}

// WithAuditSink attaches an audit sink recording every probe attempt.
func WithAuditSink(sink AuditSink) Option {
	return func(d *Detector) { d.audit = sink }
}

// NewDetector creates a detector over the given registry.
func NewDetector(registry *Registry, opts ...Option) *Detector {
	d := &Detector{
		registry: registry,
		client:   NewProbeClient(DefaultProbeTimeout),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry the detector probes.
func (d *Detector) Registry() *Registry {
	return d.registry
}

// Supported returns the public projection of every gateway the detector can
// probe.
func (d *Detector) Supported() []Summary {
	return d.registry.Supported()
}

// AutoDetect normalizes the raw credential bag and probes every registered
// gateway in order, sequentially, returning on the first success. Probes are
// deliberately not parallel: speculative authenticated requests against
// gateways the credentials don't belong to can trip rate limits or fraud
// heuristics on unrelated accounts.
//
// Individual failure reasons are logged but only the aggregate message is
// returned; callers needing per-gateway detail should use TestGateway.
// Cancelling the context aborts the in-flight probe and skips the remaining
// gateways.
func (d *Detector) AutoDetect(ctx context.Context, bag map[string]string) DetectionResult {
	creds := Normalize(bag)
	attemptID := uuid.New().String()

	for _, desc := range d.registry.descriptors {
		if err := ctx.Err(); err != nil {
			return DetectionResult{Success: false, Message: fmt.Sprintf("Detecção cancelada: %v", err)}
		}

		result := d.safeProbe(ctx, attemptID, desc, creds)
		if result.Success {
			d.logger.Info().
				Str("attempt_id", attemptID).
				Str("gateway", desc.Slug).
				Msg("gateway detected")
			return result
		}

		d.logger.Debug().
			Str("attempt_id", attemptID).
			Str("gateway", desc.Slug).
			Int("http_status", result.HTTPStatus).
			Str("reason", result.Message).
			Msg("gateway probe failed")
	}

	return DetectionResult{
		Success: false,
		Message: "Nenhum gateway compatível detectado. Verifique as credenciais informadas",
	}
}

// TestGateway bypasses detection and probes a single named gateway. The bag
// is normalized the same way AutoDetect normalizes it, so both paths accept
// the same key spellings.
func (d *Detector) TestGateway(ctx context.Context, slug string, bag map[string]string) DetectionResult {
	desc, ok := d.registry.Lookup(slug)
	if !ok {
		return DetectionResult{Success: false, Message: fmt.Sprintf("Gateway '%s' não suportado", slug)}
	}
	return d.safeProbe(ctx, uuid.New().String(), desc, Normalize(bag))
}

// safeProbe runs one probe and converts panics from descriptor callbacks
// into a failed result, so one broken adapter cannot abort the iteration
// over the remaining ones.
func (d *Detector) safeProbe(ctx context.Context, attemptID string, desc Descriptor, creds Credentials) (result DetectionResult) {
	started := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			result = DetectionResult{
				Success: false,
				Message: fmt.Sprintf("%s: falha interna do adaptador: %v", desc.Name, rec),
			}
		}
		if d.audit != nil {
			d.audit.LogAttempt(ctx, AuditEntry{
				AttemptID:  attemptID,
				Gateway:    desc.Slug,
				Success:    result.Success,
				HTTPStatus: result.HTTPStatus,
				Message:    result.Message,
				Duration:   time.Since(started),
				Timestamp:  started.UTC(),
			})
		}
	}()

	result = d.probe(ctx, desc, creds)
	return result
}

// probe performs the precondition check and the live credential test for one
// descriptor. Missing required fields short-circuit before any network call.
func (d *Detector) probe(ctx context.Context, desc Descriptor, creds Credentials) DetectionResult {
	for _, field := range desc.RequiredFields {
		if !creds.Has(field) {
			return DetectionResult{
				Success: false,
				Message: fmt.Sprintf("%s: %s é obrigatório", desc.Name, field),
			}
		}
	}

	header, value := desc.BuildAuth(creds)

	resp, err := d.client.Get(ctx, desc.TestEndpoint, header, value)
	if err != nil {
		return transportFailure(desc, err)
	}

	if desc.accepts(resp.StatusCode) {
		info := desc.Info()
		caps := desc.Capabilities
		return DetectionResult{
			Success:      true,
			Gateway:      &info,
			Message:      fmt.Sprintf("Credenciais %s verificadas com sucesso", desc.Name),
			HTTPStatus:   resp.StatusCode,
			Capabilities: &caps,
		}
	}

	return DetectionResult{
		Success:    false,
		HTTPStatus: resp.StatusCode,
		Message:    fmt.Sprintf("%s: credenciais rejeitadas (HTTP %d)", desc.Name, resp.StatusCode),
	}
}

// transportFailure collapses timeouts, DNS errors and connection failures
// into the same failure shape as an auth rejection. Timeouts map to HTTP 408
// so callers get a structured hint without parsing the message.
func transportFailure(desc Descriptor, err error) DetectionResult {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return DetectionResult{
			Success:    false,
			HTTPStatus: http.StatusRequestTimeout,
			Message:    fmt.Sprintf("%s: timeout ao contatar o gateway", desc.Name),
		}
	}
	return DetectionResult{
		Success: false,
		Message: fmt.Sprintf("%s: falha na requisição: %v", desc.Name, err),
	}
}
