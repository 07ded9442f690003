package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"github.com/rs/zerolog"

	"github.com/syncads/paydetect/gateway"
)

// Logger implements gateway.AuditSink by indexing every probe attempt. The
// index write happens off the detection path; failed writes are retried with
// exponential backoff and eventually dropped with a warning.
type Logger struct {
	client *Client
	log    zerolog.Logger
}

// NewLogger creates an audit logger over the given client.
func NewLogger(client *Client, log zerolog.Logger) *Logger {
	return &Logger{client: client, log: log}
}

// LogAttempt indexes a probe attempt record. It never blocks the caller.
func (l *Logger) LogAttempt(_ context.Context, entry gateway.AuditEntry) {
	go l.index(entry)
}

func (l *Logger) index(entry gateway.AuditEntry) {
	doc := map[string]any{
		"timestamp":   entry.Timestamp.Format(time.RFC3339),
		"attempt_id":  entry.AttemptID,
		"gateway":     entry.Gateway,
		"success":     entry.Success,
		"http_status": entry.HTTPStatus,
		"message":     entry.Message,
		"duration_ms": entry.Duration.Milliseconds(),
	}

	body, err := json.Marshal(doc)
	if err != nil {
		l.log.Warn().Err(err).Msg("failed to marshal audit entry")
		return
	}

	operation := func() error {
		req := opensearchapi.IndexRequest{
			Index: l.client.IndexName(entry.Gateway),
			Body:  bytes.NewReader(body),
		}

		res, err := req.Do(context.Background(), l.client.GetClient())
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.IsError() {
			return fmt.Errorf("index error: %s", res.String())
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(operation, policy); err != nil {
		l.log.Warn().
			Err(err).
			Str("gateway", entry.Gateway).
			Str("attempt_id", entry.AttemptID).
			Msg("failed to index detection attempt")
	}
}
