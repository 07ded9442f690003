// Package store persists verified tenant gateway configurations. Credential
// bags are encrypted at rest; the detection subsystem itself never touches
// this storage.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a tenant has no configuration for a gateway.
var ErrNotFound = errors.New("gateway configuration not found")

const createTableSQL = `
CREATE TABLE IF NOT EXISTS gateway_configs (
	tenant_id   TEXT NOT NULL,
	gateway     TEXT NOT NULL,
	credentials TEXT NOT NULL,
	verified_at DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL,
	PRIMARY KEY (tenant_id, gateway)
)`

// Store is the SQLite-backed tenant gateway configuration store.
type Store struct {
	db  *sql.DB
	enc *Encryptor
}

// New opens (or creates) the store at the given path. The encryptKey secures
// credentials at rest.
func New(path, encryptKey string) (*Store, error) {
	enc, err := NewEncryptor(encryptKey)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, enc: enc}, nil
}

// Save stores a verified credential bag for a tenant's gateway, replacing
// any previous configuration.
func (s *Store) Save(ctx context.Context, tenantID, gateway string, bag map[string]string) error {
	encrypted, err := s.enc.Encrypt(bag)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO gateway_configs (tenant_id, gateway, credentials, verified_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, gateway)
		DO UPDATE SET credentials = excluded.credentials,
		              verified_at = excluded.verified_at,
		              updated_at  = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, tenantID, gateway, encrypted, now, now); err != nil {
		return fmt.Errorf("failed to save gateway configuration: %w", err)
	}

	return nil
}

// Get returns the decrypted credential bag for a tenant's gateway.
func (s *Store) Get(ctx context.Context, tenantID, gateway string) (map[string]string, error) {
	var encrypted string
	query := `SELECT credentials FROM gateway_configs WHERE tenant_id = ? AND gateway = ?`

	err := s.db.QueryRowContext(ctx, query, tenantID, gateway).Scan(&encrypted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load gateway configuration: %w", err)
	}

	return s.enc.Decrypt(encrypted)
}

// List returns the gateway slugs a tenant has configured, with their
// verification timestamps.
func (s *Store) List(ctx context.Context, tenantID string) ([]ConfigSummary, error) {
	query := `SELECT gateway, verified_at FROM gateway_configs WHERE tenant_id = ? ORDER BY gateway`

	rows, err := s.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gateway configurations: %w", err)
	}
	defer rows.Close()

	var out []ConfigSummary
	for rows.Next() {
		var summary ConfigSummary
		if err := rows.Scan(&summary.Gateway, &summary.VerifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gateway configuration: %w", err)
		}
		out = append(out, summary)
	}

	return out, rows.Err()
}

// Delete removes a tenant's gateway configuration.
func (s *Store) Delete(ctx context.Context, tenantID, gateway string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM gateway_configs WHERE tenant_id = ? AND gateway = ?`, tenantID, gateway)
	if err != nil {
		return fmt.Errorf("failed to delete gateway configuration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ConfigSummary is one row of a tenant's configured gateways.
type ConfigSummary struct {
	Gateway    string    `json:"gateway"`
	VerifiedAt time.Time `json:"verifiedAt"`
}
