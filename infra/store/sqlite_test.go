package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "paydetect.db"), "test-encrypt-key")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bag := map[string]string{"secretKey": "sk_live_abc", "publicKey": "pk_live_abc"}
	require.NoError(t, s.Save(ctx, "tenant-1", "stripe", bag))

	got, err := s.Get(ctx, "tenant-1", "stripe")
	require.NoError(t, err)
	assert.Equal(t, bag, got)
}

func TestStore_SaveReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tenant-1", "asaas", map[string]string{"apiKey": "old"}))
	require.NoError(t, s.Save(ctx, "tenant-1", "asaas", map[string]string{"apiKey": "new"}))

	got, err := s.Get(ctx, "tenant-1", "asaas")
	require.NoError(t, err)
	assert.Equal(t, "new", got["apiKey"])
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "tenant-1", "stripe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_TenantsAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tenant-1", "stripe", map[string]string{"secretKey": "sk1"}))

	_, err := s.Get(ctx, "tenant-2", "stripe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_List(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tenant-1", "stripe", map[string]string{"secretKey": "sk"}))
	require.NoError(t, s.Save(ctx, "tenant-1", "asaas", map[string]string{"apiKey": "ak"}))

	summaries, err := s.List(ctx, "tenant-1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "asaas", summaries[0].Gateway)
	assert.Equal(t, "stripe", summaries[1].Gateway)
	assert.False(t, summaries[0].VerifiedAt.IsZero())
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tenant-1", "stripe", map[string]string{"secretKey": "sk"}))
	require.NoError(t, s.Delete(ctx, "tenant-1", "stripe"))

	_, err := s.Get(ctx, "tenant-1", "stripe")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "tenant-1", "stripe"), ErrNotFound)
}

func TestStore_CredentialsEncryptedAtRest(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "tenant-1", "stripe", map[string]string{"secretKey": "sk_live_secret"}))

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT credentials FROM gateway_configs WHERE tenant_id = ? AND gateway = ?`,
		"tenant-1", "stripe").Scan(&raw)
	require.NoError(t, err)
	assert.NotContains(t, raw, "sk_live_secret")
}

func TestEncryptor_RoundTrip(t *testing.T) {
	enc, err := NewEncryptor("secret")
	require.NoError(t, err)

	bag := map[string]string{"apiKey": "value", "clientSecret": "other"}
	ciphertext, err := enc.Encrypt(bag)
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "value")

	got, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, bag, got)
}

func TestEncryptor_WrongKeyFails(t *testing.T) {
	enc, err := NewEncryptor("secret")
	require.NoError(t, err)
	other, err := NewEncryptor("different")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt(map[string]string{"apiKey": "value"})
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestNewEncryptor_EmptySecret(t *testing.T) {
	_, err := NewEncryptor("")
	assert.Error(t, err)
}
