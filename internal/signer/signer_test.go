package signer

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yolodolo42/subkit/internal/testutil"
)

func TestNewProvisioner(t *testing.T) {
	t.Run("creates data directory", func(t *testing.T) {
		dir := filepath.Join(testutil.TempDir(t), "nested")
		p, err := NewProvisioner(dir)
		require.NoError(t, err)
		require.NotNil(t, p)

		_, err = os.Stat(dir)
		require.NoError(t, err)
	})
}

func TestProvisioner_GetSigner(t *testing.T) {
	t.Run("generates a key on first call", func(t *testing.T) {
		p, err := NewProvisioner(testutil.TempDir(t))
		require.NoError(t, err)

		assert.False(t, p.Exists())

		sig, err := p.GetSigner(context.Background())
		require.NoError(t, err)
		assert.True(t, p.Exists())

		// Uncompressed P-256 point: 0x04 prefix byte plus two 32-byte coordinates.
		require.True(t, strings.HasPrefix(sig.PublicKey, "0x04"))
		raw, err := hex.DecodeString(strings.TrimPrefix(sig.PublicKey, "0x"))
		require.NoError(t, err)
		assert.Len(t, raw, 65)

		assert.Len(t, sig.AccountHandle, 16)
	})

	t.Run("is idempotent across calls and instances", func(t *testing.T) {
		dir := testutil.TempDir(t)
		p1, err := NewProvisioner(dir)
		require.NoError(t, err)

		first, err := p1.GetSigner(context.Background())
		require.NoError(t, err)

		second, err := p1.GetSigner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)

		p2, err := NewProvisioner(dir)
		require.NoError(t, err)
		third, err := p2.GetSigner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, third)
	})

	t.Run("distinct directories get distinct keys", func(t *testing.T) {
		p1, err := NewProvisioner(testutil.TempDir(t))
		require.NoError(t, err)
		p2, err := NewProvisioner(testutil.TempDir(t))
		require.NoError(t, err)

		sig1, err := p1.GetSigner(context.Background())
		require.NoError(t, err)
		sig2, err := p2.GetSigner(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, sig1.PublicKey, sig2.PublicKey)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		p, err := NewProvisioner(testutil.TempDir(t))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = p.GetSigner(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, p.Exists(), "no key should be written on a cancelled call")
	})

	t.Run("rejects corrupt key file", func(t *testing.T) {
		dir := testutil.TempDir(t)
		p, err := NewProvisioner(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, "signer.pem"), []byte("not a pem"), 0600)
		require.NoError(t, err)

		_, err = p.GetSigner(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKeyCorrupt)
	})

	t.Run("key file has owner-only permissions", func(t *testing.T) {
		dir := testutil.TempDir(t)
		p, err := NewProvisioner(dir)
		require.NoError(t, err)

		_, err = p.GetSigner(context.Background())
		require.NoError(t, err)

		info, err := os.Stat(filepath.Join(dir, "signer.pem"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}
