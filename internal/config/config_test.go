package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaultProviders(t *testing.T) {
	providers := DefaultProviders()

	require.Contains(t, providers, "base")
	require.Contains(t, providers, "base-sepolia")
	require.Contains(t, providers, "local")

	assert.False(t, providers["base"].IsTestnet)
	assert.True(t, providers["base-sepolia"].IsTestnet)

	for name, cfg := range providers {
		assert.NotEmpty(t, cfg.URL, "provider %s must have a URL", name)
	}
}

func TestResolveProvider(t *testing.T) {
	t.Run("returns built-in provider", func(t *testing.T) {
		resetViper(t)

		cfg, err := ResolveProvider("base-sepolia")
		require.NoError(t, err)
		assert.Equal(t, "https://wallet-rpc.sepolia.base.org", cfg.URL)
	})

	t.Run("unknown provider is an error", func(t *testing.T) {
		resetViper(t)

		_, err := ResolveProvider("nope")
		require.Error(t, err)
	})

	t.Run("explicit URL override wins", func(t *testing.T) {
		resetViper(t)
		viper.Set("provider.url", "http://127.0.0.1:9999")

		cfg, err := ResolveProvider("base")
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:9999", cfg.URL)
	})

	t.Run("config file overrides a built-in provider", func(t *testing.T) {
		resetViper(t)
		viper.Set("providers.base.url", "https://example.org/rpc")

		cfg, err := ResolveProvider("base")
		require.NoError(t, err)
		assert.Equal(t, "https://example.org/rpc", cfg.URL)
	})

	t.Run("config file can define a new provider", func(t *testing.T) {
		resetViper(t)
		viper.Set("providers.staging.url", "https://staging.example.org/rpc")
		viper.Set("providers.staging.is_testnet", true)

		cfg, err := ResolveProvider("staging")
		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.org/rpc", cfg.URL)
		assert.True(t, cfg.IsTestnet)
	})
}
