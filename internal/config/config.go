package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ProviderConfig holds the endpoint configuration for a wallet provider.
type ProviderConfig struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	ExplorerURL string `yaml:"explorer_url"`
	IsTestnet   bool   `yaml:"is_testnet"`
}

// DefaultProviders returns the built-in wallet provider endpoints.
func DefaultProviders() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		"base": {
			Name:        "Base Smart Wallet",
			URL:         "https://wallet-rpc.base.org",
			ExplorerURL: "https://basescan.org",
			IsTestnet:   false,
		},
		"base-sepolia": {
			Name:        "Base Smart Wallet (Sepolia)",
			URL:         "https://wallet-rpc.sepolia.base.org",
			ExplorerURL: "https://sepolia.basescan.org",
			IsTestnet:   true,
		},
		"local": {
			Name:      "Local wallet daemon",
			URL:       "http://127.0.0.1:8585",
			IsTestnet: true,
		},
	}
}

// ResolveProvider returns the provider configuration for a name, applying
// per-provider overrides from the config file / environment. An explicit
// `provider.url` override wins over everything and yields an ad-hoc entry.
func ResolveProvider(name string) (*ProviderConfig, error) {
	if url := viper.GetString("provider.url"); url != "" {
		return &ProviderConfig{Name: name, URL: url}, nil
	}

	providers := DefaultProviders()

	// Config file may define or override providers under providers.<name>.
	key := fmt.Sprintf("providers.%s", name)
	if viper.IsSet(key) {
		cfg, ok := providers[name]
		if !ok {
			cfg = &ProviderConfig{Name: name}
			providers[name] = cfg
		}
		if v := viper.GetString(key + ".url"); v != "" {
			cfg.URL = v
		}
		if v := viper.GetString(key + ".explorer_url"); v != "" {
			cfg.ExplorerURL = v
		}
		if viper.IsSet(key + ".is_testnet") {
			cfg.IsTestnet = viper.GetBool(key + ".is_testnet")
		}
	}

	cfg, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("provider %s has no URL configured", name)
	}
	return cfg, nil
}

// ListProviders returns the names of all built-in providers.
func ListProviders() []string {
	providers := DefaultProviders()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}
