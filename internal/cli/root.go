package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "subkit",
		Short: "Smart-wallet sub-account provisioning from the terminal",
		Long: `subkit connects to a smart-wallet provider and provisions
sub-accounts linked to your primary account.

A sub-account is a subordinate wallet identity the provider creates on
request, authorized by a locally held webauthn-p256 signing key. Creation
requires approval in your wallet app; subkit waits for it.`,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.subkit/config.yaml)")
	rootCmd.PersistentFlags().String("provider", "base-sepolia", "Wallet provider to use")
	rootCmd.PersistentFlags().String("provider-url", "", "Override the wallet provider RPC URL")
	_ = viper.BindPFlag("provider.name", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("provider.url", rootCmd.PersistentFlags().Lookup("provider-url"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".subkit")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config directory: %v\n", err)
		}

		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("subkit")
	viper.AutomaticEnv()

	// Silently ignore missing config file - it's optional
	_ = viper.ReadInConfig()
}

func getDataDir() string {
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".subkit"
	}
	return filepath.Join(home, ".subkit")
}
