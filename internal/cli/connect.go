package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yolodolo42/subkit/internal/config"
	"github.com/yolodolo42/subkit/internal/provider"
	"github.com/yolodolo42/subkit/internal/session"
	"github.com/yolodolo42/subkit/internal/ui"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to the wallet provider",
	Long:  `Establish a connection to the wallet provider and record the primary account.`,
	RunE:  runConnect,
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the stored session",
	RunE:  runDisconnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
}

// dialProvider resolves the configured provider and opens a connection.
func dialProvider(ctx context.Context) (*provider.Conn, *config.ProviderConfig, error) {
	name := viper.GetString("provider.name")
	cfg, err := config.ResolveProvider(name)
	if err != nil {
		return nil, nil, err
	}

	conn, err := provider.Dial(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	return conn, cfg, nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	conn, cfg, err := dialProvider(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	var account string
	err = ui.Await(fmt.Sprintf("Connecting to %s, approve in your wallet...", cfg.Name), func() error {
		addr, err := conn.Connect(ctx)
		if err != nil {
			return err
		}
		account = addr.Hex()
		return nil
	})
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}

	store, err := session.NewStore(getDataDir())
	if err != nil {
		return err
	}

	// Connecting again keeps a previously created sub-account; only the
	// primary account is refreshed.
	sess, err := store.Load()
	if err != nil {
		return err
	}
	sess.SetPrimaryAccount(account)
	if err := store.Save(sess); err != nil {
		return err
	}

	fmt.Printf("%s Connected to %s\n", ui.SuccessStyle.Render(ui.SymbolCheck), cfg.Name)
	fmt.Printf("Primary account: %s\n", ui.AddressStyle.Render(account))

	return nil
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore(getDataDir())
	if err != nil {
		return err
	}

	if err := store.Clear(); err != nil {
		return err
	}

	fmt.Println("Session cleared.")
	return nil
}
