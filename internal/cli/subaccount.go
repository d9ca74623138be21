package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yolodolo42/subkit/internal/session"
	"github.com/yolodolo42/subkit/internal/signer"
	"github.com/yolodolo42/subkit/internal/subaccount"
	"github.com/yolodolo42/subkit/internal/ui"
)

var subaccountCmd = &cobra.Command{
	Use:   "subaccount",
	Short: "Manage sub-accounts",
	Long:  `Create and inspect sub-accounts linked to your primary account.`,
}

var subaccountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sub-account linked to the primary account",
	RunE:  runSubaccountCreate,
}

var subaccountStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connected account and cached sub-account",
	RunE:  runSubaccountStatus,
}

func init() {
	rootCmd.AddCommand(subaccountCmd)
	subaccountCmd.AddCommand(subaccountCreateCmd)
	subaccountCmd.AddCommand(subaccountStatusCmd)

	subaccountCreateCmd.Flags().Bool("force", false, "Create even if a sub-account is already cached")
}

func runSubaccountCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")

	dataDir := getDataDir()
	store, err := session.NewStore(dataDir)
	if err != nil {
		return err
	}

	sess, err := store.Load()
	if err != nil {
		return err
	}

	if !sess.Connected() {
		return fmt.Errorf("not connected: run 'subkit connect' first")
	}

	// Creation is not idempotent on the provider side: repeating it makes a
	// second, distinct sub-account. Refuse by default when one is cached.
	if sess.HasSubAccount() && !force {
		fmt.Printf("Sub-account already exists: %s\n", ui.AddressStyle.Render(sess.SubAccount()))
		fmt.Println(ui.DimStyle.Render("Use --force to create another (the new address replaces this one)."))
		return nil
	}

	conn, cfg, err := dialProvider(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	signers, err := signer.NewProvisioner(dataDir)
	if err != nil {
		return err
	}

	prov := subaccount.NewProvisioner(conn, signers, sess)

	var address string
	err = ui.Await("Creating sub-account, approve in your wallet...", func() error {
		addr, err := prov.Create(ctx)
		if err != nil {
			return err
		}
		address = addr
		return nil
	})
	if err != nil {
		return fmt.Errorf("sub-account creation failed: %w", err)
	}

	if err := store.Save(sess); err != nil {
		return fmt.Errorf("sub-account created but session not saved: %w", err)
	}

	fmt.Printf("%s Sub-account created\n", ui.SuccessStyle.Render(ui.SymbolCheck))
	fmt.Printf("Address: %s\n", ui.AddressStyle.Render(address))
	if cfg.ExplorerURL != "" {
		fmt.Printf("Explorer: %s/address/%s\n", cfg.ExplorerURL, address)
	}

	return nil
}

func runSubaccountStatus(cmd *cobra.Command, args []string) error {
	store, err := session.NewStore(getDataDir())
	if err != nil {
		return err
	}

	sess, err := store.Load()
	if err != nil {
		return err
	}

	if !sess.Connected() {
		fmt.Println("Not connected.")
		fmt.Println(ui.DimStyle.Render("Run 'subkit connect' to connect to a wallet provider."))
		return nil
	}

	fmt.Printf("Primary account: %s\n", ui.AddressStyle.Render(sess.PrimaryAccount()))
	if sess.HasSubAccount() {
		fmt.Printf("Sub-account:     %s\n", ui.AddressStyle.Render(sess.SubAccount()))
	} else {
		fmt.Printf("Sub-account:     %s\n", ui.DimStyle.Render("none"))
	}

	return nil
}
