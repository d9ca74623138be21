package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yolodolo42/subkit/internal/signer"
	"github.com/yolodolo42/subkit/internal/ui"
)

var signerCmd = &cobra.Command{
	Use:   "signer",
	Short: "Manage the local signing key",
}

var signerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the local signer's public key",
	Long: `Show the public key and handle of the local webauthn-p256 signer.

The key is created on first use and reused afterwards; this command creates
it if it does not exist yet.`,
	RunE: runSignerShow,
}

func init() {
	rootCmd.AddCommand(signerCmd)
	signerCmd.AddCommand(signerShowCmd)
}

func runSignerShow(cmd *cobra.Command, args []string) error {
	signers, err := signer.NewProvisioner(getDataDir())
	if err != nil {
		return err
	}

	existed := signers.Exists()

	sig, err := signers.GetSigner(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load signer: %w", err)
	}

	if !existed {
		fmt.Printf("%s New signer key generated\n", ui.SuccessStyle.Render(ui.SymbolCheck))
	}
	fmt.Printf("Handle:     %s\n", sig.AccountHandle)
	fmt.Printf("Public key: %s\n", sig.PublicKey)
	fmt.Printf("Key type:   webauthn-p256\n")

	return nil
}
