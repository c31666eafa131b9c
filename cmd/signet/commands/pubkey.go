package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"signet/armor"
	"signet/internal/keystore"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the PEM public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			sk, err := keystore.Load(secretPath(), passphrase)
			if err != nil {
				return err
			}
			pubPEM, err := armor.EncodePublicKey(sk.Public())
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n%s", armor.Fingerprint(sk.Public()), pubPEM)
			return nil
		},
	}
}
