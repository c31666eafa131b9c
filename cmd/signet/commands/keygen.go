package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signet/armor"
	"signet/internal/keystore"
	"signet/sign/ed25519"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store the secret key encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			if _, err := os.Stat(secretPath()); err == nil {
				return fmt.Errorf("refusing to overwrite existing key %s", secretPath())
			}

			kp, err := ed25519.GenerateKeyPair(nil)
			if err != nil {
				return err
			}
			if err := keystore.Save(secretPath(), passphrase, kp.SK, keystore.DefaultParams()); err != nil {
				return err
			}

			pubPEM, err := armor.EncodePublicKey(kp.PK)
			if err != nil {
				return err
			}
			if err := os.WriteFile(publicPath(), pubPEM, 0o644); err != nil {
				return err
			}

			fmt.Printf("Key pair created in %s\nFingerprint: %s\n%s", home, armor.Fingerprint(kp.PK), pubPEM)
			return nil
		},
	}
}
