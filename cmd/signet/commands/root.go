package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	secretFile = "secret.key"
	publicFile = "public.pem"
)

var (
	home       string
	passphrase string
)

func Execute() error {
	root := &cobra.Command{
		Use:          "signet",
		Short:        "Ed25519 signing and verification CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".signet")
			}
			return os.MkdirAll(home, 0o700)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key dir (default ~/.signet)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the secret key")

	root.AddCommand(keygenCmd(), pubkeyCmd(), signCmd(), verifyCmd())
	return root.Execute()
}

func secretPath() string { return filepath.Join(home, secretFile) }
func publicPath() string { return filepath.Join(home, publicFile) }

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}

// readMessage returns the contents of the named file, or stdin when no
// argument is given.
func readMessage(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
