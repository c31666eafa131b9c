package commands

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"signet/internal/keystore"
	"signet/sign/ed25519"
)

func signCmd() *cobra.Command {
	var (
		withNoise  bool
		selfVerify bool
	)

	cmd := &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a file (or stdin), printing a base64 signature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			sk, err := keystore.Load(secretPath(), passphrase)
			if err != nil {
				return err
			}
			message, err := readMessage(args)
			if err != nil {
				return err
			}

			opts := &ed25519.SignOptions{SelfVerify: selfVerify}
			if withNoise {
				noise, err := ed25519.GenerateNoise(nil)
				if err != nil {
					return err
				}
				opts.Noise = &noise
			}

			sig, err := sk.Sign(message, opts)
			if err != nil {
				return err
			}
			fmt.Println(base64.StdEncoding.EncodeToString(sig.Slice()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withNoise, "noise", false, "randomize the signature nonce")
	cmd.Flags().BoolVar(&selfVerify, "self-verify", false, "re-verify the signature before printing it")
	return cmd
}
