package commands

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signet/armor"
	"signet/sign/ed25519"
)

func verifyCmd() *cobra.Command {
	var (
		keyFile string
		sigB64  string
	)

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a base64 signature against a PEM public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyFile == "" {
				keyFile = publicPath()
			}
			pemBytes, err := os.ReadFile(keyFile)
			if err != nil {
				return err
			}
			pk, err := armor.DecodePublicKey(pemBytes)
			if err != nil {
				return err
			}

			rawSig, err := base64.StdEncoding.DecodeString(sigB64)
			if err != nil {
				return fmt.Errorf("decoding signature: %w", err)
			}
			sig, err := ed25519.SignatureFromBytes(rawSig)
			if err != nil {
				return err
			}

			message, err := readMessage(args)
			if err != nil {
				return err
			}
			if err := pk.Verify(message, sig); err != nil {
				return err
			}
			fmt.Println("Signature OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&keyFile, "key", "", "public key PEM file (default <home>/public.pem)")
	cmd.Flags().StringVar(&sigB64, "sig", "", "base64 signature")
	_ = cmd.MarkFlagRequired("sig")
	return cmd
}
