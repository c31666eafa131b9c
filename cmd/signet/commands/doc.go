// Package commands defines the signet CLI.
//
// Commands
//
//   - keygen   Generate a key pair and store the secret key encrypted
//   - pubkey   Print the PEM public key
//   - sign     Sign a file or stdin, printing a base64 signature
//   - verify   Verify a base64 signature against a PEM public key
//
// # Implementation
//
// The root command resolves the key directory before any subcommand runs.
// The secret key lives in an encrypted keystore file; the public key is
// kept beside it as PEM so it can be shared without the passphrase.
package commands
