package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nomasters/otp"
	"github.com/spf13/cobra"
)

func (a *app) newEncryptCmd() *cobra.Command {
	encryptCmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encrypt a message and print the ciphertext",
		Long: `Encrypt a message with a one-time pad. The message is padded to the length
of the key, so the ciphertext is always as long as the key. When no key is
given a new one is generated and written to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runEncrypt,
	}
	encryptCmd.Flags().StringP("key", "k", "", "key to encrypt with (default is a generated key)")
	return encryptCmd
}

func (a *app) runEncrypt(cmd *cobra.Command, args []string) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	message := a.v.GetString("message")
	if len(args) > 0 {
		message = args[0]
	}
	key, generated, err := a.keyOrGenerate(cmd, e)
	if err != nil {
		return err
	}
	if err := a.preflight(cmd, e, message, key); err != nil {
		return err
	}

	ciphertext, err := e.Encrypt(message, key)
	if err != nil {
		return err
	}
	if generated {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "key: %s\n", key)
	}
	a.log.Infow("message encrypted", "length", len([]rune(ciphertext)), "key", otp.Fingerprint(key))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
	return err
}
