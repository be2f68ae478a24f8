package cmd

import (
	"fmt"

	"github.com/nomasters/otp"
	"github.com/spf13/cobra"
)

func (a *app) newDecryptCmd() *cobra.Command {
	decryptCmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a ciphertext and print the message",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runDecrypt,
	}
	decryptCmd.Flags().StringP("key", "k", "", "key the message was encrypted with")
	decryptCmd.Flags().Bool("trim", false, "strip trailing pad symbols")
	decryptCmd.MarkFlagRequired("key")
	return decryptCmd
}

func (a *app) runDecrypt(cmd *cobra.Command, args []string) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	key, _ := cmd.Flags().GetString("key")
	if err := a.preflight(cmd, e, args[0], key); err != nil {
		return err
	}

	message, err := e.Decrypt(args[0], key)
	if err != nil {
		return err
	}
	if trim, _ := cmd.Flags().GetBool("trim"); trim {
		message = e.Unpad(message)
	}
	a.log.Infow("message decrypted", "key", otp.Fingerprint(key))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
	return err
}
