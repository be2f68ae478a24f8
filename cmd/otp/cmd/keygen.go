package cmd

import (
	"fmt"

	"github.com/nomasters/otp"
	"github.com/spf13/cobra"
)

func (a *app) newKeygenCmd() *cobra.Command {
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key from the alphabet",
		Args:  cobra.NoArgs,
		RunE:  a.runKeygen,
	}
	keygenCmd.Flags().IntP("length", "n", 0, fmt.Sprintf("number of symbols (default is key_length, %d)", otp.DefaultKeyLength))
	return keygenCmd
}

func (a *app) runKeygen(cmd *cobra.Command, args []string) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	n := a.v.GetInt("key_length")
	if cmd.Flags().Changed("length") {
		n, _ = cmd.Flags().GetInt("length")
	}
	if n < 1 {
		return fmt.Errorf("key length must be positive, got %d", n)
	}

	key, err := e.RandomKey(n)
	if err != nil {
		return err
	}
	a.log.Debugw("generated key", "length", n, "fingerprint", otp.Fingerprint(key))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
	return err
}
