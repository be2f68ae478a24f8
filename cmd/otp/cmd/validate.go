package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/nomasters/otp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// checkSymbols reports every symbol of text missing from the alphabet, each
// at the position it first appears.
func checkSymbols(e *otp.Engine, source otp.Source, text string) error {
	invalid := e.InvalidSymbols(text)
	if len(invalid) == 0 {
		return nil
	}
	first := make(map[rune]int, len(invalid))
	pos := 0
	for _, r := range text {
		if _, ok := first[r]; !ok {
			first[r] = pos
		}
		pos++
	}

	var err error
	for _, r := range invalid {
		err = multierr.Append(err, &otp.InvalidSymbolError{Symbol: r, Source: source, Position: first[r]})
	}
	return err
}

// preflight checks the whole message and key before encrypting, so the user
// sees every bad symbol at once instead of only the first one.
func (a *app) preflight(cmd *cobra.Command, e *otp.Engine, message, key string) error {
	err := multierr.Combine(
		checkSymbols(e, otp.SourceMessage, message),
		checkSymbols(e, otp.SourceKey, key),
	)
	if err == nil {
		return nil
	}

	errs := multierr.Errors(err)
	red := color.New(color.FgRed)
	for _, symErr := range errs {
		red.Fprintln(cmd.ErrOrStderr(), symErr)
	}
	a.log.Debugw("preflight failed", "invalid", len(errs), "alphabet", e.Alphabet().String())
	return fmt.Errorf("found %d invalid symbols, allowed symbols are %q", len(errs), e.Alphabet().String())
}
