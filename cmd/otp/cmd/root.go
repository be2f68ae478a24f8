// Copyright © 2018 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/nomasters/otp"
	"github.com/nomasters/otp/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	configName     = "otp"
	envPrefix      = "otp"
	defaultMessage = "HELLO WORLD"
)

// app carries the state shared by all commands of a single invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *zap.SugaredLogger
	random  otp.RandomSource
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: log.Nop()}

	rootCmd := &cobra.Command{
		Use:   "otp [message]",
		Short: "One-time pad encryption over a custom alphabet",
		Long: `otp encrypts and decrypts messages with a one-time pad over any alphabet.

Alphabets with a power of two number of symbols combine symbols with XOR,
all others use addition modulo the alphabet size. Run without a subcommand
to see a message encrypted and decrypted symbol by symbol:

	otp "ATTACK AT DAWN" --key "QWERTYUIOPASDFGHJKL"
	`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.initConfig,
		RunE:              a.runDemo,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./otp.yaml or $HOME/otp.yaml)")
	pf.StringP("alphabet", "a", otp.DefaultAlphabet, "symbols that messages and keys are made of")
	pf.String("pad", "", "symbol used to pad messages shorter than the key")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")

	a.v.BindPFlag("alphabet", pf.Lookup("alphabet"))
	a.v.BindPFlag("pad", pf.Lookup("pad"))

	rootCmd.Flags().StringP("key", "k", "", "key to encrypt with (default is a generated key)")

	rootCmd.AddCommand(
		a.newEncryptCmd(),
		a.newDecryptCmd(),
		a.newKeygenCmd(),
		a.newConfigCmd(),
	)
	return rootCmd
}

// initConfig reads in config file and ENV variables if set, then sets up
// logging and color output.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	a.v.SetDefault("key_length", otp.DefaultKeyLength)
	a.v.SetDefault("message", defaultMessage)
	a.v.SetDefault("color", true)
	a.v.SetDefault("log.level", log.LevelWarn)
	a.v.SetDefault("log.encoding", log.EncodingConsole)

	if a.cfgFile != "" {
		// Use config file from the flag.
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	flags := cmd.Flags()
	noColor, _ := flags.GetBool("no-color")
	if noColor || !a.v.GetBool("color") {
		color.NoColor = true
	}

	level := a.v.GetString("log.level")
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = log.LevelDebug
	}
	a.log = log.New(log.Config{
		Level:        level,
		Encoding:     a.v.GetString("log.encoding"),
		ColorEnabled: !color.NoColor,
	}, cmd.ErrOrStderr())

	a.log.Debugw("configuration loaded", "file", a.v.ConfigFileUsed())
	return nil
}

// engine builds a cipher engine from the configured alphabet and pad.
func (a *app) engine() (*otp.Engine, error) {
	opts := otp.Options{Random: a.random}
	if pad := a.v.GetString("pad"); pad != "" {
		r := []rune(pad)
		if len(r) != 1 {
			return nil, fmt.Errorf("pad must be a single symbol, got %q", pad)
		}
		opts.Pad = r[0]
	}

	e, err := otp.NewWithOptions(a.v.GetString("alphabet"), opts)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet: %w", err)
	}
	a.log.Debugw("engine ready", "symbols", e.Alphabet().Len(), "mode", e.Mode().String(), "pad", string(e.Pad()))
	return e, nil
}

// keyOrGenerate returns the --key flag, or a fresh key of the configured
// length when the flag is empty.
func (a *app) keyOrGenerate(cmd *cobra.Command, e *otp.Engine) (key string, generated bool, err error) {
	key, _ = cmd.Flags().GetString("key")
	if key != "" {
		return key, false, nil
	}
	n := a.v.GetInt("key_length")
	key, err = e.RandomKey(n)
	if err != nil {
		return "", false, fmt.Errorf("generating key: %w", err)
	}
	a.log.Debugw("generated key", "length", n, "fingerprint", otp.Fingerprint(key))
	return key, true, nil
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	e, err := a.engine()
	if err != nil {
		return err
	}

	message := a.v.GetString("message")
	if len(args) > 0 {
		message = args[0]
	}
	key, _, err := a.keyOrGenerate(cmd, e)
	if err != nil {
		return err
	}

	if err := a.preflight(cmd, e, message, key); err != nil {
		return err
	}

	encrypted, err := e.Encrypt(message, key)
	if err != nil {
		return err
	}
	decrypted, err := e.Decrypt(encrypted, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range []struct{ label, text string }{
		{"Message", message},
		{"Key", key},
		{"Encrypted", encrypted},
		{"Decrypted", decrypted},
	} {
		if err := e.PrettyPrint(out, row.label, row.text); err != nil {
			return err
		}
	}
	return nil
}
