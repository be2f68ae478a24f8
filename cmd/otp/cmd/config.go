package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

const defaultConfigFile = "otp.yaml"

// Config is the on-disk form of the otp settings.
type Config struct {
	Alphabet  string    `yaml:"alphabet"`
	Pad       string    `yaml:"pad,omitempty"`
	KeyLength int       `yaml:"key_length"`
	Message   string    `yaml:"message"`
	Color     bool      `yaml:"color"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig holds the logging section of Config.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Save writes the config to path as a yaml file. An existing file is only
// replaced when force is set.
func (c Config) Save(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	d, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0644)
}

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the otp configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		Args:  cobra.NoArgs,
		RunE:  a.runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(initCmd)
	return configCmd
}

// currentConfig returns the effective settings after flags, env and file.
func (a *app) currentConfig() Config {
	return Config{
		Alphabet:  a.v.GetString("alphabet"),
		Pad:       a.v.GetString("pad"),
		KeyLength: a.v.GetInt("key_length"),
		Message:   a.v.GetString("message"),
		Color:     a.v.GetBool("color"),
		Log: LogConfig{
			Level:    a.v.GetString("log.level"),
			Encoding: a.v.GetString("log.encoding"),
		},
	}
}

func (a *app) runConfigInit(cmd *cobra.Command, args []string) error {
	// validate before writing so a broken alphabet never lands on disk
	if _, err := a.engine(); err != nil {
		return err
	}
	path := a.cfgFile
	if path == "" {
		path = defaultConfigFile
	}
	force, _ := cmd.Flags().GetBool("force")
	if err := a.currentConfig().Save(path, force); err != nil {
		return err
	}
	a.log.Infow("config written", "path", path)
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
	return err
}
