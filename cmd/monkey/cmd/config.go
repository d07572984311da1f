package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	mkerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/msto63/monkey/pkg/core/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with default values",
	Long: `Writes a TOML configuration file with all default values.

Without a path the file is written to $HOME/.config/monkey/monkey.toml,
where it is found automatically. An existing file is only replaced with
--force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(appConfig); err != nil {
			return mkerror.Wrap(err, "failed to encode configuration").
				WithCode(mkerror.CodeIOError).
				WithOperation("cmd.config.show")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := defaultConfigPath()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, configForce); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", mkerror.Wrap(err, "cannot determine home directory").
			WithCode(mkerror.CodeIOError).
			WithOperation("cmd.config.init")
	}
	return filepath.Join(home, ".config", "monkey", "monkey.toml"), nil
}
