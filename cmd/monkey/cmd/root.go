package cmd

import (
	"context"
	"fmt"

	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/lang"
	"github.com/msto63/monkey/pkg/core/config"
	"github.com/msto63/monkey/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// set by loadConfig before any command runs
	appConfig *config.Config
	logger    *mklog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "monkey",
	Short: "Monkey - interpreter front end",
	Long: `Front end of the Monkey programming language: lexer, parser and
syntax tree, with an interactive shell.

Without a subcommand the interactive shell is started.

Configuration is read from --config, $MONKEY_CONFIG, ./monkey.toml or
$HOME/.config/monkey/monkey.toml. Every key can be overridden with a
MONKEY_ variable, e.g. MONKEY_REPL_PROMPT.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runREPL,
}

// Execute runs the command line tool. Errors are printed to stderr and
// returned so main can map them to an exit status.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered monkey.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// loadConfig reads the configuration and installs the process logger
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	cfg := logging.DefaultLoggerConfig("monkey")
	cfg.Level = appConfig.General.LogLevel
	cfg.Format = appConfig.General.LogFormat
	cfg.Output = cmd.ErrOrStderr()
	if verbose {
		cfg.Level = "debug"
	}
	logger = logging.Install(cfg)

	logger.Debug("configuration loaded", mklog.Fields{
		"command": cmd.Name(),
		"history": appConfig.History.Enabled,
	})
	return nil
}

// newEngine builds the language engine from the loaded configuration
func newEngine() *lang.Engine {
	return lang.New(lang.Options{
		Logger:         logger,
		MaxInputLength: appConfig.Parser.MaxInputLength,
	})
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
