package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/internal/history"
	"github.com/msto63/monkey/internal/repl"
	"github.com/spf13/cobra"
)

var (
	replParseMode bool
	replNoHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	Long: `Starts the interactive shell. Every line typed is tokenized and its
tokens are printed in debug form. With --parse the line is also parsed and
syntax errors are shown.

Lines are recorded in the history database when [history] is enabled in
the configuration. The shell ends at end of input (Ctrl+D).`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	// registered on root as well, so "monkey --parse" works like "monkey repl --parse"
	for _, c := range []*cobra.Command{rootCmd, replCmd} {
		c.Flags().BoolVar(&replParseMode, "parse", false, "also parse every line and print syntax errors")
		c.Flags().BoolVar(&replNoHistory, "no-history", false, "do not record lines in the history database")
	}
}

func runREPL(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	name := repl.UserName(appConfig.REPL.GreetingEnv, appConfig.REPL.FallbackName)
	if err := repl.WriteBanner(out, name, isTerminal(out)); err != nil {
		return err
	}

	opts := repl.Options{
		Prompt:    appConfig.REPL.Prompt,
		ParseMode: replParseMode || appConfig.REPL.ParseMode,
		Engine:    newEngine(),
		Logger:    logger,
	}

	if appConfig.History.Enabled && !replNoHistory {
		store, err := history.Open(history.Config{
			Path:        appConfig.History.Path,
			BusyTimeout: appConfig.History.BusyTimeout.Duration,
			Logger:      logger,
		})
		if err != nil {
			// the shell works without history
			logger.WarnWithErr("history disabled", err, mklog.Fields{"path": appConfig.History.Path})
			printError(cmd, err)
		} else {
			defer store.Close()
			opts.History = store
		}
	}

	shell := repl.New(opts)
	if opts.History != nil {
		logger.Debug("recording history", mklog.Fields{"session_id": shell.SessionID()})
	}

	err := shell.Start(cmd.Context(), cmd.InOrStdin(), out, errOut)
	if errors.Is(err, context.Canceled) {
		// interrupted at the prompt
		fmt.Fprintln(out)
		logger.Debug("shell interrupted")
		return nil
	}
	return err
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
