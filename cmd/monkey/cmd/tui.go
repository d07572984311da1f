package cmd

import (
	"github.com/msto63/monkey/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Start the token and syntax tree explorer",
	Long: `Starts the terminal explorer. Type a line of Monkey source and press
Enter to see its tokens, syntax tree and syntax errors. A file given as
argument is loaded into the input line.

Keys:
  Enter       Analyze the input line
  Tab         Next view (tokens, AST, JSON, diagnostics)
  Shift+Tab   Previous view
  PgUp/PgDn   Scroll
  Ctrl+L      Clear
  Esc/Ctrl+C  Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := tui.Config{
		Engine: newEngine(),
		Logger: logger,
	}

	if len(args) > 0 {
		_, src, err := readSource(cmd, args)
		if err != nil {
			return err
		}
		cfg.Source = src
	}

	return tui.Run(cfg)
}
