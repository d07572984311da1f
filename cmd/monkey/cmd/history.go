package cmd

import (
	"fmt"
	"os"

	mkerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/msto63/monkey/internal/history"
	"github.com/msto63/monkey/internal/render"
	"github.com/spf13/cobra"
)

var (
	historyLimit         int
	historySessionsLimit int
	historySession       string
	historyFormat        string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show lines recorded by the interactive shell",
	Long: `Lists the lines recorded in the history database, oldest first.

Examples:
  monkey history --limit 20
  monkey history --session 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  monkey history sessions
  monkey history clear --session 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historySessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List shell sessions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistorySessions,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete recorded lines of one session, or all of them",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historySessionsCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.PersistentFlags().StringVarP(&historyFormat, "format", "f", "text", "output format ("+formatList()+")")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "show the last N lines (0 for all)")
	historyCmd.Flags().StringVarP(&historySession, "session", "s", "", "only lines of this session")
	historySessionsCmd.Flags().IntVarP(&historySessionsLimit, "limit", "n", 20, "show the last N sessions (0 for all)")
	historyClearCmd.Flags().StringVarP(&historySession, "session", "s", "", "only this session")
}

// openHistory opens the configured database. A missing file is reported
// instead of being created.
func openHistory() (*history.SQLiteStore, error) {
	path := appConfig.History.Path
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, mkerror.Newf("no history database at %s", path).
				WithCode(mkerror.CodeNotFound).
				WithOperation("cmd.history").
				WithDetail("path", path)
		}
		return nil, mkerror.Wrap(err, "failed to access history database").
			WithCode(mkerror.CodeIOError).
			WithOperation("cmd.history")
	}

	return history.Open(history.Config{
		Path:        path,
		BusyTimeout: appConfig.History.BusyTimeout.Duration,
		Logger:      logger,
	})
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(historyFormat)
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), history.Filter{
		SessionID: historySession,
		Limit:     historyLimit,
	})
	if err != nil {
		return err
	}

	if format != render.FormatText {
		return render.Value(cmd.OutOrStdout(), entries, format)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No lines recorded.")
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-19s  %-8s  %6s  %6s  %s\n", "TIME", "SESSION", "TOKENS", "ERRORS", "LINE")
	for _, e := range entries {
		fmt.Fprintf(w, "%-19s  %-8s  %6d  %6d  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shortID(e.SessionID), e.TokenCount, e.Diagnostics, e.Line)
	}
	return nil
}

func runHistorySessions(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(historyFormat)
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.Sessions(cmd.Context(), historySessionsLimit)
	if err != nil {
		return err
	}

	if format != render.FormatText {
		return render.Value(cmd.OutOrStdout(), sessions, format)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-36s  %5s  %-19s  %-19s\n", "SESSION", "LINES", "FIRST", "LAST")
	for _, s := range sessions {
		fmt.Fprintf(w, "%-36s  %5d  %-19s  %-19s\n", s.ID, s.Lines,
			s.FirstAt.Local().Format("2006-01-02 15:04:05"),
			s.LastAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(cmd.Context(), historySession)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d line(s).\n", n)
	return nil
}

// shortID shortens a UUID for table output
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
