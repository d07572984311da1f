package cmd

import (
	"strings"

	mkerror "github.com/msto63/monkey/foundation/core/error"
	mklog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/internal/render"
	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree",
	Long: `Parses a source file, or stdin when no file is given, and prints the
syntax tree. Syntax errors are printed to stderr as file:line:column
diagnostics and the command exits with status 2.

Formats:
  text  - canonical source, one statement per line
  json  - syntax tree dump
  yaml  - syntax tree dump

Examples:
  monkey parse program.mk
  monkey parse --format json program.mk`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format ("+formatList()+")")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(parseFormat)
	if err != nil {
		return err
	}

	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	engine := newEngine()
	result, err := engine.Analyze(src)
	if err != nil {
		return err
	}

	if !result.OK() {
		if err := render.Diagnostics(cmd.ErrOrStderr(), name, result.Diagnostics); err != nil {
			return err
		}
		logger.Debug("parse failed", mklog.Fields{"source": name, "diagnostics": len(result.Diagnostics)})
		return mkerror.Newf("%s: %d syntax error(s)", name, len(result.Diagnostics)).
			WithCode(mkerror.CodeSyntax).
			WithOperation("cmd.parse")
	}

	if err := engine.ValidateProgram(result.Program); err != nil {
		return err
	}

	return render.Program(cmd.OutOrStdout(), result.Program, format)
}

func formatList() string {
	names := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}
