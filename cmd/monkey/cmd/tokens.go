package cmd

import (
	"github.com/msto63/monkey/internal/render"
	"github.com/spf13/cobra"
)

var tokensPositions bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a source file",
	Long: `Tokenizes a source file, or stdin when no file is given, and prints
one token per line in debug form, ending with EOF.

Examples:
  monkey tokens program.mk
  monkey tokens --positions program.mk
  echo 'let x = 5;' | monkey tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensPositions, "positions", "p", false, "prefix every token with line:column")
}

func runTokens(cmd *cobra.Command, args []string) error {
	_, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := newEngine().Tokenize(src)
	if err != nil {
		return err
	}

	if tokensPositions {
		return render.TokensWithPositions(cmd.OutOrStdout(), tokens)
	}
	return render.Tokens(cmd.OutOrStdout(), tokens)
}
