package cmd

import (
	"github.com/msto63/monkey/internal/render"
	"github.com/msto63/monkey/pkg/core/version"
	"github.com/spf13/cobra"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParseFormat(versionFormat)
		if err != nil {
			return err
		}

		info := version.Get()
		if format == render.FormatText {
			_, err := cmd.OutOrStdout().Write([]byte(info.String()))
			return err
		}
		return render.Value(cmd.OutOrStdout(), info, format)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "output format ("+formatList()+")")
}
