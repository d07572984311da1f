package cmd

import (
	"io"
	"os"

	mkerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/spf13/cobra"
)

const stdinName = "<stdin>"

// readSource returns the display name and contents of the file named in
// args, or of stdin when no file or "-" is given
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", mkerror.Wrap(err, "failed to read stdin").
				WithCode(mkerror.CodeIOError).
				WithOperation("cmd.readSource")
		}
		return stdinName, string(data), nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		code := mkerror.CodeIOError
		if os.IsNotExist(err) {
			code = mkerror.CodeNotFound
		}
		return "", "", mkerror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("path", path)
	}
	return path, string(data), nil
}
