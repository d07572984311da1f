package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msto63/monkey/cmd/monkey/cmd"
	mkerror "github.com/msto63/monkey/foundation/core/error"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(mkerror.GetCode(err).ExitCode())
	}
}
