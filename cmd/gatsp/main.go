// Command gatsp solves travelling salesman instances with a genetic algorithm.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/gatsp/cmd/gatsp/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := app.NewSolveCommand(os.Stdout)
	code := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		code = 1
	}
	stop()
	klog.Flush()
	os.Exit(code)
}
