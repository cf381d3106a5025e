package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openctrl/receiver/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Main(ctx, cmd.NewKeyboardCommand(cmd.Deps{}), os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
