package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sadopc/pomodoro/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, version)
	stop()
	os.Exit(code)
}
