package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ytget/wallgrid/internal/cli"
)

// Set during build via -ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(cli.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		BuildArch: runtime.GOOS + "/" + runtime.GOARCH,
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.PrintError(err)
		stop()
		os.Exit(1)
	}
}
