package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/weatherframe/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/weatherframe/config.toml)")
	pollMinutes := flag.Int("poll", 0, "refresh interval in minutes (optional, defaults to 5)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Debug: *debug}
	if poll := *pollMinutes; poll > 0 {
		opts.PollMinutes = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "weatherframe: %v\n", err)
		return 1
	}
	return 0
}
