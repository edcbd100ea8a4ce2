// Command lvlpath reads a shortest-path problem and writes the Bellman-Ford,
// Floyd-Warshall and Dijkstra results to one file each.
//
//	lvlpath [options] [INPUT]
//
// Run with -h for the option list. With no arguments it reads in.txt and
// writes bellman-ford.txt, floyd-warshall.txt and dijkstra.txt in the working
// directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvlpath/internal/app"
	"github.com/katalvlaran/lvlpath/internal/cli"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command for easier testing. Usage text and log
// records go to outW.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(outW, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}
