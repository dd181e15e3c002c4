package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gosketch/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [script]",
	Short: "Replay a script every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	w, err := watcher.New(watcher.DefaultDebounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	render := func(string) {
		result, err := replay(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("\n--- %s ---\n", path)
		printResult(os.Stdout, result)
	}

	if err := w.Watch(path, render); err != nil {
		return err
	}
	render(path)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s, press Ctrl+C to stop\n", path)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
