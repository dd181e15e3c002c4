package main

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/snapshot"
	"github.com/spf13/cobra"
)

var (
	snapshotOutput string
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [script]",
	Short: "Render the end state of a script to a PNG image",
	Long: `Replay a script and draw the resulting polygons, segments and intersection
markers. The origin of the working space is the centre of the image.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "sketch.png", "output PNG file")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "image width (defaults to the configured window width)")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 0, "image height (defaults to the configured window height)")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	width, height := snapshotWidth, snapshotHeight
	if width <= 0 {
		width = cfg.Window.Width
	}
	if height <= 0 {
		height = cfg.Window.Height
	}

	result, err := replay(args[0])
	if err != nil {
		return err
	}

	img := snapshot.Render(result, width, height)
	if err := snapshot.WritePNG(snapshotOutput, img); err != nil {
		return err
	}

	fmt.Printf("Wrote %dx%d snapshot to %s\n", width, height, snapshotOutput)
	return nil
}
