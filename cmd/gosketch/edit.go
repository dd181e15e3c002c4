package main

import (
	"github.com/philipparndt/gosketch/internal/app"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive editor",
	Long: `Open a window for drawing segments and polygons.

  Left drag      draw a segment, or move the endpoint/body under the cursor
  Ctrl + drag    always draw a new segment
  Delete         delete the selected or hovered segment
  Tab            switch between segment and polygon mode
  Esc            discard the open chain
  P / U          pin / unpin the polygon under the cursor
  Q / E          rotate a pinned polygon around its pin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
