package main

import (
	"fmt"
	"io"

	"benchdash/internal/dashboard"
	"benchdash/internal/ui"
	"benchdash/internal/ui/textutil"

	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the panel rectangles for a frame size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 || height < 0 {
				return fmt.Errorf("frame size must not be negative, got %dx%d", width, height)
			}
			return printLayout(cmd.OutOrStdout(), dashboard.Layout{}, width, height)
		},
	}
	cmd.Flags().IntVar(&width, "width", 100, "frame width in cells")
	cmd.Flags().IntVar(&height, "height", 40, "frame height in cells")
	return cmd
}

func printLayout(w io.Writer, layout ui.Layout, width, height int) error {
	if _, err := fmt.Fprintf(w, "frame %dx%d\n", width, height); err != nil {
		return err
	}
	for _, p := range layout.Panels() {
		x, y, pw, ph := p.Bounds(width, height)
		_, err := fmt.Fprintf(w, "%s %s x=%-4d y=%-4d w=%-4d h=%d\n",
			textutil.PadRightVisual(p.ID, 12),
			textutil.PadRightVisual(p.Title, 14),
			x, y, pw, ph)
		if err != nil {
			return err
		}
	}
	return nil
}
