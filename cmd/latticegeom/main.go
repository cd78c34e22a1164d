// Command latticegeom answers questions about lattice shapes described in
// YAML scene files, and draws their cross-sections.
//
// Usage:
//
//	latticegeom query scene.yaml
//	latticegeom render scene.yaml room -o room.png --z 1 --scale 8
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/lattice"
	"honnef.co/go/lattice/internal/scene"
	"honnef.co/go/lattice/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "latticegeom",
		Short:        "Query and render shapes on the integer lattice",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				lattice.SetLogger(slog.New(h))
			} else {
				lattice.SetLogger(nil)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	root.AddCommand(newQueryCmd(), newRenderCmd())
	return root
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <scene.yaml>",
		Short: "Answer the queries of a scene, one line per query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, line := range s.Run() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	var (
		out    string
		scale  int
		z      int
		margin int
	)
	cmd := &cobra.Command{
		Use:   "render <scene.yaml> <shape>",
		Short: "Draw a cross-section of a shape as a PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 {
				return fmt.Errorf("invalid scale %d", scale)
			}
			if margin < 0 {
				return fmt.Errorf("invalid margin %d", margin)
			}
			s, err := scene.LoadFile(args[0])
			if err != nil {
				return err
			}
			sh, ok := s.Shape(args[1])
			if !ok {
				return fmt.Errorf("shape %q: %w", args[1], scene.ErrUnknownShape)
			}
			opts := []render.Option{render.WithMargin(margin)}
			if cmd.Flags().Changed("z") {
				opts = append(opts, render.WithZ(z))
			}
			img := render.Scale(render.Image(sh, opts...), scale)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := render.WritePNG(f, img); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "out.png", "output file")
	cmd.Flags().IntVar(&scale, "scale", 1, "pixels per lattice point")
	cmd.Flags().IntVar(&z, "z", 0, "plane to draw (default: center of the shape)")
	cmd.Flags().IntVar(&margin, "margin", 0, "background pixels around the shape")
	return cmd
}
