package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/drawerkit/pkg/drawer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		duration   time.Duration
		noRotate   bool
		offset     float64
		fps        int
	)

	root := &cobra.Command{
		Use:           "drawerdemo",
		Short:         "Interactive terminal demo of the drawerkit sliding panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts, err := drawer.LoadOptions(configPath)
			if err != nil {
				return err
			}
			if duration > 0 {
				opts.ForwardDuration = duration
			}
			if noRotate {
				opts.Rotate = false
			}
			if offset > 0 {
				opts.OffsetFromRight = offset
			}

			d, err := drawer.New(opts)
			if err != nil {
				return err
			}
			defer d.Dispose()

			program := tea.NewProgram(newModel(d, fps), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	root.Flags().StringVar(&configPath, "config", "drawer.yaml", "drawer options file (missing file uses defaults)")
	root.Flags().DurationVar(&duration, "duration", 0, "override the open transition duration")
	root.Flags().BoolVar(&noRotate, "no-rotate", false, "disable the tilt effect")
	root.Flags().Float64Var(&offset, "offset", 0, "columns the slid content keeps visible on the right")
	root.Flags().IntVar(&fps, "fps", 60, "frames per second for the demo render loop")
	return root
}
