// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command filview displays a filament simulation world and captures
// it to image files, including high-resolution tiled captures.
package main

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strandlab/filview"
	"github.com/strandlab/filview/config"
	"github.com/strandlab/filview/display"
	"github.com/strandlab/filview/view"
)

var (
	verbose bool

	width, height int
	styleTag      int
	displayText   string
	presetPath    string
)

var rootCmd = &cobra.Command{
	Use:           "filview",
	Short:         "display and capture a filament simulation",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: false,
		})
		if verbose {
			logger.SetLevel(charmlog.DebugLevel)
		}
		filview.SetLogger(slog.New(logger))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&width, "width", 800, "surface width in pixels")
	pf.IntVar(&height, "height", 600, "surface height in pixels")
	pf.IntVar(&styleTag, "style", 1, "display style (1 line, 2 graded, 3 solid)")
	pf.StringVar(&displayText, "display", "", "display settings (key=value ...)")
	pf.StringVar(&presetPath, "preset", "", "playback preset file (YAML)")
}

// newPlayer builds a player from the persistent flags.
func newPlayer() (*filview.Player, error) {
	opts := []filview.Option{
		filview.WithView(view.New(width, height)),
	}
	prop := display.Default()
	prop.Style = styleTag
	opts = append(opts, filview.WithDisplay(prop))
	if presetPath != "" {
		play, err := config.LoadPlay(presetPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, filview.WithPlay(play))
	}
	p, err := filview.New(opts...)
	if err != nil {
		return nil, err
	}
	if displayText != "" {
		p.SetDisplayString(displayText)
	}
	return p, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		charmlog.Error("Error in filview", "err", err)
		os.Exit(1)
	}
}
