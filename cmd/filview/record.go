// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
)

var (
	recordFrames int
	recordRoot   string
	recordDir    string
	recordFormat string
	recordMag    int
	recordDown   int
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "capture frames to image files",
	Long: `Record advances the simulation frame by frame and saves each
rendered frame as an indexed image file. A magnification above one
switches to the tiled high-resolution capture.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlayer()
		if err != nil {
			return err
		}
		defer p.Close()
		play := p.Play()
		if recordDir != "" {
			play.ImageDir = recordDir
		}
		if recordFormat != "" {
			play.ImageFormat = recordFormat
		}
		if recordMag > 1 {
			play.Magnification = recordMag
		}
		if recordDown > 1 {
			play.Downsample = recordDown
		}

		for i := 0; i < recordFrames; i++ {
			p.DisplayScene(p.View())
			if play.Magnification > 1 {
				err = p.SaveViewMagnifiedIndexed(play.Magnification, recordRoot, i, play.Downsample)
				if p.NeedsRedraw() {
					p.DisplayScene(p.View())
				}
			} else {
				err = p.SaveView(recordRoot, i, 1)
			}
			if err != nil {
				return err
			}
			p.Worker().NextFrame()
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().IntVar(&recordFrames, "frames", 10, "number of frames to capture")
	recordCmd.Flags().StringVar(&recordRoot, "root", "image", "filename root of the indexed images")
	recordCmd.Flags().StringVar(&recordDir, "dir", "", "directory receiving the images")
	recordCmd.Flags().StringVar(&recordFormat, "format", "", "image format (default from preset)")
	recordCmd.Flags().IntVar(&recordMag, "magnify", 1, "capture magnification factor")
	recordCmd.Flags().IntVar(&recordDown, "downsample", 1, "downsampling factor")
	rootCmd.AddCommand(recordCmd)
}
