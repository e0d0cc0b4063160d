// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/strandlab/filview/config"
)

var (
	playDuration time.Duration
	playWatch    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "run the live display for a while",
	Long: `Play starts the simulation worker and renders frames at the
display rate until the duration elapses. With --watch, changes to the
given settings file are applied live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlayer()
		if err != nil {
			return err
		}
		defer p.Close()
		p.Play().Live = true

		ctx, cancel := context.WithTimeout(cmd.Context(), playDuration)
		defer cancel()

		go p.Worker().Run(ctx, time.Duration(p.Play().Delay)*time.Millisecond)
		if playWatch != "" {
			go func() {
				err := config.Watch(ctx, playWatch, p.SetDisplayString)
				if err != nil && ctx.Err() == nil {
					charmlog.Error("Error in display watch", "err", err)
				}
			}()
		}

		tick := time.NewTicker(time.Duration(p.Play().Delay) * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			case <-tick.C:
				p.DisplayScene(p.View())
				fmt.Printf("\r%-40s", firstLine(p.View().Label()))
			}
		}
	},
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

func init() {
	playCmd.Flags().DurationVar(&playDuration, "duration", 3*time.Second, "how long to play")
	playCmd.Flags().StringVar(&playWatch, "watch", "", "settings file to reload on change")
	rootCmd.AddCommand(playCmd)
}
