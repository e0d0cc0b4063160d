// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strandlab/filview"
	"github.com/strandlab/filview/capture"
)

var reportCmd = &cobra.Command{
	Use:   "report KIND [KEY=VALUE ...]",
	Short: "print a report of the world",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPlayer()
		if err != nil {
			return err
		}
		defer p.Close()
		fmt.Println(p.BuildReport(strings.Join(args, " ")))
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "list supported image formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range capture.Formats() {
			fmt.Println(f)
		}
	},
}

var helpKeysCmd = &cobra.Command{
	Use:   "commands",
	Short: "describe the player commands and settings",
	Run: func(cmd *cobra.Command, args []string) {
		filview.WriteKeyHelp(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(helpKeysCmd)
}
