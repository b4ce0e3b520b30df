// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command capacli runs capa.Solve over a column of a CSV file and
// prints the resulting changepoints.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "capacli",
	Short: "Detect point and collective anomalies in a numeric series",
	Long: `capacli runs the pruned optimal-partition changepoint detector
(gonum.org/v1/capa) over a column of a CSV file and prints the
resulting segmentation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log solve parameters and cache hits to stderr")
	rootCmd.AddCommand(solveCmd, cacheStatsCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func debugf(format string, args ...any) {
	if debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
