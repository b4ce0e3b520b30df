// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gonum.org/v1/capa/store"
)

var cacheStatsCmd = &cobra.Command{
	Use:   "cache-stats <db-file>",
	Short: "Report entry count and age of a solve cache",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheStats,
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	s, err := store.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	fmt.Printf("entries: %s\n", humanize.Comma(int64(stats.Entries)))
	if stats.Entries > 0 {
		fmt.Printf("oldest entry: %s\n", humanize.Time(stats.Oldest))
	}
	return nil
}
