// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gonum.org/v1/capa"
	"gonum.org/v1/capa/store"
)

var (
	column         int
	hasHeader      bool
	familyName     string
	penaltyChange  float64
	penaltyOutlier float64
	minSegLength   int
	maxSegLength   int
	cachePath      string
)

var solveCmd = &cobra.Command{
	Use:   "solve <csv-file>",
	Short: "Detect anomalies in one column of a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&column, "column", 0, "0-based index of the column to read")
	solveCmd.Flags().BoolVar(&hasHeader, "header", false, "skip the first row as a header")
	solveCmd.Flags().StringVar(&familyName, "family", "mean", "cost family: mean, meanvar, or poisson")
	solveCmd.Flags().Float64Var(&penaltyChange, "penalty-change", 2, "penalty per collective anomaly")
	solveCmd.Flags().Float64Var(&penaltyOutlier, "penalty-outlier", 3, "penalty per point anomaly")
	solveCmd.Flags().IntVar(&minSegLength, "min-seg-length", 2, "minimum collective anomaly length")
	solveCmd.Flags().IntVar(&maxSegLength, "max-seg-length", 0, "maximum collective anomaly length (0 = series length)")
	solveCmd.Flags().StringVar(&cachePath, "cache", "", "SQLite cache file; when set, reuses a prior result for identical inputs")
}

func runSolve(cmd *cobra.Command, args []string) error {
	x, err := readColumn(args[0], column, hasHeader)
	if err != nil {
		return err
	}
	if maxSegLength == 0 {
		maxSegLength = len(x)
	}

	family, err := parseFamily(familyName)
	if err != nil {
		return err
	}

	settings := capa.Settings{
		PenaltyChange:  penaltyChange,
		PenaltyOutlier: penaltyOutlier,
		MinSegLength:   minSegLength,
		MaxSegLength:   maxSegLength,
	}

	var cache *store.Store
	var cacheKey string
	if cachePath != "" {
		cache, err = store.Open(cachePath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer cache.Close()
		cacheKey = store.Key(family, x, settings)
		if res, ok, err := cache.Get(cacheKey); err != nil {
			log.Printf("[WARN] cache lookup failed: %v", err)
		} else if ok {
			debugf("cache hit for %s", cacheKey)
			printChangepoints(res)
			return nil
		}
	}

	debugf("solving n=%d family=%s penaltyChange=%g penaltyOutlier=%g", len(x), family, penaltyChange, penaltyOutlier)
	res, err := capa.Solve(family, x, settings)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if res.Status != capa.StatusOK {
		return fmt.Errorf("solve returned status %s", res.Status)
	}

	if cache != nil {
		if err := cache.Put(cacheKey, res); err != nil {
			log.Printf("[WARN] cache write failed: %v", err)
		}
	}

	printChangepoints(res)
	return nil
}

func parseFamily(name string) (capa.Family, error) {
	switch name {
	case "mean":
		return capa.Mean, nil
	case "meanvar":
		return capa.MeanVar, nil
	case "poisson":
		return capa.Poisson, nil
	default:
		return 0, fmt.Errorf("unknown family %q (want mean, meanvar, or poisson)", name)
	}
}

func readColumn(path string, col int, header bool) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var x []float64
	first := true
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		if first && header {
			first = false
			continue
		}
		first = false
		if col >= len(rec) {
			return nil, fmt.Errorf("row has %d columns, want at least %d", len(rec), col+1)
		}
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", rec[col], err)
		}
		x = append(x, v)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("no data rows read from %s", path)
	}
	return x, nil
}

func printChangepoints(res capa.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "start\tend\tlength\tkind")
	for _, cp := range res.Changepoints {
		kind := "collective"
		if cp.Option == 1 {
			kind = "point"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", cp.Start, cp.End, cp.Length(), kind)
	}
	w.Flush()
	if len(res.Changepoints) == 0 {
		fmt.Println("no anomalies detected")
	}
}
