// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// strbench runs append workloads against the strbuild buffer and
// reports how each growth configuration behaved.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KirilStrezikozin/strbuild/internal/bench"
)

var (
	initialCap   int
	growthFactor float64
	totalBytes   int
	chunkSize    int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "strbench",
	Short: "Benchmark strbuild buffer growth policies",
	Long: `strbench appends a configurable number of bytes to a strbuild
Buffer, either byte at a time or in bulk chunks, and reports the
final capacity, the number of reallocations and the elapsed time.

Examples:
  strbench --bytes 1000000
  strbench --bytes 1000000 --chunk 4096 --growth-factor 1.5
  strbench --initial-cap 0 --bytes 64 -v`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(level).
			With().Timestamp().Logger()

		runner := bench.NewRunner(logger)
		res, err := runner.Run(bench.Config{
			InitialCap:   initialCap,
			GrowthFactor: growthFactor,
			Bytes:        totalBytes,
			ChunkSize:    chunkSize,
		})
		if err != nil {
			return err
		}

		logger.Info().
			Int("bytes", res.BytesWritten).
			Int("final_cap", res.FinalCap).
			Int("growths", res.Growths).
			Dur("elapsed", res.Elapsed).
			Msg("bench complete")
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&initialCap, "initial-cap", 64, "initial buffer capacity in bytes")
	rootCmd.Flags().Float64Var(&growthFactor, "growth-factor", 0, "capacity multiplier on growth (default: builder default)")
	rootCmd.Flags().IntVar(&totalBytes, "bytes", 1<<20, "total bytes to append")
	rootCmd.Flags().IntVar(&chunkSize, "chunk", 0, "bulk write size; 0 appends byte at a time")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
