// Copyright 2025 The Strbuild Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

// Package bench runs timed append workloads against buffer
// configurations, reporting growth behavior for the strbench CLI.
package bench

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirilStrezikozin/strbuild/pkg/builder"
)

var ErrInvalidConfig = errors.New("invalid bench config")

// Config describes one workload.
type Config struct {
	InitialCap   int
	GrowthFactor float64 // 0 means the builder default
	Bytes        int     // total bytes to append
	ChunkSize    int     // <= 1 appends byte at a time, else bulk writes
}

// Result summarizes a completed workload.
type Result struct {
	BytesWritten int
	FinalLen     int
	FinalCap     int
	Growths      int
	Elapsed      time.Duration
}

type Runner struct {
	logger zerolog.Logger
}

func NewRunner(parentLogger zerolog.Logger) *Runner {
	logger := parentLogger.
		With().
		Str("component", "bench").
		Logger()

	return &Runner{logger: logger}
}

// Run executes the workload described by cfg against a fresh Buffer
// and reports how it grew.
func (r *Runner) Run(cfg Config) (Result, error) {
	if cfg.Bytes < 0 || cfg.InitialCap < 0 {
		return Result{}, ErrInvalidConfig
	}

	var opts []builder.Option
	if cfg.GrowthFactor != 0 {
		opts = append(opts, builder.WithGrowthFactor(cfg.GrowthFactor))
	}

	b, err := builder.New(cfg.InitialCap, opts...)
	if err != nil {
		return Result{}, err
	}
	defer b.Release()

	var chunk []byte
	if cfg.ChunkSize > 1 {
		chunk = make([]byte, cfg.ChunkSize)
		for i := range chunk {
			chunk[i] = byte('a' + i%26)
		}
	}

	r.logger.Debug().
		Int("initial_cap", cfg.InitialCap).
		Float64("growth_factor", b.GrowthFactor()).
		Int("bytes", cfg.Bytes).
		Int("chunk_size", cfg.ChunkSize).
		Msg("workload start")

	start := time.Now()
	written := 0
	for written < cfg.Bytes {
		if chunk == nil {
			if err := b.WriteByte(byte('a' + written%26)); err != nil {
				return Result{}, err
			}
			written++
			continue
		}

		p := chunk
		if rem := cfg.Bytes - written; rem < len(p) {
			p = p[:rem]
		}
		n, err := b.Write(p)
		written += n
		if err != nil {
			return Result{}, err
		}
	}

	res := Result{
		BytesWritten: written,
		FinalLen:     b.Len(),
		FinalCap:     b.Cap(),
		Growths:      b.Growths(),
		Elapsed:      time.Since(start),
	}

	r.logger.Debug().
		Int("final_cap", res.FinalCap).
		Int("growths", res.Growths).
		Dur("elapsed", res.Elapsed).
		Msg("workload complete")

	return res, nil
}
