// Package parallel fans independent index ranges out across goroutines.
//
// It is used to run Jacobian evaluation passes concurrently: every pass
// owns one column, so callers never need locking beyond the final Wait.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use (<= 0 means NumCPU).
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
//
// Objective evaluations are usually far more expensive than a goroutine
// spawn, so the chunk size is small.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4,
	}
}

// Sequential returns a Config that disables parallelism.
func Sequential() Config {
	return Config{}
}

func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for
// each. Chunks are processed concurrently unless parallelism is disabled or
// n is smaller than MinChunkSize, in which case f(0, n) runs on the caller's
// goroutine.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.workers() == 1 {
		f(0, n)
		return
	}

	workers := cfg.workers()
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) using ForRange.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
