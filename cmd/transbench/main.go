// SPDX-License-Identifier: MIT

// Command transbench runs the transpose kernels on a deterministically
// filled matrix, verifies every result, and reports the cache behavior
// of each kernel's memory-access trace on the simulated direct-mapped
// cache.
//
// Usage:
//
//	transbench [-m cols] [-n rows] [-kernel tuned|baseline|all]
//	           [-capacity bytes] [-line bytes] [-env file]
//
// Every option may also come from a TRANSBENCH_* environment variable
// (TRANSBENCH_M, TRANSBENCH_N, TRANSBENCH_KERNEL, TRANSBENCH_CAPACITY,
// TRANSBENCH_LINE), optionally loaded from a .env file. Explicit flags
// win over environment values, environment values over built-ins.
//
// Exit status is 1 on any validation error or failed verification.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvltile/cachesim"
	"github.com/katalvlaran/lvltile/tracegen"
	"github.com/katalvlaran/lvltile/transpose"
)

// kernelAll selects every registered kernel.
const kernelAll = "all"

// Environment keys honored when the matching flag is left unset.
const (
	envM        = "TRANSBENCH_M"
	envN        = "TRANSBENCH_N"
	envKernel   = "TRANSBENCH_KERNEL"
	envCapacity = "TRANSBENCH_CAPACITY"
	envLine     = "TRANSBENCH_LINE"
)

// options is the effective harness configuration after flag and
// environment resolution.
type options struct {
	m, n     int    // matrix shape: A is n rows by m columns
	kernel   string // "tuned", "baseline" or "all"
	capacity int    // simulated cache capacity, bytes
	line     int    // simulated cache line size, bytes
	envFile  string // .env path; empty means best-effort ./.env
}

func main() {
	var o options
	def := cachesim.DefaultConfig()
	flag.IntVar(&o.m, "m", 32, "column count of A (row count of B)")
	flag.IntVar(&o.n, "n", 32, "row count of A (column count of B)")
	flag.StringVar(&o.kernel, "kernel", kernelAll, "kernel to measure: tuned, baseline or all")
	flag.IntVar(&o.capacity, "capacity", def.CapacityBytes, "simulated cache capacity in bytes")
	flag.IntVar(&o.line, "line", def.LineBytes, "simulated cache line size in bytes")
	flag.StringVar(&o.envFile, "env", "", "optional .env file with TRANSBENCH_* defaults")
	flag.Parse()

	// Record which flags the user typed; those beat environment values.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := run(o, set, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "transbench:", err)
		os.Exit(1)
	}
}

// run resolves the environment layer and executes the harness, writing
// the report to out.
func run(o options, set map[string]bool, out io.Writer) error {
	if err := applyEnv(&o, set); err != nil {
		return err
	}
	if o.m <= 0 || o.n <= 0 {
		return transpose.ErrInvalidDimensions
	}
	kernels, err := selectKernels(o.kernel)
	if err != nil {
		return err
	}

	cfg := cachesim.Config{CapacityBytes: o.capacity, LineBytes: o.line}
	if _, err = cachesim.New(cfg); err != nil {
		return err // reject bad -capacity/-line before any work
	}
	lay := tracegen.DefaultLayout(o.m, o.n)

	// Deterministic source fill: A[i][j] = i*M + j.
	a := make([]int32, o.n*o.m)
	var i, j int
	for i = 0; i < o.n; i++ {
		for j = 0; j < o.m; j++ {
			a[i*o.m+j] = int32(i*o.m + j)
		}
	}

	fmt.Fprintf(out, "shape: A %dx%d -> B %dx%d (M=%d cols, N=%d rows)\n",
		o.n, o.m, o.m, o.n, o.m, o.n)
	fmt.Fprintf(out, "cache: capacity=%dB line=%dB direct-mapped (%d sets)\n\n",
		o.capacity, o.line, o.capacity/o.line)

	stats := make(map[transpose.Kernel]cachesim.Stats, len(kernels))
	for _, k := range kernels {
		b := make([]int32, o.m*o.n)
		if err = transpose.Run(k, o.m, o.n, a, b); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if !transpose.IsTranspose(o.m, o.n, a, b) {
			return fmt.Errorf("%s: result failed verification", k)
		}
		st, err := tracegen.CountMisses(k, o.m, o.n, cfg, lay)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		stats[k] = st
		fmt.Fprintf(out, "%-9s verified  hits:%d misses:%d evictions:%d\n",
			k, st.Hits, st.Misses, st.Evictions)
	}

	// With both kernels measured, report the head-to-head delta.
	tu, okT := stats[transpose.Tuned]
	ba, okB := stats[transpose.Baseline]
	if okT && okB {
		fmt.Fprintf(out, "\ntuned vs baseline: %+d misses (%d -> %d)\n",
			int64(tu.Misses)-int64(ba.Misses), ba.Misses, tu.Misses)
	}

	return nil
}

// applyEnv loads the .env layer and fills every option the user did not
// set on the command line from TRANSBENCH_* variables.
func applyEnv(o *options, set map[string]bool) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return err // an explicitly named file must exist
		}
	} else {
		_ = godotenv.Load() // best-effort ./.env
	}

	var err error
	if !set["m"] {
		if o.m, err = envInt(envM, o.m); err != nil {
			return err
		}
	}
	if !set["n"] {
		if o.n, err = envInt(envN, o.n); err != nil {
			return err
		}
	}
	if !set["kernel"] {
		if v := os.Getenv(envKernel); v != "" {
			o.kernel = v
		}
	}
	if !set["capacity"] {
		if o.capacity, err = envInt(envCapacity, o.capacity); err != nil {
			return err
		}
	}
	if !set["line"] {
		if o.line, err = envInt(envLine, o.line); err != nil {
			return err
		}
	}

	return nil
}

// envInt parses an integer environment variable, keeping def when the
// variable is unset or empty.
func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, err)
	}

	return parsed, nil
}

// selectKernels maps the -kernel value to the kernels to run.
func selectKernels(name string) ([]transpose.Kernel, error) {
	if name == kernelAll {
		return transpose.Kernels(), nil
	}
	k, err := transpose.ParseKernel(name)
	if err != nil {
		return nil, fmt.Errorf("-kernel %q: %w", name, err)
	}

	return []transpose.Kernel{k}, nil
}
