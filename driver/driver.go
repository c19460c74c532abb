// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file contains the benchmarking logic shared by all kernels.
// It defines the microsecond clock, the per-kernel timer, and the
// sequential runner that times each kernel and prints the report.
// Kernels are run strictly in slice order; results across language
// editions are only comparable if the order and the kernel algorithms
// are left alone.

package driver

import (
	"fmt"
	"io"
	"time"
)

// procStart anchors NowMicroseconds to a single instant so that every
// reading comes from the monotonic clock carried by time.Time. Wall
// clock adjustments between readings do not affect the result.
var procStart = time.Now()

// NowMicroseconds returns a monotonically non-decreasing count of
// microseconds elapsed since process start.
func NowMicroseconds() int64 {
	return time.Since(procStart).Microseconds()
}

// A Timer measures one kernel execution. It is created fresh per
// kernel and discarded; Stop before Start is never done by the runner
// and its result is unspecified.
type Timer struct {
	start    int64
	stop     int64
	duration int64
}

// Start records the current instant.
func (t *Timer) Start() {
	t.start = NowMicroseconds()
}

// Stop records the current instant and returns the elapsed duration
// in microseconds.
func (t *Timer) Stop() int64 {
	t.stop = NowMicroseconds()
	t.duration = t.stop - t.start
	return t.duration
}

// Duration returns the duration computed by the last Stop.
func (t *Timer) Duration() int64 {
	return t.duration
}

// A Check is the deterministic value a kernel produces, used to
// confirm correctness alongside the timing. Value is the scalar the
// tests verify; Detail is the formatted auxiliary clause printed
// after the duration, e.g. "Sum: 500000500000".
type Check struct {
	Value  int64
	Detail string
}

// A Kernel is one fixed workload with a human-readable label.
type Kernel struct {
	Name string
	Run  func() Check
}

// A Result pairs a kernel's label with its measured duration and
// check value.
type Result struct {
	Name   string
	Micros int64
	Check  Check
}

// A Report holds the results of a full suite run. TotalMicros is the
// exact integer sum of the per-kernel durations.
type Report struct {
	Results     []Result
	TotalMicros int64
}

// SysStats enables per-kernel resource usage logging to stderr.
// It never writes to the report writer.
var SysStats bool

// Run executes the kernels in order, timing each with a fresh Timer,
// and writes the report to w: one line per kernel as it completes,
// then a summary block and the total in microseconds and milliseconds.
func Run(w io.Writer, kernels []Kernel) Report {
	fmt.Fprintf(w, "=== GO STANDARDIZED BENCHMARK SUITE ===\n")
	fmt.Fprintf(w, "Testing identical operations across all languages\n\n")

	rep := Report{Results: make([]Result, 0, len(kernels))}
	for _, k := range kernels {
		ss := initSysStats()
		var t Timer
		t.Start()
		c := k.Run()
		d := t.Stop()
		ss.collect(k.Name)
		fmt.Fprintf(w, "%s: %d microseconds, %s\n", k.Name, d, c.Detail)
		rep.Results = append(rep.Results, Result{Name: k.Name, Micros: d, Check: c})
		rep.TotalMicros += d
	}

	fmt.Fprintf(w, "\n=== GO BENCHMARK RESULTS ===\n")
	for _, r := range rep.Results {
		fmt.Fprintf(w, "%s: %d microseconds\n", r.Name, r.Micros)
	}
	fmt.Fprintf(w, "\nTotal Benchmark Time: %d microseconds\n", rep.TotalMicros)
	fmt.Fprintf(w, "Total Benchmark Time: %.1f milliseconds\n", float64(rep.TotalMicros)/1000)
	return rep
}
