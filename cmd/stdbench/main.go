// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Binary stdbench runs the standardized cross-language benchmark
// suite: ten fixed workload kernels, timed sequentially, with the
// report written to stdout. The workloads take no configuration; the
// flags below only add diagnostics and never touch stdout.
//
// Usage:
//
//	stdbench [flags]
//
//	Flags:
//	  -cpuprofile file
//	     write a CPU profile of the run to file
//	  -memprofile file
//	     write a heap profile to file after the run
//	  -sysstats
//	     log per-kernel CPU time and peak RSS to stderr
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/crosslang/benchmarks/driver"
	"github.com/crosslang/benchmarks/suite"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	memprofile = flag.String("memprofile", "", "write a heap profile to this file after the run")
	sysstats   = flag.Bool("sysstats", false, "log per-kernel CPU time and peak RSS to stderr")
)

func main() {
	flag.Parse()
	driver.SysStats = *sysstats

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatalf("Failed to create profile file '%v': %v", *cpuprofile, err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	driver.Run(os.Stdout, suite.Kernels)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatalf("Failed to create profile file '%v': %v", *memprofile, err)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("Failed to write heap profile: %v", err)
		}
		f.Close()
	}
}
