// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package driver

import (
	"log"

	"golang.org/x/sys/unix"
)

type sysStats struct {
	ok     bool
	rusage unix.Rusage
}

func initSysStats() sysStats {
	var ss sysStats
	if !SysStats {
		return ss
	}
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ss.rusage); err != nil {
		log.Printf("Getrusage failed: %v", err)
		// Deliberately ignore the error.
		return ss
	}
	ss.ok = true
	return ss
}

func (ss sysStats) collect(name string) {
	if !ss.ok {
		return
	}
	usage := new(unix.Rusage)
	if err := unix.Getrusage(unix.RUSAGE_SELF, usage); err != nil {
		log.Printf("Getrusage failed: %v", err)
		// Deliberately ignore the error.
		return
	}
	log.Printf("%s: user+sys %d microseconds, peak RSS %d KB",
		name, cpuMicros(usage)-cpuMicros(&ss.rusage), usage.Maxrss*rssMultiplier>>10)
}

func cpuMicros(u *unix.Rusage) int64 {
	return (u.Utime.Nano() + u.Stime.Nano()) / 1000
}
