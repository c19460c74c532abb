// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package driver

type sysStats struct{}

func initSysStats() sysStats { return sysStats{} }

func (sysStats) collect(string) {}
