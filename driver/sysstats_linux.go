// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package driver

// getrusage reports Maxrss in kilobytes on Linux.
const rssMultiplier = 1 << 10
