// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNowMicroseconds(t *testing.T) {
	t.Parallel()
	prev := NowMicroseconds()
	if prev < 0 {
		t.Fatalf("NowMicroseconds() = %d, expected >= 0", prev)
	}
	for i := 0; i < 1000; i++ {
		now := NowMicroseconds()
		if now < prev {
			t.Fatalf("clock went backwards: %d after %d", now, prev)
		}
		prev = now
	}
}

func TestTimer(t *testing.T) {
	t.Parallel()
	var tm Timer
	tm.Start()
	time.Sleep(2 * time.Millisecond)
	d := tm.Stop()
	if d < 2000 {
		t.Errorf("tm.Stop() = %d, expected >= 2000 after a 2ms sleep", d)
	}
	if got := tm.Duration(); got != d {
		t.Errorf("tm.Duration() = %d, expected %d", got, d)
	}
	if got := tm.stop - tm.start; got != d {
		t.Errorf("stop-start = %d, expected %d", got, d)
	}
}

// fakeKernels are cheap workloads with known check values, so the
// runner's report shape can be verified without the real suite.
var fakeKernels = []Kernel{
	{Name: "Alpha", Run: func() Check { return Check{Value: 7, Detail: "Sum: 7"} }},
	{Name: "Beta", Run: func() Check { return Check{Value: 11, Detail: "Length: 11"} }},
	{Name: "Gamma", Run: func() Check { return Check{Value: 13, Detail: "First: 1, Last: 13"} }},
}

func TestRunReport(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rep := Run(&buf, fakeKernels)

	if len(rep.Results) != len(fakeKernels) {
		t.Fatalf("len(rep.Results) = %d, expected %d", len(rep.Results), len(fakeKernels))
	}
	var total int64
	for i, r := range rep.Results {
		if r.Name != fakeKernels[i].Name {
			t.Errorf("[%d] result name %q, expected %q", i, r.Name, fakeKernels[i].Name)
		}
		if r.Micros < 0 {
			t.Errorf("[%d] duration %d, expected >= 0", i, r.Micros)
		}
		total += r.Micros
	}
	if rep.TotalMicros != total {
		t.Errorf("rep.TotalMicros = %d, expected exact sum %d", rep.TotalMicros, total)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// 2 headers, blank, n kernels, blank, results header, n summary
	// lines, blank, 2 totals.
	wantLines := 2 + 1 + len(fakeKernels) + 1 + 1 + len(fakeKernels) + 1 + 2
	if len(lines) != wantLines {
		t.Fatalf("report has %d lines, expected %d:\n%s", len(lines), wantLines, buf.String())
	}
	if lines[0] != "=== GO STANDARDIZED BENCHMARK SUITE ===" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Testing identical operations across all languages" {
		t.Errorf("line 1 = %q", lines[1])
	}
	for _, i := range []int{2, 3 + len(fakeKernels), 5 + 2*len(fakeKernels)} {
		if lines[i] != "" {
			t.Errorf("line %d = %q, expected blank", i, lines[i])
		}
	}
	for i, r := range rep.Results {
		want := fmt.Sprintf("%s: %d microseconds, %s", r.Name, r.Micros, r.Check.Detail)
		if got := lines[3+i]; got != want {
			t.Errorf("kernel line %d = %q, expected %q", i, got, want)
		}
		want = fmt.Sprintf("%s: %d microseconds", r.Name, r.Micros)
		if got := lines[5+len(fakeKernels)+i]; got != want {
			t.Errorf("summary line %d = %q, expected %q", i, got, want)
		}
	}
	if got := lines[4+len(fakeKernels)]; got != "=== GO BENCHMARK RESULTS ===" {
		t.Errorf("results header = %q", got)
	}
	if want := fmt.Sprintf("Total Benchmark Time: %d microseconds", rep.TotalMicros); lines[wantLines-2] != want {
		t.Errorf("total line = %q, expected %q", lines[wantLines-2], want)
	}
	if want := fmt.Sprintf("Total Benchmark Time: %.1f milliseconds", float64(rep.TotalMicros)/1000); lines[wantLines-1] != want {
		t.Errorf("total ms line = %q, expected %q", lines[wantLines-1], want)
	}
}
