// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package suite defines the ten standardized workload kernels. Every
// parameter is hard-coded: the kernels must perform the same
// algorithmic work as the other language editions of this suite, and
// each produces a deterministic check value so a run can be verified
// independent of its timing.
package suite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crosslang/benchmarks/driver"
	"github.com/crosslang/benchmarks/dynamic"
)

// Kernels lists the workloads in their mandated run order.
var Kernels = []driver.Kernel{
	{Name: "Simple Loop (1M)", Run: simpleLoop},
	{Name: "String Concatenation (10K)", Run: stringConcat},
	{Name: "Array Creation (100K)", Run: arrayCreation},
	{Name: "Math Operations (100K)", Run: mathOps},
	{Name: "Function Calls (100K)", Run: funcCalls},
	{Name: "Nested Loop (1K x 1K)", Run: nestedLoop},
	{Name: "String Search (100K)", Run: stringSearch},
	{Name: "Array Sorting (10K)", Run: arraySort},
	{Name: "Recursive Functions (1K)", Run: recursive},
	{Name: "Memory Operations (10K)", Run: memoryChurn},
}

func check(label string, v int64) driver.Check {
	return driver.Check{Value: v, Detail: fmt.Sprintf("%s: %d", label, v)}
}

// simpleLoop sums the integers 1..1,000,000.
func simpleLoop() driver.Check {
	var sum int64
	for i := int64(1); i <= 1000000; i++ {
		sum += i
	}
	return check("Sum", sum)
}

// stringConcat appends the decimal text of 1..10,000 to a growable
// text buffer and reports the total number of characters appended.
func stringConcat() driver.Check {
	str := dynamic.NewString(1000)
	totalLen := 0
	for i := 1; i <= 10000; i++ {
		numStr := strconv.Itoa(i)
		str.Append(numStr)
		totalLen += len(numStr)
	}
	return check("Length", int64(totalLen))
}

// arrayCreation pushes the integers 1..100,000 onto a growable array.
func arrayCreation() driver.Check {
	arr := dynamic.NewArray[int](1000)
	for i := 1; i <= 100000; i++ {
		arr.Push(i)
	}
	return check("Length", int64(arr.Len()))
}

// mathOps accumulates floor(i*i/2) for i in 1..100,000 using integer
// division.
func mathOps() driver.Check {
	var result int64
	for i := int64(1); i <= 100000; i++ {
		result += (i * i) / 2
	}
	return check("Result", result)
}

// funcCalls invokes a first-class function value 100,000 times and
// reports the last result.
func funcCalls() driver.Check {
	square := func(x int64) int64 { return x * x }
	var result int64
	for i := int64(1); i <= 100000; i++ {
		result = square(i)
	}
	return check("Result", result)
}

// nestedLoop accumulates i+j over a 1000 x 1000 double loop.
func nestedLoop() driver.Check {
	var sum int64
	for i := int64(1); i <= 1000; i++ {
		for j := int64(1); j <= 1000; j++ {
			sum += i + j
		}
	}
	return check("Sum", sum)
}

// stringSearch builds a text buffer by appending "abc" 100,000 times,
// then checks 1000 times whether "abc" occurs in it.
func stringSearch() driver.Check {
	text := dynamic.NewString(1000)
	for i := 1; i <= 100000; i++ {
		text.Append("abc")
	}
	count := 0
	for i := 1; i <= 1000; i++ {
		if strings.Contains(text.String(), "abc") {
			count++
		}
	}
	return check("Found", int64(count))
}

// arraySort bubble-sorts a strictly descending array of 10,000
// elements and reports the first and last element of the result.
func arraySort() driver.Check {
	arr := make([]int, 10000)
	for i := range arr {
		arr[i] = 10000 - i
	}
	bubbleSort(arr)
	return driver.Check{
		Value:  int64(arr[len(arr)-1]),
		Detail: fmt.Sprintf("First: %d, Last: %d", arr[0], arr[len(arr)-1]),
	}
}

// bubbleSort is a full adjacent-swap exchange sort. The double loop
// always runs to completion; an early-exit check would change the
// algorithmic cost shared with the other language editions.
func bubbleSort(arr []int) {
	for i := 0; i < len(arr)-1; i++ {
		for j := 0; j < len(arr)-i-1; j++ {
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
			}
		}
	}
}

// recursive computes fibonacci(20) by naive double recursion.
func recursive() driver.Check {
	return check("Fib(20)", fibonacci(20))
}

func fibonacci(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return fibonacci(n-1) + fibonacci(n-2)
}

// memoryChurn pushes 1..10,000 onto a growable array, discarding it
// for a fresh one whenever its length exceeds 5000. The reset check
// runs after each push, so the final length is the number of pushes
// since the last reset.
func memoryChurn() driver.Check {
	arr := dynamic.NewArray[int](1000)
	for i := 1; i <= 10000; i++ {
		arr.Push(i)
		if arr.Len() > 5000 {
			arr = dynamic.NewArray[int](1000)
		}
	}
	return check("Final Length", int64(arr.Len()))
}
