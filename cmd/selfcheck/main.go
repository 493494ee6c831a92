/*
Selfcheck exercises every assertion of the unit harness against known
good expectations and prints the resulting report, i.e. a freshly
built selfcheck binary demonstrates the report format:

	Running test "almost equal: rounding errors are tolerated" . . . PASS
	Running test "equal: comparable values" . . . PASS
	...

	Total passed: [8 / 8]

Usage:

	selfcheck

The exit code is always zero; whether the run is intact shows the
printed tally.
*/
package main

import (
	"errors"
	"os"

	"github.com/slukits/unit"
)

func init() {
	unit.Register("true: comparison holds", func() {
		unit.True(1 < 2, "1 < 2", 30)
	})
	unit.Register("false: comparison fails", func() {
		unit.False(2 < 1, "2 < 1", 33)
	})
	unit.Register("equal: comparable values", func() {
		unit.Equal(21*2, 42, "21*2", "42", 36)
	})
	unit.Register("equal: deep values", func() {
		unit.Equal([]int{1, 2}, []int{1, 2},
			"[]int{1, 2}", "[]int{1, 2}", 39)
	})
	unit.Register("unequal: distinct values", func() {
		unit.Unequal("ab", "ba", `"ab"`, `"ba"`, 43)
	})
	unit.Register("almost equal: rounding errors are tolerated", func() {
		unit.AlmostEqual(0.1+0.2, 0.3, "0.1+0.2", "0.3", 46)
	})
	unit.Register("exception: raising call", func() {
		unit.Exception(func() {
			panic(errors.New("boom"))
		}, "panic(errors.New(\"boom\"))", 49)
	})
	unit.Register("no exception: quiet call", func() {
		unit.NoException(func() {}, "func() {}()", 54)
	})
}

func main() { os.Exit(unit.Main()) }
