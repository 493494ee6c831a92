// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"io"
	"os"
)

// unexpectedErr prefixes the description of a raised error, i.e. of a
// test ending in the EXCEPTION verdict.
const unexpectedErr = "Unexpected exception: "

// unknownErr is the reason recorded for a raised value outside every
// recognized category.
const unknownErr = "Totally unknown error was thrown!"

// failuresHeader separates the verdict lines from the failure records.
const failuresHeader = "- - - Failures - - -"

// A category classifies the value recovered from a test procedure.
type category int

const (
	passed category = iota
	failed
	errored
	unclassified
)

// verdict returns the colored verdict written behind a test's
// "Running test ..." announcement.  Note the reset sequence follows
// the verdict's line break.
func (c category) verdict() string {
	switch c {
	case passed:
		return Ansi(Green) + "PASS\n" + Ansi(Reset)
	case failed:
		return Ansi(Red) + "FAIL\n" + Ansi(Reset)
	case errored:
		return Ansi(Yellow) + "EXCEPTION\n" + Ansi(Reset)
	}
	return Ansi(Red, Bold) + "UNRECOGNIZED EXCEPTION\n" + Ansi(Reset)
}

// classify maps a value recovered from a test procedure to its
// category and, for non-passing categories, to the reason of its
// failure record.  A raised nil *Failure carries no reason and counts
// as unclassifiable.
func classify(recovered any) (category, string) {
	switch r := recovered.(type) {
	case nil:
		return passed, ""
	case *Failure:
		if r != nil {
			return failed, r.String()
		}
	case Failure:
		return failed, r.String()
	case error:
		return errored, unexpectedErr + r.Error()
	}
	return unclassified, unknownErr
}

// protect executes given test procedure containing any raised value,
// which is returned for classification.
func protect(t Test) (recovered any) {
	defer func() { recovered = recover() }()
	t()
	return nil
}

// A FailureRecord documents one non-passing test of a run.
type FailureRecord struct {
	// Test names the registered test which didn't pass.
	Test string

	// Reason describes why, i.e. a rendered [Failure], a raised
	// error's prefixed description or the unknown-raise message.
	Reason string
}

// A Summary reports a run's outcome to its embedding program after the
// report was written.
type Summary struct {
	// Total is the number of executed tests.
	Total int

	// Failures records the non-passing tests in execution order.
	Failures []FailureRecord
}

// Passed returns the number of tests which ran through without raising.
func (s *Summary) Passed() int { return s.Total - len(s.Failures) }

// Ok reports whether all executed tests passed.  Embedders gating a
// build evaluate Ok since the process exit code doesn't discriminate,
// see [Summary.ExitCode].
func (s *Summary) Ok() bool { return len(s.Failures) == 0 }

// ExitCode returns the process exit code of a run, which is always
// zero: a run reports its outcome through the written report, never
// through the exit status.
func (s *Summary) ExitCode() int { return 0 }

// Run executes all registered tests in lexicographic name order and
// writes the report to given writer: one verdict line per test,
// followed by a failures section iff there were non-passing tests,
// followed by the tally.  A raising test doesn't stop the run; the
// remaining tests are still executed.  Run returns the run's [Summary].
func (r *Registry) Run(w io.Writer) *Summary {
	sum := &Summary{}
	for _, n := range r.Names() {
		sum.Total++
		fmt.Fprintf(w, "Running test \"%s\" . . . ", n)
		c, reason := classify(protect(r.test(n)))
		fmt.Fprint(w, c.verdict())
		if c == passed {
			continue
		}
		sum.Failures = append(sum.Failures, FailureRecord{
			Test: n, Reason: reason})
	}
	if len(sum.Failures) > 0 {
		fmt.Fprintln(w, failuresHeader)
		for _, f := range sum.Failures {
			fmt.Fprintf(w, " -> [%s] %s\n", f.Test, f.Reason)
		}
	}
	fmt.Fprintf(w, "\nTotal passed: [%d / %d]\n", sum.Passed(), sum.Total)
	return sum
}

// Main runs the [Default] registry's tests reporting to standard out
// and returns the run's exit code, i.e. a test binary's main function
// is
//
//	func main() { os.Exit(unit.Main()) }
//
// Note the returned exit code is always zero, see [Summary.ExitCode].
func Main() int {
	return Default().Run(os.Stdout).ExitCode()
}
