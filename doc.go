// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unit is a minimal, self-contained unit testing harness:
// tests register themselves at file scope, assertions raise structured
// failures, and a sequential runner reports each test's verdict
// colorized to standard out.  unit has no notion of suites, fixtures,
// parallelism or command line flags; a test binary is an ordinary main
// package:
//
//	package main
//
//	import (
//	    "os"
//
//	    "github.com/slukits/unit"
//	)
//
//	func init() {
//	    unit.Register("answer is calculated", func() {
//	        unit.Equal(answer(), 42, "answer()", "42", 11)
//	    })
//	}
//
//	func main() { os.Exit(unit.Main()) }
//
// [Register] adds a test to the process wide [Default] registry and
// panics on a colliding, empty or nil registration.  Since all init
// functions complete before main starts every registration precedes
// the run.  [Main] executes the registered tests in lexicographic name
// order, independent of registration order, and writes for each one a
// verdict line:
//
//	Running test "answer is calculated" . . . PASS
//
// with the verdict in green (PASS), red (FAIL), yellow (EXCEPTION) or
// bold red (UNRECOGNIZED EXCEPTION).  Non-passing tests are cited once
// more in a failures section before the closing tally:
//
//	- - - Failures - - -
//	 -> [answer is calculated] Line 11: Expected EQUAL, but was NOT EQUAL: [answer()] and [42]
//
//	Total passed: [0 / 1]
//
// Assertions like [True], [Equal] or [Exception] evaluate their
// arguments and raise a [Failure] iff the expectation is violated,
// ending the test with the FAIL verdict while the remaining tests
// still run.  Go has no macro stringification, hence each assertion
// takes next to the asserted value(s) the literal source text(s) to
// cite in the failure's reason and the call's source line:
//
//	unit.True(len(got) > 0, "len(got) > 0", 42)
//
// A test raising an error, i.e. panicking with a value implementing
// the error interface as raised by errors.New, fmt.Errorf or the
// runtime, ends with the EXCEPTION verdict; any other raised value
// ends it with UNRECOGNIZED EXCEPTION.  NOTE the process exit code is
// always zero: a run reports its outcome through the written report
// while embedders gate on [Summary.Ok].
//
// Own [Registry] instances serve programs embedding several
// independent test sets:
//
//	reg := &unit.Registry{}
//	if err := reg.Add("migration is idempotent", testMigration); err != nil {
//	    log.Fatal(err)
//	}
//	if !reg.Run(os.Stdout).Ok() {
//	    // fail the embedding build...
//	}
package unit
