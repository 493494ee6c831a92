// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import "strconv"

// A Failure is the value a failing assertion raises to interrupt its
// test procedure.  It carries the human readable reason of the failure
// and the source line of the assertion call.  Note a Failure doesn't
// implement the error interface: raised errors and raised failures are
// distinct report categories (see [Registry.Run]) and the
// error-expecting assertions must not intercept failures of nested
// assertions.
type Failure struct {
	// Reason describes the violated expectation, e.g. an assertion's
	// message citing the asserted source expressions.
	Reason string

	// Line is the source line of the failed assertion's call.
	Line int
}

// String renders a failure the way a report's failures section cites
// it: the emboldened line number followed by the reason.
func (f Failure) String() string {
	return "Line " + Ansi(Bold) + strconv.Itoa(f.Line) +
		Ansi(Reset) + ": " + f.Reason
}

// Fail raises a Failure with given reason and (call site) line
// interrupting the executing test procedure.  Fail is the extension
// point for user defined assertions:
//
//	func assertPositive(n int, text string, line int) {
//	    if n <= 0 {
//	        unit.Fail(fmt.Sprintf("expected positive: %q", text), line)
//	    }
//	}
func Fail(reason string, line int) {
	panic(&Failure{Reason: reason, Line: line})
}
