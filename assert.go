// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// trueErr default reason of a failed True-assertion.
const trueErr = `Expected TRUE, but was FALSE: "%s"`

// falseErr default reason of a failed False-assertion.
const falseErr = `Expected FALSE, but was TRUE: "%s"`

// equalErr default reason of a failed Equal-assertion.
const equalErr = "Expected EQUAL, but was NOT EQUAL: [%s] and [%s]"

// unequalErr default reason of a failed Unequal-assertion.
const unequalErr = "Expected UNEQUAL, but was NOT UNEQUAL: [%s] and [%s]"

// almostEqualErr default reason of a failed AlmostEqual-assertion.
const almostEqualErr = "Expected ALMOST EQUAL, but was NOT ALMOST " +
	"EQUAL: [%s] and [%s]"

// exceptionErr default reason of a failed Exception-assertion.
const exceptionErr = `Expected EXCEPTION, but got NO EXCEPTION: "%s"`

// noExceptionErr default reason of a failed NoException-assertion.
const noExceptionErr = `Expected NO EXCEPTION, but got EXCEPTION: "%s"`

// tolerance is the absolute difference up to which AlmostEqual
// considers two numbers equal.
const tolerance = 0.0001

// True raises a Failure iff given expression is false.  text is the
// caller's literal source expression which the failure's reason cites;
// line is the source line of the assertion call:
//
//	unit.True(len(got) > 0, "len(got) > 0", 42)
//
// All assertions take their cited texts and line this way since an
// expression doesn't know its own source.
func True(expr bool, text string, line int) {
	if !expr {
		Fail(fmt.Sprintf(trueErr, text), line)
	}
}

// False raises a Failure iff given expression is true.  See [True] for
// the text and line arguments.
func False(expr bool, text string, line int) {
	if expr {
		Fail(fmt.Sprintf(falseErr, text), line)
	}
}

// Equal raises a Failure iff given values are unequal.  Values of
// comparable dynamic types compare like the ==-operator does; all
// other values are compared deeply leveraging [cmp.Equal].  The
// failure's reason cites given source texts, not the values.  See
// [True] for the text and line arguments.
func Equal(lhs, rhs any, lhsText, rhsText string, line int) {
	if !equal(lhs, rhs) {
		Fail(fmt.Sprintf(equalErr, lhsText, rhsText), line)
	}
}

// Unequal raises a Failure iff given values are equal, determined as
// by [Equal].  See [True] for the text and line arguments.
func Unequal(lhs, rhs any, lhsText, rhsText string, line int) {
	if equal(lhs, rhs) {
		Fail(fmt.Sprintf(unequalErr, lhsText, rhsText), line)
	}
}

// equal implements the assertions' value equality: the ==-operator
// where defined, a deep go-cmp comparison otherwise.
func equal(lhs, rhs any) bool {
	if lhs == nil || rhs == nil {
		return lhs == rhs
	}
	if reflect.TypeOf(lhs).Comparable() &&
		reflect.TypeOf(rhs).Comparable() {
		return lhs == rhs
	}
	return cmp.Equal(lhs, rhs)
}

// AlmostEqual raises a Failure iff the difference of given numbers is
// not within the absolute tolerance of 0.0001.  The boundary is
// inclusive, i.e. a difference of exactly 0.0001 still passes.  Note a
// NaN difference, as produced by NaN operands or two like-signed
// infinities, is never within the tolerance and raises.  See [True]
// for the text and line arguments.
func AlmostEqual(lhs, rhs float64, lhsText, rhsText string, line int) {
	if !(math.Abs(lhs-rhs) <= tolerance) { // negated: NaN must raise
		Fail(fmt.Sprintf(almostEqualErr, lhsText, rhsText), line)
	}
}

// Exception raises a Failure iff given call doesn't raise an error,
// i.e. panics with a value implementing the error interface.  Values
// raised outside this category pass through unobserved; in particular
// a Failure raised by a nested assertion is never intercepted.  text
// is the call's literal source expression, see [True].
func Exception(call func(), text string, line int) {
	if !raisesError(call) {
		Fail(fmt.Sprintf(exceptionErr, text), line)
	}
}

// NoException raises a Failure iff given call raises an error.  See
// [Exception] for the recognized category and the arguments.
func NoException(call func(), text string, line int) {
	if raisesError(call) {
		Fail(fmt.Sprintf(noExceptionErr, text), line)
	}
}

// raisesError reports whether given call panics with an error value;
// all other raised values are re-raised unchanged.
func raisesError(call func()) (raised bool) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			raised = true
		default:
			panic(r)
		}
	}()
	call()
	return false
}
