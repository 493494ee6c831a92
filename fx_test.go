// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"github.com/slukits/gounit"
	"github.com/slukits/unit"
)

// raised returns the value given function raises; nil if it returns
// ordinarily.
func raised(f func()) (recovered any) {
	defer func() { recovered = recover() }()
	f()
	return nil
}

// raisedFailure returns the Failure raised by given function and
// cancels the test iff it raises none.
func raisedFailure(t *gounit.T, f func()) *unit.Failure {
	fl, ok := raised(f).(*unit.Failure)
	if !ok {
		t.Fatalf("expected given function to raise a Failure")
	}
	return fl
}
