// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"testing"

	"github.com/slukits/gounit"
	"github.com/slukits/unit"
)

type failure struct{ gounit.Suite }

func (s *failure) SetUp(t *gounit.T) { t.Parallel() }

func (s *failure) Renders_with_emboldened_line_number(t *gounit.T) {
	f := unit.Failure{Reason: "broken", Line: 7}
	t.Eq("Line \x1b[1m7\x1b[0m: broken", f.String())
}

func (s *failure) Is_raised_by_fail_with_reason_and_line(t *gounit.T) {
	f := raisedFailure(t, func() { unit.Fail("broken", 7) })
	t.Eq("broken", f.Reason)
	t.Eq(7, f.Line)
}

func (s *failure) Doesnt_implement_the_error_interface(t *gounit.T) {
	var signal any = &unit.Failure{}
	_, isErr := signal.(error)
	t.True(!isErr)
}

func TestFailure(t *testing.T) {
	t.Parallel()
	gounit.Run(&failure{}, t)
}
