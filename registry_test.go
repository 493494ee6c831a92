// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"io"
	"testing"

	"github.com/slukits/gounit"
	"github.com/slukits/unit"
	"golang.org/x/exp/slices"
)

type registry struct{ gounit.Suite }

func (s *registry) SetUp(t *gounit.T) { t.Parallel() }

func (s *registry) Zero_value_is_ready_to_use(t *gounit.T) {
	r := &unit.Registry{}
	t.Eq(0, r.Len())
	t.FatalOn(r.Add("noop", func() {}))
	t.Eq(1, r.Len())
}

func (s *registry) Registers_tests_under_unique_names(t *gounit.T) {
	r := &unit.Registry{}
	t.FatalOn(r.Add("alpha", func() {}))
	t.FatalOn(r.Add("beta", func() {}))
	t.Eq(2, r.Len())
	t.True(slices.Contains(r.Names(), "alpha"))
	t.True(slices.Contains(r.Names(), "beta"))
}

func (s *registry) Rejects_an_empty_name(t *gounit.T) {
	r := &unit.Registry{}
	t.ErrMatched(r.Add("", func() {}), "empty test name")
	t.Eq(0, r.Len())
}

func (s *registry) Rejects_a_nil_procedure(t *gounit.T) {
	r := &unit.Registry{}
	t.ErrMatched(r.Add("nil", nil), "nil procedure")
	t.Eq(0, r.Len())
}

func (s *registry) Rejects_a_duplicate_keeping_the_first(t *gounit.T) {
	r, firstRan, secondRan := &unit.Registry{}, false, false
	t.FatalOn(r.Add("dup", func() { firstRan = true }))
	t.ErrMatched(r.Add("dup", func() { secondRan = true }),
		"duplicate test")
	t.Eq(1, r.Len())
	r.Run(io.Discard)
	t.True(firstRan)
	t.True(!secondRan)
}

func (s *registry) Sorts_names_lexicographically(t *gounit.T) {
	r := &unit.Registry{}
	for _, n := range []string{"delta", "Zulu", "alpha", "bravo"} {
		t.FatalOn(r.Add(n, func() {}))
	}
	t.Eq([]string{"Zulu", "alpha", "bravo", "delta"}, r.Names())
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	gounit.Run(&registry{}, t)
}

type register struct{ gounit.Suite }

func (s *register) Fills_the_default_registry(t *gounit.T) {
	name := "register: fills the default registry"
	unit.Register(name, func() {})
	t.True(slices.Contains(unit.Default().Names(), name))
}

func (s *register) Panics_on_a_duplicate_name(t *gounit.T) {
	name := "register: panics on a duplicate name"
	unit.Register(name, func() {})
	t.Panics(func() { unit.Register(name, func() {}) })
}

func (s *register) Panics_on_an_empty_name(t *gounit.T) {
	t.Panics(func() { unit.Register("", func() {}) })
}

func (s *register) Panics_on_a_nil_procedure(t *gounit.T) {
	t.Panics(func() {
		unit.Register("register: panics on a nil procedure", nil)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()
	gounit.Run(&register{}, t)
}
