// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Test is a registered test procedure.  It takes no arguments and
// returns nothing; violated expectations are reported by raising a
// [Failure] through one of the assertion functions.
type Test func()

// A Registry associates unique test names with test procedures.  Its
// zero value is ready to use and a Registry must not be copied after
// its first use.  Registered tests can not be removed.  Usually the
// package wide [Default] registry filled by [Register] and run by
// [Main] suffices; own Registry instances serve embedding scenarios
// running several independent test sets in one process.
type Registry struct {
	mutex sync.Mutex
	tests map[string]Test
}

// Add registers given test procedure under given unique name.  Add
// fails if the name is empty, the procedure is nil or the name is
// already taken; a failed Add leaves the registry unchanged.
func (r *Registry) Add(name string, test Test) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if name == "" {
		return fmt.Errorf("unit: add: empty test name")
	}
	if test == nil {
		return fmt.Errorf("unit: add: test %q: nil procedure", name)
	}
	if _, ok := r.tests[name]; ok {
		return fmt.Errorf("unit: add: duplicate test %q", name)
	}
	if r.tests == nil {
		r.tests = map[string]Test{}
	}
	r.tests[name] = test
	return nil
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.tests)
}

// Names returns the registered test names in lexicographic order,
// which is also the execution order of a run and independent of the
// order of registration.
func (r *Registry) Names() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	nn := maps.Keys(r.tests)
	slices.Sort(nn)
	return nn
}

// test returns the procedure registered under given name.
func (r *Registry) test(name string) Test {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.tests[name]
}

// defaultRegistry is the process wide registry populated by Register.
var defaultRegistry = &Registry{}

// Default returns the process wide registry which [Register] populates
// and [Main] runs.
func Default() *Registry { return defaultRegistry }

// Register adds given test procedure to the [Default] registry
// panicking on a registration error, i.e. a colliding, empty or nil
// registration fails the process at startup instead of being silently
// dropped.  Register is made for the declarative file scope surface:
//
//	func init() {
//	    unit.Register("answer is calculated", func() {
//	        unit.Equal(answer(), 42, "answer()", "42", 7)
//	    })
//	}
//
// Since all init functions complete before main starts every such
// registration precedes the run.
func Register(name string, test Test) {
	if err := defaultRegistry.Add(name, test); err != nil {
		panic(err)
	}
}
