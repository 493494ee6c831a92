// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

import (
	"strconv"
	"strings"
)

// A Style is a terminal display attribute used by a run's report,
// identified by its ANSI SGR code.  Since Style implements the
// Stringer interface styles may be interpolated directly into report
// strings:
//
//	fmt.Sprintf("%sPASS%s", unit.Green, unit.Reset)
type Style int

const (
	// Reset returns a terminal to its default rendition.
	Reset Style = 0
	// Bold emphasizes, e.g. the line number of a failed assertion.
	Bold Style = 1
	// Red marks failing and unclassifiable tests.
	Red Style = 31
	// Green marks passing tests.
	Green Style = 32
	// Yellow marks tests raising an unexpected error.
	Yellow Style = 33
)

// String renders a style as its escape sequence, i.e. Ansi(s).
func (s Style) String() string { return Ansi(s) }

// Ansi renders given styles as a single terminal escape sequence: the
// styles' decimal codes joined by semicolons and framed by the control
// sequence introducer and the final byte 'm', e.g.
//
//	Ansi(Red, Bold) == "\x1b[31;1m"
//
// Calling Ansi without any style is a programming error and panics.
func Ansi(ss ...Style) string {
	if len(ss) == 0 {
		panic("unit: ansi: called without styles")
	}
	b := strings.Builder{}
	b.WriteString("\x1b[")
	for i, s := range ss {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	b.WriteByte('m')
	return b.String()
}
