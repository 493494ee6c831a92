// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unit

// TrueErr default reason of a failed 'True'-assertion.
const TrueErr = trueErr

// FalseErr default reason of a failed 'False'-assertion.
const FalseErr = falseErr

// EqualErr default reason of a failed 'Equal'-assertion.
const EqualErr = equalErr

// UnequalErr default reason of a failed 'Unequal'-assertion.
const UnequalErr = unequalErr

// AlmostEqualErr default reason of a failed 'AlmostEqual'-assertion.
const AlmostEqualErr = almostEqualErr

// ExceptionErr default reason of a failed 'Exception'-assertion.
const ExceptionErr = exceptionErr

// NoExceptionErr default reason of a failed 'NoException'-assertion.
const NoExceptionErr = noExceptionErr

// UnexpectedErr prefix of an EXCEPTION-verdict's failure record.
const UnexpectedErr = unexpectedErr

// UnknownErr reason recorded for an unclassifiable raised value.
const UnknownErr = unknownErr

// Tolerance absolute difference up to which AlmostEqual passes.
const Tolerance = tolerance
