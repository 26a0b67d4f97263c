// Copyright (c) 2026, The Giui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors extends the standard library errors package with
// slog-based logging helpers for call sites that only want the log
// side effect of an error.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text, as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join wraps [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is wraps [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap wraps [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// CallerInfo returns the file and line of the caller n levels above
// this function, formatted for log output.
func CallerInfo(level int) string {
	_, file, line, ok := runtime.Caller(level)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Log logs the error if non-nil, with the source location of the
// call, and returns it unchanged.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo(2))
	}
	return err
}

// Log1 is [Log] for functions returning a value and an error;
// it returns the value unchanged.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo(2))
	}
	return v
}

// Must panics if the error is non-nil. It is for errors that indicate
// a programming mistake rather than a runtime condition.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is [Must] for functions returning a value and an error.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
