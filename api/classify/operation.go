// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package classify

import "go.uber.org/retryclass/retryerrors"

// ModeledErrors maps error codes that an operation's contract declares
// retryable to their ErrorKind. Codes are matched exactly.
//
// ModeledErrors must not be modified once it has been handed to a
// classifier.
type ModeledErrors map[string]retryerrors.ErrorKind

// Lookup returns the declared kind for code.
func (m ModeledErrors) Lookup(code string) (retryerrors.ErrorKind, bool) {
	kind, ok := m[code]
	return kind, ok
}

// Operation is the context of the call that failed.
type Operation struct {
	// Name identifies the operation, e.g. "CreateAlias". Modeled error tables
	// registered at configuration time are looked up by this name.
	Name string

	// Modeled is the operation's own table of retryable errors, if the
	// caller has one at hand. It is consulted before any table registered
	// by name.
	Modeled ModeledErrors

	// ErrorCode is an error code already extracted from the response by the
	// caller. It is used when the failure does not carry one itself.
	ErrorCode string
}
