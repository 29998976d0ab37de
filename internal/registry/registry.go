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

package registry

import (
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/retryerrors"
)

// Registry is the table of known retryable error codes.
//
// It has two partitions: modeled tables, scoped to a single operation, and
// the global table of codes that are retryable no matter which operation
// returned them. A Registry is immutable once built and is safe for
// concurrent use without locking.
type Registry struct {
	modeled map[string]classify.ModeledErrors
	global  map[string]retryerrors.ErrorKind
}

// New builds a Registry from a global table and a set of modeled tables
// keyed by operation name. The inputs are copied; later changes to them are
// not observed. Entries with an invalid kind are dropped.
func New(global map[string]retryerrors.ErrorKind, modeled map[string]classify.ModeledErrors) *Registry {
	r := &Registry{
		modeled: make(map[string]classify.ModeledErrors, len(modeled)),
		global:  make(map[string]retryerrors.ErrorKind, len(global)),
	}
	for code, kind := range global {
		if kind.IsValid() {
			r.global[code] = kind
		}
	}
	for op, table := range modeled {
		copied := make(classify.ModeledErrors, len(table))
		for code, kind := range table {
			if kind.IsValid() {
				copied[code] = kind
			}
		}
		r.modeled[op] = copied
	}
	return r
}

// Lookup returns the kind of the given error code in the context of op.
//
// The operation's own modeled table is consulted first, then the modeled
// table registered for op.Name, then the global table. False means no table
// has an opinion about code.
func (r *Registry) Lookup(code string, op classify.Operation) (retryerrors.ErrorKind, bool) {
	if code == "" {
		return 0, false
	}
	if kind, ok := op.Modeled.Lookup(code); ok && kind.IsValid() {
		return kind, true
	}
	if r == nil {
		return 0, false
	}
	if kind, ok := r.modeled[op.Name].Lookup(code); ok {
		return kind, true
	}
	if kind, ok := r.global[code]; ok {
		return kind, true
	}
	return 0, false
}

// Global reports the kind the global table assigns to code.
func (r *Registry) Global(code string) (retryerrors.ErrorKind, bool) {
	if r == nil {
		return 0, false
	}
	kind, ok := r.global[code]
	return kind, ok
}
