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

package classifier

import (
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/internal/registry"
	"go.uber.org/retryclass/retryerrors"
)

// Code classifies service errors by looking their code up in a Registry.
//
// It never guesses: a code the registry does not know is no verdict, and
// bare transport failures are left to other classifiers.
type Code struct {
	registry *registry.Registry
}

// NewCode builds a Code classifier backed by the given Registry.
func NewCode(r *registry.Registry) *Code {
	return &Code{registry: r}
}

// Name implements classify.NamedClassifier.
func (*Code) Name() string { return NameCode }

// ClassifyError implements classify.Classifier.
func (c *Code) ClassifyError(f failure.Failure, op classify.Operation) (retryerrors.Reason, bool) {
	se, ok := f.ServiceError()
	if !ok {
		return retryerrors.Reason{}, false
	}
	kind, ok := c.registry.Lookup(se.Code, op)
	if !ok {
		return retryerrors.Reason{}, false
	}
	return retryerrors.ErrorRetry(kind), true
}
