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

// Names of the built-in classifiers.
const (
	NameExplicit  = "explicit"
	NameCode      = "code"
	NameTransport = "transport"
	NameStatus    = "status"
)

// Chain runs classifiers in priority order and returns the first verdict.
type Chain struct {
	classifiers []classify.NamedClassifier
}

// NewChain builds a Chain that consults classifiers in the given order.
func NewChain(classifiers ...classify.NamedClassifier) *Chain {
	return &Chain{classifiers: append([]classify.NamedClassifier(nil), classifiers...)}
}

// NewDefaultChain builds the standard Chain:
//
//  explicit -> code -> transport -> status -> extra...
//
// An explicit instruction from the server is authoritative, a structured
// error code is more informative than a status, and a bare status is the
// last resort. Extra classifiers only see failures none of the built-ins had
// an opinion on.
func NewDefaultChain(r *registry.Registry, headers []RetryAfterHeader, extra ...classify.NamedClassifier) *Chain {
	classifiers := []classify.NamedClassifier{
		NewExplicit(headers),
		NewCode(r),
		NewTransport(),
		NewStatus(),
	}
	return NewChain(append(classifiers, extra...)...)
}

// ClassifyError implements classify.Classifier.
func (c *Chain) ClassifyError(f failure.Failure, op classify.Operation) (retryerrors.Reason, bool) {
	reason, _, ok := c.Classify(f, op)
	return reason, ok
}

// Classify is ClassifyError that also reports the name of the classifier
// whose verdict was chosen. Later classifiers are not consulted once one has
// answered. A Reason that is neither explicit nor of a declared kind counts
// as no verdict.
func (c *Chain) Classify(f failure.Failure, op classify.Operation) (reason retryerrors.Reason, by string, ok bool) {
	for _, classifier := range c.classifiers {
		if reason, ok := classifier.ClassifyError(f, op); ok && reason.IsValid() {
			return reason, classifier.Name(), true
		}
	}
	return retryerrors.Reason{}, "", false
}

// Names returns the names of the classifiers in the order they run.
func (c *Chain) Names() []string {
	names := make([]string, len(c.classifiers))
	for i, classifier := range c.classifiers {
		names[i] = classifier.Name()
	}
	return names
}
