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

import (
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/retryerrors"
)

// Classifier inspects a failure and optionally produces a retry verdict.
//
// Implementations must be safe for concurrent use, must not block and must
// not fail: anything they cannot make sense of is reported as no verdict by
// returning false.
type Classifier interface {
	ClassifyError(f failure.Failure, op Operation) (retryerrors.Reason, bool)
}

// ClassifierFunc adapts a function into a Classifier.
type ClassifierFunc func(failure.Failure, Operation) (retryerrors.Reason, bool)

// ClassifyError implements Classifier.
func (f ClassifierFunc) ClassifyError(fail failure.Failure, op Operation) (retryerrors.Reason, bool) {
	return f(fail, op)
}

// NamedClassifier is a Classifier with a name used in logs and metrics.
type NamedClassifier interface {
	Classifier

	Name() string
}

// Named attaches a name to a Classifier.
func Named(name string, c Classifier) NamedClassifier {
	return namedClassifier{Classifier: c, name: name}
}

type namedClassifier struct {
	Classifier

	name string
}

func (n namedClassifier) Name() string { return n.name }
