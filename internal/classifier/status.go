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
	"go.uber.org/retryclass/retryerrors"
)

// Status classifies failures by their transport status code alone. It is
// the least informative classifier and runs last among the built-ins.
type Status struct{}

// NewStatus builds a Status classifier.
func NewStatus() *Status {
	return &Status{}
}

// Name implements classify.NamedClassifier.
func (*Status) Name() string { return NameStatus }

// ClassifyError implements classify.Classifier.
//
// 4xx statuses other than 429 are not assumed retryable; a more specific
// error code may still make them so through the Code classifier.
func (*Status) ClassifyError(f failure.Failure, _ classify.Operation) (retryerrors.Reason, bool) {
	status, ok := f.StatusCode()
	if !ok {
		return retryerrors.Reason{}, false
	}
	switch status {
	case 429:
		return retryerrors.ErrorRetry(retryerrors.ThrottlingError), true
	case 500, 502, 503, 504:
		return retryerrors.ErrorRetry(retryerrors.TransientServerError), true
	default:
		return retryerrors.Reason{}, false
	}
}
