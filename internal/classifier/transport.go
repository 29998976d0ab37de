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
	"context"
	"errors"
	"io"
	"net"
	"syscall"

	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/retryerrors"
)

// Transport classifies calls that failed before a response arrived.
//
// Timeouts and connections dropped by the remote end are transient. A call
// cancelled by its caller is not: nobody is waiting for the retry.
type Transport struct{}

// NewTransport builds a Transport classifier.
func NewTransport() *Transport {
	return &Transport{}
}

// Name implements classify.NamedClassifier.
func (*Transport) Name() string { return NameTransport }

// ClassifyError implements classify.Classifier.
func (*Transport) ClassifyError(f failure.Failure, _ classify.Operation) (retryerrors.Reason, bool) {
	if f.IsServiceError() {
		return retryerrors.Reason{}, false
	}
	t, ok := f.Transport()
	if !ok || t.Err == nil || !isTransientTransportError(t.Err) {
		return retryerrors.Reason{}, false
	}
	return retryerrors.ErrorRetry(retryerrors.TransientServerError), true
}

func isTransientTransportError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	switch {
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return true
	}
	return false
}
