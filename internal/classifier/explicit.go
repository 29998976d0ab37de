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
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/retryerrors"
)

// RetryAfterHeader is a response header through which a service asks for a
// retry after a delay.
type RetryAfterHeader struct {
	// Name of the header. Matching is case-insensitive.
	Name string

	// Unit of the integer value, time.Millisecond or time.Second. Headers
	// in seconds also accept an HTTP date.
	Unit time.Duration
}

// DefaultRetryAfterHeaders is the header set used when none is configured.
var DefaultRetryAfterHeaders = []RetryAfterHeader{
	{Name: "x-amz-retry-after", Unit: time.Millisecond},
}

// Explicit recognizes a service explicitly asking to be retried, either
// through a retry-after header or by flagging the error itself retryable.
type Explicit struct {
	headers []RetryAfterHeader
	now     func() time.Time
}

// NewExplicit builds an Explicit classifier that checks the given headers in
// order.
func NewExplicit(headers []RetryAfterHeader) *Explicit {
	return &Explicit{
		headers: append([]RetryAfterHeader(nil), headers...),
		now:     time.Now,
	}
}

// Name implements classify.NamedClassifier.
func (*Explicit) Name() string { return NameExplicit }

// ClassifyError implements classify.Classifier.
//
// A header that is present but does not hold a valid delay is ignored.
func (e *Explicit) ClassifyError(f failure.Failure, _ classify.Operation) (retryerrors.Reason, bool) {
	header := f.Header()
	for _, h := range e.headers {
		v := strings.TrimSpace(header.Get(h.Name))
		if v == "" {
			continue
		}
		if d, ok := e.parseDelay(v, h.Unit); ok {
			return retryerrors.ExplicitRetryAfter(d), true
		}
	}

	if se, ok := f.ServiceError(); ok && se.RetryRequested {
		return retryerrors.ExplicitRetry(), true
	}
	return retryerrors.Reason{}, false
}

func (e *Explicit) parseDelay(v string, unit time.Duration) (time.Duration, bool) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if n < 0 || unit <= 0 || n > math.MaxInt64/int64(unit) {
			return 0, false
		}
		return time.Duration(n) * unit, true
	}

	if unit != time.Second {
		return 0, false
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0, false
	}
	d := at.Sub(e.now())
	if d < 0 {
		d = 0
	}
	return d, true
}
