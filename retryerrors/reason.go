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

package retryerrors

import (
	"bytes"
	"time"
)

// Reason is the verdict a classifier hands to the retry driver.
//
// A Reason is either explicit, meaning the remote service asked for the
// call to be retried (optionally after a delay), or inferred from the
// content of the failure, in which case it carries an ErrorKind.
//
// Classifiers that have no opinion return the zero Reason alongside false;
// the zero Reason is never a verdict on its own.
type Reason struct {
	explicit bool
	kind     ErrorKind
	delay    time.Duration
	hasDelay bool
}

// ExplicitRetry returns a Reason for a service that asked for a retry
// without saying how long to wait.
func ExplicitRetry() Reason {
	return Reason{explicit: true}
}

// ExplicitRetryAfter returns a Reason for a service that asked for a retry
// after the given delay.
func ExplicitRetryAfter(delay time.Duration) Reason {
	return Reason{explicit: true, delay: delay, hasDelay: true}
}

// ErrorRetry returns a Reason inferred from the failure, labeled with the
// given kind.
func ErrorRetry(kind ErrorKind) Reason {
	return Reason{kind: kind}
}

// IsExplicit reports whether the remote service explicitly requested a
// retry.
func (r Reason) IsExplicit() bool {
	return r.explicit
}

// Kind returns the ErrorKind of an inferred Reason. It returns false for
// explicit reasons.
func (r Reason) Kind() (ErrorKind, bool) {
	if r.explicit || !r.kind.IsValid() {
		return 0, false
	}
	return r.kind, true
}

// IsValid reports whether r is a verdict: explicit, or carrying a declared
// ErrorKind. The zero Reason is not valid.
func (r Reason) IsValid() bool {
	return r.explicit || r.kind.IsValid()
}

// DelayHint returns the delay suggested by the remote service, if any.
func (r Reason) DelayHint() (time.Duration, bool) {
	return r.delay, r.hasDelay
}

// String returns a human readable form of the Reason, e.g.
// "error:throttling" or "explicit:1.5s".
func (r Reason) String() string {
	buffer := bytes.NewBuffer(nil)
	if r.explicit {
		_, _ = buffer.WriteString("explicit")
		if r.hasDelay {
			_, _ = buffer.WriteString(":")
			_, _ = buffer.WriteString(r.delay.String())
		}
		return buffer.String()
	}
	_, _ = buffer.WriteString("error:")
	_, _ = buffer.WriteString(r.kind.String())
	return buffer.String()
}
