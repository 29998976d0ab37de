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

// Decision is the final answer handed to the retry driver: either do not
// retry, or retry for the attached Reason.
type Decision struct {
	retry  bool
	reason Reason
}

// NoRetry is the Decision for failures nobody had an opinion on, or that are
// known not to be worth retrying.
var NoRetry = Decision{}

// Retry returns a Decision to retry for the given Reason.
func Retry(reason Reason) Decision {
	return Decision{retry: true, reason: reason}
}

// DecisionOf converts the result of a classification into a Decision.
//
// An absent verdict is treated conservatively as NoRetry.
func DecisionOf(reason Reason, ok bool) Decision {
	if !ok {
		return NoRetry
	}
	return Retry(reason)
}

// ShouldRetry reports whether the call should be retried.
func (d Decision) ShouldRetry() bool {
	return d.retry
}

// Reason returns the Reason behind a Retry decision. It returns false for
// NoRetry.
func (d Decision) Reason() (Reason, bool) {
	return d.reason, d.retry
}

func (d Decision) String() string {
	if !d.retry {
		return "no-retry"
	}
	return "retry(" + d.reason.String() + ")"
}
