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
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"go.uber.org/retryclass/retryerrors"
)

// Codes that mean "throttled" across many services, whether or not a given
// operation models them.
var _throttlingCodes = []string{
	"Throttling",
	"ThrottlingException",
	"ThrottledException",
	"RequestThrottledException",
	"TooManyRequestsException",
	"ProvisionedThroughputExceededException",
	"TransactionInProgressException",
	"RequestLimitExceeded",
	"BandwidthLimitExceeded",
	"LimitExceededException",
	"RequestThrottled",
	"SlowDown",
	"PriorRequestNotComplete",
	"EC2ThrottledException",
}

// Codes that mean a transient server-side failure across many services.
var _transientCodes = []string{
	"RequestTimeout",
	"RequestTimeoutException",
}

// DefaultGlobal returns a new copy of the bundled global table.
//
// The table also includes the codes the AWS SDK treats as throttling or
// retryable, so codes it learns about are picked up on upgrade. Where both
// list a code, the bundled kind wins.
func DefaultGlobal() map[string]retryerrors.ErrorKind {
	m := make(map[string]retryerrors.ErrorKind,
		len(retry.DefaultThrottleErrorCodes)+len(retry.DefaultRetryableErrorCodes)+len(_throttlingCodes)+len(_transientCodes))

	for code := range retry.DefaultThrottleErrorCodes {
		m[code] = retryerrors.ThrottlingError
	}
	for code := range retry.DefaultRetryableErrorCodes {
		m[code] = retryerrors.TransientServerError
	}
	for _, code := range _throttlingCodes {
		m[code] = retryerrors.ThrottlingError
	}
	for _, code := range _transientCodes {
		m[code] = retryerrors.TransientServerError
	}
	return m
}
