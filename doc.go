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

// Package retryclass decides whether a failed remote call is worth retrying.
//
// A failed call is described by a failure.Failure: either a structured
// service error, such as {"code": "ThrottlingException"}, or a bare transport
// outcome, such as a 503 with no body. A Classifier runs the failure through
// an ordered chain of strategies and returns the first verdict:
//
//  1. explicit: the service asked for a retry, through a retry-after header
//     or by flagging the error retryable
//  2. code: the error code is a known retryable code, either modeled by the
//     operation or listed in the global table
//  3. transport: the call failed before a response arrived, with a timeout
//     or a dropped connection
//  4. status: 429 is throttling; 500, 502, 503 and 504 are transient
//
// No verdict means the classifier has no opinion, and the retry driver should
// assume the failure is not retryable.
//
// Usage
//
// Build one Classifier when configuring a client and share it:
//
//  classifier := retryclass.New(
//    retryclass.WithLogger(logger),
//    retryclass.WithOperation("CreateAlias", classify.ModeledErrors{
//      "LimitExceededException": retryerrors.ThrottlingError,
//    }),
//  )
//
//  f := failure.FromHTTPResponse(resp)
//  decision := classifier.Decide(f, classify.Operation{Name: "CreateAlias"})
//  if decision.ShouldRetry() {
//    // hand over to the retry driver
//  }
//
// Configuration
//
// A Classifier may also be built from YAML, or any markup decoded into a
// map[string]interface{}:
//
//  global:
//    throttling: [EngineThrottled]
//    transient: [EngineBusy]
//  operations:
//    CreateAlias:
//      LimitExceededException: throttling
//  retryAfter:
//    - header: x-amz-retry-after
//      unit: ms
//    - header: Retry-After
//      unit: s
//
// The 'global' attribute adds codes to the bundled global table, by kind
// (throttling, transient, client or server). The 'operations' attribute
// registers the modeled retryable errors of each operation; for that
// operation they take precedence over the global table. Modeled tables can
// change the kind of a global code but cannot make it non-retryable. The
// 'retryAfter' attribute replaces the headers checked for explicit retry
// requests, in order.
//
//  classifier, err := retryclass.NewFromYAML(configFile)
package retryclass
