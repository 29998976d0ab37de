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

package failure

import "net/http"

// ServiceError is a structured error surfaced by the remote service.
type ServiceError struct {
	// Code is the short machine-readable identifier of the error, usually
	// the exception name, e.g. "ThrottlingException".
	Code string

	// Message is the human readable message that came with the error, if
	// any.
	Message string

	// Metadata holds whatever else the deserializer extracted. It is opaque
	// to classification.
	Metadata map[string]string

	// RetryRequested is set when the service marked the error itself as
	// retryable.
	RetryRequested bool
}

// Transport is the lower-level outcome of a call: the status and headers of
// the response, or the error that prevented a response from arriving.
type Transport struct {
	// StatusCode is the HTTP-style status of the response. Zero means no
	// response was received.
	StatusCode int

	// Header holds the response headers.
	Header http.Header

	// BodyPresent reports whether the response had a non-empty body.
	BodyPresent bool

	// Err is the connection-level failure, if the call never produced a
	// response.
	Err error
}

// Failure is a normalized description of a failed call.
//
// A Failure is either a ServiceError, which may still carry the Transport it
// arrived on, or a bare Transport. The zero Failure describes nothing and is
// never classified as retryable.
type Failure struct {
	service   *ServiceError
	transport *Transport
}

// FromServiceError builds a Failure for a structured service error. The
// transport may be nil if the status is not known.
func FromServiceError(se ServiceError, t *Transport) Failure {
	f := Failure{service: &se}
	if t != nil {
		tc := *t
		f.transport = &tc
	}
	return f
}

// FromTransport builds a Failure for an outcome with no structured error.
func FromTransport(t Transport) Failure {
	return Failure{transport: &t}
}

// ServiceError returns the structured service error, if this Failure is one.
func (f Failure) ServiceError() (ServiceError, bool) {
	if f.service == nil {
		return ServiceError{}, false
	}
	return *f.service, true
}

// Transport returns the transport outcome. For a ServiceError this is the
// transport the error arrived on, if it was recorded.
func (f Failure) Transport() (Transport, bool) {
	if f.transport == nil {
		return Transport{}, false
	}
	return *f.transport, true
}

// StatusCode returns the transport status, if one was received.
func (f Failure) StatusCode() (int, bool) {
	if f.transport == nil || f.transport.StatusCode == 0 {
		return 0, false
	}
	return f.transport.StatusCode, true
}

// Header returns the transport headers. It returns nil when no headers were
// recorded; http.Header methods are safe to call on nil.
func (f Failure) Header() http.Header {
	if f.transport == nil {
		return nil
	}
	return f.transport.Header
}

// IsServiceError reports whether this Failure carries a structured error.
func (f Failure) IsServiceError() bool {
	return f.service != nil
}

// WithCode promotes a bare transport Failure to a ServiceError with the
// given code, keeping the transport. A Failure that is already a
// ServiceError, or an empty code, is returned unchanged.
func (f Failure) WithCode(code string) Failure {
	if f.service != nil || code == "" {
		return f
	}
	return Failure{
		service:   &ServiceError{Code: code},
		transport: f.transport,
	}
}
