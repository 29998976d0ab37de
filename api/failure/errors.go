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

import (
	"errors"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// _grpcCodeToStatusCode maps gRPC codes to their HTTP status equivalents so
// that gRPC failures can be judged by the same status rules as HTTP ones.
var _grpcCodeToStatusCode = map[codes.Code]int{
	codes.Canceled:           499,
	codes.Unknown:            500,
	codes.InvalidArgument:    400,
	codes.DeadlineExceeded:   504,
	codes.NotFound:           404,
	codes.AlreadyExists:      409,
	codes.PermissionDenied:   403,
	codes.ResourceExhausted:  429,
	codes.FailedPrecondition: 400,
	codes.Aborted:            409,
	codes.OutOfRange:         400,
	codes.Unimplemented:      501,
	codes.Internal:           500,
	codes.Unavailable:        503,
	codes.DataLoss:           500,
	codes.Unauthenticated:    401,
}

// retryableError is implemented by service errors that know whether they
// are worth retrying.
type retryableError interface {
	RetryableError() bool
}

// FromError builds a Failure from an error returned by a client call.
//
// The following are recognized, including when wrapped:
//  - smithy APIErrors become ServiceErrors, with the HTTP status and headers
//    of an enclosing smithy ResponseError if there is one
//  - gRPC status errors become ServiceErrors named after the gRPC code, with
//    the code's HTTP status equivalent
// Any other error is a Transport failure with no response.
func FromError(err error) Failure {
	if err == nil {
		return Failure{}
	}

	t := responseTransport(err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		se := ServiceError{
			Code:           apiErr.ErrorCode(),
			Message:        apiErr.ErrorMessage(),
			RetryRequested: retryRequested(err),
		}
		if fault := apiErr.ErrorFault(); fault != smithy.FaultUnknown {
			se.Metadata = map[string]string{"fault": fault.String()}
		}
		return FromServiceError(se, t)
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		return FromServiceError(
			ServiceError{Code: st.Code().String(), Message: st.Message()},
			&Transport{StatusCode: _grpcCodeToStatusCode[st.Code()]},
		)
	}

	if t != nil {
		return FromTransport(*t)
	}
	return FromTransport(Transport{Err: err})
}

func responseTransport(err error) *Transport {
	var respErr *smithyhttp.ResponseError
	if !errors.As(err, &respErr) || respErr.Response == nil || respErr.Response.Response == nil {
		return nil
	}
	return &Transport{
		StatusCode: respErr.Response.StatusCode,
		Header:     respErr.Response.Header,
	}
}

func retryRequested(err error) bool {
	var re retryableError
	return errors.As(err, &re) && re.RetryableError()
}
