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

package retryclass

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/retryerrors"
)

var _createAlias = classify.Operation{
	Name: "CreateAlias",
	Modeled: classify.ModeledErrors{
		"LimitExceededException": retryerrors.ThrottlingError,
		"KMSInternalException":   retryerrors.ServerError,
	},
}

func httpFailure(status int, body string) failure.Failure {
	return failure.FromHTTPResponse(&http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.1"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	})
}

func TestGlobalThrottlingCodes(t *testing.T) {
	c := New()
	for _, code := range []string{
		"LimitExceededException",
		"ThrottlingException",
		"TooManyRequestsException",
		"RequestLimitExceeded",
		"ProvisionedThroughputExceededException",
		"SlowDown",
		"PriorRequestNotComplete",
	} {
		t.Run(code, func(t *testing.T) {
			reason, ok := c.ClassifyError(failure.FromServiceError(failure.ServiceError{Code: code}, nil), classify.Operation{})
			require.True(t, ok)
			assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ThrottlingError), reason)
		})
	}
}

func TestClassifyError(t *testing.T) {
	c := New(
		WithOperation("CreateAlias", classify.ModeledErrors{"SlowDown": retryerrors.ServerError}),
	)

	tests := []struct {
		msg    string
		give   failure.Failure
		op     classify.Operation
		want   retryerrors.Reason
		wantOK bool
	}{
		{
			msg:    "modeled code in response body",
			give:   httpFailure(400, `{ "code": "LimitExceededException" }`),
			op:     _createAlias,
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "unmodeled code in response body",
			give:   httpFailure(400, `{ "code": "ThrottlingException" }`),
			op:     _createAlias,
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "modeled kind beats global kind",
			give:   httpFailure(400, `{ "code": "SlowDown" }`),
			op:     classify.Operation{Name: "CreateAlias"},
			want:   retryerrors.ErrorRetry(retryerrors.ServerError),
			wantOK: true,
		},
		{
			msg:    "same code, other operation, global kind",
			give:   httpFailure(400, `{ "code": "SlowDown" }`),
			op:     classify.Operation{Name: "Decrypt"},
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "ec2 throttling in xml body",
			give:   httpFailure(400, `<Response><Errors><Error><Code>RequestLimitExceeded</Code><Message>Request limit exceeded.</Message></Error></Errors><RequestID>abc</RequestID></Response>`),
			op:     classify.Operation{Name: "DescribeInstances"},
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "bare 429",
			give:   failure.FromTransport(failure.Transport{StatusCode: 429}),
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "bare 503",
			give:   failure.FromTransport(failure.Transport{StatusCode: 503}),
			want:   retryerrors.ErrorRetry(retryerrors.TransientServerError),
			wantOK: true,
		},
		{
			msg:  "unknown code with client status",
			give: httpFailure(400, `{ "code": "ValidationException" }`),
			op:   _createAlias,
		},
		{
			msg:    "code supplied by the operation",
			give:   failure.FromTransport(failure.Transport{StatusCode: 400}),
			op:     classify.Operation{Name: "CreateAlias", ErrorCode: "TooManyRequestsException"},
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantOK: true,
		},
		{
			msg:    "explicit retry-after",
			give:   failure.FromTransport(failure.Transport{StatusCode: 400, Header: http.Header{"X-Amz-Retry-After": []string{"2000"}}}),
			want:   retryerrors.ExplicitRetryAfter(2 * time.Second),
			wantOK: true,
		},
		{
			msg:    "connection timeout",
			give:   failure.FromError(context.DeadlineExceeded),
			want:   retryerrors.ErrorRetry(retryerrors.TransientServerError),
			wantOK: true,
		},
		{
			msg: "nothing known",
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			reason, ok := c.ClassifyError(tt.give, tt.op)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, reason)

			again, againOK := c.ClassifyError(tt.give, tt.op)
			assert.Equal(t, ok, againOK, "classification must be idempotent")
			assert.Equal(t, reason, again, "classification must be idempotent")

			assert.Equal(t, retryerrors.DecisionOf(reason, ok), c.Decide(tt.give, tt.op))
		})
	}
}

func TestDecideNoVerdictIsNoRetry(t *testing.T) {
	d := New().Decide(failure.FromTransport(failure.Transport{StatusCode: 404}), classify.Operation{})
	assert.Equal(t, retryerrors.NoRetry, d)
	assert.False(t, d.ShouldRetry())
}

func TestWithGlobalCode(t *testing.T) {
	c := New(
		WithGlobalCode("EngineBusy", retryerrors.TransientServerError),
		WithGlobalCode("SlowDown", retryerrors.ServerError),
	)

	reason, ok := c.ClassifyError(failure.FromServiceError(failure.ServiceError{Code: "EngineBusy"}, nil), classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.TransientServerError), reason)

	reason, ok = c.ClassifyError(failure.FromServiceError(failure.ServiceError{Code: "SlowDown"}, nil), classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ServerError), reason)

	_, ok = New().ClassifyError(failure.FromServiceError(failure.ServiceError{Code: "EngineBusy"}, nil), classify.Operation{})
	assert.False(t, ok, "options do not leak between classifiers")
}

func TestWithRetryAfterHeaders(t *testing.T) {
	c := New(WithRetryAfterHeaders(RetryAfterHeader{Name: "Retry-After", Unit: time.Second}))
	f := failure.FromTransport(failure.Transport{StatusCode: 503, Header: http.Header{
		"Retry-After":       []string{"4"},
		"X-Amz-Retry-After": []string{"10"},
	}})

	reason, ok := c.ClassifyError(f, classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ExplicitRetryAfter(4*time.Second), reason)

	none := New(WithRetryAfterHeaders())
	reason, ok = none.ClassifyError(f, classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.TransientServerError), reason, "no headers falls back to status")
}

func TestWithClassifier(t *testing.T) {
	teapot := classify.ClassifierFunc(func(f failure.Failure, _ classify.Operation) (retryerrors.Reason, bool) {
		if status, ok := f.StatusCode(); ok && status == 418 {
			return retryerrors.ErrorRetry(retryerrors.ClientError), true
		}
		return retryerrors.Reason{}, false
	})
	c := New(WithClassifier("teapot", teapot))

	reason, ok := c.ClassifyError(failure.FromTransport(failure.Transport{StatusCode: 418}), classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ClientError), reason)

	reason, ok = c.ClassifyError(failure.FromTransport(failure.Transport{StatusCode: 429}), classify.Operation{})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ThrottlingError), reason)
}

func TestWithClassifierZeroReasonIsNoVerdict(t *testing.T) {
	c := New(WithClassifier("sloppy", classify.ClassifierFunc(func(failure.Failure, classify.Operation) (retryerrors.Reason, bool) {
		return retryerrors.Reason{}, true
	})))

	f := failure.FromTransport(failure.Transport{StatusCode: 418})
	_, ok := c.ClassifyError(f, classify.Operation{})
	assert.False(t, ok)
	assert.Equal(t, retryerrors.NoRetry, c.Decide(f, classify.Operation{}))
}

func TestPackageClassifyError(t *testing.T) {
	reason, ok := ClassifyError(httpFailure(400, `{"code": "ThrottlingException"}`), classify.Operation{Name: "CreateAlias"})
	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ThrottlingError), reason)
}

func TestClassifyContext(t *testing.T) {
	tracer := mocktracer.New()
	c := New()

	span := tracer.StartSpan("CreateAlias")
	ctx := opentracing.ContextWithSpan(context.Background(), span)
	reason, ok := c.ClassifyContext(ctx, httpFailure(400, `{"code": "ThrottlingException"}`), _createAlias)
	span.Finish()

	require.True(t, ok)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ThrottlingError), reason)

	span = tracer.StartSpan("Describe")
	ctx = opentracing.ContextWithSpan(context.Background(), span)
	_, ok = c.ClassifyContext(ctx, failure.FromTransport(failure.Transport{StatusCode: 404}), classify.Operation{})
	span.Finish()
	assert.False(t, ok)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "throttling", spans[0].Tag("retry.verdict"))
	assert.Equal(t, "code", spans[0].Tag("retry.classifier"))
	assert.Equal(t, "none", spans[1].Tag("retry.verdict"))
	assert.Nil(t, spans[1].Tag("retry.classifier"))

	// No span is fine too.
	_, ok = c.ClassifyContext(context.Background(), failure.FromTransport(failure.Transport{StatusCode: 503}), classify.Operation{})
	assert.True(t, ok)
}
