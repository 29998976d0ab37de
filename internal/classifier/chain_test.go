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
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/classify/classifytest"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/internal/registry"
	"go.uber.org/retryclass/retryerrors"
)

func TestChainFirstVerdictWins(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	f := failure.FromTransport(failure.Transport{StatusCode: 418})
	op := classify.Operation{Name: "Brew"}

	first := classifytest.NewMockClassifier(mockCtrl)
	second := classifytest.NewMockClassifier(mockCtrl)
	third := classifytest.NewMockClassifier(mockCtrl)

	gomock.InOrder(
		first.EXPECT().ClassifyError(f, op).Return(retryerrors.Reason{}, false),
		second.EXPECT().ClassifyError(f, op).Return(retryerrors.ErrorRetry(retryerrors.ClientError), true),
	)
	// third is never consulted.

	chain := NewChain(
		classify.Named("first", first),
		classify.Named("second", second),
		classify.Named("third", third),
	)

	reason, by, ok := chain.Classify(f, op)
	require.True(t, ok)
	assert.Equal(t, "second", by)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ClientError), reason)
}

func TestChainSkipsInvalidReasons(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	f := failure.FromTransport(failure.Transport{StatusCode: 409})
	op := classify.Operation{Name: "Put"}

	zero := classifytest.NewMockClassifier(mockCtrl)
	undeclared := classifytest.NewMockClassifier(mockCtrl)
	last := classifytest.NewMockClassifier(mockCtrl)

	gomock.InOrder(
		zero.EXPECT().ClassifyError(f, op).Return(retryerrors.Reason{}, true),
		undeclared.EXPECT().ClassifyError(f, op).Return(retryerrors.ErrorRetry(retryerrors.ErrorKind(42)), true),
		last.EXPECT().ClassifyError(f, op).Return(retryerrors.ErrorRetry(retryerrors.ServerError), true),
	)

	chain := NewChain(
		classify.Named("zero", zero),
		classify.Named("undeclared", undeclared),
		classify.Named("last", last),
	)

	reason, by, ok := chain.Classify(f, op)
	require.True(t, ok)
	assert.Equal(t, "last", by)
	assert.Equal(t, retryerrors.ErrorRetry(retryerrors.ServerError), reason)
}

func TestChainNoVerdict(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	only := classifytest.NewMockClassifier(mockCtrl)
	only.EXPECT().ClassifyError(gomock.Any(), gomock.Any()).Return(retryerrors.Reason{}, false)

	reason, ok := NewChain(classify.Named("only", only)).ClassifyError(failure.Failure{}, classify.Operation{})
	assert.False(t, ok)
	assert.Equal(t, retryerrors.Reason{}, reason)

	_, ok = NewChain().ClassifyError(failure.Failure{}, classify.Operation{})
	assert.False(t, ok, "an empty chain has no opinion")
}

func TestDefaultChainOrder(t *testing.T) {
	var calls atomic.Int32
	extra := classify.Named("extra", classify.ClassifierFunc(func(failure.Failure, classify.Operation) (retryerrors.Reason, bool) {
		calls.Inc()
		return retryerrors.ErrorRetry(retryerrors.ClientError), true
	}))

	chain := NewDefaultChain(registry.New(registry.DefaultGlobal(), nil), DefaultRetryAfterHeaders, extra)
	assert.Equal(t, []string{NameExplicit, NameCode, NameTransport, NameStatus, "extra"}, chain.Names())

	tests := []struct {
		msg       string
		give      failure.Failure
		want      retryerrors.Reason
		wantBy    string
		wantCalls int32
	}{
		{
			msg: "explicit beats code and status",
			give: failure.FromServiceError(failure.ServiceError{Code: "ThrottlingException"}, &failure.Transport{
				StatusCode: 503,
				Header:     http.Header{"X-Amz-Retry-After": []string{"100"}},
			}),
			want:   retryerrors.ExplicitRetryAfter(100 * time.Millisecond),
			wantBy: NameExplicit,
		},
		{
			msg:    "code beats status",
			give:   serviceError("ThrottlingException", 503),
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantBy: NameCode,
		},
		{
			msg:    "status when code unknown",
			give:   serviceError("KMSInvalidStateException", 503),
			want:   retryerrors.ErrorRetry(retryerrors.TransientServerError),
			wantBy: NameStatus,
		},
		{
			msg:    "status for bare transport",
			give:   failure.FromTransport(failure.Transport{StatusCode: 429}),
			want:   retryerrors.ErrorRetry(retryerrors.ThrottlingError),
			wantBy: NameStatus,
		},
		{
			msg:       "extra only after built-ins defer",
			give:      serviceError("ValidationException", 400),
			want:      retryerrors.ErrorRetry(retryerrors.ClientError),
			wantBy:    "extra",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			calls.Store(0)
			reason, by, ok := chain.Classify(tt.give, classify.Operation{})
			require.True(t, ok)
			assert.Equal(t, tt.want, reason)
			assert.Equal(t, tt.wantBy, by)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestChainConcurrentUse(t *testing.T) {
	chain := NewDefaultChain(registry.New(registry.DefaultGlobal(), nil), DefaultRetryAfterHeaders)
	f := serviceError("SlowDown", 503)

	var (
		wg         sync.WaitGroup
		throttling atomic.Int64
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if reason, ok := chain.ClassifyError(f, classify.Operation{}); ok && reason == retryerrors.ErrorRetry(retryerrors.ThrottlingError) {
					throttling.Inc()
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5000), throttling.Load())
}
