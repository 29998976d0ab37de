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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsMapOneToOneAndCovered(t *testing.T) {
	require.Equal(t, len(_kindToString), len(_stringToKind))
	for kind, s := range _kindToString {
		otherKind, ok := _stringToKind[s]
		require.True(t, ok)
		require.Equal(t, kind, otherKind)
		assert.True(t, kind.IsValid())
	}
}

func TestKindUnmarshalTextIgnoresCase(t *testing.T) {
	var k ErrorKind
	require.NoError(t, k.UnmarshalText([]byte("Throttling")))
	assert.Equal(t, ThrottlingError, k)
}

func TestKindInStruct(t *testing.T) {
	var v struct {
		Kind ErrorKind `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind": "transient"}`), &v))
	assert.Equal(t, TransientServerError, v.Kind)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "transient"}`, string(out))
}

func TestKindFailures(t *testing.T) {
	var zero ErrorKind
	assert.False(t, zero.IsValid())
	assert.Equal(t, "0", zero.String())

	badKind := ErrorKind(100)
	assert.Equal(t, "100", badKind.String())
	_, err := badKind.MarshalText()
	assert.Error(t, err)
	_, err = badKind.MarshalJSON()
	assert.Error(t, err)
	assert.Error(t, badKind.UnmarshalText([]byte("none")))
	assert.Error(t, badKind.UnmarshalJSON([]byte("200")))
	assert.Error(t, badKind.UnmarshalJSON([]byte(`"retryable"`)))
}
