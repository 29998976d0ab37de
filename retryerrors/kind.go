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
	"fmt"
	"strconv"
	"strings"
)

const (
	// ThrottlingError means the remote service rejected the call because the
	// caller is sending too many requests. Retrying after a delay is expected
	// to succeed.
	ThrottlingError ErrorKind = 1

	// TransientServerError means the remote service failed in a way that is
	// likely to go away on its own, such as a timeout or a brief outage.
	TransientServerError ErrorKind = 2

	// ClientError means the request itself was at fault. Operation contracts
	// may still declare specific client errors retryable.
	ClientError ErrorKind = 3

	// ServerError means the remote service failed for a reason that is not
	// known to be transient.
	ServerError ErrorKind = 4
)

var (
	_kindToString = map[ErrorKind]string{
		ThrottlingError:      "throttling",
		TransientServerError: "transient",
		ClientError:          "client",
		ServerError:          "server",
	}
	_stringToKind = map[string]ErrorKind{
		"throttling": ThrottlingError,
		"transient":  TransientServerError,
		"client":     ClientError,
		"server":     ServerError,
	}
)

// ErrorKind is the category of a retryable failure.
//
// Kinds are mutually exclusive labels; exactly one applies to a classified
// failure. The zero value is not a valid kind.
type ErrorKind int

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	s, ok := _kindToString[k]
	if ok {
		return s
	}
	return strconv.Itoa(int(k))
}

// IsValid reports whether k is one of the declared kinds.
func (k ErrorKind) IsValid() bool {
	_, ok := _kindToString[k]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (k ErrorKind) MarshalText() ([]byte, error) {
	s, ok := _kindToString[k]
	if ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown error kind: %d", int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ErrorKind) UnmarshalText(text []byte) error {
	i, ok := _stringToKind[strings.ToLower(string(text))]
	if !ok {
		return fmt.Errorf("unknown error kind string: %s", string(text))
	}
	*k = i
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	s, ok := _kindToString[k]
	if ok {
		return []byte(`"` + s + `"`), nil
	}
	return nil, fmt.Errorf("unknown error kind: %d", int(k))
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *ErrorKind) UnmarshalJSON(text []byte) error {
	s := string(text)
	if len(s) < 3 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid error kind string: %s", s)
	}
	i, ok := _stringToKind[strings.ToLower(s[1:len(s)-1])]
	if !ok {
		return fmt.Errorf("unknown error kind string: %s", s)
	}
	*k = i
	return nil
}
