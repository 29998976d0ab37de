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
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/internal/classifier"
	"go.uber.org/retryclass/retryerrors"
	"go.uber.org/zap"
)

// Option customizes the behavior of a Classifier.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(opts *options) { f(opts) }

// RetryAfterHeader is a response header through which a service asks for a
// retry after a delay.
type RetryAfterHeader struct {
	// Name of the header, matched case-insensitively.
	Name string

	// Unit of the header's integer value: time.Millisecond or time.Second.
	// Headers in seconds also accept an HTTP date, as Retry-After does.
	Unit time.Duration
}

type namedClassifier struct {
	name       string
	classifier classify.Classifier
}

// options enumerates the options for a Classifier.
type options struct {
	// logger is a zap logger
	logger *zap.Logger

	// scope is an interface for recording metrics to tally.
	scope tally.Scope

	// global holds codes added to the bundled global table.
	global map[string]retryerrors.ErrorKind

	// modeled holds modeled error tables by operation name.
	modeled map[string]classify.ModeledErrors

	// retryAfter is nil until set, meaning the default headers.
	retryAfter []RetryAfterHeader

	extra []namedClassifier
}

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		scope:   tally.NoopScope,
		global:  make(map[string]retryerrors.ErrorKind),
		modeled: make(map[string]classify.ModeledErrors),
	}
}

// WithLogger sets a zap Logger that will be used to record classifications.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithTally sets a Tally scope that will be used to record classification
// metrics.
func WithTally(scope tally.Scope) Option {
	return optionFunc(func(opts *options) {
		if scope != nil {
			opts.scope = scope
		}
	})
}

// WithGlobalCode adds an error code to the global table, or changes the kind
// of a bundled one. Global codes apply to every operation.
func WithGlobalCode(code string, kind retryerrors.ErrorKind) Option {
	return optionFunc(func(opts *options) {
		opts.global[code] = kind
	})
}

// WithOperation registers the modeled retryable errors of an operation.
// Calling it again for the same operation adds to its table.
//
// Modeled kinds take precedence over the global table for that operation.
func WithOperation(name string, modeled classify.ModeledErrors) Option {
	return optionFunc(func(opts *options) {
		table, ok := opts.modeled[name]
		if !ok {
			table = make(classify.ModeledErrors, len(modeled))
			opts.modeled[name] = table
		}
		for code, kind := range modeled {
			table[code] = kind
		}
	})
}

// WithRetryAfterHeaders replaces the headers checked for an explicit retry
// request. They are checked in order.
//
// Defaults to x-amz-retry-after in milliseconds.
func WithRetryAfterHeaders(headers ...RetryAfterHeader) Option {
	return optionFunc(func(opts *options) {
		opts.retryAfter = append([]RetryAfterHeader{}, headers...)
	})
}

// WithClassifier appends a classifier to the chain. Added classifiers run
// after the built-in ones, in the order they were added, and so only see
// failures the built-ins had no opinion on.
func WithClassifier(name string, c classify.Classifier) Option {
	return optionFunc(func(opts *options) {
		opts.extra = append(opts.extra, namedClassifier{name: name, classifier: c})
	})
}

func (o options) retryAfterHeaders() []classifier.RetryAfterHeader {
	if o.retryAfter == nil {
		return classifier.DefaultRetryAfterHeaders
	}
	headers := make([]classifier.RetryAfterHeader, len(o.retryAfter))
	for i, h := range o.retryAfter {
		headers[i] = classifier.RetryAfterHeader{Name: h.Name, Unit: h.Unit}
	}
	return headers
}
