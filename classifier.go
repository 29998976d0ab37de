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

	"github.com/opentracing/opentracing-go"
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/internal/classifier"
	"go.uber.org/retryclass/internal/registry"
	"go.uber.org/retryclass/retryerrors"
)

const (
	_verdictTag    = "retry.verdict"
	_classifierTag = "retry.classifier"
)

// Classifier decides whether failed calls are worth retrying.
//
// A Classifier is built once, when the client is configured, and is safe to
// share between any number of concurrent calls. Its tables never change
// after construction.
type Classifier struct {
	chain    *classifier.Chain
	observer *observer
}

var _ classify.Classifier = (*Classifier)(nil)

// New builds a Classifier.
func New(opts ...Option) *Classifier {
	options := defaultOptions()
	for _, opt := range opts {
		opt.apply(&options)
	}

	global := registry.DefaultGlobal()
	for code, kind := range options.global {
		global[code] = kind
	}
	reg := registry.New(global, options.modeled)

	extra := make([]classify.NamedClassifier, len(options.extra))
	for i, e := range options.extra {
		extra[i] = classify.Named(e.name, e.classifier)
	}

	chain := classifier.NewDefaultChain(reg, options.retryAfterHeaders(), extra...)
	return &Classifier{
		chain:    chain,
		observer: newObserver(options.logger, options.scope, chain.Names(), reg),
	}
}

// ClassifyError classifies a failure in the context of the operation that
// produced it.
//
// It returns false when no classifier has an opinion. Callers should then
// treat the failure as not retryable unless they know better.
//
// If op carries an error code and the failure does not, the failure is
// classified as a service error with that code.
func (c *Classifier) ClassifyError(f failure.Failure, op classify.Operation) (retryerrors.Reason, bool) {
	reason, _, ok := c.classify(f, op)
	return reason, ok
}

// Decide is ClassifyError turned into a Decision. No verdict means NoRetry.
func (c *Classifier) Decide(f failure.Failure, op classify.Operation) retryerrors.Decision {
	return retryerrors.DecisionOf(c.ClassifyError(f, op))
}

// ClassifyContext is ClassifyError that also tags the span in ctx, if any,
// with the verdict.
func (c *Classifier) ClassifyContext(ctx context.Context, f failure.Failure, op classify.Operation) (retryerrors.Reason, bool) {
	reason, by, ok := c.classify(f, op)
	if span := opentracing.SpanFromContext(ctx); span != nil {
		span.SetTag(_verdictTag, verdictOf(reason, ok))
		if ok {
			span.SetTag(_classifierTag, by)
		}
	}
	return reason, ok
}

func (c *Classifier) classify(f failure.Failure, op classify.Operation) (retryerrors.Reason, string, bool) {
	f = f.WithCode(op.ErrorCode)
	reason, by, ok := c.chain.Classify(f, op)
	c.observer.observe(f, op, reason, by, ok)
	return reason, by, ok
}

var _defaultClassifier = New()

// ClassifyError classifies a failure with the bundled tables and default
// settings. See Classifier.ClassifyError.
func ClassifyError(f failure.Failure, op classify.Operation) (retryerrors.Reason, bool) {
	return _defaultClassifier.ClassifyError(f, op)
}
