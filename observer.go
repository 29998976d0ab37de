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
	"github.com/uber-go/tally"
	"go.uber.org/retryclass/api/classify"
	"go.uber.org/retryclass/api/failure"
	"go.uber.org/retryclass/internal/classifier"
	"go.uber.org/retryclass/internal/registry"
	"go.uber.org/retryclass/retryerrors"
	"go.uber.org/zap"
)

const (
	_verdictNone     = "none"
	_verdictExplicit = "explicit"

	// _noClassifier tags classifications nobody had an opinion on.
	_noClassifier = "none"
)

var _allKinds = []retryerrors.ErrorKind{
	retryerrors.ThrottlingError,
	retryerrors.TransientServerError,
	retryerrors.ClientError,
	retryerrors.ServerError,
}

type counterKey struct {
	classifier string
	verdict    string
}

// observer records logs and metrics for every classification.
//
// All counters are created up front so the hot path only reads an immutable
// map.
type observer struct {
	logger   *zap.Logger
	counters map[counterKey]tally.Counter

	// registry is used to report modeled kinds that relabel a global code.
	registry *registry.Registry
}

func newObserver(logger *zap.Logger, scope tally.Scope, classifiers []string, reg *registry.Registry) *observer {
	o := &observer{
		logger:   logger,
		counters: make(map[counterKey]tally.Counter),
		registry: reg,
	}

	verdicts := []string{_verdictExplicit}
	for _, kind := range _allKinds {
		verdicts = append(verdicts, kind.String())
	}
	for _, name := range classifiers {
		for _, verdict := range verdicts {
			o.counters[counterKey{name, verdict}] = counter(scope, name, verdict)
		}
	}
	o.counters[counterKey{_noClassifier, _verdictNone}] = counter(scope, _noClassifier, _verdictNone)
	return o
}

func counter(scope tally.Scope, name, verdict string) tally.Counter {
	return scope.Tagged(map[string]string{
		"classifier": name,
		"verdict":    verdict,
	}).Counter("classifications")
}

func (o *observer) observe(f failure.Failure, op classify.Operation, reason retryerrors.Reason, by string, ok bool) {
	verdict := verdictOf(reason, ok)
	if !ok {
		by = _noClassifier
	}

	if c, found := o.counters[counterKey{by, verdict}]; found {
		c.Inc(1)
	}

	if ce := o.logger.Check(zap.DebugLevel, "classified failure"); ce != nil {
		fields := []zap.Field{
			zap.String("operation", op.Name),
			zap.String("classifier", by),
			zap.String("verdict", verdict),
		}
		if se, isService := f.ServiceError(); isService {
			fields = append(fields, zap.String("code", se.Code))
			if by == classifier.NameCode {
				kind, _ := reason.Kind()
				if global, listed := o.registry.Global(se.Code); listed && global != kind {
					fields = append(fields, zap.Stringer("globalKind", global))
				}
			}
		}
		if status, hasStatus := f.StatusCode(); hasStatus {
			fields = append(fields, zap.Int("status", status))
		}
		if delay, hasDelay := reason.DelayHint(); ok && hasDelay {
			fields = append(fields, zap.Duration("delayHint", delay))
		}
		ce.Write(fields...)
	}
}

func verdictOf(reason retryerrors.Reason, ok bool) string {
	if !ok {
		return _verdictNone
	}
	if reason.IsExplicit() {
		return _verdictExplicit
	}
	kind, _ := reason.Kind()
	return kind.String()
}
