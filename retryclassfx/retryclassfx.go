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

// Package retryclassfx provides a retryclass.Classifier to Fx applications.
package retryclassfx

import (
	"github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/retryclass"
	"go.uber.org/zap"
)

// Module provides a *retryclass.Classifier. A logger, a Tally scope and a
// retryclass.Config are used if the application provides them.
var Module = fx.Provide(New)

// Params defines the dependencies of the module.
type Params struct {
	fx.In

	Logger *zap.Logger        `optional:"true"`
	Scope  tally.Scope        `optional:"true"`
	Config *retryclass.Config `optional:"true"`
}

// Result defines the objects the module provides.
type Result struct {
	fx.Out

	Classifier *retryclass.Classifier
}

// New builds a Classifier from the Params.
func New(p Params) (Result, error) {
	opts := []retryclass.Option{
		retryclass.WithLogger(p.Logger),
		retryclass.WithTally(p.Scope),
	}

	cfg := retryclass.Config{}
	if p.Config != nil {
		cfg = *p.Config
	}
	classifier, err := cfg.Build(opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Classifier: classifier}, nil
}
