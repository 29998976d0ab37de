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
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/retryclass/api/classify"
	iconfig "go.uber.org/retryclass/internal/config"
	"go.uber.org/retryclass/retryerrors"
	"gopkg.in/yaml.v2"
)

// GlobalConfig lists codes to add to the global table, by kind.
type GlobalConfig struct {
	Throttling []string `config:"throttling"`
	Transient  []string `config:"transient"`
	Client     []string `config:"client"`
	Server     []string `config:"server"`
}

// RetryAfterConfig configures a retry-after header.
type RetryAfterConfig struct {
	// Header is the name of the header.
	Header string `config:"header"`

	// Unit of the header value: "ms" or "s". Defaults to "ms".
	Unit string `config:"unit"`
}

// Config is a definition of how to build a Classifier.
type Config struct {
	// Global adds codes to the bundled global table.
	Global GlobalConfig `config:"global"`

	// Operations maps operation names to their modeled retryable errors, as
	// code to kind ("throttling", "transient", "client" or "server").
	Operations map[string]map[string]string `config:"operations"`

	// RetryAfter replaces the headers checked for explicit retry requests.
	RetryAfter []RetryAfterConfig `config:"retryAfter"`
}

// NewFromConfig builds a Classifier from a configuration decoded into a
// map[string]interface{}, usually from YAML. Options given here are applied
// after the configuration.
func NewFromConfig(src interface{}, opts ...Option) (*Classifier, error) {
	var cfg Config
	if err := iconfig.DecodeInto(&cfg, src); err != nil {
		return nil, err
	}
	return cfg.Build(opts...)
}

// NewFromYAML builds a Classifier from a YAML document. An empty document
// is the default configuration.
func NewFromYAML(r io.Reader, opts ...Option) (*Classifier, error) {
	var data map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read retry classification config: %v", err)
	}
	if data == nil {
		return Config{}.Build(opts...)
	}
	return NewFromConfig(data, opts...)
}

// Build validates the Config and builds a Classifier from it. All problems
// with the Config are reported together.
func (cfg Config) Build(opts ...Option) (*Classifier, error) {
	cfgOpts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	return New(append(cfgOpts, opts...)...), nil
}

func (cfg Config) options() ([]Option, error) {
	var (
		opts []Option
		errs error
	)

	globalOpts, err := cfg.Global.options()
	errs = multierr.Append(errs, err)
	opts = append(opts, globalOpts...)

	for _, name := range sortedKeys(cfg.Operations) {
		if name == "" {
			errs = multierr.Append(errs, errors.New("operation name must not be empty"))
			continue
		}
		modeled := make(classify.ModeledErrors, len(cfg.Operations[name]))
		for code, kindName := range cfg.Operations[name] {
			kind, err := parseKind(kindName)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("invalid modeled error %q for operation %q: %v", code, name, err))
				continue
			}
			if code == "" {
				errs = multierr.Append(errs, fmt.Errorf("empty error code for operation %q", name))
				continue
			}
			modeled[code] = kind
		}
		opts = append(opts, WithOperation(name, modeled))
	}

	if cfg.RetryAfter != nil {
		headers := make([]RetryAfterHeader, 0, len(cfg.RetryAfter))
		for _, h := range cfg.RetryAfter {
			header, err := h.header()
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			headers = append(headers, header)
		}
		opts = append(opts, WithRetryAfterHeaders(headers...))
	}

	return opts, errs
}

func (g GlobalConfig) options() ([]Option, error) {
	var (
		opts []Option
		errs error
	)
	seen := make(map[string]retryerrors.ErrorKind)
	add := func(kind retryerrors.ErrorKind, codes []string) {
		for _, code := range codes {
			if code == "" {
				errs = multierr.Append(errs, fmt.Errorf("empty %v error code in global table", kind))
				continue
			}
			if prev, ok := seen[code]; ok && prev != kind {
				errs = multierr.Append(errs, fmt.Errorf("global error code %q listed as both %v and %v", code, prev, kind))
				continue
			}
			seen[code] = kind
			opts = append(opts, WithGlobalCode(code, kind))
		}
	}
	add(retryerrors.ThrottlingError, g.Throttling)
	add(retryerrors.TransientServerError, g.Transient)
	add(retryerrors.ClientError, g.Client)
	add(retryerrors.ServerError, g.Server)
	return opts, errs
}

func (h RetryAfterConfig) header() (RetryAfterHeader, error) {
	if h.Header == "" {
		return RetryAfterHeader{}, errors.New("retry-after header name must not be empty")
	}
	var unit time.Duration
	switch strings.ToLower(h.Unit) {
	case "", "ms", "millisecond", "milliseconds":
		unit = time.Millisecond
	case "s", "second", "seconds":
		unit = time.Second
	default:
		return RetryAfterHeader{}, fmt.Errorf("invalid unit %q for retry-after header %q, possibilities are: [ms s]", h.Unit, h.Header)
	}
	return RetryAfterHeader{Name: h.Header, Unit: unit}, nil
}

// parseKind parses the name of an ErrorKind. Modeled tables only declare
// codes retryable; there is no kind for "not retryable".
func parseKind(name string) (retryerrors.ErrorKind, error) {
	var kind retryerrors.ErrorKind
	if err := kind.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown kind %q, possibilities are: [throttling transient client server]", name)
	}
	return kind, nil
}

func sortedKeys(m map[string]map[string]string) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
