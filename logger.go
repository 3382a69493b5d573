/*
Copyright 2024 The stdf2atdf Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package stdf

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

// Log is the package-level logger used by the frame reader, decoder, and
// pipeline for recoverable-error diagnostics. It discards everything
// until a host application calls SetLogger, following the delegating-sink
// pattern: code that runs at package-init time (the template registries)
// can safely capture Log before a concrete sink ever exists.
var Log = logr.New(rootSink)

// SetLogger installs l as the destination for every logger obtained before
// or after this call, including ones already captured via FromContext.
func SetLogger(l logr.Logger) {
	rootSink.fulfill(l.GetSink())
}

// FromContext returns the logr.Logger carried on ctx by IntoContext, or the
// package-level Log if ctx carries none.
func FromContext(ctx context.Context) logr.Logger {
	if ctx != nil {
		if l, err := logr.FromContext(ctx); err == nil {
			return l
		}
	}
	return Log
}

// IntoContext returns a copy of ctx carrying l, retrievable via FromContext.
func IntoContext(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

var rootSink = newDelegatingLogSink()

// nullLogSink discards everything; it is the delegatingLogSink's initial
// target before SetLogger is ever called.
type nullLogSink struct{}

func (nullLogSink) Init(logr.RuntimeInfo)                    {}
func (nullLogSink) Enabled(int) bool                         { return false }
func (nullLogSink) Info(int, string, ...interface{})         {}
func (nullLogSink) Error(error, string, ...interface{})      {}
func (l nullLogSink) WithName(string) logr.LogSink           { return l }
func (l nullLogSink) WithValues(...interface{}) logr.LogSink { return l }

// delegatingLogSink lets Log be captured as a value before the real sink is
// known and retroactively redirect every call once SetLogger supplies one.
type delegatingLogSink struct {
	mu     sync.RWMutex
	target logr.LogSink
}

func newDelegatingLogSink() *delegatingLogSink {
	return &delegatingLogSink{target: nullLogSink{}}
}

func (d *delegatingLogSink) fulfill(sink logr.LogSink) {
	if sink == nil {
		sink = nullLogSink{}
	}
	d.mu.Lock()
	d.target = sink
	d.mu.Unlock()
}

func (d *delegatingLogSink) get() logr.LogSink {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.target
}

func (d *delegatingLogSink) Init(info logr.RuntimeInfo) { d.get().Init(info) }
func (d *delegatingLogSink) Enabled(level int) bool     { return d.get().Enabled(level) }
func (d *delegatingLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	d.get().Info(level, msg, keysAndValues...)
}
func (d *delegatingLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	d.get().Error(err, msg, keysAndValues...)
}
func (d *delegatingLogSink) WithName(name string) logr.LogSink {
	return d.get().WithName(name)
}
func (d *delegatingLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return d.get().WithValues(keysAndValues...)
}
