// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pslog provides a plug-in deque.Logger wrapping slog.Logger for usage in
// a deque.RingBuffer.
//
// This can be used like so:
//
//		rb := deque.Must[int](&deque.Options{
//	         Logger: pslog.New(slog.Default()),
//		     // ...other opts
//		})
package pslog

import (
	"context"
	"log/slog"

	"github.com/maypok86/deque"
)

var _ deque.Logger = (*Logger)(nil)

// Option applies options to the logger.
type Option func(*options)

type options struct {
	level slog.Level
}

// WithWarnLevel sets the level used for deque warnings. Defaults to slog.LevelWarn.
//
// Warnings are emitted when a bounded buffer refuses to grow, which some callers
// treat as regular back pressure and prefer to log at a lower level.
func WithWarnLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// Logger that wraps the slog.Logger.
type Logger struct {
	log       *slog.Logger
	warnLevel slog.Level
}

// New returns a new Logger.
func New(log *slog.Logger, opts ...Option) *Logger {
	if log == nil {
		panic("pslog: log is nil")
	}
	o := &options{
		level: slog.LevelWarn,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Logger{
		log:       log,
		warnLevel: o.level,
	}
}

// Warn is for the deque.Logger interface.
func (l *Logger) Warn(ctx context.Context, msg string, err error) {
	l.log.Log(ctx, l.warnLevel, msg, slog.Any("err", err))
}

// Error is for the deque.Logger interface.
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.log.ErrorContext(ctx, msg, slog.Any("err", err))
}
