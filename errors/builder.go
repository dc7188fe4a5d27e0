package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder assembles an error enriched with hints, details and sentinels.
type ErrorBuilder struct {
	err       error
	hints     []string
	context   map[string]any
	exitCode  *int
	sentinels []error
}

// Build starts a new ErrorBuilder from err.
// A leaf error (one that wraps nothing) is treated as a sentinel so errors.Is keeps matching it.
func Build(err error) *ErrorBuilder {
	b := &ErrorBuilder{err: err}
	if err != nil && errors.UnwrapOnce(err) == nil {
		b.sentinels = append(b.sentinels, err)
	}
	return b
}

// Wrap starts a builder whose message is "<sentinel>: <cause>" and which matches both with errors.Is.
func Wrap(sentinel error, cause error) *ErrorBuilder {
	if cause == nil {
		return Build(sentinel)
	}
	b := &ErrorBuilder{err: fmt.Errorf("%w: %w", sentinel, cause)}
	b.sentinels = append(b.sentinels, sentinel)
	return b
}

// WithHint adds a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hints = append(b.hints, hint)
	return b
}

// WithHintf adds a formatted user-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.hints = append(b.hints, fmt.Sprintf(format, args...))
	return b
}

// WithExplanation attaches a longer description of what went wrong.
func (b *ErrorBuilder) WithExplanation(explanation string) *ErrorBuilder {
	b.err = errors.WithDetail(b.err, explanation)
	return b
}

// WithContext records a key/value pair rendered by Format in verbose mode.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// WithExitCode attaches the process exit code.
func (b *ErrorBuilder) WithExitCode(code int) *ErrorBuilder {
	b.exitCode = &code
	return b
}

// Err returns the assembled error, or nil when the builder was started from nil.
func (b *ErrorBuilder) Err() error {
	if b.err == nil {
		return nil
	}

	err := b.err
	for _, hint := range b.hints {
		err = errors.WithHint(err, hint)
	}

	if len(b.context) > 0 {
		keys := make([]string, 0, len(b.context))
		for k := range b.context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		values := make([]any, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+"=%s")
			values = append(values, errors.Safe(b.context[key]))
		}
		err = errors.WithSafeDetails(err, strings.Join(parts, " "), values...)
	}

	// Marks go on last so they sit at the top of the chain.
	for _, sentinel := range b.sentinels {
		err = errors.Mark(err, sentinel)
	}

	if b.exitCode != nil {
		err = WithExitCode(err, *b.exitCode)
	}

	return err
}
