// File: join.go
// Title: Sequence Joining
// Description: Renders a sequence as a delimited string with an optional
//              distinct delimiter before the last element.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DefaultDelimiter separates joined elements unless WithDelimiter is given
const DefaultDelimiter = ", "

// JoinOption configures Join and JoinFunc
type JoinOption func(*joinConfig)

type joinConfig struct {
	delimiter    string
	endDelimiter string
	hasEnd       bool
}

// WithDelimiter sets the separator placed between elements
func WithDelimiter(delimiter string) JoinOption {
	return func(c *joinConfig) {
		c.delimiter = delimiter
	}
}

// WithEndDelimiter sets the separator placed between the last two elements
func WithEndDelimiter(endDelimiter string) JoinOption {
	return func(c *joinConfig) {
		c.endDelimiter = endDelimiter
		c.hasEnd = true
	}
}

// Join renders each element with fmt.Sprint and joins them
func Join[T any](seq iter.Seq[T], opts ...JoinOption) string {
	return JoinFunc(seq, sprint[T], opts...)
}

// JoinSlice joins the elements of s
func JoinSlice[T any](s []T, opts ...JoinOption) string {
	return Join(slices.Values(s), opts...)
}

// JoinFunc renders each element with render and joins them. seq is ranged
// over exactly once, so single-use iterators are supported.
func JoinFunc[T any](seq iter.Seq[T], render func(T) string, opts ...JoinOption) string {
	if seq == nil {
		return ""
	}
	if render == nil {
		render = sprint[T]
	}

	cfg := joinConfig{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&cfg)
	}
	end := cfg.delimiter
	if cfg.hasEnd {
		end = cfg.endDelimiter
	}

	// The last rendered element stays pending until we know whether the
	// end delimiter precedes it.
	var sb strings.Builder
	var pending string
	count := 0
	for v := range seq {
		if count > 1 {
			sb.WriteString(cfg.delimiter)
		}
		if count > 0 {
			sb.WriteString(pending)
		}
		pending = render(v)
		count++
	}

	switch count {
	case 0:
		return ""
	case 1:
		return pending
	}
	sb.WriteString(end)
	sb.WriteString(pending)
	return sb.String()
}

func sprint[T any](v T) string {
	return fmt.Sprint(v)
}
