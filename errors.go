// Copyright 2025 The Rivaas Authors
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

package oasbuild

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// Every builder failure matches exactly one of these.
var (
	// ErrDuplicate indicates a set-once field already holds a value, or a
	// collection already contains the key or value being added.
	ErrDuplicate = errors.New("oasbuild: duplicate")

	// ErrExclusive indicates the field being set conflicts with another
	// field already populated on the same node.
	ErrExclusive = errors.New("oasbuild: mutually exclusive fields")

	// ErrValue indicates a supplied value failed a domain check.
	ErrValue = errors.New("oasbuild: invalid value")
)

// DuplicateError reports a second assignment to a set-once field, a repeated
// key in a keyed collection, or a structurally equal repeated element in a
// deduplicated list.
type DuplicateError struct {
	// Node is the OpenAPI object kind, e.g. "License" or "Document".
	Node string

	// Field is the field or collection on the node.
	Field string

	// Key is the conflicting key for keyed-collection duplicates.
	// Empty for set-once and list duplicates.
	Key string

	// Existing is the value already present.
	Existing any
}

// Error returns a human-readable error message.
func (e *DuplicateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("oasbuild: %s.%s already contains key %q", e.Node, e.Field, e.Key)
	}
	return fmt.Sprintf("oasbuild: %s.%s already set", e.Node, e.Field)
}

// Is reports whether target matches this error type.
func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// ExclusiveError reports an assignment to a field whose mutually exclusive
// counterpart is already populated. The check is symmetric: setting either
// field of the pair while the other is present produces the same error kind,
// with Other naming the field that already exists.
type ExclusiveError struct {
	// Node is the OpenAPI object kind.
	Node string

	// Field is the field being set.
	Field string

	// Other is the mutually exclusive field that is already populated.
	Other string

	// Existing is the other field's current value.
	Existing any
}

// Error returns a human-readable error message.
func (e *ExclusiveError) Error() string {
	return fmt.Sprintf("oasbuild: %s.%s cannot be set: mutually exclusive field %q already set", e.Node, e.Field, e.Other)
}

// Is reports whether target matches this error type.
func (e *ExclusiveError) Is(target error) bool {
	return target == ErrExclusive
}

// ValueError reports a value that failed a domain check: a malformed URL, an
// empty enumeration, a path key without a leading slash, or an extension key
// without the "x-" prefix.
type ValueError struct {
	// Node is the OpenAPI object kind.
	Node string

	// Field is the field the value was supplied for.
	Field string

	// Value is the rejected value.
	Value any

	// Reason describes the failed check.
	Reason string

	// Cause is the underlying validation error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *ValueError) Error() string {
	msg := fmt.Sprintf("oasbuild: %s.%s: %s", e.Node, e.Field, e.Reason)
	if e.Value != nil {
		msg = fmt.Sprintf("oasbuild: %s.%s: %v: %s", e.Node, e.Field, e.Value, e.Reason)
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValueError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}
