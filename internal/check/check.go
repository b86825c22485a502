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

// Package check provides the stateless invariant checks every node builder
// runs before mutating its draft. Checks only report; they never write.
// Each failure is one of the three oasbuild error kinds (Duplicate,
// Exclusive, Value) carrying the node kind and field it is attributable to.
package check

import (
	"slices"

	"github.com/go-ozzo/ozzo-validation/v4/is"

	"rivaas.dev/oasbuild"
)

// Equaler is implemented by node types whose ordered collections reject
// structurally equal duplicates.
type Equaler[T any] interface {
	Equals(T) bool
}

// SetOnce fails with a Duplicate error if the field already holds a value.
// It must run before the new value is written.
func SetOnce[T any](node, field string, current *T) error {
	if current != nil {
		return &oasbuild.DuplicateError{Node: node, Field: field, Existing: *current}
	}
	return nil
}

// SetOnceSlice is SetOnce for whole-slice fields, where a non-nil slice
// means the field has been assigned.
func SetOnceSlice[T any](node, field string, current []T) error {
	if current != nil {
		return &oasbuild.DuplicateError{Node: node, Field: field, Existing: current}
	}
	return nil
}

// SetOnceMap is SetOnce for whole-map fields.
func SetOnceMap[K comparable, V any](node, field string, current map[K]V) error {
	if current != nil {
		return &oasbuild.DuplicateError{Node: node, Field: field, Existing: current}
	}
	return nil
}

// Exclusive fails with an Exclusive error if the mutually exclusive
// counterpart of the field being set is already populated. Callers invoke it
// from both setters of a pair, so the check is symmetric.
func Exclusive[T any](node, field, other string, otherValue *T) error {
	if otherValue != nil {
		return &oasbuild.ExclusiveError{Node: node, Field: field, Other: other, Existing: *otherValue}
	}
	return nil
}

// ExclusiveMap is Exclusive for pairs whose counterpart is a keyed
// collection. The counterpart counts as populated once it has entries.
func ExclusiveMap[K comparable, V any](node, field, other string, otherValue map[K]V) error {
	if len(otherValue) > 0 {
		return &oasbuild.ExclusiveError{Node: node, Field: field, Other: other, Existing: otherValue}
	}
	return nil
}

// NonEmpty fails with a Value error if a sequence that must not be empty
// when present has zero elements.
func NonEmpty[T any](node, field string, vals []T) error {
	if len(vals) == 0 {
		return &oasbuild.ValueError{Node: node, Field: field, Reason: "must not be empty"}
	}
	return nil
}

// UniqueKey fails with a Duplicate error if the key already exists in the
// keyed collection. A nil map has no keys.
func UniqueKey[V any](node, field string, m map[string]V, key string) error {
	if existing, ok := m[key]; ok {
		return &oasbuild.DuplicateError{Node: node, Field: field, Key: key, Existing: existing}
	}
	return nil
}

// NoDuplicate fails with a Duplicate error if the candidate is structurally
// equal to an element already in the list.
func NoDuplicate[T Equaler[T]](node, field string, list []T, candidate T) error {
	for _, v := range list {
		if v.Equals(candidate) {
			return &oasbuild.DuplicateError{Node: node, Field: field, Existing: v}
		}
	}
	return nil
}

// NoDuplicateComparable is NoDuplicate for plain comparable element types
// such as strings.
func NoDuplicateComparable[T comparable](node, field string, list []T, candidate T) error {
	if slices.Contains(list, candidate) {
		return &oasbuild.DuplicateError{Node: node, Field: field, Existing: candidate}
	}
	return nil
}

// URL fails with a Value error if the string is not a well-formed URL.
func URL(node, field, raw string) error {
	if raw == "" {
		return &oasbuild.ValueError{Node: node, Field: field, Value: raw, Reason: "must be a valid URL"}
	}
	if err := is.URL.Validate(raw); err != nil {
		return &oasbuild.ValueError{Node: node, Field: field, Value: raw, Reason: "must be a valid URL", Cause: err}
	}
	return nil
}
