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

package openapi31

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerEquals(t *testing.T) {
	t.Parallel()

	desc := "prod"
	base := &Server{URL: "https://api.example.com", Description: &desc}

	t.Run("equal values match", func(t *testing.T) {
		t.Parallel()
		other := "prod"
		assert.True(t, base.Equals(&Server{URL: "https://api.example.com", Description: &other}))
	})

	t.Run("differing description does not match", func(t *testing.T) {
		t.Parallel()
		other := "staging"
		assert.False(t, base.Equals(&Server{URL: "https://api.example.com", Description: &other}))
	})

	t.Run("nil and empty collections compare equal", func(t *testing.T) {
		t.Parallel()
		a := &Server{URL: "https://api.example.com", Variables: nil}
		b := &Server{URL: "https://api.example.com", Variables: map[string]*ServerVariable{}}
		assert.True(t, a.Equals(b))
	})

	t.Run("variables compare recursively", func(t *testing.T) {
		t.Parallel()
		a := &Server{URL: "u", Variables: map[string]*ServerVariable{"host": {Default: "a"}}}
		b := &Server{URL: "u", Variables: map[string]*ServerVariable{"host": {Default: "a"}}}
		c := &Server{URL: "u", Variables: map[string]*ServerVariable{"host": {Default: "c"}}}
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(c))
	})
}

func TestTagEquals(t *testing.T) {
	t.Parallel()

	a := &Tag{Name: "pets", ExternalDocs: &ExternalDocs{URL: "https://example.com"}}
	b := &Tag{Name: "pets", ExternalDocs: &ExternalDocs{URL: "https://example.com"}}
	c := &Tag{Name: "pets"}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.True(t, c.Equals(&Tag{Name: "pets"}))
}

func TestSecurityRequirementEquals(t *testing.T) {
	t.Parallel()

	a := SecurityRequirement{"oauth": {"read", "write"}}
	b := SecurityRequirement{"oauth": {"read", "write"}}
	c := SecurityRequirement{"oauth": {"write", "read"}}

	assert.True(t, a.Equals(b))
	// Scope lists are ordered.
	assert.False(t, a.Equals(c))
}

func TestExtensionBagEquality(t *testing.T) {
	t.Parallel()

	a := &ExternalDocs{URL: "u", Extensions: map[string]any{"x-a": []any{1, 2}}}
	b := &ExternalDocs{URL: "u", Extensions: map[string]any{"x-a": []any{1, 2}}}
	c := &ExternalDocs{URL: "u", Extensions: map[string]any{"x-a": []any{2, 1}}}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
