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

// This file contains structural equality for the node kinds whose ordered
// collections reject duplicates (servers, tags, security requirements).
// Equality is value-based and recursive; nil and empty collections compare
// equal, matching the omit-when-absent serialization contract.

package openapi30

import (
	"maps"
	"reflect"
	"slices"
)

// equalStringPtr compares two *string pointers for equality.
// Both nil returns true, both non-nil with equal values returns true.
func equalStringPtr(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// equalExtensions compares two extension bags. Extension values are opaque,
// so element comparison falls back to reflect.DeepEqual.
func equalExtensions(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, reflect.DeepEqual)
}

// Equals reports whether two servers are structurally equal.
func (s *Server) Equals(other *Server) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.URL != other.URL || !equalStringPtr(s.Description, other.Description) {
		return false
	}
	if !maps.EqualFunc(s.Variables, other.Variables, (*ServerVariable).Equals) {
		return false
	}
	return equalExtensions(s.Extensions, other.Extensions)
}

// Equals reports whether two server variables are structurally equal.
func (v *ServerVariable) Equals(other *ServerVariable) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Default == other.Default &&
		equalStringPtr(v.Description, other.Description) &&
		slices.Equal(v.Enum, other.Enum) &&
		equalExtensions(v.Extensions, other.Extensions)
}

// Equals reports whether two tags are structurally equal.
func (t *Tag) Equals(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name == other.Name &&
		equalStringPtr(t.Description, other.Description) &&
		t.ExternalDocs.Equals(other.ExternalDocs) &&
		equalExtensions(t.Extensions, other.Extensions)
}

// Equals reports whether two external documentation nodes are structurally
// equal.
func (d *ExternalDocs) Equals(other *ExternalDocs) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.URL == other.URL &&
		equalStringPtr(d.Description, other.Description) &&
		equalExtensions(d.Extensions, other.Extensions)
}

// Equals reports whether two security requirements name the same schemes
// with the same scope lists.
func (r SecurityRequirement) Equals(other SecurityRequirement) bool {
	return maps.EqualFunc(r, other, slices.Equal)
}
