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

package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/oasbuild"
)

func TestPathKey(t *testing.T) {
	t.Parallel()

	valid := []string{
		"/",
		"/users",
		"/users/{id}",
		"/users/{id}/posts/{postId}",
		"/v1.2/pets",
		"/{a_b-c.d}",
	}
	for _, path := range valid {
		t.Run("accepts "+path, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, PathKey("Document", path))
		})
	}

	invalid := []struct {
		name   string
		path   string
		reason string
	}{
		{"empty", "", "path cannot be empty"},
		{"no leading slash", "users", "path must start with '/'"},
		{"unclosed brace", "/users/{id", "mismatched braces in segment '{id'"},
		{"unopened brace", "/users/id}", "mismatched braces in segment 'id}'"},
		{"brace mid segment", "/users/x{id}", "mismatched braces in segment 'x{id}'"},
		{"empty parameter", "/users/{}", "empty parameter name in segment '{}'"},
		{"nested braces", "/users/{{id}}", "parameter name cannot contain braces: '{{id}}'"},
		{"bad parameter chars", "/users/{id!}", "parameter name 'id!' must match pattern [a-zA-Z0-9._-]+"},
		{"duplicate parameter", "/users/{id}/posts/{id}", "duplicate path parameter 'id'"},
	}
	for _, tc := range invalid {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			t.Parallel()
			err := PathKey("Document", tc.path)

			require.ErrorIs(t, err, oasbuild.ErrValue)

			var val *oasbuild.ValueError
			require.ErrorAs(t, err, &val)
			assert.Equal(t, "Document", val.Node)
			assert.Equal(t, "paths", val.Field)
			assert.Equal(t, tc.path, val.Value)
			assert.Equal(t, tc.reason, val.Reason)
		})
	}
}
