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

package oasbuild_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"rivaas.dev/oasbuild"
	"rivaas.dev/oasbuild/openapi31"
)

func buildMinimalDocument(t *testing.T) oasbuild.Document {
	t.Helper()

	info, err := openapi31.NewInfo("Render API", "1.0.0").Build()
	require.NoError(t, err)

	doc, err := openapi31.NewDocument(info).Build()
	require.NoError(t, err)

	return doc
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	t.Run("indents with two spaces by default", func(t *testing.T) {
		t.Parallel()
		out, err := oasbuild.ToJSON(buildMinimalDocument(t))
		require.NoError(t, err)

		assert.Contains(t, string(out), "\n  \"openapi\"")

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "3.1.2", decoded["openapi"])
	})

	t.Run("WithIndent overrides the indent string", func(t *testing.T) {
		t.Parallel()
		out, err := oasbuild.ToJSON(buildMinimalDocument(t), oasbuild.WithIndent("\t"))
		require.NoError(t, err)
		assert.Contains(t, string(out), "\n\t\"openapi\"")
	})

	t.Run("WithCompactJSON emits a single line", func(t *testing.T) {
		t.Parallel()
		out, err := oasbuild.ToJSON(buildMinimalDocument(t), oasbuild.WithCompactJSON())
		require.NoError(t, err)
		assert.NotContains(t, string(out), "\n")
	})

	t.Run("nil document is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := oasbuild.ToJSON(nil)
		assert.ErrorIs(t, err, oasbuild.ErrNilDocument)
	})
}

func TestToYAML(t *testing.T) {
	t.Parallel()

	t.Run("produces decodable YAML", func(t *testing.T) {
		t.Parallel()
		out, err := oasbuild.ToYAML(buildMinimalDocument(t))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, "3.1.2", decoded["openapi"])
	})

	t.Run("WithYAMLIndent widens nesting", func(t *testing.T) {
		t.Parallel()
		out, err := oasbuild.ToYAML(buildMinimalDocument(t), oasbuild.WithYAMLIndent(4))
		require.NoError(t, err)

		var found bool
		for line := range strings.Lines(string(out)) {
			if strings.HasPrefix(line, "    title:") {
				found = true
			}
		}
		assert.True(t, found, "expected four-space indented info fields, got:\n%s", out)
	})

	t.Run("nil document is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := oasbuild.ToYAML(nil)
		assert.ErrorIs(t, err, oasbuild.ErrNilDocument)
	})
}
