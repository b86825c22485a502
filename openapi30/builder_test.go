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

package openapi30

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/oasbuild"
)

func mustInfo(t *testing.T) *Info {
	t.Helper()
	info, err := NewInfo("Widget API", "2.0.0").Build()
	require.NoError(t, err)
	return info
}

func TestDocumentVersion(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument(mustInfo(t)).Build()
	require.NoError(t, err)
	assert.Equal(t, "3.0.4", doc.OpenAPI)
	assert.Equal(t, oasbuild.Version30, doc.OpenAPIVersion())
}

func TestLicenseBuilder(t *testing.T) {
	t.Parallel()

	t.Run("url is the only optional field", func(t *testing.T) {
		t.Parallel()
		license, err := NewLicense("Apache-2.0").
			URL("https://www.apache.org/licenses/LICENSE-2.0").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "Apache-2.0", license.Name)
		require.NotNil(t, license.URL)
	})

	t.Run("url set once", func(t *testing.T) {
		t.Parallel()
		_, err := NewLicense("MIT").
			URL("https://opensource.org/licenses/MIT").
			URL("https://example.com").
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrDuplicate)
	})
}

func TestReservedPrefixesNotEnforced(t *testing.T) {
	t.Parallel()

	// The x-oai-/x-oas- prefixes were only reserved in the 3.1 line.
	info, err := NewInfo("API", "1.0.0").
		Extension("x-oai-custom", true).
		Extension("x-oas-custom", true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, true, info.Extensions["x-oai-custom"])
	assert.Equal(t, true, info.Extensions["x-oas-custom"])

	_, err = NewInfo("API", "1.0.0").Extension("custom", true).Build()
	assert.ErrorIs(t, err, oasbuild.ErrValue)
}

func TestSchemaBuilder(t *testing.T) {
	t.Parallel()

	t.Run("nullable and singular example", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().
			Type("string").
			Nullable(true).
			Example("sample").
			Build()

		require.NoError(t, err)
		require.NotNil(t, schema.Nullable)
		assert.True(t, *schema.Nullable)
		require.NotNil(t, schema.Example)
		assert.Equal(t, "sample", *schema.Example)
	})

	t.Run("exclusive bounds are boolean modifiers", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().
			Type("number").
			Maximum(100).
			ExclusiveMaximum(true).
			Build()

		require.NoError(t, err)
		require.NotNil(t, schema.ExclusiveMaximum)
		assert.True(t, *schema.ExclusiveMaximum)
	})
}

func TestReference(t *testing.T) {
	t.Parallel()

	// 3.0 references carry nothing but the pointer string.
	out, err := json.Marshal(Ref("#/components/schemas/Pet"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/schemas/Pet"}`, string(out))

	out, err = json.Marshal(&ResponseRef{Ref: Ref("#/components/responses/NotFound")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/responses/NotFound"}`, string(out))
}

func TestSecuritySchemeBuilder(t *testing.T) {
	t.Parallel()

	t.Run("mutualTLS is not a 3.0 type", func(t *testing.T) {
		t.Parallel()
		_, err := NewSecurityScheme(SecuritySchemeType("mutualTLS")).Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("known types accepted", func(t *testing.T) {
		t.Parallel()
		for _, typ := range []SecuritySchemeType{TypeAPIKey, TypeHTTP, TypeOAuth2, TypeOpenIDConnect} {
			scheme, err := NewSecurityScheme(typ).Build()
			require.NoError(t, err, "type %q", typ)
			assert.Equal(t, typ, scheme.Type)
		}
	})
}

func TestDocumentBuilder(t *testing.T) {
	t.Parallel()

	t.Run("path keys validated and deduplicated", func(t *testing.T) {
		t.Parallel()
		item, err := NewPathItem().Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).
			AddPath("/widgets", item).
			AddPath("no-slash", item).
			AddPath("/widgets", item).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, doc.Paths, 1)
	})

	t.Run("marshals the fixed version and path tree", func(t *testing.T) {
		t.Parallel()
		ok, err := NewResponse("OK").Build()
		require.NoError(t, err)
		get, err := NewOperation().AddResponse("200", ok).Build()
		require.NoError(t, err)
		item, err := NewPathItem().Get(get).Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).AddPath("/widgets", item).Build()
		require.NoError(t, err)

		out, err := json.Marshal(doc)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "3.0.4", decoded["openapi"])
		assert.NotContains(t, string(out), "null")
	})
}
