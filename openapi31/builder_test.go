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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/oasbuild"
)

func TestErrorLatching(t *testing.T) {
	t.Parallel()

	t.Run("every failure is collected, not just the first", func(t *testing.T) {
		t.Parallel()
		_, err := NewContact().
			URL("bad one").
			Email("ok@example.com").
			Email("twice").
			Build()

		require.Error(t, err)
		assert.ErrorIs(t, err, oasbuild.ErrValue)
		assert.ErrorIs(t, err, oasbuild.ErrDuplicate)
	})

	t.Run("build returns a copy detached from the builder", func(t *testing.T) {
		t.Parallel()
		b := NewTag("pets")
		first, err := b.Build()
		require.NoError(t, err)

		b.Description("added later")
		assert.Nil(t, first.Description)
	})

	t.Run("build reports failures but still returns the node", func(t *testing.T) {
		t.Parallel()
		tag, err := NewTag("pets").
			Description("first").
			Description("second").
			Build()

		require.Error(t, err)
		require.NotNil(t, tag)
		assert.Equal(t, "pets", tag.Name)
	})
}

func TestExtensions(t *testing.T) {
	t.Parallel()

	t.Run("accepts x- prefixed keys", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extension("x-audience", "internal").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "internal", info.Extensions["x-audience"])
	})

	t.Run("rejects unprefixed keys", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extension("audience", "internal").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		assert.NotContains(t, info.Extensions, "audience")
	})

	t.Run("rejects reserved prefixes", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"x-oai-custom", "x-oas-custom"} {
			_, err := NewInfo("API", "1.0.0").Extension(key, true).Build()
			assert.ErrorIs(t, err, oasbuild.ErrValue, "key %q", key)
		}
	})

	t.Run("rejects duplicate keys", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extension("x-audience", "internal").
			Extension("x-audience", "public").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Equal(t, "internal", info.Extensions["x-audience"])
	})

	t.Run("bulk add applies valid keys and reports invalid ones", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extensions(map[string]any{
				"x-a":     1,
				"invalid": 2,
				"x-b":     3,
			}).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		assert.Equal(t, 1, info.Extensions["x-a"])
		assert.Equal(t, 3, info.Extensions["x-b"])
		assert.NotContains(t, info.Extensions, "invalid")
	})
}

func TestServerBuilder(t *testing.T) {
	t.Parallel()

	t.Run("template URLs are accepted verbatim", func(t *testing.T) {
		t.Parallel()
		server, err := NewServer("https://{host}/v1").Build()
		require.NoError(t, err)
		assert.Equal(t, "https://{host}/v1", server.URL)
	})

	t.Run("variables are keyed uniquely", func(t *testing.T) {
		t.Parallel()
		host, err := NewServerVariable("api.example.com").Build()
		require.NoError(t, err)

		server, err := NewServer("https://{host}/v1").
			AddVariable("host", host).
			AddVariable("host", host).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, server.Variables, 1)
	})
}

func TestServerVariableBuilder(t *testing.T) {
	t.Parallel()

	t.Run("enum must not be empty when present", func(t *testing.T) {
		t.Parallel()
		_, err := NewServerVariable("v1").Enum().Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("enum set once", func(t *testing.T) {
		t.Parallel()
		variable, err := NewServerVariable("v1").
			Enum("v1", "v2").
			Enum("v3").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Equal(t, []string{"v1", "v2"}, variable.Enum)
	})
}

func TestParameterBuilder(t *testing.T) {
	t.Parallel()

	t.Run("unknown location fails immediately", func(t *testing.T) {
		t.Parallel()
		_, err := NewParameter("id", ParameterLocation("body")).Build()
		require.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("schema and content are mutually exclusive in both orders", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().Type("string").Build()
		require.NoError(t, err)
		media, err := NewMediaType().Build()
		require.NoError(t, err)

		_, err = NewParameter("id", InQuery).
			Schema(schema).
			AddContent("application/json", media).
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrExclusive)

		_, err = NewParameter("id", InQuery).
			AddContent("application/json", media).
			Schema(schema).
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrExclusive)
	})

	t.Run("singular example excludes named examples", func(t *testing.T) {
		t.Parallel()
		example, err := NewExample().Value(42).Build()
		require.NoError(t, err)

		_, err = NewParameter("id", InQuery).
			Example(7).
			AddExample("sample", example).
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrExclusive)
	})
}

func TestExampleBuilder(t *testing.T) {
	t.Parallel()

	t.Run("value and externalValue are mutually exclusive", func(t *testing.T) {
		t.Parallel()
		_, err := NewExample().
			Value(map[string]any{"id": 1}).
			ExternalValue("https://example.com/sample.json").
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrExclusive)

		_, err = NewExample().
			ExternalValue("https://example.com/sample.json").
			Value(1).
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrExclusive)
	})

	t.Run("externalValue must be a URL", func(t *testing.T) {
		t.Parallel()
		_, err := NewExample().ExternalValue("not a url").Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})
}

func TestLinkBuilder(t *testing.T) {
	t.Parallel()

	_, err := NewLink().
		OperationRef("#/paths/~1widgets/get").
		OperationID("listWidgets").
		Build()
	assert.ErrorIs(t, err, oasbuild.ErrExclusive)

	_, err = NewLink().
		OperationID("listWidgets").
		OperationRef("#/paths/~1widgets/get").
		Build()

	var excl *oasbuild.ExclusiveError
	require.ErrorAs(t, err, &excl)
	assert.Equal(t, "operationRef", excl.Field)
	assert.Equal(t, "operationId", excl.Other)
}

func TestSecuritySchemeBuilder(t *testing.T) {
	t.Parallel()

	t.Run("unknown type fails immediately", func(t *testing.T) {
		t.Parallel()
		_, err := NewSecurityScheme(SecuritySchemeType("basic")).Build()
		require.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("openIdConnectUrl must be a URL", func(t *testing.T) {
		t.Parallel()
		_, err := NewSecurityScheme(TypeOpenIDConnect).
			OpenIDConnectURL("nope").
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("mutualTLS is accepted", func(t *testing.T) {
		t.Parallel()
		scheme, err := NewSecurityScheme(TypeMutualTLS).Build()
		require.NoError(t, err)
		assert.Equal(t, TypeMutualTLS, scheme.Type)
	})
}

func TestSecurityRequirementBuilder(t *testing.T) {
	t.Parallel()

	t.Run("nil scopes become an empty list", func(t *testing.T) {
		t.Parallel()
		req, err := NewSecurityRequirement().Scheme("api_key").Build()
		require.NoError(t, err)
		require.Contains(t, req, "api_key")
		assert.Equal(t, []string{}, req["api_key"])
	})

	t.Run("duplicate scheme names rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewSecurityRequirement().
			Scheme("oauth", "read").
			Scheme("oauth", "write").
			Build()
		assert.ErrorIs(t, err, oasbuild.ErrDuplicate)
	})
}

func TestOAuthFlowBuilder(t *testing.T) {
	t.Parallel()

	flow, err := NewOAuthFlow().
		AuthorizationURL("https://auth.example.com/authorize").
		TokenURL("https://auth.example.com/token").
		AddScope("read:pets", "read your pets").
		AddScope("read:pets", "again").
		Build()

	require.ErrorIs(t, err, oasbuild.ErrDuplicate)
	assert.Equal(t, "read your pets", flow.Scopes["read:pets"])

	_, err = NewOAuthFlow().AuthorizationURL("not a url").Build()
	assert.True(t, errors.Is(err, oasbuild.ErrValue))
}
