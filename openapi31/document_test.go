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
	"github.com/stretchr/testify/require"

	"rivaas.dev/oasbuild"
)

func mustInfo(t *testing.T) *Info {
	t.Helper()
	info, err := NewInfo("Widget API", "2.0.0").Build()
	require.NoError(t, err)
	return info
}

func TestDocumentBuilder(t *testing.T) {
	t.Parallel()

	t.Run("openapi field is fixed", func(t *testing.T) {
		t.Parallel()
		doc, err := NewDocument(mustInfo(t)).Build()
		require.NoError(t, err)
		assert.Equal(t, "3.1.2", doc.OpenAPI)
		assert.Equal(t, oasbuild.Version31, doc.OpenAPIVersion())
	})

	t.Run("path keys are validated then deduplicated", func(t *testing.T) {
		t.Parallel()
		item, err := NewPathItem().Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).
			AddPath("/widgets", item).
			AddPath("widgets", item).
			AddPath("/widgets", item).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, doc.Paths, 1)
		assert.Contains(t, doc.Paths, "/widgets")
	})

	t.Run("structurally equal servers are rejected", func(t *testing.T) {
		t.Parallel()
		a, err := NewServer("https://api.example.com").Description("prod").Build()
		require.NoError(t, err)
		b, err := NewServer("https://api.example.com").Description("prod").Build()
		require.NoError(t, err)
		c, err := NewServer("https://api.example.com").Description("staging").Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).
			AddServer(a).
			AddServer(b).
			AddServer(c).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, doc.Servers, 2)
	})

	t.Run("tags deduplicate by structural equality", func(t *testing.T) {
		t.Parallel()
		first, err := NewTag("pets").Build()
		require.NoError(t, err)
		second, err := NewTag("pets").Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).
			AddTag(first).
			AddTag(second).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, doc.Tags, 1)
	})

	t.Run("webhooks are keyed uniquely", func(t *testing.T) {
		t.Parallel()
		item, err := NewPathItem().Build()
		require.NoError(t, err)

		doc, err := NewDocument(mustInfo(t)).
			AddWebhook("newWidget", item).
			AddWebhookRef("newWidget", Ref("#/components/pathItems/newWidget")).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, doc.Webhooks, 1)
		assert.NotNil(t, doc.Webhooks["newWidget"].Value)
	})

	t.Run("jsonSchemaDialect must be a URL", func(t *testing.T) {
		t.Parallel()
		doc, err := NewDocument(mustInfo(t)).
			JSONSchemaDialect("https://json-schema.org/draft/2020-12/schema").
			Build()
		require.NoError(t, err)
		require.NotNil(t, doc.JSONSchemaDialect)

		_, err = NewDocument(mustInfo(t)).JSONSchemaDialect("nope").Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})
}

func TestComponentsBuilder(t *testing.T) {
	t.Parallel()

	t.Run("keys must match the component pattern", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().Type("object").Build()
		require.NoError(t, err)

		components, err := NewComponents().
			AddSchema("Pet", schema).
			AddSchema("bad key", schema).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		assert.Len(t, components.Schemas, 1)
	})

	t.Run("keys are unique per collection but reusable across collections", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().Type("object").Build()
		require.NoError(t, err)
		response, err := NewResponse("OK").Build()
		require.NoError(t, err)

		components, err := NewComponents().
			AddSchema("Pet", schema).
			AddResponse("Pet", response).
			AddSchema("Pet", schema).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, components.Schemas, 1)
		assert.Len(t, components.Responses, 1)
	})

	t.Run("value and reference entries share a namespace", func(t *testing.T) {
		t.Parallel()
		response, err := NewResponse("OK").Build()
		require.NoError(t, err)

		components, err := NewComponents().
			AddResponseRef("NotFound", Ref("#/components/responses/Missing")).
			AddResponse("NotFound", response).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		require.Len(t, components.Responses, 1)
		assert.NotNil(t, components.Responses["NotFound"].Ref)
	})
}

func TestOperationBuilder(t *testing.T) {
	t.Parallel()

	t.Run("tags deduplicate, parameters do not", func(t *testing.T) {
		t.Parallel()
		param, err := NewParameter("limit", InQuery).Build()
		require.NoError(t, err)

		op, err := NewOperation().
			AddTag("widgets").
			AddTag("widgets").
			AddParameter(param).
			AddParameter(param).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, op.Tags, 1)
		assert.Len(t, op.Parameters, 2)
	})

	t.Run("responses are keyed by status", func(t *testing.T) {
		t.Parallel()
		ok, err := NewResponse("OK").Build()
		require.NoError(t, err)
		created, err := NewResponse("Created").Build()
		require.NoError(t, err)

		op, err := NewOperation().
			AddResponse("200", ok).
			AddResponse("201", created).
			AddResponse("200", ok).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, op.Responses, 2)
	})
}

func TestPathItemBuilder(t *testing.T) {
	t.Parallel()

	op, err := NewOperation().Build()
	require.NoError(t, err)

	item, err := NewPathItem().
		Get(op).
		Get(op).
		Build()

	require.ErrorIs(t, err, oasbuild.ErrDuplicate)
	assert.NotNil(t, item.Get)
	assert.Nil(t, item.Post)
}
