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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	info, err := NewInfo("API", "1.0.0").Build()
	require.NoError(t, err)

	out, err := json.Marshal(info)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"API","version":"1.0.0"}`, string(out))
	assert.NotContains(t, string(out), "null")
}

func TestMarshalInlinesExtensions(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extension("x-audience", "internal").
			Build()
		require.NoError(t, err)

		out, err := json.Marshal(info)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, "internal", decoded["x-audience"])
		assert.NotContains(t, decoded, "extensions")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("API", "1.0.0").
			Extension("x-audience", "internal").
			Build()
		require.NoError(t, err)

		out, err := yaml.Marshal(info)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, "internal", decoded["x-audience"])
	})
}

func TestMarshalRefUnions(t *testing.T) {
	t.Parallel()

	t.Run("reference arm renders only the reference", func(t *testing.T) {
		t.Parallel()
		ref := &ResponseRef{Ref: Ref("#/components/responses/NotFound")}

		out, err := json.Marshal(ref)
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref":"#/components/responses/NotFound"}`, string(out))
	})

	t.Run("value arm renders the node", func(t *testing.T) {
		t.Parallel()
		response, err := NewResponse("OK").Build()
		require.NoError(t, err)

		out, err := json.Marshal(&ResponseRef{Value: response})
		require.NoError(t, err)
		assert.JSONEq(t, `{"description":"OK"}`, string(out))
	})

	t.Run("reference summary and description survive", func(t *testing.T) {
		t.Parallel()
		reference, err := NewReference("#/components/schemas/Pet").
			Summary("a pet").
			Build()
		require.NoError(t, err)

		out, err := json.Marshal(reference)
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref":"#/components/schemas/Pet","summary":"a pet"}`, string(out))
	})
}

func TestMarshalCallback(t *testing.T) {
	t.Parallel()

	op, err := NewOperation().Build()
	require.NoError(t, err)
	item, err := NewPathItem().Post(op).Build()
	require.NoError(t, err)

	callback, err := NewCallback().
		AddExpression("{$request.body#/callbackUrl}", item).
		Extension("x-retry", 3).
		Build()
	require.NoError(t, err)

	out, err := json.Marshal(callback)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "{$request.body#/callbackUrl}")
	assert.Equal(t, float64(3), decoded["x-retry"])
}

func TestMarshalDocument(t *testing.T) {
	t.Parallel()

	info, err := NewInfo("API", "1.0.0").Build()
	require.NoError(t, err)

	ok, err := NewResponse("OK").Build()
	require.NoError(t, err)
	get, err := NewOperation().AddResponse("200", ok).Build()
	require.NoError(t, err)
	item, err := NewPathItem().Get(get).Build()
	require.NoError(t, err)

	doc, err := NewDocument(info).AddPath("/widgets", item).Build()
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded struct {
		OpenAPI string `json:"openapi"`
		Paths   map[string]struct {
			Get struct {
				Responses map[string]json.RawMessage `json:"responses"`
			} `json:"get"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "3.1.2", decoded.OpenAPI)
	require.Contains(t, decoded.Paths, "/widgets")
	assert.Contains(t, decoded.Paths["/widgets"].Get.Responses, "200")
}
