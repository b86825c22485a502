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

func TestSchemaBuilder(t *testing.T) {
	t.Parallel()

	t.Run("enum must not be empty", func(t *testing.T) {
		t.Parallel()
		_, err := NewSchema().Enum().Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})

	t.Run("required names deduplicate", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().
			Type("object").
			AddRequired("name").
			AddRequired("name").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Equal(t, []string{"name"}, schema.Required)
	})

	t.Run("properties are keyed uniquely", func(t *testing.T) {
		t.Parallel()
		name, err := NewSchema().Type("string").Build()
		require.NoError(t, err)

		schema, err := NewSchema().
			Type("object").
			AddProperty("name", name).
			AddProperty("name", name).
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		assert.Len(t, schema.Properties, 1)
	})

	t.Run("composition lists never deduplicate", func(t *testing.T) {
		t.Parallel()
		sub, err := NewSchema().Ref("#/components/schemas/Base").Build()
		require.NoError(t, err)

		schema, err := NewSchema().
			AddAllOf(sub).
			AddAllOf(sub).
			AddAnyOf(sub).
			AddAnyOf(sub).
			Build()

		require.NoError(t, err)
		assert.Len(t, schema.AllOf, 2)
		assert.Len(t, schema.AnyOf, 2)
	})

	t.Run("numeric bounds are independent keywords", func(t *testing.T) {
		t.Parallel()
		schema, err := NewSchema().
			Type("number").
			Minimum(0).
			ExclusiveMaximum(100).
			Build()

		require.NoError(t, err)
		require.NotNil(t, schema.Minimum)
		assert.Equal(t, float64(0), *schema.Minimum)
		require.NotNil(t, schema.ExclusiveMaximum)
		assert.Equal(t, float64(100), *schema.ExclusiveMaximum)
		assert.Nil(t, schema.Maximum)
	})

	t.Run("dialect and id must be URLs", func(t *testing.T) {
		t.Parallel()
		_, err := NewSchema().Dialect("nope").Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)

		_, err = NewSchema().ID("also nope").Build()
		assert.ErrorIs(t, err, oasbuild.ErrValue)
	})
}

func TestDiscriminatorBuilder(t *testing.T) {
	t.Parallel()

	disc, err := NewDiscriminator("petType").
		AddMapping("dog", "#/components/schemas/Dog").
		AddMapping("dog", "#/components/schemas/OtherDog").
		Build()

	require.ErrorIs(t, err, oasbuild.ErrDuplicate)
	assert.Equal(t, "petType", disc.PropertyName)
	assert.Equal(t, "#/components/schemas/Dog", disc.Mapping["dog"])
}
