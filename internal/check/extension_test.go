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

func TestExtensionKey(t *testing.T) {
	t.Parallel()

	t.Run("accepts x- prefixed key", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ExtensionKey("Info", "x-internal-id", false))
		assert.NoError(t, ExtensionKey("Info", "x-internal-id", true))
	})

	t.Run("rejects key without prefix", func(t *testing.T) {
		t.Parallel()
		err := ExtensionKey("Info", "internal-id", false)

		require.ErrorIs(t, err, oasbuild.ErrValue)

		var val *oasbuild.ValueError
		require.ErrorAs(t, err, &val)
		assert.Equal(t, "extensions", val.Field)
		assert.Equal(t, "internal-id", val.Value)
		assert.Equal(t, "extension key must start with 'x-'", val.Reason)
	})

	t.Run("reserved prefixes rejected only when flagged", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ExtensionKey("Info", "x-oai-custom", false))
		assert.NoError(t, ExtensionKey("Info", "x-oas-custom", false))

		assert.ErrorIs(t, ExtensionKey("Info", "x-oai-custom", true), oasbuild.ErrValue)
		assert.ErrorIs(t, ExtensionKey("Info", "x-oas-custom", true), oasbuild.ErrValue)
	})
}

func TestComponentKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"Pet", "pet_model", "Pet.v2", "pet-response", "200"} {
		t.Run("accepts "+key, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, ComponentKey("Components", "schemas", key))
		})
	}

	for _, key := range []string{"", "pet model", "pet/model", "päts"} {
		t.Run("rejects "+key, func(t *testing.T) {
			t.Parallel()
			err := ComponentKey("Components", "schemas", key)

			require.ErrorIs(t, err, oasbuild.ErrValue)

			var val *oasbuild.ValueError
			require.ErrorAs(t, err, &val)
			assert.Equal(t, "schemas", val.Field)
			assert.Equal(t, key, val.Value)
		})
	}
}
