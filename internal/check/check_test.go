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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/oasbuild"
)

type equalerInt int

func (e equalerInt) Equals(other equalerInt) bool { return e == other }

func TestSetOnce(t *testing.T) {
	t.Parallel()

	t.Run("nil field passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, SetOnce[string]("Info", "description", nil))
	})

	t.Run("populated field fails with Duplicate", func(t *testing.T) {
		t.Parallel()
		existing := "already here"
		err := SetOnce("Info", "description", &existing)

		require.Error(t, err)
		assert.ErrorIs(t, err, oasbuild.ErrDuplicate)

		var dup *oasbuild.DuplicateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "Info", dup.Node)
		assert.Equal(t, "description", dup.Field)
		assert.Equal(t, "already here", dup.Existing)
	})

	t.Run("slice variant treats non-nil as set", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, SetOnceSlice[string]("ServerVariable", "enum", nil))
		assert.ErrorIs(t, SetOnceSlice("ServerVariable", "enum", []string{"a"}), oasbuild.ErrDuplicate)
		// An empty but assigned slice still counts as set.
		assert.ErrorIs(t, SetOnceSlice("ServerVariable", "enum", []string{}), oasbuild.ErrDuplicate)
	})

	t.Run("map variant treats non-nil as set", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, SetOnceMap[string, int]("Parameter", "content", nil))
		assert.ErrorIs(t, SetOnceMap("Parameter", "content", map[string]int{}), oasbuild.ErrDuplicate)
	})
}

func TestExclusive(t *testing.T) {
	t.Parallel()

	t.Run("absent counterpart passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Exclusive[string]("License", "url", "identifier", nil))
	})

	t.Run("populated counterpart fails citing the other field", func(t *testing.T) {
		t.Parallel()
		identifier := "Apache-2.0"
		err := Exclusive("License", "url", "identifier", &identifier)

		require.ErrorIs(t, err, oasbuild.ErrExclusive)

		var excl *oasbuild.ExclusiveError
		require.ErrorAs(t, err, &excl)
		assert.Equal(t, "License", excl.Node)
		assert.Equal(t, "url", excl.Field)
		assert.Equal(t, "identifier", excl.Other)
		assert.Equal(t, "Apache-2.0", excl.Existing)
	})

	t.Run("map counterpart counts as populated once it has entries", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ExclusiveMap[string, int]("Parameter", "schema", "content", nil))
		assert.NoError(t, ExclusiveMap("Parameter", "schema", "content", map[string]int{}))
		assert.ErrorIs(t,
			ExclusiveMap("Parameter", "schema", "content", map[string]int{"application/json": 1}),
			oasbuild.ErrExclusive)
	})
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NonEmpty("ServerVariable", "enum", []string{"a"}))

	err := NonEmpty[string]("ServerVariable", "enum", nil)
	require.ErrorIs(t, err, oasbuild.ErrValue)

	var val *oasbuild.ValueError
	require.ErrorAs(t, err, &val)
	assert.Equal(t, "ServerVariable", val.Node)
	assert.Equal(t, "enum", val.Field)
}

func TestUniqueKey(t *testing.T) {
	t.Parallel()

	t.Run("nil map has no keys", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, UniqueKey[int]("Server", "variables", nil, "host"))
	})

	t.Run("new key passes", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, UniqueKey("Server", "variables", map[string]int{"port": 1}, "host"))
	})

	t.Run("existing key fails with Duplicate carrying the key", func(t *testing.T) {
		t.Parallel()
		err := UniqueKey("Server", "variables", map[string]int{"host": 1}, "host")

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)

		var dup *oasbuild.DuplicateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "host", dup.Key)
		assert.Equal(t, 1, dup.Existing)
	})
}

func TestNoDuplicate(t *testing.T) {
	t.Parallel()

	t.Run("equaler-based", func(t *testing.T) {
		t.Parallel()
		list := []equalerInt{1, 2, 3}
		assert.NoError(t, NoDuplicate("Document", "servers", list, equalerInt(4)))
		assert.ErrorIs(t, NoDuplicate("Document", "servers", list, equalerInt(2)), oasbuild.ErrDuplicate)
	})

	t.Run("comparable-based", func(t *testing.T) {
		t.Parallel()
		list := []string{"users", "admin"}
		assert.NoError(t, NoDuplicateComparable("Operation", "tags", list, "widgets"))
		assert.ErrorIs(t, NoDuplicateComparable("Operation", "tags", list, "admin"), oasbuild.ErrDuplicate)
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts well-formed URL", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, URL("Contact", "url", "https://example.com/x"))
	})

	t.Run("rejects free text", func(t *testing.T) {
		t.Parallel()
		err := URL("Contact", "url", "not a URL")

		require.ErrorIs(t, err, oasbuild.ErrValue)

		var val *oasbuild.ValueError
		require.ErrorAs(t, err, &val)
		assert.Equal(t, "not a URL", val.Value)
		assert.NotNil(t, val.Cause)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, URL("Contact", "url", ""), oasbuild.ErrValue)
	})
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	t.Parallel()

	existing := "x"
	dup := SetOnce("Info", "title", &existing)
	excl := Exclusive("License", "url", "identifier", &existing)
	val := URL("Contact", "url", "nope")

	assert.False(t, errors.Is(dup, oasbuild.ErrExclusive))
	assert.False(t, errors.Is(dup, oasbuild.ErrValue))
	assert.False(t, errors.Is(excl, oasbuild.ErrDuplicate))
	assert.False(t, errors.Is(val, oasbuild.ErrDuplicate))
}
