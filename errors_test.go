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

package oasbuild

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateError(t *testing.T) {
	t.Parallel()

	t.Run("set-once message", func(t *testing.T) {
		t.Parallel()
		err := &DuplicateError{Node: "Info", Field: "description", Existing: "old"}
		assert.Equal(t, "oasbuild: Info.description already set", err.Error())
	})

	t.Run("keyed message names the key", func(t *testing.T) {
		t.Parallel()
		err := &DuplicateError{Node: "Components", Field: "schemas", Key: "Pet", Existing: nil}
		assert.Equal(t, `oasbuild: Components.schemas already contains key "Pet"`, err.Error())
	})

	t.Run("matches only its sentinel", func(t *testing.T) {
		t.Parallel()
		var err error = &DuplicateError{Node: "Info", Field: "title"}
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NotErrorIs(t, err, ErrExclusive)
		assert.NotErrorIs(t, err, ErrValue)
	})
}

func TestExclusiveError(t *testing.T) {
	t.Parallel()

	err := &ExclusiveError{Node: "License", Field: "url", Other: "identifier", Existing: "Apache-2.0"}
	assert.Equal(t,
		`oasbuild: License.url cannot be set: mutually exclusive field "identifier" already set`,
		err.Error())

	assert.ErrorIs(t, err, ErrExclusive)
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrValue)
}

func TestValueError(t *testing.T) {
	t.Parallel()

	t.Run("message includes value when present", func(t *testing.T) {
		t.Parallel()
		err := &ValueError{Node: "Contact", Field: "url", Value: "nope", Reason: "must be a valid URL"}
		assert.Equal(t, "oasbuild: Contact.url: nope: must be a valid URL", err.Error())
	})

	t.Run("message without value", func(t *testing.T) {
		t.Parallel()
		err := &ValueError{Node: "ServerVariable", Field: "enum", Reason: "must not be empty"}
		assert.Equal(t, "oasbuild: ServerVariable.enum: must not be empty", err.Error())
	})

	t.Run("unwraps its cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("underlying")
		err := &ValueError{Node: "Contact", Field: "url", Cause: cause}

		require.ErrorIs(t, err, ErrValue)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})
}

func TestErrorsJoinPreservesKinds(t *testing.T) {
	t.Parallel()

	joined := errors.Join(
		&DuplicateError{Node: "Info", Field: "title"},
		&ValueError{Node: "Contact", Field: "url", Reason: "must be a valid URL"},
	)

	assert.ErrorIs(t, joined, ErrDuplicate)
	assert.ErrorIs(t, joined, ErrValue)
	assert.NotErrorIs(t, joined, ErrExclusive)
}
