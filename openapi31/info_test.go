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

func TestInfoBuilder(t *testing.T) {
	t.Parallel()

	t.Run("required fields land on the node", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("Pet Store", "1.0.0").Build()
		require.NoError(t, err)
		assert.Equal(t, "Pet Store", info.Title)
		assert.Equal(t, "1.0.0", info.Version)
		assert.Nil(t, info.Description)
	})

	t.Run("set-once fields reject a second assignment", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("Pet Store", "1.0.0").
			Description("first").
			Description("second").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrDuplicate)
		// The node keeps the first value.
		require.NotNil(t, info.Description)
		assert.Equal(t, "first", *info.Description)
	})

	t.Run("failed setter does not poison later independent setters", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("Pet Store", "1.0.0").
			TermsOfService("not a URL").
			Summary("A store for pets").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrValue)
		assert.Nil(t, info.TermsOfService)
		require.NotNil(t, info.Summary)
		assert.Equal(t, "A store for pets", *info.Summary)
	})

	t.Run("terms of service must be a URL", func(t *testing.T) {
		t.Parallel()
		info, err := NewInfo("Pet Store", "1.0.0").
			TermsOfService("https://example.com/terms").
			Build()
		require.NoError(t, err)
		require.NotNil(t, info.TermsOfService)
		assert.Equal(t, "https://example.com/terms", *info.TermsOfService)
	})
}

func TestContactBuilder(t *testing.T) {
	t.Parallel()

	t.Run("all fields optional", func(t *testing.T) {
		t.Parallel()
		contact, err := NewContact().Build()
		require.NoError(t, err)
		assert.Nil(t, contact.Name)
		assert.Nil(t, contact.URL)
		assert.Nil(t, contact.Email)
	})

	t.Run("url is checked, email and name are stored verbatim", func(t *testing.T) {
		t.Parallel()
		contact, err := NewContact().
			Name("API Support").
			URL("https://example.com/support").
			Email("support@example.com").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/support", *contact.URL)
		assert.Equal(t, "support@example.com", *contact.Email)
	})

	t.Run("malformed url rejected and not stored", func(t *testing.T) {
		t.Parallel()
		contact, err := NewContact().URL("definitely not").Build()
		require.ErrorIs(t, err, oasbuild.ErrValue)
		assert.Nil(t, contact.URL)
	})
}

func TestLicenseBuilder(t *testing.T) {
	t.Parallel()

	t.Run("identifier then url fails citing identifier", func(t *testing.T) {
		t.Parallel()
		license, err := NewLicense("Apache-2.0").
			Identifier("Apache-2.0").
			URL("https://www.apache.org/licenses/LICENSE-2.0").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrExclusive)

		var excl *oasbuild.ExclusiveError
		require.ErrorAs(t, err, &excl)
		assert.Equal(t, "License", excl.Node)
		assert.Equal(t, "url", excl.Field)
		assert.Equal(t, "identifier", excl.Other)

		require.NotNil(t, license.Identifier)
		assert.Equal(t, "Apache-2.0", *license.Identifier)
		assert.Nil(t, license.URL)
	})

	t.Run("url then identifier fails citing url", func(t *testing.T) {
		t.Parallel()
		license, err := NewLicense("Apache-2.0").
			URL("https://www.apache.org/licenses/LICENSE-2.0").
			Identifier("Apache-2.0").
			Build()

		require.ErrorIs(t, err, oasbuild.ErrExclusive)

		var excl *oasbuild.ExclusiveError
		require.ErrorAs(t, err, &excl)
		assert.Equal(t, "identifier", excl.Field)
		assert.Equal(t, "url", excl.Other)

		require.NotNil(t, license.URL)
		assert.Nil(t, license.Identifier)
	})

	t.Run("identifier alone is fine", func(t *testing.T) {
		t.Parallel()
		license, err := NewLicense("MIT").Identifier("MIT").Build()
		require.NoError(t, err)
		assert.Equal(t, "MIT", license.Name)
		assert.Equal(t, "MIT", *license.Identifier)
	})
}
