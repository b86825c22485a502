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

import "rivaas.dev/oasbuild/internal/check"

// TagBuilder accumulates a Tag node.
type TagBuilder struct {
	draft Tag
	errlist
}

// NewTag creates a Tag builder with the required tag name.
func NewTag(name string) *TagBuilder {
	return &TagBuilder{draft: Tag{Name: name}}
}

// Description sets documentation for the tag.
func (b *TagBuilder) Description(description string) *TagBuilder {
	if b.record(check.SetOnce("Tag", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// ExternalDocs sets additional external documentation for this tag.
func (b *TagBuilder) ExternalDocs(docs *ExternalDocs) *TagBuilder {
	if b.record(check.SetOnce("Tag", "externalDocs", b.draft.ExternalDocs)) {
		return b
	}
	b.draft.ExternalDocs = docs
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *TagBuilder) Extension(key string, value any) *TagBuilder {
	addExtension(&b.errlist, "Tag", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *TagBuilder) Build() (*Tag, error) {
	tag := b.draft
	return &tag, b.Err()
}

// ExternalDocsBuilder accumulates an ExternalDocs node.
type ExternalDocsBuilder struct {
	draft ExternalDocs
	errlist
}

// NewExternalDocs creates an ExternalDocs builder with the required URL.
// A malformed URL is recorded as a failure immediately.
func NewExternalDocs(url string) *ExternalDocsBuilder {
	b := &ExternalDocsBuilder{draft: ExternalDocs{URL: url}}
	b.record(check.URL("ExternalDocs", "url", url))
	return b
}

// Description sets a description of the target documentation.
func (b *ExternalDocsBuilder) Description(description string) *ExternalDocsBuilder {
	if b.record(check.SetOnce("ExternalDocs", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ExternalDocsBuilder) Extension(key string, value any) *ExternalDocsBuilder {
	addExtension(&b.errlist, "ExternalDocs", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ExternalDocsBuilder) Build() (*ExternalDocs, error) {
	docs := b.draft
	return &docs, b.Err()
}
