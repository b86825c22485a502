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
	"rivaas.dev/oasbuild"
	"rivaas.dev/oasbuild/internal/check"
)

// DocumentBuilder accumulates the root document. The openapi field is
// fixed to "3.0.4" and cannot be changed.
type DocumentBuilder struct {
	draft Document
	errlist
}

// NewDocument creates a document builder with the required info block.
func NewDocument(info *Info) *DocumentBuilder {
	return &DocumentBuilder{draft: Document{
		OpenAPI: string(oasbuild.Version30),
		Info:    info,
	}}
}

// AddServer appends a server. A server structurally equal to one already
// listed is rejected; order is preserved.
func (b *DocumentBuilder) AddServer(server *Server) *DocumentBuilder {
	if b.record(check.NoDuplicate("Document", "servers", b.draft.Servers, server)) {
		return b
	}
	b.draft.Servers = append(b.draft.Servers, server)
	return b
}

// AddPath adds a path item under its pattern. The pattern must begin
// with "/" and use balanced, non-repeating template parameters; each
// pattern appears at most once.
func (b *DocumentBuilder) AddPath(pattern string, item *PathItem) *DocumentBuilder {
	if b.record(check.PathKey("Document", pattern)) {
		return b
	}
	if b.record(check.UniqueKey("Document", "paths", b.draft.Paths, pattern)) {
		return b
	}
	if b.draft.Paths == nil {
		b.draft.Paths = map[string]*PathItem{}
	}
	b.draft.Paths[pattern] = item
	return b
}

// Components sets the reusable-object registry.
func (b *DocumentBuilder) Components(components *Components) *DocumentBuilder {
	if b.record(check.SetOnce("Document", "components", b.draft.Components)) {
		return b
	}
	b.draft.Components = components
	return b
}

// AddSecurity appends a global security requirement. A requirement equal
// to one already listed is rejected.
func (b *DocumentBuilder) AddSecurity(requirement SecurityRequirement) *DocumentBuilder {
	if b.record(check.NoDuplicate("Document", "security", b.draft.Security, requirement)) {
		return b
	}
	b.draft.Security = append(b.draft.Security, requirement)
	return b
}

// AddTag appends tag metadata. A tag structurally equal to one already
// listed is rejected; order is preserved.
func (b *DocumentBuilder) AddTag(tag *Tag) *DocumentBuilder {
	if b.record(check.NoDuplicate("Document", "tags", b.draft.Tags, tag)) {
		return b
	}
	b.draft.Tags = append(b.draft.Tags, tag)
	return b
}

// ExternalDocs sets external documentation for the API.
func (b *DocumentBuilder) ExternalDocs(docs *ExternalDocs) *DocumentBuilder {
	if b.record(check.SetOnce("Document", "externalDocs", b.draft.ExternalDocs)) {
		return b
	}
	b.draft.ExternalDocs = docs
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *DocumentBuilder) Extension(key string, value any) *DocumentBuilder {
	addExtension(&b.errlist, "Document", &b.draft.Extensions, key, value)
	return b
}

// Extensions adds several specification extensions in sorted key order.
func (b *DocumentBuilder) Extensions(extensions map[string]any) *DocumentBuilder {
	addExtensions(&b.errlist, "Document", &b.draft.Extensions, extensions)
	return b
}

// Build returns the accumulated document and any recorded failures. The
// document is returned even when failures were recorded: every setter
// that succeeded remains applied.
func (b *DocumentBuilder) Build() (*Document, error) {
	doc := b.draft
	return &doc, b.Err()
}
