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

// JSON marshaling with specification-extension inlining. Every node that
// carries an extension bag aliases itself to strip the method set before
// delegating to encode.WithExtensions; see that function for why the alias
// is required. YAML output needs no counterpart here because the extension
// bags are tagged yaml:",inline".

package openapi30

import (
	"encoding/json"
	"maps"

	"rivaas.dev/oasbuild/internal/encode"
)

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	type document Document
	return encode.WithExtensions(document(*d), d.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (i *Info) MarshalJSON() ([]byte, error) {
	type info Info
	return encode.WithExtensions(info(*i), i.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (c *Contact) MarshalJSON() ([]byte, error) {
	type contact Contact
	return encode.WithExtensions(contact(*c), c.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (l *License) MarshalJSON() ([]byte, error) {
	type license License
	return encode.WithExtensions(license(*l), l.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (s *Server) MarshalJSON() ([]byte, error) {
	type server Server
	return encode.WithExtensions(server(*s), s.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (v *ServerVariable) MarshalJSON() ([]byte, error) {
	type serverVariable ServerVariable
	return encode.WithExtensions(serverVariable(*v), v.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (t *Tag) MarshalJSON() ([]byte, error) {
	type tag Tag
	return encode.WithExtensions(tag(*t), t.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (d *ExternalDocs) MarshalJSON() ([]byte, error) {
	type externalDocs ExternalDocs
	return encode.WithExtensions(externalDocs(*d), d.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type pathItem PathItem
	return encode.WithExtensions(pathItem(*p), p.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type operation Operation
	return encode.WithExtensions(operation(*o), o.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type parameter Parameter
	return encode.WithExtensions(parameter(*p), p.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (h *Header) MarshalJSON() ([]byte, error) {
	type header Header
	return encode.WithExtensions(header(*h), h.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (r *RequestBody) MarshalJSON() ([]byte, error) {
	type requestBody RequestBody
	return encode.WithExtensions(requestBody(*r), r.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (m *MediaType) MarshalJSON() ([]byte, error) {
	type mediaType MediaType
	return encode.WithExtensions(mediaType(*m), m.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (e *Encoding) MarshalJSON() ([]byte, error) {
	type encoding Encoding
	return encode.WithExtensions(encoding(*e), e.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (e *Example) MarshalJSON() ([]byte, error) {
	type example Example
	return encode.WithExtensions(example(*e), e.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (r *Response) MarshalJSON() ([]byte, error) {
	type response Response
	return encode.WithExtensions(response(*r), r.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (l *Link) MarshalJSON() ([]byte, error) {
	type link Link
	return encode.WithExtensions(link(*l), l.Extensions)
}

// MarshalJSON implements json.Marshaler. A callback serializes as one
// object holding its runtime expressions alongside any extensions.
func (c *Callback) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(c.Expressions)+len(c.Extensions))
	for k, v := range c.Expressions {
		m[k] = v
	}
	maps.Copy(m, c.Extensions)
	return json.Marshal(m)
}

// MarshalYAML implements yaml.Marshaler; see MarshalJSON.
func (c *Callback) MarshalYAML() (any, error) {
	m := make(map[string]any, len(c.Expressions)+len(c.Extensions))
	for k, v := range c.Expressions {
		m[k] = v
	}
	maps.Copy(m, c.Extensions)
	return m, nil
}

// MarshalJSON implements json.Marshaler.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	type securityScheme SecurityScheme
	return encode.WithExtensions(securityScheme(*s), s.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (f *OAuthFlows) MarshalJSON() ([]byte, error) {
	type oauthFlows OAuthFlows
	return encode.WithExtensions(oauthFlows(*f), f.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (f *OAuthFlow) MarshalJSON() ([]byte, error) {
	type oauthFlow OAuthFlow
	return encode.WithExtensions(oauthFlow(*f), f.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type schema Schema
	return encode.WithExtensions(schema(*s), s.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (d *Discriminator) MarshalJSON() ([]byte, error) {
	type discriminator Discriminator
	return encode.WithExtensions(discriminator(*d), d.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (x *XML) MarshalJSON() ([]byte, error) {
	type xml XML
	return encode.WithExtensions(xml(*x), x.Extensions)
}

// MarshalJSON implements json.Marshaler.
func (c *Components) MarshalJSON() ([]byte, error) {
	type components Components
	return encode.WithExtensions(components(*c), c.Extensions)
}
