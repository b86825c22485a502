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

// ParameterBuilder accumulates a Parameter node. Schema and Content are
// mutually exclusive, as are Example and Examples.
type ParameterBuilder struct {
	draft Parameter
	errlist
}

// NewParameter creates a Parameter builder with the required name and
// location. An unknown location is recorded as a failure immediately.
func NewParameter(name string, in ParameterLocation) *ParameterBuilder {
	b := &ParameterBuilder{draft: Parameter{Name: name, In: in}}
	switch in {
	case InQuery, InPath, InHeader, InCookie:
	default:
		b.record(&oasbuild.ValueError{
			Node:   "Parameter",
			Field:  "in",
			Value:  string(in),
			Reason: "must be one of query, path, header, cookie",
		})
	}
	return b
}

// Description sets documentation for the parameter.
func (b *ParameterBuilder) Description(description string) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Required marks whether the parameter must be supplied. Path parameters
// are required by the wire format.
func (b *ParameterBuilder) Required(required bool) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "required", b.draft.Required)) {
		return b
	}
	b.draft.Required = &required
	return b
}

// Deprecated marks the parameter as deprecated.
func (b *ParameterBuilder) Deprecated(deprecated bool) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "deprecated", b.draft.Deprecated)) {
		return b
	}
	b.draft.Deprecated = &deprecated
	return b
}

// AllowEmptyValue allows a zero-length value for query parameters.
func (b *ParameterBuilder) AllowEmptyValue(allow bool) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "allowEmptyValue", b.draft.AllowEmptyValue)) {
		return b
	}
	b.draft.AllowEmptyValue = &allow
	return b
}

// Style sets the serialization style for the parameter value.
func (b *ParameterBuilder) Style(style string) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "style", b.draft.Style)) {
		return b
	}
	b.draft.Style = &style
	return b
}

// Explode sets whether arrays and objects generate separate parameters.
func (b *ParameterBuilder) Explode(explode bool) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "explode", b.draft.Explode)) {
		return b
	}
	b.draft.Explode = &explode
	return b
}

// AllowReserved allows RFC 6570 reserved characters in query values.
func (b *ParameterBuilder) AllowReserved(allow bool) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "allowReserved", b.draft.AllowReserved)) {
		return b
	}
	b.draft.AllowReserved = &allow
	return b
}

// Schema sets the parameter schema. Mutually exclusive with Content.
func (b *ParameterBuilder) Schema(schema *Schema) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "schema", b.draft.Schema)) {
		return b
	}
	if b.record(check.ExclusiveMap("Parameter", "schema", "content", b.draft.Content)) {
		return b
	}
	b.draft.Schema = schema
	return b
}

// Example sets a single example value. Mutually exclusive with Examples.
func (b *ParameterBuilder) Example(example any) *ParameterBuilder {
	if b.record(check.SetOnce("Parameter", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.ExclusiveMap("Parameter", "example", "examples", b.draft.Examples)) {
		return b
	}
	b.draft.Example = &example
	return b
}

// AddExample adds a named example. Mutually exclusive with Example.
func (b *ParameterBuilder) AddExample(name string, example *Example) *ParameterBuilder {
	return b.addExample(name, &ExampleRef{Value: example})
}

// AddExampleRef adds a named example reference. Mutually exclusive with
// Example.
func (b *ParameterBuilder) AddExampleRef(name string, ref *Reference) *ParameterBuilder {
	return b.addExample(name, &ExampleRef{Ref: ref})
}

func (b *ParameterBuilder) addExample(name string, ref *ExampleRef) *ParameterBuilder {
	if b.record(check.Exclusive("Parameter", "examples", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.UniqueKey("Parameter", "examples", b.draft.Examples, name)) {
		return b
	}
	if b.draft.Examples == nil {
		b.draft.Examples = make(map[string]*ExampleRef)
	}
	b.draft.Examples[name] = ref
	return b
}

// AddContent adds a media type keyed by content type (e.g.
// "application/json"). Mutually exclusive with Schema; for parameters the
// map must contain exactly one entry.
func (b *ParameterBuilder) AddContent(contentType string, media *MediaType) *ParameterBuilder {
	if b.record(check.Exclusive("Parameter", "content", "schema", b.draft.Schema)) {
		return b
	}
	if b.record(check.UniqueKey("Parameter", "content", b.draft.Content, contentType)) {
		return b
	}
	if b.draft.Content == nil {
		b.draft.Content = make(map[string]*MediaType)
	}
	b.draft.Content[contentType] = media
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ParameterBuilder) Extension(key string, value any) *ParameterBuilder {
	addExtension(&b.errlist, "Parameter", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ParameterBuilder) Build() (*Parameter, error) {
	parameter := b.draft
	return &parameter, b.Err()
}

// HeaderBuilder accumulates a Header node. Headers follow the parameter
// structure without name and location; the same exclusivity pairs apply.
type HeaderBuilder struct {
	draft Header
	errlist
}

// NewHeader creates an empty Header builder; every field is optional.
func NewHeader() *HeaderBuilder {
	return &HeaderBuilder{}
}

// Description sets documentation for the header.
func (b *HeaderBuilder) Description(description string) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Required marks whether the header is mandatory.
func (b *HeaderBuilder) Required(required bool) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "required", b.draft.Required)) {
		return b
	}
	b.draft.Required = &required
	return b
}

// Deprecated marks the header as deprecated.
func (b *HeaderBuilder) Deprecated(deprecated bool) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "deprecated", b.draft.Deprecated)) {
		return b
	}
	b.draft.Deprecated = &deprecated
	return b
}

// Style sets the serialization style. For headers the only valid value is
// "simple".
func (b *HeaderBuilder) Style(style string) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "style", b.draft.Style)) {
		return b
	}
	b.draft.Style = &style
	return b
}

// Explode sets whether arrays and objects generate comma-separated values.
func (b *HeaderBuilder) Explode(explode bool) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "explode", b.draft.Explode)) {
		return b
	}
	b.draft.Explode = &explode
	return b
}

// Schema sets the header value schema. Mutually exclusive with Content.
func (b *HeaderBuilder) Schema(schema *Schema) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "schema", b.draft.Schema)) {
		return b
	}
	if b.record(check.ExclusiveMap("Header", "schema", "content", b.draft.Content)) {
		return b
	}
	b.draft.Schema = schema
	return b
}

// Example sets a single example value. Mutually exclusive with Examples.
func (b *HeaderBuilder) Example(example any) *HeaderBuilder {
	if b.record(check.SetOnce("Header", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.ExclusiveMap("Header", "example", "examples", b.draft.Examples)) {
		return b
	}
	b.draft.Example = &example
	return b
}

// AddExample adds a named example. Mutually exclusive with Example.
func (b *HeaderBuilder) AddExample(name string, example *Example) *HeaderBuilder {
	return b.addExample(name, &ExampleRef{Value: example})
}

// AddExampleRef adds a named example reference. Mutually exclusive with
// Example.
func (b *HeaderBuilder) AddExampleRef(name string, ref *Reference) *HeaderBuilder {
	return b.addExample(name, &ExampleRef{Ref: ref})
}

func (b *HeaderBuilder) addExample(name string, ref *ExampleRef) *HeaderBuilder {
	if b.record(check.Exclusive("Header", "examples", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.UniqueKey("Header", "examples", b.draft.Examples, name)) {
		return b
	}
	if b.draft.Examples == nil {
		b.draft.Examples = make(map[string]*ExampleRef)
	}
	b.draft.Examples[name] = ref
	return b
}

// AddContent adds a media type keyed by content type. Mutually exclusive
// with Schema.
func (b *HeaderBuilder) AddContent(contentType string, media *MediaType) *HeaderBuilder {
	if b.record(check.Exclusive("Header", "content", "schema", b.draft.Schema)) {
		return b
	}
	if b.record(check.UniqueKey("Header", "content", b.draft.Content, contentType)) {
		return b
	}
	if b.draft.Content == nil {
		b.draft.Content = make(map[string]*MediaType)
	}
	b.draft.Content[contentType] = media
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *HeaderBuilder) Extension(key string, value any) *HeaderBuilder {
	addExtension(&b.errlist, "Header", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *HeaderBuilder) Build() (*Header, error) {
	header := b.draft
	return &header, b.Err()
}
