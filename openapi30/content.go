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

// MediaTypeBuilder accumulates a MediaType node. Example and Examples are
// mutually exclusive.
type MediaTypeBuilder struct {
	draft MediaType
	errlist
}

// NewMediaType creates an empty MediaType builder; every field is optional.
func NewMediaType() *MediaTypeBuilder {
	return &MediaTypeBuilder{}
}

// Schema sets the schema describing the content structure.
func (b *MediaTypeBuilder) Schema(schema *Schema) *MediaTypeBuilder {
	if b.record(check.SetOnce("MediaType", "schema", b.draft.Schema)) {
		return b
	}
	b.draft.Schema = schema
	return b
}

// Example sets a single example value. Mutually exclusive with Examples.
func (b *MediaTypeBuilder) Example(example any) *MediaTypeBuilder {
	if b.record(check.SetOnce("MediaType", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.ExclusiveMap("MediaType", "example", "examples", b.draft.Examples)) {
		return b
	}
	b.draft.Example = &example
	return b
}

// AddExample adds a named example. Mutually exclusive with Example.
func (b *MediaTypeBuilder) AddExample(name string, example *Example) *MediaTypeBuilder {
	return b.addExample(name, &ExampleRef{Value: example})
}

// AddExampleRef adds a named example reference. Mutually exclusive with
// Example.
func (b *MediaTypeBuilder) AddExampleRef(name string, ref *Reference) *MediaTypeBuilder {
	return b.addExample(name, &ExampleRef{Ref: ref})
}

func (b *MediaTypeBuilder) addExample(name string, ref *ExampleRef) *MediaTypeBuilder {
	if b.record(check.Exclusive("MediaType", "examples", "example", b.draft.Example)) {
		return b
	}
	if b.record(check.UniqueKey("MediaType", "examples", b.draft.Examples, name)) {
		return b
	}
	if b.draft.Examples == nil {
		b.draft.Examples = make(map[string]*ExampleRef)
	}
	b.draft.Examples[name] = ref
	return b
}

// AddEncoding adds encoding information for one schema property.
func (b *MediaTypeBuilder) AddEncoding(property string, encoding *Encoding) *MediaTypeBuilder {
	if b.record(check.UniqueKey("MediaType", "encoding", b.draft.Encoding, property)) {
		return b
	}
	if b.draft.Encoding == nil {
		b.draft.Encoding = make(map[string]*Encoding)
	}
	b.draft.Encoding[property] = encoding
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *MediaTypeBuilder) Extension(key string, value any) *MediaTypeBuilder {
	addExtension(&b.errlist, "MediaType", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *MediaTypeBuilder) Build() (*MediaType, error) {
	media := b.draft
	return &media, b.Err()
}

// EncodingBuilder accumulates an Encoding node.
type EncodingBuilder struct {
	draft Encoding
	errlist
}

// NewEncoding creates an empty Encoding builder; every field is optional.
func NewEncoding() *EncodingBuilder {
	return &EncodingBuilder{}
}

// ContentType sets the content type for encoding the property.
func (b *EncodingBuilder) ContentType(contentType string) *EncodingBuilder {
	if b.record(check.SetOnce("Encoding", "contentType", b.draft.ContentType)) {
		return b
	}
	b.draft.ContentType = &contentType
	return b
}

// AddHeader adds an additional multipart header.
func (b *EncodingBuilder) AddHeader(name string, header *Header) *EncodingBuilder {
	return b.addHeader(name, &HeaderRef{Value: header})
}

// AddHeaderRef adds an additional multipart header reference.
func (b *EncodingBuilder) AddHeaderRef(name string, ref *Reference) *EncodingBuilder {
	return b.addHeader(name, &HeaderRef{Ref: ref})
}

func (b *EncodingBuilder) addHeader(name string, ref *HeaderRef) *EncodingBuilder {
	if b.record(check.UniqueKey("Encoding", "headers", b.draft.Headers, name)) {
		return b
	}
	if b.draft.Headers == nil {
		b.draft.Headers = make(map[string]*HeaderRef)
	}
	b.draft.Headers[name] = ref
	return b
}

// Style sets the serialization style for the property value.
func (b *EncodingBuilder) Style(style string) *EncodingBuilder {
	if b.record(check.SetOnce("Encoding", "style", b.draft.Style)) {
		return b
	}
	b.draft.Style = &style
	return b
}

// Explode sets whether arrays and objects generate separate parameters.
func (b *EncodingBuilder) Explode(explode bool) *EncodingBuilder {
	if b.record(check.SetOnce("Encoding", "explode", b.draft.Explode)) {
		return b
	}
	b.draft.Explode = &explode
	return b
}

// AllowReserved allows RFC 6570 reserved characters.
func (b *EncodingBuilder) AllowReserved(allow bool) *EncodingBuilder {
	if b.record(check.SetOnce("Encoding", "allowReserved", b.draft.AllowReserved)) {
		return b
	}
	b.draft.AllowReserved = &allow
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *EncodingBuilder) Extension(key string, value any) *EncodingBuilder {
	addExtension(&b.errlist, "Encoding", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *EncodingBuilder) Build() (*Encoding, error) {
	encoding := b.draft
	return &encoding, b.Err()
}

// ExampleBuilder accumulates an Example node. Value and ExternalValue are
// mutually exclusive.
type ExampleBuilder struct {
	draft Example
	errlist
}

// NewExample creates an empty Example builder; every field is optional.
func NewExample() *ExampleBuilder {
	return &ExampleBuilder{}
}

// Summary sets a short summary of the example.
func (b *ExampleBuilder) Summary(summary string) *ExampleBuilder {
	if b.record(check.SetOnce("Example", "summary", b.draft.Summary)) {
		return b
	}
	b.draft.Summary = &summary
	return b
}

// Description sets a detailed description of the example.
func (b *ExampleBuilder) Description(description string) *ExampleBuilder {
	if b.record(check.SetOnce("Example", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Value sets the embedded example value. Mutually exclusive with
// ExternalValue.
func (b *ExampleBuilder) Value(value any) *ExampleBuilder {
	if b.record(check.SetOnce("Example", "value", b.draft.Value)) {
		return b
	}
	if b.record(check.Exclusive("Example", "value", "externalValue", b.draft.ExternalValue)) {
		return b
	}
	b.draft.Value = &value
	return b
}

// ExternalValue sets a URL pointing to the example. Mutually exclusive
// with Value.
func (b *ExampleBuilder) ExternalValue(url string) *ExampleBuilder {
	if b.record(check.SetOnce("Example", "externalValue", b.draft.ExternalValue)) {
		return b
	}
	if b.record(check.Exclusive("Example", "externalValue", "value", b.draft.Value)) {
		return b
	}
	if b.record(check.URL("Example", "externalValue", url)) {
		return b
	}
	b.draft.ExternalValue = &url
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ExampleBuilder) Extension(key string, value any) *ExampleBuilder {
	addExtension(&b.errlist, "Example", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ExampleBuilder) Build() (*Example, error) {
	example := b.draft
	return &example, b.Err()
}

// RequestBodyBuilder accumulates a RequestBody node.
type RequestBodyBuilder struct {
	draft RequestBody
	errlist
}

// NewRequestBody creates an empty RequestBody builder.
func NewRequestBody() *RequestBodyBuilder {
	return &RequestBodyBuilder{}
}

// Description sets documentation for the request body.
func (b *RequestBodyBuilder) Description(description string) *RequestBodyBuilder {
	if b.record(check.SetOnce("RequestBody", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Required marks whether the request body must be supplied.
func (b *RequestBodyBuilder) Required(required bool) *RequestBodyBuilder {
	if b.record(check.SetOnce("RequestBody", "required", b.draft.Required)) {
		return b
	}
	b.draft.Required = &required
	return b
}

// AddContent adds a media type keyed by content type.
func (b *RequestBodyBuilder) AddContent(contentType string, media *MediaType) *RequestBodyBuilder {
	if b.record(check.UniqueKey("RequestBody", "content", b.draft.Content, contentType)) {
		return b
	}
	if b.draft.Content == nil {
		b.draft.Content = make(map[string]*MediaType)
	}
	b.draft.Content[contentType] = media
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *RequestBodyBuilder) Extension(key string, value any) *RequestBodyBuilder {
	addExtension(&b.errlist, "RequestBody", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *RequestBodyBuilder) Build() (*RequestBody, error) {
	body := b.draft
	return &body, b.Err()
}
