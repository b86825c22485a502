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

// SchemaBuilder accumulates a Schema node in the 3.0 dialect: nullable is
// a boolean modifier, example is singular, and the exclusive bounds are
// boolean flags.
type SchemaBuilder struct {
	draft Schema
	errlist
}

// NewSchema creates an empty Schema builder.
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Ref sets the $ref keyword.
func (b *SchemaBuilder) Ref(ref string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "$ref", b.draft.Ref)) {
		return b
	}
	b.draft.Ref = &ref
	return b
}

// Title sets the title keyword.
func (b *SchemaBuilder) Title(title string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "title", b.draft.Title)) {
		return b
	}
	b.draft.Title = &title
	return b
}

// Type sets the type keyword, e.g. "object", "array", "string".
func (b *SchemaBuilder) Type(typ string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "type", b.draft.Type)) {
		return b
	}
	b.draft.Type = &typ
	return b
}

// Format sets the format keyword, e.g. "int64", "date-time".
func (b *SchemaBuilder) Format(format string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "format", b.draft.Format)) {
		return b
	}
	b.draft.Format = &format
	return b
}

// Description sets the description keyword.
func (b *SchemaBuilder) Description(description string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Default sets the default keyword. A nil value is serialized as JSON
// null, which is distinct from the keyword being absent.
func (b *SchemaBuilder) Default(value any) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "default", b.draft.Default)) {
		return b
	}
	b.draft.Default = &value
	return b
}

// Enum sets the enum keyword to a non-empty list of allowed values.
func (b *SchemaBuilder) Enum(values ...any) *SchemaBuilder {
	if b.record(check.SetOnceSlice("Schema", "enum", b.draft.Enum)) {
		return b
	}
	if b.record(check.NonEmpty("Schema", "enum", values)) {
		return b
	}
	b.draft.Enum = values
	return b
}

// Example sets the single example value. The 3.1 plural examples keyword
// does not exist in 3.0.
func (b *SchemaBuilder) Example(value any) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "example", b.draft.Example)) {
		return b
	}
	b.draft.Example = &value
	return b
}

// Nullable allows null in addition to the declared type.
func (b *SchemaBuilder) Nullable(nullable bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "nullable", b.draft.Nullable)) {
		return b
	}
	b.draft.Nullable = &nullable
	return b
}

// MultipleOf sets the multipleOf keyword.
func (b *SchemaBuilder) MultipleOf(n float64) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "multipleOf", b.draft.MultipleOf)) {
		return b
	}
	b.draft.MultipleOf = &n
	return b
}

// Maximum sets the maximum keyword.
func (b *SchemaBuilder) Maximum(n float64) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "maximum", b.draft.Maximum)) {
		return b
	}
	b.draft.Maximum = &n
	return b
}

// ExclusiveMaximum makes the maximum bound exclusive. In 3.0 this is a
// boolean modifier on maximum, not the 3.1 numeric bound.
func (b *SchemaBuilder) ExclusiveMaximum(exclusive bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "exclusiveMaximum", b.draft.ExclusiveMaximum)) {
		return b
	}
	b.draft.ExclusiveMaximum = &exclusive
	return b
}

// Minimum sets the minimum keyword.
func (b *SchemaBuilder) Minimum(n float64) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "minimum", b.draft.Minimum)) {
		return b
	}
	b.draft.Minimum = &n
	return b
}

// ExclusiveMinimum makes the minimum bound exclusive.
func (b *SchemaBuilder) ExclusiveMinimum(exclusive bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "exclusiveMinimum", b.draft.ExclusiveMinimum)) {
		return b
	}
	b.draft.ExclusiveMinimum = &exclusive
	return b
}

// MaxLength sets the maxLength keyword.
func (b *SchemaBuilder) MaxLength(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "maxLength", b.draft.MaxLength)) {
		return b
	}
	b.draft.MaxLength = &n
	return b
}

// MinLength sets the minLength keyword.
func (b *SchemaBuilder) MinLength(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "minLength", b.draft.MinLength)) {
		return b
	}
	b.draft.MinLength = &n
	return b
}

// Pattern sets the pattern keyword (an ECMA-262 regular expression).
func (b *SchemaBuilder) Pattern(pattern string) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "pattern", b.draft.Pattern)) {
		return b
	}
	b.draft.Pattern = &pattern
	return b
}

// MaxItems sets the maxItems keyword.
func (b *SchemaBuilder) MaxItems(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "maxItems", b.draft.MaxItems)) {
		return b
	}
	b.draft.MaxItems = &n
	return b
}

// MinItems sets the minItems keyword.
func (b *SchemaBuilder) MinItems(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "minItems", b.draft.MinItems)) {
		return b
	}
	b.draft.MinItems = &n
	return b
}

// UniqueItems sets the uniqueItems keyword.
func (b *SchemaBuilder) UniqueItems(unique bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "uniqueItems", b.draft.UniqueItems)) {
		return b
	}
	b.draft.UniqueItems = &unique
	return b
}

// MaxProperties sets the maxProperties keyword.
func (b *SchemaBuilder) MaxProperties(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "maxProperties", b.draft.MaxProperties)) {
		return b
	}
	b.draft.MaxProperties = &n
	return b
}

// MinProperties sets the minProperties keyword.
func (b *SchemaBuilder) MinProperties(n int) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "minProperties", b.draft.MinProperties)) {
		return b
	}
	b.draft.MinProperties = &n
	return b
}

// AddRequired appends a property name to the required list. The same
// name may not be required twice.
func (b *SchemaBuilder) AddRequired(name string) *SchemaBuilder {
	if b.record(check.NoDuplicateComparable("Schema", "required", b.draft.Required, name)) {
		return b
	}
	b.draft.Required = append(b.draft.Required, name)
	return b
}

// AddProperty adds a named property schema. Property names are unique.
func (b *SchemaBuilder) AddProperty(name string, schema *Schema) *SchemaBuilder {
	if b.record(check.UniqueKey("Schema", "properties", b.draft.Properties, name)) {
		return b
	}
	if b.draft.Properties == nil {
		b.draft.Properties = map[string]*Schema{}
	}
	b.draft.Properties[name] = schema
	return b
}

// AdditionalProperties sets the schema constraining properties not named
// in the properties map.
func (b *SchemaBuilder) AdditionalProperties(schema *Schema) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "additionalProperties", b.draft.AdditionalProperties)) {
		return b
	}
	b.draft.AdditionalProperties = schema
	return b
}

// Items sets the schema for array items. Required by the 3.0 wire format
// when type is "array".
func (b *SchemaBuilder) Items(schema *Schema) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "items", b.draft.Items)) {
		return b
	}
	b.draft.Items = schema
	return b
}

// AddAllOf appends a subschema to the allOf list. Order is preserved and
// entries are not deduplicated; identical subschemas may legitimately
// appear via distinct references.
func (b *SchemaBuilder) AddAllOf(schema *Schema) *SchemaBuilder {
	b.draft.AllOf = append(b.draft.AllOf, schema)
	return b
}

// AddAnyOf appends a subschema to the anyOf list.
func (b *SchemaBuilder) AddAnyOf(schema *Schema) *SchemaBuilder {
	b.draft.AnyOf = append(b.draft.AnyOf, schema)
	return b
}

// AddOneOf appends a subschema to the oneOf list.
func (b *SchemaBuilder) AddOneOf(schema *Schema) *SchemaBuilder {
	b.draft.OneOf = append(b.draft.OneOf, schema)
	return b
}

// Not sets the not keyword.
func (b *SchemaBuilder) Not(schema *Schema) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "not", b.draft.Not)) {
		return b
	}
	b.draft.Not = schema
	return b
}

// Discriminator sets the discriminator aiding polymorphic
// serialization.
func (b *SchemaBuilder) Discriminator(discriminator *Discriminator) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "discriminator", b.draft.Discriminator)) {
		return b
	}
	b.draft.Discriminator = discriminator
	return b
}

// ReadOnly marks the schema as read-only.
func (b *SchemaBuilder) ReadOnly(readOnly bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "readOnly", b.draft.ReadOnly)) {
		return b
	}
	b.draft.ReadOnly = &readOnly
	return b
}

// WriteOnly marks the schema as write-only.
func (b *SchemaBuilder) WriteOnly(writeOnly bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "writeOnly", b.draft.WriteOnly)) {
		return b
	}
	b.draft.WriteOnly = &writeOnly
	return b
}

// Deprecated marks the schema as deprecated.
func (b *SchemaBuilder) Deprecated(deprecated bool) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "deprecated", b.draft.Deprecated)) {
		return b
	}
	b.draft.Deprecated = &deprecated
	return b
}

// XML sets XML representation metadata.
func (b *SchemaBuilder) XML(xml *XML) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "xml", b.draft.XML)) {
		return b
	}
	b.draft.XML = xml
	return b
}

// ExternalDocs sets external documentation for the schema.
func (b *SchemaBuilder) ExternalDocs(docs *ExternalDocs) *SchemaBuilder {
	if b.record(check.SetOnce("Schema", "externalDocs", b.draft.ExternalDocs)) {
		return b
	}
	b.draft.ExternalDocs = docs
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *SchemaBuilder) Extension(key string, value any) *SchemaBuilder {
	addExtension(&b.errlist, "Schema", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *SchemaBuilder) Build() (*Schema, error) {
	schema := b.draft
	return &schema, b.Err()
}

// DiscriminatorBuilder accumulates a Discriminator node.
type DiscriminatorBuilder struct {
	draft Discriminator
	errlist
}

// NewDiscriminator creates a Discriminator builder with the required
// property name.
func NewDiscriminator(propertyName string) *DiscriminatorBuilder {
	return &DiscriminatorBuilder{draft: Discriminator{PropertyName: propertyName}}
}

// AddMapping maps a discriminator value to a schema name or reference.
// Values are unique per discriminator.
func (b *DiscriminatorBuilder) AddMapping(value, schema string) *DiscriminatorBuilder {
	if b.record(check.UniqueKey("Discriminator", "mapping", b.draft.Mapping, value)) {
		return b
	}
	if b.draft.Mapping == nil {
		b.draft.Mapping = map[string]string{}
	}
	b.draft.Mapping[value] = schema
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *DiscriminatorBuilder) Extension(key string, value any) *DiscriminatorBuilder {
	addExtension(&b.errlist, "Discriminator", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *DiscriminatorBuilder) Build() (*Discriminator, error) {
	d := b.draft
	return &d, b.Err()
}

// XMLBuilder accumulates an XML metadata node.
type XMLBuilder struct {
	draft XML
	errlist
}

// NewXML creates an empty XML builder.
func NewXML() *XMLBuilder {
	return &XMLBuilder{}
}

// Name replaces the element or attribute name used for the schema.
func (b *XMLBuilder) Name(name string) *XMLBuilder {
	if b.record(check.SetOnce("XML", "name", b.draft.Name)) {
		return b
	}
	b.draft.Name = &name
	return b
}

// Namespace sets the XML namespace URI.
func (b *XMLBuilder) Namespace(namespace string) *XMLBuilder {
	if b.record(check.SetOnce("XML", "namespace", b.draft.Namespace)) {
		return b
	}
	if b.record(check.URL("XML", "namespace", namespace)) {
		return b
	}
	b.draft.Namespace = &namespace
	return b
}

// Prefix sets the namespace prefix.
func (b *XMLBuilder) Prefix(prefix string) *XMLBuilder {
	if b.record(check.SetOnce("XML", "prefix", b.draft.Prefix)) {
		return b
	}
	b.draft.Prefix = &prefix
	return b
}

// Attribute declares the property is rendered as an attribute rather
// than an element.
func (b *XMLBuilder) Attribute(attribute bool) *XMLBuilder {
	if b.record(check.SetOnce("XML", "attribute", b.draft.Attribute)) {
		return b
	}
	b.draft.Attribute = &attribute
	return b
}

// Wrapped declares array items are wrapped in a container element.
func (b *XMLBuilder) Wrapped(wrapped bool) *XMLBuilder {
	if b.record(check.SetOnce("XML", "wrapped", b.draft.Wrapped)) {
		return b
	}
	b.draft.Wrapped = &wrapped
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *XMLBuilder) Extension(key string, value any) *XMLBuilder {
	addExtension(&b.errlist, "XML", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *XMLBuilder) Build() (*XML, error) {
	x := b.draft
	return &x, b.Err()
}
