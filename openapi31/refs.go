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

import "encoding/json"

// The *Ref types are tagged unions of a concrete node and a [Reference].
// Exactly one side is non-nil. Serialization dispatches on the tag: a
// reference-tagged value renders only its $ref (plus the 3.1 summary and
// description overrides), regardless of the node type expected at that
// position.

func marshalRefJSON(ref *Reference, value any) ([]byte, error) {
	if ref != nil {
		return json.Marshal(ref)
	}
	return json.Marshal(value)
}

func marshalRefYAML(ref *Reference, value any) (any, error) {
	if ref != nil {
		return ref, nil
	}
	return value, nil
}

// ParameterRef is a Parameter or a Reference.
type ParameterRef struct {
	Ref   *Reference
	Value *Parameter
}

// MarshalJSON implements json.Marshaler.
func (r *ParameterRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *ParameterRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// HeaderRef is a Header or a Reference.
type HeaderRef struct {
	Ref   *Reference
	Value *Header
}

// MarshalJSON implements json.Marshaler.
func (r *HeaderRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *HeaderRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// ResponseRef is a Response or a Reference.
type ResponseRef struct {
	Ref   *Reference
	Value *Response
}

// MarshalJSON implements json.Marshaler.
func (r *ResponseRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *ResponseRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// RequestBodyRef is a RequestBody or a Reference.
type RequestBodyRef struct {
	Ref   *Reference
	Value *RequestBody
}

// MarshalJSON implements json.Marshaler.
func (r *RequestBodyRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *RequestBodyRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// ExampleRef is an Example or a Reference.
type ExampleRef struct {
	Ref   *Reference
	Value *Example
}

// MarshalJSON implements json.Marshaler.
func (r *ExampleRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *ExampleRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// LinkRef is a Link or a Reference.
type LinkRef struct {
	Ref   *Reference
	Value *Link
}

// MarshalJSON implements json.Marshaler.
func (r *LinkRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *LinkRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// CallbackRef is a Callback or a Reference.
type CallbackRef struct {
	Ref   *Reference
	Value *Callback
}

// MarshalJSON implements json.Marshaler.
func (r *CallbackRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *CallbackRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// SecuritySchemeRef is a SecurityScheme or a Reference.
type SecuritySchemeRef struct {
	Ref   *Reference
	Value *SecurityScheme
}

// MarshalJSON implements json.Marshaler.
func (r *SecuritySchemeRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *SecuritySchemeRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// PathItemRef is a PathItem or a Reference. Used for webhooks and the
// components pathItems collection.
type PathItemRef struct {
	Ref   *Reference
	Value *PathItem
}

// MarshalJSON implements json.Marshaler.
func (r *PathItemRef) MarshalJSON() ([]byte, error) { return marshalRefJSON(r.Ref, r.Value) }

// MarshalYAML implements yaml.Marshaler.
func (r *PathItemRef) MarshalYAML() (any, error) { return marshalRefYAML(r.Ref, r.Value) }

// Ref builds a bare reference node. Use the ...Ref adder variants to place
// it anywhere a node-or-reference is allowed:
//
//	op.AddResponseRef("404", openapi31.Ref("#/components/responses/NotFound"))
func Ref(ref string) *Reference {
	return &Reference{Ref: ref}
}
