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

// ComponentsBuilder accumulates the reusable-object registry. Every map
// shares the same key rules: keys match ^[a-zA-Z0-9._-]+$ and are unique
// within their map.
type ComponentsBuilder struct {
	draft Components
	errlist
}

// NewComponents creates an empty Components builder.
func NewComponents() *ComponentsBuilder {
	return &ComponentsBuilder{}
}

func componentKey[V any](e *errlist, field string, m map[string]V, key string) bool {
	if e.record(check.ComponentKey("Components", field, key)) {
		return false
	}
	if e.record(check.UniqueKey("Components", field, m, key)) {
		return false
	}
	return true
}

// AddSchema registers a reusable schema under name.
func (b *ComponentsBuilder) AddSchema(name string, schema *Schema) *ComponentsBuilder {
	if !componentKey(&b.errlist, "schemas", b.draft.Schemas, name) {
		return b
	}
	if b.draft.Schemas == nil {
		b.draft.Schemas = map[string]*Schema{}
	}
	b.draft.Schemas[name] = schema
	return b
}

func (b *ComponentsBuilder) addResponse(name string, ref *ResponseRef) {
	if !componentKey(&b.errlist, "responses", b.draft.Responses, name) {
		return
	}
	if b.draft.Responses == nil {
		b.draft.Responses = map[string]*ResponseRef{}
	}
	b.draft.Responses[name] = ref
}

// AddResponse registers a reusable response under name.
func (b *ComponentsBuilder) AddResponse(name string, response *Response) *ComponentsBuilder {
	b.addResponse(name, &ResponseRef{Value: response})
	return b
}

// AddResponseRef registers a response reference under name.
func (b *ComponentsBuilder) AddResponseRef(name string, ref *Reference) *ComponentsBuilder {
	b.addResponse(name, &ResponseRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addParameter(name string, ref *ParameterRef) {
	if !componentKey(&b.errlist, "parameters", b.draft.Parameters, name) {
		return
	}
	if b.draft.Parameters == nil {
		b.draft.Parameters = map[string]*ParameterRef{}
	}
	b.draft.Parameters[name] = ref
}

// AddParameter registers a reusable parameter under name.
func (b *ComponentsBuilder) AddParameter(name string, parameter *Parameter) *ComponentsBuilder {
	b.addParameter(name, &ParameterRef{Value: parameter})
	return b
}

// AddParameterRef registers a parameter reference under name.
func (b *ComponentsBuilder) AddParameterRef(name string, ref *Reference) *ComponentsBuilder {
	b.addParameter(name, &ParameterRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addExample(name string, ref *ExampleRef) {
	if !componentKey(&b.errlist, "examples", b.draft.Examples, name) {
		return
	}
	if b.draft.Examples == nil {
		b.draft.Examples = map[string]*ExampleRef{}
	}
	b.draft.Examples[name] = ref
}

// AddExample registers a reusable example under name.
func (b *ComponentsBuilder) AddExample(name string, example *Example) *ComponentsBuilder {
	b.addExample(name, &ExampleRef{Value: example})
	return b
}

// AddExampleRef registers an example reference under name.
func (b *ComponentsBuilder) AddExampleRef(name string, ref *Reference) *ComponentsBuilder {
	b.addExample(name, &ExampleRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addRequestBody(name string, ref *RequestBodyRef) {
	if !componentKey(&b.errlist, "requestBodies", b.draft.RequestBodies, name) {
		return
	}
	if b.draft.RequestBodies == nil {
		b.draft.RequestBodies = map[string]*RequestBodyRef{}
	}
	b.draft.RequestBodies[name] = ref
}

// AddRequestBody registers a reusable request body under name.
func (b *ComponentsBuilder) AddRequestBody(name string, body *RequestBody) *ComponentsBuilder {
	b.addRequestBody(name, &RequestBodyRef{Value: body})
	return b
}

// AddRequestBodyRef registers a request body reference under name.
func (b *ComponentsBuilder) AddRequestBodyRef(name string, ref *Reference) *ComponentsBuilder {
	b.addRequestBody(name, &RequestBodyRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addHeader(name string, ref *HeaderRef) {
	if !componentKey(&b.errlist, "headers", b.draft.Headers, name) {
		return
	}
	if b.draft.Headers == nil {
		b.draft.Headers = map[string]*HeaderRef{}
	}
	b.draft.Headers[name] = ref
}

// AddHeader registers a reusable header under name.
func (b *ComponentsBuilder) AddHeader(name string, header *Header) *ComponentsBuilder {
	b.addHeader(name, &HeaderRef{Value: header})
	return b
}

// AddHeaderRef registers a header reference under name.
func (b *ComponentsBuilder) AddHeaderRef(name string, ref *Reference) *ComponentsBuilder {
	b.addHeader(name, &HeaderRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addSecurityScheme(name string, ref *SecuritySchemeRef) {
	if !componentKey(&b.errlist, "securitySchemes", b.draft.SecuritySchemes, name) {
		return
	}
	if b.draft.SecuritySchemes == nil {
		b.draft.SecuritySchemes = map[string]*SecuritySchemeRef{}
	}
	b.draft.SecuritySchemes[name] = ref
}

// AddSecurityScheme registers a reusable security scheme under name.
func (b *ComponentsBuilder) AddSecurityScheme(name string, scheme *SecurityScheme) *ComponentsBuilder {
	b.addSecurityScheme(name, &SecuritySchemeRef{Value: scheme})
	return b
}

// AddSecuritySchemeRef registers a security scheme reference under name.
func (b *ComponentsBuilder) AddSecuritySchemeRef(name string, ref *Reference) *ComponentsBuilder {
	b.addSecurityScheme(name, &SecuritySchemeRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addLink(name string, ref *LinkRef) {
	if !componentKey(&b.errlist, "links", b.draft.Links, name) {
		return
	}
	if b.draft.Links == nil {
		b.draft.Links = map[string]*LinkRef{}
	}
	b.draft.Links[name] = ref
}

// AddLink registers a reusable link under name.
func (b *ComponentsBuilder) AddLink(name string, link *Link) *ComponentsBuilder {
	b.addLink(name, &LinkRef{Value: link})
	return b
}

// AddLinkRef registers a link reference under name.
func (b *ComponentsBuilder) AddLinkRef(name string, ref *Reference) *ComponentsBuilder {
	b.addLink(name, &LinkRef{Ref: ref})
	return b
}

func (b *ComponentsBuilder) addCallback(name string, ref *CallbackRef) {
	if !componentKey(&b.errlist, "callbacks", b.draft.Callbacks, name) {
		return
	}
	if b.draft.Callbacks == nil {
		b.draft.Callbacks = map[string]*CallbackRef{}
	}
	b.draft.Callbacks[name] = ref
}

// AddCallback registers a reusable callback under name.
func (b *ComponentsBuilder) AddCallback(name string, callback *Callback) *ComponentsBuilder {
	b.addCallback(name, &CallbackRef{Value: callback})
	return b
}

// AddCallbackRef registers a callback reference under name.
func (b *ComponentsBuilder) AddCallbackRef(name string, ref *Reference) *ComponentsBuilder {
	b.addCallback(name, &CallbackRef{Ref: ref})
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ComponentsBuilder) Extension(key string, value any) *ComponentsBuilder {
	addExtension(&b.errlist, "Components", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ComponentsBuilder) Build() (*Components, error) {
	c := b.draft
	return &c, b.Err()
}
