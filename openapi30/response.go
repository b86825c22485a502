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

// ResponseBuilder accumulates a Response node.
type ResponseBuilder struct {
	draft Response
	errlist
}

// NewResponse creates a Response builder with the required description.
func NewResponse(description string) *ResponseBuilder {
	return &ResponseBuilder{draft: Response{Description: description}}
}

// AddHeader adds a named response header.
func (b *ResponseBuilder) AddHeader(name string, header *Header) *ResponseBuilder {
	return b.addHeader(name, &HeaderRef{Value: header})
}

// AddHeaderRef adds a named response header reference.
func (b *ResponseBuilder) AddHeaderRef(name string, ref *Reference) *ResponseBuilder {
	return b.addHeader(name, &HeaderRef{Ref: ref})
}

func (b *ResponseBuilder) addHeader(name string, ref *HeaderRef) *ResponseBuilder {
	if b.record(check.UniqueKey("Response", "headers", b.draft.Headers, name)) {
		return b
	}
	if b.draft.Headers == nil {
		b.draft.Headers = make(map[string]*HeaderRef)
	}
	b.draft.Headers[name] = ref
	return b
}

// AddContent adds a media type keyed by content type.
func (b *ResponseBuilder) AddContent(contentType string, media *MediaType) *ResponseBuilder {
	if b.record(check.UniqueKey("Response", "content", b.draft.Content, contentType)) {
		return b
	}
	if b.draft.Content == nil {
		b.draft.Content = make(map[string]*MediaType)
	}
	b.draft.Content[contentType] = media
	return b
}

// AddLink adds a named link that can be followed from the response.
func (b *ResponseBuilder) AddLink(name string, link *Link) *ResponseBuilder {
	return b.addLink(name, &LinkRef{Value: link})
}

// AddLinkRef adds a named link reference.
func (b *ResponseBuilder) AddLinkRef(name string, ref *Reference) *ResponseBuilder {
	return b.addLink(name, &LinkRef{Ref: ref})
}

func (b *ResponseBuilder) addLink(name string, ref *LinkRef) *ResponseBuilder {
	if b.record(check.UniqueKey("Response", "links", b.draft.Links, name)) {
		return b
	}
	if b.draft.Links == nil {
		b.draft.Links = make(map[string]*LinkRef)
	}
	b.draft.Links[name] = ref
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ResponseBuilder) Extension(key string, value any) *ResponseBuilder {
	addExtension(&b.errlist, "Response", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ResponseBuilder) Build() (*Response, error) {
	response := b.draft
	return &response, b.Err()
}

// LinkBuilder accumulates a Link node. OperationRef and OperationID are
// mutually exclusive.
type LinkBuilder struct {
	draft Link
	errlist
}

// NewLink creates an empty Link builder.
func NewLink() *LinkBuilder {
	return &LinkBuilder{}
}

// OperationRef references the target operation by JSON pointer. Mutually
// exclusive with OperationID.
func (b *LinkBuilder) OperationRef(ref string) *LinkBuilder {
	if b.record(check.SetOnce("Link", "operationRef", b.draft.OperationRef)) {
		return b
	}
	if b.record(check.Exclusive("Link", "operationRef", "operationId", b.draft.OperationID)) {
		return b
	}
	b.draft.OperationRef = &ref
	return b
}

// OperationID references the target operation by its operationId. Mutually
// exclusive with OperationRef.
func (b *LinkBuilder) OperationID(id string) *LinkBuilder {
	if b.record(check.SetOnce("Link", "operationId", b.draft.OperationID)) {
		return b
	}
	if b.record(check.Exclusive("Link", "operationId", "operationRef", b.draft.OperationRef)) {
		return b
	}
	b.draft.OperationID = &id
	return b
}

// AddParameter adds a parameter name with the value or runtime expression
// to pass to the target.
func (b *LinkBuilder) AddParameter(name string, value any) *LinkBuilder {
	if b.record(check.UniqueKey("Link", "parameters", b.draft.Parameters, name)) {
		return b
	}
	if b.draft.Parameters == nil {
		b.draft.Parameters = make(map[string]any)
	}
	b.draft.Parameters[name] = value
	return b
}

// RequestBody sets the value or runtime expression used as the target's
// request body.
func (b *LinkBuilder) RequestBody(body any) *LinkBuilder {
	if b.record(check.SetOnce("Link", "requestBody", b.draft.RequestBody)) {
		return b
	}
	b.draft.RequestBody = &body
	return b
}

// Description sets documentation for the link.
func (b *LinkBuilder) Description(description string) *LinkBuilder {
	if b.record(check.SetOnce("Link", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Server sets the server used by the target operation.
func (b *LinkBuilder) Server(server *Server) *LinkBuilder {
	if b.record(check.SetOnce("Link", "server", b.draft.Server)) {
		return b
	}
	b.draft.Server = server
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *LinkBuilder) Extension(key string, value any) *LinkBuilder {
	addExtension(&b.errlist, "Link", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *LinkBuilder) Build() (*Link, error) {
	link := b.draft
	return &link, b.Err()
}

// CallbackBuilder accumulates a Callback node: a keyed collection of
// runtime expressions mapping to path items.
type CallbackBuilder struct {
	draft Callback
	errlist
}

// NewCallback creates an empty Callback builder.
func NewCallback() *CallbackBuilder {
	return &CallbackBuilder{}
}

// AddExpression adds a runtime expression with the path item invoked when
// the callback fires. Expressions are unique per callback.
func (b *CallbackBuilder) AddExpression(expression string, item *PathItem) *CallbackBuilder {
	if b.record(check.UniqueKey("Callback", "expressions", b.draft.Expressions, expression)) {
		return b
	}
	if b.draft.Expressions == nil {
		b.draft.Expressions = make(map[string]*PathItem)
	}
	b.draft.Expressions[expression] = item
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *CallbackBuilder) Extension(key string, value any) *CallbackBuilder {
	addExtension(&b.errlist, "Callback", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *CallbackBuilder) Build() (*Callback, error) {
	callback := b.draft
	return &callback, b.Err()
}
