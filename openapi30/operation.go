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

// OperationBuilder accumulates an Operation node.
type OperationBuilder struct {
	draft Operation
	errlist
}

// NewOperation creates an empty Operation builder.
func NewOperation() *OperationBuilder {
	return &OperationBuilder{}
}

// AddTag appends a tag name. The same tag may not be added twice.
func (b *OperationBuilder) AddTag(tag string) *OperationBuilder {
	if b.record(check.NoDuplicateComparable("Operation", "tags", b.draft.Tags, tag)) {
		return b
	}
	b.draft.Tags = append(b.draft.Tags, tag)
	return b
}

// Summary sets a short summary of the operation.
func (b *OperationBuilder) Summary(summary string) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "summary", b.draft.Summary)) {
		return b
	}
	b.draft.Summary = &summary
	return b
}

// Description sets a verbose explanation of the operation.
func (b *OperationBuilder) Description(description string) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// ExternalDocs sets external documentation for the operation.
func (b *OperationBuilder) ExternalDocs(docs *ExternalDocs) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "externalDocs", b.draft.ExternalDocs)) {
		return b
	}
	b.draft.ExternalDocs = docs
	return b
}

// OperationID sets the unique operation identifier.
func (b *OperationBuilder) OperationID(id string) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "operationId", b.draft.OperationID)) {
		return b
	}
	b.draft.OperationID = &id
	return b
}

// AddParameter appends an inline parameter. Uniqueness across
// name/location pairs is the caller's concern; parameters here may also
// override path-level ones.
func (b *OperationBuilder) AddParameter(parameter *Parameter) *OperationBuilder {
	b.draft.Parameters = append(b.draft.Parameters, &ParameterRef{Value: parameter})
	return b
}

// AddParameterRef appends a parameter reference.
func (b *OperationBuilder) AddParameterRef(ref *Reference) *OperationBuilder {
	b.draft.Parameters = append(b.draft.Parameters, &ParameterRef{Ref: ref})
	return b
}

// RequestBody sets the inline request body.
func (b *OperationBuilder) RequestBody(body *RequestBody) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "requestBody", b.draft.RequestBody)) {
		return b
	}
	b.draft.RequestBody = &RequestBodyRef{Value: body}
	return b
}

// RequestBodyRef sets the request body by reference.
func (b *OperationBuilder) RequestBodyRef(ref *Reference) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "requestBody", b.draft.RequestBody)) {
		return b
	}
	b.draft.RequestBody = &RequestBodyRef{Ref: ref}
	return b
}

func (b *OperationBuilder) addResponse(status string, ref *ResponseRef) {
	if b.record(check.UniqueKey("Operation", "responses", b.draft.Responses, status)) {
		return
	}
	if b.draft.Responses == nil {
		b.draft.Responses = map[string]*ResponseRef{}
	}
	b.draft.Responses[status] = ref
}

// AddResponse adds an inline response keyed by status code or "default".
// Status keys are unique per operation.
func (b *OperationBuilder) AddResponse(status string, response *Response) *OperationBuilder {
	b.addResponse(status, &ResponseRef{Value: response})
	return b
}

// AddResponseRef adds a response reference keyed by status code.
func (b *OperationBuilder) AddResponseRef(status string, ref *Reference) *OperationBuilder {
	b.addResponse(status, &ResponseRef{Ref: ref})
	return b
}

func (b *OperationBuilder) addCallback(name string, ref *CallbackRef) {
	if b.record(check.UniqueKey("Operation", "callbacks", b.draft.Callbacks, name)) {
		return
	}
	if b.draft.Callbacks == nil {
		b.draft.Callbacks = map[string]*CallbackRef{}
	}
	b.draft.Callbacks[name] = ref
}

// AddCallback adds an inline callback keyed by name. Callback names are
// unique per operation.
func (b *OperationBuilder) AddCallback(name string, callback *Callback) *OperationBuilder {
	b.addCallback(name, &CallbackRef{Value: callback})
	return b
}

// AddCallbackRef adds a callback reference keyed by name.
func (b *OperationBuilder) AddCallbackRef(name string, ref *Reference) *OperationBuilder {
	b.addCallback(name, &CallbackRef{Ref: ref})
	return b
}

// Deprecated marks the operation as deprecated.
func (b *OperationBuilder) Deprecated(deprecated bool) *OperationBuilder {
	if b.record(check.SetOnce("Operation", "deprecated", b.draft.Deprecated)) {
		return b
	}
	b.draft.Deprecated = &deprecated
	return b
}

// AddSecurity appends a security requirement, replacing the document
// default for this operation. A requirement equal to one already listed
// is rejected. Pass an empty requirement to make security optional.
func (b *OperationBuilder) AddSecurity(requirement SecurityRequirement) *OperationBuilder {
	if b.record(check.NoDuplicate("Operation", "security", b.draft.Security, requirement)) {
		return b
	}
	b.draft.Security = append(b.draft.Security, requirement)
	return b
}

// AddServer appends an alternative server for this operation. A server
// structurally equal to one already listed is rejected.
func (b *OperationBuilder) AddServer(server *Server) *OperationBuilder {
	if b.record(check.NoDuplicate("Operation", "servers", b.draft.Servers, server)) {
		return b
	}
	b.draft.Servers = append(b.draft.Servers, server)
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *OperationBuilder) Extension(key string, value any) *OperationBuilder {
	addExtension(&b.errlist, "Operation", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *OperationBuilder) Build() (*Operation, error) {
	op := b.draft
	return &op, b.Err()
}

// PathItemBuilder accumulates a PathItem node.
type PathItemBuilder struct {
	draft PathItem
	errlist
}

// NewPathItem creates an empty PathItem builder.
func NewPathItem() *PathItemBuilder {
	return &PathItemBuilder{}
}

// Summary sets a short summary covering all operations in the path.
func (b *PathItemBuilder) Summary(summary string) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "summary", b.draft.Summary)) {
		return b
	}
	b.draft.Summary = &summary
	return b
}

// Description sets a verbose explanation covering all operations.
func (b *PathItemBuilder) Description(description string) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Get sets the GET operation.
func (b *PathItemBuilder) Get(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "get", b.draft.Get)) {
		return b
	}
	b.draft.Get = op
	return b
}

// Put sets the PUT operation.
func (b *PathItemBuilder) Put(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "put", b.draft.Put)) {
		return b
	}
	b.draft.Put = op
	return b
}

// Post sets the POST operation.
func (b *PathItemBuilder) Post(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "post", b.draft.Post)) {
		return b
	}
	b.draft.Post = op
	return b
}

// Delete sets the DELETE operation.
func (b *PathItemBuilder) Delete(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "delete", b.draft.Delete)) {
		return b
	}
	b.draft.Delete = op
	return b
}

// Options sets the OPTIONS operation.
func (b *PathItemBuilder) Options(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "options", b.draft.Options)) {
		return b
	}
	b.draft.Options = op
	return b
}

// Head sets the HEAD operation.
func (b *PathItemBuilder) Head(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "head", b.draft.Head)) {
		return b
	}
	b.draft.Head = op
	return b
}

// Patch sets the PATCH operation.
func (b *PathItemBuilder) Patch(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "patch", b.draft.Patch)) {
		return b
	}
	b.draft.Patch = op
	return b
}

// Trace sets the TRACE operation.
func (b *PathItemBuilder) Trace(op *Operation) *PathItemBuilder {
	if b.record(check.SetOnce("PathItem", "trace", b.draft.Trace)) {
		return b
	}
	b.draft.Trace = op
	return b
}

// AddServer appends an alternative server for all operations in the
// path. A server structurally equal to one already listed is rejected.
func (b *PathItemBuilder) AddServer(server *Server) *PathItemBuilder {
	if b.record(check.NoDuplicate("PathItem", "servers", b.draft.Servers, server)) {
		return b
	}
	b.draft.Servers = append(b.draft.Servers, server)
	return b
}

// AddParameter appends an inline parameter shared by all operations.
func (b *PathItemBuilder) AddParameter(parameter *Parameter) *PathItemBuilder {
	b.draft.Parameters = append(b.draft.Parameters, &ParameterRef{Value: parameter})
	return b
}

// AddParameterRef appends a shared parameter reference.
func (b *PathItemBuilder) AddParameterRef(ref *Reference) *PathItemBuilder {
	b.draft.Parameters = append(b.draft.Parameters, &ParameterRef{Ref: ref})
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *PathItemBuilder) Extension(key string, value any) *PathItemBuilder {
	addExtension(&b.errlist, "PathItem", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *PathItemBuilder) Build() (*PathItem, error) {
	item := b.draft
	return &item, b.Err()
}
