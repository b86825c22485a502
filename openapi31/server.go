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

import "rivaas.dev/oasbuild/internal/check"

// ServerBuilder accumulates a Server node.
type ServerBuilder struct {
	draft Server
	errlist
}

// NewServer creates a Server builder with the required URL. The URL is not
// checked for syntax because server URLs may be RFC 6570-style templates
// like "https://{host}/v1".
func NewServer(url string) *ServerBuilder {
	return &ServerBuilder{draft: Server{URL: url}}
}

// Description sets a description distinguishing this server environment.
func (b *ServerBuilder) Description(description string) *ServerBuilder {
	if b.record(check.SetOnce("Server", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// AddVariable adds a named variable for URL template substitution. Variable
// names are unique per server.
func (b *ServerBuilder) AddVariable(name string, variable *ServerVariable) *ServerBuilder {
	if b.record(check.UniqueKey("Server", "variables", b.draft.Variables, name)) {
		return b
	}
	if b.draft.Variables == nil {
		b.draft.Variables = make(map[string]*ServerVariable)
	}
	b.draft.Variables[name] = variable
	return b
}

// Variables adds every entry of the given map via AddVariable.
func (b *ServerBuilder) Variables(variables map[string]*ServerVariable) *ServerBuilder {
	for _, name := range sortedKeys(variables) {
		b.AddVariable(name, variables[name])
	}
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ServerBuilder) Extension(key string, value any) *ServerBuilder {
	addExtension(&b.errlist, "Server", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ServerBuilder) Build() (*Server, error) {
	server := b.draft
	return &server, b.Err()
}

// ServerVariableBuilder accumulates a ServerVariable node.
type ServerVariableBuilder struct {
	draft ServerVariable
	errlist
}

// NewServerVariable creates a ServerVariable builder with the required
// default value.
func NewServerVariable(defaultValue string) *ServerVariableBuilder {
	return &ServerVariableBuilder{draft: ServerVariable{Default: defaultValue}}
}

// Enum sets the enumeration of allowed values. When present it must not be
// empty.
func (b *ServerVariableBuilder) Enum(values ...string) *ServerVariableBuilder {
	if b.record(check.SetOnceSlice("ServerVariable", "enum", b.draft.Enum)) {
		return b
	}
	if b.record(check.NonEmpty("ServerVariable", "enum", values)) {
		return b
	}
	b.draft.Enum = values
	return b
}

// Description sets additional information about the variable.
func (b *ServerVariableBuilder) Description(description string) *ServerVariableBuilder {
	if b.record(check.SetOnce("ServerVariable", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ServerVariableBuilder) Extension(key string, value any) *ServerVariableBuilder {
	addExtension(&b.errlist, "ServerVariable", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ServerVariableBuilder) Build() (*ServerVariable, error) {
	variable := b.draft
	return &variable, b.Err()
}
