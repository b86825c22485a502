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

// Package oasbuild provides hand-assembled OpenAPI 3.0.4 and 3.1.2 document
// construction with per-field invariant enforcement and JSON/YAML rendering.
//
// Unlike generators that derive specifications from route metadata, oasbuild
// is for callers that want to assemble a document node by node. Every node
// kind (Info, Server, Operation, Schema, ...) has a fluent builder that
// checks each assignment before it happens: a field can only be set once,
// mutually exclusive fields reject each other, URL-typed fields must parse,
// and keyed collections refuse duplicate keys. A failed check never mutates
// the draft; the failure is recorded on the builder and reported through
// Err and Build.
//
// The two target versions live in sibling packages with mirrored APIs:
//
//   - rivaas.dev/oasbuild/openapi30 builds OpenAPI 3.0.4 documents
//   - rivaas.dev/oasbuild/openapi31 builds OpenAPI 3.1.2 documents
//
// This package holds what both share: the error taxonomy, the version
// constants, and the serialization entry points.
//
// # Quick Start
//
//	info, err := openapi31.NewInfo("My API", "1.0.0").
//	    Description("Example service").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, _ := openapi31.NewResponse("OK").Build()
//	op := openapi31.NewOperation().Summary("List widgets")
//	op.AddResponse("200", resp)
//	operation, _ := op.Build()
//
//	item, _ := openapi31.NewPathItem().Get(operation).Build()
//
//	doc := openapi31.NewDocument(info)
//	doc.AddPath("/widgets", item)
//	root, err := doc.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := oasbuild.ToJSON(root)
//
// # Error Handling
//
// Every violated invariant produces one of three error kinds, each matching
// a sentinel via errors.Is:
//
//   - [ErrDuplicate]: a set-once field already holds a value, or a
//     collection already contains the key or value being added
//   - [ErrExclusive]: the field conflicts with another populated field on
//     the same node
//   - [ErrValue]: the supplied value fails a domain check (malformed URL,
//     empty enumeration, bad path key, bad extension key)
//
// Builders accumulate failures instead of panicking: each failed call is
// recorded and the joined error is available from Err and Build. Successful
// assignments made before or after a failure stay in place, so a built node
// always reflects exactly the calls that passed their checks.
package oasbuild
