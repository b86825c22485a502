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

// Package openapi31 builds OpenAPI 3.1.2 documents.
//
// Every node of the document model has a fluent builder: a constructor
// taking the node's required fields, chainable setters, and a Build method
// returning the finished node plus any invariant failures recorded along
// the way. Setters validate at call time — a scalar may be set once, a
// keyed entry may not reuse a key, mutually exclusive fields reject each
// other — and a failed call leaves the draft untouched while later valid
// calls still apply.
//
// # Quick Start
//
//	info, _ := openapi31.NewInfo("Widgets", "1.0.0").
//	    Description("Widget management").
//	    Build()
//
//	op, _ := openapi31.NewOperation().
//	    OperationID("listWidgets").
//	    AddResponse("200", ok).
//	    Build()
//
//	item, _ := openapi31.NewPathItem().Get(op).Build()
//
//	doc, err := openapi31.NewDocument(info).
//	    AddPath("/widgets", item).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := oasbuild.ToJSON(doc)
//
// Unset optional fields are absent from the rendered output; the model
// never emits null or an empty placeholder for something that was not
// set.
//
// For documents targeting the 3.0.4 line use the sibling package
// openapi30, which mirrors this API minus the 3.1-only surface (webhooks,
// license identifier, full JSON Schema keywords).
package openapi31
