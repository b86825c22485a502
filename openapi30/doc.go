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

// Package openapi30 builds OpenAPI 3.0.4 documents.
//
// The API mirrors the sibling package openapi31: one fluent builder per
// node kind, call-time invariant checks, and omit-when-absent
// serialization. The differences are the ones between the two
// specification lines: no webhooks, no jsonSchemaDialect, no license
// identifier, bare $ref references, and the 3.0 schema dialect with
// nullable, a singular example, and boolean exclusive bounds.
//
//	info, _ := openapi30.NewInfo("Widgets", "1.0.0").Build()
//	doc, err := openapi30.NewDocument(info).
//	    AddPath("/widgets", item).
//	    Build()
package openapi30
