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

package oasbuild

// Version represents an OpenAPI specification version.
type Version string

const (
	// Version30 is the OpenAPI 3.0.4 version string emitted by
	// openapi30 documents.
	Version30 Version = "3.0.4"

	// Version31 is the OpenAPI 3.1.2 version string emitted by
	// openapi31 documents.
	Version31 Version = "3.1.2"
)

// String returns the version as a string.
func (v Version) String() string {
	return string(v)
}

// Document is a finalized OpenAPI document root produced by one of the
// version packages. It is the input to [ToJSON] and [ToYAML].
type Document interface {
	// OpenAPIVersion returns the fixed version string the document targets.
	OpenAPIVersion() Version
}
