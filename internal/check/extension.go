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

package check

import (
	"regexp"
	"strings"

	"rivaas.dev/oasbuild"
)

// validComponentKeyPattern validates component map keys per the OpenAPI
// specification: ^[a-zA-Z0-9.\-_]+$
var validComponentKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)

// ExtensionKey validates that a specification-extension key starts with
// "x-". With reserved set (OpenAPI 3.1 targets), keys starting with
// "x-oai-" or "x-oas-" are rejected as well.
func ExtensionKey(node, key string, reserved bool) error {
	if !strings.HasPrefix(key, "x-") {
		return &oasbuild.ValueError{Node: node, Field: "extensions", Value: key, Reason: "extension key must start with 'x-'"}
	}
	if reserved && (strings.HasPrefix(key, "x-oai-") || strings.HasPrefix(key, "x-oas-")) {
		return &oasbuild.ValueError{Node: node, Field: "extensions", Value: key, Reason: "extension key uses reserved prefix (x-oai- or x-oas-)"}
	}
	return nil
}

// ComponentKey validates a key used in one of the components maps.
func ComponentKey(node, field, key string) error {
	if !validComponentKeyPattern.MatchString(key) {
		return &oasbuild.ValueError{Node: node, Field: field, Value: key, Reason: "component key must match pattern [a-zA-Z0-9.-_]+"}
	}
	return nil
}
