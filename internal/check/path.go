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

// validParameterNamePattern validates path template parameter names.
// Per OpenAPI, parameter names should be alphanumeric with dots,
// underscores, and hyphens.
var validParameterNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// PathKey validates a key used to add a path item to a document.
//
// Checks:
//   - Non-empty key
//   - Key starts with '/'
//   - Properly paired braces in {param} template segments
//   - Parameter names match [a-zA-Z0-9._-]+
//   - No duplicate path parameters
//
// Every failure is a Value error attributed to the document's paths field.
func PathKey(node, path string) error {
	fail := func(reason string) error {
		return &oasbuild.ValueError{Node: node, Field: "paths", Value: path, Reason: reason}
	}

	if path == "" {
		return fail("path cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return fail("path must start with '/'")
	}

	// Track seen parameters to detect duplicates
	params := make(map[string]bool)
	for seg := range strings.SplitSeq(path, "/") {
		if seg == "" {
			continue
		}
		if !strings.Contains(seg, "{") && !strings.Contains(seg, "}") {
			continue
		}

		// Must have both opening and closing braces
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			return fail("mismatched braces in segment '" + seg + "'")
		}

		name := strings.TrimPrefix(strings.TrimSuffix(seg, "}"), "{")
		if name == "" {
			return fail("empty parameter name in segment '{}'")
		}
		if strings.Contains(name, "{") || strings.Contains(name, "}") {
			return fail("parameter name cannot contain braces: '" + seg + "'")
		}
		if !validParameterNamePattern.MatchString(name) {
			return fail("parameter name '" + name + "' must match pattern [a-zA-Z0-9._-]+")
		}
		if params[name] {
			return fail("duplicate path parameter '" + name + "'")
		}
		params[name] = true
	}

	return nil
}
