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

// Package encode holds JSON marshaling helpers shared by the version
// packages.
package encode

import (
	"encoding/json"
	"maps"
)

// WithExtensions marshals a node struct with its specification extensions
// inlined next to the fixed fields.
//
// Callers MUST pass a type alias of their node type, not the node type
// itself:
//
//	func (i *Info) MarshalJSON() ([]byte, error) {
//	    type info Info // alias prevents recursion
//	    return encode.WithExtensions(info(*i), i.Extensions)
//	}
//
// Without the alias, json.Marshal would recursively call the node's own
// MarshalJSON. The Extensions field itself is tagged `json:"-"` on every
// node, so merging cannot collide with it.
func WithExtensions(v any, extensions map[string]any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		return data, nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	maps.Copy(m, extensions)

	return json.Marshal(m)
}
