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

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrNilDocument indicates a nil document was passed to a render function.
var ErrNilDocument = errors.New("oasbuild: nil document")

// renderConfig holds render settings (private to enforce functional options).
type renderConfig struct {
	indent     string
	compact    bool
	yamlIndent int
}

// RenderOption configures rendering using the functional options pattern.
// Options are applied in order, with later options potentially overriding
// earlier ones.
type RenderOption func(*renderConfig)

// WithIndent sets the JSON indentation string. The default is two spaces.
func WithIndent(indent string) RenderOption {
	return func(c *renderConfig) {
		c.indent = indent
		c.compact = false
	}
}

// WithCompactJSON disables JSON indentation entirely.
func WithCompactJSON() RenderOption {
	return func(c *renderConfig) {
		c.compact = true
	}
}

// WithYAMLIndent sets the YAML indentation width. The default is two spaces.
func WithYAMLIndent(spaces int) RenderOption {
	return func(c *renderConfig) {
		c.yamlIndent = spaces
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{
		indent:     "  ",
		yamlIndent: 2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ToJSON renders a finalized document to JSON text.
//
// Absent optional fields are omitted entirely, keyed collections are emitted
// as objects, and specification extensions are inlined next to the fixed
// fields of their node. The output is indented with two spaces unless
// configured otherwise.
func ToJSON(doc Document, opts ...RenderOption) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cfg := newRenderConfig(opts)
	if cfg.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", cfg.indent)
}

// ToYAML renders a finalized document to YAML text.
//
// The same omission and extension-inlining rules as [ToJSON] apply.
func ToYAML(doc Document, opts ...RenderOption) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	cfg := newRenderConfig(opts)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(cfg.yamlIndent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
