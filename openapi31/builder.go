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

import (
	"errors"
	"maps"
	"slices"

	"rivaas.dev/oasbuild/internal/check"
)

// errlist accumulates invariant failures on a builder. Every builder embeds
// it. A failed check records its error and leaves the draft untouched;
// later independent calls still apply, so a failure is always scoped to the
// single offending call.
type errlist struct {
	errs []error
}

// record appends err to the list when non-nil and reports whether it did.
func (e *errlist) record(err error) bool {
	if err == nil {
		return false
	}
	e.errs = append(e.errs, err)
	return true
}

// Err returns all recorded failures joined, or nil if every call so far
// passed its checks.
func (e *errlist) Err() error {
	return errors.Join(e.errs...)
}

// extensionsReserved marks the 3.1 reserved extension prefixes (x-oai-,
// x-oas-) as rejected.
const extensionsReserved = true

// addExtension validates and inserts one specification extension, lazily
// initializing the bag.
func addExtension(e *errlist, node string, bag *map[string]any, key string, value any) {
	if e.record(check.ExtensionKey(node, key, extensionsReserved)) {
		return
	}
	if e.record(check.UniqueKey(node, "extensions", *bag, key)) {
		return
	}
	if *bag == nil {
		*bag = make(map[string]any)
	}
	(*bag)[key] = value
}

// addExtensions applies addExtension per entry in sorted key order so a
// partial failure is deterministic. Entries before the failing one stay
// applied.
func addExtensions(e *errlist, node string, bag *map[string]any, extensions map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(extensions)) {
		addExtension(e, node, bag, key, extensions[key])
	}
}

// sortedKeys gives bulk adders a deterministic iteration order over
// caller-supplied maps.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
