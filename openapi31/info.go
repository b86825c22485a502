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

// InfoBuilder accumulates an Info node. Create one with [NewInfo], chain
// setters, and call Build once.
type InfoBuilder struct {
	draft Info
	errlist
}

// NewInfo creates an Info builder with the required title and version.
func NewInfo(title, version string) *InfoBuilder {
	return &InfoBuilder{draft: Info{Title: title, Version: version}}
}

// Summary sets a short summary of the API.
func (b *InfoBuilder) Summary(summary string) *InfoBuilder {
	if b.record(check.SetOnce("Info", "summary", b.draft.Summary)) {
		return b
	}
	b.draft.Summary = &summary
	return b
}

// Description sets a detailed description of the API (supports Markdown).
func (b *InfoBuilder) Description(description string) *InfoBuilder {
	if b.record(check.SetOnce("Info", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// TermsOfService sets the URL of the Terms of Service.
func (b *InfoBuilder) TermsOfService(url string) *InfoBuilder {
	if b.record(check.SetOnce("Info", "termsOfService", b.draft.TermsOfService)) {
		return b
	}
	if b.record(check.URL("Info", "termsOfService", url)) {
		return b
	}
	b.draft.TermsOfService = &url
	return b
}

// Contact sets the finalized contact node.
func (b *InfoBuilder) Contact(contact *Contact) *InfoBuilder {
	if b.record(check.SetOnce("Info", "contact", b.draft.Contact)) {
		return b
	}
	b.draft.Contact = contact
	return b
}

// License sets the finalized license node.
func (b *InfoBuilder) License(license *License) *InfoBuilder {
	if b.record(check.SetOnce("Info", "license", b.draft.License)) {
		return b
	}
	b.draft.License = license
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *InfoBuilder) Extension(key string, value any) *InfoBuilder {
	addExtension(&b.errlist, "Info", &b.draft.Extensions, key, value)
	return b
}

// Extensions adds every entry of the given map, in sorted key order.
func (b *InfoBuilder) Extensions(extensions map[string]any) *InfoBuilder {
	addExtensions(&b.errlist, "Info", &b.draft.Extensions, extensions)
	return b
}

// Build returns the accumulated node and any recorded failures. The builder
// is single-use; discard it after Build.
func (b *InfoBuilder) Build() (*Info, error) {
	info := b.draft
	return &info, b.Err()
}

// ContactBuilder accumulates a Contact node.
type ContactBuilder struct {
	draft Contact
	errlist
}

// NewContact creates an empty Contact builder; every field is optional.
func NewContact() *ContactBuilder {
	return &ContactBuilder{}
}

// Name sets the contact person or organization name.
func (b *ContactBuilder) Name(name string) *ContactBuilder {
	if b.record(check.SetOnce("Contact", "name", b.draft.Name)) {
		return b
	}
	b.draft.Name = &name
	return b
}

// URL sets the URL pointing to the contact information.
func (b *ContactBuilder) URL(url string) *ContactBuilder {
	if b.record(check.SetOnce("Contact", "url", b.draft.URL)) {
		return b
	}
	if b.record(check.URL("Contact", "url", url)) {
		return b
	}
	b.draft.URL = &url
	return b
}

// Email sets the contact email address.
func (b *ContactBuilder) Email(email string) *ContactBuilder {
	if b.record(check.SetOnce("Contact", "email", b.draft.Email)) {
		return b
	}
	b.draft.Email = &email
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *ContactBuilder) Extension(key string, value any) *ContactBuilder {
	addExtension(&b.errlist, "Contact", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *ContactBuilder) Build() (*Contact, error) {
	contact := b.draft
	return &contact, b.Err()
}

// LicenseBuilder accumulates a License node. Identifier and URL are
// mutually exclusive: whichever is set first wins, and setting the other
// fails without mutating the draft.
type LicenseBuilder struct {
	draft License
	errlist
}

// NewLicense creates a License builder with the required license name.
func NewLicense(name string) *LicenseBuilder {
	return &LicenseBuilder{draft: License{Name: name}}
}

// Identifier sets an SPDX license expression. Mutually exclusive with URL.
func (b *LicenseBuilder) Identifier(identifier string) *LicenseBuilder {
	if b.record(check.SetOnce("License", "identifier", b.draft.Identifier)) {
		return b
	}
	if b.record(check.Exclusive("License", "identifier", "url", b.draft.URL)) {
		return b
	}
	b.draft.Identifier = &identifier
	return b
}

// URL sets the URL of the license text. Mutually exclusive with Identifier.
func (b *LicenseBuilder) URL(url string) *LicenseBuilder {
	if b.record(check.SetOnce("License", "url", b.draft.URL)) {
		return b
	}
	if b.record(check.Exclusive("License", "url", "identifier", b.draft.Identifier)) {
		return b
	}
	if b.record(check.URL("License", "url", url)) {
		return b
	}
	b.draft.URL = &url
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *LicenseBuilder) Extension(key string, value any) *LicenseBuilder {
	addExtension(&b.errlist, "License", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *LicenseBuilder) Build() (*License, error) {
	license := b.draft
	return &license, b.Err()
}
