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
	"rivaas.dev/oasbuild"
	"rivaas.dev/oasbuild/internal/check"
)

// SecuritySchemeBuilder accumulates a SecurityScheme node.
type SecuritySchemeBuilder struct {
	draft SecurityScheme
	errlist
}

// NewSecurityScheme creates a SecurityScheme builder with the required
// type discriminator. An unknown type is recorded as a failure
// immediately.
func NewSecurityScheme(typ SecuritySchemeType) *SecuritySchemeBuilder {
	b := &SecuritySchemeBuilder{draft: SecurityScheme{Type: typ}}
	switch typ {
	case TypeAPIKey, TypeHTTP, TypeOAuth2, TypeOpenIDConnect, TypeMutualTLS:
	default:
		b.record(&oasbuild.ValueError{
			Node:   "SecurityScheme",
			Field:  "type",
			Value:  string(typ),
			Reason: "must be one of apiKey, http, oauth2, openIdConnect, mutualTLS",
		})
	}
	return b
}

// Description sets documentation for the security scheme.
func (b *SecuritySchemeBuilder) Description(description string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "description", b.draft.Description)) {
		return b
	}
	b.draft.Description = &description
	return b
}

// Name sets the parameter name carrying the API key (type apiKey).
func (b *SecuritySchemeBuilder) Name(name string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "name", b.draft.Name)) {
		return b
	}
	b.draft.Name = &name
	return b
}

// In sets the API key location: "header", "query", or "cookie".
func (b *SecuritySchemeBuilder) In(in string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "in", b.draft.In)) {
		return b
	}
	b.draft.In = &in
	return b
}

// Scheme sets the HTTP authentication scheme (type http).
func (b *SecuritySchemeBuilder) Scheme(scheme string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "scheme", b.draft.Scheme)) {
		return b
	}
	b.draft.Scheme = &scheme
	return b
}

// BearerFormat hints at the bearer token format, e.g. "JWT".
func (b *SecuritySchemeBuilder) BearerFormat(format string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "bearerFormat", b.draft.BearerFormat)) {
		return b
	}
	b.draft.BearerFormat = &format
	return b
}

// Flows sets the OAuth2 flow configuration (type oauth2).
func (b *SecuritySchemeBuilder) Flows(flows *OAuthFlows) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "flows", b.draft.Flows)) {
		return b
	}
	b.draft.Flows = flows
	return b
}

// OpenIDConnectURL sets the OpenID Connect discovery URL (type
// openIdConnect).
func (b *SecuritySchemeBuilder) OpenIDConnectURL(url string) *SecuritySchemeBuilder {
	if b.record(check.SetOnce("SecurityScheme", "openIdConnectUrl", b.draft.OpenIDConnectURL)) {
		return b
	}
	if b.record(check.URL("SecurityScheme", "openIdConnectUrl", url)) {
		return b
	}
	b.draft.OpenIDConnectURL = &url
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *SecuritySchemeBuilder) Extension(key string, value any) *SecuritySchemeBuilder {
	addExtension(&b.errlist, "SecurityScheme", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *SecuritySchemeBuilder) Build() (*SecurityScheme, error) {
	scheme := b.draft
	return &scheme, b.Err()
}

// OAuthFlowsBuilder accumulates an OAuthFlows node.
type OAuthFlowsBuilder struct {
	draft OAuthFlows
	errlist
}

// NewOAuthFlows creates an empty OAuthFlows builder. At least one flow
// should be configured for a usable oauth2 scheme.
func NewOAuthFlows() *OAuthFlowsBuilder {
	return &OAuthFlowsBuilder{}
}

// Implicit sets the OAuth Implicit flow configuration.
func (b *OAuthFlowsBuilder) Implicit(flow *OAuthFlow) *OAuthFlowsBuilder {
	if b.record(check.SetOnce("OAuthFlows", "implicit", b.draft.Implicit)) {
		return b
	}
	b.draft.Implicit = flow
	return b
}

// Password sets the Resource Owner Password flow configuration.
func (b *OAuthFlowsBuilder) Password(flow *OAuthFlow) *OAuthFlowsBuilder {
	if b.record(check.SetOnce("OAuthFlows", "password", b.draft.Password)) {
		return b
	}
	b.draft.Password = flow
	return b
}

// ClientCredentials sets the Client Credentials flow configuration.
func (b *OAuthFlowsBuilder) ClientCredentials(flow *OAuthFlow) *OAuthFlowsBuilder {
	if b.record(check.SetOnce("OAuthFlows", "clientCredentials", b.draft.ClientCredentials)) {
		return b
	}
	b.draft.ClientCredentials = flow
	return b
}

// AuthorizationCode sets the Authorization Code flow configuration.
func (b *OAuthFlowsBuilder) AuthorizationCode(flow *OAuthFlow) *OAuthFlowsBuilder {
	if b.record(check.SetOnce("OAuthFlows", "authorizationCode", b.draft.AuthorizationCode)) {
		return b
	}
	b.draft.AuthorizationCode = flow
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *OAuthFlowsBuilder) Extension(key string, value any) *OAuthFlowsBuilder {
	addExtension(&b.errlist, "OAuthFlows", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *OAuthFlowsBuilder) Build() (*OAuthFlows, error) {
	flows := b.draft
	return &flows, b.Err()
}

// OAuthFlowBuilder accumulates an OAuthFlow node.
type OAuthFlowBuilder struct {
	draft OAuthFlow
	errlist
}

// NewOAuthFlow creates an OAuthFlow builder. The scopes map is required by
// the wire format and starts empty.
func NewOAuthFlow() *OAuthFlowBuilder {
	return &OAuthFlowBuilder{draft: OAuthFlow{Scopes: map[string]string{}}}
}

// AuthorizationURL sets the authorization endpoint (implicit and
// authorizationCode flows).
func (b *OAuthFlowBuilder) AuthorizationURL(url string) *OAuthFlowBuilder {
	if b.record(check.SetOnce("OAuthFlow", "authorizationUrl", b.draft.AuthorizationURL)) {
		return b
	}
	if b.record(check.URL("OAuthFlow", "authorizationUrl", url)) {
		return b
	}
	b.draft.AuthorizationURL = &url
	return b
}

// TokenURL sets the token endpoint (password, clientCredentials, and
// authorizationCode flows).
func (b *OAuthFlowBuilder) TokenURL(url string) *OAuthFlowBuilder {
	if b.record(check.SetOnce("OAuthFlow", "tokenUrl", b.draft.TokenURL)) {
		return b
	}
	if b.record(check.URL("OAuthFlow", "tokenUrl", url)) {
		return b
	}
	b.draft.TokenURL = &url
	return b
}

// RefreshURL sets the endpoint for obtaining refresh tokens.
func (b *OAuthFlowBuilder) RefreshURL(url string) *OAuthFlowBuilder {
	if b.record(check.SetOnce("OAuthFlow", "refreshUrl", b.draft.RefreshURL)) {
		return b
	}
	if b.record(check.URL("OAuthFlow", "refreshUrl", url)) {
		return b
	}
	b.draft.RefreshURL = &url
	return b
}

// AddScope adds a scope name with its description. Scope names are unique
// per flow.
func (b *OAuthFlowBuilder) AddScope(name, description string) *OAuthFlowBuilder {
	if b.record(check.UniqueKey("OAuthFlow", "scopes", b.draft.Scopes, name)) {
		return b
	}
	b.draft.Scopes[name] = description
	return b
}

// Extension adds one specification extension (key must start with "x-").
func (b *OAuthFlowBuilder) Extension(key string, value any) *OAuthFlowBuilder {
	addExtension(&b.errlist, "OAuthFlow", &b.draft.Extensions, key, value)
	return b
}

// Build returns the accumulated node and any recorded failures.
func (b *OAuthFlowBuilder) Build() (*OAuthFlow, error) {
	flow := b.draft
	return &flow, b.Err()
}

// SecurityRequirementBuilder accumulates a SecurityRequirement: scheme
// names mapped to required scope lists.
type SecurityRequirementBuilder struct {
	draft SecurityRequirement
	errlist
}

// NewSecurityRequirement creates an empty SecurityRequirement builder.
func NewSecurityRequirement() *SecurityRequirementBuilder {
	return &SecurityRequirementBuilder{draft: SecurityRequirement{}}
}

// Scheme adds a scheme name with its required scopes. Pass no scopes for
// schemes that do not use them. Scheme names are unique per requirement.
func (b *SecurityRequirementBuilder) Scheme(name string, scopes ...string) *SecurityRequirementBuilder {
	if b.record(check.UniqueKey("SecurityRequirement", "schemes", b.draft, name)) {
		return b
	}
	if scopes == nil {
		scopes = []string{}
	}
	b.draft[name] = scopes
	return b
}

// Build returns the accumulated requirement and any recorded failures.
func (b *SecurityRequirementBuilder) Build() (SecurityRequirement, error) {
	req := make(SecurityRequirement, len(b.draft))
	for name, scopes := range b.draft {
		req[name] = scopes
	}
	return req, b.Err()
}
