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

package openapi30

import "rivaas.dev/oasbuild"

// Document represents the root OpenAPI 3.0.4 document. Unlike 3.1 there is
// no webhooks collection and no jsonSchemaDialect.
//
// Optional scalar fields use pointers so that an unset field is absent from
// the rendered output rather than serialized as an empty value.
type Document struct {
	// OpenAPI is the fixed version string, always "3.0.4".
	OpenAPI string `json:"openapi" yaml:"openapi"`

	// Info contains API metadata (required).
	Info *Info `json:"info" yaml:"info"`

	// Servers lists available server URLs for the API.
	Servers []*Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	// Paths maps path patterns to PathItem objects.
	Paths map[string]*PathItem `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Components holds reusable objects.
	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	// Security defines global security requirements.
	Security []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`

	// Tags provides additional metadata for operations.
	Tags []*Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// ExternalDocs provides external documentation links.
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`

	// Extensions contains specification extensions (keys prefixed with x-).
	Extensions map[string]any `json:"-" yaml:",inline"`
}

// OpenAPIVersion returns the fixed version string the document targets.
func (d *Document) OpenAPIVersion() oasbuild.Version {
	return oasbuild.Version30
}

// Info provides metadata about the API. 3.0 has no summary field.
type Info struct {
	Title          string         `json:"title" yaml:"title"`
	Description    *string        `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService *string        `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact       `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License       `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string         `json:"version" yaml:"version"`
	Extensions     map[string]any `json:"-" yaml:",inline"`
}

// Contact information for the API.
type Contact struct {
	Name       *string        `json:"name,omitempty" yaml:"name,omitempty"`
	URL        *string        `json:"url,omitempty" yaml:"url,omitempty"`
	Email      *string        `json:"email,omitempty" yaml:"email,omitempty"`
	Extensions map[string]any `json:"-" yaml:",inline"`
}

// License information for the API. 3.0 has no SPDX identifier field.
type License struct {
	Name       string         `json:"name" yaml:"name"`
	URL        *string        `json:"url,omitempty" yaml:"url,omitempty"`
	Extensions map[string]any `json:"-" yaml:",inline"`
}

// Server represents a server URL and optional description. The URL may be
// an RFC 6570-style template such as "https://{host}/v1".
type Server struct {
	URL         string                     `json:"url" yaml:"url"`
	Description *string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Variables   map[string]*ServerVariable `json:"variables,omitempty" yaml:"variables,omitempty"`
	Extensions  map[string]any             `json:"-" yaml:",inline"`
}

// ServerVariable represents a variable for server URL template
// substitution. When Enum is present it must not be empty.
type ServerVariable struct {
	Enum        []string       `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default     string         `json:"default" yaml:"default"`
	Description *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Extensions  map[string]any `json:"-" yaml:",inline"`
}

// Tag adds metadata to a single tag used by operations.
type Tag struct {
	Name         string         `json:"name" yaml:"name"`
	Description  *string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs  `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	Extensions   map[string]any `json:"-" yaml:",inline"`
}

// ExternalDocs provides external documentation links.
type ExternalDocs struct {
	Description *string        `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string         `json:"url" yaml:"url"`
	Extensions  map[string]any `json:"-" yaml:",inline"`
}

// Reference is a pointer to another node, usable wherever the schema allows
// a node-or-reference. In 3.0 a reference is a bare $ref with no override
// fields and no specification extension bag.
type Reference struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

// PathItem represents the operations available on a single path.
type PathItem struct {
	Summary     *string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Get         *Operation      `json:"get,omitempty" yaml:"get,omitempty"`
	Put         *Operation      `json:"put,omitempty" yaml:"put,omitempty"`
	Post        *Operation      `json:"post,omitempty" yaml:"post,omitempty"`
	Delete      *Operation      `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options     *Operation      `json:"options,omitempty" yaml:"options,omitempty"`
	Head        *Operation      `json:"head,omitempty" yaml:"head,omitempty"`
	Patch       *Operation      `json:"patch,omitempty" yaml:"patch,omitempty"`
	Trace       *Operation      `json:"trace,omitempty" yaml:"trace,omitempty"`
	Servers     []*Server       `json:"servers,omitempty" yaml:"servers,omitempty"`
	Parameters  []*ParameterRef `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Extensions  map[string]any  `json:"-" yaml:",inline"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary      *string                 `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description  *string                 `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs           `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	OperationID  *string                 `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters   []*ParameterRef         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody  *RequestBodyRef         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses    map[string]*ResponseRef `json:"responses,omitempty" yaml:"responses,omitempty"`
	Callbacks    map[string]*CallbackRef `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`
	Deprecated   *bool                   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security     []SecurityRequirement   `json:"security,omitempty" yaml:"security,omitempty"`
	Servers      []*Server               `json:"servers,omitempty" yaml:"servers,omitempty"`
	Extensions   map[string]any          `json:"-" yaml:",inline"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name            string                 `json:"name" yaml:"name"`
	In              ParameterLocation      `json:"in" yaml:"in"`
	Description     *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Required        *bool                  `json:"required,omitempty" yaml:"required,omitempty"`
	Deprecated      *bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	AllowEmptyValue *bool                  `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	Style           *string                `json:"style,omitempty" yaml:"style,omitempty"`
	Explode         *bool                  `json:"explode,omitempty" yaml:"explode,omitempty"`
	AllowReserved   *bool                  `json:"allowReserved,omitempty" yaml:"allowReserved,omitempty"`
	Schema          *Schema                `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example         *any                   `json:"example,omitempty" yaml:"example,omitempty"`
	Examples        map[string]*ExampleRef `json:"examples,omitempty" yaml:"examples,omitempty"`
	Content         map[string]*MediaType  `json:"content,omitempty" yaml:"content,omitempty"`
	Extensions      map[string]any         `json:"-" yaml:",inline"`
}

// ParameterLocation represents where an API parameter can be located.
type ParameterLocation string

const (
	// InQuery indicates the parameter is passed as a query string parameter.
	InQuery ParameterLocation = "query"

	// InPath indicates the parameter is part of the path template.
	InPath ParameterLocation = "path"

	// InHeader indicates the parameter is passed in the HTTP header.
	InHeader ParameterLocation = "header"

	// InCookie indicates the parameter is passed as a cookie.
	InCookie ParameterLocation = "cookie"
)

// Header represents a response or encoding header. It follows the
// Parameter structure without name and location.
type Header struct {
	Description *string                `json:"description,omitempty" yaml:"description,omitempty"`
	Required    *bool                  `json:"required,omitempty" yaml:"required,omitempty"`
	Deprecated  *bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Style       *string                `json:"style,omitempty" yaml:"style,omitempty"`
	Explode     *bool                  `json:"explode,omitempty" yaml:"explode,omitempty"`
	Schema      *Schema                `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example     *any                   `json:"example,omitempty" yaml:"example,omitempty"`
	Examples    map[string]*ExampleRef `json:"examples,omitempty" yaml:"examples,omitempty"`
	Content     map[string]*MediaType  `json:"content,omitempty" yaml:"content,omitempty"`
	Extensions  map[string]any         `json:"-" yaml:",inline"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description *string               `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
	Required    *bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Extensions  map[string]any        `json:"-" yaml:",inline"`
}

// MediaType provides schema and examples for a specific content type.
type MediaType struct {
	Schema     *Schema                `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example    *any                   `json:"example,omitempty" yaml:"example,omitempty"`
	Examples   map[string]*ExampleRef `json:"examples,omitempty" yaml:"examples,omitempty"`
	Encoding   map[string]*Encoding   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Extensions map[string]any         `json:"-" yaml:",inline"`
}

// Encoding describes serialization for a single schema property of a
// multipart or form-encoded request body.
type Encoding struct {
	ContentType   *string               `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Headers       map[string]*HeaderRef `json:"headers,omitempty" yaml:"headers,omitempty"`
	Style         *string               `json:"style,omitempty" yaml:"style,omitempty"`
	Explode       *bool                 `json:"explode,omitempty" yaml:"explode,omitempty"`
	AllowReserved *bool                 `json:"allowReserved,omitempty" yaml:"allowReserved,omitempty"`
	Extensions    map[string]any        `json:"-" yaml:",inline"`
}

// Example represents an example value with optional description. Value and
// ExternalValue are mutually exclusive.
type Example struct {
	Summary       *string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description   *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Value         *any           `json:"value,omitempty" yaml:"value,omitempty"`
	ExternalValue *string        `json:"externalValue,omitempty" yaml:"externalValue,omitempty"`
	Extensions    map[string]any `json:"-" yaml:",inline"`
}

// Response describes a single response from an API operation.
type Response struct {
	Description string                `json:"description" yaml:"description"`
	Headers     map[string]*HeaderRef `json:"headers,omitempty" yaml:"headers,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
	Links       map[string]*LinkRef   `json:"links,omitempty" yaml:"links,omitempty"`
	Extensions  map[string]any        `json:"-" yaml:",inline"`
}

// Link represents a design-time link for a response. OperationRef and
// OperationID are mutually exclusive.
type Link struct {
	OperationRef *string        `json:"operationRef,omitempty" yaml:"operationRef,omitempty"`
	OperationID  *string        `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody  *any           `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Description  *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Server       *Server        `json:"server,omitempty" yaml:"server,omitempty"`
	Extensions   map[string]any `json:"-" yaml:",inline"`
}

// Callback maps runtime expressions to the path items invoked for
// out-of-band callbacks. It serializes as a single object holding the
// expressions alongside any extensions.
type Callback struct {
	Expressions map[string]*PathItem `json:"-" yaml:"-"`
	Extensions  map[string]any       `json:"-" yaml:"-"`
}

// SecurityScheme defines a security scheme that can be used by operations.
type SecurityScheme struct {
	Type             SecuritySchemeType `json:"type" yaml:"type"`
	Description      *string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             *string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               *string            `json:"in,omitempty" yaml:"in,omitempty"`
	Scheme           *string            `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat     *string            `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	Flows            *OAuthFlows        `json:"flows,omitempty" yaml:"flows,omitempty"`
	OpenIDConnectURL *string            `json:"openIdConnectUrl,omitempty" yaml:"openIdConnectUrl,omitempty"`
	Extensions       map[string]any     `json:"-" yaml:",inline"`
}

// SecuritySchemeType is the type discriminator of a security scheme. The
// 3.1 mutualTLS type does not exist in 3.0.
type SecuritySchemeType string

const (
	// TypeAPIKey is an API key passed in a header, query, or cookie.
	TypeAPIKey SecuritySchemeType = "apiKey"

	// TypeHTTP is an HTTP authentication scheme (e.g. basic, bearer).
	TypeHTTP SecuritySchemeType = "http"

	// TypeOAuth2 is an OAuth2 flow configuration.
	TypeOAuth2 SecuritySchemeType = "oauth2"

	// TypeOpenIDConnect discovers configuration from an OpenID Connect URL.
	TypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// OAuthFlows allows configuration of the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow     `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	Password          *OAuthFlow     `json:"password,omitempty" yaml:"password,omitempty"`
	ClientCredentials *OAuthFlow     `json:"clientCredentials,omitempty" yaml:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow     `json:"authorizationCode,omitempty" yaml:"authorizationCode,omitempty"`
	Extensions        map[string]any `json:"-" yaml:",inline"`
}

// OAuthFlow contains configuration details for a supported OAuth flow.
// Scopes is required by the wire format and may be empty.
type OAuthFlow struct {
	AuthorizationURL *string           `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         *string           `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	RefreshURL       *string           `json:"refreshUrl,omitempty" yaml:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes" yaml:"scopes"`
	Extensions       map[string]any    `json:"-" yaml:",inline"`
}

// SecurityRequirement lists required security schemes. The map key is the
// scheme name and the value is the list of required scopes.
type SecurityRequirement map[string][]string

// Schema represents the 3.0 extended subset of JSON Schema. It differs
// from the 3.1 model: nullable is a boolean modifier, example is singular,
// and the exclusive bounds are boolean flags on maximum/minimum. A
// reference is expressed through the inline Ref field.
type Schema struct {
	Ref                  *string            `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Title                *string            `json:"title,omitempty" yaml:"title,omitempty"`
	Type                 *string            `json:"type,omitempty" yaml:"type,omitempty"`
	Format               *string            `json:"format,omitempty" yaml:"format,omitempty"`
	Description          *string            `json:"description,omitempty" yaml:"description,omitempty"`
	Default              *any               `json:"default,omitempty" yaml:"default,omitempty"`
	Enum                 []any              `json:"enum,omitempty" yaml:"enum,omitempty"`
	Example              *any               `json:"example,omitempty" yaml:"example,omitempty"`
	Nullable             *bool              `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	MultipleOf           *float64           `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	Maximum              *float64           `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum     *bool              `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	Minimum              *float64           `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum     *bool              `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	MaxLength            *int               `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength            *int               `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Pattern              *string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxItems             *int               `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinItems             *int               `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	UniqueItems          *bool              `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	MaxProperties        *int               `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`
	MinProperties        *int               `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Items                *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	AllOf                []*Schema          `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf                []*Schema          `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	OneOf                []*Schema          `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Not                  *Schema            `json:"not,omitempty" yaml:"not,omitempty"`
	Discriminator        *Discriminator     `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	ReadOnly             *bool              `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	WriteOnly            *bool              `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`
	Deprecated           *bool              `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	XML                  *XML               `json:"xml,omitempty" yaml:"xml,omitempty"`
	ExternalDocs         *ExternalDocs      `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	Extensions           map[string]any     `json:"-" yaml:",inline"`
}

// Discriminator aids serialization of polymorphic schemas.
type Discriminator struct {
	PropertyName string            `json:"propertyName" yaml:"propertyName"`
	Mapping      map[string]string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Extensions   map[string]any    `json:"-" yaml:",inline"`
}

// XML adds metadata for XML representations of a schema.
type XML struct {
	Name       *string        `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace  *string        `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Prefix     *string        `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Attribute  *bool          `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Wrapped    *bool          `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`
	Extensions map[string]any `json:"-" yaml:",inline"`
}

// Components holds reusable objects keyed by component name. 3.0 has no
// pathItems collection.
type Components struct {
	Schemas         map[string]*Schema            `json:"schemas,omitempty" yaml:"schemas,omitempty"`
	Responses       map[string]*ResponseRef       `json:"responses,omitempty" yaml:"responses,omitempty"`
	Parameters      map[string]*ParameterRef      `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Examples        map[string]*ExampleRef        `json:"examples,omitempty" yaml:"examples,omitempty"`
	RequestBodies   map[string]*RequestBodyRef    `json:"requestBodies,omitempty" yaml:"requestBodies,omitempty"`
	Headers         map[string]*HeaderRef         `json:"headers,omitempty" yaml:"headers,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeRef `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
	Links           map[string]*LinkRef           `json:"links,omitempty" yaml:"links,omitempty"`
	Callbacks       map[string]*CallbackRef       `json:"callbacks,omitempty" yaml:"callbacks,omitempty"`
	Extensions      map[string]any                `json:"-" yaml:",inline"`
}
