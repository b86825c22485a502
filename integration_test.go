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

package oasbuild_test

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rivaas.dev/oasbuild"
	"rivaas.dev/oasbuild/openapi30"
	"rivaas.dev/oasbuild/openapi31"
)

//nolint:paralleltest // Ginkgo test suite manages its own parallelization
func TestOASBuildIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "OAS Build Integration Suite")
}

var _ = Describe("Building an OpenAPI 3.1 document", func() {
	Describe("info metadata with a licensed API", func() {
		It("accumulates contact and license details", func() {
			contact, err := openapi31.NewContact().
				Email("fred@example.com").
				Build()
			Expect(err).NotTo(HaveOccurred())

			license, err := openapi31.NewLicense("Apache-2.0").
				Identifier("Apache-2.0").
				Build()
			Expect(err).NotTo(HaveOccurred())

			info, err := openapi31.NewInfo("Test API", "1.2.3").
				Contact(contact).
				License(license).
				Build()
			Expect(err).NotTo(HaveOccurred())

			Expect(info.Title).To(Equal("Test API"))
			Expect(info.Version).To(Equal("1.2.3"))
			Expect(info.Contact.Email).To(HaveValue(Equal("fred@example.com")))
			Expect(info.License.Identifier).To(HaveValue(Equal("Apache-2.0")))
			Expect(info.License.URL).To(BeNil())
		})

		It("refuses a license url once the identifier is set", func() {
			license, err := openapi31.NewLicense("Apache-2.0").
				Identifier("Apache-2.0").
				URL("https://www.apache.org/licenses/LICENSE-2.0").
				Build()

			Expect(err).To(MatchError(oasbuild.ErrExclusive))

			var excl *oasbuild.ExclusiveError
			Expect(errors.As(err, &excl)).To(BeTrue())
			Expect(excl.Field).To(Equal("url"))
			Expect(excl.Other).To(Equal("identifier"))

			Expect(license.Identifier).To(HaveValue(Equal("Apache-2.0")))
			Expect(license.URL).To(BeNil())
		})
	})

	Describe("a document with one path", func() {
		It("serializes the full path tree to JSON", func() {
			info, err := openapi31.NewInfo("Test API", "1.2.3").Build()
			Expect(err).NotTo(HaveOccurred())

			ok, err := openapi31.NewResponse("A list of widgets").Build()
			Expect(err).NotTo(HaveOccurred())

			get, err := openapi31.NewOperation().
				OperationID("listWidgets").
				AddResponse("200", ok).
				Build()
			Expect(err).NotTo(HaveOccurred())

			item, err := openapi31.NewPathItem().Get(get).Build()
			Expect(err).NotTo(HaveOccurred())

			doc, err := openapi31.NewDocument(info).
				AddPath("/widgets", item).
				Build()
			Expect(err).NotTo(HaveOccurred())

			out, err := oasbuild.ToJSON(doc)
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]any
			Expect(json.Unmarshal(out, &decoded)).To(Succeed())
			Expect(decoded["openapi"]).To(Equal("3.1.2"))

			Expect(decoded).To(HaveKey("paths"))
			paths := decoded["paths"].(map[string]any)
			Expect(paths).To(HaveKey("/widgets"))
			get200 := paths["/widgets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
			Expect(get200).To(HaveKey("200"))
		})
	})
})

var _ = Describe("Building an OpenAPI 3.0 document", func() {
	It("emits the 3.0 version string and url-based license", func() {
		license, err := openapi30.NewLicense("Apache-2.0").
			URL("https://www.apache.org/licenses/LICENSE-2.0").
			Build()
		Expect(err).NotTo(HaveOccurred())

		contact, err := openapi30.NewContact().
			Email("fred@example.com").
			Build()
		Expect(err).NotTo(HaveOccurred())

		info, err := openapi30.NewInfo("Test API", "1.2.3").
			Contact(contact).
			License(license).
			Build()
		Expect(err).NotTo(HaveOccurred())

		ok, err := openapi30.NewResponse("A list of widgets").Build()
		Expect(err).NotTo(HaveOccurred())

		get, err := openapi30.NewOperation().AddResponse("200", ok).Build()
		Expect(err).NotTo(HaveOccurred())

		item, err := openapi30.NewPathItem().Get(get).Build()
		Expect(err).NotTo(HaveOccurred())

		doc, err := openapi30.NewDocument(info).
			AddPath("/widgets", item).
			Build()
		Expect(err).NotTo(HaveOccurred())

		out, err := oasbuild.ToJSON(doc)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(out, &decoded)).To(Succeed())
		Expect(decoded["openapi"]).To(Equal("3.0.4"))

		paths := decoded["paths"].(map[string]any)
		responses := paths["/widgets"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
		Expect(responses).To(HaveKey("200"))
	})

	It("renders YAML with extensions inlined", func() {
		info, err := openapi30.NewInfo("Test API", "1.2.3").
			Extension("x-audience", "partner").
			Build()
		Expect(err).NotTo(HaveOccurred())

		doc, err := openapi30.NewDocument(info).Build()
		Expect(err).NotTo(HaveOccurred())

		out, err := oasbuild.ToYAML(doc)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(ContainSubstring("x-audience: partner"))
		Expect(string(out)).To(ContainSubstring("openapi: 3.0.4"))
	})
})
