package main

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("renderTable", func() {
	It("should render nothing without headers", func() {
		Expect(renderTable(nil, [][]string{{"x"}})).To(BeEmpty())
	})

	It("should pad short rows", func() {
		out := renderTable([]string{"Family", "Style"}, [][]string{{"Go", "Bold"}, {"Go Mono"}})
		Expect(out).To(ContainSubstring("FAMILY"))
		Expect(out).To(ContainSubstring("Go Mono"))
		Expect(out).To(ContainSubstring("Bold"))
	})
})
