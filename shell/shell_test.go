package shell_test

import (
	"context"
	"strings"

	. "github.com/shekhars271991/as-strongconsistancy/shell"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stream", func() {
	It("delivers lines and the exit code", func() {
		lines := []string{}
		code, err := Stream(context.Background(), func(l string) { lines = append(lines, l) }, "sh", "-c", "echo one; echo two; exit 3")
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(3))
		Expect(lines).To(Equal([]string{"one", "two"}))
	})

	It("strips carriage returns from progress style output", func() {
		lines := []string{}
		code, err := Stream(context.Background(), func(l string) { lines = append(lines, l) }, "sh", "-c", "printf 'working\\r\\n'")
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(0))
		Expect(lines).To(Equal([]string{"working"}))
	})

	It("delivers lines beyond the default scanner token size", func() {
		lines := []string{}
		code, err := Stream(context.Background(), func(l string) { lines = append(lines, l) }, "sh", "-c", "head -c 100000 /dev/zero | tr '\\0' 'a'; echo")
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(0))
		Expect(lines).To(ContainElement(strings.Repeat("a", 100000)))
	})

	It("returns even when a line exceeds the scanner limit entirely", func() {
		// the child must not wedge on the pipe once scanning stops.
		code, err := Stream(context.Background(), func(string) {}, "sh", "-c", "head -c 3000000 /dev/zero | tr '\\0' 'a'; echo; exit 0")
		Expect(err).ToNot(HaveOccurred())
		Expect(code).To(Equal(0))
	})
})

var _ = Describe("DetectContainer", func() {
	It("returns empty when nothing matches the prefix", func() {
		Expect(DetectContainer(context.Background(), "sctutorial-test-absent-")).To(Equal(""))
	})
})
