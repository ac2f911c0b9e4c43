package ux_test

import (
	"bytes"
	"strings"

	. "github.com/shekhars271991/as-strongconsistancy/ux"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Menu", func() {
	run := func(input string) (Action, error) {
		return Menu(strings.NewReader(input), &bytes.Buffer{})
	}

	DescribeTable("continue aliases",
		func(input string) {
			choice, err := run(input)
			Expect(err).ToNot(HaveOccurred())
			Expect(choice).To(Equal(ActionContinue))
		},
		Entry("empty input", "\n"),
		Entry("c", "c\n"),
		Entry("continue", "continue\n"),
		Entry("surrounding whitespace", "  continue  \n"),
		Entry("end of input", ""),
	)

	DescribeTable("quit aliases",
		func(input string) {
			_, err := run(input)
			Expect(err).To(MatchError(ErrQuit))
		},
		Entry("q", "q\n"),
		Entry("quit", "quit\n"),
		Entry("exit", "exit\n"),
	)

	DescribeTable("shell and validation choices",
		func(input string, expected Action) {
			choice, err := run(input)
			Expect(err).ToNot(HaveOccurred())
			Expect(choice).To(Equal(expected))
		},
		Entry("aql by letter", "a\n", ActionAQL),
		Entry("aql by name", "aql\n", ActionAQL),
		Entry("aql by number", "1\n", ActionAQL),
		Entry("asadm by letter", "s\n", ActionAsadm),
		Entry("asadm by number", "2\n", ActionAsadm),
		Entry("validate by letter", "v\n", ActionValidate),
		Entry("validate by name", "validate\n", ActionValidate),
	)

	It("reprompts on unrecognised input", func() {
		out := &bytes.Buffer{}
		choice, err := Menu(strings.NewReader("bogus\nv\n"), out)
		Expect(err).ToNot(HaveOccurred())
		Expect(choice).To(Equal(ActionValidate))
		Expect(out.String()).To(ContainSubstring("Invalid choice"))
	})
})
