package sctutorial_test

import (
	"time"

	. "github.com/shekhars271991/as-strongconsistancy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func environmentSet1(k string) string {
	switch k {
	case "SC_HOST":
		return "10.0.0.5"
	case "SC_NAMESPACE":
		return "bank"
	default:
		return ""
	}
}

var _ = Describe("Config", func() {
	It("expands environment variables while decoding", func() {
		raw := []byte("host: \"${SC_HOST}\"\nnamespace: \"${SC_NAMESPACE}\"\nport: 3100\n")

		out := NewConfig()
		Expect(ExpandEnvironAndDecode(raw, &out, environmentSet1)).ToNot(HaveOccurred())
		Expect(out.Host).To(Equal("10.0.0.5"))
		Expect(out.Namespace).To(Equal("bank"))
		Expect(out.Port).To(Equal(3100))
	})

	It("retains defaults for fields the file omits", func() {
		out := NewConfig()
		Expect(ExpandEnvironAndDecode([]byte("namespace: inventory\n"), &out, environmentSet1)).ToNot(HaveOccurred())
		Expect(out.Namespace).To(Equal("inventory"))
		Expect(out.Set).To(Equal(DefaultSet))
		Expect(out.Timeout).To(Equal(5 * time.Second))
	})

	It("ignores missing configuration files", func() {
		out := NewConfig()
		Expect(ExpandAndDecodeFile("does-not-exist.yml", &out)).ToNot(HaveOccurred())
		Expect(out).To(Equal(NewConfig()))
	})
})
