package main

import (
	"testing"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSctutorial(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sctutorial Suite")
}

func defaultFlags() cmdTutorial {
	return cmdTutorial{
		Config:    "testdata/absent.yml",
		Host:      sctutorial.DefaultHost,
		Port:      sctutorial.DefaultPort,
		Namespace: sctutorial.DefaultNamespace,
		Set:       sctutorial.DefaultSet,
		Timeout:   sctutorial.DefaultConnectTimeout,
	}
}

var _ = Describe("tutorial configuration", func() {
	It("prefers an explicit flag over the environment", func() {
		GinkgoT().Setenv(sctutorial.EnvHost, "192.168.1.50")

		flags := defaultFlags()
		flags.Host = "10.0.0.5"

		config, err := flags.configuration()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.Host).To(Equal("10.0.0.5"))
	})

	It("prefers the environment over the defaults", func() {
		GinkgoT().Setenv(sctutorial.EnvHost, "192.168.1.50")
		GinkgoT().Setenv(sctutorial.EnvNamespace, "sc_namespace")

		config, err := defaultFlags().configuration()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.Host).To(Equal("192.168.1.50"))
		Expect(config.Namespace).To(Equal("sc_namespace"))
	})

	It("falls back to the defaults", func() {
		GinkgoT().Setenv(sctutorial.EnvHost, "")
		GinkgoT().Setenv(sctutorial.EnvNamespace, "")

		config, err := defaultFlags().configuration()
		Expect(err).ToNot(HaveOccurred())
		Expect(config.Host).To(Equal(sctutorial.DefaultHost))
		Expect(config.Port).To(Equal(sctutorial.DefaultPort))
		Expect(config.ContainerPrefix).To(Equal(sctutorial.DefaultContainerPrefix))
	})
})
