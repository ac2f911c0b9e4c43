package ux_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUX(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UX Suite")
}
