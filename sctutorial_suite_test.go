package sctutorial_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSCTutorial(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SCTutorial Suite")
}
