package backoff

import (
	"math"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBackoff(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Backoff Suite")
}

func testBackoff(attempts int, s Strategy, expected ...time.Duration) {
	for i := 0; i < attempts; i++ {
		Expect(s.Backoff(i)).To(Equal(expected[i]))
	}
}

var _ = Describe("Backoff", func() {
	DescribeTable("Exponential",
		testBackoff,
		Entry("should double each time", 5, Exponential(1*time.Second), 1*time.Second, 2*time.Second, 4*time.Second, 8*time.Second, 16*time.Second),
		Entry("with scaling", 3, Exponential(500*time.Millisecond), 500*time.Millisecond, 1*time.Second, 2*time.Second),
	)
	DescribeTable("Constant",
		testBackoff,
		Entry("should remain constant", 3, Constant(1*time.Second), 1*time.Second, 1*time.Second, 1*time.Second),
	)

	It("saturates instead of wrapping around", func() {
		Expect(Exponential(1 * time.Second).Backoff(math.MaxInt32)).To(Equal(time.Duration(math.MaxInt64)))
	})

	It("respects the maximum option", func() {
		s := New(Exponential(1*time.Second), Maximum(3*time.Second))
		Expect(s.Backoff(0)).To(Equal(1 * time.Second))
		Expect(s.Backoff(10)).To(Equal(3 * time.Second))
	})
})
