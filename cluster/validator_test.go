package cluster_test

import (
	"github.com/pkg/errors"

	. "github.com/shekhars271991/as-strongconsistancy/cluster"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validator reconnect", func() {
	It("adopts the redialed client without abandoning the shared connection", func() {
		shared := &Conn{Namespace: "test", Set: "tutorial"}
		redials := 0
		v := NewValidator(shared, "aerolab-", func() (*Conn, error) {
			redials++
			return &Conn{Namespace: "test", Set: "tutorial"}, nil
		})

		_, err := v.NamespaceInfo()
		Expect(err).To(HaveOccurred())
		Expect(redials).To(Equal(1), "exactly one reconnect attempt")
		// the tutorial and lessons hold this pointer; it must stay current.
		Expect(v.Conn).To(BeIdenticalTo(shared))
	})

	It("reports the original failure when the redial fails", func() {
		shared := &Conn{Namespace: "test", Set: "tutorial"}
		v := NewValidator(shared, "aerolab-", func() (*Conn, error) {
			return nil, errors.New("dial refused")
		})

		_, err := v.NamespaceInfo()
		Expect(err).To(MatchError(ContainSubstring("not connected")))
		Expect(v.Conn).To(BeIdenticalTo(shared))
	})
})

var _ = Describe("Conn.Adopt", func() {
	It("tolerates nil and self adoption", func() {
		var missing *Conn
		missing.Adopt(&Conn{})

		shared := &Conn{Namespace: "test", Set: "tutorial"}
		shared.Adopt(shared)
		shared.Adopt(nil)
		Expect(shared.Connected()).To(BeFalse())
	})
})
