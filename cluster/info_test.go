package cluster_test

import (
	. "github.com/shekhars271991/as-strongconsistancy/cluster"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseInfo", func() {
	It("splits semicolon delimited pairs", func() {
		params := ParseInfo("ns_cluster_size=3;strong-consistency=true;objects=42")
		Expect(params).To(HaveKeyWithValue("ns_cluster_size", "3"))
		Expect(params).To(HaveKeyWithValue("strong-consistency", "true"))
		Expect(params).To(HaveKeyWithValue("objects", "42"))
	})

	It("ignores entries without an equals sign", func() {
		params := ParseInfo("ok;foo=bar;;")
		Expect(params).To(HaveLen(1))
		Expect(params).To(HaveKeyWithValue("foo", "bar"))
	})

	It("trims surrounding whitespace", func() {
		params := ParseInfo(" foo = bar \n")
		Expect(params).To(HaveKeyWithValue("foo", "bar"))
	})
})

var _ = Describe("HealthFromInfo", func() {
	It("extracts the strong consistency properties", func() {
		h := HealthFromInfo(ParseInfo("strong-consistency=true;dead_partitions=0;unavailable_partitions=0;ns_cluster_size=3;effective_replication_factor=2;objects=7"))
		Expect(h.StrongConsistency).To(BeTrue())
		Expect(h.DeadPartitions).To(Equal(0))
		Expect(h.UnavailablePartitions).To(Equal(0))
		Expect(h.ClusterSize).To(Equal(3))
		Expect(h.ReplicationFactor).To(Equal("2"))
		Expect(h.Objects).To(Equal(7))
		Expect(h.Healthy()).To(BeTrue())
	})

	It("defaults absent keys to zero values", func() {
		h := HealthFromInfo(map[string]string{})
		Expect(h.StrongConsistency).To(BeFalse())
		Expect(h.DeadPartitions).To(Equal(0))
		Expect(h.UnavailablePartitions).To(Equal(0))
		Expect(h.ReplicationFactor).To(Equal("N/A"))
		Expect(h.Healthy()).To(BeFalse())
	})

	It("falls back to the configured replication factor", func() {
		h := HealthFromInfo(map[string]string{"replication-factor": "2"})
		Expect(h.ReplicationFactor).To(Equal("2"))
	})

	DescribeTable("Healthy",
		func(raw string, expected bool) {
			Expect(HealthFromInfo(ParseInfo(raw)).Healthy()).To(Equal(expected))
		},
		Entry("all clear", "strong-consistency=true;dead_partitions=0;unavailable_partitions=0", true),
		Entry("sc disabled", "strong-consistency=false;dead_partitions=0;unavailable_partitions=0", false),
		Entry("dead partitions", "strong-consistency=true;dead_partitions=2;unavailable_partitions=0", false),
		Entry("unavailable partitions", "strong-consistency=true;dead_partitions=0;unavailable_partitions=9", false),
	)
})

var _ = Describe("RosterNodes", func() {
	DescribeTable("counting",
		func(raw string, expected int) {
			Expect(RosterNodes(raw)).To(Equal(expected))
		},
		Entry("three nodes", "roster=A1,A2,A3:pending_roster=A1,A2,A3:observed_nodes=A1,A2,A3", 3),
		Entry("single node", "roster=BB9:pending_roster=BB9", 1),
		Entry("null roster", "roster=null:pending_roster=null", 0),
		Entry("no roster key", "observed_nodes=A1,A2", 0),
		Entry("empty input", "", 0),
	)
})
