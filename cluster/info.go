package cluster

import (
	"strconv"
	"strings"
)

// ParseInfo splits a semicolon delimited info response into key/value pairs.
// entries without an equals sign are ignored.
func ParseInfo(raw string) map[string]string {
	params := map[string]string{}

	for _, pair := range strings.Split(strings.TrimSpace(raw), ";") {
		if k, v, ok := strings.Cut(pair, "="); ok {
			params[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}

	return params
}

// Health the namespace properties the tutorial cares about.
type Health struct {
	StrongConsistency     bool
	DeadPartitions        int
	UnavailablePartitions int
	ClusterSize           int
	ReplicationFactor     string
	Objects               int
}

// HealthFromInfo extracts the health properties from a parsed namespace info
// response. absent keys read as zero values; replication factor reads as N/A.
func HealthFromInfo(params map[string]string) Health {
	h := Health{
		StrongConsistency:     params["strong-consistency"] == "true",
		DeadPartitions:        infoInt(params, "dead_partitions"),
		UnavailablePartitions: infoInt(params, "unavailable_partitions"),
		ClusterSize:           infoInt(params, "ns_cluster_size"),
		ReplicationFactor:     "N/A",
		Objects:               infoInt(params, "objects"),
	}

	if rf, ok := params["effective_replication_factor"]; ok && rf != "" {
		h.ReplicationFactor = rf
	} else if rf, ok := params["replication-factor"]; ok && rf != "" {
		h.ReplicationFactor = rf
	}

	return h
}

// Healthy reports whether the namespace is in strong consistency mode with
// every partition available.
func (t Health) Healthy() bool {
	return t.StrongConsistency && t.DeadPartitions == 0 && t.UnavailablePartitions == 0
}

func infoInt(params map[string]string, key string) int {
	n, err := strconv.Atoi(params[key])
	if err != nil {
		return 0
	}
	return n
}

// RosterNodes counts the nodes listed in a roster info response. returns zero
// when no roster is set.
func RosterNodes(raw string) int {
	for _, part := range strings.Split(strings.TrimSpace(raw), ":") {
		value, ok := strings.CutPrefix(strings.TrimSpace(part), "roster=")
		if !ok {
			continue
		}
		if value == "" || value == "null" {
			return 0
		}
		return len(strings.Split(value, ","))
	}

	return 0
}
