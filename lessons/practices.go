package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runBestPractices(env *Environment) error {
	ux.Banner("LESSON 9: BEST PRACTICES")

	ux.Concept("Configuration", `
- Set replication-factor >= cluster size (RF=3 for production)
- Disable expiration (default-ttl 0) for critical data
- Consider commit-to-device for maximum durability
- Use rack-awareness for multi-AZ deployments
`)

	ux.Concept("Operations", `
- Use generation checks for concurrent updates
- Handle InDoubt errors properly, read to verify
- Use durable deletes (creates tombstones)
- Prefer Session Consistency unless you need Linearizable
`)

	ux.Concept("Monitoring", `
- Watch dead_partitions and unavailable_partitions
- Monitor client_write_error and client_read_error
- Track fail_generation for conflict rates
- Alert on clock_skew_stop_writes
`)

	ux.Concept("Cluster Management", `
- Always use clean shutdowns (SIGTERM, not SIGKILL)
- Configure NTP, clock skew > 27s can cause data loss
- Monitor dead_partitions and unavailable_partitions
- Plan roster changes carefully
`)

	ux.Concept("Avoid", `
- Don't use non-durable deletes in production
- Don't enable client retransmit (can cause duplicates)
- Don't ignore InDoubt errors
- Don't switch from AP to SC on existing namespace
`)

	return env.pause(StageCluster)
}
