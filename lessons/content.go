package lessons

// long form concept text shown by the lessons.

const introText = `
Strong Consistency (SC) is an Aerospike Enterprise feature that guarantees:

  - All writes to a record are applied in a specific, sequential order
  - Writes will NOT be re-ordered or skipped (no data loss)
  - All clients see the same view of data at any point in time

This is different from the default Available/Partition-tolerant (AP) mode
which prioritizes availability over strict consistency.

SC Mode is essential for:
  - Financial transactions
  - Inventory management
  - Any application where data accuracy is critical
`

const rosterConcept = `
The ROSTER is a list of nodes expected to be in the cluster for an SC namespace.

Key points:
  - The roster is stored persistently in a distributed table
  - Nodes not on the roster cannot participate in SC operations
  - The roster must be configured AFTER the cluster forms
  - Changes to the roster require a 'recluster' command

Roster states:
  - roster         - Currently active roster
  - pending_roster - New roster waiting to be applied
  - observed_nodes - Nodes currently in the cluster with the namespace
`

const partitionConcept = `
Aerospike divides data into 4096 PARTITIONS. In SC mode, partition state is critical:

  - AVAILABLE    - Normal operation, data accessible
  - UNAVAILABLE  - Partition cannot be accessed (nodes missing from roster)
  - DEAD         - Data potentially lost, requires manual intervention

Dead partitions occur when:
  - RF (replication-factor) nodes crash simultaneously
  - Storage devices are wiped on RF nodes
  - Unclean shutdowns happen
`

const consistencyLevels = `
SC provides two read consistency levels:

1. SESSION CONSISTENCY (Default)
   - Guarantees monotonic reads within a single client session
   - You always see your own writes (read-your-writes)
   - Lower latency than linearizable
   - Best for most use cases

2. LINEARIZABLE CONSISTENCY
   - Global ordering visible to ALL clients simultaneously
   - If client A reads after client B writes, A sees B's write
   - Higher latency (requires extra coordination)
   - Use when multiple clients must see exact same state
`

const indoubtConcept = `
The IN-DOUBT error indicates uncertainty about whether a write was applied.

When you get InDoubt=true:
  - The write MAY have been applied
  - The write MAY NOT have been applied
  - You should read the record to determine the actual state

This happens when:
  - Network timeout occurs after sending write
  - Server crashes after receiving but before acknowledging
  - Connection drops mid-transaction
`

const aerolabSetup = `
AeroLab is the easiest way to set up an Aerospike SC cluster for development.

INSTALLATION:
  # macOS
  brew install aerospike/tap/aerolab

  # Linux (download from GitHub)
  curl -L https://github.com/aerospike/aerolab/releases/latest/download/aerolab-linux-amd64 -o aerolab
  chmod +x aerolab && sudo mv aerolab /usr/local/bin/

QUICK SC SETUP (3 commands):
  # 1. Set Docker as backend
  aerolab config backend -t docker

  # 2. Create cluster with your feature key
  aerolab cluster create -n mydc -c 1 -f /path/to/features.conf

  # 3. Enable Strong Consistency
  aerolab conf sc -n mydc

That's it! Your SC cluster is ready.

VERIFY SC IS ENABLED:
  aerolab cluster list
  # Check the ExposedPort (e.g., 3100)

  # Then verify SC:
  docker exec aerolab-mydc_1 asinfo -v "namespace/test" | grep strong-consistency
  # Should show: strong-consistency=true

COMMON AEROLAB COMMANDS:
  aerolab cluster list              # List clusters
  aerolab cluster start -n mydc     # Start cluster
  aerolab cluster stop -n mydc     # Stop cluster
  aerolab cluster destroy -n mydc   # Delete cluster
  aerolab attach shell -n mydc      # Shell into container
  aerolab attach asadm -n mydc      # Open asadm tool
`

const aerolabMultiNode = `
MULTI-NODE SC CLUSTER:
  # Create 3-node cluster
  aerolab cluster create -n mydc -c 3 -f features.conf

  # Configure SC on all nodes
  aerolab conf sc -n mydc

  # The roster is automatically configured!

CUSTOM CONFIGURATION:
  # Create cluster with custom config
  aerolab cluster create -n mydc -c 3 -f features.conf

  # Edit config (optional)
  aerolab conf edit -n mydc

  # Apply SC settings
  aerolab conf sc -n mydc

  # Restart if needed
  aerolab aerospike restart -n mydc
`

const aerolabVerify = `
# Check if AeroLab is installed
aerolab version

# List running clusters
aerolab cluster list

# Check SC is enabled on your cluster
docker exec aerolab-mydc_1 asinfo -v "namespace/test" | tr ';' '\n' | grep strong

# Expected output:
# strong-consistency=true
# strong-consistency-allow-expunge=false

# Check roster is configured
docker exec aerolab-mydc_1 asinfo -v "roster:namespace=test"

# Expected: roster=<node_id>:pending_roster=<node_id>:observed_nodes=<node_id>
`

const namespaceConfigExample = `
# In aerospike.conf:

namespace sc_namespace {
    strong-consistency true     # Enable SC mode
    replication-factor 2        # RF must match cluster size (1 for single-node)
    default-ttl 0               # Recommended: disable expiration
    nsup-period 0               # Disable supervisor

    storage-engine memory {
        file /opt/aerospike/data/sc.dat
        filesize 2G
    }
}
`

const configParameters = `
- strong-consistency true  - Enables SC mode for the namespace
- replication-factor N     - SC requires nodes >= RF. Use RF=1 for single-node,
                             RF=2+ for multi-node (RF=3 recommended for production)
- default-ttl 0            - Disable expiration (recommended for SC)
- commit-to-device true    - Optional: ensures durability on crash
`

const rosterCommands = `
# View current roster status:
asinfo -v "roster:namespace=sc_namespace"

# Set roster with observed nodes:
asinfo -v "roster-set:namespace=sc_namespace;nodes=<node_ids>"

# Apply the roster (trigger recluster):
asinfo -v "recluster:"

# Using asadm (easier):
asadm> manage roster stage observed ns sc_namespace
asadm> manage recluster
`

const writeGuarantees = `
When a write succeeds in SC mode:
  - The write has been replicated to all required nodes
  - The write is durable (won't be lost)
  - All subsequent reads will see this write
  - The write has a specific position in the record's history
`

const writeOrdering = `
In SC mode, all writes to a single record are applied in a specific,
sequential order. This means:

  - Concurrent writes from different clients are serialized
  - Each write gets a unique position in the record's history
  - No writes are lost or reordered
  - The generation number reflects the total write count
`

const generationConcept = `
Every record has a GENERATION number that increments with each write.
This enables optimistic locking (check-and-set):

  1. Read record and note its generation
  2. Modify data locally
  3. Write back with generation check
  4. If generation changed, write fails, so re-read and retry

This prevents lost updates in concurrent scenarios.
`

const indoubtHandling = `
When you receive a timeout with InDoubt=true:

  1. Don't assume the write failed
  2. Read the record to check its state
  3. Use idempotent operations when possible
  4. Use generation checks for safe retries

Example pattern:
  wp := as.NewWritePolicy(expectedGen, 0)
  wp.GenerationPolicy = as.EXPECT_GEN_EQUAL
  if err := client.Put(wp, key, bins); err != nil && err.IsInDoubt() {
      // Read to check whether the write was applied; the generation
      // tells you whether to retry.
  }
`

const failureScenarios = `
SCENARIO 1: Single Node Failure (RF=2)
  - All partitions remain AVAILABLE
  - Reads and writes continue normally
  - Data is re-replicated to remaining nodes

SCENARIO 2: Multiple Node Failures (< RF nodes remain)
  - Some partitions become UNAVAILABLE
  - Affected records cannot be read or written
  - Restore nodes or wait for recovery

SCENARIO 3: Network Partition (Split Brain)
  - SC prevents both sides from operating independently
  - Only the side with majority + roster continues
  - Other side marks partitions as unavailable
  - This PREVENTS data conflicts (unlike AP mode)

SCENARIO 4: Unclean Shutdown
  - Node is marked with "evade flag"
  - Partitions may become DEAD
  - Requires manual 'revive' command
  - Use commit-to-device to prevent data loss
`

const recoveryCommands = `
# Check partition status:
asinfo -v "namespace/sc_namespace" | grep -E "dead|unavail"

# View roster status:
asinfo -v "roster:namespace=sc_namespace"

# Revive dead partitions (use with caution):
asinfo -v "revive:namespace=sc_namespace"

# Force recluster after changes:
asinfo -v "recluster:"
`
