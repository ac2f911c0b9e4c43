package web

// LessonPage a browser lesson served by the JSON API. content is rendered
// HTML fragments consumed by the single page app.
type LessonPage struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Short    string `json:"short"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// Lessons the full browser curriculum in display order. ids are dense and
// double as the lookup index.
func Lessons() []LessonPage {
	return catalog
}

var catalog = []LessonPage{
	{
		ID: 0, Title: "Setting Up SC with AeroLab", Short: "AeroLab Setup", Category: "setup",
		Content: `
<h3>What is AeroLab?</h3>
<p>AeroLab is Aerospike's official tool for quickly deploying development
and testing clusters. It supports Docker, AWS, and GCP backends.</p>
<p><strong>For SC development, AeroLab is the fastest way to get started!</strong></p>

<h3>Quick Setup (3 Commands)</h3>
<pre><code># 1. Set Docker as backend
aerolab config backend -t docker

# 2. Create cluster with your feature key
aerolab cluster create -n mydc -c 1 -f features.conf

# 3. Enable Strong Consistency
aerolab conf sc -n mydc</code></pre>

<h3>Verify SC is Enabled</h3>
<pre><code>aerolab cluster list

# Check SC status
docker exec aerolab-mydc_1 asinfo -v "namespace/test" | grep strong-consistency</code></pre>

<h3>Common AeroLab Commands</h3>
<pre><code>aerolab cluster list              # List clusters
aerolab cluster start -n mydc     # Start cluster
aerolab cluster stop -n mydc      # Stop cluster
aerolab cluster destroy -n mydc   # Delete cluster
aerolab attach shell -n mydc      # Shell into container</code></pre>
`,
	},
	{
		ID: 1, Title: "Introduction to Strong Consistency", Short: "Introduction", Category: "concepts",
		Content: `
<h3>What is Strong Consistency?</h3>
<p>Strong Consistency (SC) is an Aerospike Enterprise feature that guarantees:</p>
<ul>
    <li>All writes to a record are applied in a specific, sequential order</li>
    <li>Writes will NOT be re-ordered or skipped (no data loss)</li>
    <li>All clients see the same view of data at any point in time</li>
</ul>
<p>This is different from the default Available/Partition-tolerant (AP) mode
which prioritizes availability over strict consistency.</p>

<h3>SC Mode is Essential For:</h3>
<ul>
    <li>Financial transactions</li>
    <li>Inventory management</li>
    <li>Any application where data accuracy is critical</li>
</ul>

<h3>AP vs SC Mode Comparison</h3>
<table class="comparison-table">
    <tr><th>Feature</th><th>AP Mode</th><th>SC Mode</th></tr>
    <tr><td>Data Consistency</td><td>Eventually consistent</td><td>Strongly consistent</td></tr>
    <tr><td>Availability</td><td>Higher</td><td>Lower (when degraded)</td></tr>
    <tr><td>Write Ordering</td><td>May reorder</td><td>Strict ordering</td></tr>
    <tr><td>Read Guarantees</td><td>May see stale data</td><td>Always current</td></tr>
    <tr><td>Network Partition</td><td>Both sides operate</td><td>One side unavailable</td></tr>
    <tr><td>Use Case</td><td>Caching, analytics</td><td>Transactions, finance</td></tr>
</table>
`,
	},
	{
		ID: 2, Title: "Configuration and Setup", Short: "Configuration", Category: "setup",
		Content: `
<h3>Step 1: Enable SC in Namespace Configuration</h3>
<pre><code># In aerospike.conf:

namespace sc_namespace {
    strong-consistency true     # Enable SC mode
    replication-factor 2        # RF must match cluster size
    default-ttl 0               # Recommended: disable expiration
    nsup-period 0               # Disable supervisor
}</code></pre>

<h3>Key Configuration Parameters</h3>
<ul>
    <li><code>strong-consistency true</code> - Enables SC mode</li>
    <li><code>replication-factor N</code> - SC requires nodes &ge; RF (RF=1 for single-node)</li>
    <li><code>default-ttl 0</code> - Disable expiration (recommended)</li>
    <li><code>commit-to-device true</code> - Optional: ensures durability</li>
</ul>

<h3>Step 2: Configure the Roster</h3>
<p>The <strong>ROSTER</strong> is a list of nodes expected in the cluster for an SC namespace.</p>
<pre><code># View roster status
asinfo -v "roster:namespace=test"

# Using asadm (easier)
asadm> manage roster stage observed ns test
asadm> manage recluster</code></pre>

<div class="info-box">
    <strong>Key Points:</strong>
    <ul>
        <li>Roster is stored persistently in a distributed table</li>
        <li>Nodes not on the roster cannot participate in SC operations</li>
        <li>Changes require a 'recluster' command</li>
    </ul>
</div>
`,
	},
	{
		ID: 3, Title: "Basic SC Operations", Short: "Basic Ops", Category: "practice",
		Content: `
<h3>SC Write Guarantees</h3>
<p>When a write succeeds in SC mode:</p>
<ul>
    <li>The write has been replicated to all required nodes</li>
    <li>The write is durable (won't be lost)</li>
    <li>All subsequent reads will see this write</li>
    <li>The write has a specific position in the record's history</li>
</ul>

<div class="exercise-box">
    <h4>Exercise: Create and Read Records</h4>
    <p>Try this in the <strong>AQL</strong> terminal tab:</p>
    <pre><code># 1. Insert a user record
INSERT INTO test (PK, name, age) VALUES ('user1', 'Alice', 30)

# 2. Read it back with generation
SELECT *, generation FROM test WHERE PK='user1'

# 3. Update the record (INSERT overwrites)
INSERT INTO test (PK, name, age) VALUES ('user1', 'Alice', 31)

# 4. Read again - generation increased!
SELECT *, generation FROM test WHERE PK='user1'</code></pre>
    <div class="verify-box">
        <strong>Verify:</strong> The generation should have increased from 1 to 2.
        This proves your write was applied!
    </div>
</div>

<div class="exercise-box">
    <h4>Exercise: Understand Tombstones</h4>
    <p>In SC mode, deletes create tombstones to ensure consistency across replicas.</p>
    <pre><code># 1. Delete the record
DELETE FROM test WHERE PK='user1'

# 2. Try to read it (returns nothing)
SELECT * FROM test WHERE PK='user1'</code></pre>
    <p>Check tombstone count in <strong>ASADM</strong>:</p>
    <pre><code>show stat namespace like tombstones</code></pre>
</div>
`,
	},
	{
		ID: 4, Title: "Consistency Levels", Short: "Consistency", Category: "concepts",
		Content: `
<h3>Two Read Consistency Levels</h3>

<div class="card">
    <h4>1. SESSION CONSISTENCY (Default)</h4>
    <ul>
        <li>Guarantees monotonic reads within a single client session</li>
        <li>You always see your own writes (read-your-writes)</li>
        <li>Lower latency than linearizable</li>
        <li><strong>Best for most use cases</strong></li>
    </ul>
</div>

<div class="card">
    <h4>2. LINEARIZABLE CONSISTENCY</h4>
    <ul>
        <li>Global ordering visible to ALL clients simultaneously</li>
        <li>If client A reads after client B writes, A sees B's write</li>
        <li>Higher latency (requires extra coordination)</li>
        <li>Use when multiple clients must see exact same state</li>
    </ul>
</div>

<div class="exercise-box">
    <h4>Exercise: Verify Read-Your-Writes</h4>
    <pre><code># 1. Create a test record
INSERT INTO test (PK, counter) VALUES ('session_test', 0)

# 2. Immediately read it back
SELECT * FROM test WHERE PK='session_test'

# 3. Update the value
INSERT INTO test (PK, counter) VALUES ('session_test', 100)

# 4. Read again immediately
SELECT counter, generation FROM test WHERE PK='session_test'</code></pre>
    <div class="verify-box">
        <strong>Verify:</strong> You should see <code>counter=100</code> immediately.
        This is the "read-your-writes" guarantee of session consistency.
    </div>
</div>

<div class="info-box">
    Linearizable reads are ~20-50% slower due to replica verification.
    Only use when multiple clients must see the exact same state simultaneously.
</div>
`,
	},
	{
		ID: 5, Title: "Concurrent Write Ordering", Short: "Concurrency", Category: "concepts",
		Content: `
<h3>Write Ordering Guarantee</h3>
<p>In SC mode, all writes to a single record are applied in a specific, sequential order:</p>
<ul>
    <li>Concurrent writes from different clients are serialized</li>
    <li>Each write gets a unique position in the record's history</li>
    <li>No writes are lost or reordered</li>
    <li>The generation number reflects the total write count</li>
</ul>

<h3>Counter Increment Example</h3>
<p>Multiple clients incrementing a counter will never lose updates.</p>
<pre><code># Initialize counter
INSERT INTO test (PK, counter) VALUES ('counter', 0)

# Read current value
SELECT counter, generation FROM test WHERE PK='counter'

# Manually increment (in real apps, use SDK's add operation)
INSERT INTO test (PK, counter) VALUES ('counter', 1)

# Check value and generation
SELECT counter, generation FROM test WHERE PK='counter'</code></pre>

<div class="success-box">
    SC guarantees: Each write gets a unique generation. No writes are lost or reordered.
</div>
`,
	},
	{
		ID: 6, Title: "Optimistic Locking with Generations", Short: "Generations", Category: "practice",
		Content: `
<h3>Generation Numbers</h3>
<p>Every record has a <strong>GENERATION</strong> number that increments with each write.</p>

<h4>Optimistic Locking Pattern:</h4>
<ol>
    <li>Read record and note its generation</li>
    <li>Modify data locally</li>
    <li>Write back with generation check</li>
    <li>If generation changed, write fails - retry</li>
</ol>

<div class="exercise-box">
    <h4>Exercise: Track Generation Changes</h4>
    <pre><code># 1. Create an account record
INSERT INTO test (PK, balance) VALUES ('account1', 1000)

# 2. Check generation (should be 1)
SELECT balance, generation FROM test WHERE PK='account1'

# 3. Update the balance
INSERT INTO test (PK, balance) VALUES ('account1', 1100)

# 4. Check generation (should be 2)
SELECT balance, generation FROM test WHERE PK='account1'</code></pre>
    <div class="verify-box">
        <strong>Verify:</strong> Generation incremented with each write.
        This counter lets applications detect concurrent modifications.
    </div>
</div>

<div class="exercise-box">
    <h4>Exercise: Monitor Generation Conflicts</h4>
    <pre><code>show stat namespace like fail_generation
show stat namespace like fail_</code></pre>
    <div class="info-box">
        High <code>fail_generation</code> rates indicate application concurrency issues.
    </div>
</div>
`,
	},
	{
		ID: 7, Title: "Error Handling", Short: "Errors", Category: "practice",
		Content: `
<h3>InDoubt Errors</h3>
<p>The <strong>IN-DOUBT</strong> error indicates uncertainty about whether a write was applied.</p>

<div class="warning-box">
    When you get InDoubt=true:
    <ul>
        <li>The write MAY have been applied</li>
        <li>The write MAY NOT have been applied</li>
        <li>You should <strong>read the record</strong> to determine the actual state</li>
    </ul>
</div>

<h3>Common SC Errors</h3>
<table class="comparison-table">
    <tr><th>Error</th><th>Meaning</th></tr>
    <tr><td>PARTITION_UNAVAILABLE</td><td>Data partition is not accessible</td></tr>
    <tr><td>INVALID_NODE_ERROR</td><td>No node available for the partition</td></tr>
    <tr><td>TIMEOUT</td><td>Operation timed out (InDoubt possible)</td></tr>
    <tr><td>GENERATION_ERROR</td><td>Record was modified by another client</td></tr>
    <tr><td>FORBIDDEN</td><td>Operation not allowed (cluster issue)</td></tr>
    <tr><td>FAIL_FORBIDDEN</td><td>Non-durable delete blocked in SC</td></tr>
</table>

<h3>Check Error Stats in ASADM</h3>
<pre><code>show stat namespace like fail_
show stat namespace like fail_generation
show stat namespace like timeout</code></pre>
`,
	},
	{
		ID: 8, Title: "Cluster Behavior Under Failure", Short: "Failure Modes", Category: "concepts",
		Content: `
<h3>Partition States</h3>
<ul>
    <li><strong>AVAILABLE</strong> - Normal operation, data accessible</li>
    <li><strong>UNAVAILABLE</strong> - Partition cannot be accessed (nodes missing)</li>
    <li><strong>DEAD</strong> - Data potentially lost, requires manual intervention</li>
</ul>

<h3>Failure Scenarios</h3>
<div class="card">
    <h4>Scenario 1: Single Node Failure (RF=2)</h4>
    <p>All partitions remain AVAILABLE. Data re-replicates automatically.</p>
</div>
<div class="card">
    <h4>Scenario 2: Multiple Node Failures</h4>
    <p>Some partitions become UNAVAILABLE. Affected records cannot be accessed.</p>
</div>
<div class="card">
    <h4>Scenario 3: Network Partition (Split Brain)</h4>
    <p>SC prevents both sides from operating independently. Only the side with majority continues.</p>
</div>

<h3>Try It: Check Partition Status</h3>
<pre><code># In ASADM - Check partition status
show pmap
show stat namespace like dead_partitions
show stat namespace like unavailable

# View roster
show roster</code></pre>
`,
	},
	{
		ID: 9, Title: "Adding Nodes to SC Cluster", Short: "Add Nodes", Category: "operations",
		Content: `
<h3>Why Add Nodes?</h3>
<p>Adding nodes increases capacity and fault tolerance. In SC mode, new nodes must be
added to the <strong>roster</strong> to participate in data replication.</p>

<div class="warning-box">
    <strong>Prerequisites Before Adding a Node:</strong>
    <ul>
        <li>New drives must be initialized (data will be erased)</li>
        <li>Remove <code>/opt/aerospike/smd</code> folder if node was in a different cluster</li>
        <li>Configuration must match existing nodes (memory, disk allocation)</li>
        <li>Add nodes during low-traffic periods (migrations consume resources)</li>
    </ul>
</div>

<div class="info-box">
    <strong>Key Insight:</strong> When <code>cluster_size</code> &gt; <code>ns_cluster_size</code>,
    a new node has joined the cluster but is NOT yet on the SC roster.
</div>

<div class="exercise-box">
    <h4>Exercise: Roster Update Procedure</h4>
    <pre><code>enable
manage roster stage observed ns test
manage recluster
show roster
show stat service like partitions_remaining -flip</code></pre>
</div>

<h3>Best Practices</h3>
<ul>
    <li>Add one node at a time and wait for migrations to complete</li>
    <li>Avoid adding multiple nodes simultaneously (can form separate cluster)</li>
    <li>Mixed-version clusters are only supported temporarily (rolling upgrades)</li>
</ul>
`,
	},
	{
		ID: 10, Title: "Removing Nodes from SC Cluster", Short: "Remove Nodes", Category: "operations",
		Content: `
<h3>Safe Node Removal</h3>
<p>Removing nodes from an SC cluster requires careful planning to avoid data unavailability.</p>

<div class="warning-box">
    <strong>CRITICAL:</strong> Do NOT remove nodes equal to or greater than your
    replication-factor (RF) simultaneously!
    <ul>
        <li>RF=2: Can safely remove 1 node at a time</li>
        <li>RF=3: Can safely remove up to 2 nodes at a time</li>
    </ul>
</div>

<h3>Removal Procedure</h3>
<pre><code># 1. Verify no ongoing migrations
show stat service like partitions_remaining -flip

# 2. Verify roster state
show roster

# 3. Shutdown the node gracefully
systemctl stop aerospike    # or: docker stop &lt;container&gt;

# 4. Wait for migrations to complete

# 5. Update the roster
enable
manage roster stage observed ns test
manage recluster

# 6. Cleanup
asinfo -v 'tip-clear:host-port-list=&lt;removed_ip&gt;:3002'
asinfo -v 'services-alumni-reset'</code></pre>

<div class="success-box">
    <strong>Success Indicators:</strong> zero remaining migrations, correct roster
    node count, no dead or unavailable partitions.
</div>
`,
	},
	{
		ID: 11, Title: "Validating Partition Health", Short: "Partition Health", Category: "operations",
		Content: `
<h3>Understanding Partitions</h3>
<p>Aerospike distributes data across 4096 partitions. In SC mode, each partition must
have the required number of replicas to be available.</p>

<div class="exercise-box">
    <h4>Exercise: Check Partition Health</h4>
    <pre><code>show stat namespace for test like dead_partitions -flip
show stat namespace for test like unavailable_partitions -flip
show stat service like partitions_remaining -flip
show roster</code></pre>
    <div class="verify-box">
        <strong>Healthy Cluster Indicators:</strong> all three stats are 0 on
        every node and all roster nodes are <strong>Observed</strong>.
    </div>
</div>

<h3>Common Causes of Partition Issues</h3>
<div class="card">
    <h4>Unavailable Partitions</h4>
    <p>Node(s) temporarily down, network issues, or node not yet on roster.
    Restore nodes or fix network and partitions become available automatically.</p>
</div>
<div class="card">
    <h4>Dead Partitions</h4>
    <p>All replicas of a partition were lost. Requires manual <code>revive</code>
    command (accepts potential data loss).</p>
</div>
`,
	},
	{
		ID: 12, Title: "Reviving Dead Partitions", Short: "Revive Partitions", Category: "operations",
		Content: `
<h3>When to Revive Partitions</h3>
<p>The <code>revive</code> command is used when partitions are <strong>dead</strong> and you
need to restore cluster operation, accepting that some data may be lost.</p>

<div class="warning-box">
    <strong>WARNING:</strong> Reviving dead partitions acknowledges potential data loss!
    Only use when you cannot restore the missing nodes.
</div>

<h3>Revive Procedure</h3>
<pre><code># 1. Identify dead partitions
show stat namespace for test like dead -flip

# 2. Verify remaining nodes are on the roster
show roster

# 3. Execute revive
enable
manage revive ns test

# 4. Recluster to apply
manage recluster

# 5. Verify recovery
show stat namespace for test like dead -flip
show stat service like partitions_remaining -flip</code></pre>

<h3>Post-Revive Actions</h3>
<ul>
    <li>Verify application functionality</li>
    <li>Check if data needs to be reloaded</li>
    <li>Document root cause and remediation</li>
</ul>
`,
	},
	{
		ID: 13, Title: "Multi-Node Cluster Setup", Short: "Multi-Node", Category: "setup",
		Content: `
<h3>Creating a Multi-Node SC Cluster</h3>
<p>Production SC deployments typically use 3+ nodes with RF=2 or RF=3 for high availability.</p>

<h3>Using AeroLab for Multi-Node</h3>
<pre><code># Create 3-node cluster
aerolab cluster create -n mydc -c 3 -f features.conf

# Enable SC on all nodes
aerolab conf sc -n mydc

# Verify cluster formed
aerolab cluster list</code></pre>

<h3>Configure SC Roster for Multi-Node</h3>
<pre><code>enable
manage roster stage observed ns test
manage recluster
show roster</code></pre>

<h3>Recommended Configurations</h3>
<table class="comparison-table">
    <tr><th>Nodes</th><th>RF</th><th>Fault Tolerance</th><th>Use Case</th></tr>
    <tr><td>2</td><td>2</td><td>0 nodes (no tolerance)</td><td>Dev/Test only</td></tr>
    <tr><td>3</td><td>2</td><td>1 node</td><td>Small production</td></tr>
    <tr><td>5</td><td>2</td><td>1-2 nodes</td><td>Medium production</td></tr>
    <tr><td>5</td><td>3</td><td>2 nodes</td><td>High availability</td></tr>
</table>
`,
	},
	{
		ID: 14, Title: "Migrations & Rebalancing", Short: "Migrations", Category: "operations",
		Content: `
<h3>What Are Migrations?</h3>
<p>When the cluster membership changes, data must be <strong>migrated</strong> (rebalanced)
across nodes to maintain proper replication.</p>

<h3>When Migrations Occur</h3>
<ul>
    <li>Node added to cluster</li>
    <li>Node removed from cluster</li>
    <li>Node failure/recovery</li>
    <li>Roster changes</li>
</ul>

<h3>Monitoring Migrations</h3>
<pre><code>show stat service like partitions_remaining -flip
show stat service like migrate -flip
watch 2 diff show stat service like migrate</code></pre>

<h3>Migration Statistics Explained</h3>
<table class="comparison-table">
    <tr><th>Stat</th><th>Meaning</th></tr>
    <tr><td><code>migrate_partitions_remaining</code></td><td>Partitions still to be migrated</td></tr>
    <tr><td><code>migrate_tx_partitions_active</code></td><td>Outgoing migrations in progress</td></tr>
    <tr><td><code>migrate_rx_partitions_active</code></td><td>Incoming migrations in progress</td></tr>
    <tr><td><code>migrate_allowed</code></td><td>Whether migrations are enabled</td></tr>
</table>

<div class="success-box">
    Migrations are complete when <code>migrate_partitions_remaining = 0</code> on ALL nodes.
</div>
`,
	},
	{
		ID: 15, Title: "SC Monitoring & Alerting", Short: "Monitoring", Category: "operations",
		Content: `
<h3>Critical Metrics to Monitor</h3>
<p>Proactive monitoring prevents data unavailability in SC clusters.</p>

<div class="exercise-box">
    <h4>Exercise: Run a Complete Health Check</h4>
    <pre><code>show stat namespace for test like 'dead|unavailable' -flip
show stat service like clock_skew_stop_writes -flip
show stat -flip like cluster_size
show stat service like partitions_remaining -flip
show stat namespace like fail_ -flip</code></pre>
</div>

<div class="warning-box">
    <strong>Alert Immediately If:</strong>
    <ul>
        <li><code>clock_skew_stop_writes = true</code> - Writes are blocked!</li>
        <li><code>dead_partitions &gt; 0</code> - Data may be lost!</li>
        <li><code>unavailable_partitions &gt; 0</code> for extended period - Service degraded!</li>
    </ul>
</div>

<h3>Recommended Alert Thresholds</h3>
<table class="comparison-table">
    <tr><th>Metric</th><th>Warning</th><th>Critical</th></tr>
    <tr><td>dead_partitions</td><td>&gt;0</td><td>&gt;0</td></tr>
    <tr><td>unavailable_partitions</td><td>&gt;0 for 5min</td><td>&gt;0 for 15min</td></tr>
    <tr><td>migrate_partitions_remaining</td><td>&gt;1000 for 30min</td><td>&gt;1000 for 2hr</td></tr>
    <tr><td>clock_skew_stop_writes</td><td>true</td><td>true</td></tr>
    <tr><td>fail_generation rate</td><td>&gt;100/sec</td><td>&gt;1000/sec</td></tr>
</table>
`,
	},
	{
		ID: 16, Title: "Best Practices", Short: "Best Practices", Category: "reference",
		Content: `
<h3>Configuration Best Practices</h3>
<ul>
    <li>Set <code>replication-factor &gt;= 2</code> (RF=3 for critical production)</li>
    <li>Disable expiration (<code>default-ttl 0</code>) for critical data</li>
    <li>Consider <code>commit-to-device true</code> for maximum durability</li>
    <li>Use rack-awareness for multi-AZ/multi-datacenter deployments</li>
    <li>Ensure NTP is configured and monitored on all nodes</li>
</ul>

<h3>Operational Best Practices</h3>
<ul>
    <li>Use generation checks for concurrent updates</li>
    <li>Handle InDoubt errors properly - always read to verify</li>
    <li>Use durable deletes (creates tombstones)</li>
    <li>Prefer Session Consistency unless you need Linearizable</li>
    <li>Add/remove one node at a time, wait for migrations</li>
</ul>

<h3>Things to Avoid</h3>
<div class="warning-box">
    <ul>
        <li>Don't use non-durable deletes in production</li>
        <li>Don't enable client retransmit (can cause duplicates)</li>
        <li>Don't ignore InDoubt errors</li>
        <li>Don't switch from AP to SC on existing namespace</li>
        <li>Don't remove multiple nodes simultaneously (&gt;= RF)</li>
        <li>Don't use revive without understanding data loss implications</li>
    </ul>
</div>
`,
	},
	{
		ID: 17, Title: "Troubleshooting Guide", Short: "Troubleshooting", Category: "reference",
		Content: `
<h3>Common Issues and Solutions</h3>

<div class="card">
    <h4>Issue: Writes Failing with PARTITION_UNAVAILABLE</h4>
    <pre><code>show stat namespace like unavailable -flip
show roster
info</code></pre>
    <p>Check if all roster nodes are online, verify network connectivity, and
    check whether new nodes need to be added to the roster.</p>
</div>

<div class="card">
    <h4>Issue: Dead Partitions After Node Failure</h4>
    <pre><code>show stat namespace like dead -flip
show roster</code></pre>
    <p>Try to restore the failed node; if impossible, use
    <code>manage revive ns test</code> and plan recovery from backup.</p>
</div>

<div class="card">
    <h4>Issue: Cluster Size Mismatch</h4>
    <pre><code>show stat -flip like cluster_size
show roster</code></pre>
    <p>New nodes need to be added to the roster: run
    <code>manage roster stage observed ns test</code> then <code>manage recluster</code>.</p>
</div>

<div class="card">
    <h4>Issue: High Generation Conflict Rate</h4>
    <pre><code>show stat namespace like fail_generation -flip</code></pre>
    <p>Review application logic for concurrent writes and implement proper retry
    logic with generation checks.</p>
</div>

<h3>Useful Diagnostic Commands</h3>
<pre><code>info
show stat namespace for test
show config namespace for test
tail -f /var/log/aerospike/aerospike.log | grep -i error</code></pre>
`,
	},
	{
		ID: 18, Title: "Clock Synchronization", Short: "Clock Sync", Category: "concepts",
		Content: `
<h3>Why Clock Sync Matters in SC</h3>
<p>Strong Consistency relies on a <strong>hybrid clock</strong> to order writes. If clocks
drift too far apart, SC guarantees can be violated.</p>

<div class="warning-box">
    <strong>Critical Thresholds:</strong>
    <ul>
        <li><strong>15 seconds</strong> - Warning logged about clock skew</li>
        <li><strong>20 seconds</strong> - Writes are BLOCKED (forbidden error)</li>
        <li><strong>27 seconds</strong> - Potential data loss if writes were allowed</li>
    </ul>
</div>

<div class="exercise-box">
    <h4>Exercise: Check Clock Skew Status</h4>
    <pre><code>show stat service like clock_skew_stop_writes -flip</code></pre>
    <div class="verify-box"><strong>Must be <code>false</code></strong>. If <code>true</code>, fix NTP immediately!</div>
</div>

<h3>Causes of Clock Discontinuity</h3>
<ul>
    <li>Administrator error - manually setting clock far into future/past</li>
    <li>Malfunctioning NTP</li>
    <li>VM hibernation or live migration</li>
    <li>Docker/Linux process pause</li>
</ul>

<h3>Best Practices</h3>
<ul>
    <li>Use NTP on all cluster nodes and monitor its status</li>
    <li>Stop Aerospike before VM migrations</li>
    <li>Never pause Aerospike containers or processes</li>
</ul>
`,
	},
	{
		ID: 19, Title: "Clean vs Unclean Shutdowns", Short: "Shutdowns", Category: "concepts",
		Content: `
<h3>Understanding Shutdown Types</h3>
<p>How a node shuts down has significant implications for SC data integrity.</p>

<div class="card">
    <h4>Clean Shutdown</h4>
    <ul>
        <li>Initiated with <code>SIGTERM</code> signal</li>
        <li>Aerospike flushes all data to disk</li>
        <li>Logs: <code>finished clean shutdown - exiting</code></li>
        <li><strong>No data loss risk</strong></li>
    </ul>
    <pre><code>systemctl stop aerospike
docker stop &lt;container&gt;</code></pre>
</div>

<div class="card">
    <h4>Unclean Shutdown</h4>
    <ul>
        <li>Server crash, power failure, <code>kill -9</code></li>
        <li>Data in write buffer may be lost</li>
        <li><strong>Node gets "evade flag" (e-flag) on restart</strong></li>
    </ul>
</div>

<h3>The Evade Flag (E-Flag)</h3>
<p>When a node rejoins after an unclean shutdown, its data is not immediately
trusted, it is not counted in super-majority calculations, and unavailable
partitions may become <strong>dead partitions</strong>.</p>

<div class="warning-box">
    <strong>Critical Risk:</strong> If RF nodes all shut down uncleanly within
    <code>flush-max-ms</code> (default ~1 second), writes in the buffer may be lost!
</div>
`,
	},
	{
		ID: 20, Title: "Commit-to-Device", Short: "Durability", Category: "concepts",
		Content: `
<h3>What is Commit-to-Device?</h3>
<p>By default, Aerospike considers a write complete when data is in the write buffer.
<code>commit-to-device</code> ensures data is flushed to storage before acknowledging the write.</p>

<h3>With commit-to-device Enabled</h3>
<ul>
    <li>Write acknowledged only after flush to storage</li>
    <li>Simultaneous crashes cannot cause data loss</li>
    <li><strong>Never generates dead partitions from crashes</strong></li>
    <li>Performance penalty (flush on every write)</li>
</ul>

<h3>When to Use commit-to-device</h3>
<table class="comparison-table">
    <tr><th>Scenario</th><th>Recommendation</th></tr>
    <tr><td>Low write throughput</td><td>Enable - minimal performance impact</td></tr>
    <tr><td>PMem storage</td><td>Enable - no noticeable performance penalty</td></tr>
    <tr><td>Shared memory (RAM) storage</td><td>Enable - no performance penalty (7.0.0+)</td></tr>
    <tr><td>High write throughput + SSD</td><td>Consider tradeoffs carefully</td></tr>
    <tr><td>Multi-AZ with rack-awareness</td><td>May skip - reduced risk of simultaneous failures</td></tr>
</table>

<h3>Configuration</h3>
<pre><code>namespace sc_namespace {
    strong-consistency true
    commit-to-device true
}</code></pre>
`,
	},
	{
		ID: 21, Title: "Auto-Revive Feature", Short: "Auto-Revive", Category: "concepts",
		Content: `
<h3>What is Auto-Revive?</h3>
<p>Introduced in <strong>Aerospike Database 7.1.0</strong>, auto-revive automatically revives
dead partitions caused by unclean shutdowns, without operator intervention.</p>

<h3>How It Works</h3>
<ul>
    <li>Detects dead partitions caused by RF nodes with unclean shutdowns</li>
    <li>Automatically revives these partitions on startup</li>
    <li><strong>Selective:</strong> Does NOT revive partitions if storage was wiped</li>
    <li>Storage-wiped scenarios still require manual intervention</li>
</ul>

<h3>Mitigating Unclean Shutdown Effects</h3>
<ol>
    <li><strong>Enable commit-to-device</strong> - Crashes never cause dead partitions</li>
    <li><strong>Use rack-aware deployment</strong> - Reduces chance of RF nodes failing together</li>
    <li><strong>Use multi-AZ deployment</strong> - Each rack in different datacenter</li>
    <li><strong>Enable auto-revive</strong> - Automatic recovery from crash scenarios</li>
</ol>
`,
	},
	{
		ID: 22, Title: "SC Limitations & Caveats", Short: "Limitations", Category: "concepts",
		Content: `
<h3>Important SC Limitations</h3>

<div class="warning-box">
    <strong>Non-Durable Deletes, Expiration &amp; Eviction</strong>
    <p>These are <strong>NOT strongly consistent</strong>: non-durable deletes,
    data expiration (TTL), and data eviction. Without tombstones, deleted data
    may "reappear" after network issues.</p>
    <p><strong>Recommendation:</strong> Disable expiration and eviction for SC
    namespaces, use durable deletes only.</p>
</div>

<div class="card">
    <h4>UDF Limitations</h4>
    <p>UDF reads are NOT linearized, and UDF writes that fail in certain ways may
    cause inconsistencies. Use with caution in SC namespaces.</p>
</div>

<div class="card">
    <h4>Secondary Index Queries</h4>
    <p>Queries may return stale or dirty reads. This only affects queries, not
    direct record access.</p>
</div>

<div class="warning-box">
    <strong>Client Retransmit - DISABLE IT!</strong>
    <p>Retransmitted writes may be applied multiple times and can cause
    consistency violations. Handle retries in your application using
    read-modify-write with generation checks.</p>
</div>

<div class="info-box">
    SC guarantees are <strong>per-record only</strong>. There are no multi-record
    transaction semantics.
</div>
`,
	},
	{
		ID: 23, Title: "SC Error Codes", Short: "Error Codes", Category: "reference",
		Content: `
<h3>SC-Specific Error Codes</h3>
<table class="comparison-table">
    <tr><th>Error</th><th>Meaning</th><th>Action</th></tr>
    <tr><td><code>PARTITION_UNAVAILABLE</code></td><td>Server's cluster doesn't have the data partition</td><td>Wait for cluster recovery or check roster</td></tr>
    <tr><td><code>INVALID_NODE_ERROR</code></td><td>Client can't find a node for this partition</td><td>Check cluster connectivity, validate roster</td></tr>
    <tr><td><code>TIMEOUT</code></td><td>Operation timed out - may be network partition</td><td>Check <code>InDoubt</code> flag, read to verify</td></tr>
    <tr><td><code>CONNECTION_ERROR</code></td><td>Network issue - partition may be happening</td><td>Persists until partition heals</td></tr>
    <tr><td><code>FORBIDDEN</code></td><td>Writes blocked (usually clock skew)</td><td>Check clock synchronization immediately</td></tr>
</table>

<h3>The InDoubt Flag</h3>
<ul>
    <li><code>InDoubt = false</code> - Write was definitely NOT applied</li>
    <li><code>InDoubt = true</code> - Write MAY or MAY NOT have been applied</li>
</ul>

<div class="exercise-box">
    <h4>Exercise: Diagnose Error Conditions</h4>
    <pre><code>show stat namespace like 'dead|unavailable' -flip
show stat service like clock_skew -flip
show roster</code></pre>
</div>
`,
	},
	{
		ID: 24, Title: "Performance Tuning", Short: "Performance", Category: "reference",
		Content: `
<h3>SC Performance Characteristics</h3>
<p>SC mode has similar performance to AP mode with replication factor 2 and
Session Consistency (the defaults).</p>

<h3>Performance Impact Factors</h3>
<div class="card">
    <h4>Replication Factor &gt; 2</h4>
    <p>Extra "replication advise" packets sent to acting replicas on every write.
    Master doesn't wait for the response, so latency impact is minimal.</p>
</div>
<div class="card">
    <h4>Linearizable Reads</h4>
    <p>Master must verify state with every acting replica on every read.
    ~20-50% slower than session reads. <strong>Use only when absolutely necessary.</strong></p>
</div>
<div class="card">
    <h4>commit-to-device</h4>
    <p>Flush to storage on every write. Significant penalty for high-throughput SSD,
    none for PMem or shared memory storage (7.0.0+).</p>
</div>

<h3>Availability vs Performance</h3>
<table class="comparison-table">
    <tr><th>Configuration</th><th>Copies Needed</th><th>Availability in Failure</th></tr>
    <tr><td>RF=2, 2 nodes</td><td>2</td><td>None (both required)</td></tr>
    <tr><td>RF=2, 3+ nodes</td><td>2</td><td>1 node can fail</td></tr>
    <tr><td>RF=3, 5+ nodes</td><td>3</td><td>2 nodes can fail</td></tr>
</table>

<h3>Optimization Recommendations</h3>
<ul>
    <li>Use Session Consistency by default (98% of use cases)</li>
    <li>Reserve Linearizable for critical cross-client consistency needs</li>
    <li>Use RF=2 for performance, RF=3 for critical availability</li>
    <li>Monitor latency metrics and adjust client timeouts accordingly</li>
</ul>
`,
	},
}
