package cluster

import (
	"context"
	"fmt"
	"time"

	as "github.com/aerospike/aerospike-client-go/v7"
	"github.com/pkg/errors"

	"github.com/shekhars271991/as-strongconsistancy/backoff"
	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/shell"
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

// Validator runs the cluster health checks. a Redial hook, when provided,
// grants a single reconnect attempt before an info failure is reported.
type Validator struct {
	Conn            *Conn
	Redial          func() (*Conn, error)
	ContainerPrefix string
	wait            backoff.Strategy
}

// NewValidator builds a validator over the connection.
func NewValidator(conn *Conn, prefix string, redial func() (*Conn, error)) *Validator {
	return &Validator{
		Conn:            conn,
		Redial:          redial,
		ContainerPrefix: prefix,
		wait:            backoff.New(backoff.Constant(500 * time.Millisecond)),
	}
}

// NamespaceInfo queries the namespace info from any responsive node.
func (t *Validator) NamespaceInfo() (map[string]string, error) {
	params, err := t.queryInfo()
	if err == nil {
		return params, nil
	}

	if t.Redial == nil {
		return nil, err
	}

	// one reconnect attempt, then report the original failure.
	time.Sleep(t.wait.Backoff(0))

	next, rerr := t.Redial()
	if rerr != nil {
		return nil, errorsx.Compact(err, rerr)
	}

	// the tutorial and lessons share this Conn; adopt the fresh client in
	// place so their references stay usable.
	t.Conn.Adopt(next)

	return t.queryInfo()
}

func (t *Validator) queryInfo() (map[string]string, error) {
	if !t.Conn.Connected() {
		return nil, errors.New("not connected to the cluster")
	}

	var (
		lasterr error
		request = "namespace/" + t.Conn.Namespace
		policy  = as.NewInfoPolicy()
	)

	for _, node := range t.Conn.Client.GetNodes() {
		m, err := node.RequestInfo(policy, request)
		if err != nil {
			lasterr = err
			continue
		}

		if raw := m[request]; raw != "" {
			return ParseInfo(raw), nil
		}
	}

	return nil, errorsx.Compact(lasterr, errors.Errorf("no node answered '%s'", request))
}

// VerifySC reports whether the namespace runs in strong consistency mode with
// every partition available.
func (t *Validator) VerifySC() (Health, error) {
	params, err := t.NamespaceInfo()
	if err != nil {
		return Health{}, err
	}

	return HealthFromInfo(params), nil
}

// Validate runs the full health check, printing each result. compact mode
// skips the roster inspection. reports overall health.
func (t *Validator) Validate(ctx context.Context, compact bool) bool {
	if !compact {
		ux.Section("Cluster Health Validation")
	}

	if !t.Conn.Connected() {
		ux.Failure("Not connected to the cluster")
		return false
	}
	ux.Success("Client connection: OK")

	health, err := t.VerifySC()
	if err != nil {
		ux.Failure("Namespace info query failed: %v", err)
		return false
	}

	if health.StrongConsistency {
		ux.Success("Strong consistency: enabled on namespace '%s'", t.Conn.Namespace)
	} else {
		ux.Failure("Strong consistency: NOT enabled on namespace '%s'", t.Conn.Namespace)
	}

	if health.DeadPartitions == 0 && health.UnavailablePartitions == 0 {
		ux.Success("Partitions: all available (dead=0, unavailable=0)")
	} else {
		ux.Failure("Partitions: dead=%d, unavailable=%d", health.DeadPartitions, health.UnavailablePartitions)
	}

	if !compact {
		t.validateRoster(ctx, health)
	}

	if healthy := health.Healthy(); healthy {
		ux.Success("Cluster is healthy for strong consistency workloads")
		return true
	}

	ux.Warning("Cluster is NOT healthy; see the failures above")
	return false
}

func (t *Validator) validateRoster(ctx context.Context, health Health) {
	container := shell.DetectContainer(ctx, t.ContainerPrefix)
	if container == "" {
		ux.Warning("Roster: no container detected, skipping inspection")
		return
	}

	raw, err := shell.Asinfo(ctx, container, fmt.Sprintf("roster:namespace=%s", t.Conn.Namespace))
	if err != nil {
		ux.Warning("Roster: inspection failed: %v", err)
		return
	}

	if nodes := RosterNodes(raw); nodes > 0 {
		ux.Success("Roster: %d node(s) enrolled, cluster size %d", nodes, health.ClusterSize)
	} else {
		ux.Failure("Roster: empty; set it with 'asadm -e \"manage roster stage observed ns %s\"'", t.Conn.Namespace)
	}
}
