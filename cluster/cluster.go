// Package cluster talks to the aerospike cluster: connection lifecycle,
// info protocol parsing and the strong consistency health checks.
package cluster

import (
	"time"

	as "github.com/aerospike/aerospike-client-go/v7"
	"github.com/pkg/errors"
)

// Conn an established client bound to the tutorial namespace and set.
type Conn struct {
	Client    *as.Client
	Namespace string
	Set       string
}

// Connect dials the cluster and returns the bound connection.
func Connect(host string, port int, namespace, set string, timeout time.Duration) (*Conn, error) {
	var (
		err    error
		client *as.Client
	)

	policy := as.NewClientPolicy()
	policy.Timeout = timeout
	policy.UseServicesAlternate = true

	if client, err = as.NewClientWithPolicy(policy, host, port); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s:%d", host, port)
	}

	return &Conn{Client: client, Namespace: namespace, Set: set}, nil
}

// Key builds a key in the bound namespace and set.
func (t *Conn) Key(pk string) (*as.Key, error) {
	k, err := as.NewKey(t.Namespace, t.Set, pk)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build key '%s'", pk)
	}
	return k, nil
}

// Adopt takes over the other connection's client, closing the current one.
// callers holding this Conn keep working across a reconnect.
func (t *Conn) Adopt(other *Conn) {
	if t == nil || other == nil || t == other {
		return
	}

	if t.Client != nil {
		t.Client.Close()
	}

	t.Client = other.Client
	other.Client = nil
}

// Connected reports whether the client still holds a live cluster connection.
func (t *Conn) Connected() bool {
	return t != nil && t.Client != nil && t.Client.IsConnected()
}

func (t *Conn) Close() {
	if t == nil || t.Client == nil {
		return
	}
	t.Client.Close()
}
