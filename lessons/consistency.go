package lessons

import (
	"fmt"
	"time"

	as "github.com/aerospike/aerospike-client-go/v7"

	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runConsistency(env *Environment) error {
	ux.Banner("LESSON 4: CONSISTENCY LEVELS")

	ux.Concept("Session vs Linearizable Consistency", consistencyLevels)

	if err := env.pause(StageConsistency); err != nil {
		return err
	}

	ux.Section("Demo: Session Consistency (Read-Your-Writes)")
	demoSessionConsistency(env)

	if err := env.pause(StageConsistency); err != nil {
		return err
	}

	ux.Section("Demo: Linearizable Reads")
	demoLinearizableReads(env)

	return env.pause(StageConsistency)
}

func demoSessionConsistency(env *Environment) {
	key, err := env.Conn.Key("session_test")
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	client := env.Conn.Client

	ux.Info("Performing sequential writes and reads...")
	ux.Info("In session consistency, you always see your own writes.")

	for i := 0; i < 5; i++ {
		if err := client.Put(nil, key, as.BinMap{"version": i, "timestamp": time.Now().UnixMilli()}); err != nil {
			ux.Failure("Error: %v", err)
			return
		}

		rec, err := client.Get(nil, key)
		if err != nil {
			ux.Failure("Error: %v", err)
			return
		}

		status := "✓"
		if rec.Bins["version"] != i {
			status = "✗"
		}
		fmt.Printf("   Write v%d → Read v%v %s\n", i, rec.Bins["version"], status)

		time.Sleep(100 * time.Millisecond)
	}

	ux.Success("Session consistency verified: All writes were immediately visible")
	safeRemove(env, key)
}

func demoLinearizableReads(env *Environment) {
	key, err := env.Conn.Key("linear_test")
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	client := env.Conn.Client

	if err := client.Put(nil, key, as.BinMap{"value": 0}); err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	const iterations = 50
	ux.Info("Comparing read latency (%d reads each)...", iterations)

	session := as.NewPolicy()
	session.ReadModeSC = as.ReadModeSCSession

	linear := as.NewPolicy()
	linear.ReadModeSC = as.ReadModeSCLinearize

	sessionTime, err := timeReads(client, session, key, iterations)
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	linearTime, err := timeReads(client, linear, key, iterations)
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	fmt.Printf("   Session consistency:      %.2fms total (%.3fms avg)\n",
		float64(sessionTime.Milliseconds()), float64(sessionTime.Microseconds())/iterations/1000)
	fmt.Printf("   Linearizable consistency: %.2fms total (%.3fms avg)\n",
		float64(linearTime.Milliseconds()), float64(linearTime.Microseconds())/iterations/1000)

	if linearTime > sessionTime && sessionTime > 0 {
		overhead := (float64(linearTime)/float64(sessionTime) - 1) * 100
		fmt.Printf("\n   Linearizable reads are ~%.1f%% slower\n", overhead)
	}

	ux.Info("Linearizable reads are slower because they must verify")
	ux.Info("with replica nodes to ensure global consistency.")

	safeRemove(env, key)
}

func timeReads(client *as.Client, policy *as.BasePolicy, key *as.Key, iterations int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := client.Get(policy, key); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

// safeRemove cleans up a demo record with a durable delete, ignoring failures.
func safeRemove(env *Environment, key *as.Key) {
	durable := as.NewWritePolicy(0, 0)
	durable.DurableDelete = true
	_, _ = env.Conn.Client.Delete(durable, key)
}
