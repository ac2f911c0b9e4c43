package lessons

import (
	"fmt"
	"time"

	as "github.com/aerospike/aerospike-client-go/v7"
	"github.com/aerospike/aerospike-client-go/v7/types"

	"github.com/shekhars271991/as-strongconsistancy/internal/debugx"
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runBasicOperations(env *Environment) error {
	ux.Banner("LESSON 3: BASIC SC OPERATIONS")

	ux.Concept("SC Write Guarantees", writeGuarantees)

	if err := env.pause(StageBasicOps); err != nil {
		return err
	}

	ux.Section("Demo: Write and Read Operations")
	demoBasicOperations(env)

	return env.pause(StageBasicOps)
}

func demoBasicOperations(env *Environment) {
	key, err := env.Conn.Key("demo_key_1")
	if err != nil {
		ux.Failure("Operation failed: %v", err)
		return
	}

	client := env.Conn.Client

	ux.Info("Writing a record...")
	ux.Code(`client.Put(nil, key, as.BinMap{"name": "Alice", "balance": 1000})`)

	record := as.BinMap{
		"name":       "Alice",
		"balance":    1000,
		"created_at": time.Now().Format(time.RFC3339),
	}

	if err := client.Put(nil, key, record); err != nil {
		ux.Failure("Operation failed: %v", err)
		explainError(err)
		return
	}
	ux.Success("Write successful!")

	ux.Info("Reading the record back...")
	ux.Code("client.Get(nil, key)")

	rec, getErr := client.Get(nil, key)
	if getErr != nil {
		ux.Failure("Operation failed: %v", getErr)
		explainError(getErr)
		return
	}
	ux.Success("Read successful!")
	fmt.Printf("   Data: %v\n", rec.Bins)
	fmt.Printf("   Generation: %d\n", rec.Generation)
	fmt.Printf("   TTL: %d\n", rec.Expiration)

	ux.Info("Updating the record...")
	ux.Code(`client.Put(nil, key, as.BinMap{"balance": 1500})`)

	if err := client.Put(nil, key, as.BinMap{"balance": 1500}); err != nil {
		ux.Failure("Operation failed: %v", err)
		explainError(err)
		return
	}

	updated, getErr := client.Get(nil, key)
	if getErr != nil {
		ux.Failure("Operation failed: %v", getErr)
		explainError(getErr)
		return
	}
	ux.Success("Update successful!")
	fmt.Printf("   New balance: %v\n", updated.Bins["balance"])
	fmt.Printf("   Generation: %d → %d\n", rec.Generation, updated.Generation)

	// non-durable deletes are refused in SC mode unless expunge is allowed.
	ux.Info("Cleaning up with durable delete...")
	ux.Code("client.Delete(durable, key)")

	durable := as.NewWritePolicy(0, 0)
	durable.DurableDelete = true

	if _, err := client.Delete(durable, key); err != nil {
		ux.Warning("Delete requires durable_delete or allow-expunge enabled")
		return
	}
	ux.Success("Record deleted with tombstone")
}

// explainError prints a hint for the errors commonly hit in SC mode.
func explainError(err as.Error) {
	debugx.Dump(err)

	switch {
	case err.Matches(types.PARTITION_UNAVAILABLE, types.INVALID_NODE_ERROR):
		ux.Info("This partition's data is not currently accessible.")
		ux.Info("Check if nodes are missing from the cluster or roster.")
	case err.Matches(types.TIMEOUT):
		ux.Info("The operation timed out. Check if the cluster is healthy.")
		if err.IsInDoubt() {
			ux.Warning("InDoubt: The write may or may not have been applied!")
		}
	case err.Matches(types.GENERATION_ERROR):
		ux.Info("The record was modified since you last read it.")
		ux.Info("Re-read the record and retry with the new generation.")
	case err.Matches(types.FAIL_FORBIDDEN):
		ux.Info("This operation is not allowed in SC mode.")
		ux.Info("For deletes, use durable deletes or enable allow-expunge.")
	}
}
