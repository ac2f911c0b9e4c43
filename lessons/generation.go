package lessons

import (
	"fmt"

	as "github.com/aerospike/aerospike-client-go/v7"
	"github.com/aerospike/aerospike-client-go/v7/types"

	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runGeneration(env *Environment) error {
	ux.Banner("LESSON 6: OPTIMISTIC LOCKING WITH GENERATIONS")

	ux.Concept("Generation Numbers", generationConcept)

	if err := env.pause(StageGeneration); err != nil {
		return err
	}

	ux.Section("Demo: Generation Conflict Detection")
	demoGenerationConflict(env)

	return env.pause(StageGeneration)
}

func demoGenerationConflict(env *Environment) {
	key, err := env.Conn.Key("conflict_test")
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	client := env.Conn.Client

	if err := client.Put(nil, key, as.BinMap{"value": "initial", "version": 1}); err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	header, err := client.GetHeader(nil, key)
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}
	stale := header.Generation
	ux.Info("Initial write completed, generation: %d", stale)

	ux.Info("Simulating another client's update...")
	if err := client.Put(nil, key, as.BinMap{"value": "updated_by_other", "version": 2}); err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	if header, err = client.GetHeader(nil, key); err != nil {
		ux.Failure("Error: %v", err)
		return
	}
	ux.Info("Other client updated, generation: %d", header.Generation)

	ux.Info("Attempting update with stale generation (%d)...", stale)
	ux.Code("client.Put(checked, key, bins) // GenerationPolicy: EXPECT_GEN_EQUAL")

	checked := as.NewWritePolicy(stale, 0)
	checked.GenerationPolicy = as.EXPECT_GEN_EQUAL

	werr := client.Put(checked, key, as.BinMap{"value": "my_update", "version": 3})
	switch {
	case werr == nil:
		ux.Failure("Update succeeded (unexpected!)")
	case werr.Matches(types.GENERATION_ERROR):
		ux.Success("CONFLICT DETECTED! Write rejected due to generation mismatch")
		ux.Info("This prevents overwriting another client's changes.")
	default:
		ux.Failure("Error: %v", werr)
		return
	}

	final, err := client.Get(nil, key)
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}
	fmt.Printf("\n   Final value: %v (preserved from other client)\n", final.Bins["value"])

	safeRemove(env, key)
}
