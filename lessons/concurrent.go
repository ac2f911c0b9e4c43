package lessons

import (
	"fmt"
	"sync"
	"time"

	as "github.com/aerospike/aerospike-client-go/v7"

	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runConcurrentWrites(env *Environment) error {
	ux.Banner("LESSON 5: CONCURRENT WRITE ORDERING")

	ux.Concept("Write Ordering Guarantee", writeOrdering)

	if err := env.pause(StageBasicOps); err != nil {
		return err
	}

	ux.Section("Demo: Concurrent Counter Increments")
	demoConcurrentIncrements(env)

	return env.pause(StageBasicOps)
}

func demoConcurrentIncrements(env *Environment) {
	const (
		workers             = 5
		incrementsPerWorker = 20
	)

	key, err := env.Conn.Key("counter")
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	client := env.Conn.Client

	if err := client.Put(nil, key, as.BinMap{"counter": 0}); err != nil {
		ux.Failure("Error: %v", err)
		return
	}
	ux.Info("Initialized counter to 0")
	ux.Info("Starting %d workers, each doing %d increments...", workers, incrementsPerWorker)

	var (
		m       sync.Mutex
		wg      sync.WaitGroup
		results []int
		failed  int
	)

	start := time.Now()

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := 0; i < incrementsPerWorker; i++ {
				rec, err := client.Operate(nil, key,
					as.AddOp(as.NewBin("counter", 1)),
					as.GetBinOp("counter"),
				)

				m.Lock()
				if err != nil {
					failed++
				} else if observed, ok := rec.Bins["counter"].(int); ok {
					results = append(results, observed)
				}
				m.Unlock()
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	final, err := client.Get(nil, key)
	if err != nil {
		ux.Failure("Error: %v", err)
		return
	}

	expected := workers * incrementsPerWorker
	unique := map[int]bool{}
	for _, v := range results {
		unique[v] = true
	}

	fmt.Printf("   Time elapsed: %.2fs\n", elapsed.Seconds())
	fmt.Printf("   Expected final value: %d\n", expected)
	fmt.Printf("   Actual final value: %v\n", final.Bins["counter"])
	fmt.Printf("   Successful increments: %d\n", len(results))
	fmt.Printf("   Errors: %d\n", failed)

	if final.Bins["counter"] == len(results) && len(unique) == len(results) {
		ux.Success("SC VERIFIED: All increments counted, all values unique!")
		ux.Info("Each concurrent increment got a unique counter value.")
	} else {
		ux.Warning("Unique values: %d / %d", len(unique), len(results))
	}

	safeRemove(env, key)
}
