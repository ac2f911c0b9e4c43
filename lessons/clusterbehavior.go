package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runClusterBehavior(env *Environment) error {
	ux.Banner("LESSON 8: CLUSTER BEHAVIOR UNDER FAILURE")

	ux.Concept("Partition States", partitionConcept)

	if err := env.pause(StageCluster); err != nil {
		return err
	}

	ux.Section("Failure Scenarios")
	ux.Text(failureScenarios)

	if err := env.pause(StageCluster); err != nil {
		return err
	}

	ux.Section("Recovery Commands")
	ux.Text(recoveryCommands)

	return env.pause(StageCluster)
}
