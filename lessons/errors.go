package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runErrorHandling(env *Environment) error {
	ux.Banner("LESSON 7: ERROR HANDLING IN SC MODE")

	ux.Concept("InDoubt Errors", indoubtConcept)

	if err := env.pause(StageErrors); err != nil {
		return err
	}

	ux.Section("Common SC Errors")

	ux.Table(
		[]string{"Error", "Meaning"},
		[][]string{
			{"PARTITION_UNAVAILABLE", "Data partition is not accessible"},
			{"INVALID_NODE_ERROR", "No node available for the partition"},
			{"TIMEOUT", "Operation timed out (InDoubt possible)"},
			{"GENERATION_ERROR", "Record was modified by another client"},
			{"FORBIDDEN", "Operation not allowed (e.g., cluster issue)"},
			{"FAIL_FORBIDDEN", "Non-durable delete blocked in SC"},
		},
	)

	ux.Concept("Handling InDoubt", indoubtHandling)

	return env.pause(StageErrors)
}
