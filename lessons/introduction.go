package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runIntroduction(env *Environment) error {
	ux.Banner("LESSON 1: INTRODUCTION TO STRONG CONSISTENCY")

	ux.Concept("What is Strong Consistency?", introText)

	if err := env.pause(StageIntroduction); err != nil {
		return err
	}

	ux.Section("Comparing AP vs SC Mode")

	ux.Table(
		[]string{"Feature", "AP Mode", "SC Mode"},
		[][]string{
			{"Data Consistency", "Eventually consistent", "Strongly consistent"},
			{"Availability", "Higher", "Lower (when degraded)"},
			{"Write Ordering", "May reorder", "Strict ordering"},
			{"Read Guarantees", "May see stale data", "Always current"},
			{"Network Partition", "Both sides operate", "One side unavailable"},
			{"Use Case", "Caching, analytics", "Transactions, finance"},
		},
	)

	return env.pause(StageIntroduction)
}
