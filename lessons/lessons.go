// Package lessons the interactive strong consistency curriculum.
package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/cluster"
)

// Environment shared dependencies handed to every lesson by the runner.
type Environment struct {
	Conn        *cluster.Conn
	Validator   *cluster.Validator
	Interactive bool
	// Pause blocks on the interactive menu until the user continues.
	// returns ux.ErrQuit when the user leaves the tutorial.
	Pause func(stage string) error
}

func (t *Environment) pause(stage string) error {
	if t.Pause == nil {
		return nil
	}
	return t.Pause(stage)
}

// Lesson a single numbered entry in the curriculum. the stage selects which
// suggested commands accompany the lesson's pauses.
type Lesson struct {
	Number int
	Stage  string
	Name   string
	Title  string
	Run    func(env *Environment) error
}

// Registry the full curriculum in teaching order.
func Registry() []Lesson {
	return []Lesson{
		{Number: 0, Stage: StageAerolab, Name: "AeroLab Setup", Title: "LESSON 0: SETTING UP SC WITH AEROLAB", Run: runAerolab},
		{Number: 1, Stage: StageIntroduction, Name: "Introduction", Title: "LESSON 1: INTRODUCTION TO STRONG CONSISTENCY", Run: runIntroduction},
		{Number: 2, Stage: StageConfiguration, Name: "Configuration", Title: "LESSON 2: CONFIGURING STRONG CONSISTENCY", Run: runConfiguration},
		{Number: 3, Stage: StageBasicOps, Name: "Basic Operations", Title: "LESSON 3: BASIC SC OPERATIONS", Run: runBasicOperations},
		{Number: 4, Stage: StageConsistency, Name: "Consistency Levels", Title: "LESSON 4: CONSISTENCY LEVELS", Run: runConsistency},
		{Number: 5, Stage: StageBasicOps, Name: "Concurrent Writes", Title: "LESSON 5: CONCURRENT WRITE ORDERING", Run: runConcurrentWrites},
		{Number: 6, Stage: StageGeneration, Name: "Generation Conflicts", Title: "LESSON 6: OPTIMISTIC LOCKING WITH GENERATIONS", Run: runGeneration},
		{Number: 7, Stage: StageErrors, Name: "Error Handling", Title: "LESSON 7: ERROR HANDLING IN SC MODE", Run: runErrorHandling},
		{Number: 8, Stage: StageCluster, Name: "Cluster Behavior", Title: "LESSON 8: CLUSTER BEHAVIOR UNDER FAILURE", Run: runClusterBehavior},
		{Number: 9, Stage: StageCluster, Name: "Best Practices", Title: "LESSON 9: BEST PRACTICES", Run: runBestPractices},
	}
}

// Select filters the curriculum to the requested lesson numbers, preserving
// teaching order. an empty request means everything except the optional
// aerolab setup lesson.
func Select(all []Lesson, numbers []int) []Lesson {
	if len(numbers) == 0 {
		selected := make([]Lesson, 0, len(all))
		for _, l := range all {
			if l.Number != 0 {
				selected = append(selected, l)
			}
		}
		return selected
	}

	requested := map[int]bool{}
	for _, n := range numbers {
		requested[n] = true
	}

	selected := make([]Lesson, 0, len(numbers))
	for _, l := range all {
		if requested[l.Number] {
			selected = append(selected, l)
		}
	}

	return selected
}
