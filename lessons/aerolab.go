package lessons

import (
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runAerolab(env *Environment) error {
	ux.Banner("LESSON 0: SETTING UP SC WITH AEROLAB")

	ux.Concept("What is AeroLab?", `
AeroLab is Aerospike's official tool for quickly deploying development
and testing clusters. It supports Docker, AWS, and GCP backends.

For SC development, AeroLab is the fastest way to get started!
`)

	if err := env.pause(StageAerolab); err != nil {
		return err
	}

	ux.Section("Quick Setup (3 Commands)")
	ux.Text(aerolabSetup)

	if err := env.pause(StageAerolab); err != nil {
		return err
	}

	ux.Section("Multi-Node SC Cluster")
	ux.Text(aerolabMultiNode)

	if err := env.pause(StageAerolab); err != nil {
		return err
	}

	ux.Section("Verifying Your Setup")
	ux.Text(aerolabVerify)

	return env.pause(StageAerolab)
}
