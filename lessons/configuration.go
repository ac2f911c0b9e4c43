package lessons

import (
	"fmt"

	"github.com/shekhars271991/as-strongconsistancy/ux"
)

func runConfiguration(env *Environment) error {
	ux.Banner("LESSON 2: CONFIGURING STRONG CONSISTENCY")

	ux.Section("Step 1: Enable SC in namespace configuration")
	ux.Text(namespaceConfigExample)
	ux.Concept("Key Configuration Parameters", configParameters)

	if err := env.pause(StageConfiguration); err != nil {
		return err
	}

	ux.Section("Step 2: Configure the Roster")
	ux.Concept("Roster Configuration", rosterConcept)
	ux.Text(rosterCommands)

	if err := env.pause(StageConfiguration); err != nil {
		return err
	}

	if env.Conn.Connected() {
		ux.Section("Current Cluster Configuration")
		showClusterInfo(env)
	}

	return env.pause(StageConfiguration)
}

func showClusterInfo(env *Environment) {
	nodes := env.Conn.Client.GetNodes()
	ux.Info("Connected nodes: %d", len(nodes))
	for _, node := range nodes {
		fmt.Printf("   • %s\n", node.GetName())
	}

	params, err := env.Validator.NamespaceInfo()
	if err != nil {
		ux.Warning("Could not get cluster info: %v", err)
		return
	}

	get := func(key string) string {
		if v := params[key]; v != "" {
			return v
		}
		return "N/A"
	}

	fmt.Printf("\n   Namespace: %s\n", env.Conn.Namespace)
	fmt.Printf("   ├── strong-consistency: %s\n", get("strong-consistency"))
	fmt.Printf("   ├── replication-factor: %s\n", get("replication-factor"))
	fmt.Printf("   ├── ns_cluster_size: %s\n", get("ns_cluster_size"))
	fmt.Printf("   ├── dead_partitions: %s\n", get("dead_partitions"))
	fmt.Printf("   └── unavailable_partitions: %s\n", get("unavailable_partitions"))
}
