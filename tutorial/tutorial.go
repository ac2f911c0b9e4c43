// Package tutorial drives the interactive terminal curriculum.
package tutorial

import (
	"context"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/cluster"
	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/lessons"
	"github.com/shekhars271991/as-strongconsistancy/shell"
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

// Tutorial runs the curriculum against a cluster.
type Tutorial struct {
	Config      sctutorial.Config
	Interactive bool

	conn      *cluster.Conn
	validator *cluster.Validator
}

// New builds a tutorial over the configuration.
func New(config sctutorial.Config, interactive bool) *Tutorial {
	return &Tutorial{Config: config, Interactive: interactive}
}

// Connect dials the cluster and prepares the validator.
func (t *Tutorial) Connect() error {
	conn, err := t.dial()
	if err != nil {
		return err
	}

	t.conn = conn
	t.validator = cluster.NewValidator(conn, t.Config.ContainerPrefix, t.dial)
	ux.Success("Connected to Aerospike cluster at %s:%d", t.Config.Host, t.Config.Port)

	return nil
}

func (t *Tutorial) dial() (*cluster.Conn, error) {
	return cluster.Connect(t.Config.Host, t.Config.Port, t.Config.Namespace, t.Config.Set, t.Config.Timeout)
}

// Disconnect closes the cluster connection.
func (t *Tutorial) Disconnect() {
	if t.conn == nil {
		return
	}
	t.conn.Close()
	ux.Info("Disconnected from Aerospike")
}

// ShowClusterStatus prints the namespace's SC status, reporting whether
// strong consistency is enabled.
func (t *Tutorial) ShowClusterStatus() bool {
	ux.Section("Cluster Status Check")

	health, err := t.validator.VerifySC()
	if err != nil {
		ux.Failure("Could not query namespace info: %v", err)
		return false
	}

	fmt.Printf("\n   Namespace: %s\n", t.Config.Namespace)
	if health.StrongConsistency {
		ux.Success("Strong Consistency: true")
	} else {
		ux.Failure("Strong Consistency: false")
	}
	fmt.Printf("   ├── Replication Factor: %s\n", health.ReplicationFactor)
	fmt.Printf("   ├── NS Cluster Size: %d\n", health.ClusterSize)
	fmt.Printf("   ├── Dead Partitions: %d\n", health.DeadPartitions)
	fmt.Printf("   └── Unavailable Partitions: %d\n", health.UnavailablePartitions)

	return health.StrongConsistency
}

// Run executes the requested lessons, or the default curriculum when none
// are named. returns ux.ErrQuit when the user leaves early.
func (t *Tutorial) Run(ctx context.Context, numbers []int, skipSCCheck bool) error {
	ux.Banner("AEROSPIKE STRONG CONSISTENCY TUTORIAL")
	t.welcome()

	if err := t.Connect(); err != nil {
		ux.Failure("Failed to connect: %v", err)
		ux.Info("Make sure the Aerospike cluster is running and accessible")
		ux.Info("To set up an SC cluster with AeroLab:")
		ux.Code("aerolab config backend -t docker")
		ux.Code("aerolab cluster create -n mydc -c 1 -f features.conf")
		ux.Code("aerolab conf sc -n mydc")
		return errors.New("cannot proceed without cluster connection")
	}
	defer t.Disconnect()

	env := &lessons.Environment{
		Conn:        t.conn,
		Validator:   t.validator,
		Interactive: t.Interactive,
		Pause: func(stage string) error {
			return t.pause(ctx, stage)
		},
	}

	if !skipSCCheck {
		if err := t.checkStrongConsistency(ctx, env); err != nil {
			return err
		}
	}

	for _, lesson := range lessons.Select(lessons.Registry(), numbers) {
		if err := lesson.Run(env); err != nil {
			return err
		}
	}

	t.complete()
	return nil
}

func (t *Tutorial) checkStrongConsistency(ctx context.Context, env *lessons.Environment) error {
	if t.ShowClusterStatus() {
		ux.Success("Strong Consistency verified on namespace '%s'", t.Config.Namespace)
		return t.pause(ctx, lessons.StageIntroduction)
	}

	ux.Failure("Strong Consistency is NOT enabled on namespace '%s'!", t.Config.Namespace)

	if !t.Interactive {
		ux.Info("Run with --lessons 0 to see AeroLab setup instructions.")
		return errors.Errorf("strong consistency disabled on namespace '%s'", t.Config.Namespace)
	}

	ux.Info("Would you like to see AeroLab setup instructions?")
	prompt := promptui.Prompt{Label: "Show AeroLab setup", IsConfirm: true}
	if _, err := prompt.Run(); err == nil {
		if lerr := t.runSetupLesson(env); lerr != nil {
			return lerr
		}
		ux.Warning("Please set up an SC cluster and re-run this tutorial.")
	}

	return errors.Errorf("strong consistency disabled on namespace '%s'", t.Config.Namespace)
}

func (t *Tutorial) runSetupLesson(env *lessons.Environment) error {
	for _, lesson := range lessons.Select(lessons.Registry(), []int{0}) {
		if err := lesson.Run(env); err != nil {
			return err
		}
	}
	return nil
}

// pause validates the cluster then loops on the menu until the user
// continues. shell choices attach to the detected container and return here.
func (t *Tutorial) pause(ctx context.Context, stage string) error {
	if !t.Interactive {
		return nil
	}

	if healthy := t.validator.Validate(ctx, true); !healthy {
		ux.Warning("Issues detected! Please fix before continuing or press Enter to proceed anyway.")
	}

	container := shell.DetectContainer(ctx, t.Config.ContainerPrefix)

	if !lessons.SkipSuggestions(stage) {
		lessons.ShowSuggestions(stage)
	}

	for {
		choice, err := ux.Menu(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		switch choice {
		case ux.ActionContinue:
			return nil
		case ux.ActionAQL:
			errorsx.MaybeLog(shell.Attach(ctx, container, "aql"))
			if !lessons.SkipSuggestions(stage) {
				lessons.ShowSuggestions(stage)
			}
		case ux.ActionAsadm:
			errorsx.MaybeLog(shell.Attach(ctx, container, "asadm"))
			if !lessons.SkipSuggestions(stage) {
				lessons.ShowSuggestions(stage)
			}
		case ux.ActionValidate:
			t.validator.Validate(ctx, false)
		}
	}
}

func (t *Tutorial) welcome() {
	ux.Text(`
Welcome to the Aerospike Strong Consistency Tutorial!

This interactive guide will teach you:

  0. Setting Up SC with AeroLab (optional)
  1. Introduction to Strong Consistency
  2. Configuration and Setup
  3. Basic SC Operations
  4. Consistency Levels
  5. Concurrent Write Ordering
  6. Optimistic Locking with Generations
  7. Error Handling
  8. Cluster Behavior under Failure
  9. Best Practices

Press Ctrl+C at any time to exit.
`)
}

func (t *Tutorial) complete() {
	ux.Banner("TUTORIAL COMPLETE!")
	ux.Text(`
Congratulations! You've completed the Strong Consistency tutorial.

Key Takeaways:
  - SC guarantees write ordering and durability
  - Use roster to manage cluster membership
  - Session consistency is the default (and usually sufficient)
  - Use generation checks for optimistic locking
  - Handle InDoubt errors by reading to verify
  - Monitor partition health for cluster issues

For more information:
  - Aerospike SC Documentation: https://aerospike.com/docs/server/operations/configure/consistency
  - Managing SC Clusters: https://aerospike.com/docs/server/operations/manage/consistency
`)
}
