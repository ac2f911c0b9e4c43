// Package sctutorial holds the shared defaults for the strong consistency
// tutorial binaries.
package sctutorial

import "time"

// default connection settings for the aerolab provisioned cluster.
const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 3100
	DefaultNamespace = "test"
	DefaultSet       = "tutorial"
)

// DefaultConnectTimeout bounds the initial client connection.
const DefaultConnectTimeout = 5 * time.Second

// DefaultContainerPrefix used to locate the aerolab managed docker container.
const DefaultContainerPrefix = "aerolab-"

// DefaultWebBind address for the web tutorial.
const DefaultWebBind = "127.0.0.1:8000"

// defines available environment variables for configuration.
const (
	EnvLogsVerbose = "SC_TUTORIAL_LOGS_VERBOSE" // enable verbose logging. boolean, see strconv.ParseBool for valid values.
	EnvHost        = "SC_TUTORIAL_HOST"         // seed host for the cluster connection.
	EnvNamespace   = "SC_TUTORIAL_NAMESPACE"    // namespace the lessons operate on.
)
