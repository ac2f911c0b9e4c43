package shell

import (
	"context"
	"strings"
	"time"
)

// aerolab invocations used by the guided web setup.

// DockerVersion reports the installed docker version, empty when unavailable.
func DockerVersion(ctx context.Context) string {
	out, err := Output(ctx, "docker", "--version")
	if err != nil {
		return ""
	}
	return out
}

// DockerRunning reports whether the docker daemon answers.
func DockerRunning(ctx context.Context) bool {
	ctx, done := context.WithTimeout(ctx, infoTimeout)
	defer done()

	_, err := Output(ctx, "docker", "info")
	return err == nil
}

// AerolabVersion reports the installed aerolab version, empty when unavailable.
func AerolabVersion(ctx context.Context) string {
	out, err := Output(ctx, "aerolab", "version")
	if err != nil {
		return ""
	}
	return out
}

// AerolabClusterList returns the raw cluster listing.
func AerolabClusterList(ctx context.Context) (string, error) {
	ctx, done := context.WithTimeout(ctx, 30*time.Second)
	defer done()

	return Output(ctx, "aerolab", "cluster", "list")
}

// AerolabClusterExists reports whether the named cluster appears in the listing.
func AerolabClusterExists(ctx context.Context, name string) bool {
	out, err := AerolabClusterList(ctx)
	return err == nil && strings.Contains(out, name)
}

// AerolabDestroy tears down the named cluster.
func AerolabDestroy(ctx context.Context, name string) (string, error) {
	ctx, done := context.WithTimeout(ctx, time.Minute)
	defer done()

	return Output(ctx, "aerolab", "cluster", "destroy", "-n", name, "-f")
}

// ServerReady polls asinfo status inside the container until the server
// answers ok or the attempts run out.
func ServerReady(ctx context.Context, container string, attempts int, wait time.Duration) bool {
	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(wait):
		}

		if out, err := Asinfo(ctx, container, "status"); err == nil && strings.Contains(strings.ToLower(out), "ok") {
			return true
		}
	}

	return false
}
