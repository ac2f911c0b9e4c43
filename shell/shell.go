// Package shell executes the vendor tooling (docker, aerolab, asinfo, aql,
// asadm) on behalf of the tutorial.
package shell

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/ux"
)

const (
	detectTimeout = 5 * time.Second
	infoTimeout   = 10 * time.Second
)

// DetectContainer returns the name of the first running docker container with
// the provided prefix, or the empty string. failures are deliberately
// swallowed; a missing docker binary reads the same as a missing container.
func DetectContainer(ctx context.Context, prefix string) string {
	ctx, done := context.WithTimeout(ctx, detectTimeout)
	defer done()

	out, err := exec.CommandContext(ctx, "docker", "ps", "--format", "{{.Names}}").Output()
	if err != nil {
		return ""
	}

	for _, name := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if strings.HasPrefix(name, prefix) {
			return name
		}
	}

	return ""
}

// Attach runs the given tool inside the container interactively, inheriting
// the tutorial's terminal. returns once the user exits the subshell.
func Attach(ctx context.Context, container, tool string) error {
	if container == "" {
		ux.Warning("No AeroLab container detected. Try manually:")
		ux.Code("docker exec -it <container_name> " + tool)
		ux.Info("List containers with: docker ps")
		return nil
	}

	ux.Section("Opening " + strings.ToUpper(tool) + " shell in container: " + container)
	ux.Info("Type 'exit' or press Ctrl+D to return to tutorial")

	cmd := exec.CommandContext(ctx, "docker", "exec", "-it", container, tool)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// the subshell owns the terminal until the user leaves; its exit status
	// is irrelevant to the tutorial.
	if err := cmd.Run(); err != nil {
		ux.Warning("%s exited: %v", tool, err)
	}

	ux.Success("Returned to tutorial.")
	return nil
}

// Asinfo runs an asinfo command inside the container and returns its output.
func Asinfo(ctx context.Context, container, command string) (string, error) {
	if container == "" {
		return "", errors.New("no container detected")
	}

	ctx, done := context.WithTimeout(ctx, infoTimeout)
	defer done()

	out, err := exec.CommandContext(ctx, "docker", "exec", container, "asinfo", "-v", command).Output()
	if err != nil {
		return "", errors.Wrapf(err, "asinfo '%s' failed", command)
	}

	return strings.TrimSpace(string(out)), nil
}

// Output runs the command and returns its trimmed standard output.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", errors.Wrapf(err, "'%s %s' failed", name, strings.Join(args, " "))
	}

	return strings.TrimSpace(string(out)), nil
}

// Stream runs the command and delivers combined output line by line to the
// sink, returning the exit code.
func Stream(ctx context.Context, sink func(line string), name string, args ...string) (int, error) {
	var (
		err error
		pr  *io.PipeReader
		pw  *io.PipeWriter
	)

	pr, pw = io.Pipe()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err = cmd.Start(); err != nil {
		return -1, errors.Wrapf(err, "failed to start '%s'", name)
	}

	scanned := make(chan struct{})
	go func() {
		defer close(scanned)
		// keep draining after a scan failure; the child blocks on the pipe
		// otherwise and Wait never returns.
		defer io.Copy(io.Discard, pr)

		s := bufio.NewScanner(pr)
		s.Buffer(make([]byte, 64*1024), 1024*1024)
		for s.Scan() {
			if line := strings.TrimRight(s.Text(), "\r"); line != "" {
				sink(line)
			}
		}
		errorsx.MaybeLog(errors.Wrap(s.Err(), "output scan interrupted"))
	}()

	err = cmd.Wait()
	pw.Close()
	<-scanned

	if err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			return exit.ExitCode(), nil
		}
		return -1, errors.Wrapf(err, "'%s' failed", name)
	}

	return 0, nil
}
