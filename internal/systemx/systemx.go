package systemx

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// FileExists returns true IFF a non-directory file exists at the provided path.
func FileExists(path string) bool {
	info, err := os.Stat(path)

	if os.IsNotExist(err) {
		return false
	}

	return !info.IsDir()
}

// Cleanup blocks until the context is done or one of the signals arrives,
// invokes the cancel and cleanup functions and waits for outstanding work.
func Cleanup(ctx context.Context, cancel func(), wg *sync.WaitGroup, sigs ...os.Signal) func(func()) {
	return func(cleanup func()) {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, sigs...)
		defer close(signals)
		defer signal.Stop(signals)

		select {
		case <-ctx.Done():
		case <-signals:
			cancel()
		}

		cleanup()
		wg.Wait()
	}
}
