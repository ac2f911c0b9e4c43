package debugx

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/shekhars271991/as-strongconsistancy/internal/errorsx"
	"github.com/shekhars271991/as-strongconsistancy/internal/iox"
)

var verbose = log.New(io.Discard, "[debug] ", log.Flags()|log.Lshortfile)

// Enable verbose output.
func Enable() {
	verbose = log.New(os.Stderr, "[debug] ", log.Flags()|log.Lshortfile)
}

// Dump pretty prints the provided values, verbose only.
func Dump(args ...interface{}) {
	verbose.Output(2, spew.Sdump(args...))
}

func genDst() (path string, dst io.WriteCloser) {
	var (
		err error
	)

	t := time.Now()
	path = filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s-%d.trace", filepath.Base(os.Args[0]), t.Format("2006-01-02"), t.Unix()))

	if dst, err = os.Create(path); err != nil {
		log.Println(errors.Wrapf(err, "failed to open file: %s", path))
		log.Println("routine dump falling back to stderr")
		return "stderr", iox.WriteNopCloser(os.Stderr)
	}

	return path, dst
}

// DumpRoutines writes current goroutine stack traces to a temp file.
// and returns that files path. if for some reason a file could not be opened
// it falls back to stderr
func DumpRoutines() (path string, err error) {
	var (
		dst io.WriteCloser
	)

	path, dst = genDst()
	return path, errorsx.Compact(pprof.Lookup("goroutine").WriteTo(dst, 1), dst.Close())
}

// DumpOnSignal dumps the goroutine stacks when the signal is received.
func DumpOnSignal(ctx context.Context, sigs ...os.Signal) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, sigs...)

	for {
		select {
		case <-ctx.Done():
			return
		case <-signals:
			if path, err := DumpRoutines(); err == nil {
				log.Println("dump located at:", path)
			} else {
				log.Println("failed to dump routines:", err)
			}
		}
	}
}
