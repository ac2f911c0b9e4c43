package iox

import "io"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// WriteNopCloser wraps a writer in a no-op closer.
func WriteNopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{Writer: w}
}
