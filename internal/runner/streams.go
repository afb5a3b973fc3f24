package runner

import (
	"io"
	"os"
	"sync"
)

// syncReader serializes reads from a reader shared by concurrent children.
type syncReader struct {
	mu sync.Mutex
	r  io.Reader
}

func (s *syncReader) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Read(p)
}

// syncWriter serializes writes to a writer shared by concurrent children.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// guard wraps every stream that os/exec would copy on a goroutine, so
// concurrent children never touch the same reader or writer at once.
// *os.File values are handed to children directly and are left alone.
// Stdout and Stderr share one wrapper when they are the same writer.
func (s Streams) guard() Streams {
	out := Streams{}
	if s.Stdin != nil {
		if _, ok := s.Stdin.(*os.File); ok {
			out.Stdin = s.Stdin
		} else {
			out.Stdin = &syncReader{r: s.Stdin}
		}
	}
	out.Stdout = guardWriter(s.Stdout)
	if sameWriter(s.Stdout, s.Stderr) {
		out.Stderr = out.Stdout
	} else {
		out.Stderr = guardWriter(s.Stderr)
	}
	return out
}

func guardWriter(w io.Writer) io.Writer {
	if w == nil {
		return nil
	}
	if _, ok := w.(*os.File); ok {
		return w
	}
	return &syncWriter{w: w}
}

func sameWriter(a, b io.Writer) (same bool) {
	if a == nil || b == nil {
		return false
	}
	// Comparing interfaces panics for uncomparable dynamic types.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
