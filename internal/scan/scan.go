// Package scan is the boundary to the external code-decoding
// capability. The capability is injected as a Source selected at
// startup; the engine never feature-detects devices itself. The default
// Source reads decoded strings line-by-line (stdin, a file, or a pipe
// from an external decoder).
package scan

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"pcs-pro/internal/model"
	"pcs-pro/internal/store"
)

// ErrUnavailable reports that the scan capability is denied or missing.
// Callers surface it as a status message; inventory state is untouched.
var ErrUnavailable = errors.New("scan capability unavailable")

// Source yields decoded code strings. Next blocks until a code arrives,
// the source is exhausted (io.EOF), or ctx is canceled. A Source may
// take unbounded time; cancellation is the caller's escape hatch.
type Source interface {
	Next(ctx context.Context) (string, error)
}

// ReaderSource adapts any line-oriented reader into a Source. Reads run
// on their own goroutine so Next honors ctx even while the underlying
// read blocks.
type ReaderSource struct {
	lines chan string
	errs  chan error
	once  func()
}

func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{
		lines: make(chan string),
		errs:  make(chan error, 1),
	}
	started := false
	s.once = func() {
		if started {
			return
		}
		started = true
		go func() {
			sc := bufio.NewScanner(r)
			for sc.Scan() {
				s.lines <- sc.Text()
			}
			if err := sc.Err(); err != nil {
				s.errs <- err
				return
			}
			s.errs <- io.EOF
		}()
	}
	return s
}

func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	s.once()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-s.lines:
		return line, nil
	case err := <-s.errs:
		return "", err
	}
}

// Result is the outcome of resolving one scanned code.
type Result struct {
	Code  string
	Found bool

	// Set when Found.
	RoomName string
	Item     model.Item
}

// Resolve maps one code against the inventory. A miss is a normal
// Result with Found=false, never an error.
func Resolve(db *store.DB, code string) Result {
	code = strings.TrimSpace(code)
	room, item, _, ok := db.ResolveByCode(code)
	if !ok {
		return Result{Code: code}
	}
	return Result{Code: code, Found: true, RoomName: room.Name, Item: *item}
}

// Run drains the source, resolving each non-blank code and reporting
// every result through emit. It returns nil on a cleanly exhausted
// source, ctx.Err() on cancellation, and the source error otherwise
// (for the caller to report as a capability failure).
func Run(ctx context.Context, src Source, db *store.DB, emit func(Result)) error {
	for {
		code, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		emit(Resolve(db, code))
	}
}
