package scan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pcs-pro/internal/store"
)

func scanDB(t *testing.T) *store.DB {
	t.Helper()
	s := store.Store{Dir: t.TempDir()}
	db, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	db.AddRoom("Kitchen")
	db.AddItem(0, "Dish Box", "Moving Box", "")
	db.Rooms[0].Items[0].ID = "box-1"
	db.Rooms[0].Items[0].QRValue = "box-1"
	return db
}

func TestRun_ResolvesHitsAndMisses(t *testing.T) {
	t.Parallel()

	db := scanDB(t)
	src := NewReaderSource(strings.NewReader("box-1\n\nbox-999\n"))

	var got []Result
	err := Run(context.Background(), src, db, func(r Result) { got = append(got, r) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("blank lines must be skipped; got %d results", len(got))
	}
	if !got[0].Found || got[0].RoomName != "Kitchen" || got[0].Item.ID != "box-1" {
		t.Fatalf("hit result wrong: %#v", got[0])
	}
	if got[1].Found {
		t.Fatalf("miss must report Found=false, not fail: %#v", got[1])
	}
	if got[1].Code != "box-999" {
		t.Fatalf("miss should echo the code: %#v", got[1])
	}
}

func TestRun_ContextCancelUnblocks(t *testing.T) {
	t.Parallel()

	db := scanDB(t)
	// A reader that never yields a line simulates a camera wait.
	blocked := NewReaderSource(blockingReader{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, blocked, db, func(Result) {})
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled; got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not unblock on cancellation")
	}
}

func TestRun_SourceFailureSurfaces(t *testing.T) {
	t.Parallel()

	db := scanDB(t)
	err := Run(context.Background(), failingSource{}, db, func(Result) {
		t.Fatalf("no results expected from a failed capability")
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable; got %v", err)
	}
}

type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {} // never returns; cancellation must come from ctx
}

type failingSource struct{}

func (failingSource) Next(ctx context.Context) (string, error) {
	return "", ErrUnavailable
}
