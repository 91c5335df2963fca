package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	topics := Topics()
	if len(topics) == 0 {
		t.Fatalf("expected embedded topics")
	}
	for _, want := range []string{"checklist", "labels", "weights"} {
		found := false
		for _, got := range topics {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing topic %q in %v", want, topics)
		}
	}
}

func TestGet_ExactAndPrefix(t *testing.T) {
	t.Parallel()

	body, ok := Get("weights")
	if !ok || !strings.Contains(strings.ToLower(body), "weight") {
		t.Fatalf("exact lookup failed: ok=%v", ok)
	}

	if _, ok := Get("wei"); !ok {
		t.Fatalf("unique prefix should resolve")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("unknown topic should miss")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("blank topic should miss")
	}
}
