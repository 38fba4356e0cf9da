package session

import (
	"context"
	"testing"
)

func TestMemoryClaimOnce(t *testing.T) {
	s := NewMemoryMarkerStore()
	ctx := context.Background()

	claimed, err := s.Claim(ctx, KindLike, "sess", "worker")
	if err != nil || !claimed {
		t.Fatalf("expected first claim to win, got claimed=%v err=%v", claimed, err)
	}

	claimed, err = s.Claim(ctx, KindLike, "sess", "worker")
	if err != nil || claimed {
		t.Fatalf("expected second claim refused, got claimed=%v err=%v", claimed, err)
	}

	// a different kind for the same pair is independent
	claimed, err = s.Claim(ctx, KindReview, "sess", "worker")
	if err != nil || !claimed {
		t.Fatalf("expected review claim independent of like, got claimed=%v err=%v", claimed, err)
	}
}

func TestMemoryRelease(t *testing.T) {
	s := NewMemoryMarkerStore()
	ctx := context.Background()

	if _, err := s.Claim(ctx, KindLike, "sess", "worker"); err != nil {
		t.Fatal(err)
	}
	if err := s.Release(ctx, KindLike, "sess", "worker"); err != nil {
		t.Fatal(err)
	}

	claimed, err := s.Claim(ctx, KindLike, "sess", "worker")
	if err != nil || !claimed {
		t.Fatalf("expected claim after release, got claimed=%v err=%v", claimed, err)
	}
}
