// Package session tracks which repeatable actions (like, review) a browsing
// session has already performed, so each session can apply them at most once.
package session

import "context"

const (
	KindLike   = "like"
	KindReview = "review"
)

type MarkerStore interface {
	// Claim marks (session, kind, worker) as done. Returns true if this call
	// claimed it, false if the session already had.
	Claim(ctx context.Context, kind, sessionID, workerID string) (bool, error)
	// Release undoes a claim, used when the write behind it failed so the
	// visitor can retry.
	Release(ctx context.Context, kind, sessionID, workerID string) error
}
