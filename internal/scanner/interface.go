package scanner

import "context"

// Scanner transcribes media files under a root that are not yet recorded
// as processed.
type Scanner interface {
	Scan(ctx context.Context, root string) (Summary, error)
}

// Summary counts what one Scan did.
type Summary struct {
	Candidates  int
	New         int
	Transcribed int
	Failed      int
}
