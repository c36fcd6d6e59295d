package transcriber

import "fmt"

// Status tags the outcome of one Adapter.Transcribe call.
type Status int

const (
	// StatusSkipped means the file does not have a supported extension.
	StatusSkipped Status = iota
	// StatusDone means the transcript was written.
	StatusDone
	// StatusFailed means no transcript was produced; see Result.Failure.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Category classifies a failure.
type Category string

const (
	CategoryEngine   Category = "engine"
	CategoryWrite    Category = "write"
	CategoryCanceled Category = "canceled"
)

// Failure describes why no transcript was produced.
type Failure struct {
	Category Category
	Message  string
}

func (f *Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

// Result is the outcome of one Adapter.Transcribe call.
type Result struct {
	Path           string
	Status         Status
	Text           string
	TranscriptPath string
	Failure        *Failure
}

// Done reports whether the path should be recorded as processed.
func (r Result) Done() bool {
	return r.Status == StatusDone
}
