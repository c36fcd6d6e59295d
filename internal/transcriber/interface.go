// Package transcriber turns media files into transcript files next to them.
package transcriber

import "context"

// Engine is a speech-to-text backend. It returns the full transcript text of
// the media file at path.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, path string) (string, error)
}

// Adapter runs an Engine on a media file and writes the transcript. It never
// returns an error: failures are logged and reported in the Result.
type Adapter interface {
	Transcribe(ctx context.Context, path string) Result
}
