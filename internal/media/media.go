// Package media classifies files by extension and derives transcript paths.
package media

import (
	"path/filepath"
	"strings"
)

// Kind is the media class of a file.
type Kind int

const (
	Unsupported Kind = iota
	Audio
	Video
)

// TranscriptExt is the extension of the text file written next to each media file.
const TranscriptExt = ".txt"

var kinds = map[string]Kind{
	".mp3": Audio,
	".wav": Audio,
	".aac": Audio,
	".m4a": Audio,
	".mp4": Video,
	".mkv": Video,
	".mov": Video,
	".flv": Video,
}

var mimeTypes = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".aac": "audio/aac",
	".m4a": "audio/mp4",
	".mp4": "video/mp4",
	".mkv": "video/x-matroska",
	".mov": "video/quicktime",
	".flv": "video/x-flv",
}

func (k Kind) String() string {
	switch k {
	case Audio:
		return "audio"
	case Video:
		return "video"
	default:
		return "unsupported"
	}
}

// Classify returns the Kind of path based on its extension, ignoring case.
func Classify(path string) Kind {
	return kinds[strings.ToLower(filepath.Ext(path))]
}

// IsSupported reports whether path has an audio or video extension.
func IsSupported(path string) bool {
	return Classify(path) != Unsupported
}

// MIMEType returns the MIME type for a supported file, or "" otherwise.
func MIMEType(path string) string {
	return mimeTypes[strings.ToLower(filepath.Ext(path))]
}

// TranscriptPath replaces the extension of path with ext.
func TranscriptPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
