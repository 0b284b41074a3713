package extractor

import (
	"errors"
	"regexp"
)

// ErrVideoIDNotFound is returned when no video ID can be located in a URL.
var ErrVideoIDNotFound = errors.New("no video ID found in URL")

// Video IDs are always 11 characters. The patterns are tried in order, so
// a URL that somehow matches more than one family resolves to the first.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube video or
// Shorts URL. The scheme and host are deliberately not validated: any
// string containing a recognizable pattern is accepted, since the only
// goal here is ID extraction.
func ExtractVideoID(url string) (string, error) {
	for _, pattern := range videoIDPatterns {
		matches := pattern.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", ErrVideoIDNotFound
}
