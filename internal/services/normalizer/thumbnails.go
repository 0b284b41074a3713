package normalizer

import (
	"fmt"

	"github.com/ytscout/ytscout/internal/models"
)

var thumbnailSizes = []struct {
	name   string
	suffix string
	width  int
	height int
}{
	{"default", "default", 120, 90},
	{"medium", "mqdefault", 320, 180},
	{"high", "hqdefault", 480, 360},
	{"standard", "sddefault", 640, 480},
	{"maxres", "maxresdefault", 1280, 720},
}

// BuildThumbnails synthesizes the standard thumbnail set for a video ID.
// The URLs are derived, not verified: YouTube may 404 on maxres for videos
// that were never uploaded in high resolution.
func BuildThumbnails(videoID string) map[string]models.Thumbnail {
	thumbnails := make(map[string]models.Thumbnail, len(thumbnailSizes))
	for _, size := range thumbnailSizes {
		thumbnails[size.name] = models.Thumbnail{
			URL:    fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", videoID, size.suffix),
			Width:  size.width,
			Height: size.height,
		}
	}
	return thumbnails
}
