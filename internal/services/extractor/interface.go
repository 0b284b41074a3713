package extractor

import (
	"context"
	"encoding/json"
)

// VideoExtractor is the contract for fetching raw video metadata.
type VideoExtractor interface {
	// Fetch retrieves raw metadata for the given video URL
	Fetch(ctx context.Context, url string) (*RawMetadata, error)

	// Available reports whether the extractor backend is usable
	Available() error
}

// RawMetadata is the loosely-populated record produced by yt-dlp for a
// single video. Every field is optional: the extractor may omit, null or
// empty any of them depending on the video, so scalars are pointers and
// consumers must supply their own defaults.
type RawMetadata struct {
	ID                   *string                    `json:"id"`
	Title                *string                    `json:"title"`
	Description          *string                    `json:"description"`
	Duration             *float64                   `json:"duration"`
	UploadDate           *string                    `json:"upload_date"`
	Channel              *string                    `json:"channel"`
	ChannelID            *string                    `json:"channel_id"`
	ChannelURL           *string                    `json:"channel_url"`
	ChannelThumbnail     *string                    `json:"channel_thumbnail"`
	ChannelFollowerCount *int64                     `json:"channel_follower_count"`
	Uploader             *string                    `json:"uploader"`
	UploaderURL          *string                    `json:"uploader_url"`
	ViewCount            *int64                     `json:"view_count"`
	LikeCount            *int64                     `json:"like_count"`
	CommentCount         *int64                     `json:"comment_count"`
	Categories           []string                   `json:"categories"`
	Tags                 []string                   `json:"tags"`
	Language             *string                    `json:"language"`
	IsLive               *bool                      `json:"is_live"`
	IsAgeRestricted      *bool                      `json:"is_age_restricted"`
	AgeLimit             *int                       `json:"age_limit"`
	Availability         *string                    `json:"availability"`
	Height               *int                       `json:"height"`
	Subtitles            map[string]json.RawMessage `json:"subtitles"`
	AutomaticCaptions    map[string]json.RawMessage `json:"automatic_captions"`
	WebpageURL           *string                    `json:"webpage_url"`
}
