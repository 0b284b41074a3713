// Package normalizer transforms the loosely-populated metadata record
// produced by the extractor into the fixed-shape response schema. The
// transformation is pure and total: every schema field is always emitted,
// with a type-stable default substituted wherever the raw record is
// missing data, and no input can make it fail.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ytscout/ytscout/internal/models"
	"github.com/ytscout/ytscout/internal/services/extractor"
)

const embedTemplate = `<iframe width="480" height="270" src="//www.youtube.com/embed/%s" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share" referrerpolicy="strict-origin-when-cross-origin" allowfullscreen></iframe>`

// Normalize builds the full response object from a raw metadata record,
// the original request URL and the extracted video ID. A nil record is
// treated as empty.
func Normalize(raw *extractor.RawMetadata, url, videoID string) *models.NormalizedResponse {
	if raw == nil {
		raw = &extractor.RawMetadata{}
	}

	durationSeconds := int64(0)
	if raw.Duration != nil {
		durationSeconds = int64(*raw.Duration)
	}

	// A video is a Short if the URL says so or the runtime fits the format.
	isShort := strings.Contains(url, "/shorts/") ||
		(durationSeconds > 0 && durationSeconds <= 60)

	title := stringValue(raw.Title)
	description := stringValue(raw.Description)
	channelID := stringValue(raw.ChannelID)
	channelTitle := firstNonEmpty(stringValue(raw.Channel), stringValue(raw.Uploader))

	channelURL := stringValue(raw.ChannelURL)
	if channelURL == "" && channelID != "" {
		channelURL = "https://www.youtube.com/channel/" + channelID
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	definition := "sd"
	if raw.Height != nil && *raw.Height >= 720 {
		definition = "hd"
	}

	liveBroadcastContent := "none"
	if raw.IsLive != nil && *raw.IsLive {
		liveBroadcastContent = "live"
	}

	hasCaptions := len(raw.Subtitles) > 0 || len(raw.AutomaticCaptions) > 0

	return &models.NormalizedResponse{
		VideoID: videoID,
		IsShort: isShort,
		Snippet: models.Snippet{
			PublishedAt:          formatUploadDate(raw.UploadDate),
			ChannelID:            channelID,
			ChannelURL:           channelURL,
			Title:                title,
			Description:          description,
			Thumbnails:           BuildThumbnails(videoID),
			ChannelTitle:         channelTitle,
			CategoryID:           firstCategory(raw.Categories),
			LiveBroadcastContent: liveBroadcastContent,
			DefaultLanguage:      copyString(raw.Language),
			Localized: models.Localized{
				Title:       title,
				Description: description,
			},
			DefaultAudioLanguage: copyString(raw.Language),
			Tags:                 tags,
		},
		Statistics: models.Statistics{
			ViewCount:     formatCount(raw.ViewCount),
			LikeCount:     formatCount(raw.LikeCount),
			FavoriteCount: "0", // the Data API stopped reporting favorites
			CommentCount:  formatCount(raw.CommentCount),
		},
		Status: models.Status{
			UploadStatus:        "processed",
			PrivacyStatus:       privacyStatus(raw.Availability),
			License:             "youtube",
			Embeddable:          true,
			PublicStatsViewable: true,
			MadeForKids:         raw.IsAgeRestricted == nil || !*raw.IsAgeRestricted,
		},
		ContentDetails: models.ContentDetails{
			Duration:        FormatDuration(durationSeconds),
			DurationSeconds: durationSeconds,
			Dimension:       "2d",
			Definition:      definition,
			Caption:         strconv.FormatBool(hasCaptions),
			LicensedContent: true,
			ContentRating:   map[string]string{},
			Projection:      "rectangular",
		},
		Player: models.Player{
			EmbedHTML: fmt.Sprintf(embedTemplate, videoID),
		},
		Channel: models.Channel{
			ID:              channelID,
			Title:           channelTitle,
			CustomURL:       stringValue(raw.UploaderURL),
			SubscriberCount: formatCount(raw.ChannelFollowerCount),
			Thumbnails: map[string]models.Thumbnail{
				"default": {
					URL:    stringValue(raw.ChannelThumbnail),
					Width:  88,
					Height: 88,
				},
			},
		},
		AdditionalInfo: models.AdditionalInfo{
			AgeRestricted:      raw.AgeLimit != nil && *raw.AgeLimit > 0,
			AvailableCountries: copyString(raw.Availability),
			WebpageURL:         stringValue(raw.WebpageURL),
			OriginalURL:        url,
		},
	}
}

// formatUploadDate reformats yt-dlp's YYYYMMDD upload date to an RFC 3339
// timestamp at midnight UTC. An absent date becomes null; a malformed one
// is passed through verbatim rather than failing the whole request.
func formatUploadDate(uploadDate *string) *string {
	if uploadDate == nil || *uploadDate == "" {
		return nil
	}

	parsed, err := time.Parse("20060102", *uploadDate)
	if err != nil {
		passthrough := *uploadDate
		return &passthrough
	}

	formatted := parsed.Format("2006-01-02T15:04:05Z")
	return &formatted
}

// privacyStatus maps the raw availability value onto the Data API's
// privacyStatus field, defaulting to public when availability is unknown.
func privacyStatus(availability *string) string {
	if availability == nil {
		return "public"
	}
	return *availability
}

func firstCategory(categories []string) *string {
	if len(categories) == 0 {
		return nil
	}
	category := categories[0]
	return &category
}

func formatCount(count *int64) string {
	if count == nil {
		return "0"
	}
	return strconv.FormatInt(*count, 10)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	value := *s
	return &value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
