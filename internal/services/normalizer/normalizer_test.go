package normalizer

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ytscout/ytscout/internal/services/extractor"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func boolPtr(b bool) *bool        { return &b }

func TestNormalizeEndToEnd(t *testing.T) {
	raw := &extractor.RawMetadata{
		Title:        strPtr("Test"),
		Duration:     floatPtr(125),
		ViewCount:    int64Ptr(100),
		UploadDate:   strPtr("20230615"),
		Availability: strPtr("public"),
	}

	resp := Normalize(raw, "https://www.youtube.com/watch?v=abc12345678", "abc12345678")

	if resp.VideoID != "abc12345678" {
		t.Errorf("Expected videoId abc12345678, got %q", resp.VideoID)
	}
	if resp.IsShort {
		t.Error("Expected isShort=false for a 125s non-shorts URL")
	}
	if resp.ContentDetails.Duration != "PT2M5S" {
		t.Errorf("Expected duration PT2M5S, got %q", resp.ContentDetails.Duration)
	}
	if resp.ContentDetails.DurationSeconds != 125 {
		t.Errorf("Expected durationSeconds 125, got %d", resp.ContentDetails.DurationSeconds)
	}
	if resp.Statistics.ViewCount != "100" {
		t.Errorf("Expected viewCount \"100\", got %q", resp.Statistics.ViewCount)
	}
	if resp.Snippet.PublishedAt == nil || *resp.Snippet.PublishedAt != "2023-06-15T00:00:00Z" {
		t.Errorf("Expected publishedAt 2023-06-15T00:00:00Z, got %v", resp.Snippet.PublishedAt)
	}
	if resp.Status.PrivacyStatus != "public" {
		t.Errorf("Expected privacyStatus public, got %q", resp.Status.PrivacyStatus)
	}
	if resp.Snippet.Title != "Test" || resp.Snippet.Localized.Title != "Test" {
		t.Errorf("Expected title to propagate to snippet and localized")
	}
}

func TestNormalizeTotalOnEmptyRecord(t *testing.T) {
	testCases := []struct {
		name string
		raw  *extractor.RawMetadata
	}{
		{name: "Empty record", raw: &extractor.RawMetadata{}},
		{name: "Nil record", raw: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := Normalize(tc.raw, "https://www.youtube.com/watch?v=abc12345678", "abc12345678")

			if resp.Snippet.PublishedAt != nil {
				t.Error("Expected publishedAt null for missing upload date")
			}
			if resp.Snippet.CategoryID != nil {
				t.Error("Expected categoryId null for missing categories")
			}
			if resp.Statistics.ViewCount != "0" || resp.Statistics.LikeCount != "0" || resp.Statistics.CommentCount != "0" {
				t.Errorf("Expected zero counters, got %+v", resp.Statistics)
			}
			if resp.Statistics.FavoriteCount != "0" {
				t.Errorf("Expected favoriteCount \"0\", got %q", resp.Statistics.FavoriteCount)
			}
			if resp.Status.PrivacyStatus != "public" {
				t.Errorf("Expected default privacyStatus public, got %q", resp.Status.PrivacyStatus)
			}
			if !resp.Status.MadeForKids {
				t.Error("Expected madeForKids true when no age restriction is marked")
			}
			if resp.ContentDetails.Duration != "PT0S" {
				t.Errorf("Expected PT0S, got %q", resp.ContentDetails.Duration)
			}
			if resp.ContentDetails.Definition != "sd" {
				t.Errorf("Expected sd definition, got %q", resp.ContentDetails.Definition)
			}
			if resp.ContentDetails.Caption != "false" {
				t.Errorf("Expected caption \"false\", got %q", resp.ContentDetails.Caption)
			}
			if resp.Snippet.LiveBroadcastContent != "none" {
				t.Errorf("Expected liveBroadcastContent none, got %q", resp.Snippet.LiveBroadcastContent)
			}
			if resp.Snippet.Tags == nil {
				t.Error("Expected tags to be an empty slice, not nil")
			}
			if len(resp.Snippet.Thumbnails) != 5 {
				t.Errorf("Expected 5 thumbnails, got %d", len(resp.Snippet.Thumbnails))
			}

			// The serialized form must always carry every top-level section.
			data, err := json.Marshal(resp)
			if err != nil {
				t.Fatalf("Unexpected marshal error: %v", err)
			}
			var decoded map[string]json.RawMessage
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unexpected unmarshal error: %v", err)
			}
			for _, key := range []string{"videoId", "isShort", "snippet", "statistics", "status", "contentDetails", "player", "channel", "additionalInfo"} {
				if _, ok := decoded[key]; !ok {
					t.Errorf("Missing top-level key %q", key)
				}
			}
		})
	}
}

func TestNormalizeIsShort(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		duration *float64
		expected bool
	}{
		{
			name:     "Shorts URL with long duration",
			url:      "https://www.youtube.com/shorts/abc12345678",
			duration: floatPtr(300),
			expected: true,
		},
		{
			name:     "Watch URL with short duration",
			url:      "https://www.youtube.com/watch?v=abc12345678",
			duration: floatPtr(45),
			expected: true,
		},
		{
			name:     "Watch URL at exactly 60 seconds",
			url:      "https://www.youtube.com/watch?v=abc12345678",
			duration: floatPtr(60),
			expected: true,
		},
		{
			name:     "Watch URL with long duration",
			url:      "https://www.youtube.com/watch?v=abc12345678",
			duration: floatPtr(61),
			expected: false,
		},
		{
			name:     "Watch URL with no duration",
			url:      "https://www.youtube.com/watch?v=abc12345678",
			duration: nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := &extractor.RawMetadata{Duration: tc.duration}
			resp := Normalize(raw, tc.url, "abc12345678")
			if resp.IsShort != tc.expected {
				t.Errorf("Expected isShort=%v, got %v", tc.expected, resp.IsShort)
			}
		})
	}
}

func TestNormalizeUploadDate(t *testing.T) {
	testCases := []struct {
		name     string
		raw      *string
		expected *string
	}{
		{name: "Valid date", raw: strPtr("20230615"), expected: strPtr("2023-06-15T00:00:00Z")},
		{name: "Absent date", raw: nil, expected: nil},
		{name: "Empty date", raw: strPtr(""), expected: nil},
		{name: "Malformed date passes through", raw: strPtr("2023-06-15"), expected: strPtr("2023-06-15")},
		{name: "Garbage passes through", raw: strPtr("not-a-date"), expected: strPtr("not-a-date")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := Normalize(&extractor.RawMetadata{UploadDate: tc.raw}, "https://youtu.be/abc12345678", "abc12345678")
			got := resp.Snippet.PublishedAt

			if tc.expected == nil {
				if got != nil {
					t.Errorf("Expected null publishedAt, got %q", *got)
				}
				return
			}
			if got == nil || *got != *tc.expected {
				t.Errorf("Expected publishedAt %q, got %v", *tc.expected, got)
			}
		})
	}
}

func TestNormalizeChannelFields(t *testing.T) {
	t.Run("Channel URL synthesized from channel ID", func(t *testing.T) {
		raw := &extractor.RawMetadata{ChannelID: strPtr("UCtest123")}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.ChannelURL != "https://www.youtube.com/channel/UCtest123" {
			t.Errorf("Expected synthesized channel URL, got %q", resp.Snippet.ChannelURL)
		}
	})

	t.Run("Raw channel URL preferred", func(t *testing.T) {
		raw := &extractor.RawMetadata{
			ChannelID:  strPtr("UCtest123"),
			ChannelURL: strPtr("https://www.youtube.com/@handle"),
		}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.ChannelURL != "https://www.youtube.com/@handle" {
			t.Errorf("Expected raw channel URL, got %q", resp.Snippet.ChannelURL)
		}
	})

	t.Run("No channel info at all", func(t *testing.T) {
		resp := Normalize(&extractor.RawMetadata{}, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.ChannelURL != "" {
			t.Errorf("Expected empty channel URL, got %q", resp.Snippet.ChannelURL)
		}
	})

	t.Run("Uploader fallback for channel title", func(t *testing.T) {
		raw := &extractor.RawMetadata{Uploader: strPtr("Some Uploader")}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.ChannelTitle != "Some Uploader" {
			t.Errorf("Expected uploader fallback, got %q", resp.Snippet.ChannelTitle)
		}
		if resp.Channel.Title != "Some Uploader" {
			t.Errorf("Expected uploader fallback in channel section, got %q", resp.Channel.Title)
		}
	})

	t.Run("Channel name preferred over uploader", func(t *testing.T) {
		raw := &extractor.RawMetadata{
			Channel:  strPtr("Channel Name"),
			Uploader: strPtr("Uploader Name"),
		}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.ChannelTitle != "Channel Name" {
			t.Errorf("Expected channel name, got %q", resp.Snippet.ChannelTitle)
		}
	})
}

func TestNormalizeStatusAndDetails(t *testing.T) {
	t.Run("Non-public availability passes through", func(t *testing.T) {
		raw := &extractor.RawMetadata{Availability: strPtr("unlisted")}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Status.PrivacyStatus != "unlisted" {
			t.Errorf("Expected unlisted, got %q", resp.Status.PrivacyStatus)
		}
		if resp.AdditionalInfo.AvailableCountries == nil || *resp.AdditionalInfo.AvailableCountries != "unlisted" {
			t.Errorf("Expected availability passthrough in additionalInfo")
		}
	})

	t.Run("Age restricted video", func(t *testing.T) {
		raw := &extractor.RawMetadata{
			AgeLimit:        intPtr(18),
			IsAgeRestricted: boolPtr(true),
		}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if !resp.AdditionalInfo.AgeRestricted {
			t.Error("Expected ageRestricted true for age limit 18")
		}
		if resp.Status.MadeForKids {
			t.Error("Expected madeForKids false for an age-restricted video")
		}
	})

	t.Run("HD definition", func(t *testing.T) {
		raw := &extractor.RawMetadata{Height: intPtr(1080)}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.ContentDetails.Definition != "hd" {
			t.Errorf("Expected hd, got %q", resp.ContentDetails.Definition)
		}
	})

	t.Run("Captions present", func(t *testing.T) {
		raw := &extractor.RawMetadata{
			AutomaticCaptions: map[string]json.RawMessage{"en": json.RawMessage(`[]`)},
		}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.ContentDetails.Caption != "true" {
			t.Errorf("Expected caption \"true\", got %q", resp.ContentDetails.Caption)
		}
	})

	t.Run("Live broadcast", func(t *testing.T) {
		raw := &extractor.RawMetadata{IsLive: boolPtr(true)}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.LiveBroadcastContent != "live" {
			t.Errorf("Expected live, got %q", resp.Snippet.LiveBroadcastContent)
		}
	})

	t.Run("First category becomes categoryId", func(t *testing.T) {
		raw := &extractor.RawMetadata{Categories: []string{"Music", "Entertainment"}}
		resp := Normalize(raw, "https://youtu.be/abc12345678", "abc12345678")
		if resp.Snippet.CategoryID == nil || *resp.Snippet.CategoryID != "Music" {
			t.Errorf("Expected categoryId Music, got %v", resp.Snippet.CategoryID)
		}
	})
}

func TestNormalizeEmbedHTML(t *testing.T) {
	resp := Normalize(&extractor.RawMetadata{}, "https://youtu.be/abc12345678", "abc12345678")

	embed := resp.Player.EmbedHTML
	for _, fragment := range []string{
		`width="480"`,
		`height="270"`,
		`src="//www.youtube.com/embed/abc12345678"`,
		"allowfullscreen",
	} {
		if !strings.Contains(embed, fragment) {
			t.Errorf("Embed HTML missing %q: %s", fragment, embed)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := &extractor.RawMetadata{
		Title:      strPtr("Test"),
		Duration:   floatPtr(125),
		UploadDate: strPtr("20230615"),
		ViewCount:  int64Ptr(100),
		Tags:       []string{"a", "b"},
	}
	url := "https://www.youtube.com/watch?v=abc12345678"

	first := Normalize(raw, url, "abc12345678")
	second := Normalize(raw, url, "abc12345678")

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output for identical input")
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Unexpected marshal error: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Unexpected marshal error: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Error("Expected byte-identical serialized output")
	}
}
