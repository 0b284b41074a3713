package models

// VideoRequest is the POST /video request body.
type VideoRequest struct {
	URL string `json:"url" binding:"required"`
}

// VideoResponse is the envelope returned by the /video endpoints.
type VideoResponse struct {
	Success bool                `json:"success"`
	Data    *NormalizedResponse `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// Thumbnail describes a single thumbnail rendition.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Localized carries the localized title/description pair.
type Localized struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Snippet mirrors the snippet section of the YouTube Data API v3 video resource.
type Snippet struct {
	PublishedAt          *string              `json:"publishedAt"`
	ChannelID            string               `json:"channelId"`
	ChannelURL           string               `json:"channelUrl"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Thumbnails           map[string]Thumbnail `json:"thumbnails"`
	ChannelTitle         string               `json:"channelTitle"`
	CategoryID           *string              `json:"categoryId"`
	LiveBroadcastContent string               `json:"liveBroadcastContent"`
	DefaultLanguage      *string              `json:"defaultLanguage"`
	Localized            Localized            `json:"localized"`
	DefaultAudioLanguage *string              `json:"defaultAudioLanguage"`
	Tags                 []string             `json:"tags"`
}

// Statistics mirrors the statistics section. Counters are strings, as in
// the upstream API.
type Statistics struct {
	ViewCount     string `json:"viewCount"`
	LikeCount     string `json:"likeCount"`
	FavoriteCount string `json:"favoriteCount"`
	CommentCount  string `json:"commentCount"`
}

// Status mirrors the status section.
type Status struct {
	UploadStatus        string `json:"uploadStatus"`
	PrivacyStatus       string `json:"privacyStatus"`
	License             string `json:"license"`
	Embeddable          bool   `json:"embeddable"`
	PublicStatsViewable bool   `json:"publicStatsViewable"`
	MadeForKids         bool   `json:"madeForKids"`
}

// ContentDetails mirrors the contentDetails section, plus durationSeconds
// which downstream consumers rely on.
type ContentDetails struct {
	Duration        string            `json:"duration"`
	DurationSeconds int64             `json:"durationSeconds"`
	Dimension       string            `json:"dimension"`
	Definition      string            `json:"definition"`
	Caption         string            `json:"caption"`
	LicensedContent bool              `json:"licensedContent"`
	ContentRating   map[string]string `json:"contentRating"`
	Projection      string            `json:"projection"`
}

// Player carries the embed markup.
type Player struct {
	EmbedHTML string `json:"embedHtml"`
}

// Channel is a condensed channel resource for the video's channel.
type Channel struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	CustomURL       string               `json:"customUrl"`
	SubscriberCount string               `json:"subscriberCount"`
	Thumbnails      map[string]Thumbnail `json:"thumbnails"`
}

// AdditionalInfo carries fields outside the Data API schema that the
// scraper surfaces anyway. The webpage_url key is snake_case for
// compatibility with existing consumers.
type AdditionalInfo struct {
	AgeRestricted      bool    `json:"ageRestricted"`
	AvailableCountries *string `json:"availableCountries"`
	WebpageURL         string  `json:"webpage_url"`
	OriginalURL        string  `json:"originalUrl"`
}

// NormalizedResponse is the fixed-shape metadata object returned for every
// successfully scraped video. Every field is always present; missing
// source data is replaced by type-stable defaults during normalization.
type NormalizedResponse struct {
	VideoID        string         `json:"videoId"`
	IsShort        bool           `json:"isShort"`
	Snippet        Snippet        `json:"snippet"`
	Statistics     Statistics     `json:"statistics"`
	Status         Status         `json:"status"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Player         Player         `json:"player"`
	Channel        Channel        `json:"channel"`
	AdditionalInfo AdditionalInfo `json:"additionalInfo"`
}
