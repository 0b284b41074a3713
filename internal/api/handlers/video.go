package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ytscout/ytscout/internal/models"
	"github.com/ytscout/ytscout/internal/services/extractor"
	"github.com/ytscout/ytscout/internal/services/normalizer"
	"github.com/ytscout/ytscout/internal/utils"
)

type VideoHandler struct {
	extractor extractor.VideoExtractor
}

func NewVideoHandler(extractor extractor.VideoExtractor) *VideoHandler {
	return &VideoHandler{
		extractor: extractor,
	}
}

// GetVideo godoc
// @Summary Get video metadata by URL query parameter
// @Description Scrape metadata for a YouTube video or Shorts URL and return it in YouTube Data API v3 shape
// @Tags video
// @Produce json
// @Param url query string true "YouTube video or shorts URL"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.VideoResponse
// @Failure 500 {object} models.VideoResponse
// @Router /video [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		h.errorResponse(c, utils.NewValidationError("Missing url query parameter", nil))
		return
	}

	h.scrape(c, url)
}

// PostVideo godoc
// @Summary Get video metadata by URL in request body
// @Description Scrape metadata for a YouTube video or Shorts URL and return it in YouTube Data API v3 shape
// @Tags video
// @Accept json
// @Produce json
// @Param request body models.VideoRequest true "YouTube video or shorts URL"
// @Success 200 {object} models.VideoResponse
// @Failure 400 {object} models.VideoResponse
// @Failure 500 {object} models.VideoResponse
// @Router /video [post]
func (h *VideoHandler) PostVideo(c *gin.Context) {
	var req models.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	h.scrape(c, req.URL)
}

// scrape runs the pipeline shared by both endpoints: extract the video ID
// (failing fast before any network work), fetch raw metadata through the
// gateway, then normalize into the fixed response shape.
func (h *VideoHandler) scrape(c *gin.Context, url string) {
	ctx := c.Request.Context()

	videoID, err := extractor.ExtractVideoID(url)
	if err != nil {
		h.errorResponse(c, utils.NewInvalidURLError(url))
		return
	}

	raw, err := h.extractor.Fetch(ctx, url)
	if err != nil {
		utils.LogError(ctx, "Video extraction failed", err, utils.Fields{
			"video_id": videoID,
			"url":      url,
		})
		h.errorResponse(c, utils.NewExtractionError(err))
		return
	}

	data := normalizer.Normalize(raw, url, videoID)

	utils.LogInfo(ctx, "Video scraped", utils.Fields{
		"video_id": videoID,
		"is_short": data.IsShort,
	})

	c.JSON(http.StatusOK, models.VideoResponse{
		Success: true,
		Data:    data,
	})
}

func (h *VideoHandler) errorResponse(c *gin.Context, appErr *utils.AppError) {
	c.JSON(appErr.StatusCode, models.VideoResponse{
		Success: false,
		Error:   appErr.Message,
	})
}
