package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ytscout/ytscout/internal/config"
	"github.com/ytscout/ytscout/internal/utils"
)

// Client fetches raw video metadata by shelling out to yt-dlp.
type Client struct {
	cfg *config.ExtractorConfig
}

// NewClient creates a new yt-dlp backed extractor
func NewClient(cfg *config.ExtractorConfig) *Client {
	return &Client{cfg: cfg}
}

// Available checks that the yt-dlp binary can be found
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.cfg.BinaryPath); err != nil {
		return fmt.Errorf("yt-dlp binary not found: %w", err)
	}
	return nil
}

// Fetch runs yt-dlp against the URL and decodes its JSON dump. The command
// never downloads media; it only probes metadata. Any failure (network,
// private or deleted video, blocked request) surfaces as a single wrapped
// error with yt-dlp's stderr attached.
func (c *Client) Fetch(ctx context.Context, url string) (*RawMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	args := []string{
		"--dump-single-json",
		"--skip-download",
		"--no-playlist",
		"--no-warnings",
		"--extractor-args", "youtube:player_client=" + strings.Join(c.cfg.PlayerClients, ","),
		"--user-agent", c.cfg.UserAgent,
		"--add-header", "Accept-Language:en-US,en;q=0.9",
		url,
	}

	cmd := exec.CommandContext(ctx, c.cfg.BinaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	utils.LogDebug(ctx, "Running yt-dlp", utils.Fields{"url": url})

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("yt-dlp failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	var raw RawMetadata
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode yt-dlp output: %w", err)
	}

	return &raw, nil
}
