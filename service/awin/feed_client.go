package awin

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Feed URL template constants. Awin feeds are addressed as
// /publishers/{publisher}/awinfeeds/download/{advertiser}-{vertical}-{locale}{ext}
const (
	feedVertical = "retail"
	feedLocale   = "en_GB"
)

// feedFormats are the extension variants tried in order; the first HTTP
// success wins and later variants are never attempted.
var feedFormats = []string{".jsonl", ".json", ".csv", ""}

// FeedClient downloads product feeds from the Awin partner API.
type FeedClient struct {
	client      *http.Client
	baseURL     string
	publisherID string
	apiToken    string
}

func NewFeedClient(baseURL, publisherID, apiToken string) *FeedClient {
	return &FeedClient{
		client:      &http.Client{Timeout: 120 * time.Second},
		baseURL:     baseURL,
		publisherID: publisherID,
		apiToken:    apiToken,
	}
}

// Feed is one successfully downloaded feed body plus the extension variant
// that produced it, which decides the parser.
type Feed struct {
	Format string
	Body   string
}

// Fetch tries each extension variant against the templated feed URL and
// returns the first success. When every variant fails the returned
// FeedUnavailableError aggregates the last-seen status and body.
func (c *FeedClient) Fetch(ctx context.Context, advertiserID string) (*Feed, error) {
	if advertiserID == "" {
		return nil, fmt.Errorf("%w: advertiser ID is required for API import", ErrInvalidRequest)
	}

	lastErr := "no formats attempted"
	for _, format := range feedFormats {
		url := fmt.Sprintf("%s/publishers/%s/awinfeeds/download/%s-%s-%s%s",
			c.baseURL, c.publisherID, advertiserID, feedVertical, feedLocale, format)

		body, status, err := c.download(ctx, url)
		if err != nil {
			lastErr = err.Error()
			log.Printf("awin: feed variant %q failed: %s", format, lastErr)
			continue
		}
		if status < 200 || status >= 300 {
			lastErr = fmt.Sprintf("%d - %s", status, body)
			log.Printf("awin: feed variant %q failed: %s", format, lastErr)
			continue
		}
		log.Printf("awin: feed found for advertiser %s (format %q)", advertiserID, format)
		return &Feed{Format: format, Body: body}, nil
	}

	return nil, &FeedUnavailableError{AdvertiserID: advertiserID, LastError: lastErr}
}

func (c *FeedClient) download(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}
